// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package generators

import (
	"cogentcore.org/procmesh/math32"
	"cogentcore.org/procmesh/mesh"
)

// cubeSide is one face of the cube that is projected onto the sphere.
type cubeSide struct {
	id       int
	origin   math32.Vector3
	uVector  math32.Vector3
	vVector  math32.Vector3
	seamStep int
}

// touchesMinimumPole returns whether the side contains the (-1,-1,-1) corner
// at its origin, as the even sides do.
func (c cubeSide) touchesMinimumPole() bool {
	return c.id&1 == 0
}

var cubeSides = [6]cubeSide{
	{0, math32.Vec3(-1, -1, -1), right.MulScalar(2), up.MulScalar(2), 4},
	{1, math32.Vec3(1, -1, -1), forward.MulScalar(2), up.MulScalar(2), 4},
	{2, math32.Vec3(-1, -1, -1), forward.MulScalar(2), right.MulScalar(2), -2},
	{3, math32.Vec3(-1, -1, 1), up.MulScalar(2), right.MulScalar(2), -2},
	{4, math32.Vec3(-1, -1, -1), up.MulScalar(2), forward.MulScalar(2), -2},
	{5, math32.Vec3(-1, 1, -1), right.MulScalar(2), forward.MulScalar(2), -2},
}

// cubeToSphere maps a point on the surface of the [-1, 1] cube onto the
// unit sphere, spreading the points more evenly than normalizing would.
func cubeToSphere(p math32.Vector3) math32.Vector3 {
	sq := p.Mul(p)
	a := math32.Vec3(sq.Y, sq.X, sq.X)
	b := math32.Vec3(sq.Z, sq.Z, sq.Y)
	return math32.Vec3(
		p.X*math32.Sqrt(1-(a.X+b.X)/2+a.X*b.X/3),
		p.Y*math32.Sqrt(1-(a.Y+b.Y)/2+a.Y*b.Y/3),
		p.Z*math32.Sqrt(1-(a.Z+b.Z)/2+a.Z*b.Z/3),
	)
}

// CubeSphere is a cube with Resolution x Resolution quads per side,
// projected onto the unit sphere. Quads do not share vertices, so each
// has its own texture square and normals follow the faceted surface.
// Unit i computes column i/6 of side i%6.
type CubeSphere[S mesh.Stream] struct {
	Resolution int
}

func (g CubeSphere[S]) VertexCount() int    { return 24 * g.Resolution * g.Resolution }
func (g CubeSphere[S]) IndexCount() int     { return 36 * g.Resolution * g.Resolution }
func (g CubeSphere[S]) JobLength() int      { return 6 * g.Resolution }
func (g CubeSphere[S]) Bounds() math32.Box3 { return sphereBounds }

func (g CubeSphere[S]) Execute(i int, s S) {
	r := g.Resolution
	rf := float32(r)
	u := i / 6
	side := cubeSides[i-6*u]
	vi := 4 * r * (r*side.id + u)
	ti := 2 * r * (r*side.id + u)

	uA := side.origin.Add(side.uVector.MulScalar(float32(u) / rf))
	uB := side.origin.Add(side.uVector.MulScalar(float32(u+1) / rf))
	pA := cubeToSphere(uA)
	pB := cubeToSphere(uB)

	var v mesh.Vertex
	tangent := pB.Sub(pA).Normal()
	v.Tangent = math32.Vector4FromVector3(tangent, -1)

	for row := 1; row <= r; row, vi, ti = row+1, vi+4, ti+2 {
		step := side.vVector.MulScalar(float32(row) / rf)
		pC := cubeToSphere(uA.Add(step))
		pD := cubeToSphere(uB.Add(step))

		v.Position = pA
		v.Normal = pC.Sub(pA).Cross(tangent).Normal()
		v.UV0 = math32.Vec2(0, 0)
		s.SetVertex(vi, v)

		v.Position = pB
		v.Normal = pD.Sub(pB).Cross(tangent).Normal()
		v.UV0 = math32.Vec2(1, 0)
		s.SetVertex(vi+1, v)

		tangent = pD.Sub(pC).Normal()
		v.Tangent = math32.Vector4FromVector3(tangent, -1)

		v.Position = pC
		v.Normal = pC.Sub(pA).Cross(tangent).Normal()
		v.UV0 = math32.Vec2(0, 1)
		s.SetVertex(vi+2, v)

		v.Position = pD
		v.Normal = pD.Sub(pB).Cross(tangent).Normal()
		v.UV0 = math32.Vec2(1, 1)
		s.SetVertex(vi+3, v)

		s.SetTriangle(ti, math32.Tri(vi, vi+2, vi+1))
		s.SetTriangle(ti+1, math32.Tri(vi+1, vi+2, vi+3))

		pA, pB = pC, pD
	}
}

// SharedCubeSphere is a cube with Resolution x Resolution quads per side,
// projected onto the unit sphere, with all vertices shared between
// quads and sides. The two cube corners (-1,-1,-1) and (1,1,1) are
// written explicitly as vertices 0 and 1; every other vertex is written
// by the unit of the column it starts.
// Unit i computes column i/6 of side i%6 and stitches it to the previous
// column, or to the neighboring side for the first column.
type SharedCubeSphere[S mesh.Stream] struct {
	Resolution int
}

func (g SharedCubeSphere[S]) VertexCount() int    { return 6*g.Resolution*g.Resolution + 2 }
func (g SharedCubeSphere[S]) IndexCount() int     { return 36 * g.Resolution * g.Resolution }
func (g SharedCubeSphere[S]) JobLength() int      { return 6 * g.Resolution }
func (g SharedCubeSphere[S]) Bounds() math32.Box3 { return sphereBounds }

func (g SharedCubeSphere[S]) Execute(i int, s S) {
	r := g.Resolution
	rf := float32(r)
	u := i / 6
	side := cubeSides[i-6*u]
	vi := r*(r*side.id+u) + 2
	ti := 2 * r * (r*side.id + u)
	firstColumn := u == 0
	minPole := side.touchesMinimumPole()
	u++

	pStart := side.origin.Add(side.uVector.MulScalar(float32(u) / rf))

	if i == 0 {
		pole := math32.Vector3Scalar(-math32.Sqrt(1.0 / 3))
		s.SetVertex(0, sphereVertex(pole))
		s.SetVertex(1, sphereVertex(pole.Negate()))
	}

	s.SetVertex(vi, sphereVertex(cubeToSphere(pStart).Normal()))

	tri := math32.Tri(vi, vi-r, vi-r+1)
	switch {
	case firstColumn && minPole:
		tri.Y = 0
		tri.Z = int32(vi + side.seamStep*r*r)
	case firstColumn && r == 1:
		tri.Z = int32(vi + side.seamStep)
	}
	s.SetTriangle(ti, tri)
	vi++
	ti++

	zAdd := int32(1)
	var zAddLast int32
	switch {
	case firstColumn && minPole:
		zAdd = int32(r)
		zAddLast = int32(r)
	case !firstColumn && !minPole:
		zAddLast = int32(r*((side.seamStep+1)*r-u) + u)
	default:
		zAddLast = int32((side.seamStep+1)*r*r - r + 1)
	}

	for row := 1; row < r; row, vi, ti = row+1, vi+1, ti+2 {
		p := cubeToSphere(pStart.Add(side.vVector.MulScalar(float32(row) / rf)))
		s.SetVertex(vi, sphereVertex(p.Normal()))

		tri.X++
		tri.Y = tri.Z
		if row == r-1 {
			tri.Z += zAddLast
		} else {
			tri.Z += zAdd
		}
		s.SetTriangle(ti, math32.Vec3i(tri.X-1, tri.Y, tri.X))
		s.SetTriangle(ti+1, tri)
	}

	last := tri.Z + 1
	switch {
	case minPole:
		last = tri.Z + int32(r)
	case u == r:
		last = 1
	}
	s.SetTriangle(ti, math32.Vec3i(tri.X, tri.Z, last))
}
