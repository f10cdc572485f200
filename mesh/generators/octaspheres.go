// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package generators

import (
	"cogentcore.org/procmesh/math32"
	"cogentcore.org/procmesh/mesh"
)

// octaRhombus is one of the four rhombi of an octahedron that run from
// the south pole over two equatorial corners to the north pole.
type octaRhombus struct {
	id          int
	leftCorner  math32.Vector3
	rightCorner math32.Vector3
}

var octaRhombi = [4]octaRhombus{
	{0, back, right},
	{1, right, forward},
	{2, forward, left},
	{3, left, back},
}

// octaVertexCount includes the poles, duplicated per rhombus,
// and the seam, duplicated for the texture wrap.
func octaVertexCount(r int) int { return 4*r*r + 2*r + 7 }
func octaIndexCount(r int) int  { return 24 * r * r }
func octaJobLength(r int) int   { return 4*r + 1 }

// octaPositions computes the positions of one column of an octahedron sphere.
type octaPositions interface {
	// start returns the position of the first vertex of column u of the rhombus.
	start(rh octaRhombus, u int) mesh.Vertex

	// inner returns the position of vertex v > 0 of column u of the rhombus.
	inner(rh octaRhombus, u, v int) math32.Vector3

	// seam returns the seam vertex v for 0 < v < 2r.
	seam(v int) mesh.Vertex
}

// executeOctasphere runs unit i of an octahedron sphere. Unit 0 writes the
// duplicated poles and the seam; every other unit writes one column of one
// rhombus and the triangles between it and the previous column.
func executeOctasphere[S mesh.Stream, P octaPositions](r int, pos P, i int, s S) {
	if i == 0 {
		octaPolesAndSeam(r, pos, s)
		return
	}
	i--
	u := i / 4
	rh := octaRhombi[i-4*u]
	vi := r*(r*rh.id+u+2) + 7
	ti := 2 * r * (r*rh.id + u)
	firstColumn := u == 0

	quad := [4]int{vi, vi - r, vi - r + 1, vi + 1}
	if firstColumn {
		quad[1] = rh.id
		quad[2] = vi - r*(r+u)
		if rh.id == 0 {
			quad[2] = 8
		}
	}
	u++

	s.SetVertex(vi, pos.start(rh, u))
	vi++

	zAdd := 1
	if firstColumn && rh.id != 0 {
		zAdd = r
	}
	for v := 1; v < r; v, vi, ti = v+1, vi+1, ti+2 {
		s.SetVertex(vi, sphereVertex(pos.inner(rh, u, v)))

		s.SetTriangle(ti, math32.Tri(quad[0], quad[1], quad[2]))
		s.SetTriangle(ti+1, math32.Tri(quad[0], quad[2], quad[3]))

		quad[1] = quad[2]
		quad[0]++
		quad[2] += zAdd
		quad[3]++
	}

	quad[2] = r*r*rh.id + r + u + 6
	quad[3] = quad[2] + 1
	if u == r {
		quad[3] = rh.id + 4
	}
	s.SetTriangle(ti, math32.Tri(quad[0], quad[1], quad[2]))
	s.SetTriangle(ti+1, math32.Tri(quad[0], quad[2], quad[3]))
}

// octaPolesAndSeam writes the four copies of each pole, one per rhombus with
// its tangent turned by 90 degrees, and the seam from the south to the north
// pole through the back of the sphere.
func octaPolesAndSeam[S mesh.Stream, P octaPositions](r int, pos P, s S) {
	v := mesh.Vertex{
		Tangent: math32.Vec4(math32.Sqrt(0.5), 0, math32.Sqrt(0.5), -1),
		UV0:     math32.Vec2(0.125, 0),
	}
	for i := range 4 {
		v.Position, v.Normal = down, down
		v.UV0.Y = 0
		s.SetVertex(i, v)

		v.Position, v.Normal = up, up
		v.UV0.Y = 1
		s.SetVertex(i+4, v)

		v.Tangent.X, v.Tangent.Z = -v.Tangent.Z, v.Tangent.X
		v.UV0.X += 0.25
	}
	for sv := 1; sv < 2*r; sv++ {
		s.SetVertex(sv+7, pos.seam(sv))
	}
}

// seamVertex returns a vertex of the texture seam at position p with
// texture V coordinate tv.
func seamVertex(p math32.Vector3, tv float32) mesh.Vertex {
	return mesh.Vertex{Position: p, Normal: p, Tangent: math32.Vec4(1, 0, 0, -1), UV0: math32.Vec2(0, tv)}
}

// Octasphere is an octahedron with every face subdivided into
// Resolution² triangles, projected onto the unit sphere by normalizing
// points interpolated linearly between the octahedron corners.
type Octasphere[S mesh.Stream] struct {
	Resolution int
}

func (g Octasphere[S]) VertexCount() int    { return octaVertexCount(g.Resolution) }
func (g Octasphere[S]) IndexCount() int     { return octaIndexCount(g.Resolution) }
func (g Octasphere[S]) JobLength() int      { return octaJobLength(g.Resolution) }
func (g Octasphere[S]) Bounds() math32.Box3 { return sphereBounds }

func (g Octasphere[S]) Execute(i int, s S) {
	executeOctasphere(g.Resolution, linearOcta(g.Resolution), i, s)
}

// linearOcta interpolates linearly on the octahedron, then normalizes.
type linearOcta int

func (r linearOcta) start(rh octaRhombus, u int) mesh.Vertex {
	f := float32(u) / float32(r)
	return sphereVertex(down.Add(rh.rightCorner.Sub(down).MulScalar(f)).Normal())
}

func (r linearOcta) inner(rh octaRhombus, u, v int) math32.Vector3 {
	rf := float32(r)
	f := float32(u) / rf
	t := float32(v) / rf
	var p math32.Vector3
	if v <= int(r)-u {
		dir := rh.rightCorner.Sub(down)
		start := down.Add(dir.MulScalar(f))
		end := rh.leftCorner.Add(dir.MulScalar(f))
		p = start.Lerp(end, t)
	} else {
		dir := up.Sub(rh.leftCorner)
		start := rh.rightCorner.Add(dir.MulScalar(f - 1))
		end := rh.leftCorner.Add(dir.MulScalar(f))
		p = start.Lerp(end, t)
	}
	return p.Normal()
}

func (r linearOcta) seam(v int) mesh.Vertex {
	rf := float32(r)
	var p math32.Vector3
	if v < int(r) {
		p = down.Lerp(back, float32(v)/rf)
	} else {
		p = back.Lerp(up, float32(v-int(r))/rf)
	}
	p = p.Normal()
	return seamVertex(p, texCoord(p).Y)
}

// GeoOctasphere is an octahedron sphere whose vertices are placed by
// rotating along great circles instead of normalizing linear
// interpolations, giving more uniformly sized triangles.
type GeoOctasphere[S mesh.Stream] struct {
	Resolution int
}

func (g GeoOctasphere[S]) VertexCount() int    { return octaVertexCount(g.Resolution) }
func (g GeoOctasphere[S]) IndexCount() int     { return octaIndexCount(g.Resolution) }
func (g GeoOctasphere[S]) JobLength() int      { return octaJobLength(g.Resolution) }
func (g GeoOctasphere[S]) Bounds() math32.Box3 { return sphereBounds }

func (g GeoOctasphere[S]) Execute(i int, s S) {
	executeOctasphere(g.Resolution, geodesicOcta(g.Resolution), i, s)
}

// geodesicOcta places vertices by exact rotations on the sphere.
type geodesicOcta int

// latitude returns the sine and cosine of the polar angle of
// latitude row h, measured from the south pole.
func (r geodesicOcta) latitude(h float32) (sine, cosine float32) {
	return math32.Sincos(math32.Pi + math32.Pi*h/(2*float32(r)))
}

func (r geodesicOcta) start(rh octaRhombus, u int) mesh.Vertex {
	sine, y := r.latitude(float32(u))
	p := math32.Vec3(0, y, 0).Sub(rh.rightCorner.MulScalar(sine))
	v := sphereVertex(p)
	v.UV0 = math32.Vec2(float32(rh.id)*0.25+0.25, float32(u)/(2*float32(r)))
	return v
}

func (r geodesicOcta) inner(rh octaRhombus, u, v int) math32.Vector3 {
	h := float32(u + v)
	sine, y := r.latitude(h)
	pRight := math32.Vec3(0, y, 0)
	pLeft := pRight.Sub(rh.leftCorner.MulScalar(sine))
	pRight = pRight.Sub(rh.rightCorner.MulScalar(sine))

	axis := pRight.Cross(pLeft).Normal()
	angle := pRight.AngleTo(pLeft)
	if v <= int(r)-u {
		angle *= float32(v) / h
	} else {
		angle *= float32(int(r)-u) / (2*float32(r) - h)
	}
	return pRight.MulQuat(math32.NewQuatAxisAngle(axis, angle))
}

func (r geodesicOcta) seam(v int) mesh.Vertex {
	z, y := r.latitude(float32(v))
	return seamVertex(math32.Vec3(0, y, z), float32(v)/(2*float32(r)))
}
