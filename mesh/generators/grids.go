// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package generators

import (
	"cogentcore.org/procmesh/math32"
	"cogentcore.org/procmesh/mesh"
)

// SquareGrid is a unit square in the XZ plane made of
// Resolution x Resolution quads, each with its own four vertices.
// Each unit computes one row of quads.
type SquareGrid[S mesh.Stream] struct {
	Resolution int
}

func (g SquareGrid[S]) VertexCount() int    { return 4 * g.Resolution * g.Resolution }
func (g SquareGrid[S]) IndexCount() int     { return 6 * g.Resolution * g.Resolution }
func (g SquareGrid[S]) JobLength() int      { return g.Resolution }
func (g SquareGrid[S]) Bounds() math32.Box3 { return flatBounds(1, 0, 1) }

func (g SquareGrid[S]) Execute(z int, s S) {
	r := g.Resolution
	rf := float32(r)
	vi := 4 * r * z
	ti := 2 * r * z
	z0 := float32(z)/rf - 0.5
	z1 := float32(z+1)/rf - 0.5

	v := mesh.Vertex{Normal: planeNormal, Tangent: planeTangent}
	for x := 0; x < r; x, vi, ti = x+1, vi+4, ti+2 {
		x0 := float32(x)/rf - 0.5
		x1 := float32(x+1)/rf - 0.5

		v.Position = math32.Vec3(x0, 0, z0)
		v.UV0 = math32.Vec2(0, 0)
		s.SetVertex(vi, v)

		v.Position.X = x1
		v.UV0 = math32.Vec2(1, 0)
		s.SetVertex(vi+1, v)

		v.Position = math32.Vec3(x0, 0, z1)
		v.UV0 = math32.Vec2(0, 1)
		s.SetVertex(vi+2, v)

		v.Position.X = x1
		v.UV0 = math32.Vec2(1, 1)
		s.SetVertex(vi+3, v)

		s.SetTriangle(ti, math32.Tri(vi, vi+2, vi+1))
		s.SetTriangle(ti+1, math32.Tri(vi+1, vi+2, vi+3))
	}
}

// SharedSquareGrid is a unit square in the XZ plane made of
// Resolution x Resolution quads sharing their vertices.
// Unit z computes row z of vertices and, for z > 0,
// the row of quads below it.
type SharedSquareGrid[S mesh.Stream] struct {
	Resolution int
}

func (g SharedSquareGrid[S]) VertexCount() int    { return (g.Resolution + 1) * (g.Resolution + 1) }
func (g SharedSquareGrid[S]) IndexCount() int     { return 6 * g.Resolution * g.Resolution }
func (g SharedSquareGrid[S]) JobLength() int      { return g.Resolution + 1 }
func (g SharedSquareGrid[S]) Bounds() math32.Box3 { return flatBounds(1, 0, 1) }

func (g SharedSquareGrid[S]) Execute(z int, s S) {
	r := g.Resolution
	rf := float32(r)
	vi := (r + 1) * z
	ti := 2 * r * (z - 1)

	v := mesh.Vertex{Normal: planeNormal, Tangent: planeTangent}
	v.Position = math32.Vec3(-0.5, 0, float32(z)/rf-0.5)
	v.UV0.Y = float32(z) / rf
	s.SetVertex(vi, v)
	vi++

	for x := 1; x <= r; x, vi, ti = x+1, vi+1, ti+2 {
		v.Position.X = float32(x)/rf - 0.5
		v.UV0.X = float32(x) / rf
		s.SetVertex(vi, v)

		if z > 0 {
			s.SetTriangle(ti, math32.Tri(vi-r-2, vi-1, vi-r-1))
			s.SetTriangle(ti+1, math32.Tri(vi-r-1, vi-1, vi))
		}
	}
}

// SharedTriangleGrid is a grid of equilateral triangles sharing their
// vertices, with odd rows shifted by half a triangle.
// Unit z computes row z of vertices and, for z > 0,
// the strip of triangles below it.
type SharedTriangleGrid[S mesh.Stream] struct {
	Resolution int
}

func (g SharedTriangleGrid[S]) VertexCount() int { return (g.Resolution + 1) * (g.Resolution + 1) }
func (g SharedTriangleGrid[S]) IndexCount() int  { return 6 * g.Resolution * g.Resolution }
func (g SharedTriangleGrid[S]) JobLength() int   { return g.Resolution + 1 }

func (g SharedTriangleGrid[S]) Bounds() math32.Box3 {
	return flatBounds(1+0.5/float32(g.Resolution), 0, math32.Sqrt3/2)
}

func (g SharedTriangleGrid[S]) Execute(z int, s S) {
	r := g.Resolution
	rf := float32(r)
	vi := (r + 1) * z
	ti := 2 * r * (z - 1)

	xOffset := float32(-0.25)
	uOffset := float32(0)

	iA, iB, iC, iD := int32(-r-2), int32(-r-1), int32(-1), int32(0)
	tA := math32.Vec3i(iA, iC, iD)
	tB := math32.Vec3i(iA, iD, iB)

	if z&1 == 1 {
		xOffset = 0.25
		uOffset = 0.5 / (rf + 0.5)
		tA = math32.Vec3i(iA, iC, iB)
		tB = math32.Vec3i(iB, iC, iD)
	}
	xOffset = xOffset/rf - 0.5

	v := mesh.Vertex{Normal: planeNormal, Tangent: planeTangent}
	v.Position = math32.Vec3(xOffset, 0, (float32(z)/rf-0.5)*math32.Sqrt3/2)
	v.UV0 = math32.Vec2(uOffset, v.Position.Z/(1+0.5/rf)+0.5)
	s.SetVertex(vi, v)
	vi++

	for x := 1; x <= r; x, vi, ti = x+1, vi+1, ti+2 {
		v.Position.X = float32(x)/rf + xOffset
		v.UV0.X = float32(x)/(rf+0.5) + uOffset
		s.SetVertex(vi, v)

		if z > 0 {
			s.SetTriangle(ti, tA.AddScalar(int32(vi)))
			s.SetTriangle(ti+1, tB.AddScalar(int32(vi)))
		}
	}
}
