// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package generators

import (
	"cogentcore.org/procmesh/math32"
	"cogentcore.org/procmesh/mesh"
)

// hexHeight is half the distance between opposite edges of a unit hexagon.
const hexHeight = math32.Sqrt3 / 4

// hexagonBounds returns the long and short sizes of a hexagon grid.
func hexagonBounds(r int) (long, short float32) {
	rf := float32(r)
	short = 0.5
	if r > 1 {
		short = 0.75 / rf
	}
	return 0.75 + 0.25/rf, short * math32.Sqrt3
}

// hexCenterOffset returns the offset of the first cell of a row or column
// of a hexagon grid along and across it, with every other row shifted.
func hexCenterOffset(r, row int) (along, across float32) {
	if r == 1 {
		return 0, 0
	}
	shift := float32(0.5)
	if row&1 == 1 {
		shift = 1.5
	}
	return (shift - float32(r)) * hexHeight, -0.375 * float32(r-1)
}

// setHexagonTriangles writes the fan of six triangles around
// the center vertex vi.
func setHexagonTriangles[S mesh.Stream](s S, vi, ti int) {
	for k := range 6 {
		s.SetTriangle(ti+k, math32.Tri(vi, vi+1+k, vi+1+(k+1)%6))
	}
}

// PointyHexagonGrid is a grid of hexagons with a corner pointing along Z,
// seven vertices and six triangles per cell.
// Each unit computes one row of cells.
type PointyHexagonGrid[S mesh.Stream] struct {
	Resolution int
}

func (g PointyHexagonGrid[S]) VertexCount() int { return 7 * g.Resolution * g.Resolution }
func (g PointyHexagonGrid[S]) IndexCount() int  { return 18 * g.Resolution * g.Resolution }
func (g PointyHexagonGrid[S]) JobLength() int   { return g.Resolution }

func (g PointyHexagonGrid[S]) Bounds() math32.Box3 {
	long, short := hexagonBounds(g.Resolution)
	return flatBounds(short, 0, long)
}

func (g PointyHexagonGrid[S]) Execute(z int, s S) {
	r := g.Resolution
	rf := float32(r)
	vi := 7 * r * z
	ti := 6 * r * z
	const h = hexHeight
	offX, offZ := hexCenterOffset(r, z)

	v := mesh.Vertex{Normal: planeNormal, Tangent: planeTangent}
	for x := 0; x < r; x, vi, ti = x+1, vi+7, ti+6 {
		cx := (2*h*float32(x) + offX) / rf
		cz := (0.75*float32(z) + offZ) / rf
		xl, xr := cx-h/rf, cx+h/rf

		v.Position = math32.Vec3(cx, 0, cz)
		v.UV0 = math32.Vec2(0.5, 0.5)
		s.SetVertex(vi, v)

		v.Position = math32.Vec3(cx, 0, cz-0.5/rf)
		v.UV0 = math32.Vec2(0.5, 0)
		s.SetVertex(vi+1, v)

		v.Position = math32.Vec3(xl, 0, cz-0.25/rf)
		v.UV0 = math32.Vec2(0.5-h, 0.25)
		s.SetVertex(vi+2, v)

		v.Position = math32.Vec3(xl, 0, cz+0.25/rf)
		v.UV0 = math32.Vec2(0.5-h, 0.75)
		s.SetVertex(vi+3, v)

		v.Position = math32.Vec3(cx, 0, cz+0.5/rf)
		v.UV0 = math32.Vec2(0.5, 1)
		s.SetVertex(vi+4, v)

		v.Position = math32.Vec3(xr, 0, cz+0.25/rf)
		v.UV0 = math32.Vec2(0.5+h, 0.75)
		s.SetVertex(vi+5, v)

		v.Position = math32.Vec3(xr, 0, cz-0.25/rf)
		v.UV0 = math32.Vec2(0.5+h, 0.25)
		s.SetVertex(vi+6, v)

		setHexagonTriangles(s, vi, ti)
	}
}

// FlatHexagonGrid is a grid of hexagons with a corner pointing along X,
// seven vertices and six triangles per cell.
// Each unit computes one column of cells.
type FlatHexagonGrid[S mesh.Stream] struct {
	Resolution int
}

func (g FlatHexagonGrid[S]) VertexCount() int { return 7 * g.Resolution * g.Resolution }
func (g FlatHexagonGrid[S]) IndexCount() int  { return 18 * g.Resolution * g.Resolution }
func (g FlatHexagonGrid[S]) JobLength() int   { return g.Resolution }

func (g FlatHexagonGrid[S]) Bounds() math32.Box3 {
	long, short := hexagonBounds(g.Resolution)
	return flatBounds(long, 0, short)
}

func (g FlatHexagonGrid[S]) Execute(x int, s S) {
	r := g.Resolution
	rf := float32(r)
	vi := 7 * r * x
	ti := 6 * r * x
	const h = hexHeight
	offZ, offX := hexCenterOffset(r, x)

	v := mesh.Vertex{Normal: planeNormal, Tangent: planeTangent}
	for z := 0; z < r; z, vi, ti = z+1, vi+7, ti+6 {
		cx := (0.75*float32(x) + offX) / rf
		cz := (2*h*float32(z) + offZ) / rf
		zt, zb := cz+h/rf, cz-h/rf

		v.Position = math32.Vec3(cx, 0, cz)
		v.UV0 = math32.Vec2(0.5, 0.5)
		s.SetVertex(vi, v)

		v.Position = math32.Vec3(cx-0.5/rf, 0, cz)
		v.UV0 = math32.Vec2(0, 0.5)
		s.SetVertex(vi+1, v)

		v.Position = math32.Vec3(cx-0.25/rf, 0, zt)
		v.UV0 = math32.Vec2(0.25, 0.5+h)
		s.SetVertex(vi+2, v)

		v.Position = math32.Vec3(cx+0.25/rf, 0, zt)
		v.UV0 = math32.Vec2(0.75, 0.5+h)
		s.SetVertex(vi+3, v)

		v.Position = math32.Vec3(cx+0.5/rf, 0, cz)
		v.UV0 = math32.Vec2(1, 0.5)
		s.SetVertex(vi+4, v)

		v.Position = math32.Vec3(cx+0.25/rf, 0, zb)
		v.UV0 = math32.Vec2(0.75, 0.5-h)
		s.SetVertex(vi+5, v)

		v.Position = math32.Vec3(cx-0.25/rf, 0, zb)
		v.UV0 = math32.Vec2(0.25, 0.5-h)
		s.SetVertex(vi+6, v)

		setHexagonTriangles(s, vi, ti)
	}
}
