// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package generators

import (
	"cogentcore.org/procmesh/math32"
	"cogentcore.org/procmesh/mesh"
)

// UVSphere is a unit sphere made of 4·Resolution meridians and
// 2·Resolution latitude bands. Every meridian has its own copy of
// both poles, and the seam meridian at longitude zero is duplicated
// so that texture coordinates run from 0 to 1 around the sphere.
// Unit 0 writes the seam; unit u writes meridian u and the
// triangle strip between it and the previous meridian.
type UVSphere[S mesh.Stream] struct {
	Resolution int
}

func (g UVSphere[S]) resolutionU() int { return 4 * g.Resolution }
func (g UVSphere[S]) resolutionV() int { return 2 * g.Resolution }

func (g UVSphere[S]) VertexCount() int {
	return (g.resolutionU()+1)*(g.resolutionV()+1) - 2
}

func (g UVSphere[S]) IndexCount() int {
	return 6 * g.resolutionU() * (g.resolutionV() - 1)
}

func (g UVSphere[S]) JobLength() int      { return g.resolutionU() + 1 }
func (g UVSphere[S]) Bounds() math32.Box3 { return sphereBounds }

func (g UVSphere[S]) Execute(u int, s S) {
	if u == 0 {
		g.executeSeam(s)
		return
	}
	g.executeRegular(u, s)
}

// executeSeam writes the interior vertices of the seam meridian,
// which has no pole copies of its own.
func (g UVSphere[S]) executeSeam(s S) {
	rv := g.resolutionV()
	for v := 1; v < rv; v++ {
		z, y := math32.Sincos(math32.Pi + math32.Pi*float32(v)/float32(rv))
		s.SetVertex(v-1, seamVertex(math32.Vec3(0, y, z), float32(v)/float32(rv)))
	}
}

func (g UVSphere[S]) executeRegular(u int, s S) {
	ru := g.resolutionU()
	rv := g.resolutionV()
	vi := (rv+1)*u - 2
	ti := 2 * (rv - 1) * (u - 1)

	// pole copies use the tangent halfway between the two meridians
	var v mesh.Vertex
	tz, tx := math32.Sincos(2 * math32.Pi * (float32(u) - 0.5) / float32(ru))
	v.Tangent = math32.Vec4(tx, 0, tz, -1)
	v.UV0 = math32.Vec2((float32(u)-0.5)/float32(ru), 0)
	v.Position, v.Normal = down, down
	s.SetVertex(vi, v)

	v.Position, v.Normal = up, up
	v.UV0.Y = 1
	s.SetVertex(vi+rv, v)
	vi++

	sine, cosine := math32.Sincos(2 * math32.Pi * float32(u) / float32(ru))
	v.Tangent.X, v.Tangent.Z = cosine, sine
	v.UV0.X = float32(u) / float32(ru)

	shiftLeft := -1 - rv
	if u == 1 {
		shiftLeft = -rv
	}

	s.SetTriangle(ti, math32.Tri(vi-1, vi+shiftLeft, vi))
	ti++

	for row := 1; row < rv; row, vi = row+1, vi+1 {
		radius, y := math32.Sincos(math32.Pi + math32.Pi*float32(row)/float32(rv))
		v.Position = math32.Vec3(-sine*radius, y, cosine*radius)
		v.Normal = v.Position
		v.UV0.Y = float32(row) / float32(rv)
		s.SetVertex(vi, v)

		if row > 1 {
			s.SetTriangle(ti, math32.Tri(vi+shiftLeft-1, vi+shiftLeft, vi-1))
			s.SetTriangle(ti+1, math32.Tri(vi-1, vi+shiftLeft, vi))
			ti += 2
		}
	}

	s.SetTriangle(ti, math32.Tri(vi+shiftLeft-1, vi, vi-1))
}
