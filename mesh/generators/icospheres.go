// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package generators

import (
	"cogentcore.org/procmesh/math32"
	"cogentcore.org/procmesh/mesh"
)

// icoRhombus is one of the ten rhombi formed by pairs of adjacent
// icosahedron faces. Lattice point (a, b) of a rhombus with resolution r
// runs from bottom (0, 0) to right (r, 0), left (0, r) and top (r, r).
type icoRhombus struct {
	id                       int
	top, left, right, bottom math32.Vector3
}

// icoRhombi are the five northern rhombi, each spanning from the north
// pole to a lower ring corner, followed by the five southern rhombi,
// each spanning from an upper ring corner to the south pole.
var icoRhombi = func() [10]icoRhombus {
	var upper, lower [5]math32.Vector3
	h := 1 / math32.Sqrt(5)
	r := 2 * h
	for k := range 5 {
		su, cu := math32.Sincos(2 * math32.Pi * float32(k) / 5)
		sl, cl := math32.Sincos(2 * math32.Pi * (float32(k) + 0.5) / 5)
		upper[k] = math32.Vec3(r*cu, h, r*su)
		lower[k] = math32.Vec3(r*cl, -h, r*sl)
	}
	var rh [10]icoRhombus
	for k := range 5 {
		rh[k] = icoRhombus{id: k, top: up, left: upper[k], right: upper[(k+1)%5], bottom: lower[k]}
		rh[k+5] = icoRhombus{id: k + 5, top: upper[(k+1)%5], left: lower[k], right: lower[(k+1)%5], bottom: down}
	}
	return rh
}()

// icoLattice addresses the shared vertices of an icosahedron sphere.
// Vertex 0 is the north pole and vertex 1 the south pole. Each northern
// rhombus owns every lattice point except those on its edge from the
// right corner to the pole; each southern rhombus owns its interior and
// the edge from the south pole to its right corner, without the corners.
// All other lattice points are addressed through the neighbor that owns them.
type icoLattice int

func (r icoLattice) index(id, a, b int) int {
	n := int(r)
	if id < 5 {
		switch {
		case a == n && b == n:
			return 0
		case a == n:
			return r.index((id+1)%5, b, n)
		}
		return 2 + id*n*(n+1) + a*(n+1) + b
	}
	k := id - 5
	switch {
	case a == 0 && b == 0:
		return 1
	case b == n:
		return r.index(k, a, 0)
	case a == n:
		return r.index((k+1)%5, 0, b)
	case a == 0:
		return r.index((k+4)%5+5, b, 0)
	}
	return 2 + 5*n*(n+1) + k*n*(n-1) + (a-1)*n + b
}

// ownedRows returns the range of lattice rows b that rhombus id writes
// in column a.
func (r icoLattice) ownedRows(id, a int) (from, to int) {
	n := int(r)
	switch {
	case id < 5:
		return 0, n + 1
	case a == 0:
		return 0, 0
	}
	return 0, n
}

// icoPoint computes the position of lattice point (a, b) of a rhombus.
type icoPoint interface {
	point(rh *icoRhombus, a, b int) math32.Vector3
}

func icoVertexCount(r int) int { return 10*r*r + 2 }
func icoIndexCount(r int) int  { return 60 * r * r }
func icoJobLength(r int) int   { return 10 * r }

// executeIcosphere runs unit i of an icosahedron sphere: column i/10 of
// rhombus i%10, writing the vertices of the column it owns and the
// triangles between that column and the next. Unit 0 also writes the poles.
func executeIcosphere[S mesh.Stream, P icoPoint](r int, pos P, i int, s S) {
	lat := icoLattice(r)
	id := i % 10
	a := i / 10
	rh := &icoRhombi[id]

	if i == 0 {
		tangent := math32.Vec4(1, 0, 0, -1)
		s.SetVertex(0, mesh.Vertex{Position: up, Normal: up, Tangent: tangent, UV0: math32.Vec2(0.5, 1)})
		s.SetVertex(1, mesh.Vertex{Position: down, Normal: down, Tangent: tangent, UV0: math32.Vec2(0.5, 0)})
	}

	from, to := lat.ownedRows(id, a)
	for b := from; b < to; b++ {
		s.SetVertex(lat.index(id, a, b), sphereVertex(pos.point(rh, a, b)))
	}

	ti := 2 * r * (r*id + a)
	for b := 0; b < r; b, ti = b+1, ti+2 {
		i00 := lat.index(id, a, b)
		i01 := lat.index(id, a, b+1)
		i10 := lat.index(id, a+1, b)
		i11 := lat.index(id, a+1, b+1)
		s.SetTriangle(ti, math32.Tri(i00, i01, i10))
		s.SetTriangle(ti+1, math32.Tri(i10, i01, i11))
	}
}

// Icosphere is an icosahedron with every face subdivided into
// Resolution² triangles, projected onto the unit sphere by normalizing
// points interpolated linearly across the faces. All vertices are shared,
// including across the texture seam, so texture coordinates wrap there.
type Icosphere[S mesh.Stream] struct {
	Resolution int
}

func (g Icosphere[S]) VertexCount() int    { return icoVertexCount(g.Resolution) }
func (g Icosphere[S]) IndexCount() int     { return icoIndexCount(g.Resolution) }
func (g Icosphere[S]) JobLength() int      { return icoJobLength(g.Resolution) }
func (g Icosphere[S]) Bounds() math32.Box3 { return sphereBounds }

func (g Icosphere[S]) Execute(i int, s S) {
	executeIcosphere(g.Resolution, linearIco(g.Resolution), i, s)
}

// linearIco interpolates linearly within the two faces of a rhombus.
type linearIco int

func (r linearIco) point(rh *icoRhombus, a, b int) math32.Vector3 {
	n := int(r)
	rf := float32(r)
	if a+b <= n {
		p := rh.bottom.Add(rh.right.Sub(rh.bottom).MulScalar(float32(a) / rf))
		return p.Add(rh.left.Sub(rh.bottom).MulScalar(float32(b) / rf)).Normal()
	}
	p := rh.top.Add(rh.left.Sub(rh.top).MulScalar(float32(n-a) / rf))
	return p.Add(rh.right.Sub(rh.top).MulScalar(float32(n-b) / rf)).Normal()
}

// GeoIcosphere is an icosahedron sphere whose vertices are placed by
// nested spherical interpolation along the face edges and then across,
// giving more uniformly sized triangles.
type GeoIcosphere[S mesh.Stream] struct {
	Resolution int
}

func (g GeoIcosphere[S]) VertexCount() int    { return icoVertexCount(g.Resolution) }
func (g GeoIcosphere[S]) IndexCount() int     { return icoIndexCount(g.Resolution) }
func (g GeoIcosphere[S]) JobLength() int      { return icoJobLength(g.Resolution) }
func (g GeoIcosphere[S]) Bounds() math32.Box3 { return sphereBounds }

func (g GeoIcosphere[S]) Execute(i int, s S) {
	executeIcosphere(g.Resolution, geodesicIco(g.Resolution), i, s)
}

// geodesicIco rotates along great circles.
type geodesicIco int

func (r geodesicIco) point(rh *icoRhombus, a, b int) math32.Vector3 {
	n := int(r)
	rf := float32(r)
	if h := a + b; h <= n {
		if h == 0 {
			return rh.bottom
		}
		f := float32(h) / rf
		pRight := rh.bottom.Slerp(rh.right, f)
		pLeft := rh.bottom.Slerp(rh.left, f)
		return pRight.Slerp(pLeft, float32(b)/float32(h))
	}
	h := 2*n - a - b
	f := float32(h) / rf
	pRight := rh.top.Slerp(rh.right, f)
	pLeft := rh.top.Slerp(rh.left, f)
	return pRight.Slerp(pLeft, float32(n-a)/float32(h))
}
