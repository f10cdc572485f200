// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package meshtest provides a recording stream and invariant
// checks for testing mesh generators.
package meshtest

import (
	"sync/atomic"
	"testing"

	"cogentcore.org/procmesh/math32"
	"cogentcore.org/procmesh/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Record holds everything written to a [Recorder], including
// how many times each vertex and triangle slot was written.
type Record struct {
	Vertices       []mesh.Vertex
	Triangles      []math32.Vector3i
	VertexWrites   []atomic.Int32
	TriangleWrites []atomic.Int32
	Bounds         math32.Box3
	IndexCount     int
}

// Recorder is a stream that records every write, for checking the
// slot ownership of generators. It stores the full vertex.
type Recorder struct {
	*Record
}

// Setup allocates a new [Record] and the full vertex layout in buf.
// The record keeps its own copies of vertices and triangles, so buf
// is only sized, never written.
func (r *Recorder) Setup(buf *mesh.Buffers, vertexCount, indexCount int, bounds math32.Box3) {
	buf.Allocate(mesh.AllAttributes, vertexCount, indexCount)
	buf.Bounds = bounds
	r.Record = &Record{
		Vertices:       make([]mesh.Vertex, vertexCount),
		Triangles:      make([]math32.Vector3i, indexCount/3),
		VertexWrites:   make([]atomic.Int32, vertexCount),
		TriangleWrites: make([]atomic.Int32, indexCount/3),
		Bounds:         bounds,
		IndexCount:     indexCount,
	}
}

func (r Recorder) SetVertex(index int, v mesh.Vertex) {
	r.VertexWrites[index].Add(1)
	r.Vertices[index] = v
}

func (r Recorder) SetTriangle(index int, t math32.Vector3i) {
	r.TriangleWrites[index].Add(1)
	r.Triangles[index] = t
}

func (r Recorder) StoresNormals() bool  { return true }
func (r Recorder) StoresTangents() bool { return true }

// Collect runs the generator serially into a [Recorder] and returns the record.
// Serial execution keeps slots written by more than one unit free of data races,
// so the write counts report them reliably.
func Collect[G mesh.Generator[Recorder]](gen G) *Record {
	var rec Recorder
	var buf mesh.Buffers
	mesh.RunSerial[G, Recorder, *Recorder](gen, &rec, &buf)
	return rec.Record
}

// CheckInvariants asserts the structural invariants every generator must
// satisfy: each vertex and triangle slot is written exactly once, all
// indices are in range, no triangle has zero area, and every triangle
// winds consistently with the normal of its first vertex.
func CheckInvariants(t *testing.T, rec *Record) {
	t.Helper()
	require.NotNil(t, rec)
	assert.Equal(t, len(rec.Triangles)*3, rec.IndexCount, "index count is not a multiple of 3")
	for i := range rec.VertexWrites {
		if n := rec.VertexWrites[i].Load(); n != 1 {
			assert.Failf(t, "vertex written wrong number of times", "vertex %d written %d times", i, n)
			return
		}
	}
	for i := range rec.TriangleWrites {
		if n := rec.TriangleWrites[i].Load(); n != 1 {
			assert.Failf(t, "triangle written wrong number of times", "triangle %d written %d times", i, n)
			return
		}
	}
	nv := int32(len(rec.Vertices))
	for i, tri := range rec.Triangles {
		if tri.Min() < 0 || tri.Max() >= nv {
			assert.Failf(t, "index out of range", "triangle %d %v with %d vertices", i, tri, nv)
			return
		}
		a := rec.Vertices[tri.X]
		c := math32.Cross(a.Position, rec.Vertices[tri.Y].Position, rec.Vertices[tri.Z].Position)
		if c.Length() < 1e-8 {
			assert.Failf(t, "zero-area triangle", "triangle %d %v", i, tri)
			return
		}
		if d := a.Normal.Dot(c); d < -1e-6 {
			assert.Failf(t, "inconsistent winding", "triangle %d %v: normal . cross = %g", i, tri, d)
			return
		}
	}
}

// CheckUnitSphere asserts that every vertex position has unit length.
func CheckUnitSphere(t *testing.T, rec *Record) {
	t.Helper()
	for i, v := range rec.Vertices {
		if d := math32.Abs(v.Position.Length() - 1); d > 1e-5 {
			assert.Failf(t, "vertex not on unit sphere", "vertex %d %v has length %g", i, v.Position, v.Position.Length())
			return
		}
	}
}

// CheckBounds asserts that every vertex position lies within the
// reported bounds, expanded by the given tolerance.
func CheckBounds(t *testing.T, rec *Record, tol float32) {
	t.Helper()
	for i, v := range rec.Vertices {
		if !rec.Bounds.ContainsPoint(v.Position, tol) {
			assert.Failf(t, "vertex outside bounds", "vertex %d %v outside %v", i, v.Position, rec.Bounds)
			return
		}
	}
}

// CheckUnitAttributes asserts that normals and tangents have unit length,
// tangents are perpendicular to normals, and the bitangent sign is -1.
func CheckUnitAttributes(t *testing.T, rec *Record) {
	t.Helper()
	for i, v := range rec.Vertices {
		tan := v.Tangent.Vector3()
		if math32.Abs(v.Normal.Length()-1) > 1e-4 || math32.Abs(tan.Length()-1) > 1e-4 ||
			math32.Abs(v.Normal.Dot(tan)) > 1e-3 || v.Tangent.W != -1 {
			assert.Failf(t, "invalid normal or tangent", "vertex %d: normal %v tangent %v", i, v.Normal, v.Tangent)
			return
		}
	}
}
