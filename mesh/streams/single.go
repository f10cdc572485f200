// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package streams

import (
	"cogentcore.org/procmesh/math32"
	"cogentcore.org/procmesh/mesh"
)

// Single stores every vertex attribute in one interleaved array.
type Single struct {
	vertices []mesh.Vertex
	triangles
}

// Setup allocates the full vertex layout in buf and points the stream at it.
func (s *Single) Setup(buf *mesh.Buffers, vertexCount, indexCount int, bounds math32.Box3) {
	buf.Allocate(mesh.AllAttributes, vertexCount, indexCount)
	buf.Bounds = bounds
	s.vertices = buf.Vertices
	s.triangles = newTriangles(buf)
}

func (s Single) SetVertex(index int, v mesh.Vertex) {
	s.vertices[index] = v
}

func (s Single) SetTriangle(index int, t math32.Vector3i) {
	s.set(index, t)
}

func (s Single) StoresNormals() bool  { return true }
func (s Single) StoresTangents() bool { return true }
