// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package streams

import (
	"cogentcore.org/procmesh/math32"
	"cogentcore.org/procmesh/mesh"
)

// Position stores vertex positions only, dropping normals,
// tangents and texture coordinates.
type Position struct {
	positions []math32.Vector3
	triangles
}

// Setup allocates the position-only layout in buf and points the stream at it.
func (s *Position) Setup(buf *mesh.Buffers, vertexCount, indexCount int, bounds math32.Box3) {
	buf.Allocate(mesh.PositionOnly, vertexCount, indexCount)
	buf.Bounds = bounds
	s.positions = buf.Positions
	s.triangles = newTriangles(buf)
}

func (s Position) SetVertex(index int, v mesh.Vertex) {
	s.positions[index] = v.Position
}

func (s Position) SetTriangle(index int, t math32.Vector3i) {
	s.set(index, t)
}

func (s Position) StoresNormals() bool  { return false }
func (s Position) StoresTangents() bool { return false }
