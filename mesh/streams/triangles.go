// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package streams provides the value-type streams that generators
// write into: [Single] for the full interleaved vertex and [Position]
// for positions only. Both pick 16-bit indices whenever the vertex
// count allows it.
package streams

import (
	"fmt"

	"cogentcore.org/procmesh/math32"
	"cogentcore.org/procmesh/mesh"
)

// triangles writes triangle indices into whichever index
// buffer the destination uses.
type triangles struct {
	index16     []uint16
	index32     []uint32
	vertexCount int
}

func newTriangles(buf *mesh.Buffers) triangles {
	return triangles{index16: buf.Index16, index32: buf.Index32, vertexCount: buf.VertexCount()}
}

func (t triangles) set(index int, tri math32.Vector3i) {
	if debugChecks {
		if tri.Min() < 0 || int(tri.Max()) >= t.vertexCount {
			panic(fmt.Sprintf("streams: triangle %d %v out of range for %d vertices", index, tri, t.vertexCount))
		}
	}
	i := 3 * index
	if t.index32 != nil {
		t.index32[i] = uint32(tri.X)
		t.index32[i+1] = uint32(tri.Y)
		t.index32[i+2] = uint32(tri.Z)
		return
	}
	t.index16[i] = uint16(tri.X)
	t.index16[i+1] = uint16(tri.Y)
	t.index16[i+2] = uint16(tri.Z)
}
