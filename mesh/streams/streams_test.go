// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package streams

import (
	"testing"

	"cogentcore.org/procmesh/math32"
	"cogentcore.org/procmesh/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVertex(i int) mesh.Vertex {
	f := float32(i)
	return mesh.Vertex{
		Position: math32.Vec3(f, 1, 2),
		Normal:   math32.Up,
		Tangent:  math32.Vec4(1, 0, 0, -1),
		UV0:      math32.Vec2(f/10, 0.5),
	}
}

func TestSingle(t *testing.T) {
	var buf mesh.Buffers
	var s Single
	bounds := math32.B3(-1, -1, -1, 1, 1, 1)
	s.Setup(&buf, 4, 6, bounds)
	assert.True(t, s.StoresNormals())
	assert.True(t, s.StoresTangents())
	assert.Equal(t, bounds, buf.Bounds)

	for i := range 4 {
		s.SetVertex(i, testVertex(i))
	}
	s.SetTriangle(0, math32.Tri(0, 1, 2))
	s.SetTriangle(1, math32.Tri(2, 1, 3))

	assert.Equal(t, testVertex(3), buf.Vertex(3))
	assert.Equal(t, []uint16{0, 1, 2, 2, 1, 3}, buf.Index16)
	assert.Equal(t, math32.Tri(2, 1, 3), buf.Triangle(1))
}

func TestPosition(t *testing.T) {
	var buf mesh.Buffers
	var s Position
	s.Setup(&buf, 3, 3, math32.Box3{})
	assert.False(t, s.StoresNormals())
	assert.False(t, s.StoresTangents())
	assert.False(t, buf.StoresNormals())
	assert.False(t, buf.StoresUV0())

	s.SetVertex(1, testVertex(5))
	assert.Equal(t, math32.Vec3(5, 1, 2), buf.Positions[1])
	assert.Equal(t, mesh.Vertex{Position: math32.Vec3(5, 1, 2)}, buf.Vertex(1))
	assert.Nil(t, buf.Vertices)
}

func TestIndexWidth(t *testing.T) {
	var buf mesh.Buffers
	var s Position
	s.Setup(&buf, mesh.MaxIndex16Vertices, 3, math32.Box3{})
	require.False(t, buf.Wide())
	s.SetTriangle(0, math32.Tri(0, 1, mesh.MaxIndex16Vertices-1))
	assert.Equal(t, uint16(0xffff), buf.Index16[2])

	s.Setup(&buf, mesh.MaxIndex16Vertices+1, 3, math32.Box3{})
	require.True(t, buf.Wide())
	s.SetTriangle(0, math32.Tri(0, 1, mesh.MaxIndex16Vertices))
	assert.Equal(t, uint32(mesh.MaxIndex16Vertices), buf.Index32[2])
	assert.Equal(t, mesh.MaxIndex16Vertices, buf.Index(2))
}

func TestOutOfRangeWritesPanic(t *testing.T) {
	var buf mesh.Buffers
	var s Single
	s.Setup(&buf, 3, 3, math32.Box3{})
	assert.Panics(t, func() { s.SetVertex(3, mesh.Vertex{}) })
	assert.Panics(t, func() { s.SetTriangle(1, math32.Tri(0, 1, 2)) })
}
