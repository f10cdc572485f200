// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshio

import (
	"bytes"
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"cogentcore.org/procmesh/base/iox/yamlx"
	"cogentcore.org/procmesh/base/tolassert"
	"cogentcore.org/procmesh/mesh"
	"cogentcore.org/procmesh/mesh/generators"
	"cogentcore.org/procmesh/mesh/streams"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countPrefix(lines []string, prefix string) int {
	n := 0
	for _, l := range lines {
		if strings.HasPrefix(l, prefix) {
			n++
		}
	}
	return n
}

func TestWriteOBJ(t *testing.T) {
	var buf mesh.Buffers
	mesh.Run(generators.SquareGrid[streams.Single]{Resolution: 1}, &streams.Single{}, &buf)

	var b bytes.Buffer
	require.NoError(t, WriteOBJ(&b, &buf, "SquareGrid", "Flat"))
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	assert.Equal(t, "o SquareGrid", lines[0])
	assert.Equal(t, "v -0.5 0 -0.5", lines[1])
	assert.Equal(t, 4, countPrefix(lines, "v "))
	assert.Equal(t, 4, countPrefix(lines, "vt "))
	assert.Equal(t, 4, countPrefix(lines, "vn "))
	assert.Contains(t, lines, "usemtl Flat")
	assert.Contains(t, lines, "vn 0 1 0")
	assert.Equal(t, 2, countPrefix(lines, "f "))
	assert.Equal(t, "f 1/1/1 3/3/3 2/2/2", lines[len(lines)-2])
	assert.Equal(t, "f 2/2/2 3/3/3 4/4/4", lines[len(lines)-1])
}

func TestWriteOBJPositionOnly(t *testing.T) {
	var buf mesh.Buffers
	mesh.Run(generators.Icosphere[streams.Position]{Resolution: 1}, &streams.Position{}, &buf)

	var b bytes.Buffer
	require.NoError(t, WriteOBJ(&b, &buf, "", ""))
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	assert.Equal(t, 12, countPrefix(lines, "v "))
	assert.Zero(t, countPrefix(lines, "vt "))
	assert.Zero(t, countPrefix(lines, "vn "))
	assert.Zero(t, countPrefix(lines, "usemtl"))
	assert.Zero(t, countPrefix(lines, "o "))
	assert.Equal(t, 20, countPrefix(lines, "f "))
	for _, l := range lines[12:] {
		assert.NotContains(t, l, "/")
	}
}

func TestWriteSTL(t *testing.T) {
	var buf mesh.Buffers
	mesh.Run(generators.SquareGrid[streams.Position]{Resolution: 1}, &streams.Position{}, &buf)

	var b bytes.Buffer
	require.NoError(t, WriteSTL(&b, &buf))
	data := b.Bytes()
	require.Len(t, data, 84+2*50)
	assert.Equal(t, uint32(2), binary.LittleEndian.Uint32(data[80:84]))

	float := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(data[off:]))
	}
	for tri := range 2 {
		off := 84 + 50*tri
		assert.Equal(t, []float32{0, 1, 0}, []float32{float(off), float(off + 4), float(off + 8)})
		assert.Equal(t, uint16(0), binary.LittleEndian.Uint16(data[off+48:]))
	}
	assert.Equal(t, []float32{-0.5, 0, -0.5}, []float32{float(96), float(100), float(104)})
}

func TestStats(t *testing.T) {
	var buf mesh.Buffers
	mesh.Run(generators.SquareGrid[streams.Single]{Resolution: 2}, &streams.Single{}, &buf)

	st := NewStats(&buf)
	st.Type = "SquareGrid"
	st.Resolution = 2
	assert.Equal(t, 16, st.Vertices)
	assert.Equal(t, 8, st.Triangles)
	assert.Equal(t, 16, st.IndexBits)
	assert.Equal(t, "Position|Normal|Tangent|UV0", st.Attributes)
	assert.Equal(t, [3]float32{1, 0, 1}, st.Bounds.Size)
	assert.Equal(t, st.Bounds, st.Extent)
	tolassert.EqualTol(t, 1, st.SurfaceArea, 1e-5)
	assert.Equal(t, float32(2), st.CacheMissRatio) // 4 new vertices every 2 triangles

	var b bytes.Buffer
	require.NoError(t, WriteStats(&b, st))
	assert.Contains(t, b.String(), "type: SquareGrid\n")
	assert.Contains(t, b.String(), "vertices: 16\n")
	assert.Contains(t, b.String(), "index_bits: 16\n")

	var back Stats
	require.NoError(t, yamlx.ReadBytes(&back, b.Bytes()))
	assert.Equal(t, *st, back)
}

func TestStatsWideIndices(t *testing.T) {
	var buf mesh.Buffers
	mesh.Run(generators.SquareGrid[streams.Position]{Resolution: 129}, &streams.Position{}, &buf)
	st := NewStats(&buf)
	assert.Equal(t, 32, st.IndexBits)
	assert.Equal(t, "Position", st.Attributes)
}
