// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"fmt"

	"cogentcore.org/procmesh/math32"
)

// MaxIndex16Vertices is the largest vertex count addressable
// with 16-bit indices.
const MaxIndex16Vertices = 1 << 16

// Buffers is the destination of a mesh job: flat vertex and index
// arrays sized once by a stream's Setup method. Exactly one of
// Vertices or Positions is allocated, as is exactly one of
// Index16 or Index32.
type Buffers struct {

	// Vertices holds the full vertex layout.
	Vertices []Vertex

	// Positions holds the position-only layout.
	Positions []math32.Vector3

	// Index16 holds 16-bit triangle indices, three per triangle.
	Index16 []uint16

	// Index32 holds 32-bit triangle indices, three per triangle.
	Index32 []uint32

	// Bounds is the bounding box reported by the generator.
	Bounds math32.Box3

	// Attributes are the vertex attributes stored in the buffers.
	Attributes Attributes
}

// Allocate sizes the buffers for the given attribute set and counts,
// replacing any previous contents. 16-bit indices are used when
// every vertex is addressable with them.
func (b *Buffers) Allocate(attrs Attributes, vertexCount, indexCount int) {
	*b = Buffers{Attributes: attrs | Position}
	if b.Attributes == PositionOnly {
		b.Positions = make([]math32.Vector3, vertexCount)
	} else {
		b.Vertices = make([]Vertex, vertexCount)
	}
	if vertexCount <= MaxIndex16Vertices {
		b.Index16 = make([]uint16, indexCount)
	} else {
		b.Index32 = make([]uint32, indexCount)
	}
}

// VertexCount returns the number of vertices.
func (b *Buffers) VertexCount() int {
	if b.Positions != nil {
		return len(b.Positions)
	}
	return len(b.Vertices)
}

// IndexCount returns the number of indices.
func (b *Buffers) IndexCount() int {
	if b.Index32 != nil {
		return len(b.Index32)
	}
	return len(b.Index16)
}

// TriangleCount returns the number of triangles.
func (b *Buffers) TriangleCount() int {
	return b.IndexCount() / 3
}

// Wide returns whether the buffers use 32-bit indices.
func (b *Buffers) Wide() bool {
	return b.Index32 != nil
}

// StoresNormals returns whether vertex normals are stored.
func (b *Buffers) StoresNormals() bool {
	return b.Attributes.Has(Normal)
}

// StoresTangents returns whether vertex tangents are stored.
func (b *Buffers) StoresTangents() bool {
	return b.Attributes.Has(Tangent)
}

// StoresUV0 returns whether texture coordinates are stored.
func (b *Buffers) StoresUV0() bool {
	return b.Attributes.Has(UV0)
}

// Position returns the position of vertex i.
func (b *Buffers) Position(i int) math32.Vector3 {
	if b.Positions != nil {
		return b.Positions[i]
	}
	return b.Vertices[i].Position
}

// Vertex returns vertex i. Attributes that are not stored are zero.
func (b *Buffers) Vertex(i int) Vertex {
	if b.Positions != nil {
		return Vertex{Position: b.Positions[i]}
	}
	return b.Vertices[i]
}

// Index returns index i.
func (b *Buffers) Index(i int) int {
	if b.Index32 != nil {
		return int(b.Index32[i])
	}
	return int(b.Index16[i])
}

// SetIndex sets index i to the given vertex index.
func (b *Buffers) SetIndex(i, v int) {
	if b.Index32 != nil {
		b.Index32[i] = uint32(v)
		return
	}
	b.Index16[i] = uint16(v)
}

// Triangle returns the vertex indices of triangle t.
func (b *Buffers) Triangle(t int) math32.Vector3i {
	i := 3 * t
	return math32.Tri(b.Index(i), b.Index(i+1), b.Index(i+2))
}

// TriangleVertices returns the positions of triangle t.
func (b *Buffers) TriangleVertices(t int) math32.Triangle {
	tri := b.Triangle(t)
	return math32.NewTriangle(b.Position(int(tri.X)), b.Position(int(tri.Y)), b.Position(int(tri.Z)))
}

// ExpandToVertices converts a position-only layout into the full
// vertex layout, keeping the positions. Attributes other than
// Position remain unset until the caller adds them.
func (b *Buffers) ExpandToVertices() {
	if b.Positions == nil {
		return
	}
	b.Vertices = make([]Vertex, len(b.Positions))
	for i, p := range b.Positions {
		b.Vertices[i].Position = p
	}
	b.Positions = nil
}

// ComputeBounds returns the bounding box of the stored positions.
func (b *Buffers) ComputeBounds() math32.Box3 {
	bb := math32.B3Empty()
	for i := range b.VertexCount() {
		bb.ExpandByPoint(b.Position(i))
	}
	return bb
}

// String returns a short summary of the buffer sizes and layout.
func (b *Buffers) String() string {
	bits := 16
	if b.Wide() {
		bits = 32
	}
	return fmt.Sprintf("%d vertices [%v], %d triangles (%d-bit indices)", b.VertexCount(), b.Attributes, b.TriangleCount(), bits)
}
