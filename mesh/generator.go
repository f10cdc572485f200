// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "cogentcore.org/procmesh/math32"

// Generator computes a procedural mesh as a set of independent units.
// All methods other than Execute are pure functions of the generator's
// configuration.
type Generator[S Stream] interface {

	// VertexCount returns the exact number of vertices produced.
	VertexCount() int

	// IndexCount returns the exact number of triangle indices produced,
	// three per triangle.
	IndexCount() int

	// JobLength returns the number of independent units of work.
	JobLength() int

	// Bounds returns the bounding box of the mesh.
	Bounds() math32.Box3

	// Execute computes unit i, writing only the vertex and triangle
	// slots that unit owns.
	Execute(i int, s S)
}

// Stream is the write-only destination of a generator.
// Streams are small values wrapping preallocated buffers,
// so they are passed to Execute by value.
type Stream interface {

	// SetVertex stores vertex v at the given slot, keeping only
	// the attributes the stream stores.
	SetVertex(index int, v Vertex)

	// SetTriangle stores triangle t at the given triangle slot.
	SetTriangle(index int, t math32.Vector3i)

	// StoresNormals returns whether the stream keeps vertex normals.
	StoresNormals() bool

	// StoresTangents returns whether the stream keeps vertex tangents.
	StoresTangents() bool
}

// StreamSetup is the pointer constraint of a stream type S:
// Setup allocates the destination buffers and points the stream at them.
type StreamSetup[S any] interface {
	*S
	Setup(buf *Buffers, vertexCount, indexCount int, bounds math32.Box3)
}
