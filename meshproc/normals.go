// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package meshproc provides post-processing of generated meshes:
// recomputing normals and tangents that a stream did not store, and
// reordering indices and vertices for the GPU vertex cache.
package meshproc

import (
	"cogentcore.org/procmesh/math32"
	"cogentcore.org/procmesh/mesh"
)

// RecalculateNormals computes smooth vertex normals by accumulating the
// area-weighted normals of all triangles using each vertex. Position-only
// buffers are converted to the full vertex layout first. Vertices not used
// by any triangle get the normal of their position, or +Y at the origin.
func RecalculateNormals(buf *mesh.Buffers) {
	buf.ExpandToVertices()
	vs := buf.Vertices
	for i := range vs {
		vs[i].Normal = math32.Vector3{}
	}
	for t := range buf.TriangleCount() {
		tri := buf.Triangle(t)
		a, b, c := int(tri.X), int(tri.Y), int(tri.Z)
		n := math32.Cross(vs[a].Position, vs[b].Position, vs[c].Position)
		vs[a].Normal.SetAdd(n)
		vs[b].Normal.SetAdd(n)
		vs[c].Normal.SetAdd(n)
	}
	for i := range vs {
		n := vs[i].Normal.Normal()
		if n == (math32.Vector3{}) {
			n = vs[i].Position.Normal()
		}
		if n == (math32.Vector3{}) {
			n = math32.Up
		}
		vs[i].Normal = n
	}
	buf.Attributes |= mesh.Normal
}
