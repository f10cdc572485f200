// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshproc

import (
	"cogentcore.org/procmesh/math32"
	"cogentcore.org/procmesh/mesh"
)

// RecalculateTangents computes vertex tangents for normal mapping from the
// texture coordinate gradients of the triangles using each vertex,
// orthogonalized against the vertex normal. The bitangent sign is stored in W.
// Where texture coordinates are missing or degenerate, an arbitrary unit
// vector perpendicular to the normal is used with sign -1.
// Normals are recalculated first if the buffers do not store them.
func RecalculateTangents(buf *mesh.Buffers) {
	if !buf.StoresNormals() {
		RecalculateNormals(buf)
	}
	vs := buf.Vertices
	tangents := make([]math32.Vector3, len(vs))
	bitangents := make([]math32.Vector3, len(vs))

	if buf.StoresUV0() {
		for t := range buf.TriangleCount() {
			tri := buf.Triangle(t)
			i0, i1, i2 := int(tri.X), int(tri.Y), int(tri.Z)
			v0, v1, v2 := &vs[i0], &vs[i1], &vs[i2]

			e1 := v1.Position.Sub(v0.Position)
			e2 := v2.Position.Sub(v0.Position)
			d1 := v1.UV0.Sub(v0.UV0)
			d2 := v2.UV0.Sub(v0.UV0)

			denom := d1.Cross(d2)
			if denom == 0 {
				continue // degenerate texture mapping
			}
			r := 1 / denom
			tan := e1.MulScalar(d2.Y * r).Sub(e2.MulScalar(d1.Y * r))
			bit := e2.MulScalar(d1.X * r).Sub(e1.MulScalar(d2.X * r))
			for _, i := range [3]int{i0, i1, i2} {
				tangents[i].SetAdd(tan)
				bitangents[i].SetAdd(bit)
			}
		}
	}

	for i := range vs {
		n := vs[i].Normal
		t := tangents[i]
		t = t.Sub(n.MulScalar(n.Dot(t)))
		if t.LengthSquared() < 1e-12 {
			vs[i].Tangent = math32.Vector4FromVector3(perpendicular(n), -1)
			continue
		}
		t = t.Normal()
		w := float32(-1)
		if b := bitangents[i]; b != (math32.Vector3{}) && n.Cross(t).Dot(b) > 0 {
			w = 1
		}
		vs[i].Tangent = math32.Vector4FromVector3(t, w)
	}
	buf.Attributes |= mesh.Tangent
}

// perpendicular returns a unit vector perpendicular to the unit vector n,
// preferring the X axis.
func perpendicular(n math32.Vector3) math32.Vector3 {
	var t math32.Vector3
	if math32.Abs(n.X) < 0.9 {
		t = math32.Right.Sub(n.MulScalar(n.X))
	} else {
		t = math32.Up.Sub(n.MulScalar(n.Y))
	}
	return t.Normal()
}
