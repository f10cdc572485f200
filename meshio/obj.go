// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package meshio writes generated mesh buffers to common interchange
// formats and summarizes them as stats reports.
package meshio

import (
	"bufio"
	"fmt"
	"io"

	"cogentcore.org/procmesh/mesh"
)

// WriteOBJ writes buf as a Wavefront OBJ object with the given object and
// material names. Texture coordinates and normals are written only if
// the buffers store them. Indices in the output are 1-based.
func WriteOBJ(w io.Writer, buf *mesh.Buffers, name, material string) error {
	bw := bufio.NewWriter(w)
	if name != "" {
		fmt.Fprintf(bw, "o %s\n", name)
	}
	nv := buf.VertexCount()
	for i := range nv {
		p := buf.Position(i)
		fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, p.Z)
	}
	uvs := buf.StoresUV0()
	if uvs {
		for _, v := range buf.Vertices {
			fmt.Fprintf(bw, "vt %g %g\n", v.UV0.X, v.UV0.Y)
		}
	}
	norms := buf.StoresNormals()
	if norms {
		for _, v := range buf.Vertices {
			fmt.Fprintf(bw, "vn %g %g %g\n", v.Normal.X, v.Normal.Y, v.Normal.Z)
		}
	}
	if material != "" {
		fmt.Fprintf(bw, "usemtl %s\n", material)
	}
	for t := range buf.TriangleCount() {
		tri := buf.Triangle(t)
		bw.WriteString("f")
		for _, idx := range [3]int32{tri.X, tri.Y, tri.Z} {
			i := idx + 1
			switch {
			case uvs && norms:
				fmt.Fprintf(bw, " %d/%d/%d", i, i, i)
			case norms:
				fmt.Fprintf(bw, " %d//%d", i, i)
			case uvs:
				fmt.Fprintf(bw, " %d/%d", i, i)
			default:
				fmt.Fprintf(bw, " %d", i)
			}
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}
