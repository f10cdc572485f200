// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"cogentcore.org/procmesh/mesh"
)

const stlHeaderSize = 80

// stlTriangle is one binary STL facet record.
type stlTriangle struct {
	// Normal plus three vertex triplets: [3]float{x,y,z}
	N, V1, V2, V3 [3]float32
	_             uint16 // unused attribute byte count
}

// WriteSTL writes buf as a binary STL file, with one face normal per
// triangle computed from its winding.
func WriteSTL(w io.Writer, buf *mesh.Buffers) error {
	bw := bufio.NewWriter(w)
	header := struct {
		_     [stlHeaderSize]uint8
		Count uint32
	}{Count: uint32(buf.TriangleCount())}
	if err := binary.Write(bw, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("error writing header: %w", err)
	}
	for t := range buf.TriangleCount() {
		tv := buf.TriangleVertices(t)
		n := tv.Normal()
		st := stlTriangle{
			N:  [3]float32{n.X, n.Y, n.Z},
			V1: [3]float32{tv.A.X, tv.A.Y, tv.A.Z},
			V2: [3]float32{tv.B.X, tv.B.Y, tv.B.Z},
			V3: [3]float32{tv.C.X, tv.C.Y, tv.C.Z},
		}
		if err := binary.Write(bw, binary.LittleEndian, &st); err != nil {
			return fmt.Errorf("write triangle %d: %w", t, err)
		}
	}
	return bw.Flush()
}
