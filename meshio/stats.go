// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshio

import (
	"io"

	"cogentcore.org/procmesh/base/iox/yamlx"
	"cogentcore.org/procmesh/math32"
	"cogentcore.org/procmesh/mesh"
	"cogentcore.org/procmesh/meshproc"
)

// Stats summarizes a generated mesh.
type Stats struct {

	// Type is the name of the generator that produced the mesh.
	Type string `yaml:"type,omitempty"`

	// Resolution is the generator resolution.
	Resolution int `yaml:"resolution,omitempty"`

	// Material is the material mode name.
	Material string `yaml:"material,omitempty"`

	Vertices  int `yaml:"vertices"`
	Triangles int `yaml:"triangles"`

	// IndexBits is 16 or 32.
	IndexBits int `yaml:"index_bits"`

	// Attributes lists the stored vertex attributes.
	Attributes string `yaml:"attributes"`

	// Bounds are the declared bounds of the mesh.
	Bounds BoundsStats `yaml:"bounds"`

	// Extent is the bounding box of the actual positions.
	Extent BoundsStats `yaml:"extent"`

	// SurfaceArea is the total area of all triangles.
	SurfaceArea float32 `yaml:"surface_area"`

	// CacheMissRatio is the average number of vertex cache misses per
	// triangle for a cache of [meshproc.CacheSize] entries.
	CacheMissRatio float32 `yaml:"cache_miss_ratio"`
}

// BoundsStats is a box as center and size.
type BoundsStats struct {
	Center [3]float32 `yaml:"center,flow"`
	Size   [3]float32 `yaml:"size,flow"`
}

func boundsStats(b math32.Box3) BoundsStats {
	c, s := b.Center(), b.Size()
	return BoundsStats{Center: [3]float32{c.X, c.Y, c.Z}, Size: [3]float32{s.X, s.Y, s.Z}}
}

// NewStats measures buf. The naming fields are left for the caller.
func NewStats(buf *mesh.Buffers) *Stats {
	st := &Stats{
		Vertices:       buf.VertexCount(),
		Triangles:      buf.TriangleCount(),
		IndexBits:      16,
		Attributes:     buf.Attributes.String(),
		Bounds:         boundsStats(buf.Bounds),
		Extent:         boundsStats(buf.ComputeBounds()),
		CacheMissRatio: meshproc.CacheMissRatio(buf, meshproc.CacheSize),
	}
	if buf.Wide() {
		st.IndexBits = 32
	}
	for t := range buf.TriangleCount() {
		st.SurfaceArea += buf.TriangleVertices(t).Area()
	}
	return st
}

// WriteStats writes st to w as YAML.
func WriteStats(w io.Writer, st *Stats) error {
	return yamlx.Write(st, w)
}
