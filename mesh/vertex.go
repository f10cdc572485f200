// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"strings"

	"cogentcore.org/procmesh/math32"
)

// Vertex holds all of the attributes a generator computes for one
// vertex. Streams store all or part of it.
type Vertex struct {

	// Position is the object-space position.
	Position math32.Vector3

	// Normal is the unit surface normal.
	Normal math32.Vector3

	// Tangent is the unit surface tangent, with the bitangent sign in W.
	Tangent math32.Vector4

	// UV0 is the first texture coordinate.
	UV0 math32.Vector2
}

// Attributes are bit flags for the vertex attributes stored in [Buffers].
type Attributes int32

const (
	// Position is always stored.
	Position Attributes = 1 << iota

	Normal

	Tangent

	UV0

	// PositionOnly is the attribute set of a position-only layout.
	PositionOnly = Position

	// AllAttributes is the attribute set of the full vertex layout.
	AllAttributes = Position | Normal | Tangent | UV0
)

// Has returns whether all of the given attributes are set.
func (a Attributes) Has(flags Attributes) bool {
	return a&flags == flags
}

// String returns the names of the set attributes separated by |.
func (a Attributes) String() string {
	var names []string
	for _, f := range []struct {
		flag Attributes
		name string
	}{{Position, "Position"}, {Normal, "Normal"}, {Tangent, "Tangent"}, {UV0, "UV0"}} {
		if a.Has(f.flag) {
			names = append(names, f.name)
		}
	}
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, "|")
}
