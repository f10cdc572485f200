// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package procmesh

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// MeshTypes are the procedural mesh shapes.
type MeshTypes int32

const (
	// SquareGrid is a unit square of separate quads.
	SquareGrid MeshTypes = iota

	// SharedSquareGrid is a unit square of quads sharing vertices.
	SharedSquareGrid

	// SharedTriangleGrid is a grid of equilateral triangles sharing vertices.
	SharedTriangleGrid

	// PointyHexagonGrid is a grid of pointy-top hexagons.
	PointyHexagonGrid

	// FlatHexagonGrid is a grid of flat-top hexagons.
	FlatHexagonGrid

	// CubeSphere is a cube projected onto the unit sphere, with
	// separate quads.
	CubeSphere

	// SharedCubeSphere is a cube sphere sharing vertices across its faces.
	SharedCubeSphere

	// Icosphere is a subdivided icosahedron on the unit sphere.
	Icosphere

	// GeoIcosphere is an icosphere subdivided along great circles.
	GeoIcosphere

	// Octasphere is a subdivided octahedron on the unit sphere.
	Octasphere

	// GeoOctasphere is an octasphere with rings of constant latitude.
	GeoOctasphere

	// UVSphere is a latitude and longitude sphere.
	UVSphere

	MeshTypesN
)

var meshTypesNames = []string{"SquareGrid", "SharedSquareGrid", "SharedTriangleGrid", "PointyHexagonGrid", "FlatHexagonGrid", "CubeSphere", "SharedCubeSphere", "Icosphere", "GeoIcosphere", "Octasphere", "GeoOctasphere", "UVSphere"}

// Streams select the vertex layout a mesh is generated into.
type Streams int32

const (
	// DefaultStream picks the stream usually paired with the mesh type:
	// position only for the shared cube sphere and the icospheres, whose
	// normals and tangents are better recalculated, and all
	// attributes otherwise.
	DefaultStream Streams = iota

	// SingleStream stores all vertex attributes.
	SingleStream

	// PositionStream stores positions only.
	PositionStream

	StreamsN
)

var streamsNames = []string{"Default", "Single", "Position"}

// OptimizationModes are the vertex cache optimizations applied
// after generation.
type OptimizationModes int32

const (
	// Nothing leaves the buffers in generation order.
	Nothing OptimizationModes = iota

	// ReorderIndices reorders triangles for vertex cache locality.
	ReorderIndices

	// ReorderVertices reorders vertices by their first use.
	ReorderVertices

	// ReorderAll reorders triangles and then vertices.
	ReorderAll

	OptimizationModesN
)

var optimizationModesNames = []string{"Nothing", "ReorderIndices", "ReorderVertices", "ReorderAll"}

// MaterialModes are the materials a renderer applies to the mesh.
// They do not affect generation and are only carried in the [Result].
type MaterialModes int32

const (
	// Flat is a plain lit material.
	Flat MaterialModes = iota

	// Ripple displaces the surface with animated ripples.
	Ripple

	// LatLonMap textures a sphere with an equirectangular map.
	LatLonMap

	// CubeMap textures a sphere with a cube map.
	CubeMap

	MaterialModesN
)

var materialModesNames = []string{"Flat", "Ripple", "LatLonMap", "CubeMap"}

func enumString[T ~int32](i T, names []string) string {
	if i < 0 || int(i) >= len(names) {
		return strconv.FormatInt(int64(i), 10)
	}
	return names[i]
}

func enumSetString[T ~int32](i *T, s string, names []string, typeName string) error {
	for v, n := range names {
		if strings.EqualFold(n, s) {
			*i = T(v)
			return nil
		}
	}
	if name, ok := closestName(s, names); ok {
		return fmt.Errorf("%w: %q does not belong to %s values; did you mean %q?", ErrUnknownName, s, typeName, name)
	}
	return fmt.Errorf("%w: %q does not belong to %s values", ErrUnknownName, s, typeName)
}

// closestName returns the name most similar to s, if any is similar enough
// to be a likely misspelling.
func closestName(s string, names []string) (string, bool) {
	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false
	best, bestSim := "", 0.6
	for _, n := range names {
		if sim := strutil.Similarity(s, n, lev); sim > bestSim {
			best, bestSim = n, sim
		}
	}
	return best, best != ""
}

// String returns the string representation of this MeshTypes value.
func (i MeshTypes) String() string { return enumString(i, meshTypesNames) }

// SetString sets the MeshTypes value from its case-insensitive
// string representation, and returns an error if the string is invalid.
func (i *MeshTypes) SetString(s string) error {
	return enumSetString(i, s, meshTypesNames, "MeshTypes")
}

// Values returns all possible values for the type MeshTypes.
func (i MeshTypes) Values() []MeshTypes {
	vals := make([]MeshTypes, MeshTypesN)
	for v := range vals {
		vals[v] = MeshTypes(v)
	}
	return vals
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i MeshTypes) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *MeshTypes) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

// Set implements the pflag.Value interface.
func (i *MeshTypes) Set(s string) error { return i.SetString(s) }

// Type implements the pflag.Value interface.
func (i *MeshTypes) Type() string { return "MeshTypes" }

// String returns the string representation of this Streams value.
func (i Streams) String() string { return enumString(i, streamsNames) }

// SetString sets the Streams value from its case-insensitive
// string representation, and returns an error if the string is invalid.
func (i *Streams) SetString(s string) error {
	return enumSetString(i, strings.TrimSuffix(s, "Stream"), streamsNames, "Streams")
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Streams) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Streams) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

// Set implements the pflag.Value interface.
func (i *Streams) Set(s string) error { return i.SetString(s) }

// Type implements the pflag.Value interface.
func (i *Streams) Type() string { return "Streams" }

// String returns the string representation of this OptimizationModes value.
func (i OptimizationModes) String() string { return enumString(i, optimizationModesNames) }

// SetString sets the OptimizationModes value from its case-insensitive
// string representation, and returns an error if the string is invalid.
func (i *OptimizationModes) SetString(s string) error {
	return enumSetString(i, s, optimizationModesNames, "OptimizationModes")
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i OptimizationModes) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *OptimizationModes) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

// Set implements the pflag.Value interface.
func (i *OptimizationModes) Set(s string) error { return i.SetString(s) }

// Type implements the pflag.Value interface.
func (i *OptimizationModes) Type() string { return "OptimizationModes" }

// String returns the string representation of this MaterialModes value.
func (i MaterialModes) String() string { return enumString(i, materialModesNames) }

// SetString sets the MaterialModes value from its case-insensitive
// string representation, and returns an error if the string is invalid.
func (i *MaterialModes) SetString(s string) error {
	return enumSetString(i, s, materialModesNames, "MaterialModes")
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i MaterialModes) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *MaterialModes) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

// Set implements the pflag.Value interface.
func (i *MaterialModes) Set(s string) error { return i.SetString(s) }

// Type implements the pflag.Value interface.
func (i *MaterialModes) Type() string { return "MaterialModes" }
