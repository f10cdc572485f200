// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package procmesh generates procedural meshes by name. It holds the
// fixed table of generator and stream combinations, validates a
// [Config], schedules the matching job and post-processes the result:
// missing normals and tangents are recalculated and the buffers are
// optionally optimized for the vertex cache.
//
// Basic usage:
//
//	cfg := procmesh.NewConfig()
//	cfg.Type = procmesh.GeoOctasphere
//	cfg.Resolution = 16
//	res, err := procmesh.Generate(cfg)
package procmesh

import "cogentcore.org/procmesh/base/errors"

// MaxResolution is the largest resolution accepted by [Config.Validate].
const MaxResolution = 50

var (
	// ErrResolution is returned for a resolution outside of [1, MaxResolution].
	ErrResolution = errors.New("procmesh: resolution out of range")

	// ErrUnknownName is returned when parsing an unknown enum name.
	ErrUnknownName = errors.New("procmesh: unknown name")
)
