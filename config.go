// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package procmesh

import (
	"fmt"

	"cogentcore.org/procmesh/base/errors"
	"cogentcore.org/procmesh/base/reflectx"
)

// Config selects the mesh to generate and how to post-process it.
// It can be loaded from TOML and YAML files.
type Config struct {

	// Type is the shape of the mesh.
	Type MeshTypes `default:"SquareGrid" toml:"type" yaml:"type"`

	// Resolution is the subdivision level of the mesh.
	Resolution int `default:"1" min:"1" max:"50" toml:"resolution" yaml:"resolution"`

	// Stream is the vertex layout to generate into. Attributes the
	// stream does not store are recalculated after generation.
	Stream Streams `default:"Default" toml:"stream" yaml:"stream"`

	// Optimization is applied to the buffers after generation.
	Optimization OptimizationModes `default:"Nothing" toml:"optimization" yaml:"optimization"`

	// Material is the material a renderer should apply.
	Material MaterialModes `default:"Flat" toml:"material" yaml:"material"`
}

// NewConfig returns a new Config with default values.
func NewConfig() *Config {
	cfg := &Config{}
	errors.Log(reflectx.SetFromDefaultTags(cfg))
	return cfg
}

// Validate returns an error if any field of the config is out of range.
func (c *Config) Validate() error {
	var errs []error
	if c.Resolution < 1 || c.Resolution > MaxResolution {
		errs = append(errs, fmt.Errorf("%w: %d is not in [1, %d]", ErrResolution, c.Resolution, MaxResolution))
	}
	if c.Type < 0 || c.Type >= MeshTypesN {
		errs = append(errs, fmt.Errorf("%w: mesh type %d", ErrUnknownName, c.Type))
	}
	if c.Stream < 0 || c.Stream >= StreamsN {
		errs = append(errs, fmt.Errorf("%w: stream %d", ErrUnknownName, c.Stream))
	}
	if c.Optimization < 0 || c.Optimization >= OptimizationModesN {
		errs = append(errs, fmt.Errorf("%w: optimization mode %d", ErrUnknownName, c.Optimization))
	}
	if c.Material < 0 || c.Material >= MaterialModesN {
		errs = append(errs, fmt.Errorf("%w: material mode %d", ErrUnknownName, c.Material))
	}
	return errors.Join(errs...)
}

// String returns a short description of the config.
func (c *Config) String() string {
	return fmt.Sprintf("%v resolution %d (%v stream)", c.Type, c.Resolution, ResolveStream(c.Type, c.Stream))
}
