// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package procmesh

import (
	"log/slog"
	"time"

	"cogentcore.org/procmesh/mesh"
	"cogentcore.org/procmesh/meshproc"
)

// Result is a generated and post-processed mesh.
type Result struct {

	// Config is the validated config the mesh was generated from.
	Config Config

	// Stream is the concrete stream the mesh was generated into.
	Stream Streams

	// Buffers hold the mesh data, always in the full vertex layout
	// once post-processing has recalculated any missing attributes.
	Buffers mesh.Buffers

	// Duration is the time from scheduling to the end of post-processing.
	Duration time.Duration
}

// Pending is a scheduled mesh generation.
type Pending struct {
	config Config
	stream Streams
	result *Result
	handle *mesh.Handle
	start  time.Time
	done   bool
}

// Schedule validates cfg and schedules the generation of its mesh
// once the dependency completes. The returned Pending must be
// completed to obtain the mesh.
func Schedule(cfg *Config, dependency *mesh.Handle) (*Pending, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p := &Pending{config: *cfg, stream: ResolveStream(cfg.Type, cfg.Stream), start: time.Now()}
	p.result = &Result{Config: p.config, Stream: p.stream}
	p.handle = Jobs(cfg.Type, p.stream)(&p.result.Buffers, cfg.Resolution, dependency)
	slog.Debug("procmesh: scheduled", "config", cfg, "buffers", &p.result.Buffers)
	return p, nil
}

// Handle returns the handle of the generation job, for use as
// a dependency of other jobs.
func (p *Pending) Handle() *mesh.Handle {
	return p.handle
}

// IsCompleted returns whether the generation job has finished, without blocking.
func (p *Pending) IsCompleted() bool {
	return p.handle.IsCompleted()
}

// Complete waits for the generation to finish, post-processes the
// buffers and returns the result. It panics if the generation panicked.
// Calling Complete again returns the same result.
func (p *Pending) Complete() *Result {
	if p.done {
		return p.result
	}
	p.handle.Complete()
	buf := &p.result.Buffers
	postProcess(buf, p.config.Optimization)
	p.result.Duration = time.Since(p.start)
	p.done = true
	slog.Debug("procmesh: generated", "config", &p.config, "buffers", buf, "duration", p.result.Duration)
	return p.result
}

// postProcess recalculates the attributes the stream did not store
// and applies the optimization mode.
func postProcess(buf *mesh.Buffers, opt OptimizationModes) {
	if !buf.StoresNormals() {
		meshproc.RecalculateNormals(buf)
	}
	if !buf.StoresTangents() {
		meshproc.RecalculateTangents(buf)
	}
	switch opt {
	case ReorderIndices:
		meshproc.OptimizeIndices(buf)
	case ReorderVertices:
		meshproc.ReorderVertices(buf)
	case ReorderAll:
		meshproc.OptimizeIndices(buf)
		meshproc.ReorderVertices(buf)
	}
}

// Generate validates cfg, generates its mesh and waits for the result.
func Generate(cfg *Config) (*Result, error) {
	p, err := Schedule(cfg, nil)
	if err != nil {
		return nil, err
	}
	return p.Complete(), nil
}
