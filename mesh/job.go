// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Handle tracks a scheduled mesh job. A nil Handle is always complete.
type Handle struct {
	done chan struct{}

	// err is set before done is closed when a unit panicked.
	err error
}

func newHandle() *Handle {
	return &Handle{done: make(chan struct{})}
}

// wait blocks until the job is done and returns its failure, if any.
func (h *Handle) wait() error {
	if h == nil {
		return nil
	}
	<-h.done
	return h.err
}

// Complete blocks until the job and all of its dependencies have finished.
// If any unit of the job panicked, Complete panics with that failure
// on the calling goroutine.
func (h *Handle) Complete() {
	if err := h.wait(); err != nil {
		panic(err)
	}
}

// IsCompleted returns whether the job has finished, without blocking.
func (h *Handle) IsCompleted() bool {
	if h == nil {
		return true
	}
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}

// CombineDependencies returns a handle that completes once
// all of the given handles have completed.
func CombineDependencies(handles ...*Handle) *Handle {
	h := newHandle()
	go func() {
		defer close(h.done)
		for _, d := range handles {
			if err := d.wait(); err != nil && h.err == nil {
				h.err = err
			}
		}
	}()
	return h
}

// ScheduleParallel sets up the stream for the generator and schedules
// all of its units to run in parallel once the dependency completes.
// Setup runs synchronously, so buf is sized when ScheduleParallel returns,
// but its contents must not be read before the returned handle completes.
//
// It panics if the generator reports an empty job or fewer than three
// vertices or indices, which happens for resolutions below 1.
func ScheduleParallel[G Generator[S], S Stream, P StreamSetup[S]](gen G, stream P, buf *Buffers, dependency *Handle) *Handle {
	n := gen.JobLength()
	vertexCount := gen.VertexCount()
	indexCount := gen.IndexCount()
	if n < 1 || vertexCount < 3 || indexCount < 3 {
		panic(fmt.Sprintf("mesh.ScheduleParallel: invalid generator %T: %d units, %d vertices, %d indices", gen, n, vertexCount, indexCount))
	}
	stream.Setup(buf, vertexCount, indexCount, gen.Bounds())
	s := *stream

	h := newHandle()
	go func() {
		defer close(h.done)
		if err := dependency.wait(); err != nil {
			h.err = err
			return
		}
		var g errgroup.Group
		g.SetLimit(runtime.GOMAXPROCS(0))
		for i := range n {
			g.Go(func() error {
				return execute(gen, i, s)
			})
		}
		h.err = g.Wait()
	}()
	return h
}

// execute runs one unit, converting a panic into an error.
func execute[G Generator[S], S Stream](gen G, i int, s S) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("mesh: unit %d of %T panicked: %v", i, gen, r)
		}
	}()
	gen.Execute(i, s)
	return nil
}

// Run schedules the generator with no dependency and waits for it to complete.
func Run[G Generator[S], S Stream, P StreamSetup[S]](gen G, stream P, buf *Buffers) {
	ScheduleParallel[G, S, P](gen, stream, buf, nil).Complete()
}

// RunSerial sets up the stream and executes every unit of the generator
// in order on the calling goroutine.
func RunSerial[G Generator[S], S Stream, P StreamSetup[S]](gen G, stream P, buf *Buffers) {
	stream.Setup(buf, gen.VertexCount(), gen.IndexCount(), gen.Bounds())
	s := *stream
	for i := range gen.JobLength() {
		gen.Execute(i, s)
	}
}
