// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh_test

import (
	"sync/atomic"
	"testing"
	"time"

	"cogentcore.org/procmesh/math32"
	"cogentcore.org/procmesh/mesh"
	"cogentcore.org/procmesh/mesh/generators"
	"cogentcore.org/procmesh/mesh/streams"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countGen counts executed units, optionally waiting on a gate
// before each unit and panicking in one of them.
type countGen struct {
	units   int
	count   *atomic.Int32
	gate    chan struct{}
	panicAt int
}

func newCountGen(units int) countGen {
	return countGen{units: units, count: &atomic.Int32{}, panicAt: -1}
}

func (g countGen) VertexCount() int    { return 3 }
func (g countGen) IndexCount() int     { return 3 }
func (g countGen) JobLength() int      { return g.units }
func (g countGen) Bounds() math32.Box3 { return math32.Box3{} }

func (g countGen) Execute(i int, s streams.Single) {
	if g.gate != nil {
		<-g.gate
	}
	if i == g.panicAt {
		panic("unit failed")
	}
	g.count.Add(1)
	if i == 0 {
		s.SetTriangle(0, math32.Tri(0, 1, 2))
	}
}

func TestRun(t *testing.T) {
	var buf mesh.Buffers
	mesh.Run(generators.SharedSquareGrid[streams.Single]{Resolution: 2}, &streams.Single{}, &buf)
	assert.Equal(t, 9, buf.VertexCount())
	assert.Equal(t, 24, buf.IndexCount())
	assert.Equal(t, 8, buf.TriangleCount())
	assert.False(t, buf.Wide())
	assert.Equal(t, mesh.AllAttributes, buf.Attributes)
}

func TestScheduleValidates(t *testing.T) {
	var buf mesh.Buffers
	assert.Panics(t, func() {
		mesh.ScheduleParallel(generators.SquareGrid[streams.Single]{Resolution: 0}, &streams.Single{}, &buf, nil)
	})
	assert.Panics(t, func() {
		mesh.ScheduleParallel(generators.UVSphere[streams.Position]{Resolution: -1}, &streams.Position{}, &buf, nil)
	})
	assert.Panics(t, func() {
		mesh.ScheduleParallel(newCountGen(0), &streams.Single{}, &buf, nil)
	})
}

func TestScheduleSetsUpSynchronously(t *testing.T) {
	gen := newCountGen(4)
	gen.gate = make(chan struct{})
	var buf mesh.Buffers
	h := mesh.ScheduleParallel(gen, &streams.Single{}, &buf, nil)
	assert.Equal(t, 3, buf.VertexCount())
	assert.Equal(t, 3, buf.IndexCount())
	assert.False(t, h.IsCompleted())
	close(gen.gate)
	h.Complete()
	assert.True(t, h.IsCompleted())
	assert.Equal(t, int32(4), gen.count.Load())
	assert.Equal(t, math32.Tri(0, 1, 2), buf.Triangle(0))
}

func TestDependencyDelaysDispatch(t *testing.T) {
	first := newCountGen(3)
	first.gate = make(chan struct{})
	second := newCountGen(5)

	var bufA, bufB mesh.Buffers
	ha := mesh.ScheduleParallel(first, &streams.Single{}, &bufA, nil)
	hb := mesh.ScheduleParallel(second, &streams.Single{}, &bufB, ha)

	time.Sleep(20 * time.Millisecond)
	assert.False(t, ha.IsCompleted())
	assert.False(t, hb.IsCompleted())
	assert.Equal(t, int32(0), second.count.Load())

	close(first.gate)
	hb.Complete()
	assert.True(t, ha.IsCompleted())
	assert.Equal(t, int32(3), first.count.Load())
	assert.Equal(t, int32(5), second.count.Load())
}

func TestCombineDependencies(t *testing.T) {
	gens := []countGen{newCountGen(2), newCountGen(3), newCountGen(4)}
	gate := make(chan struct{})
	var handles []*mesh.Handle
	for i := range gens {
		gens[i].gate = gate
		var buf mesh.Buffers
		handles = append(handles, mesh.ScheduleParallel(gens[i], &streams.Single{}, &buf, nil))
	}
	handles = append(handles, nil)
	all := mesh.CombineDependencies(handles...)
	assert.False(t, all.IsCompleted())
	close(gate)
	all.Complete()
	for i, g := range gens {
		assert.Equal(t, int32(g.units), g.count.Load(), "generator %d", i)
	}
	mesh.CombineDependencies().Complete()
}

func TestNilHandle(t *testing.T) {
	var h *mesh.Handle
	assert.True(t, h.IsCompleted())
	assert.NotPanics(t, h.Complete)
}

func TestUnitPanicSurfacesOnComplete(t *testing.T) {
	gen := newCountGen(6)
	gen.panicAt = 2
	var buf mesh.Buffers
	h := mesh.ScheduleParallel(gen, &streams.Single{}, &buf, nil)
	assert.PanicsWithError(t, "mesh: unit 2 of mesh_test.countGen panicked: unit failed", h.Complete)

	// dependents of a failed job do not run
	next := newCountGen(2)
	var buf2 mesh.Buffers
	h2 := mesh.ScheduleParallel(next, &streams.Single{}, &buf2, h)
	assert.Panics(t, h2.Complete)
	assert.Equal(t, int32(0), next.count.Load())
}

func TestRunSerial(t *testing.T) {
	gen := newCountGen(7)
	var buf mesh.Buffers
	mesh.RunSerial(gen, &streams.Single{}, &buf)
	assert.Equal(t, int32(7), gen.count.Load())
	require.Equal(t, 3, buf.IndexCount())
}
