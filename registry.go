// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package procmesh

import (
	"cogentcore.org/procmesh/math32"
	"cogentcore.org/procmesh/mesh"
	"cogentcore.org/procmesh/mesh/generators"
	"cogentcore.org/procmesh/mesh/streams"
)

// ScheduleFunc schedules the generation of one mesh type into buf
// at the given resolution, once the dependency completes.
type ScheduleFunc func(buf *mesh.Buffers, resolution int, dependency *mesh.Handle) *mesh.Handle

// Counts are the sizes of a mesh, known before it is generated.
type Counts struct {
	Vertices int
	Indices  int
	Units    int
	Bounds   math32.Box3
}

// Triangles returns the number of triangles.
func (c Counts) Triangles() int { return c.Indices / 3 }

// resolutionGenerator is a generator whose only configuration is
// its resolution, which is true of every generator type.
type resolutionGenerator[S mesh.Stream] interface {
	~struct{ Resolution int }
	mesh.Generator[S]
}

func newGenerator[G resolutionGenerator[S], S mesh.Stream](resolution int) G {
	return G(struct{ Resolution int }{resolution})
}

func scheduleFunc[G resolutionGenerator[S], S mesh.Stream, P mesh.StreamSetup[S]]() ScheduleFunc {
	return func(buf *mesh.Buffers, resolution int, dependency *mesh.Handle) *mesh.Handle {
		return mesh.ScheduleParallel[G, S, P](newGenerator[G, S](resolution), P(new(S)), buf, dependency)
	}
}

func countsFunc[G resolutionGenerator[S], S mesh.Stream]() func(int) Counts {
	return func(resolution int) Counts {
		g := newGenerator[G, S](resolution)
		return Counts{Vertices: g.VertexCount(), Indices: g.IndexCount(), Units: g.JobLength(), Bounds: g.Bounds()}
	}
}

// registryEntry holds the jobs of one mesh type: one per concrete stream.
type registryEntry struct {
	jobs   [2]ScheduleFunc
	counts func(resolution int) Counts

	// defaultStream is the stream used for [DefaultStream].
	defaultStream Streams
}

func entry[GS resolutionGenerator[streams.Single], GP resolutionGenerator[streams.Position]](defaultStream Streams) registryEntry {
	return registryEntry{
		jobs: [2]ScheduleFunc{
			scheduleFunc[GS, streams.Single, *streams.Single](),
			scheduleFunc[GP, streams.Position, *streams.Position](),
		},
		counts:        countsFunc[GS, streams.Single](),
		defaultStream: defaultStream,
	}
}

type (
	single   = streams.Single
	position = streams.Position
)

// registry is the fixed table of generator and stream combinations.
var registry = [MeshTypesN]registryEntry{
	SquareGrid:         entry[generators.SquareGrid[single], generators.SquareGrid[position]](SingleStream),
	SharedSquareGrid:   entry[generators.SharedSquareGrid[single], generators.SharedSquareGrid[position]](SingleStream),
	SharedTriangleGrid: entry[generators.SharedTriangleGrid[single], generators.SharedTriangleGrid[position]](SingleStream),
	PointyHexagonGrid:  entry[generators.PointyHexagonGrid[single], generators.PointyHexagonGrid[position]](SingleStream),
	FlatHexagonGrid:    entry[generators.FlatHexagonGrid[single], generators.FlatHexagonGrid[position]](SingleStream),
	CubeSphere:         entry[generators.CubeSphere[single], generators.CubeSphere[position]](SingleStream),
	SharedCubeSphere:   entry[generators.SharedCubeSphere[single], generators.SharedCubeSphere[position]](PositionStream),
	Icosphere:          entry[generators.Icosphere[single], generators.Icosphere[position]](PositionStream),
	GeoIcosphere:       entry[generators.GeoIcosphere[single], generators.GeoIcosphere[position]](PositionStream),
	Octasphere:         entry[generators.Octasphere[single], generators.Octasphere[position]](SingleStream),
	GeoOctasphere:      entry[generators.GeoOctasphere[single], generators.GeoOctasphere[position]](SingleStream),
	UVSphere:           entry[generators.UVSphere[single], generators.UVSphere[position]](SingleStream),
}

// ResolveStream returns the concrete stream used for t when s is
// requested, replacing [DefaultStream] with the stream paired with t.
func ResolveStream(t MeshTypes, s Streams) Streams {
	if s == DefaultStream && t >= 0 && t < MeshTypesN {
		return registry[t].defaultStream
	}
	return s
}

// Jobs returns the schedule function for the given mesh type and stream.
// It panics for values out of range, which [Config.Validate] rejects.
func Jobs(t MeshTypes, s Streams) ScheduleFunc {
	switch ResolveStream(t, s) {
	case SingleStream:
		return registry[t].jobs[0]
	case PositionStream:
		return registry[t].jobs[1]
	}
	panic("procmesh.Jobs: invalid stream " + s.String())
}

// MeshCounts returns the sizes of the mesh of type t at the given resolution.
// The sizes do not depend on the stream.
func MeshCounts(t MeshTypes, resolution int) Counts {
	return registry[t].counts(resolution)
}
