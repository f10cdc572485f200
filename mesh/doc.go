// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package mesh defines the data model and the parallel job contract
for procedural mesh generation.

A [Generator] describes a parametric shape at a given resolution:
it reports the exact number of vertices and indices it produces,
the number of independent units of work ([Generator.JobLength])
and the bounds of the result. Each call to [Generator.Execute]
computes one unit and writes its vertices and triangles into a
[Stream] at closed-form offsets, so units never share mutable state
and can run in any order on any goroutine.

A stream is a small value type that wraps slices of a [Buffers]
destination. Its [StreamSetup] pointer method allocates the buffers
once, before any unit runs. [ScheduleParallel] runs all units of a
generator on a bounded worker pool and returns a [Handle] that
completes when every unit has finished.

Generators and streams are combined statically through type parameters,
so every (generator, stream) pair is compiled into its own instantiation
with no per-vertex interface dispatch.
*/
package mesh
