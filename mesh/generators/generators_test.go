// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package generators

import (
	"fmt"
	"testing"

	"cogentcore.org/procmesh/base/tolassert"
	"cogentcore.org/procmesh/math32"
	"cogentcore.org/procmesh/mesh"
	"cogentcore.org/procmesh/mesh/meshtest"
	"cogentcore.org/procmesh/mesh/streams"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var resolutions = []int{1, 2, 3, 4, 7}

type generatorCase struct {
	name     string
	collect  func(r int) *meshtest.Record
	vertices func(r int) int
	indices  func(r int) int
	jobs     func(r int) int
	sphere   bool
	inBounds bool
}

var generatorCases = []generatorCase{
	{
		name:     "SquareGrid",
		collect:  func(r int) *meshtest.Record { return meshtest.Collect(SquareGrid[meshtest.Recorder]{Resolution: r}) },
		vertices: func(r int) int { return 4 * r * r },
		indices:  func(r int) int { return 6 * r * r },
		jobs:     func(r int) int { return r },
		inBounds: true,
	},
	{
		name:     "SharedSquareGrid",
		collect:  func(r int) *meshtest.Record { return meshtest.Collect(SharedSquareGrid[meshtest.Recorder]{Resolution: r}) },
		vertices: func(r int) int { return (r + 1) * (r + 1) },
		indices:  func(r int) int { return 6 * r * r },
		jobs:     func(r int) int { return r + 1 },
		inBounds: true,
	},
	{
		name:     "SharedTriangleGrid",
		collect:  func(r int) *meshtest.Record { return meshtest.Collect(SharedTriangleGrid[meshtest.Recorder]{Resolution: r}) },
		vertices: func(r int) int { return (r + 1) * (r + 1) },
		indices:  func(r int) int { return 6 * r * r },
		jobs:     func(r int) int { return r + 1 },
		inBounds: true,
	},
	{
		name:     "PointyHexagonGrid",
		collect:  func(r int) *meshtest.Record { return meshtest.Collect(PointyHexagonGrid[meshtest.Recorder]{Resolution: r}) },
		vertices: func(r int) int { return 7 * r * r },
		indices:  func(r int) int { return 18 * r * r },
		jobs:     func(r int) int { return r },
	},
	{
		name:     "FlatHexagonGrid",
		collect:  func(r int) *meshtest.Record { return meshtest.Collect(FlatHexagonGrid[meshtest.Recorder]{Resolution: r}) },
		vertices: func(r int) int { return 7 * r * r },
		indices:  func(r int) int { return 18 * r * r },
		jobs:     func(r int) int { return r },
	},
	{
		name:     "CubeSphere",
		collect:  func(r int) *meshtest.Record { return meshtest.Collect(CubeSphere[meshtest.Recorder]{Resolution: r}) },
		vertices: func(r int) int { return 24 * r * r },
		indices:  func(r int) int { return 36 * r * r },
		jobs:     func(r int) int { return 6 * r },
		sphere:   true,
		inBounds: true,
	},
	{
		name:     "SharedCubeSphere",
		collect:  func(r int) *meshtest.Record { return meshtest.Collect(SharedCubeSphere[meshtest.Recorder]{Resolution: r}) },
		vertices: func(r int) int { return 6*r*r + 2 },
		indices:  func(r int) int { return 36 * r * r },
		jobs:     func(r int) int { return 6 * r },
		sphere:   true,
		inBounds: true,
	},
	{
		name:     "Octasphere",
		collect:  func(r int) *meshtest.Record { return meshtest.Collect(Octasphere[meshtest.Recorder]{Resolution: r}) },
		vertices: func(r int) int { return 4*r*r + 2*r + 7 },
		indices:  func(r int) int { return 24 * r * r },
		jobs:     func(r int) int { return 4*r + 1 },
		sphere:   true,
		inBounds: true,
	},
	{
		name:     "GeoOctasphere",
		collect:  func(r int) *meshtest.Record { return meshtest.Collect(GeoOctasphere[meshtest.Recorder]{Resolution: r}) },
		vertices: func(r int) int { return 4*r*r + 2*r + 7 },
		indices:  func(r int) int { return 24 * r * r },
		jobs:     func(r int) int { return 4*r + 1 },
		sphere:   true,
		inBounds: true,
	},
	{
		name:     "Icosphere",
		collect:  func(r int) *meshtest.Record { return meshtest.Collect(Icosphere[meshtest.Recorder]{Resolution: r}) },
		vertices: func(r int) int { return 10*r*r + 2 },
		indices:  func(r int) int { return 60 * r * r },
		jobs:     func(r int) int { return 10 * r },
		sphere:   true,
		inBounds: true,
	},
	{
		name:     "GeoIcosphere",
		collect:  func(r int) *meshtest.Record { return meshtest.Collect(GeoIcosphere[meshtest.Recorder]{Resolution: r}) },
		vertices: func(r int) int { return 10*r*r + 2 },
		indices:  func(r int) int { return 60 * r * r },
		jobs:     func(r int) int { return 10 * r },
		sphere:   true,
		inBounds: true,
	},
	{
		name:     "UVSphere",
		collect:  func(r int) *meshtest.Record { return meshtest.Collect(UVSphere[meshtest.Recorder]{Resolution: r}) },
		vertices: func(r int) int { return (4*r+1)*(2*r+1) - 2 },
		indices:  func(r int) int { return 6 * 4 * r * (2*r - 1) },
		jobs:     func(r int) int { return 4*r + 1 },
		sphere:   true,
		inBounds: true,
	},
}

func TestGenerators(t *testing.T) {
	for _, gc := range generatorCases {
		for _, r := range resolutions {
			t.Run(fmt.Sprintf("%s/%d", gc.name, r), func(t *testing.T) {
				rec := gc.collect(r)
				assert.Len(t, rec.Vertices, gc.vertices(r))
				assert.Equal(t, gc.indices(r), rec.IndexCount)
				meshtest.CheckInvariants(t, rec)
				meshtest.CheckUnitAttributes(t, rec)
				if gc.sphere {
					meshtest.CheckUnitSphere(t, rec)
				}
				if gc.inBounds {
					meshtest.CheckBounds(t, rec, 1e-5)
				}
			})
		}
	}
}

func TestDeterminism(t *testing.T) {
	for _, gc := range generatorCases {
		a := gc.collect(3)
		b := gc.collect(3)
		assert.Equal(t, a.Vertices, b.Vertices, gc.name)
		assert.Equal(t, a.Triangles, b.Triangles, gc.name)
	}
}

// parallelMatchesSerial runs the generator on the worker pool and
// serially, and asserts that both produce identical buffers.
func parallelMatchesSerial[G mesh.Generator[streams.Single]](t *testing.T, gen G) {
	t.Helper()
	var parallel, serial mesh.Buffers
	mesh.Run(gen, &streams.Single{}, &parallel)
	mesh.RunSerial(gen, &streams.Single{}, &serial)
	assert.Equal(t, serial, parallel, "%T", gen)
	assert.Equal(t, gen.VertexCount(), parallel.VertexCount())
	assert.Equal(t, gen.IndexCount(), parallel.IndexCount())
	assert.Equal(t, gen.Bounds(), parallel.Bounds)
}

func TestParallelMatchesSerial(t *testing.T) {
	r := 5
	parallelMatchesSerial(t, SquareGrid[streams.Single]{Resolution: r})
	parallelMatchesSerial(t, SharedSquareGrid[streams.Single]{Resolution: r})
	parallelMatchesSerial(t, SharedTriangleGrid[streams.Single]{Resolution: r})
	parallelMatchesSerial(t, PointyHexagonGrid[streams.Single]{Resolution: r})
	parallelMatchesSerial(t, FlatHexagonGrid[streams.Single]{Resolution: r})
	parallelMatchesSerial(t, CubeSphere[streams.Single]{Resolution: r})
	parallelMatchesSerial(t, SharedCubeSphere[streams.Single]{Resolution: r})
	parallelMatchesSerial(t, Octasphere[streams.Single]{Resolution: r})
	parallelMatchesSerial(t, GeoOctasphere[streams.Single]{Resolution: r})
	parallelMatchesSerial(t, Icosphere[streams.Single]{Resolution: r})
	parallelMatchesSerial(t, GeoIcosphere[streams.Single]{Resolution: r})
	parallelMatchesSerial(t, UVSphere[streams.Single]{Resolution: r})
}

func TestSquareGridSingleQuad(t *testing.T) {
	var buf mesh.Buffers
	mesh.Run(SquareGrid[streams.Single]{Resolution: 1}, &streams.Single{}, &buf)
	require.Equal(t, 4, buf.VertexCount())
	require.Equal(t, 6, buf.IndexCount())
	assert.Equal(t, math32.Vec3(-0.5, 0, -0.5), buf.Position(0))
	assert.Equal(t, math32.Vec3(0.5, 0, -0.5), buf.Position(1))
	assert.Equal(t, math32.Vec3(-0.5, 0, 0.5), buf.Position(2))
	assert.Equal(t, math32.Vec3(0.5, 0, 0.5), buf.Position(3))
	assert.Equal(t, math32.Vec2(1, 1), buf.Vertex(3).UV0)
	assert.Equal(t, math32.Tri(0, 2, 1), buf.Triangle(0))
	assert.Equal(t, math32.Tri(1, 2, 3), buf.Triangle(1))
	assert.Equal(t, math32.B3(-0.5, 0, -0.5, 0.5, 0, 0.5), buf.Bounds)
}

func TestCubeToSphere(t *testing.T) {
	for _, side := range cubeSides {
		for i := 0; i <= 8; i++ {
			for j := 0; j <= 8; j++ {
				p := side.origin.Add(side.uVector.MulScalar(float32(i) / 8)).Add(side.vVector.MulScalar(float32(j) / 8))
				tolassert.EqualTol(t, 1, cubeToSphere(p).Length(), 1e-5)
			}
		}
	}
	assert.Equal(t, math32.Vec3(0, 0, 1), cubeToSphere(math32.Vec3(0, 0, 1)))
}

func TestSharedCubeSphereSharesVertices(t *testing.T) {
	for _, r := range resolutions {
		shared := SharedCubeSphere[streams.Position]{Resolution: r}
		separate := CubeSphere[streams.Position]{Resolution: r}
		assert.Less(t, shared.VertexCount(), separate.VertexCount())
		assert.Equal(t, shared.IndexCount(), separate.IndexCount())
	}
}

func TestUVSphereSeam(t *testing.T) {
	r := 3
	gen := UVSphere[meshtest.Recorder]{Resolution: r}
	rec := meshtest.Collect(gen)
	rv := gen.resolutionV()
	ru := gen.resolutionU()
	for v := 1; v < rv; v++ {
		seam := rec.Vertices[v-1]
		end := rec.Vertices[(rv+1)*ru-2+v]
		assert.True(t, seam.Position.IsEqualTol(end.Position, 1e-5), "v=%d: %v != %v", v, seam.Position, end.Position)
		assert.True(t, seam.Normal.IsEqualTol(end.Normal, 1e-5))
		assert.Equal(t, float32(0), seam.UV0.X)
		assert.Equal(t, float32(1), end.UV0.X)
		assert.Equal(t, seam.UV0.Y, end.UV0.Y)
	}
}

func maxPositionDifference(a, b *meshtest.Record) float32 {
	var d float32
	for i := range a.Vertices {
		d = max(d, a.Vertices[i].Position.DistanceTo(b.Vertices[i].Position))
	}
	return d
}

func TestGeodesicVariants(t *testing.T) {
	for _, r := range []int{3, 4} {
		octa := meshtest.Collect(Octasphere[meshtest.Recorder]{Resolution: r})
		geoOcta := meshtest.Collect(GeoOctasphere[meshtest.Recorder]{Resolution: r})
		require.Equal(t, len(octa.Vertices), len(geoOcta.Vertices))
		assert.Equal(t, octa.Triangles, geoOcta.Triangles)
		assert.Greater(t, maxPositionDifference(octa, geoOcta), float32(0.01))

		ico := meshtest.Collect(Icosphere[meshtest.Recorder]{Resolution: r})
		geoIco := meshtest.Collect(GeoIcosphere[meshtest.Recorder]{Resolution: r})
		require.Equal(t, len(ico.Vertices), len(geoIco.Vertices))
		assert.Equal(t, ico.Triangles, geoIco.Triangles)
		assert.Greater(t, maxPositionDifference(ico, geoIco), float32(0.01))
	}
}

func TestHexagonCentering(t *testing.T) {
	rec := meshtest.Collect(PointyHexagonGrid[meshtest.Recorder]{Resolution: 1})
	assert.Equal(t, math32.Vector3{}, rec.Vertices[0].Position)
	rec = meshtest.Collect(FlatHexagonGrid[meshtest.Recorder]{Resolution: 1})
	assert.Equal(t, math32.Vector3{}, rec.Vertices[0].Position)

	long, short := hexagonBounds(1)
	tolassert.EqualTol(t, 1, long, 1e-6)
	tolassert.EqualTol(t, 0.5*math32.Sqrt3, short, 1e-6)
	long, short = hexagonBounds(4)
	tolassert.EqualTol(t, 0.8125, long, 1e-6)
	tolassert.EqualTol(t, 0.1875*math32.Sqrt3, short, 1e-6)
}

func TestTexCoord(t *testing.T) {
	tc := texCoord(math32.Vec3(0, 0, -1))
	assert.Equal(t, float32(1), tc.X, "seam U moves to 1")
	tolassert.EqualTol(t, 0.5, tc.Y, 1e-6)
	tc = texCoord(math32.Vec3(0, 0, 1))
	tolassert.EqualTol(t, 0.5, tc.X, 1e-6)
	tc = texCoord(math32.Vec3(0, 1, 0))
	tolassert.EqualTol(t, 1, tc.Y, 1e-6)
	assert.Equal(t, math32.Vec4(1, 0, 0, -1), tangentXZ(math32.Vec3(0, 1, 0)))
	assert.Equal(t, math32.Vec4(0, 0, 1, -1), tangentXZ(math32.Vec3(1, 0, 0)))
}

func TestPositionStreamDropsAttributes(t *testing.T) {
	var buf mesh.Buffers
	mesh.Run(Icosphere[streams.Position]{Resolution: 2}, &streams.Position{}, &buf)
	assert.False(t, buf.StoresNormals())
	assert.Nil(t, buf.Vertices)
	assert.Len(t, buf.Positions, 42)
	assert.Equal(t, up, buf.Position(0))
	assert.Equal(t, down, buf.Position(1))
}
