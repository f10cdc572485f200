// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package generators provides the procedural mesh generators:
// flat square, triangle and hexagon grids, and spheres projected
// from a cube, an octahedron and an icosahedron or built from
// latitude and longitude lines.
//
// Every generator is a small value type with a Resolution field,
// generic over the stream it writes to, for example
//
//	gen := generators.Octasphere[streams.Single]{Resolution: 8}
//	var buf mesh.Buffers
//	mesh.Run(gen, &streams.Single{}, &buf)
package generators

import (
	"cogentcore.org/procmesh/math32"
	"cogentcore.org/procmesh/mesh"
)

var (
	down    = math32.Vec3(0, -1, 0)
	up      = math32.Up
	back    = math32.Vec3(0, 0, -1)
	left    = math32.Vec3(-1, 0, 0)
	right   = math32.Right
	forward = math32.Forward
)

// flatBounds returns bounds centered on the origin with the given size.
func flatBounds(x, y, z float32) math32.Box3 {
	return math32.B3CenterSize(math32.Vector3{}, math32.Vec3(x, y, z))
}

// sphereBounds are the bounds of all unit spheres.
var sphereBounds = flatBounds(2, 2, 2)

// planeNormal and planeTangent are shared by all flat grids.
var (
	planeNormal  = up
	planeTangent = math32.Vec4(1, 0, 0, -1)
)

// tangentXZ returns the unit tangent of a sphere point along the
// direction of increasing longitude, with bitangent sign -1.
// Points on the Y axis use the X axis.
func tangentXZ(p math32.Vector3) math32.Vector4 {
	l := math32.Sqrt(p.X*p.X + p.Z*p.Z)
	if l == 0 {
		return math32.Vec4(1, 0, 0, -1)
	}
	return math32.Vec4(-p.Z/l, 0, p.X/l, -1)
}

// texCoord returns the longitude/latitude texture coordinates of a unit
// sphere point. U values of zero are moved to one so that the seam at
// the back of the sphere belongs to the end of the texture.
func texCoord(p math32.Vector3) math32.Vector2 {
	tc := math32.Vec2(
		math32.Atan2(p.X, p.Z)/(-2*math32.Pi)+0.5,
		math32.Asin(math32.Clamp(p.Y, -1, 1))/math32.Pi+0.5,
	)
	if tc.X < 1e-6 {
		tc.X = 1
	}
	return tc
}

// sphereVertex returns the vertex of a unit sphere point,
// with its position used as normal.
func sphereVertex(p math32.Vector3) mesh.Vertex {
	return mesh.Vertex{Position: p, Normal: p, Tangent: tangentXZ(p), UV0: texCoord(p)}
}
