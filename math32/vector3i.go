// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit procedural mesh generation.

package math32

// Vector3i is a 3D vector/point with X, Y and Z int32 components.
// Meshes use it for the three vertex indices of a triangle.
type Vector3i struct {
	X int32
	Y int32
	Z int32
}

// Vec3i returns a new [Vector3i] with the given x, y and z components.
func Vec3i(x, y, z int32) Vector3i {
	return Vector3i{X: x, Y: y, Z: z}
}

// Tri returns a new [Vector3i] from three int indices.
func Tri(a, b, c int) Vector3i {
	return Vector3i{X: int32(a), Y: int32(b), Z: int32(c)}
}

// Set sets this vector X, Y and Z components.
func (v *Vector3i) Set(x, y, z int32) {
	v.X = x
	v.Y = y
	v.Z = z
}

// Add returns the vector sum of this vector and other.
func (v Vector3i) Add(other Vector3i) Vector3i {
	return Vec3i(v.X+other.X, v.Y+other.Y, v.Z+other.Z)
}

// AddScalar returns the vector with the scalar added to each component.
func (v Vector3i) AddScalar(s int32) Vector3i {
	return Vec3i(v.X+s, v.Y+s, v.Z+s)
}

// Max returns the largest component.
func (v Vector3i) Max() int32 {
	return max(v.X, v.Y, v.Z)
}

// Min returns the smallest component.
func (v Vector3i) Min() int32 {
	return min(v.X, v.Y, v.Z)
}
