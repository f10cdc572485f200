// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit procedural mesh generation.

package math32

// Triangle represents a triangle made of three vertices.
type Triangle struct {
	A Vector3
	B Vector3
	C Vector3
}

// NewTriangle returns a new Triangle object.
func NewTriangle(a, b, c Vector3) Triangle {
	return Triangle{a, b, c}
}

// Normal returns the unit normal of the triangle a, b, c,
// oriented along (b-a) x (c-a). Degenerate triangles return
// the zero vector.
func Normal(a, b, c Vector3) Vector3 {
	return Cross(a, b, c).Normal()
}

// Cross returns the unnormalized (b-a) x (c-a), whose length
// is twice the triangle area.
func Cross(a, b, c Vector3) Vector3 {
	return b.Sub(a).Cross(c.Sub(a))
}

// Area returns the triangle's area.
func (t Triangle) Area() float32 {
	return Cross(t.A, t.B, t.C).Length() * 0.5
}

// Midpoint returns the triangle's midpoint.
func (t Triangle) Midpoint() Vector3 {
	return t.A.Add(t.B).Add(t.C).MulScalar(float32(1) / 3)
}

// Normal returns the triangle's normal.
func (t Triangle) Normal() Vector3 {
	return Normal(t.A, t.B, t.C)
}
