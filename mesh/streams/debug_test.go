// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build debug

package streams

import (
	"testing"

	"cogentcore.org/procmesh/math32"
	"cogentcore.org/procmesh/mesh"
	"github.com/stretchr/testify/assert"
)

func TestDebugIndexCheck(t *testing.T) {
	var buf mesh.Buffers
	var s Single
	s.Setup(&buf, 3, 3, math32.Box3{})
	assert.Panics(t, func() { s.SetTriangle(0, math32.Tri(0, 1, 3)) })
	assert.Panics(t, func() { s.SetTriangle(0, math32.Tri(-1, 1, 2)) })
	assert.NotPanics(t, func() { s.SetTriangle(0, math32.Tri(0, 1, 2)) })
}
