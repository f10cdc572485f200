// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settings struct {
	Type       string
	Resolution int
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "mesh.toml")
	require.NoError(t, Save(&settings{Type: "Octasphere", Resolution: 6}, fn))

	var s settings
	require.NoError(t, Open(&s, fn))
	assert.Equal(t, settings{Type: "Octasphere", Resolution: 6}, s)
}

func TestOpenFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.toml")
	b := filepath.Join(dir, "b.toml")
	require.NoError(t, Save(&settings{Type: "Icosphere", Resolution: 2}, a))
	require.NoError(t, Save(&struct{ Resolution int }{Resolution: 9}, b))

	var s settings
	require.NoError(t, OpenFiles(&s, a, b))
	assert.Equal(t, "Icosphere", s.Type)
	assert.Equal(t, 9, s.Resolution)

	assert.Error(t, Open(&s, filepath.Join(dir, "missing.toml")))
}

func TestBytes(t *testing.T) {
	b, err := WriteBytes(&settings{Type: "UVSphere", Resolution: 3})
	require.NoError(t, err)
	var s settings
	require.NoError(t, ReadBytes(&s, b))
	assert.Equal(t, 3, s.Resolution)
}
