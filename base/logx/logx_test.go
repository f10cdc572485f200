// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestHandler(t *testing.T) {
	prev := UserLevel
	defer func() { UserLevel = prev }()
	UserLevel = slog.LevelInfo

	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf))
	logger.Debug("hidden")
	logger.Info("generated mesh", "type", "UVSphere", "vertices", 142)
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "generated mesh")
	assert.Contains(t, out, "type=UVSphere")
	assert.Contains(t, out, "vertices=142")

	buf.Reset()
	logger.WithGroup("job").With("resolution", 3).Warn("slow")
	assert.Contains(t, buf.String(), "job.resolution=3")
}
