// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides additional logging functionality on top of [slog],
// including a colored terminal handler and user-selectable verbosity.
package logx

import (
	"log/slog"
	"os"
)

// UserLevel is the verbosity [slog.Level] that the user has selected.
// It defaults to Info, or to Debug with the debug build tag and
// Warn with the release build tag.
var UserLevel = defaultUserLevel

// SetDefaultLogger sets the default logger to a [Handler] writing
// to standard error with the level set to track [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags are evaluated in the order vv, v, q
// (very verbose, verbose, quiet), with the first true flag winning.
// If none are true, it returns [slog.LevelWarn].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
