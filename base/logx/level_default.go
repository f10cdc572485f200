// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !debug && !release

package logx

import "log/slog"

// defaultUserLevel reports each generated mesh but not the
// per-stage timing of the host pipeline.
var defaultUserLevel = slog.LevelInfo
