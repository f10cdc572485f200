// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command meshgen generates procedural meshes and writes them as
// OBJ, STL or YAML stats files.
//
// Usage:
//
//	meshgen generate --type GeoOctasphere -r 16 -o sphere.obj
//	meshgen generate --config mesh.toml --format stats
//	meshgen list -r 8
//	meshgen watch --config mesh.yaml -o mesh.obj
package main

import (
	"context"
	"os"
	"os/signal"

	"cogentcore.org/procmesh/cmd/meshgen/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cmd.NewRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
