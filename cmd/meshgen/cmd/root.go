// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the meshgen commands.
package cmd

import (
	"cogentcore.org/procmesh/base/logx"
	"github.com/spf13/cobra"
)

// NewRootCommand returns the meshgen root command with all of its subcommands.
func NewRootCommand() *cobra.Command {
	var veryVerbose, verbose, quiet bool
	root := &cobra.Command{
		Use:           "meshgen",
		Short:         "Generate procedural meshes",
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(veryVerbose, verbose, quiet)
			logx.SetDefaultLogger()
		},
	}
	pf := root.PersistentFlags()
	pf.BoolVar(&veryVerbose, "vv", false, "very verbose: log debug messages")
	pf.BoolVarP(&verbose, "verbose", "v", false, "verbose: log info messages")
	pf.BoolVarP(&quiet, "quiet", "q", false, "quiet: only log errors")

	root.AddCommand(newGenerateCommand(), newListCommand(), newWatchCommand())
	return root
}
