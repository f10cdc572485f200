// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"cogentcore.org/procmesh/base/errors"
	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// watch generates the mesh and then regenerates it every time the
// config file is written, until ctx is done. Generation errors are
// logged and do not stop watching. If generated is non-nil, it is
// called with the result of every generation.
func (o *generateOptions) watch(ctx context.Context, fs *pflag.FlagSet, stdout io.Writer, generated func(error)) error {
	if o.config == "" {
		return errors.New("watch: a --config file is required")
	}
	path, err := homedir.Expand(o.config)
	if err != nil {
		return err
	}
	path, err = filepath.Abs(path)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	// editors often save by replacing the file, so watch its directory
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	regenerate := func() {
		err := errors.Log(o.run(fs, stdout))
		if generated != nil {
			generated(err)
		}
	}
	regenerate()
	slog.Info("watching config file", "file", path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			slog.Debug("config file changed", "event", event)
			regenerate()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}

func newWatchCommand() *cobra.Command {
	o := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate a mesh every time its config file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.watch(cmd.Context(), cmd.Flags(), cmd.OutOrStdout(), nil)
		},
	}
	o.addFlags(cmd.Flags())
	return cmd
}
