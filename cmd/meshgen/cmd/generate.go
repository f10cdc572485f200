// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/procmesh"
	"cogentcore.org/procmesh/base/iox/tomlx"
	"cogentcore.org/procmesh/base/iox/yamlx"
	"cogentcore.org/procmesh/meshio"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Formats are the output file formats.
var Formats = []string{"obj", "stl", "stats"}

// generateOptions are the options shared by generate and watch.
type generateOptions struct {

	// flags holds the mesh config flag values. Only the flags
	// the user set override the config file.
	flags procmesh.Config

	// config is the config file, if any.
	config string

	// format is one of [Formats], inferred from the output
	// file extension if not set.
	format string

	// output is the output file, or - for standard output.
	output string
}

// addFlags adds the mesh config and output flags to fs.
func (o *generateOptions) addFlags(fs *pflag.FlagSet) {
	o.flags = *procmesh.NewConfig()
	fs.Var(&o.flags.Type, "type", "mesh type")
	fs.IntVarP(&o.flags.Resolution, "resolution", "r", o.flags.Resolution, fmt.Sprintf("resolution in [1, %d]", procmesh.MaxResolution))
	fs.Var(&o.flags.Stream, "stream", "stream: Default, Single or Position")
	fs.Var(&o.flags.Optimization, "optimization", "optimization: Nothing, ReorderIndices, ReorderVertices or ReorderAll")
	fs.Var(&o.flags.Material, "material", "material: Flat, Ripple, LatLonMap or CubeMap")
	fs.StringVarP(&o.config, "config", "c", "", "config file (.toml, .yaml or .yml)")
	fs.StringVarP(&o.format, "format", "f", "", "output format: "+strings.Join(Formats, ", ")+" (default from the output extension, else obj)")
	fs.StringVarP(&o.output, "output", "o", "-", "output file, - for standard output")
}

// loadConfig returns the mesh config from the config file, if any,
// overridden by the flags set in fs.
func (o *generateOptions) loadConfig(fs *pflag.FlagSet) (*procmesh.Config, error) {
	cfg := procmesh.NewConfig()
	if o.config != "" {
		if err := openConfig(cfg, o.config); err != nil {
			return nil, err
		}
	}
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "type":
			cfg.Type = o.flags.Type
		case "resolution":
			cfg.Resolution = o.flags.Resolution
		case "stream":
			cfg.Stream = o.flags.Stream
		case "optimization":
			cfg.Optimization = o.flags.Optimization
		case "material":
			cfg.Material = o.flags.Material
		}
	})
	return cfg, cfg.Validate()
}

// outputFormat returns the format to write, validating it.
func (o *generateOptions) outputFormat() (string, error) {
	format := strings.ToLower(o.format)
	if format == "" {
		switch strings.ToLower(filepath.Ext(o.output)) {
		case ".stl":
			format = "stl"
		case ".yaml", ".yml":
			format = "stats"
		default:
			format = "obj"
		}
	}
	for _, f := range Formats {
		if f == format {
			return format, nil
		}
	}
	return "", fmt.Errorf("unknown format %q: must be one of %s", o.format, strings.Join(Formats, ", "))
}

// openConfig opens the config file into cfg, by file extension.
func openConfig(cfg *procmesh.Config, filename string) error {
	path, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = tomlx.Open(cfg, path)
	case ".yaml", ".yml":
		err = yamlx.Open(cfg, path)
	default:
		return fmt.Errorf("config file %q: unknown extension, expected .toml, .yaml or .yml", filename)
	}
	if err != nil {
		return fmt.Errorf("config file %q: %w", filename, err)
	}
	return nil
}

// run generates the mesh and writes it, to stdout if there is no output file.
func (o *generateOptions) run(fs *pflag.FlagSet, stdout io.Writer) error {
	format, err := o.outputFormat()
	if err != nil {
		return err
	}
	cfg, err := o.loadConfig(fs)
	if err != nil {
		return err
	}
	res, err := procmesh.Generate(cfg)
	if err != nil {
		return err
	}
	slog.Info("generated mesh", "config", cfg, "buffers", &res.Buffers, "duration", res.Duration)

	if o.output == "" || o.output == "-" {
		return writeResult(stdout, res, format)
	}
	path, err := homedir.Expand(o.output)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writeResult(f, res, format); err != nil {
		f.Close()
		return fmt.Errorf("writing %q: %w", o.output, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	slog.Info("wrote mesh", "file", path, "format", format)
	return nil
}

// writeResult writes res to w in the given format.
func writeResult(w io.Writer, res *procmesh.Result, format string) error {
	buf := &res.Buffers
	switch format {
	case "stl":
		return meshio.WriteSTL(w, buf)
	case "stats":
		st := meshio.NewStats(buf)
		st.Type = res.Config.Type.String()
		st.Resolution = res.Config.Resolution
		st.Material = res.Config.Material.String()
		return meshio.WriteStats(w, st)
	default:
		return meshio.WriteOBJ(w, buf, res.Config.Type.String(), res.Config.Material.String())
	}
}

func newGenerateCommand() *cobra.Command {
	o := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a mesh and write it to a file or standard output",
		Long: "Generate a mesh from a config file and flags, which override the file, " +
			"and write it as an OBJ, binary STL or YAML stats file.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd.Flags(), cmd.OutOrStdout())
		},
	}
	o.addFlags(cmd.Flags())
	return cmd
}
