// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"cogentcore.org/procmesh"
	"github.com/spf13/cobra"
)

// writeList writes a table of all mesh types with their sizes
// at the given resolution.
func writeList(w io.Writer, resolution int) error {
	if resolution < 1 || resolution > procmesh.MaxResolution {
		return fmt.Errorf("%w: %d is not in [1, %d]", procmesh.ErrResolution, resolution, procmesh.MaxResolution)
	}
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Type\tStream\tUnits\tVertices\tTriangles\tSize\t")
	for t := range procmesh.MeshTypesN {
		c := procmesh.MeshCounts(t, resolution)
		s := c.Bounds.Size()
		fmt.Fprintf(tw, "%v\t%v\t%d\t%d\t%d\t%.3gx%.3gx%.3g\t\n", t, procmesh.ResolveStream(t, procmesh.DefaultStream), c.Units, c.Vertices, c.Triangles(), s.X, s.Y, s.Z)
	}
	return tw.Flush()
}

func newListCommand() *cobra.Command {
	resolution := 1
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the mesh types with their sizes at a resolution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeList(cmd.OutOrStdout(), resolution)
		},
	}
	cmd.Flags().IntVarP(&resolution, "resolution", "r", resolution, "resolution to compute sizes for")
	return cmd
}
