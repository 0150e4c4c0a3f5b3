// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/irneighbors/network"
)

func clustersCommand() *cobra.Command {
	var (
		f          runFlags
		minSize    int
		fineColumn string
	)
	cmd := &cobra.Command{
		Use:   "clusters",
		Short: "Assign cells to clonotype clusters",
		Long: `Writes one line per cell:

  id  cluster  size  [convergence]

Cells without a sequence, or in clusters below --min-size, get an empty
cluster. With --fine-column, convergence reports whether the cell's cluster
merges several labels of that column.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			frame, res, err := f.run(ctx, cmd)
			if err != nil {
				return err
			}
			g, err := network.FromMatrices(res.IDs, res.Distances, res.Connectivities)
			if err != nil {
				return err
			}
			kept, err := network.MinSize(ctx, g, minSize)
			if err != nil {
				return err
			}
			a, err := network.Assign(ctx, kept, res.IDs)
			if err != nil {
				return err
			}
			newLogger(cmd.ErrOrStderr(), f.verbose).Info("clusters",
				"clusters", humanize.Comma(int64(a.NumClusters())),
				"edges", humanize.Comma(int64(kept.EdgeCount())))

			var conv []string
			if fineColumn != "" {
				fine, err := frame.Column(fineColumn)
				if err != nil {
					return err
				}
				if conv, err = network.Convergence(a.Labels, fine); err != nil {
					return err
				}
			}

			w := bufio.NewWriter(cmd.OutOrStdout())
			if conv != nil {
				fmt.Fprintln(w, "id\tcluster\tsize\tconvergence")
			} else {
				fmt.Fprintln(w, "id\tcluster\tsize")
			}
			for i, id := range res.IDs {
				if conv != nil {
					fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", id, a.Labels[i], a.Sizes[i], conv[i])
				} else {
					fmt.Fprintf(w, "%s\t%s\t%d\n", id, a.Labels[i], a.Sizes[i])
				}
			}
			return w.Flush()
		},
	}
	f.register(cmd)
	cmd.Flags().IntVar(&minSize, "min-size", 1, "Drop clusters with fewer cells")
	cmd.Flags().StringVar(&fineColumn, "fine-column", "", "Label column to test clusters for convergence")
	return cmd
}
