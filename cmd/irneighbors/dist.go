// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/irneighbors/sparse"
)

func distCommand() *cobra.Command {
	var (
		f     runFlags
		dense bool
	)
	cmd := &cobra.Command{
		Use:   "dist",
		Short: "Write cell-by-cell distances and connectivities",
		Long: `Writes one line per stored cell pair:

  row_id  col_id  distance  connectivity

distance is the decoded value (stored value minus one).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, res, err := f.run(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			w := bufio.NewWriter(cmd.OutOrStdout())
			if dense {
				d, err := sparse.ToDense(res.Distances)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%v\n", mat.Formatted(d, mat.Squeeze()))
				return w.Flush()
			}
			fmt.Fprintln(w, "row\tcol\tdistance\tconnectivity")
			var werr error
			res.Distances.Each(func(row, col int, v uint16) {
				if werr != nil {
					return
				}
				c, _, err := res.Connectivities.At(row, col)
				if err != nil {
					werr = err
					return
				}
				_, werr = fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
					res.IDs[row], res.IDs[col], v-1, strconv.FormatFloat(c, 'g', 6, 64))
			})
			if werr != nil {
				return werr
			}
			return w.Flush()
		},
	}
	f.register(cmd)
	cmd.Flags().BoolVar(&dense, "dense", false, "Print the offset-encoded distance matrix densely")
	return cmd
}
