// SPDX-License-Identifier: MIT
// Command irneighbors computes immune-receptor neighbor graphs from a
// tab-separated cell table.
//
//	irneighbors dist     --input cells.tsv [--config cfg.yaml] [flags]
//	irneighbors clusters --input cells.tsv [--min-size 2] [--fine-column clone_id]
//	irneighbors version
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd wires all subcommands onto stdout/stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "irneighbors",
		Short: "Immune-receptor CDR3 neighbor graphs",
		Long: `irneighbors: sparse CDR3 distance graphs between cells

Cells are compared per receptor arm (VJ, VDJ) and chain using identity,
Levenshtein or BLOSUM62 alignment distances up to a cutoff. Per-sequence
distances are lifted to cell distances by the receptor_arms and
dual_chain policies.`,
		SilenceUsage: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.AddCommand(distCommand())
	root.AddCommand(clustersCommand())
	root.AddCommand(versionCommand())
	return root
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "irneighbors version %s\n", version)
		},
	}
}

// newLogger writes text logs to w; verbose enables debug records.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
