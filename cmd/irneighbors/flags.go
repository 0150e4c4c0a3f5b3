// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/irneighbors/neighbors"
	"github.com/katalvlaran/irneighbors/table"
)

// runFlags are shared by every command that computes neighbors.
type runFlags struct {
	input      string
	configPath string
	verbose    bool
	progress   bool
	cfg        neighbors.Config
}

func (f *runFlags) register(cmd *cobra.Command) {
	f.cfg = neighbors.DefaultConfig()
	fl := cmd.Flags()
	fl.StringVarP(&f.input, "input", "i", "", "Input TSV with an id column and <arm>_<chain>_cdr3 columns")
	fl.StringVarP(&f.configPath, "config", "c", "", "YAML config; explicit flags override it")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "Debug logging on stderr")
	fl.BoolVarP(&f.progress, "progress", "p", false, "Show a progress bar on stderr")
	fl.StringVarP(&f.cfg.Metric, "metric", "m", f.cfg.Metric, "identity, levenshtein or alignment")
	fl.IntVarP(&f.cfg.Cutoff, "cutoff", "C", f.cfg.Cutoff, "Maximum distance kept (0..255); 0 forces identity")
	fl.StringVar(&f.cfg.ReceptorArms, "receptor-arms", f.cfg.ReceptorArms, "VJ, VDJ, all or any")
	fl.StringVar(&f.cfg.DualChain, "dual-chain", f.cfg.DualChain, "primary_only, any or all")
	fl.StringVar(&f.cfg.Sequence, "sequence", f.cfg.Sequence, "aa or nt")
	fl.IntVarP(&f.cfg.Workers, "threads", "t", f.cfg.Workers, "Worker goroutines (0 = all CPUs)")
	fl.IntVar(&f.cfg.ChunkSize, "chunk-size", f.cfg.ChunkSize, "Rows per work unit")
	_ = cmd.MarkFlagRequired("input")
}

// config merges the YAML file (if any) under the flags the user set.
func (f *runFlags) config(cmd *cobra.Command) (neighbors.Config, error) {
	if f.configPath == "" {
		return f.cfg, nil
	}
	cfg, err := neighbors.LoadConfig(f.configPath)
	if err != nil {
		return cfg, err
	}
	fl := cmd.Flags()
	if fl.Changed("metric") {
		cfg.Metric = f.cfg.Metric
	}
	if fl.Changed("cutoff") {
		cfg.Cutoff = f.cfg.Cutoff
	}
	if fl.Changed("receptor-arms") {
		cfg.ReceptorArms = f.cfg.ReceptorArms
	}
	if fl.Changed("dual-chain") {
		cfg.DualChain = f.cfg.DualChain
	}
	if fl.Changed("sequence") {
		cfg.Sequence = f.cfg.Sequence
	}
	if fl.Changed("threads") {
		cfg.Workers = f.cfg.Workers
	}
	if fl.Changed("chunk-size") {
		cfg.ChunkSize = f.cfg.ChunkSize
	}
	return cfg, nil
}

// run reads the table and computes the neighbor result.
func (f *runFlags) run(ctx context.Context, cmd *cobra.Command) (*table.Frame, *neighbors.Result, error) {
	logger := newLogger(cmd.ErrOrStderr(), f.verbose)
	cfg, err := f.config(cmd)
	if err != nil {
		return nil, nil, err
	}

	in, err := os.Open(f.input)
	if err != nil {
		return nil, nil, err
	}
	defer in.Close()
	frame, err := table.ReadTSV(in)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", f.input, err)
	}
	logger.Info("loaded cells",
		"input", f.input,
		"cells", humanize.Comma(int64(frame.NumEntities())))

	opts := []neighbors.Option{neighbors.WithLogger(logger)}
	if f.progress {
		opts = append(opts, neighbors.WithProgressBar(cmd.ErrOrStderr()))
	}
	start := time.Now()
	res, err := neighbors.Run(ctx, frame, cfg, neighbors.NewMemoryStore(), opts...)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("computed neighbors",
		"run_id", res.RunID.String(),
		"stored", humanize.Comma(int64(res.Distances.NNZ())),
		"elapsed", time.Since(start).Round(time.Millisecond).String())
	return frame, res, nil
}
