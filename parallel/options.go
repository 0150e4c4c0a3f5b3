// SPDX-License-Identifier: MIT
// Package: parallel
//
// options.go — functional options for Rows.

package parallel

import (
	"io"
	"runtime"
)

// DefaultChunkSize is the number of contiguous rows handed to a worker at once.
const DefaultChunkSize = 200

// Options holds the scheduler configuration. Use Option functions to modify.
type Options struct {
	Workers   int       // worker count; <=0 means runtime.NumCPU()
	ChunkSize int       // rows per chunk; <=0 means DefaultChunkSize
	Progress  *Progress // optional shared completion counter
	Bar       io.Writer // optional progress bar output
}

// Option modifies Options.
type Option func(*Options)

// DefaultOptions returns the defaults: all CPUs, chunks of 200, no progress.
func DefaultOptions() Options {
	return Options{Workers: runtime.NumCPU(), ChunkSize: DefaultChunkSize}
}

// WithWorkers sets the worker count. Non-positive values keep the default.
func WithWorkers(k int) Option {
	return func(o *Options) {
		if k > 0 {
			o.Workers = k
		}
	}
}

// WithChunkSize sets the number of rows per chunk. Non-positive values keep the default.
func WithChunkSize(c int) Option {
	return func(o *Options) {
		if c > 0 {
			o.ChunkSize = c
		}
	}
}

// WithProgress makes Rows add every completed row to p.
func WithProgress(p *Progress) Option {
	return func(o *Options) { o.Progress = p }
}

// WithProgressBar renders a progress bar on w while Rows runs. nil disables it.
func WithProgressBar(w io.Writer) Option {
	return func(o *Options) { o.Bar = w }
}

// Apply folds opts into a copy of o.
func (o Options) Apply(opts ...Option) Options {
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
