// SPDX-License-Identifier: MIT
// Package: neighbors
//
// options.go — functional options for New and Run.

package neighbors

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/irneighbors/metric"
	"github.com/katalvlaran/irneighbors/parallel"
)

type options struct {
	metric   metric.Metric
	logger   *slog.Logger
	bar      io.Writer
	progress *parallel.Progress
}

// Option configures a Neighbors.
type Option func(*options)

// WithMetric supplies a caller metric; Config.Metric is then ignored.
func WithMetric(m metric.Metric) Option {
	return func(o *options) { o.metric = m }
}

// WithLogger sets the structured logger. The default discards output.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithProgressBar renders a progress bar on w for each arm's pairwise pass.
func WithProgressBar(w io.Writer) Option {
	return func(o *options) { o.bar = w }
}

// WithProgress counts completed rows of the running pairwise pass into p.
func WithProgress(p *parallel.Progress) Option {
	return func(o *options) { o.progress = p }
}

func newOptions(opts []Option) options {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}
	o.logger = o.logger.With(slog.String("component", "neighbors"))
	return o
}
