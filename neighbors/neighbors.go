// SPDX-License-Identifier: MIT
// Package: neighbors
//
// neighbors.go — the orchestrator: index, pairwise per arm, aggregation.
//
// Lifecycle:
//   - New validates and indexes; no distances are computed.
//   - Compute runs until it completes; later calls return the first
//     outcome. A cancelled or timed-out run caches nothing and may be retried.
//   - Distances/Connectivities return cached artifacts.
//
// Concurrency:
//   - mu guards dist, computeErr and conn; Compute holds it for the run.

package neighbors

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/katalvlaran/irneighbors/aggregate"
	"github.com/katalvlaran/irneighbors/pairwise"
	"github.com/katalvlaran/irneighbors/parallel"
	"github.com/katalvlaran/irneighbors/seqindex"
	"github.com/katalvlaran/irneighbors/sparse"
	"github.com/katalvlaran/irneighbors/table"
)

// Neighbors holds the index and the computed matrices of one table.
type Neighbors struct {
	cfg   Config
	plan  *plan
	opts  options
	ids   []string
	index *seqindex.Index

	mu         sync.RWMutex
	computeErr error
	dist       *sparse.Matrix[uint16]
	conn       *sparse.Matrix[float64]
}

// New validates cfg and indexes the CDR3 columns of t.
// Configuration errors wrap ErrInvalidConfig.
func New(t table.Table, cfg Config, opts ...Option) (*Neighbors, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	o := newOptions(opts)
	p, err := cfg.plan(o.metric)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	idx, err := seqindex.Build(t, p.arms, p.dual.Chains(), p.seq)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	o.logger.Debug("index built",
		slog.String("metric", p.metric.Name()),
		slog.Int("cutoff", cfg.Cutoff),
		slog.Any("arms", p.arms),
		slog.String("dual_chain", string(p.dual)),
		slog.Int("entities", idx.NumEntities()),
	)

	return &Neighbors{cfg: cfg, plan: p, opts: o, ids: t.IDs(), index: idx}, nil
}

// Compute builds the sequence matrix of every arm and aggregates them.
// Arms are processed one after the other; rows within an arm in parallel.
func (nb *Neighbors) Compute(ctx context.Context) error {
	nb.mu.Lock()
	defer nb.mu.Unlock()
	if nb.dist != nil || nb.computeErr != nil {
		return nb.computeErr
	}
	dist, err := nb.compute(ctx)
	if err != nil {
		if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			nb.computeErr = err
		}
		return err
	}
	nb.dist = dist
	return nil
}

func (nb *Neighbors) compute(ctx context.Context) (*sparse.Matrix[uint16], error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}
	popts := []parallel.Option{
		parallel.WithWorkers(nb.cfg.Workers),
		parallel.WithChunkSize(nb.cfg.ChunkSize),
		parallel.WithProgressBar(nb.opts.bar),
	}
	if nb.opts.progress != nil {
		popts = append(popts, parallel.WithProgress(nb.opts.progress))
	}

	arms := make([]aggregate.ArmDistances, 0, len(nb.index.Arms()))
	for _, a := range nb.index.Arms() {
		start := time.Now()
		m, err := pairwise.Build(ctx, a.Pool(), nb.plan.metric, nb.cfg.Cutoff, popts...)
		if err != nil {
			return nil, fmt.Errorf("Compute: arm %s: %w", a.Arm(), err)
		}
		nb.opts.logger.Info("finished pairwise distances",
			slog.String("arm", a.Arm()),
			slog.Int("sequences", len(a.Pool())),
			slog.Int("stored", m.NNZ()),
			slog.Duration("elapsed", time.Since(start)),
		)
		arms = append(arms, aggregate.ArmDistances{Index: a, Dist: m})
	}

	n := nb.index.NumEntities()
	var (
		dist *sparse.Matrix[uint16]
		err  error
	)
	if nb.plan.armPol != aggregate.ArmsAll && nb.plan.dual != aggregate.DualAll {
		nb.opts.logger.Debug("aggregating with min-reduce")
		dist, err = aggregate.MinReduce(n, arms)
	} else {
		nb.opts.logger.Debug("aggregating with policy reduce",
			slog.String("arms", string(nb.plan.armPol)),
			slog.String("dual_chain", string(nb.plan.dual)))
		dist, err = aggregate.Reduce(n, arms, nb.plan.dual, nb.plan.armPol, nb.cfg.Cutoff)
	}
	if err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}
	nb.opts.logger.Info("finished entity distances",
		slog.Int("entities", n),
		slog.Int("stored", dist.NNZ()),
	)

	return dist, nil
}

// Distances returns the entity distance matrix, or ErrNotComputed.
func (nb *Neighbors) Distances() (*sparse.Matrix[uint16], error) {
	nb.mu.RLock()
	defer nb.mu.RUnlock()
	if nb.dist == nil {
		return nil, ErrNotComputed
	}
	return nb.dist, nil
}

// Connectivities returns the connectivity matrix, derived once on first call.
func (nb *Neighbors) Connectivities() (*sparse.Matrix[float64], error) {
	nb.mu.Lock()
	defer nb.mu.Unlock()
	if nb.dist == nil {
		return nil, ErrNotComputed
	}
	if nb.conn == nil {
		nb.conn = Connectivity(nb.dist, nb.cfg.Cutoff)
		nb.opts.logger.Debug("converted distances to connectivities")
	}
	return nb.conn, nil
}

// IDs returns the entity identifiers in matrix order.
func (nb *Neighbors) IDs() []string { return append([]string(nil), nb.ids...) }

// Params returns the parameters recorded with stored results.
func (nb *Neighbors) Params() Params {
	return Params{
		Metric:       nb.plan.metric.Name(),
		Cutoff:       nb.cfg.Cutoff,
		DualChain:    string(nb.plan.dual),
		ReceptorArms: nb.cfg.ReceptorArms,
		Sequence:     string(nb.plan.seq),
	}
}
