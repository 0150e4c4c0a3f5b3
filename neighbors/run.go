// SPDX-License-Identifier: MIT
// Package: neighbors
//
// run.go — one-call computation and result storage.

package neighbors

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/irneighbors/metric"
	"github.com/katalvlaran/irneighbors/sparse"
	"github.com/katalvlaran/irneighbors/table"
)

// Result is the terminal artifact of one run.
type Result struct {
	RunID          uuid.UUID
	Key            string
	CreatedAt      time.Time
	Params         Params
	IDs            []string
	Distances      *sparse.Matrix[uint16]
	Connectivities *sparse.Matrix[float64]
}

// Store receives results under a key.
type Store interface {
	Put(key string, r *Result) error
	Get(key string) (*Result, error)
}

// MemoryStore is an in-process Store, safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	results map[string]*Result
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{results: make(map[string]*Result)}
}

// Put stores r under key, replacing any previous result.
func (s *MemoryStore) Put(key string, r *Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[key] = r
	return nil
}

// Get returns the result under key or ErrResultNotFound.
func (s *MemoryStore) Get(key string) (*Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.results[key]
	if !ok {
		return nil, fmt.Errorf("Get %q: %w", key, ErrResultNotFound)
	}
	return r, nil
}

// Len returns the number of stored results.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.results)
}

// Run computes distances and connectivities of t under cfg. A cutoff of 0
// always uses the identity metric. When store is non-nil the result is put
// under cfg.Key (DefaultKey if empty); it is returned in every case.
func Run(ctx context.Context, t table.Table, cfg Config, store Store, opts ...Option) (*Result, error) {
	if cfg.Cutoff == 0 {
		cfg.Metric = metric.NameIdentity
		opts = append(opts, WithMetric(metric.Identity{}))
	}
	nb, err := New(t, cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	if err := nb.Compute(ctx); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	dist, err := nb.Distances()
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	conn, err := nb.Connectivities()
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	key := cfg.Key
	if key == "" {
		key = DefaultKey
	}
	res := &Result{
		RunID:          uuid.New(),
		Key:            key,
		CreatedAt:      time.Now().UTC(),
		Params:         nb.Params(),
		IDs:            nb.IDs(),
		Distances:      dist,
		Connectivities: conn,
	}
	if store != nil {
		if err := store.Put(key, res); err != nil {
			return nil, fmt.Errorf("Run: store %q: %w", key, err)
		}
		nb.opts.logger.Info("stored result",
			slog.String("key", key),
			slog.String("run_id", res.RunID.String()))
	}

	return res, nil
}
