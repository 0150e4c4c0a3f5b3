// SPDX-License-Identifier: MIT
// Package: neighbors
//
// config.go — declarative configuration, YAML loading and validation.
//
// Validation order (cheap checks first, all before any computation):
//  1. metric name, sequence type, receptor_arms, dual_chain literals;
//  2. cutoff range and identity ⇒ cutoff 0;
//  3. alignment ⇒ amino acids;
//  4. non-negative parallelism.

package neighbors

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/irneighbors/aggregate"
	"github.com/katalvlaran/irneighbors/metric"
	"github.com/katalvlaran/irneighbors/pairwise"
	"github.com/katalvlaran/irneighbors/seqindex"
)

// Receptor-arm literals besides the arm names themselves.
const (
	ArmsAll = "all"
	ArmsAny = "any"
)

// DefaultKey is the Store key used when Config.Key is empty.
const DefaultKey = "ir_neighbors"

// Config selects metric, cutoff and reduction policies.
type Config struct {
	Metric       string `yaml:"metric"`        // identity | levenshtein | edit-distance | alignment
	Cutoff       int    `yaml:"cutoff"`        // 0..255
	ReceptorArms string `yaml:"receptor_arms"` // VJ | VDJ | all | any
	DualChain    string `yaml:"dual_chain"`    // primary_only | any | all
	Sequence     string `yaml:"sequence"`      // aa | nt
	Workers      int    `yaml:"workers"`       // 0 = all CPUs
	ChunkSize    int    `yaml:"chunk_size"`    // 0 = 200
	GapOpen      int    `yaml:"gap_open"`
	GapExtend    int    `yaml:"gap_extend"`
	Key          string `yaml:"key"`
}

// DefaultConfig returns alignment distances with cutoff 2 over both arms,
// primary chains only, amino-acid sequences.
func DefaultConfig() Config {
	return Config{
		Metric:       metric.NameAlignment,
		Cutoff:       2,
		ReceptorArms: ArmsAll,
		DualChain:    string(aggregate.DualPrimaryOnly),
		Sequence:     string(seqindex.AminoAcid),
		ChunkSize:    200,
		GapOpen:      metric.DefaultGapOpen,
		GapExtend:    metric.DefaultGapExtend,
		Key:          DefaultKey,
	}
}

// LoadConfig reads a YAML file over DefaultConfig; absent fields keep their
// defaults. The result is not validated.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("LoadConfig: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("LoadConfig %s: %w: %w", path, ErrInvalidConfig, err)
	}
	return cfg, nil
}

// plan is the validated, typed form of a Config.
type plan struct {
	metric metric.Metric
	seq    seqindex.SequenceType
	arms   []string
	armPol aggregate.ArmPolicy
	dual   aggregate.DualPolicy
}

// Validate reports the first configuration error, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	_, err := c.plan(nil)
	return err
}

// plan validates c. A non-nil custom metric replaces the named one.
func (c Config) plan(custom metric.Metric) (*plan, error) {
	invalid := func(err error) error {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	p := &plan{metric: custom}
	if p.metric == nil {
		m, err := metric.Parse(c.Metric,
			metric.WithGapOpen(c.GapOpen), metric.WithGapExtend(c.GapExtend))
		if err != nil {
			return nil, invalid(err)
		}
		p.metric = m
	}

	seq, err := seqindex.ParseSequenceType(c.Sequence)
	if err != nil {
		return nil, invalid(fmt.Errorf("%q: %w", c.Sequence, ErrUnknownSequence))
	}
	p.seq = seq

	switch arms := strings.TrimSpace(c.ReceptorArms); {
	case strings.EqualFold(arms, seqindex.ArmVJ):
		p.arms, p.armPol = []string{seqindex.ArmVJ}, aggregate.ArmsAny
	case strings.EqualFold(arms, seqindex.ArmVDJ):
		p.arms, p.armPol = []string{seqindex.ArmVDJ}, aggregate.ArmsAny
	case strings.EqualFold(arms, ArmsAll):
		p.arms, p.armPol = []string{seqindex.ArmVJ, seqindex.ArmVDJ}, aggregate.ArmsAll
	case strings.EqualFold(arms, ArmsAny):
		p.arms, p.armPol = []string{seqindex.ArmVJ, seqindex.ArmVDJ}, aggregate.ArmsAny
	default:
		return nil, invalid(fmt.Errorf("%q: %w", c.ReceptorArms, ErrUnknownArms))
	}

	dual, err := aggregate.ParseDualPolicy(c.DualChain)
	if err != nil {
		return nil, invalid(fmt.Errorf("%q: %w", c.DualChain, ErrUnknownDualChain))
	}
	p.dual = dual

	if err := pairwise.ValidateCutoff(p.metric, c.Cutoff); err != nil {
		return nil, invalid(err)
	}
	if p.metric.Name() == metric.NameAlignment && seq == seqindex.Nucleotide {
		return nil, invalid(ErrAlignmentNucleotide)
	}
	if c.Workers < 0 || c.ChunkSize < 0 {
		return nil, invalid(fmt.Errorf("workers=%d chunk_size=%d: %w", c.Workers, c.ChunkSize, ErrBadParallelism))
	}

	return p, nil
}

// Params is the subset of a Config recorded with a stored result.
type Params struct {
	Metric       string `yaml:"metric"`
	Cutoff       int    `yaml:"cutoff"`
	DualChain    string `yaml:"dual_chain"`
	ReceptorArms string `yaml:"receptor_arms"`
	Sequence     string `yaml:"sequence"`
}

