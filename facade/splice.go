// File: facade/splice.go
// Unified facade layer for the splice library.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// This file defines the Splice struct, which aggregates the executors,
// the scratch pool, and the async worker pool behind a single facade.
// It dispatches each Apply call to a strategy based on immutable
// configuration, tracks apply statistics, and exposes an asynchronous
// Submit path for callers editing many sequences concurrently.

package facade

import (
	"fmt"
	"sync/atomic"

	"github.com/momentics/splice/api"
	"github.com/momentics/splice/core/apply"
	"github.com/momentics/splice/internal/concurrency"
	"github.com/momentics/splice/pool"
)

// Strategy selects an apply algorithm.
type Strategy int

const (
	// StrategyAuto picks Merge below FastThreshold and Fast at or above it.
	StrategyAuto Strategy = iota
	// StrategyMerge forces the single-pass interleaved baseline.
	StrategyMerge
	// StrategyPartitioned forces the two-pass bulk-copy executor.
	StrategyPartitioned
	// StrategyFast forces the unchecked-writer partitioned executor.
	StrategyFast
)

func (s Strategy) String() string {
	switch s {
	case StrategyAuto:
		return "auto"
	case StrategyMerge:
		return "merge"
	case StrategyPartitioned:
		return "partitioned"
	case StrategyFast:
		return "fast"
	default:
		return "unknown"
	}
}

// Config holds parameters immutable per facade instance.
type Config struct {
	Strategy      Strategy // Apply algorithm selection
	Validate      bool     // Check batch preconditions before the fast path
	Workers       int      // Async Submit worker goroutines (<=0: NumCPU)
	UsePool       bool     // Recycle fast-path scratch regions across calls
	FastThreshold int      // Minimum original length for Fast under Auto
}

// DefaultConfig returns default configuration values.
func DefaultConfig() *Config {
	return &Config{
		Strategy:      StrategyAuto,
		Validate:      true, // reject malformed batches instead of UB
		Workers:       4,
		UsePool:       true,
		FastThreshold: 4096, // below this the merge baseline wins
	}
}

// Splice is the main facade type.
type Splice struct {
	config   *Config
	pool     api.ScratchPool
	executor *concurrency.Executor

	batches  atomic.Int64
	elements atomic.Int64
	inserted atomic.Int64
	removed  atomic.Int64
}

// Ensure compliance with api.Applier.
var _ api.Applier = (*Splice)(nil)

// New constructs a Splice facade with the given configuration.
// A nil config means DefaultConfig.
func New(cfg *Config) (*Splice, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.Strategy < StrategyAuto || cfg.Strategy > StrategyFast {
		return nil, fmt.Errorf("splice: unknown strategy %d", cfg.Strategy)
	}
	s := &Splice{
		config:   cfg,
		pool:     pool.Default(),
		executor: concurrency.NewExecutor(cfg.Workers),
	}
	return s, nil
}

// Apply materializes the post-edit sequence for one original sequence and
// one sorted edit batch, using the configured strategy. The original is
// never mutated and the result is owned solely by the caller.
func (s *Splice) Apply(original []byte, edits []api.Edit) ([]byte, error) {
	out, err := s.dispatch(original, edits)
	if err != nil {
		return nil, err
	}
	ins, rem := apply.Counts(edits)
	s.batches.Add(1)
	s.elements.Add(int64(len(out)))
	s.inserted.Add(int64(ins))
	s.removed.Add(int64(rem))
	return out, nil
}

func (s *Splice) dispatch(original []byte, edits []api.Edit) ([]byte, error) {
	switch s.strategyFor(len(original)) {
	case StrategyMerge:
		return apply.Merge(original, edits)
	case StrategyPartitioned:
		return apply.Partitioned(original, edits)
	default: // StrategyFast
		if s.config.Validate {
			if err := apply.CheckEdits(len(original), edits); err != nil {
				return nil, err
			}
		}
		if !s.config.UsePool {
			return apply.Fast(original, edits), nil
		}
		ins, _ := apply.Counts(edits)
		buf := s.pool.Get(len(original) + ins)
		out := apply.FastScratch(original, edits, buf.Bytes())
		buf.Release()
		return out, nil
	}
}

func (s *Splice) strategyFor(n int) Strategy {
	if s.config.Strategy != StrategyAuto {
		return s.config.Strategy
	}
	if n >= s.config.FastThreshold {
		return StrategyFast
	}
	return StrategyMerge
}

// Submit applies a batch asynchronously on the worker pool and invokes
// done with the result. The caller must not mutate original or edits
// until done runs. Returns an error only when the facade is closed.
func (s *Splice) Submit(original []byte, edits []api.Edit, done func([]byte, error)) error {
	return s.executor.Submit(func() {
		done(s.Apply(original, edits))
	})
}

// Stats returns cumulative apply counters.
func (s *Splice) Stats() api.ApplyStats {
	return api.ApplyStats{
		Batches:  s.batches.Load(),
		Elements: s.elements.Load(),
		Inserted: s.inserted.Load(),
		Removed:  s.removed.Load(),
	}
}

// PoolStats returns scratch pool accounting.
func (s *Splice) PoolStats() api.PoolStats {
	return s.pool.Stats()
}

// Close shuts down the async worker pool. Synchronous Apply keeps
// working after Close; Submit returns an error.
func (s *Splice) Close() error {
	s.executor.Close()
	return nil
}
