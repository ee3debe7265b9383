// Package unit tests edit application end to end through the facade.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package unit

import (
	"bytes"
	"testing"

	"github.com/momentics/splice/api"
	"github.com/momentics/splice/facade"
)

func newFacade(t *testing.T, strat facade.Strategy) *facade.Splice {
	t.Helper()
	cfg := facade.DefaultConfig()
	cfg.Strategy = strat
	s, err := facade.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// TestApply_Scenarios drives the documented black-box scenarios through
// every strategy the facade can be configured with.
func TestApply_Scenarios(t *testing.T) {
	cases := []struct {
		name     string
		original []byte
		edits    []api.Edit
		want     []byte
	}{
		{"mixed", []byte{1, 2, 2, 3, 7},
			[]api.Edit{api.Insert(0, 0), api.Remove(1), api.Insert(4, 4), api.Insert(4, 5), api.Remove(4)},
			[]byte{0, 1, 2, 3, 4, 5}},
		{"empty", []byte{}, []api.Edit{}, []byte{}},
		{"remove sole element", []byte{9}, []api.Edit{api.Remove(0)}, []byte{}},
		{"prepend two", []byte{9}, []api.Edit{api.Insert(0, 1), api.Insert(0, 2)}, []byte{1, 2, 9}},
		{"append at end", []byte{1, 2}, []api.Edit{api.Insert(2, 9)}, []byte{1, 2, 9}},
	}
	strats := []facade.Strategy{
		facade.StrategyAuto,
		facade.StrategyMerge,
		facade.StrategyPartitioned,
		facade.StrategyFast,
	}
	for _, strat := range strats {
		s := newFacade(t, strat)
		for _, tc := range cases {
			t.Run(strat.String()+"/"+tc.name, func(t *testing.T) {
				got, err := s.Apply(tc.original, tc.edits)
				if err != nil {
					t.Fatal(err)
				}
				if !bytes.Equal(got, tc.want) {
					t.Fatalf("got %v, want %v", got, tc.want)
				}
			})
		}
	}
}

// TestApply_LargeSequence exercises the auto fast path on a sequence big
// enough to cross the strategy threshold and the pool's hugepage classes.
func TestApply_LargeSequence(t *testing.T) {
	const n = 256 * 1024
	original := make([]byte, n)
	for i := range original {
		original[i] = byte(i * 31)
	}
	edits := []api.Edit{
		api.Insert(0, 0x01),
		api.Remove(100),
		api.Remove(100),
		api.Insert(n/2, 0x02),
		api.Insert(n/2, 0x03),
		api.Remove(n / 2),
		api.Insert(n, 0x04),
	}

	auto := newFacade(t, facade.StrategyAuto)
	merge := newFacade(t, facade.StrategyMerge)

	fast, err := auto.Apply(original, edits)
	if err != nil {
		t.Fatal(err)
	}
	base, err := merge.Apply(original, edits)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(fast, base) {
		t.Fatal("fast path diverges from merge baseline on large input")
	}
	// 7 edits: 4 inserts, 2 distinct removes.
	if len(fast) != n+4-2 {
		t.Fatalf("output length %d violates the length law", len(fast))
	}
}
