// File: core/apply/partition.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Partitioned executor: one pass splits the sorted batch into an
// insert-only list and a remove-only list, then inserts and removes are
// applied in two branch-light passes built from bulk contiguous copies.
//
// Rebasing rule: a remove at original index at is stored as
// at + (inserts seen so far in batch order). The total order places every
// insert at index <= at before the remove, so the rebased value is the
// position of the doomed original element inside the insert-expanded
// intermediate sequence. Rebased indices are strictly increasing once
// duplicate removes are collapsed.

package apply

import "github.com/momentics/splice/api"

// insertOp is one splice point in original coordinates.
type insertOp struct {
	at  int
	val byte
}

// partitionEdits splits a sorted batch into inserts (original coordinates)
// and removes (rebased into insert-expanded coordinates). Duplicate
// removes collapse to one entry; idempotence makes that a pure
// optimization.
func partitionEdits(edits []api.Edit) (ins []insertOp, rem []int) {
	nIns, nRem := Counts(edits)
	if nIns > 0 {
		ins = make([]insertOp, 0, nIns)
	}
	if nRem > 0 {
		rem = make([]int, 0, nRem)
	}
	seen := 0
	for _, e := range edits {
		switch e.Kind {
		case api.KindInsert:
			ins = append(ins, insertOp{at: e.At, val: e.Value})
			seen++
		case api.KindRemove:
			r := e.At + seen
			if k := len(rem); k > 0 && rem[k-1] == r {
				continue
			}
			rem = append(rem, r)
		}
	}
	return ins, rem
}

// expandInserts walks the original once, bulk-copying unmodified runs and
// splicing each insert value at its position. dst must have capacity for
// len(original)+len(ins).
func expandInserts(dst, original []byte, ins []insertOp) []byte {
	cursor := 0
	for _, op := range ins {
		dst = append(dst, original[cursor:op.at]...)
		dst = append(dst, op.val)
		cursor = op.at
	}
	return append(dst, original[cursor:]...)
}

// dropRemoves walks the insert-expanded sequence once, skipping the
// strictly increasing rebased remove positions and bulk-copying every
// other run. dst must have capacity for len(expanded)-len(rem).
func dropRemoves(dst, expanded []byte, rem []int) []byte {
	cursor := 0
	for _, r := range rem {
		dst = append(dst, expanded[cursor:r]...)
		cursor = r + 1
	}
	return append(dst, expanded[cursor:]...)
}

// Partitioned applies a sorted edit batch in two sequential linear passes
// (inserts, then removes) over bulk contiguous copies. Output is
// byte-identical to Merge for any valid input. Precondition violations
// are rejected with ErrUnsorted or ErrIndexOutOfRange.
func Partitioned(original []byte, edits []api.Edit) ([]byte, error) {
	if err := CheckEdits(len(original), edits); err != nil {
		return nil, err
	}
	ins, rem := partitionEdits(edits)

	expanded := original
	if len(ins) > 0 {
		expanded = expandInserts(make([]byte, 0, len(original)+len(ins)), original, ins)
	}
	if len(rem) == 0 {
		if len(ins) == 0 {
			// No effective edits: still hand back a caller-owned copy.
			out := make([]byte, len(original))
			copy(out, original)
			return out, nil
		}
		return expanded, nil
	}
	return dropRemoves(make([]byte, 0, len(expanded)-len(rem)), expanded, rem), nil
}
