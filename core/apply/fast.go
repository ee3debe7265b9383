// File: core/apply/fast.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fast executor: the partitioned strategy writing through unchecked
// exact-capacity writers. Both passes write into regions sized from one
// measuring pass, so per-element capacity checks are provably redundant
// and skipped. The unchecked writer lives under internal/ and is reached
// only from here; untrusted input must go through Merge or Partitioned.

package apply

import (
	"github.com/momentics/splice/api"
	"github.com/momentics/splice/internal/buffer"
)

// Fast applies a sorted edit batch through unchecked writers.
//
// Preconditions are assumed, not checked: the batch is sorted per
// api.Compare and every index is in bounds. Violating them is undefined
// behavior. Callers that cannot guarantee the preconditions must run
// CheckEdits first or use Merge/Partitioned.
func Fast(original []byte, edits []api.Edit) []byte {
	return FastScratch(original, edits, nil)
}

// FastScratch is Fast with a caller-provided scratch region for the
// insert-expanded intermediate, letting a pool amortize the allocation
// across calls. scratch is used when len(scratch) >= len(original) +
// insert count; otherwise a fresh region is allocated. The returned slice
// never aliases scratch.
func FastScratch(original []byte, edits []api.Edit, scratch []byte) []byte {
	ins, rem := partitionEdits(edits)

	if len(rem) == 0 {
		// Insert-only (or empty) batch: expand straight into the output,
		// no intermediate needed.
		out := buffer.NewWriter(make([]byte, len(original)+len(ins)))
		writeInserts(&out, original, ins)
		return out.Finalize()
	}

	need := len(original) + len(ins)
	if len(scratch) < need {
		scratch = make([]byte, need)
	}
	mid := buffer.NewWriter(scratch[:need])
	writeInserts(&mid, original, ins)
	expanded := mid.Finalize()

	out := buffer.NewWriter(make([]byte, need-len(rem)))
	writeRemoves(&out, expanded, rem)
	return out.Finalize()
}

// writeInserts is expandInserts over an unchecked writer. The writer's
// region must hold exactly len(original)+len(ins) bytes.
func writeInserts(w *buffer.Writer, original []byte, ins []insertOp) {
	cursor := 0
	for _, op := range ins {
		w.AppendSliceUnchecked(original[cursor:op.at])
		w.AppendUnchecked(op.val)
		cursor = op.at
	}
	w.AppendSliceUnchecked(original[cursor:])
}

// writeRemoves is dropRemoves over an unchecked writer. The writer's
// region must hold exactly len(expanded)-len(rem) bytes.
func writeRemoves(w *buffer.Writer, expanded []byte, rem []int) {
	cursor := 0
	for _, r := range rem {
		w.AppendSliceUnchecked(expanded[cursor:r])
		cursor = r + 1
	}
	w.AppendSliceUnchecked(expanded[cursor:])
}
