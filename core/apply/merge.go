// File: core/apply/merge.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Merge executor: walks the original sequence and the edit batch in
// lock-step, emitting output elements one at a time. Reference baseline;
// every other strategy must produce byte-identical output.

package apply

import "github.com/momentics/splice/api"

// Merge applies a sorted edit batch with the single-pass interleaved
// algorithm. The original is never mutated; the result is newly allocated
// and sized exactly once. Precondition violations are rejected with
// ErrUnsorted or ErrIndexOutOfRange.
func Merge(original []byte, edits []api.Edit) ([]byte, error) {
	if err := CheckEdits(len(original), edits); err != nil {
		return nil, err
	}
	inserts, removes := Counts(edits)
	out := make([]byte, 0, len(original)+inserts-removes)
	return mergeInto(out, original, edits), nil
}

// mergeInto runs the merge loop, appending to out. Assumes a valid batch.
//
// Cursor i walks the original, e walks the batch. An insert at i emits its
// value and leaves i in place so later edits at i (or the element itself)
// are still processed. A remove at i consumes the element without
// emitting; a remove strictly below i is a duplicate of one already
// applied and is skipped (idempotence).
func mergeInto(out, original []byte, edits []api.Edit) []byte {
	i, e := 0, 0
	for e < len(edits) || i < len(original) {
		if e < len(edits) {
			ed := edits[e]
			if ed.Kind == api.KindInsert && ed.At == i {
				out = append(out, ed.Value)
				e++
				continue
			}
			if ed.Kind == api.KindRemove && ed.At <= i {
				if ed.At == i {
					i++
				}
				e++
				continue
			}
		}
		out = append(out, original[i])
		i++
	}
	return out
}
