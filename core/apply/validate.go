// File: core/apply/validate.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Shared precondition checks and batch measurements. The checked
// executors run CheckEdits before touching the sequence so a contract
// violation fails loudly instead of producing wrong output.

package apply

import (
	"fmt"

	"github.com/momentics/splice/api"
)

// CheckEdits verifies the apply preconditions: the batch is sorted per
// api.Compare and every index is in bounds for an original sequence of
// length n (inserts allow At == n, removes do not).
func CheckEdits(n int, edits []api.Edit) error {
	for i, e := range edits {
		if i > 0 && api.Compare(edits[i-1], e) > 0 {
			return fmt.Errorf("splice: edit %d %v after %v: %w", i, e, edits[i-1], ErrUnsorted)
		}
		switch e.Kind {
		case api.KindInsert:
			if e.At < 0 || e.At > n {
				return fmt.Errorf("splice: edit %d %v with sequence length %d: %w", i, e, n, ErrIndexOutOfRange)
			}
		case api.KindRemove:
			if e.At < 0 || e.At >= n {
				return fmt.Errorf("splice: edit %d %v with sequence length %d: %w", i, e, n, ErrIndexOutOfRange)
			}
		}
	}
	return nil
}

// Counts measures a sorted batch: the number of inserts and the number of
// distinct removed indices. Together with the original length they give
// the exact output length, so output buffers can be sized in one pass.
func Counts(edits []api.Edit) (inserts, removes int) {
	lastRemove := -1
	for _, e := range edits {
		switch e.Kind {
		case api.KindInsert:
			inserts++
		case api.KindRemove:
			if e.At != lastRemove {
				removes++
				lastRemove = e.At
			}
		}
	}
	return
}

// OutputLen returns the exact post-edit length for a sorted batch against
// an original sequence of length n.
func OutputLen(n int, edits []api.Edit) int {
	inserts, removes := Counts(edits)
	return n + inserts - removes
}
