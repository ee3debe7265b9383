// File: api/applier.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Applier contract and apply-time statistics DTO.

package api

// Applier materializes the post-edit sequence for an original sequence and
// a sorted edit batch. The original is never mutated; the returned slice is
// newly produced and owned solely by the caller.
type Applier interface {
	// Apply returns the edited sequence. The batch must be sorted per
	// Compare and every index must be in bounds for the original;
	// checked implementations reject violations with a descriptive error.
	Apply(original []byte, edits []Edit) ([]byte, error)
}

// ApplyStats aggregates counters across Apply calls for observability.
type ApplyStats struct {
	Batches  int64 // edit batches applied
	Elements int64 // output elements produced
	Inserted int64 // insert operations applied
	Removed  int64 // distinct indices removed
}
