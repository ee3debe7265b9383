// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Error definitions for the apply executors.

package apply

import "errors"

var (
	// ErrUnsorted indicates the edit batch violates the total order
	ErrUnsorted = errors.New("edit batch is not sorted")

	// ErrIndexOutOfRange indicates an edit references an index outside the original sequence
	ErrIndexOutOfRange = errors.New("edit index out of range")
)
