// File: api/edit.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Edit model: positional insert/remove operations and their total order.
// All indices refer to the original sequence, never to intermediate or
// output state. Construction never validates bounds; validation is the
// executor's responsibility at apply time.

package api

import (
	"fmt"
	"slices"
)

// EditKind discriminates the two edit operations.
type EditKind uint8

const (
	// KindInsert inserts a value immediately before original position At.
	KindInsert EditKind = iota
	// KindRemove deletes the element at original position At.
	KindRemove
)

func (k EditKind) String() string {
	switch k {
	case KindInsert:
		return "insert"
	case KindRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Edit is a single positional edit against the original sequence.
// For KindRemove, Value is unset (zero).
type Edit struct {
	At    int
	Value byte
	Kind  EditKind
}

// Insert constructs an edit that inserts v immediately before original
// position at. Inserting at len(original) appends at the end.
func Insert(at int, v byte) Edit {
	return Edit{At: at, Value: v, Kind: KindInsert}
}

// Remove constructs an edit that deletes the element at original position at.
func Remove(at int) Edit {
	return Edit{At: at, Kind: KindRemove}
}

func (e Edit) String() string {
	if e.Kind == KindInsert {
		return fmt.Sprintf("insert(%d, %#x)", e.At, e.Value)
	}
	return fmt.Sprintf("remove(%d)", e.At)
}

// Compare defines the total order of an edit batch: ascending by At, and
// at equal At every insert precedes the remove. Two inserts at the same At
// compare equal; a stable sort preserves their relative order, which is the
// order they are emitted in.
func Compare(a, b Edit) int {
	if a.At != b.At {
		if a.At < b.At {
			return -1
		}
		return 1
	}
	if a.Kind == b.Kind {
		return 0
	}
	if a.Kind == KindInsert {
		return -1
	}
	return 1
}

// Less reports whether a orders strictly before b.
func Less(a, b Edit) bool {
	return Compare(a, b) < 0
}

// SortEdits sorts a batch in place into the order the executors require.
// The sort is stable so equal-At inserts keep their relative order.
func SortEdits(edits []Edit) {
	slices.SortStableFunc(edits, Compare)
}
