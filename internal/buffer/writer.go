// File: internal/buffer/writer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Writer is an append-only view over a caller-supplied, possibly
// uninitialized region. The initialized-length counter is the sole source
// of truth for which prefix is readable; nothing beyond it is ever
// observable through Finalize.
//
// The Unchecked variants skip capacity checks on the hot path. They are
// reachable only from inside this module (the package lives under
// internal/) and only the capacity-precomputing executors call them.

package buffer

import "unsafe"

// Writer tracks the initialized prefix of a fixed-capacity region.
// The zero Writer is empty with zero capacity; use NewWriter.
type Writer struct {
	base   unsafe.Pointer
	n      int
	region []byte // full-capacity view, len(region) == capacity
}

// NewWriter wraps region as an empty writer. len(region) is the capacity;
// existing contents are treated as uninitialized.
func NewWriter(region []byte) Writer {
	w := Writer{region: region}
	if len(region) > 0 {
		w.base = unsafe.Pointer(&region[0])
	}
	return w
}

// Len returns the initialized prefix length.
func (w *Writer) Len() int { return w.n }

// Cap returns the fixed region capacity.
func (w *Writer) Cap() int { return len(w.region) }

// Append writes one element at the current length. Writing past capacity
// is a caller bug and panics.
func (w *Writer) Append(v byte) {
	if w.n >= len(w.region) {
		panic("splice/buffer: append past writer capacity")
	}
	w.region[w.n] = v
	w.n++
}

// AppendSlice bulk-copies src at the current length. Writing past capacity
// is a caller bug and panics.
func (w *Writer) AppendSlice(src []byte) {
	if w.n+len(src) > len(w.region) {
		panic("splice/buffer: append slice past writer capacity")
	}
	copy(w.region[w.n:], src)
	w.n += len(src)
}

// AppendUnchecked writes one element without a capacity check.
// Precondition: Len() < Cap(). Violating it is undefined behavior.
func (w *Writer) AppendUnchecked(v byte) {
	*(*byte)(unsafe.Add(w.base, w.n)) = v
	w.n++
}

// AppendSliceUnchecked bulk-copies src without a capacity check.
// Precondition: Len()+len(src) <= Cap(). Violating it is undefined behavior.
func (w *Writer) AppendSliceUnchecked(src []byte) {
	if len(src) == 0 {
		return
	}
	copy(unsafe.Slice((*byte)(unsafe.Add(w.base, w.n)), len(src)), src)
	w.n += len(src)
}

// Finalize exposes exactly the initialized prefix [0, Len()). The returned
// slice aliases the region; the writer must not be appended to afterwards.
func (w *Writer) Finalize() []byte {
	return w.region[:w.n:w.n]
}
