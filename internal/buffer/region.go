// File: internal/buffer/region.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Region is a raw allocation for scratch use. Large regions are backed by
// hugepages where the platform supports them (see region_linux.go and
// region_windows.go); everything else comes from the Go heap.

package buffer

// hugeThreshold is the smallest region size worth a hugepage mapping.
const hugeThreshold = 2 << 20 // 2 MiB

// Region is a fixed-size allocation plus the bookkeeping needed to return
// it to the OS when hugepage-backed.
type Region struct {
	data   []byte
	mapped []byte // non-nil when backed by an OS mapping
}

// Bytes returns the full region. Contents are unspecified until written.
func (r *Region) Bytes() []byte { return r.data }

// Cap returns the usable region size.
func (r *Region) Cap() int { return len(r.data) }

// AllocRegion allocates a region of exactly size bytes. Regions at or
// above hugeThreshold attempt a hugepage mapping first, falling back to
// the Go heap.
func AllocRegion(size int) *Region {
	if size >= hugeThreshold {
		if r := allocMapped(size); r != nil {
			return r
		}
	}
	return &Region{data: make([]byte, size)}
}

// Free returns a mapped region to the OS. Heap regions are left to the GC.
// The region must not be used after Free.
func (r *Region) Free() {
	if r.mapped != nil {
		freeMapped(r.mapped)
		r.mapped = nil
	}
	r.data = nil
}
