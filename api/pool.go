// File: api/pool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Scratch-buffer pooling contract used by the partitioned fast path.
// Scratch regions hold the insert-expanded intermediate sequence and are
// recycled across Apply calls; they never outlive a call's scope.

package api

// Buf is a pooled scratch region. Contents are unspecified on Get; only
// bytes the caller writes are meaningful. After Release the Buf must not
// be used.
type Buf interface {
	// Bytes returns the full region. len(Bytes()) is the usable capacity.
	Bytes() []byte

	// Release returns the region to its pool.
	Release()
}

// ScratchPool hands out scratch regions of at least the requested size.
type ScratchPool interface {
	Get(size int) Buf
	Stats() PoolStats
}

// PoolStats aggregates allocation/reuse accounting for a pool.
type PoolStats struct {
	TotalAlloc int64 // regions newly allocated
	TotalReuse int64 // regions served from the pool
	InUse      int64 // regions currently checked out
}
