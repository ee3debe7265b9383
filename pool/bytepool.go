// File: pool/bytepool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// BytePool recycles scratch regions by power-of-two size class. Each
// class keeps a bounded free list; overflow regions are released rather
// than hoarded.

package pool

import (
	"sync/atomic"

	"github.com/momentics/splice/api"
	"github.com/momentics/splice/internal/buffer"
)

// Predefined (power-of-two) scratch size classes (bytes).
// This table can be tuned for deployment needs.
var sizeClasses = [...]int{
	4 * 1024,        // 4K
	16 * 1024,       // 16K
	64 * 1024,       // 64K
	256 * 1024,      // 256K
	1 * 1024 * 1024, // 1M
	4 * 1024 * 1024, // 4M
}

// classCapacity bounds each per-class free list.
const classCapacity = 64

// sizeClassUpperBound returns the smallest class >= requested size,
// or -1 when the request exceeds every class.
func sizeClassUpperBound(size int) int {
	for i, c := range sizeClasses {
		if size <= c {
			return i
		}
	}
	return -1
}

// Buf is a pooled scratch region handed out by a BytePool.
type Buf struct {
	region *buffer.Region
	pool   *BytePool
	class  int // index into sizeClasses, -1 for oversize one-shots
}

// Bytes returns the full region; contents are unspecified until written.
func (b *Buf) Bytes() []byte { return b.region.Bytes() }

// Release returns the region to its pool. The Buf must not be used after.
func (b *Buf) Release() { b.pool.put(b) }

// BytePool is a size-classed scratch pool. Safe for concurrent use.
type BytePool struct {
	classes [len(sizeClasses)]chan *Buf

	totalAlloc atomic.Int64
	totalReuse atomic.Int64
	inUse      atomic.Int64
}

// Ensure compile-time interface compliance.
var _ api.ScratchPool = (*BytePool)(nil)
var _ api.Buf = (*Buf)(nil)

// NewBytePool creates an empty pool covering all size classes.
func NewBytePool() *BytePool {
	p := &BytePool{}
	for i := range p.classes {
		p.classes[i] = make(chan *Buf, classCapacity)
	}
	return p
}

// Get returns a scratch region of at least size bytes. Requests beyond
// the largest class are served by a one-shot allocation that is released
// to the OS/GC on Release rather than pooled.
func (p *BytePool) Get(size int) api.Buf {
	p.inUse.Add(1)
	cls := sizeClassUpperBound(size)
	if cls < 0 {
		p.totalAlloc.Add(1)
		return &Buf{region: buffer.AllocRegion(size), pool: p, class: -1}
	}
	select {
	case b := <-p.classes[cls]:
		p.totalReuse.Add(1)
		return b
	default:
		p.totalAlloc.Add(1)
		return &Buf{region: buffer.AllocRegion(sizeClasses[cls]), pool: p, class: cls}
	}
}

func (p *BytePool) put(b *Buf) {
	p.inUse.Add(-1)
	if b.class < 0 {
		b.region.Free()
		return
	}
	select {
	case p.classes[b.class] <- b:
	default:
		// Free list full: hand the region back instead of growing.
		b.region.Free()
	}
}

// Stats exposes allocation/reuse accounting.
func (p *BytePool) Stats() api.PoolStats {
	return api.PoolStats{
		TotalAlloc: p.totalAlloc.Load(),
		TotalReuse: p.totalReuse.Load(),
		InUse:      p.inUse.Load(),
	}
}
