// File: internal/buffer/region_linux.go
//go:build linux

//
// Linux hugepage-backed regions via mmap(MAP_HUGETLB) for 2 MiB pages.
// Fallback to the Go heap happens in AllocRegion when the mapping fails
// (no hugepages reserved on the host, ENOMEM, etc).
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package buffer

import "golang.org/x/sys/unix"

const hugePageSize = 2 << 20

// allocMapped maps a hugepage-backed region of at least size bytes.
// Returns nil when the mapping is unavailable.
func allocMapped(size int) *Region {
	length := (size + hugePageSize - 1) / hugePageSize * hugePageSize
	data, err := unix.Mmap(-1, 0, length,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANONYMOUS|unix.MAP_PRIVATE|unix.MAP_HUGETLB)
	if err != nil {
		return nil
	}
	return &Region{data: data[:size], mapped: data}
}

// freeMapped returns the mapping to the OS.
func freeMapped(mapped []byte) {
	_ = unix.Munmap(mapped)
}
