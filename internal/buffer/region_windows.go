// File: internal/buffer/region_windows.go
//go:build windows

//
// Windows large-page regions via VirtualAlloc(MEM_LARGE_PAGES).
// Fallback to the Go heap happens in AllocRegion when the allocation
// fails (SeLockMemoryPrivilege not held, fragmentation, etc).
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package buffer

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// allocMapped reserves a large-page region of at least size bytes.
// Returns nil when the allocation is unavailable.
func allocMapped(size int) *Region {
	addr, err := windows.VirtualAlloc(0, uintptr(size),
		windows.MEM_RESERVE|windows.MEM_COMMIT|windows.MEM_LARGE_PAGES,
		windows.PAGE_READWRITE)
	if err != nil || addr == 0 {
		return nil
	}
	data := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
	return &Region{data: data, mapped: data}
}

// freeMapped releases the allocation.
func freeMapped(mapped []byte) {
	if len(mapped) == 0 {
		return
	}
	addr := uintptr(unsafe.Pointer(&mapped[0]))
	_ = windows.VirtualFree(addr, 0, windows.MEM_RELEASE)
}
