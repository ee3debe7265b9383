// File: internal/buffer/region_stub.go
//go:build !linux && !windows

//
// Heap-only fallback for platforms without a hugepage path.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package buffer

func allocMapped(size int) *Region { return nil }

func freeMapped(mapped []byte) {}
