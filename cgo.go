package libuv

/*
#cgo pkg-config: libuv
#include "uvgo.h"
*/
import "C"

import (
	"unsafe"
)

// cmalloc returns n zeroed bytes of C memory, panicking if the allocator
// fails, mirroring the runtime's own behavior on exhaustion.
func cmalloc(n uintptr) unsafe.Pointer {
	if n == 0 {
		n = 1
	}
	p := C.calloc(1, C.size_t(n))
	if p == nil {
		panic(`libuv: out of memory`)
	}
	return p
}

func cfree(p unsafe.Pointer) {
	if p != nil {
		C.free(p)
	}
}

// cbytes copies b into C memory.
func cbytes(b []byte) unsafe.Pointer {
	p := cmalloc(uintptr(len(b)))
	if len(b) != 0 {
		copy(unsafe.Slice((*byte)(p), len(b)), b)
	}
	return p
}

func cbool(v bool) C.int {
	if v {
		return 1
	}
	return 0
}

// Version returns the version of the linked engine, e.g. "1.48.0".
func Version() string {
	return C.GoString(C.uv_version_string())
}

// VersionHex returns the linked engine version packed as 0xMMmmpp.
func VersionHex() uint32 {
	return uint32(C.uv_version())
}
