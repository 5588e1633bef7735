package libuv

/*
#include "uvgo.h"
*/
import "C"

import (
	"unsafe"
)

// Buf is a non-owning {base, len} view over a byte range, layout compatible
// with the engine's buffer descriptor.
//
// The memory a Buf describes must not be managed by the Go runtime whenever
// the engine may retain it (e.g. for Write, until the callback fires). Use
// NewBuf or BufFrom with C memory.
type Buf C.uv_buf_t

// NewBuf allocates n bytes of zeroed C memory. The caller owns the result,
// and must release it with Free.
func NewBuf(n int) Buf {
	if n < 0 {
		panic(`libuv: negative buffer length`)
	}
	return Buf(C.uv_buf_init((*C.char)(cmalloc(uintptr(n))), C.uint(n)))
}

// BufFrom describes n bytes starting at p, without taking ownership.
func BufFrom(p unsafe.Pointer, n int) Buf {
	return Buf(C.uv_buf_init((*C.char)(p), C.uint(n)))
}

// BufFromBytes copies b into newly allocated C memory, see NewBuf.
func BufFromBytes(b []byte) Buf {
	return Buf(C.uv_buf_init((*C.char)(cbytes(b)), C.uint(len(b))))
}

// Base returns the start of the range.
func (b Buf) Base() unsafe.Pointer { return unsafe.Pointer(b.base) }

// Len returns the length of the range, in bytes.
func (b Buf) Len() int { return int(b.len) }

// IsNil reports whether b describes no memory.
func (b Buf) IsNil() bool { return b.base == nil }

// Bytes returns the range as a slice, aliasing the underlying memory.
func (b Buf) Bytes() []byte {
	if b.base == nil {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(b.base)), int(b.len))
}

// Slice returns the sub-range [i:j].
func (b Buf) Slice(i, j int) Buf {
	if i < 0 || j < i || j > b.Len() {
		panic(`libuv: buffer slice out of range`)
	}
	return BufFrom(unsafe.Add(b.Base(), i), j-i)
}

// Free releases memory obtained from NewBuf or BufFromBytes. It must not be
// used on views created by BufFrom over foreign memory.
func (b *Buf) Free() {
	cfree(unsafe.Pointer(b.base))
	b.base = nil
	b.len = 0
}

func (b *Buf) native() *C.uv_buf_t { return (*C.uv_buf_t)(unsafe.Pointer(b)) }

// bufsPtr returns the address of the first element, for passing an array of
// buffer descriptors to the engine.
func bufsPtr(bufs []Buf) *C.uv_buf_t {
	if len(bufs) == 0 {
		return nil
	}
	return (*C.uv_buf_t)(unsafe.Pointer(&bufs[0]))
}
