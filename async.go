package libuv

/*
#include "uvgo.h"
*/
import "C"

import (
	"unsafe"
)

// Async wakes a loop from another goroutine. Send is the only operation in
// this package that may be called from any goroutine.
//
// Sends are coalesced: the callback is called at least once after each
// Send, but possibly only once for many.
type Async C.uv_async_t

// AsyncFunc is called on the loop goroutine, after one or more Send calls.
type AsyncFunc func(h *Async)

// NewAsync initializes an async handle against l. Unlike other handles, it
// is active as soon as it is initialized.
func NewAsync(l *Loop, cb AsyncFunc) (*Async, error) {
	if cb == nil {
		return nil, EINVAL
	}
	p := allocHandle(HandleTypeAsync)
	// registered before init, as a Send may race with it returning
	handles.store(p, &handleEntry{cb: cb, owned: true})
	if err := checkCode(C.uv_async_init(l.native(), (*C.uv_async_t)(p), C.uv_async_cb(C.uvgoAsyncCb))); err != nil {
		handles.take(p)
		cfree(p)
		return nil, err
	}
	return (*Async)(p), nil
}

func (h *Async) native() *C.uv_async_t { return (*C.uv_async_t)(unsafe.Pointer(h)) }

// Send wakes the loop. It is safe for concurrent use, but must not be
// called once Close has been called.
func (h *Async) Send() error { return checkCode(C.uv_async_send(h.native())) }
