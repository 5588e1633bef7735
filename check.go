package libuv

/*
#include "uvgo.h"
*/
import "C"

import (
	"unsafe"
)

// Check calls a function once per loop iteration, right after polling.
type Check C.uv_check_t

// CheckFunc is called once per loop iteration, while the handle is active.
type CheckFunc func(h *Check)

// NewCheck initializes a check handle against l.
func NewCheck(l *Loop) (*Check, error) {
	p := allocHandle(HandleTypeCheck)
	if err := initHandle(p, C.uv_check_init(l.native(), (*C.uv_check_t)(p))); err != nil {
		return nil, err
	}
	return (*Check)(p), nil
}

func (h *Check) native() *C.uv_check_t { return (*C.uv_check_t)(unsafe.Pointer(h)) }

// Start starts the handle. Starting an active handle is a no-op, apart from
// replacing cb.
func (h *Check) Start(cb CheckFunc) error {
	if cb == nil {
		return EINVAL
	}
	entryOf(h.AsHandle()).cb = cb
	return checkCode(C.uv_check_start(h.native(), C.uv_check_cb(C.uvgoCheckCb)))
}

func (h *Check) Stop() error { return checkCode(C.uv_check_stop(h.native())) }
