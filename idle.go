package libuv

/*
#include "uvgo.h"
*/
import "C"

import (
	"unsafe"
)

// Idle calls a function once per loop iteration, prior to polling, and
// prevents the poll from blocking while active.
type Idle C.uv_idle_t

// IdleFunc is called once per loop iteration, while the handle is active.
type IdleFunc func(h *Idle)

// NewIdle initializes a idle handle against l.
func NewIdle(l *Loop) (*Idle, error) {
	p := allocHandle(HandleTypeIdle)
	if err := initHandle(p, C.uv_idle_init(l.native(), (*C.uv_idle_t)(p))); err != nil {
		return nil, err
	}
	return (*Idle)(p), nil
}

func (h *Idle) native() *C.uv_idle_t { return (*C.uv_idle_t)(unsafe.Pointer(h)) }

// Start starts the handle. Starting an active handle is a no-op, apart from
// replacing cb.
func (h *Idle) Start(cb IdleFunc) error {
	if cb == nil {
		return EINVAL
	}
	entryOf(h.AsHandle()).cb = cb
	return checkCode(C.uv_idle_start(h.native(), C.uv_idle_cb(C.uvgoIdleCb)))
}

func (h *Idle) Stop() error { return checkCode(C.uv_idle_stop(h.native())) }
