package libuv

/*
#include "uvgo.h"
*/
import "C"

import (
	"unsafe"
)

// Prepare calls a function once per loop iteration, right before polling.
type Prepare C.uv_prepare_t

// PrepareFunc is called once per loop iteration, while the handle is active.
type PrepareFunc func(h *Prepare)

// NewPrepare initializes a prepare handle against l.
func NewPrepare(l *Loop) (*Prepare, error) {
	p := allocHandle(HandleTypePrepare)
	if err := initHandle(p, C.uv_prepare_init(l.native(), (*C.uv_prepare_t)(p))); err != nil {
		return nil, err
	}
	return (*Prepare)(p), nil
}

func (h *Prepare) native() *C.uv_prepare_t { return (*C.uv_prepare_t)(unsafe.Pointer(h)) }

// Start starts the handle. Starting an active handle is a no-op, apart from
// replacing cb.
func (h *Prepare) Start(cb PrepareFunc) error {
	if cb == nil {
		return EINVAL
	}
	entryOf(h.AsHandle()).cb = cb
	return checkCode(C.uv_prepare_start(h.native(), C.uv_prepare_cb(C.uvgoPrepareCb)))
}

func (h *Prepare) Stop() error { return checkCode(C.uv_prepare_stop(h.native())) }
