package libuv

/*
#include "uvgo.h"
*/
import "C"

import (
	"unsafe"
)

// Signal watches for a Unix signal, on a per loop basis. Note that the Go
// runtime also installs signal handlers: see os/signal for the interplay.
type Signal C.uv_signal_t

// SignalFunc is called on the loop goroutine when the signal is received.
type SignalFunc func(h *Signal, signum int)

// NewSignal initializes a signal handle against l.
func NewSignal(l *Loop) (*Signal, error) {
	p := allocHandle(HandleTypeSignal)
	if err := initHandle(p, C.uv_signal_init(l.native(), (*C.uv_signal_t)(p))); err != nil {
		return nil, err
	}
	return (*Signal)(p), nil
}

func (h *Signal) native() *C.uv_signal_t { return (*C.uv_signal_t)(unsafe.Pointer(h)) }

// Start starts watching for signum.
func (h *Signal) Start(cb SignalFunc, signum int) error {
	if cb == nil {
		return EINVAL
	}
	entryOf(h.AsHandle()).cb = cb
	return checkCode(C.uv_signal_start(h.native(), C.uv_signal_cb(C.uvgoSignalCb), C.int(signum)))
}

// StartOneshot is Start, but the handle stops itself after the first
// signal is received.
func (h *Signal) StartOneshot(cb SignalFunc, signum int) error {
	if cb == nil {
		return EINVAL
	}
	entryOf(h.AsHandle()).cb = cb
	return checkCode(C.uv_signal_start_oneshot(h.native(), C.uv_signal_cb(C.uvgoSignalCb), C.int(signum)))
}

func (h *Signal) Stop() error { return checkCode(C.uv_signal_stop(h.native())) }

// Signum returns the signal being watched, or 0.
func (h *Signal) Signum() int { return int(h.native().signum) }
