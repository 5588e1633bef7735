package libuv

/*
#include "uvgo.h"
*/
import "C"

import (
	"runtime/debug"
	"sync/atomic"
	"unsafe"
)

// Work is a request to run a function on the engine's thread pool.
type Work C.uv_work_t

// AfterWorkFunc is called on the loop once the work function has returned,
// or with ECANCELED if the request was cancelled before it started. If the
// work function panicked, err is the resulting *PanicError.
type AfterWorkFunc func(req *Work, err error)

type workState struct {
	fn       func()
	panicked atomic.Pointer[PanicError]
}

// run is called on a pool thread, so a panic must not escape.
func (w *workState) run() {
	defer func() {
		if r := recover(); r != nil {
			w.panicked.Store(&PanicError{Value: r, Stack: debug.Stack()})
		}
	}()
	w.fn()
}

// QueueWork submits work to the thread pool, calling after (which may be
// nil) on the loop goroutine once it has finished. The work function must
// not touch the loop or any handle.
//
// The returned request may be passed to Cancel, but only until after has
// been called.
func (l *Loop) QueueWork(work func(), after AfterWorkFunc, opts ...ReqOption) (*Work, error) {
	if work == nil {
		return nil, EINVAL
	}
	p, e := newReq(l, ReqTypeWork, after, opts)
	e.value = &workState{fn: work}
	if err := submitReq(p, e, func() C.int {
		return C.uv_queue_work(l.native(), (*C.uv_work_t)(p), C.uv_work_cb(C.uvgoWorkCb), C.uv_after_work_cb(C.uvgoAfterWorkCb))
	}); err != nil {
		return nil, err
	}
	return (*Work)(p), nil
}

func (r *Work) Loop() *Loop { return (*Loop)(unsafe.Pointer((*C.uv_work_t)(unsafe.Pointer(r)).loop)) }
