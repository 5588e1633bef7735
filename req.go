package libuv

/*
#include "uvgo.h"
*/
import "C"

import (
	"unsafe"

	"github.com/joeycumines/logiface"
)

// Req is the common prefix shared by every request kind, see Handle for the
// equivalent handle model.
//
// Every request submitted through this package follows the same ownership
// protocol, see ReqState. The block is allocated in C memory immediately
// before submission, owned by the engine while in flight, and released by
// this package after the completion callback returns. If the submission
// fails synchronously, the block is released before the error is returned,
// and the callback is never called.
//
// Request pointers passed to callbacks must not be retained.
type Req C.uv_req_t

// RequestCapability is implemented by the base request, and every concrete
// request kind.
type RequestCapability interface {
	// AsReq returns the base view of the same memory.
	AsReq() *Req
	// Type returns the request's kind, panicking on an unknown tag.
	Type() ReqType
	// Data returns the opaque user data word, see WithReqData.
	Data() uintptr
	SetData(data uintptr)
	// Size returns the engine's size of this request's kind.
	Size() uintptr
}

// reqEntry is the Go-side state of an in-flight request.
type reqEntry struct {
	loop *Loop
	// cb is the kind-specific completion callback (e.g. WriteFunc)
	cb any
	// value is kind-specific state, e.g. the work function
	value any
	// cleanup releases native state the engine attached to the request
	cleanup func()
	// owned lists C allocations released with the request
	owned []unsafe.Pointer
	kind  ReqType
	state ReqState
}

func (r *Req) native() *C.uv_req_t { return (*C.uv_req_t)(unsafe.Pointer(r)) }

// AsReq returns r.
func (r *Req) AsReq() *Req { return r }

func (r *Req) Type() ReqType { return reqTypeOf(C.uv_req_get_type(r.native())) }

func (r *Req) Data() uintptr { return *(*uintptr)(unsafe.Pointer(&r.data)) }

func (r *Req) SetData(data uintptr) { *(*uintptr)(unsafe.Pointer(&r.data)) = data }

func (r *Req) Size() uintptr { return uintptr(C.uv_req_size(C.uv_req_get_type(r.native()))) }

// Cancel attempts to cancel a pending request. The engine only cancels
// thread pool requests that have not started executing, and of those only
// Work is reachable outside its callback (see Loop.QueueWork). A cancelled
// request still completes, with ECANCELED.
func (r *Req) Cancel() error {
	return checkCode(C.uv_cancel(r.native()))
}

// State returns the protocol state of an in-flight request. Requests are
// only observable while submitted, or from within their callback, at which
// point they are completed.
func (r *Req) State() ReqState {
	if e, ok := requests.load(unsafe.Pointer(r)); ok {
		return e.state
	}
	return ReqCompleted
}

// newReq allocates a zeroed request block of kind t, applying opts.
func newReq(l *Loop, t ReqType, cb any, opts []ReqOption) (unsafe.Pointer, *reqEntry) {
	p := cmalloc(t.Size())
	if cfg := resolveReqOptions(opts); cfg.hasData {
		(*Req)(p).SetData(cfg.data)
	}
	return p, &reqEntry{loop: l, cb: cb, kind: t, state: ReqAllocated}
}

// release frees the block, and everything it owns.
func (e *reqEntry) release(p unsafe.Pointer) {
	if e.cleanup != nil {
		e.cleanup()
	}
	for _, o := range e.owned {
		cfree(o)
	}
	e.owned = nil
	cfree(p)
}

// submitReq hands the block at p to the engine, via submit. The entry is
// registered first, as work requests may complete on another thread before
// submit returns. On synchronous failure the block is reclaimed at once.
func submitReq(p unsafe.Pointer, e *reqEntry, submit func() C.int) error {
	le := e.loop.entry()
	e.state = ReqSubmitted
	requests.store(p, e)
	if err := checkCode(submit()); err != nil {
		requests.take(p)
		e.state = ReqSubmitFailed
		e.release(p)
		if le != nil {
			le.metrics.recordRequest(ReqSubmitFailed)
			le.diag.build(logiface.LevelDebug, diagSubmitFailed).
				Stringer(`req_type`, e.kind).
				Err(err).
				Log(`request submission failed`)
		}
		return err
	}
	if le != nil {
		le.metrics.recordRequest(ReqSubmitted)
	}
	return nil
}

// completeReq transitions the request at p to completed, returning its
// entry. Completions that do not match a submitted request are logged and
// dropped, without touching the block.
func completeReq(l *Loop, p unsafe.Pointer) (*reqEntry, bool) {
	e, ok := requests.take(p)
	le := l.entry()
	if !ok {
		if le != nil {
			le.metrics.recordUnmatched()
			le.diag.build(logiface.LevelWarning, diagUnmatchedCompletion).
				Uint64(`req`, uint64(uintptr(p))).
				Log(`completion for unknown request`)
		}
		return nil, false
	}
	e.state = ReqCompleted
	if le != nil {
		le.metrics.recordRequest(ReqCompleted)
	}
	return e, true
}

// finishReq runs fn as the completion of the request at p, then reclaims
// the block, regardless of whether fn panics.
func finishReq(l *Loop, p unsafe.Pointer, fn func(e *reqEntry)) {
	e, ok := completeReq(l, p)
	if !ok {
		return
	}
	defer e.release(p)
	l.invoke(func() { fn(e) })
}

// OutstandingRequests returns the number of submitted requests that have not
// yet completed, across all loops.
func OutstandingRequests() int {
	return requests.len()
}
