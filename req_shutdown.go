package libuv

/*
#include "uvgo.h"
*/
import "C"

import (
	"unsafe"
)

// Shutdown is a stream shutdown request.
type Shutdown C.uv_shutdown_t

// ShutdownFunc is called exactly once per successfully submitted shutdown.
type ShutdownFunc func(req *Shutdown, err error)

func (r *Shutdown) native() *C.uv_shutdown_t { return (*C.uv_shutdown_t)(unsafe.Pointer(r)) }

// Handle returns the stream being shut down.
func (r *Shutdown) Handle() *Stream { return (*Stream)(unsafe.Pointer(r.native().handle)) }

func (s *Stream) Shutdown(cb ShutdownFunc, opts ...ReqOption) error {
	p, e := newReq(s.AsHandle().Loop(), ReqTypeShutdown, cb, opts)
	return submitReq(p, e, func() C.int {
		return C.uv_shutdown((*C.uv_shutdown_t)(p), s.native(), C.uv_shutdown_cb(C.uvgoShutdownCb))
	})
}
