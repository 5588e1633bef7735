package libuv

/*
#include "uvgo.h"
*/
import "C"

import (
	"unsafe"
)

// Write is a stream write request.
type Write C.uv_write_t

// WriteFunc is called exactly once per successfully submitted write, with
// the outcome. The request is released after it returns.
type WriteFunc func(req *Write, err error)

func (r *Write) native() *C.uv_write_t { return (*C.uv_write_t)(unsafe.Pointer(r)) }

// Handle returns the stream the request writes to.
func (r *Write) Handle() *Stream { return (*Stream)(unsafe.Pointer(r.native().handle)) }

// SendHandle returns the handle being sent, for writes submitted by
// Write2, otherwise nil.
func (r *Write) SendHandle() *Stream { return (*Stream)(unsafe.Pointer(r.native().send_handle)) }

func (s *Stream) Write(bufs []Buf, cb WriteFunc, opts ...ReqOption) error {
	return s.write(bufs, nil, nil, cb, opts)
}

func (s *Stream) WriteBytes(p []byte, cb WriteFunc, opts ...ReqOption) error {
	if len(p) == 0 {
		return EINVAL
	}
	mem := cbytes(p)
	bufs := [1]Buf{BufFrom(mem, len(p))}
	return s.write(bufs[:], nil, mem, cb, opts)
}

// Write2 is Write, additionally sending send over an IPC pipe. The stream
// must be a Pipe initialized with ipc enabled.
func (s *Stream) Write2(bufs []Buf, send StreamCapability, cb WriteFunc, opts ...ReqOption) error {
	if send == nil {
		return EINVAL
	}
	return s.write(bufs, send.AsStream(), nil, cb, opts)
}

// write submits a write request, mem being C memory to be released with the
// request, or nil.
func (s *Stream) write(bufs []Buf, send *Stream, mem unsafe.Pointer, cb WriteFunc, opts []ReqOption) error {
	if len(bufs) == 0 {
		cfree(mem)
		return EINVAL
	}
	p, e := newReq(s.AsHandle().Loop(), ReqTypeWrite, cb, opts)
	if mem != nil {
		e.owned = append(e.owned, mem)
	}
	req := (*C.uv_write_t)(p)
	return submitReq(p, e, func() C.int {
		if send != nil {
			return C.uv_write2(req, s.native(), bufsPtr(bufs), C.uint(len(bufs)), send.native(), C.uv_write_cb(C.uvgoWriteCb))
		}
		return C.uv_write(req, s.native(), bufsPtr(bufs), C.uint(len(bufs)), C.uv_write_cb(C.uvgoWriteCb))
	})
}
