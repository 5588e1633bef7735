package libuv

/*
#include "uvgo.h"
*/
import "C"

import (
	"unsafe"
)

// Pipe is a stream over a Unix domain socket, or a Windows named pipe, or
// an arbitrary file descriptor (see Open).
type Pipe C.uv_pipe_t

// PipeMode is the set of permissions granted by Chmod.
type PipeMode int

const (
	PipeReadable PipeMode = C.UV_READABLE
	PipeWritable PipeMode = C.UV_WRITABLE
)

// NewPipe initializes a pipe handle against l. If ipc is true, the pipe may
// be used to pass handles between processes, see Stream.Write2.
func NewPipe(l *Loop, ipc bool) (*Pipe, error) {
	p := allocHandle(HandleTypePipe)
	if err := initHandle(p, C.uv_pipe_init(l.native(), (*C.uv_pipe_t)(p), cbool(ipc))); err != nil {
		return nil, err
	}
	return (*Pipe)(p), nil
}

func (h *Pipe) native() *C.uv_pipe_t { return (*C.uv_pipe_t)(unsafe.Pointer(h)) }

// Open adopts an existing descriptor, e.g. one end of a socketpair.
func (h *Pipe) Open(fd int) error {
	return checkCode(C.uv_pipe_open(h.native(), C.uv_file(fd)))
}

// Bind binds the pipe to a path (Unix) or name (Windows).
func (h *Pipe) Bind(name string) error {
	s := C.CString(name)
	defer C.free(unsafe.Pointer(s))
	return checkCode(C.uv_pipe_bind(h.native(), s))
}

// Connect submits a connection request. The engine reports every failure
// through cb, so this only fails if the request cannot be constructed.
func (h *Pipe) Connect(name string, cb ConnectFunc, opts ...ReqOption) error {
	p, e := newReq(h.Loop(), ReqTypeConnect, cb, opts)
	s := C.CString(name)
	// the engine copies the name
	defer C.free(unsafe.Pointer(s))
	return submitReq(p, e, func() C.int {
		C.uv_pipe_connect((*C.uv_connect_t)(p), h.native(), s, C.uv_connect_cb(C.uvgoConnectCb))
		return 0
	})
}

// pipeName calls fn, growing the buffer as necessary.
func pipeName(fn func(buf *C.char, n *C.size_t) C.int) (string, error) {
	size := 256
	for {
		buf := (*C.char)(cmalloc(uintptr(size)))
		n := C.size_t(size)
		rc := fn(buf, &n)
		if rc == C.UV_ENOBUFS && int(n) > size {
			cfree(unsafe.Pointer(buf))
			size = int(n) + 1
			continue
		}
		defer cfree(unsafe.Pointer(buf))
		if err := checkCode(rc); err != nil {
			return "", err
		}
		return C.GoStringN(buf, C.int(n)), nil
	}
}

func (h *Pipe) Sockname() (string, error) {
	return pipeName(func(buf *C.char, n *C.size_t) C.int {
		return C.uv_pipe_getsockname(h.native(), buf, n)
	})
}

func (h *Pipe) Peername() (string, error) {
	return pipeName(func(buf *C.char, n *C.size_t) C.int {
		return C.uv_pipe_getpeername(h.native(), buf, n)
	})
}

// Chmod makes the bound pipe accessible to other users.
func (h *Pipe) Chmod(mode PipeMode) error {
	return checkCode(C.uv_pipe_chmod(h.native(), C.int(mode)))
}

// PendingInstances sets the number of pending pipe instances, on Windows.
func (h *Pipe) PendingInstances(count int) {
	C.uv_pipe_pending_instances(h.native(), C.int(count))
}

// PendingCount returns the number of handles received over an IPC pipe,
// waiting to be accepted.
func (h *Pipe) PendingCount() int { return int(C.uv_pipe_pending_count(h.native())) }

// PendingType returns the type of the next pending handle, which should be
// initialized then passed to Accept.
func (h *Pipe) PendingType() HandleType {
	t := HandleType(C.uv_pipe_pending_type(h.native()))
	if t == HandleTypeUnknown {
		return t
	}
	return handleTypeOf(C.uv_handle_type(t))
}
