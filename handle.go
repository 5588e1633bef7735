package libuv

/*
#include "uvgo.h"
*/
import "C"

import (
	"unsafe"
)

// Handle is the common prefix shared by every handle kind. A pointer to any
// concrete kind (e.g. *Timer) may be reinterpreted as a *Handle, since each
// concrete kind's layout begins with this structure; the layout tests are
// the single point of verification for that invariant.
//
// Handles are allocated in C memory by their constructors (NewTimer,
// NewTCP, ...), and released by this package after the close callback
// returns. Closing twice, or using a handle after its close callback, is
// undefined behavior, as is touching a handle from any goroutine other than
// the one running its loop (see Async for the exception).
type Handle C.uv_handle_t

// HandleCapability is implemented by the base handle, and every concrete
// handle kind.
type HandleCapability interface {
	// AsHandle returns the base view of the same memory.
	AsHandle() *Handle
	// Size returns the engine's size of this handle's kind.
	Size() uintptr
	// Loop returns the loop the handle was initialized against.
	Loop() *Loop
	// Type returns the handle's kind, panicking on an unknown tag.
	Type() HandleType
	// Data returns the opaque user data word.
	Data() uintptr
	// SetData sets the opaque user data word, e.g. to a cgo.Handle.
	SetData(data uintptr)
	// ClearData resets the user data word to zero.
	ClearData()
	IsActive() bool
	IsClosing() bool
	// Close requests asynchronous teardown, calling cb (which may be nil)
	// from a later Run, after which the handle memory is released.
	Close(cb CloseFunc)
	// Fileno returns the platform descriptor, or EBADF if there is none.
	Fileno() (int, error)
	Ref()
	Unref()
	HasRef() bool
}

// CloseFunc is called once a handle has been closed. It is the last point at
// which the handle may be accessed.
type CloseFunc func(h *Handle)

// handleEntry is the Go-side state of a handle, see registry.
type handleEntry struct {
	// cb is the kind-specific event callback (e.g. TimerFunc)
	cb     any
	alloc  AllocFunc
	read   any // ReadFunc or UDPRecvFunc
	listen ConnectionFunc
	close  CloseFunc
	// owned indicates the memory was allocated by this package
	owned bool
}

// entryOf returns the registered state for h, registering an unowned entry
// if there is none.
func entryOf(h *Handle) *handleEntry {
	p := unsafe.Pointer(h)
	handles.mu.Lock()
	defer handles.mu.Unlock()
	e, ok := handles.data[uintptr(p)]
	if !ok {
		e = &handleEntry{}
		handles.data[uintptr(p)] = e
	}
	return e
}

// allocHandle returns zeroed C memory sized for a handle of type t.
func allocHandle(t HandleType) unsafe.Pointer {
	return cmalloc(t.Size())
}

// initHandle completes construction of a handle allocated by allocHandle,
// given the status of the kind's native init, releasing the memory if it
// failed.
func initHandle(p unsafe.Pointer, rc C.int) error {
	if err := checkCode(rc); err != nil {
		cfree(p)
		return err
	}
	handles.store(p, &handleEntry{owned: true})
	return nil
}

func (h *Handle) native() *C.uv_handle_t { return (*C.uv_handle_t)(unsafe.Pointer(h)) }

// AsHandle returns h.
func (h *Handle) AsHandle() *Handle { return h }

func (h *Handle) Size() uintptr {
	return uintptr(C.uv_handle_size(C.uv_handle_get_type(h.native())))
}

func (h *Handle) Loop() *Loop {
	return (*Loop)(unsafe.Pointer(C.uv_handle_get_loop(h.native())))
}

func (h *Handle) Type() HandleType {
	return handleTypeOf(C.uv_handle_get_type(h.native()))
}

func (h *Handle) Data() uintptr { return *(*uintptr)(unsafe.Pointer(&h.data)) }

func (h *Handle) SetData(data uintptr) { *(*uintptr)(unsafe.Pointer(&h.data)) = data }

func (h *Handle) ClearData() { h.SetData(0) }

func (h *Handle) IsActive() bool { return C.uv_is_active(h.native()) != 0 }

func (h *Handle) IsClosing() bool { return C.uv_is_closing(h.native()) != 0 }

func (h *Handle) Close(cb CloseFunc) {
	entryOf(h).close = cb
	C.uv_close(h.native(), C.uv_close_cb(C.uvgoCloseCb))
}

func (h *Handle) Fileno() (int, error) {
	var fd C.uv_os_fd_t
	if err := checkCode(C.uv_fileno(h.native(), &fd)); err != nil {
		return -1, err
	}
	return int(fd), nil
}

func (h *Handle) Ref() { C.uv_ref(h.native()) }

func (h *Handle) Unref() { C.uv_unref(h.native()) }

func (h *Handle) HasRef() bool { return C.uv_has_ref(h.native()) != 0 }

// SendBufferSize returns the size of the socket send buffer, for TCP, pipe
// and UDP handles.
func (h *Handle) SendBufferSize() (int, error) {
	var v C.int
	if err := checkCode(C.uv_send_buffer_size(h.native(), &v)); err != nil {
		return 0, err
	}
	return int(v), nil
}

// SetSendBufferSize sets the size of the socket send buffer. The kernel may
// apply its own adjustment (e.g. Linux doubles it).
func (h *Handle) SetSendBufferSize(n int) error {
	if n <= 0 {
		return EINVAL
	}
	v := C.int(n)
	return checkCode(C.uv_send_buffer_size(h.native(), &v))
}

// RecvBufferSize is the receive counterpart of SendBufferSize.
func (h *Handle) RecvBufferSize() (int, error) {
	var v C.int
	if err := checkCode(C.uv_recv_buffer_size(h.native(), &v)); err != nil {
		return 0, err
	}
	return int(v), nil
}

// SetRecvBufferSize is the receive counterpart of SetSendBufferSize.
func (h *Handle) SetRecvBufferSize(n int) error {
	if n <= 0 {
		return EINVAL
	}
	v := C.int(n)
	return checkCode(C.uv_recv_buffer_size(h.native(), &v))
}

// AsStream returns h as a *Stream, or nil if its kind is not stream shaped.
func (h *Handle) AsStream() *Stream {
	if !h.Type().IsStream() {
		return nil
	}
	return (*Stream)(unsafe.Pointer(h))
}

// OpenHandles returns the number of handles allocated by this package that
// have not yet been released, across all loops.
func OpenHandles() int {
	return handles.countFunc(func(e *handleEntry) bool { return e.owned })
}
