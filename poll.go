package libuv

/*
#include "uvgo.h"
*/
import "C"

import (
	"strings"
	"unsafe"
)

// PollEvent is a set of readiness events.
type PollEvent int

const (
	PollReadable    PollEvent = C.UV_READABLE
	PollWritable    PollEvent = C.UV_WRITABLE
	PollDisconnect  PollEvent = C.UV_DISCONNECT
	PollPrioritized PollEvent = C.UV_PRIORITIZED
)

func (e PollEvent) Has(flag PollEvent) bool { return e&flag == flag }

func (e PollEvent) String() string {
	if e == 0 {
		return `0`
	}
	var parts []string
	for _, f := range [...]struct {
		flag PollEvent
		name string
	}{
		{PollReadable, `READABLE`},
		{PollWritable, `WRITABLE`},
		{PollDisconnect, `DISCONNECT`},
		{PollPrioritized, `PRIORITIZED`},
	} {
		if e.Has(f.flag) {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, `|`)
}

// Poll watches a file descriptor for readiness, for integrating with
// libraries that perform their own I/O. Descriptors must be non-blocking,
// and must not be polled by more than one handle.
type Poll C.uv_poll_t

// PollFunc receives readiness events, or an error (e.g. EBADF). The
// handle remains active after an error, and should be stopped.
type PollFunc func(h *Poll, events PollEvent, err error)

// NewPoll initializes a poll handle against l, for a file descriptor.
func NewPoll(l *Loop, fd int) (*Poll, error) {
	p := allocHandle(HandleTypePoll)
	if err := initHandle(p, C.uv_poll_init(l.native(), (*C.uv_poll_t)(p), C.int(fd))); err != nil {
		return nil, err
	}
	return (*Poll)(p), nil
}

// NewPollSocket initializes a poll handle against l, for a socket.
func NewPollSocket(l *Loop, sock int) (*Poll, error) {
	p := allocHandle(HandleTypePoll)
	if err := initHandle(p, C.uv_poll_init_socket(l.native(), (*C.uv_poll_t)(p), C.uv_os_sock_t(sock))); err != nil {
		return nil, err
	}
	return (*Poll)(p), nil
}

func (h *Poll) native() *C.uv_poll_t { return (*C.uv_poll_t)(unsafe.Pointer(h)) }

// Start starts watching for events, replacing any previous event set.
func (h *Poll) Start(events PollEvent, cb PollFunc) error {
	if cb == nil {
		return EINVAL
	}
	entryOf(h.AsHandle()).cb = cb
	return checkCode(C.uv_poll_start(h.native(), C.int(events), C.uv_poll_cb(C.uvgoPollCb)))
}

func (h *Poll) Stop() error { return checkCode(C.uv_poll_stop(h.native())) }
