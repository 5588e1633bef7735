package libuv

/*
#include "uvgo.h"
*/
import "C"

import (
	"unsafe"
)

// Stream is the duplex byte stream prefix, shared by Pipe, TCP and TTY. As
// with Handle, each of those kinds may be reinterpreted as a *Stream.
type Stream C.uv_stream_t

// StreamCapability is implemented by the stream shaped handle kinds.
type StreamCapability interface {
	HandleCapability

	// AsStream returns the stream view of the same memory.
	AsStream() *Stream

	// Listen starts listening for incoming connections, calling cb for
	// each. Accept must be called from within cb.
	Listen(backlog int, cb ConnectionFunc) error

	// Accept accepts a pending connection into client, which must be an
	// initialized but otherwise unused handle of the server's kind.
	Accept(client StreamCapability) error

	// ReadStart starts reading. Before each read, alloc provides the buffer,
	// which is then passed to read. A nil alloc uses buffers allocated and
	// released by this package, valid only for the duration of read.
	ReadStart(alloc AllocFunc, read ReadFunc) error

	ReadStop() error

	// Write submits bufs, which must remain valid until cb is called.
	Write(bufs []Buf, cb WriteFunc, opts ...ReqOption) error

	// WriteBytes copies p into memory owned by the request, then writes it.
	WriteBytes(p []byte, cb WriteFunc, opts ...ReqOption) error

	// Shutdown shuts down the write side, after pending writes complete.
	Shutdown(cb ShutdownFunc, opts ...ReqOption) error

	IsReadable() bool
	IsWritable() bool
	SetBlocking(blocking bool) error
}

type (
	// ConnectionFunc is called for each incoming connection, or with an
	// error if accepting failed.
	ConnectionFunc func(server *Stream, err error)

	// AllocFunc returns the buffer for the next read. Returning a nil or
	// empty Buf results in an ENOBUFS read error.
	AllocFunc func(h *Handle, suggested int) Buf

	// ReadFunc receives the result of a read. On success nread is the
	// number of bytes read into buf, and may be zero. At end of stream err
	// is EOF. The buffer is the one returned by the AllocFunc, if any.
	ReadFunc func(s *Stream, nread int, buf Buf, err error)
)

func (s *Stream) native() *C.uv_stream_t { return (*C.uv_stream_t)(unsafe.Pointer(s)) }

func (s *Stream) AsStream() *Stream { return s }

func (s *Stream) Listen(backlog int, cb ConnectionFunc) error {
	entryOf(s.AsHandle()).listen = cb
	return checkCode(C.uv_listen(s.native(), C.int(backlog), C.uv_connection_cb(C.uvgoConnectionCb)))
}

func (s *Stream) Accept(client StreamCapability) error {
	return checkCode(C.uv_accept(s.native(), client.AsStream().native()))
}

func (s *Stream) ReadStart(alloc AllocFunc, read ReadFunc) error {
	e := entryOf(s.AsHandle())
	e.alloc, e.read = alloc, read
	return checkCode(C.uv_read_start(s.native(), C.uv_alloc_cb(C.uvgoAllocCb), C.uv_read_cb(C.uvgoReadCb)))
}

func (s *Stream) ReadStop() error {
	return checkCode(C.uv_read_stop(s.native()))
}

func (s *Stream) IsReadable() bool { return C.uv_is_readable(s.native()) != 0 }

func (s *Stream) IsWritable() bool { return C.uv_is_writable(s.native()) != 0 }

func (s *Stream) SetBlocking(blocking bool) error {
	return checkCode(C.uv_stream_set_blocking(s.native(), cbool(blocking)))
}

// WriteQueueSize returns the number of bytes queued for writing.
func (s *Stream) WriteQueueSize() int {
	return int(C.uv_stream_get_write_queue_size(s.native()))
}

// TryWrite writes as much of bufs as possible without queueing, returning
// the number of bytes written. EAGAIN indicates nothing could be written.
func (s *Stream) TryWrite(bufs []Buf) (int, error) {
	if len(bufs) == 0 {
		return 0, nil
	}
	n := C.uv_try_write(s.native(), bufsPtr(bufs), C.uint(len(bufs)))
	if n < 0 {
		return 0, FromCode(int(n))
	}
	return int(n), nil
}

// defaultAlloc is the allocator used by ReadStart with a nil AllocFunc
func defaultAlloc(suggested int) Buf {
	return NewBuf(suggested)
}
