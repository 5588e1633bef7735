package libuv

/*
#include "uvgo.h"
*/
import "C"

import (
	"unsafe"
)

// Connect is a connection request, for TCP and Pipe handles.
type Connect C.uv_connect_t

// ConnectFunc is called exactly once per successfully submitted connect.
type ConnectFunc func(req *Connect, err error)

func (r *Connect) native() *C.uv_connect_t { return (*C.uv_connect_t)(unsafe.Pointer(r)) }

// Handle returns the stream being connected.
func (r *Connect) Handle() *Stream { return (*Stream)(unsafe.Pointer(r.native().handle)) }
