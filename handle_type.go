package libuv

/*
#include "uvgo.h"
*/
import "C"

import (
	"strconv"
)

// HandleType identifies the concrete kind of a handle, as tagged by the
// engine when the handle is initialized.
type HandleType int

const (
	HandleTypeUnknown HandleType = C.UV_UNKNOWN_HANDLE
	HandleTypeAsync   HandleType = C.UV_ASYNC
	HandleTypeCheck   HandleType = C.UV_CHECK
	HandleTypeFSEvent HandleType = C.UV_FS_EVENT
	HandleTypeFSPoll  HandleType = C.UV_FS_POLL
	HandleTypeHandle  HandleType = C.UV_HANDLE
	HandleTypeIdle    HandleType = C.UV_IDLE
	HandleTypePipe    HandleType = C.UV_NAMED_PIPE
	HandleTypePoll    HandleType = C.UV_POLL
	HandleTypePrepare HandleType = C.UV_PREPARE
	HandleTypeProcess HandleType = C.UV_PROCESS
	HandleTypeStream  HandleType = C.UV_STREAM
	HandleTypeTCP     HandleType = C.UV_TCP
	HandleTypeTimer   HandleType = C.UV_TIMER
	HandleTypeTTY     HandleType = C.UV_TTY
	HandleTypeUDP     HandleType = C.UV_UDP
	HandleTypeSignal  HandleType = C.UV_SIGNAL
	HandleTypeFile    HandleType = C.UV_FILE
	HandleTypeMax     HandleType = C.UV_HANDLE_TYPE_MAX
)

// handleTypeOf maps a tag read from a live handle. Every live handle carries
// a tag in (unknown, file), anything else means the memory is not a handle,
// or the engine's ABI differs from the one this package was built against.
func handleTypeOf(tag C.uv_handle_type) HandleType {
	t := HandleType(tag)
	if t <= HandleTypeUnknown || t >= HandleTypeFile {
		panic(&ABIError{Kind: `handle type`, Value: int(t)})
	}
	return t
}

// IsStream reports whether handles of this type are stream shaped, i.e. may
// be used as a *Stream.
func (t HandleType) IsStream() bool {
	switch t {
	case HandleTypeTCP, HandleTypePipe, HandleTypeTTY, HandleTypeStream:
		return true
	default:
		return false
	}
}

// Size returns the engine's size of a handle of this type, or 0 if the type
// is not a concrete handle type.
func (t HandleType) Size() uintptr {
	if t <= HandleTypeUnknown || t >= HandleTypeFile || t == HandleTypeHandle || t == HandleTypeStream {
		return 0
	}
	return uintptr(C.uv_handle_size(C.uv_handle_type(t)))
}

func (t HandleType) String() string {
	if t > HandleTypeUnknown && t < HandleTypeMax {
		if s := C.uv_handle_type_name(C.uv_handle_type(t)); s != nil {
			return C.GoString(s)
		}
	}
	return `HandleType(` + strconv.Itoa(int(t)) + `)`
}

// ReqType identifies the concrete kind of a request.
type ReqType int

const (
	ReqTypeUnknown     ReqType = C.UV_UNKNOWN_REQ
	ReqTypeReq         ReqType = C.UV_REQ
	ReqTypeConnect     ReqType = C.UV_CONNECT
	ReqTypeWrite       ReqType = C.UV_WRITE
	ReqTypeShutdown    ReqType = C.UV_SHUTDOWN
	ReqTypeUDPSend     ReqType = C.UV_UDP_SEND
	ReqTypeFS          ReqType = C.UV_FS
	ReqTypeWork        ReqType = C.UV_WORK
	ReqTypeGetAddrInfo ReqType = C.UV_GETADDRINFO
	ReqTypeGetNameInfo ReqType = C.UV_GETNAMEINFO
	ReqTypeRandom      ReqType = C.UV_RANDOM
	ReqTypeMax         ReqType = C.UV_REQ_TYPE_MAX
)

// reqTypeOf maps a tag read from a submitted request, see handleTypeOf.
func reqTypeOf(tag C.uv_req_type) ReqType {
	t := ReqType(tag)
	if t <= ReqTypeUnknown || t >= ReqTypeMax {
		panic(&ABIError{Kind: `request type`, Value: int(t)})
	}
	return t
}

// Size returns the engine's size of a request of this type, or 0 if the
// type is not a concrete request type.
func (t ReqType) Size() uintptr {
	if t <= ReqTypeReq || t >= ReqTypeMax {
		return 0
	}
	return uintptr(C.uv_req_size(C.uv_req_type(t)))
}

func (t ReqType) String() string {
	if t > ReqTypeUnknown && t < ReqTypeMax {
		if s := C.uv_req_type_name(C.uv_req_type(t)); s != nil {
			return C.GoString(s)
		}
	}
	return `ReqType(` + strconv.Itoa(int(t)) + `)`
}
