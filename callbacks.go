package libuv

// Trampolines called by the engine. This file may only contain declarations
// in its preamble, as it uses //export.

/*
#include "uvgo.h"
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"
)

// handleCallback returns the kind-specific callback registered for the
// handle at p.
func handleCallback[F any](p unsafe.Pointer) (fn F, ok bool) {
	e, ok := handles.load(p)
	if !ok {
		return
	}
	fn, ok = e.cb.(F)
	return
}

// reqCallback returns the kind-specific completion callback of e, which
// may be nil.
func reqCallback[F any](e *reqEntry) F {
	fn, _ := e.cb.(F)
	return fn
}

func handleLoop[T any](h *T) *Loop {
	return (*Handle)(unsafe.Pointer(h)).Loop()
}

//export uvgoCloseCb
func uvgoCloseCb(ch *C.uv_handle_t) {
	p := unsafe.Pointer(ch)
	e, ok := handles.load(p)
	if !ok {
		return
	}
	h := (*Handle)(p)
	if e.close != nil {
		h.Loop().invoke(func() { e.close(h) })
	}
	handles.take(p)
	if e.owned {
		cfree(p)
	}
}

//export uvgoTimerCb
func uvgoTimerCb(ch *C.uv_timer_t) {
	if fn, ok := handleCallback[TimerFunc](unsafe.Pointer(ch)); ok {
		t := (*Timer)(unsafe.Pointer(ch))
		handleLoop(ch).invoke(func() { fn(t) })
	}
}

//export uvgoIdleCb
func uvgoIdleCb(ch *C.uv_idle_t) {
	if fn, ok := handleCallback[IdleFunc](unsafe.Pointer(ch)); ok {
		h := (*Idle)(unsafe.Pointer(ch))
		handleLoop(ch).invoke(func() { fn(h) })
	}
}

//export uvgoCheckCb
func uvgoCheckCb(ch *C.uv_check_t) {
	if fn, ok := handleCallback[CheckFunc](unsafe.Pointer(ch)); ok {
		h := (*Check)(unsafe.Pointer(ch))
		handleLoop(ch).invoke(func() { fn(h) })
	}
}

//export uvgoPrepareCb
func uvgoPrepareCb(ch *C.uv_prepare_t) {
	if fn, ok := handleCallback[PrepareFunc](unsafe.Pointer(ch)); ok {
		h := (*Prepare)(unsafe.Pointer(ch))
		handleLoop(ch).invoke(func() { fn(h) })
	}
}

//export uvgoAsyncCb
func uvgoAsyncCb(ch *C.uv_async_t) {
	if fn, ok := handleCallback[AsyncFunc](unsafe.Pointer(ch)); ok {
		h := (*Async)(unsafe.Pointer(ch))
		handleLoop(ch).invoke(func() { fn(h) })
	}
}

//export uvgoPollCb
func uvgoPollCb(ch *C.uv_poll_t, status C.int, events C.int) {
	if fn, ok := handleCallback[PollFunc](unsafe.Pointer(ch)); ok {
		h := (*Poll)(unsafe.Pointer(ch))
		err := statusError(status)
		handleLoop(ch).invoke(func() { fn(h, PollEvent(events), err) })
	}
}

//export uvgoSignalCb
func uvgoSignalCb(ch *C.uv_signal_t, signum C.int) {
	if fn, ok := handleCallback[SignalFunc](unsafe.Pointer(ch)); ok {
		h := (*Signal)(unsafe.Pointer(ch))
		handleLoop(ch).invoke(func() { fn(h, int(signum)) })
	}
}

//export uvgoExitCb
func uvgoExitCb(ch *C.uv_process_t, exitStatus C.int64_t, termSignal C.int) {
	if fn, ok := handleCallback[ExitFunc](unsafe.Pointer(ch)); ok {
		h := (*Process)(unsafe.Pointer(ch))
		handleLoop(ch).invoke(func() { fn(h, int64(exitStatus), int(termSignal)) })
	}
}

//export uvgoAllocCb
func uvgoAllocCb(ch *C.uv_handle_t, suggested C.size_t, buf *C.uv_buf_t) {
	h := (*Handle)(unsafe.Pointer(ch))
	var b Buf
	if e, ok := handles.load(unsafe.Pointer(ch)); ok && e.alloc != nil {
		h.Loop().invoke(func() { b = e.alloc(h, int(suggested)) })
	} else {
		b = defaultAlloc(int(suggested))
	}
	*buf = *b.native()
}

// readResult splits a read count into a length and an error.
func readResult(nread C.ssize_t) (int, error) {
	if nread < 0 {
		return 0, FromCode(int(nread))
	}
	return int(nread), nil
}

//export uvgoReadCb
func uvgoReadCb(cs *C.uv_stream_t, nread C.ssize_t, buf *C.uv_buf_t) {
	var b Buf
	if buf != nil {
		b = *(*Buf)(unsafe.Pointer(buf))
	}
	e, ok := handles.load(unsafe.Pointer(cs))
	if !ok || e.alloc == nil {
		defer b.Free()
	}
	if !ok {
		return
	}
	fn, _ := e.read.(ReadFunc)
	if fn == nil {
		return
	}
	s := (*Stream)(unsafe.Pointer(cs))
	n, err := readResult(nread)
	handleLoop(cs).invoke(func() { fn(s, n, b, err) })
}

//export uvgoUDPRecvCb
func uvgoUDPRecvCb(ch *C.uv_udp_t, nread C.ssize_t, buf *C.uv_buf_t, addr *C.struct_sockaddr, flags C.uint) {
	var b Buf
	if buf != nil {
		b = *(*Buf)(unsafe.Pointer(buf))
	}
	e, ok := handles.load(unsafe.Pointer(ch))
	if (!ok || e.alloc == nil) && UDPFlags(flags).releasesBuf() {
		defer b.Free()
	}
	if !ok {
		return
	}
	fn, _ := e.read.(UDPRecvFunc)
	if fn == nil {
		return
	}
	u := (*UDP)(unsafe.Pointer(ch))
	n, err := readResult(nread)
	from, _ := fromSockaddr(addr)
	handleLoop(ch).invoke(func() { fn(u, n, b, from, UDPFlags(flags), err) })
}

//export uvgoConnectionCb
func uvgoConnectionCb(cs *C.uv_stream_t, status C.int) {
	e, ok := handles.load(unsafe.Pointer(cs))
	if !ok || e.listen == nil {
		return
	}
	s := (*Stream)(unsafe.Pointer(cs))
	err := statusError(status)
	handleLoop(cs).invoke(func() { e.listen(s, err) })
}

//export uvgoWriteCb
func uvgoWriteCb(cr *C.uv_write_t, status C.int) {
	r := (*Write)(unsafe.Pointer(cr))
	err := statusError(status)
	finishReq(handleLoop(cr.handle), unsafe.Pointer(cr), func(e *reqEntry) {
		if fn := reqCallback[WriteFunc](e); fn != nil {
			fn(r, err)
		}
	})
}

//export uvgoConnectCb
func uvgoConnectCb(cr *C.uv_connect_t, status C.int) {
	r := (*Connect)(unsafe.Pointer(cr))
	err := statusError(status)
	finishReq(handleLoop(cr.handle), unsafe.Pointer(cr), func(e *reqEntry) {
		if fn := reqCallback[ConnectFunc](e); fn != nil {
			fn(r, err)
		}
	})
}

//export uvgoShutdownCb
func uvgoShutdownCb(cr *C.uv_shutdown_t, status C.int) {
	r := (*Shutdown)(unsafe.Pointer(cr))
	err := statusError(status)
	finishReq(handleLoop(cr.handle), unsafe.Pointer(cr), func(e *reqEntry) {
		if fn := reqCallback[ShutdownFunc](e); fn != nil {
			fn(r, err)
		}
	})
}

//export uvgoUDPSendCb
func uvgoUDPSendCb(cr *C.uv_udp_send_t, status C.int) {
	r := (*UDPSend)(unsafe.Pointer(cr))
	err := statusError(status)
	finishReq(handleLoop(cr.handle), unsafe.Pointer(cr), func(e *reqEntry) {
		if fn := reqCallback[UDPSendFunc](e); fn != nil {
			fn(r, err)
		}
	})
}

//export uvgoFSCb
func uvgoFSCb(cr *C.uv_fs_t) {
	r := (*FS)(unsafe.Pointer(cr))
	finishReq((*Loop)(unsafe.Pointer(cr.loop)), unsafe.Pointer(cr), func(e *reqEntry) {
		if fn := reqCallback[FSFunc](e); fn != nil {
			fn(r)
		}
	})
}

// uvgoWorkCb runs on the engine's thread pool, not the loop goroutine.
//
//export uvgoWorkCb
func uvgoWorkCb(cr *C.uv_work_t) {
	e, ok := requests.load(unsafe.Pointer(cr))
	if !ok {
		return
	}
	e.value.(*workState).run()
}

//export uvgoAfterWorkCb
func uvgoAfterWorkCb(cr *C.uv_work_t, status C.int) {
	r := (*Work)(unsafe.Pointer(cr))
	err := statusError(status)
	finishReq((*Loop)(unsafe.Pointer(cr.loop)), unsafe.Pointer(cr), func(e *reqEntry) {
		if p := e.value.(*workState).panicked.Load(); p != nil && err == nil {
			err = p
		}
		if fn := reqCallback[AfterWorkFunc](e); fn != nil {
			fn(r, err)
		}
	})
}

//export uvgoGetAddrInfoCb
func uvgoGetAddrInfoCb(cr *C.uv_getaddrinfo_t, status C.int, res *C.struct_addrinfo) {
	defer C.uv_freeaddrinfo(res)
	r := (*GetAddrInfo)(unsafe.Pointer(cr))
	err := statusError(status)
	var addrs []AddrInfo
	if err == nil {
		addrs = addrInfoList(res)
	}
	finishReq((*Loop)(unsafe.Pointer(cr.loop)), unsafe.Pointer(cr), func(e *reqEntry) {
		if fn := reqCallback[GetAddrInfoFunc](e); fn != nil {
			fn(r, addrs, err)
		}
	})
}

//export uvgoGetNameInfoCb
func uvgoGetNameInfoCb(cr *C.uv_getnameinfo_t, status C.int, hostname *C.char, service *C.char) {
	r := (*GetNameInfo)(unsafe.Pointer(cr))
	err := statusError(status)
	var host, svc string
	if err == nil {
		host, svc = C.GoString(hostname), C.GoString(service)
	}
	finishReq((*Loop)(unsafe.Pointer(cr.loop)), unsafe.Pointer(cr), func(e *reqEntry) {
		if fn := reqCallback[GetNameInfoFunc](e); fn != nil {
			fn(r, host, svc, err)
		}
	})
}

//export uvgoRandomCb
func uvgoRandomCb(cr *C.uv_random_t, status C.int, buf unsafe.Pointer, buflen C.size_t) {
	r := (*Random)(unsafe.Pointer(cr))
	err := statusError(status)
	var data []byte
	if err == nil {
		data = C.GoBytes(buf, C.int(buflen))
	}
	finishReq((*Loop)(unsafe.Pointer(cr.loop)), unsafe.Pointer(cr), func(e *reqEntry) {
		if fn := reqCallback[RandomFunc](e); fn != nil {
			fn(r, data, err)
		}
	})
}

//export uvgoWalkCb
func uvgoWalkCb(ch *C.uv_handle_t, arg C.uintptr_t) {
	cgo.Handle(arg).Value().(*walker).visit((*Handle)(unsafe.Pointer(ch)))
}
