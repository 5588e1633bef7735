package libuv

/*
#include "uvgo.h"
*/
import "C"

import (
	"net/netip"
	"time"
	"unsafe"
)

// TCP is a TCP stream, client or server.
type TCP C.uv_tcp_t

// TCPFlags modify Bind.
type TCPFlags uint

// TCPIPv6Only disables dual-stack support, for IPv6 binds.
const TCPIPv6Only TCPFlags = C.UV_TCP_IPV6ONLY

// NewTCP initializes a TCP handle against l. No socket is created until
// it is needed.
func NewTCP(l *Loop) (*TCP, error) {
	p := allocHandle(HandleTypeTCP)
	if err := initHandle(p, C.uv_tcp_init(l.native(), (*C.uv_tcp_t)(p))); err != nil {
		return nil, err
	}
	return (*TCP)(p), nil
}

// NewTCPEx is NewTCP, but creates the socket immediately, for the given
// address family (e.g. unix.AF_INET6), unless it is unix.AF_UNSPEC.
func NewTCPEx(l *Loop, family int) (*TCP, error) {
	p := allocHandle(HandleTypeTCP)
	if err := initHandle(p, C.uv_tcp_init_ex(l.native(), (*C.uv_tcp_t)(p), C.uint(family))); err != nil {
		return nil, err
	}
	return (*TCP)(p), nil
}

func (h *TCP) native() *C.uv_tcp_t { return (*C.uv_tcp_t)(unsafe.Pointer(h)) }

// Open adopts an existing socket, which should be non-blocking.
func (h *TCP) Open(sock int) error {
	return checkCode(C.uv_tcp_open(h.native(), C.uv_os_sock_t(sock)))
}

func (h *TCP) Bind(addr netip.AddrPort, flags TCPFlags) error {
	var sa sockaddr
	if err := sa.set(addr); err != nil {
		return err
	}
	return checkCode(C.uv_tcp_bind(h.native(), sa.native(), C.uint(flags)))
}

// Connect submits a connection request. Failure to connect, e.g.
// ECONNREFUSED, is reported to cb.
func (h *TCP) Connect(addr netip.AddrPort, cb ConnectFunc, opts ...ReqOption) error {
	var sa sockaddr
	if err := sa.set(addr); err != nil {
		return err
	}
	p, e := newReq(h.Loop(), ReqTypeConnect, cb, opts)
	return submitReq(p, e, func() C.int {
		return C.uv_tcp_connect((*C.uv_connect_t)(p), h.native(), sa.native(), C.uv_connect_cb(C.uvgoConnectCb))
	})
}

func (h *TCP) Nodelay(enable bool) error {
	return checkCode(C.uv_tcp_nodelay(h.native(), cbool(enable)))
}

// Keepalive toggles TCP keep-alive, delay being the initial delay, with
// second resolution (truncated). Enabling with a delay under one second
// fails with EINVAL. The delay is ignored if enable is false.
func (h *TCP) Keepalive(enable bool, delay time.Duration) error {
	if enable && delay < time.Second {
		return EINVAL
	}
	return checkCode(C.uv_tcp_keepalive(h.native(), cbool(enable), C.uint(delay/time.Second)))
}

// SimultaneousAccepts toggles the Windows specific accept optimisation. It
// is a no-op elsewhere.
func (h *TCP) SimultaneousAccepts(enable bool) error {
	return checkCode(C.uv_tcp_simultaneous_accepts(h.native(), cbool(enable)))
}

func (h *TCP) Sockname() (netip.AddrPort, error) {
	return socketName(func(sa *C.struct_sockaddr, n *C.int) C.int {
		return C.uv_tcp_getsockname(h.native(), sa, n)
	})
}

func (h *TCP) Peername() (netip.AddrPort, error) {
	return socketName(func(sa *C.struct_sockaddr, n *C.int) C.int {
		return C.uv_tcp_getpeername(h.native(), sa, n)
	})
}

// CloseReset closes the handle, sending a RST rather than a FIN. It must
// not be combined with Shutdown.
func (h *TCP) CloseReset(cb CloseFunc) error {
	entryOf(h.AsHandle()).close = cb
	return checkCode(C.uv_tcp_close_reset(h.native(), C.uv_close_cb(C.uvgoCloseCb)))
}
