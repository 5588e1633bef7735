package libuv

/*
#include "uvgo.h"
*/
import "C"

import (
	"net/netip"
	"unsafe"
)

// UDP is a UDP socket.
type UDP C.uv_udp_t

// UDPFlags are passed to Bind, and reported to UDPRecvFunc.
type UDPFlags uint

const (
	UDPIPv6Only     UDPFlags = C.UV_UDP_IPV6ONLY
	UDPPartial      UDPFlags = C.UV_UDP_PARTIAL
	UDPReuseAddr    UDPFlags = C.UV_UDP_REUSEADDR
	UDPLinuxRecvErr UDPFlags = C.UV_UDP_LINUX_RECVERR
	// UDPRecvMmsg may be or'd into the family passed to NewUDPEx, to read
	// with recvmmsg where supported.
	UDPRecvMmsg UDPFlags = C.UV_UDP_RECVMMSG
	// UDPMmsgChunk marks a datagram sliced from a larger recvmmsg buffer.
	// The buffer stays valid until a later callback without this flag.
	UDPMmsgChunk UDPFlags = C.UV_UDP_MMSG_CHUNK
	// UDPMmsgFree marks the callback that releases a recvmmsg buffer.
	UDPMmsgFree UDPFlags = C.UV_UDP_MMSG_FREE
)

// releasesBuf reports whether the receive callback carrying f is the last
// use of the buffer.
func (f UDPFlags) releasesBuf() bool { return f&UDPMmsgChunk == 0 }

// Membership selects JoinGroup or LeaveGroup, for SetMembership.
type Membership int

const (
	LeaveGroup Membership = C.UV_LEAVE_GROUP
	JoinGroup  Membership = C.UV_JOIN_GROUP
)

// UDPRecvFunc receives a datagram. A zero nread with an invalid addr means
// there is nothing more to read. UDPPartial in flags means the datagram was
// truncated, to fit buf. With UDPMmsgChunk set, buf is shared with other
// datagrams of the same batch, and must not be freed.
type UDPRecvFunc func(h *UDP, nread int, buf Buf, addr netip.AddrPort, flags UDPFlags, err error)

// UDPSend is a datagram send request.
type UDPSend C.uv_udp_send_t

// UDPSendFunc is called exactly once per successfully submitted send.
type UDPSendFunc func(req *UDPSend, err error)

// Handle returns the socket the request sends from.
func (r *UDPSend) Handle() *UDP {
	return (*UDP)(unsafe.Pointer((*C.uv_udp_send_t)(unsafe.Pointer(r)).handle))
}

// NewUDP initializes a UDP handle against l.
func NewUDP(l *Loop) (*UDP, error) {
	p := allocHandle(HandleTypeUDP)
	if err := initHandle(p, C.uv_udp_init(l.native(), (*C.uv_udp_t)(p))); err != nil {
		return nil, err
	}
	return (*UDP)(p), nil
}

// NewUDPEx is NewUDP, but creates the socket immediately, for the given
// address family, unless it is unix.AF_UNSPEC. The family may carry
// UDPRecvMmsg in its upper bits.
func NewUDPEx(l *Loop, family int) (*UDP, error) {
	p := allocHandle(HandleTypeUDP)
	if err := initHandle(p, C.uv_udp_init_ex(l.native(), (*C.uv_udp_t)(p), C.uint(family))); err != nil {
		return nil, err
	}
	return (*UDP)(p), nil
}

func (h *UDP) native() *C.uv_udp_t { return (*C.uv_udp_t)(unsafe.Pointer(h)) }

// Open adopts an existing socket.
func (h *UDP) Open(sock int) error {
	return checkCode(C.uv_udp_open(h.native(), C.uv_os_sock_t(sock)))
}

func (h *UDP) Bind(addr netip.AddrPort, flags UDPFlags) error {
	var sa sockaddr
	if err := sa.set(addr); err != nil {
		return err
	}
	return checkCode(C.uv_udp_bind(h.native(), sa.native(), C.uint(flags)))
}

// Connect associates the socket with a remote address, or, given the zero
// AddrPort, dissolves an existing association.
func (h *UDP) Connect(addr netip.AddrPort) error {
	if !addr.IsValid() {
		return checkCode(C.uv_udp_connect(h.native(), nil))
	}
	var sa sockaddr
	if err := sa.set(addr); err != nil {
		return err
	}
	return checkCode(C.uv_udp_connect(h.native(), sa.native()))
}

func (h *UDP) Sockname() (netip.AddrPort, error) {
	return socketName(func(sa *C.struct_sockaddr, n *C.int) C.int {
		return C.uv_udp_getsockname(h.native(), sa, n)
	})
}

func (h *UDP) Peername() (netip.AddrPort, error) {
	return socketName(func(sa *C.struct_sockaddr, n *C.int) C.int {
		return C.uv_udp_getpeername(h.native(), sa, n)
	})
}

// SetMembership joins or leaves a multicast group, on the given interface
// address (empty for the default).
func (h *UDP) SetMembership(group, iface string, membership Membership) error {
	g := C.CString(group)
	defer C.free(unsafe.Pointer(g))
	var i *C.char
	if iface != "" {
		i = C.CString(iface)
		defer C.free(unsafe.Pointer(i))
	}
	return checkCode(C.uv_udp_set_membership(h.native(), g, i, C.uv_membership(membership)))
}

func (h *UDP) SetMulticastLoop(on bool) error {
	return checkCode(C.uv_udp_set_multicast_loop(h.native(), cbool(on)))
}

func (h *UDP) SetMulticastTTL(ttl int) error {
	return checkCode(C.uv_udp_set_multicast_ttl(h.native(), C.int(ttl)))
}

func (h *UDP) SetMulticastInterface(iface string) error {
	s := C.CString(iface)
	defer C.free(unsafe.Pointer(s))
	return checkCode(C.uv_udp_set_multicast_interface(h.native(), s))
}

func (h *UDP) SetBroadcast(on bool) error {
	return checkCode(C.uv_udp_set_broadcast(h.native(), cbool(on)))
}

func (h *UDP) SetTTL(ttl int) error {
	return checkCode(C.uv_udp_set_ttl(h.native(), C.int(ttl)))
}

// Send submits a datagram. The zero AddrPort sends to the connected peer.
// As with Stream.Write, bufs must remain valid until cb is called.
func (h *UDP) Send(bufs []Buf, addr netip.AddrPort, cb UDPSendFunc, opts ...ReqOption) error {
	if len(bufs) == 0 {
		return EINVAL
	}
	var sa sockaddr
	var to *C.struct_sockaddr
	if addr.IsValid() {
		if err := sa.set(addr); err != nil {
			return err
		}
		to = sa.native()
	}
	p, e := newReq(h.Loop(), ReqTypeUDPSend, cb, opts)
	return submitReq(p, e, func() C.int {
		return C.uv_udp_send((*C.uv_udp_send_t)(p), h.native(), bufsPtr(bufs), C.uint(len(bufs)), to, C.uv_udp_send_cb(C.uvgoUDPSendCb))
	})
}

// SendBytes is Send, copying b into memory owned by the request.
func (h *UDP) SendBytes(b []byte, addr netip.AddrPort, cb UDPSendFunc, opts ...ReqOption) error {
	var sa sockaddr
	var to *C.struct_sockaddr
	if addr.IsValid() {
		if err := sa.set(addr); err != nil {
			return err
		}
		to = sa.native()
	}
	mem := cbytes(b)
	bufs := [1]Buf{BufFrom(mem, len(b))}
	p, e := newReq(h.Loop(), ReqTypeUDPSend, cb, opts)
	e.owned = append(e.owned, mem)
	return submitReq(p, e, func() C.int {
		return C.uv_udp_send((*C.uv_udp_send_t)(p), h.native(), bufsPtr(bufs[:]), 1, to, C.uv_udp_send_cb(C.uvgoUDPSendCb))
	})
}

// TrySend sends without queueing, returning the number of bytes sent, or
// EAGAIN if that is not possible.
func (h *UDP) TrySend(bufs []Buf, addr netip.AddrPort) (int, error) {
	if len(bufs) == 0 {
		return 0, EINVAL
	}
	var sa sockaddr
	var to *C.struct_sockaddr
	if addr.IsValid() {
		if err := sa.set(addr); err != nil {
			return 0, err
		}
		to = sa.native()
	}
	n := C.uv_udp_try_send(h.native(), bufsPtr(bufs), C.uint(len(bufs)), to)
	if n < 0 {
		return 0, FromCode(int(n))
	}
	return int(n), nil
}

// RecvStart starts receiving datagrams, see Stream.ReadStart for alloc.
func (h *UDP) RecvStart(alloc AllocFunc, recv UDPRecvFunc) error {
	if recv == nil {
		return EINVAL
	}
	e := entryOf(h.AsHandle())
	e.alloc, e.read = alloc, recv
	return checkCode(C.uv_udp_recv_start(h.native(), C.uv_alloc_cb(C.uvgoAllocCb), C.uv_udp_recv_cb(C.uvgoUDPRecvCb)))
}

func (h *UDP) RecvStop() error { return checkCode(C.uv_udp_recv_stop(h.native())) }

// SendQueueSize returns the number of bytes queued for sending.
func (h *UDP) SendQueueSize() int { return int(C.uv_udp_get_send_queue_size(h.native())) }

// SendQueueCount returns the number of send requests queued.
func (h *UDP) SendQueueCount() int { return int(C.uv_udp_get_send_queue_count(h.native())) }
