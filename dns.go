package libuv

/*
#include "uvgo.h"
*/
import "C"

import (
	"net/netip"
	"unsafe"
)

// GetAddrInfo is an asynchronous getaddrinfo(3) request.
type GetAddrInfo C.uv_getaddrinfo_t

// GetNameInfo is an asynchronous getnameinfo(3) request.
type GetNameInfo C.uv_getnameinfo_t

// AddrInfo is one resolved address. Addr is invalid for families other than
// IPv4 and IPv6.
type AddrInfo struct {
	Addr      netip.AddrPort
	CanonName string
	Family    int
	SockType  int
	Protocol  int
}

// AddrInfoHints narrows a GetAddrInfo lookup, see getaddrinfo(3). The zero
// value places no restrictions.
type AddrInfoHints struct {
	Family   int
	SockType int
	Protocol int
	Flags    int
}

// Flags for AddrInfoHints.Flags.
const (
	AddrInfoPassive     = C.AI_PASSIVE
	AddrInfoCanonName   = C.AI_CANONNAME
	AddrInfoNumericHost = C.AI_NUMERICHOST
	AddrInfoNumericServ = C.AI_NUMERICSERV
)

// Flags for GetNameInfo.
const (
	NameInfoNumericHost = C.NI_NUMERICHOST
	NameInfoNumericServ = C.NI_NUMERICSERV
	NameInfoNameReqd    = C.NI_NAMEREQD
	NameInfoDgram       = C.NI_DGRAM
)

// GetAddrInfoFunc receives the resolved addresses.
type GetAddrInfoFunc func(req *GetAddrInfo, addrs []AddrInfo, err error)

// GetNameInfoFunc receives the resolved host and service names.
type GetNameInfoFunc func(req *GetNameInfo, host, service string, err error)

func (r *GetAddrInfo) Loop() *Loop {
	return (*Loop)(unsafe.Pointer((*C.uv_getaddrinfo_t)(unsafe.Pointer(r)).loop))
}

func (r *GetNameInfo) Loop() *Loop {
	return (*Loop)(unsafe.Pointer((*C.uv_getnameinfo_t)(unsafe.Pointer(r)).loop))
}

func addrInfoList(res *C.struct_addrinfo) []AddrInfo {
	var out []AddrInfo
	for ai := res; ai != nil; ai = ai.ai_next {
		v := AddrInfo{
			Family:   int(ai.ai_family),
			SockType: int(ai.ai_socktype),
			Protocol: int(ai.ai_protocol),
		}
		v.Addr, _ = fromSockaddr(ai.ai_addr)
		if ai.ai_canonname != nil {
			v.CanonName = C.GoString(ai.ai_canonname)
		}
		out = append(out, v)
	}
	return out
}

// GetAddrInfo resolves node and/or service, on the thread pool. Either may
// be empty, but not both.
func (l *Loop) GetAddrInfo(node, service string, hints *AddrInfoHints, cb GetAddrInfoFunc, opts ...ReqOption) error {
	if node == "" && service == "" {
		return EINVAL
	}
	var n, s *C.char
	if node != "" {
		n = C.CString(node)
		defer C.free(unsafe.Pointer(n))
	}
	if service != "" {
		s = C.CString(service)
		defer C.free(unsafe.Pointer(s))
	}
	var h *C.struct_addrinfo
	if hints != nil {
		h = (*C.struct_addrinfo)(cmalloc(C.sizeof_struct_addrinfo))
		defer cfree(unsafe.Pointer(h))
		h.ai_family = C.int(hints.Family)
		h.ai_socktype = C.int(hints.SockType)
		h.ai_protocol = C.int(hints.Protocol)
		h.ai_flags = C.int(hints.Flags)
	}
	p, e := newReq(l, ReqTypeGetAddrInfo, cb, opts)
	return submitReq(p, e, func() C.int {
		return C.uv_getaddrinfo(l.native(), (*C.uv_getaddrinfo_t)(p), C.uv_getaddrinfo_cb(C.uvgoGetAddrInfoCb), n, s, h)
	})
}

// GetNameInfo resolves addr to a host and service name, on the thread pool.
// Flags are a combination of the NameInfo constants.
func (l *Loop) GetNameInfo(addr netip.AddrPort, flags int, cb GetNameInfoFunc, opts ...ReqOption) error {
	var sa sockaddr
	if err := sa.set(addr); err != nil {
		return err
	}
	p, e := newReq(l, ReqTypeGetNameInfo, cb, opts)
	return submitReq(p, e, func() C.int {
		return C.uv_getnameinfo(l.native(), (*C.uv_getnameinfo_t)(p), C.uv_getnameinfo_cb(C.uvgoGetNameInfoCb), sa.native(), C.int(flags))
	})
}
