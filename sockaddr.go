package libuv

/*
#include "uvgo.h"
*/
import "C"

import (
	"net/netip"
	"unsafe"
)

// sockaddr is storage for any socket address the engine accepts.
type sockaddr C.struct_sockaddr_storage

// set encodes ap, using the engine's own parsers.
func (s *sockaddr) set(ap netip.AddrPort) error {
	ip := ap.Addr()
	if !ip.IsValid() {
		return EINVAL
	}
	str := C.CString(ip.String())
	defer C.free(unsafe.Pointer(str))
	if ip.Is4() {
		return checkCode(C.uv_ip4_addr(str, C.int(ap.Port()), (*C.struct_sockaddr_in)(unsafe.Pointer(s))))
	}
	return checkCode(C.uv_ip6_addr(str, C.int(ap.Port()), (*C.struct_sockaddr_in6)(unsafe.Pointer(s))))
}

func (s *sockaddr) native() *C.struct_sockaddr { return (*C.struct_sockaddr)(unsafe.Pointer(s)) }

// fromSockaddr decodes an IPv4 or IPv6 address.
func fromSockaddr(sa *C.struct_sockaddr) (netip.AddrPort, bool) {
	if sa == nil {
		return netip.AddrPort{}, false
	}
	var buf [64]C.char
	if C.uv_ip_name(sa, &buf[0], C.size_t(len(buf))) != 0 {
		return netip.AddrPort{}, false
	}
	ip, err := netip.ParseAddr(C.GoString(&buf[0]))
	if err != nil {
		return netip.AddrPort{}, false
	}
	return netip.AddrPortFrom(ip, uint16(C.uvgo_sockaddr_port(sa))), true
}

// nameFunc is the signature shared by getsockname and getpeername.
type nameFunc func(sa *C.struct_sockaddr, n *C.int) C.int

func socketName(fn nameFunc) (netip.AddrPort, error) {
	var s sockaddr
	n := C.int(unsafe.Sizeof(s))
	if err := checkCode(fn(s.native(), &n)); err != nil {
		return netip.AddrPort{}, err
	}
	ap, ok := fromSockaddr(s.native())
	if !ok {
		return netip.AddrPort{}, EAFNOSUPPORT
	}
	return ap, nil
}

// InterfaceAddresses returns the addresses of the system's network
// interfaces.
func InterfaceAddresses() ([]InterfaceAddress, error) {
	var list *C.uv_interface_address_t
	var count C.int
	if err := checkCode(C.uv_interface_addresses(&list, &count)); err != nil {
		return nil, err
	}
	defer C.uv_free_interface_addresses(list, count)
	out := make([]InterfaceAddress, 0, int(count))
	for _, v := range unsafe.Slice(list, int(count)) {
		addr, _ := fromSockaddr((*C.struct_sockaddr)(unsafe.Pointer(&v.address)))
		mask, _ := fromSockaddr((*C.struct_sockaddr)(unsafe.Pointer(&v.netmask)))
		out = append(out, InterfaceAddress{
			Name:     C.GoString(v.name),
			Addr:     addr.Addr(),
			Netmask:  mask.Addr(),
			Internal: v.is_internal != 0,
		})
	}
	return out, nil
}

// InterfaceAddress describes one address of a network interface.
type InterfaceAddress struct {
	Name     string
	Addr     netip.Addr
	Netmask  netip.Addr
	Internal bool
}
