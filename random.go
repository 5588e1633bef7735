package libuv

/*
#include "uvgo.h"
*/
import "C"

import (
	"unsafe"
)

// Random is a request for cryptographically strong random bytes.
type Random C.uv_random_t

// RandomFunc receives the random bytes, which are owned by the caller.
type RandomFunc func(req *Random, data []byte, err error)

func (r *Random) Loop() *Loop {
	return (*Loop)(unsafe.Pointer((*C.uv_random_t)(unsafe.Pointer(r)).loop))
}

// Random fills n bytes from the system CSPRNG, on the thread pool.
func (l *Loop) Random(n int, cb RandomFunc, opts ...ReqOption) error {
	if n < 0 {
		return EINVAL
	}
	buf := cmalloc(uintptr(n))
	p, e := newReq(l, ReqTypeRandom, cb, opts)
	e.owned = append(e.owned, buf)
	return submitReq(p, e, func() C.int {
		return C.uv_random(l.native(), (*C.uv_random_t)(p), buf, C.size_t(n), 0, C.uv_random_cb(C.uvgoRandomCb))
	})
}

// RandomBytes fills b synchronously, blocking if the system has not yet
// gathered enough entropy.
func RandomBytes(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	buf := cmalloc(uintptr(len(b)))
	defer cfree(buf)
	if err := checkCode(C.uv_random(nil, nil, buf, C.size_t(len(b)), 0, nil)); err != nil {
		return err
	}
	copy(b, unsafe.Slice((*byte)(buf), len(b)))
	return nil
}
