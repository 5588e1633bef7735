package libuv

/*
#include "uvgo.h"
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// kindLayout is the compile time size of a native kind, as seen through its
// Go definition, alongside the size reported by the linked engine.
type kindLayout struct {
	name   string
	size   uintptr
	align  uintptr
	engine uintptr
}

func handleLayouts() []kindLayout {
	h := func(t HandleType, size, align uintptr) kindLayout {
		return kindLayout{name: t.String(), size: size, align: align, engine: t.Size()}
	}
	return []kindLayout{
		h(HandleTypeAsync, unsafe.Sizeof(Async{}), unsafe.Alignof(Async{})),
		h(HandleTypeCheck, unsafe.Sizeof(Check{}), unsafe.Alignof(Check{})),
		h(HandleTypeIdle, unsafe.Sizeof(Idle{}), unsafe.Alignof(Idle{})),
		h(HandleTypePipe, unsafe.Sizeof(Pipe{}), unsafe.Alignof(Pipe{})),
		h(HandleTypePoll, unsafe.Sizeof(Poll{}), unsafe.Alignof(Poll{})),
		h(HandleTypePrepare, unsafe.Sizeof(Prepare{}), unsafe.Alignof(Prepare{})),
		h(HandleTypeProcess, unsafe.Sizeof(Process{}), unsafe.Alignof(Process{})),
		h(HandleTypeTCP, unsafe.Sizeof(TCP{}), unsafe.Alignof(TCP{})),
		h(HandleTypeTimer, unsafe.Sizeof(Timer{}), unsafe.Alignof(Timer{})),
		h(HandleTypeTTY, unsafe.Sizeof(TTY{}), unsafe.Alignof(TTY{})),
		h(HandleTypeUDP, unsafe.Sizeof(UDP{}), unsafe.Alignof(UDP{})),
		h(HandleTypeSignal, unsafe.Sizeof(Signal{}), unsafe.Alignof(Signal{})),
	}
}

func reqLayouts() []kindLayout {
	r := func(t ReqType, size, align uintptr) kindLayout {
		return kindLayout{name: t.String(), size: size, align: align, engine: t.Size()}
	}
	return []kindLayout{
		r(ReqTypeConnect, unsafe.Sizeof(Connect{}), unsafe.Alignof(Connect{})),
		r(ReqTypeWrite, unsafe.Sizeof(Write{}), unsafe.Alignof(Write{})),
		r(ReqTypeShutdown, unsafe.Sizeof(Shutdown{}), unsafe.Alignof(Shutdown{})),
		r(ReqTypeUDPSend, unsafe.Sizeof(UDPSend{}), unsafe.Alignof(UDPSend{})),
		r(ReqTypeFS, unsafe.Sizeof(FS{}), unsafe.Alignof(FS{})),
		r(ReqTypeWork, unsafe.Sizeof(Work{}), unsafe.Alignof(Work{})),
		r(ReqTypeGetAddrInfo, unsafe.Sizeof(GetAddrInfo{}), unsafe.Alignof(GetAddrInfo{})),
		r(ReqTypeGetNameInfo, unsafe.Sizeof(GetNameInfo{}), unsafe.Alignof(GetNameInfo{})),
		r(ReqTypeRandom, unsafe.Sizeof(Random{}), unsafe.Alignof(Random{})),
	}
}

// LayoutError reports a kind whose size differs between the headers this
// package was compiled against and the engine it is linked with.
type LayoutError struct {
	Kind   string
	Size   uintptr
	Engine uintptr
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf(`libuv: layout mismatch for %s: compiled %d, engine %d`, e.Kind, e.Size, e.Engine)
}

// VerifyLayout checks every handle and request kind, and the loop, against
// the sizes reported by the linked engine. A mismatch means the memory this
// package allocates cannot be safely used by the engine.
func VerifyLayout() error {
	for _, v := range append(handleLayouts(), reqLayouts()...) {
		if v.size != v.engine {
			return &LayoutError{Kind: v.name, Size: v.size, Engine: v.engine}
		}
	}
	if size, engine := unsafe.Sizeof(Loop{}), uintptr(C.uv_loop_size()); size != engine {
		return &LayoutError{Kind: `loop`, Size: size, Engine: engine}
	}
	return nil
}
