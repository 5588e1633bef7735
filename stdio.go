package libuv

/*
#include "uvgo.h"
*/
import "C"

// StdioFlags configures how a child's stdio descriptor is provided.
type StdioFlags int

const (
	StdioIgnore        StdioFlags = C.UV_IGNORE
	StdioCreatePipe    StdioFlags = C.UV_CREATE_PIPE
	StdioInheritFD     StdioFlags = C.UV_INHERIT_FD
	StdioInheritStream StdioFlags = C.UV_INHERIT_STREAM
	StdioReadablePipe  StdioFlags = C.UV_READABLE_PIPE
	StdioWritablePipe  StdioFlags = C.UV_WRITABLE_PIPE
	StdioNonblockPipe  StdioFlags = C.UV_NONBLOCK_PIPE
)

// StdioContainer describes one of a child's stdio descriptors. With
// StdioCreatePipe, Stream must be an initialized but unused Pipe, which is
// connected to the child. With StdioInheritStream it must be an open
// stream, and with StdioInheritFD, FD is used.
type StdioContainer struct {
	Stream StreamCapability
	Flags  StdioFlags
	FD     int
}

// InheritFD is shorthand for a container inheriting fd.
func InheritFD(fd int) StdioContainer {
	return StdioContainer{Flags: StdioInheritFD, FD: fd}
}

// setNative populates c, which the engine reads as a union of a stream and
// a descriptor, discriminated by flags.
func (s StdioContainer) setNative(c *C.uv_stdio_container_t) error {
	switch {
	case s.Flags&(StdioCreatePipe|StdioInheritStream) != 0:
		if s.Stream == nil {
			return EINVAL
		}
		C.uvgo_stdio_set_stream(c, C.int(s.Flags), s.Stream.AsStream().native())
	case s.Flags&StdioInheritFD != 0:
		C.uvgo_stdio_set_fd(c, C.int(s.Flags), C.int(s.FD))
	default:
		C.uvgo_stdio_set_fd(c, C.int(s.Flags), -1)
	}
	return nil
}
