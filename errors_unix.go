//go:build unix

package libuv

import (
	"errors"

	"golang.org/x/sys/unix"
)

// codes at or below this value are engine-defined, rather than negated errno
// values (e.g. the EAI_ range, EOF, UNKNOWN)
const engineCodeFloor = -1000

// Errno returns the syscall errno backing e, if any.
func (e Error) Errno() (unix.Errno, bool) {
	if !e.Valid() || e == ErrnoMax {
		return 0, false
	}
	code := e.Code()
	if code <= engineCodeFloor {
		return 0, false
	}
	return unix.Errno(-code), true
}

// ErrorFromErrno maps a syscall errno to its Error.
func ErrorFromErrno(errno unix.Errno) (Error, bool) {
	return LookupCode(-int(errno))
}

// isErrno matches target against the backing errno, including the os
// sentinels it maps to, e.g. fs.ErrNotExist for ENOENT.
func (e Error) isErrno(target error) bool {
	v, ok := e.Errno()
	if !ok {
		return false
	}
	var errno unix.Errno
	if errors.As(target, &errno) {
		return v == errno
	}
	return v.Is(target)
}
