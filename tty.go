package libuv

/*
#include "uvgo.h"
*/
import "C"

import (
	"unsafe"
)

// TTY is a stream over a terminal.
type TTY C.uv_tty_t

// TTYMode is the terminal mode, see SetMode.
type TTYMode int

const (
	TTYModeNormal TTYMode = C.UV_TTY_MODE_NORMAL
	TTYModeRaw    TTYMode = C.UV_TTY_MODE_RAW
	TTYModeIO     TTYMode = C.UV_TTY_MODE_IO
)

// NewTTY initializes a TTY handle against l, for fd, e.g. 0 for stdin.
func NewTTY(l *Loop, fd int) (*TTY, error) {
	p := allocHandle(HandleTypeTTY)
	// the readable argument is ignored, since 1.x
	if err := initHandle(p, C.uv_tty_init(l.native(), (*C.uv_tty_t)(p), C.uv_file(fd), 0)); err != nil {
		return nil, err
	}
	return (*TTY)(p), nil
}

func (h *TTY) native() *C.uv_tty_t { return (*C.uv_tty_t)(unsafe.Pointer(h)) }

func (h *TTY) SetMode(mode TTYMode) error {
	return checkCode(C.uv_tty_set_mode(h.native(), C.uv_tty_mode_t(mode)))
}

// Winsize returns the terminal's width and height.
func (h *TTY) Winsize() (width, height int, err error) {
	var w, ht C.int
	if err = checkCode(C.uv_tty_get_winsize(h.native(), &w, &ht)); err != nil {
		return 0, 0, err
	}
	return int(w), int(ht), nil
}

// ResetTTYMode restores the mode of any terminal changed by SetMode. It is
// safe for concurrent use, and intended to be called at process exit.
func ResetTTYMode() error { return checkCode(C.uv_tty_reset_mode()) }

// GuessHandle returns the type of handle best suited to fd, e.g.
// HandleTypeTTY, or HandleTypeFile.
func GuessHandle(fd int) HandleType {
	return HandleType(C.uv_guess_handle(C.uv_file(fd)))
}
