package libuv

/*
#include "uvgo.h"
*/
import "C"

import (
	"time"
	"unsafe"
)

// Timer calls a function after a timeout, and optionally repeatedly.
type Timer C.uv_timer_t

// TimerFunc is called each time a timer fires.
type TimerFunc func(t *Timer)

// NewTimer initializes a timer against l.
func NewTimer(l *Loop) (*Timer, error) {
	p := allocHandle(HandleTypeTimer)
	if err := initHandle(p, C.uv_timer_init(l.native(), (*C.uv_timer_t)(p))); err != nil {
		return nil, err
	}
	return (*Timer)(p), nil
}

func (t *Timer) native() *C.uv_timer_t { return (*C.uv_timer_t)(unsafe.Pointer(t)) }

// Start starts the timer, firing after timeout, then every repeat if
// repeat is non-zero. Starting an active timer restarts it. Durations have
// millisecond resolution, relative to the loop's cached time, see Loop.Now.
func (t *Timer) Start(cb TimerFunc, timeout, repeat time.Duration) error {
	if cb == nil {
		return EINVAL
	}
	entryOf(t.AsHandle()).cb = cb
	return checkCode(C.uv_timer_start(t.native(), C.uv_timer_cb(C.uvgoTimerCb), millis(timeout), millis(repeat)))
}

func (t *Timer) Stop() error { return checkCode(C.uv_timer_stop(t.native())) }

// Again restarts a repeating timer, using the repeat as the timeout. It
// fails with EINVAL if the timer was never started.
func (t *Timer) Again() error { return checkCode(C.uv_timer_again(t.native())) }

// SetRepeat sets the repeat interval, taking effect from the next firing.
func (t *Timer) SetRepeat(repeat time.Duration) { C.uv_timer_set_repeat(t.native(), millis(repeat)) }

func (t *Timer) Repeat() time.Duration {
	return time.Duration(C.uv_timer_get_repeat(t.native())) * time.Millisecond
}

// DueIn returns the time until the timer fires, or 0 if it is not active.
func (t *Timer) DueIn() time.Duration {
	return time.Duration(C.uv_timer_get_due_in(t.native())) * time.Millisecond
}

func millis(d time.Duration) C.uint64_t {
	if d <= 0 {
		return 0
	}
	return C.uint64_t(d / time.Millisecond)
}
