package libuv

/*
#include "uvgo.h"
*/
import "C"

import (
	"runtime/cgo"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/joeycumines/logiface"
)

// RunMode selects how long Run blocks.
type RunMode int

const (
	// RunDefault runs until there are no active and referenced handles or
	// requests, or Stop is called.
	RunDefault RunMode = C.UV_RUN_DEFAULT
	// RunOnce polls for I/O once, blocking if there are no pending
	// callbacks, and returns after a single iteration.
	RunOnce RunMode = C.UV_RUN_ONCE
	// RunNoWait polls for I/O once, without blocking.
	RunNoWait RunMode = C.UV_RUN_NOWAIT
)

func (m RunMode) String() string {
	switch m {
	case RunDefault:
		return "Default"
	case RunOnce:
		return "Once"
	case RunNoWait:
		return "NoWait"
	default:
		return "Unknown"
	}
}

// Loop is one instance of the engine. Everything attached to a loop, and
// the loop itself, must only be used from the goroutine that runs it, with
// the exception of Async.Send. That goroutine should generally be locked to
// its OS thread (runtime.LockOSThread), as the engine assumes thread
// affinity for some operations (e.g. signals, process spawning).
//
// Loops are created with NewLoop, or DefaultLoop.
type Loop C.uv_loop_t

// loopEntry is the Go-side state of a loop.
type loopEntry struct {
	diag     *diagnostics
	metrics  *loopMetrics
	panicked atomic.Pointer[PanicError]
	state    fastState
	owned    bool
}

func newLoopEntry(cfg *loopOptions, owned bool) *loopEntry {
	e := &loopEntry{
		diag:  newDiagnostics(cfg.logger, cfg.diagnosticRates),
		owned: owned,
	}
	if cfg.metricsEnabled {
		e.metrics = newLoopMetrics()
	}
	e.state.Store(StateInitialized)
	return e
}

// NewLoop allocates and initializes a new loop. It must be released with
// Close, once every handle attached to it has been closed.
func NewLoop(opts ...LoopOption) (*Loop, error) {
	cfg, err := resolveLoopOptions(opts)
	if err != nil {
		return nil, err
	}

	p := cmalloc(uintptr(C.uv_loop_size()))
	if err := checkCode(C.uv_loop_init((*C.uv_loop_t)(p))); err != nil {
		cfree(p)
		return nil, err
	}

	l := (*Loop)(p)
	if err := l.configure(cfg); err != nil {
		C.uv_loop_close(l.native())
		cfree(p)
		return nil, err
	}

	e := newLoopEntry(cfg, true)
	loops.store(p, e)
	if cfg.logger != nil {
		untrackedDiag.CompareAndSwap(nil, e.diag)
	}
	e.diag.debug().Log(`loop initialized`)

	return l, nil
}

func (l *Loop) configure(cfg *loopOptions) error {
	for _, signum := range cfg.blockSignals {
		if err := checkCode(C.uvgo_loop_block_signal(l.native(), C.int(signum))); err != nil {
			return err
		}
	}
	if cfg.idleTime {
		if err := checkCode(C.uvgo_loop_idle_time(l.native())); err != nil {
			return err
		}
	}
	return nil
}

var defaultLoopMu sync.Mutex

// DefaultLoop returns the process-wide default loop, initializing it on
// first use. It has no teardown contract; it may be closed like any other
// loop, in which case the next call initializes it again.
func DefaultLoop() *Loop {
	defaultLoopMu.Lock()
	defer defaultLoopMu.Unlock()
	p := unsafe.Pointer(C.uv_default_loop())
	if p == nil {
		panic(`libuv: failed to initialize the default loop`)
	}
	if _, ok := loops.load(p); !ok {
		loops.store(p, newLoopEntry(&loopOptions{}, false))
	}
	return (*Loop)(p)
}

func (l *Loop) native() *C.uv_loop_t { return (*C.uv_loop_t)(unsafe.Pointer(l)) }

// entry returns the Go-side state, or nil for a closed loop.
func (l *Loop) entry() *loopEntry {
	if l == nil {
		return nil
	}
	e, _ := loops.load(unsafe.Pointer(l))
	return e
}

// State returns the loop's lifecycle state.
func (l *Loop) State() LoopState {
	if e := l.entry(); e != nil {
		return e.state.Load()
	}
	return StateClosed
}

// Run drives the loop, see RunMode. The returned more is true if there is
// still active work, which (for RunDefault) only happens after Stop.
//
// If a callback panics, the loop is stopped, and Run returns a *PanicError.
func (l *Loop) Run(mode RunMode) (more bool, err error) {
	e := l.entry()
	if e == nil {
		return false, ErrLoopClosed
	}
	if !e.state.TryTransition(StateInitialized, StateRunning) {
		if e.state.Load() == StateClosed {
			return false, ErrLoopClosed
		}
		return false, ErrReentrantRun
	}
	defer e.state.TryTransition(StateRunning, StateInitialized)

	more = C.uv_run(l.native(), C.uv_run_mode(mode)) != 0

	if p := e.panicked.Swap(nil); p != nil {
		return more, p
	}
	return more, nil
}

// Stop requests that Run return as soon as possible, i.e. after the current
// iteration.
func (l *Loop) Stop() { C.uv_stop(l.native()) }

// Alive reports whether there are active and referenced handles or
// requests.
func (l *Loop) Alive() bool { return C.uv_loop_alive(l.native()) != 0 }

// Now returns the loop's cached time, in millisecond precision, relative to
// an arbitrary point in the past.
func (l *Loop) Now() time.Duration {
	return time.Duration(C.uv_now(l.native())) * time.Millisecond
}

// UpdateTime refreshes the cached time.
func (l *Loop) UpdateTime() { C.uv_update_time(l.native()) }

// ActiveHandles returns the number of active handles.
func (l *Loop) ActiveHandles() int { return int(l.active_handles) }

// ActiveRequests returns the number of active requests.
func (l *Loop) ActiveRequests() int { return int(C.uvgo_loop_active_reqs(l.native())) }

func (l *Loop) Data() uintptr { return *(*uintptr)(unsafe.Pointer(&l.data)) }

func (l *Loop) SetData(data uintptr) { *(*uintptr)(unsafe.Pointer(&l.data)) = data }

// BackendFD returns the descriptor of the kernel event provider (e.g.
// epoll), for embedding the loop in another poller.
func (l *Loop) BackendFD() int { return int(C.uv_backend_fd(l.native())) }

// BackendTimeout returns the poll timeout, and false if it would block
// indefinitely.
func (l *Loop) BackendTimeout() (time.Duration, bool) {
	ms := C.uv_backend_timeout(l.native())
	if ms < 0 {
		return 0, false
	}
	return time.Duration(ms) * time.Millisecond, true
}

// Fork reinitializes kernel state after fork(2), in the child process.
func (l *Loop) Fork() error { return checkCode(C.uv_loop_fork(l.native())) }

// OutstandingRequests returns the number of requests submitted against this
// loop, that have not yet completed.
func (l *Loop) OutstandingRequests() int {
	return requests.countFunc(func(e *reqEntry) bool { return e.loop == l })
}

// Walk calls fn for every handle attached to the loop, including closing
// handles. It must not start new operations.
//
// A panic from fn is re-raised once the walk completes.
func (l *Loop) Walk(fn func(h *Handle)) {
	w := &walker{fn: fn}
	id := cgo.NewHandle(w)
	defer id.Delete()
	C.uvgo_walk(l.native(), C.uintptr_t(id))
	if w.panicked != nil {
		panic(w.panicked)
	}
}

type walker struct {
	fn       func(h *Handle)
	panicked any
}

func (w *walker) visit(h *Handle) {
	if w.panicked != nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			w.panicked = r
		}
	}()
	w.fn(h)
}

// Close releases the loop. It fails with EBUSY if any handle or request is
// still attached, or if the loop is running.
func (l *Loop) Close() error {
	e := l.entry()
	if e == nil {
		return ErrLoopClosed
	}
	if !e.state.TryTransition(StateInitialized, StateClosed) {
		if e.state.Load() == StateClosed {
			return ErrLoopClosed
		}
		return EBUSY
	}
	if err := checkCode(C.uv_loop_close(l.native())); err != nil {
		e.state.Store(StateInitialized)
		return err
	}
	loops.take(unsafe.Pointer(l))
	e.diag.debug().Log(`loop closed`)
	if e.owned {
		cfree(unsafe.Pointer(l))
	}
	return nil
}

// Metrics returns a snapshot of the loop's metrics, or nil if the loop was
// not created WithMetrics.
func (l *Loop) Metrics() *Metrics {
	e := l.entry()
	if e == nil || e.metrics == nil {
		return nil
	}
	var m Metrics
	e.metrics.snapshot(&m)
	m.IdleTime = time.Duration(C.uv_metrics_idle_time(l.native()))
	var info C.uv_metrics_t
	if C.uv_metrics_info(l.native(), &info) == 0 {
		m.Iterations = uint64(info.loop_count)
		m.Events = uint64(info.events)
		m.EventsWaiting = uint64(info.events_waiting)
	}
	return &m
}

// invoke runs a user callback, on behalf of the engine. Panics are recovered,
// stop the loop, and are reported by Run. A panic must never unwind into the
// engine's frames, including for a loop this package is not tracking.
func (l *Loop) invoke(fn func()) {
	e := l.entry()
	var start time.Time
	if e != nil && e.metrics != nil {
		start = time.Now()
	}
	defer func() {
		if r := recover(); r != nil {
			e.recovered(l, r)
		}
		if e != nil && e.metrics != nil {
			e.metrics.recordCallback(time.Since(start))
		}
	}()
	fn()
}

// recovered records a callback panic, and stops l. With a nil receiver
// there is no Run to report to, so the panic is only logged, to the
// package-wide diagnostics.
func (e *loopEntry) recovered(l *Loop, r any) {
	C.uv_stop(l.native())
	if e == nil {
		untrackedDiag.Load().build(logiface.LevelError, diagCallbackPanic).
			Any(`panic`, r).
			Uint64(`loop`, uint64(uintptr(unsafe.Pointer(l)))).
			Log(`recovered callback panic on untracked loop`)
		return
	}
	p := &PanicError{Value: r, Stack: debug.Stack()}
	e.metrics.recordPanic()
	e.diag.build(logiface.LevelError, diagCallbackPanic).
		Any(`panic`, r).
		Log(`recovered callback panic`)
	e.panicked.CompareAndSwap(nil, p)
}

// Hrtime returns the current high-resolution time, relative to an arbitrary
// point in the past.
func Hrtime() time.Duration { return time.Duration(C.uv_hrtime()) }

// Sleep blocks the calling thread for d, at millisecond precision.
func Sleep(d time.Duration) { C.uv_sleep(C.uint(d / time.Millisecond)) }
