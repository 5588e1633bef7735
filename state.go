package libuv

import (
	"sync/atomic"
)

// LoopState is the lifecycle state of a Loop, as tracked by this package.
//
//	StateUninitialized (0) → StateInitialized (1)  [NewLoop, DefaultLoop]
//	StateInitialized (1) → StateRunning (2)        [Run, via CAS]
//	StateRunning (2) → StateInitialized (1)        [Run returns]
//	StateInitialized (1) → StateClosed (3)         [Close, via CAS]
//	StateClosed (3) → (terminal)
//
// Running is re-entered by every Run call. Close is only permitted from
// StateInitialized, which is also what rejects reentrant Run calls.
type LoopState uint32

const (
	StateUninitialized LoopState = iota
	StateInitialized
	StateRunning
	StateClosed
)

func (s LoopState) String() string {
	switch s {
	case StateUninitialized:
		return "Uninitialized"
	case StateInitialized:
		return "Initialized"
	case StateRunning:
		return "Running"
	case StateClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// fastState is a lock-free state holder, see LoopState.
type fastState struct {
	v atomic.Uint32
}

func (s *fastState) Load() LoopState { return LoopState(s.v.Load()) }

func (s *fastState) Store(state LoopState) { s.v.Store(uint32(state)) }

// TryTransition attempts to atomically transition from one state to
// another, returning true on success.
func (s *fastState) TryTransition(from, to LoopState) bool {
	return s.v.CompareAndSwap(uint32(from), uint32(to))
}

// ReqState is the ownership state of a request block.
//
//	ReqAllocated → ReqSubmitted     [native submit returned >= 0]
//	ReqAllocated → ReqSubmitFailed  [native submit returned < 0; freed at once]
//	ReqSubmitted → ReqCompleted     [completion callback; freed after it returns]
//
// While ReqSubmitted, the block is owned by the engine.
type ReqState uint32

const (
	ReqAllocated ReqState = iota
	ReqSubmitted
	ReqCompleted
	ReqSubmitFailed
)

func (s ReqState) String() string {
	switch s {
	case ReqAllocated:
		return "Allocated"
	case ReqSubmitted:
		return "Submitted"
	case ReqCompleted:
		return "Completed"
	case ReqSubmitFailed:
		return "SubmitFailed"
	default:
		return "Unknown"
	}
}
