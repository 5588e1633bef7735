package libuv

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoop_lifecycle(t *testing.T) {
	l, err := NewLoop()
	require.NoError(t, err)
	assert.Equal(t, StateInitialized, l.State())
	assert.False(t, l.Alive())

	more, err := l.Run(RunDefault)
	require.NoError(t, err)
	assert.False(t, more)

	require.NoError(t, l.Close())
	assert.Equal(t, StateClosed, l.State())
	assert.ErrorIs(t, l.Close(), ErrLoopClosed)

	_, err = l.Run(RunDefault)
	assert.ErrorIs(t, err, ErrLoopClosed)
}

func TestLoop_invalidOptions(t *testing.T) {
	_, err := NewLoop(WithBlockSignal(0))
	assert.Error(t, err)

	_, err = NewLoop(WithDiagnosticRate(map[time.Duration]int{0: 1}))
	assert.Error(t, err)

	// nil options are skipped
	l := newTestLoop(t, nil, WithMetrics(false))
	assert.Nil(t, l.Metrics())
}

func TestLoop_timerZeroDrains(t *testing.T) {
	l := newTestLoop(t)
	timer, err := NewTimer(l)
	require.NoError(t, err)

	var fired int
	require.NoError(t, timer.Start(func(tm *Timer) {
		fired++
		assert.Same(t, timer, tm)
	}, 0, 0))
	assert.True(t, timer.IsActive())
	assert.True(t, l.Alive())

	run(t, l)
	assert.Equal(t, 1, fired)
	assert.False(t, timer.IsActive())
}

func TestLoop_idleStop(t *testing.T) {
	l := newTestLoop(t)
	idle, err := NewIdle(l)
	require.NoError(t, err)

	var calls int
	require.NoError(t, idle.Start(func(h *Idle) {
		calls++
		if calls == 3 {
			l.Stop()
		}
	}))

	more, err := l.Run(RunDefault)
	require.NoError(t, err)
	assert.True(t, more)
	assert.Equal(t, 3, calls)

	require.NoError(t, idle.Stop())
	var closed bool
	idle.Close(func(h *Handle) {
		closed = true
		assert.Equal(t, HandleTypeIdle, h.Type())
	})
	run(t, l)
	assert.True(t, closed)
	assert.Equal(t, 3, calls)
}

func TestLoop_idleStopAndLoopStop(t *testing.T) {
	l, err := NewLoop()
	require.NoError(t, err)
	idle, err := NewIdle(l)
	require.NoError(t, err)

	var calls int
	require.NoError(t, idle.Start(func(h *Idle) {
		calls++
		assert.NoError(t, h.Stop())
		l.Stop()
	}))

	more, err := l.Run(RunDefault)
	require.NoError(t, err)
	assert.False(t, more)
	assert.Equal(t, 1, calls)
	assert.Zero(t, l.ActiveHandles())

	idle.Close(nil)
	run(t, l)
	assert.Equal(t, 1, calls)
	require.NoError(t, l.Close())
}

func TestLoop_reentrantRun(t *testing.T) {
	l := newTestLoop(t)
	timer, err := NewTimer(l)
	require.NoError(t, err)

	var inner, closeErr error
	require.NoError(t, timer.Start(func(*Timer) {
		assert.Equal(t, StateRunning, l.State())
		_, inner = l.Run(RunNoWait)
		closeErr = l.Close()
	}, 0, 0))
	run(t, l)

	assert.ErrorIs(t, inner, ErrReentrantRun)
	assert.ErrorIs(t, closeErr, EBUSY)
	assert.Equal(t, StateInitialized, l.State())
}

func TestLoop_closeBusy(t *testing.T) {
	l, err := NewLoop()
	require.NoError(t, err)
	timer, err := NewTimer(l)
	require.NoError(t, err)

	assert.ErrorIs(t, l.Close(), EBUSY)
	assert.Equal(t, StateInitialized, l.State())

	timer.Close(nil)
	run(t, l)
	require.NoError(t, l.Close())
}

func TestLoop_callbackPanic(t *testing.T) {
	var logs syncBuffer
	l := newTestLoop(t, WithLogger(newTestLogger(&logs)), WithMetrics(true))
	timer, err := NewTimer(l)
	require.NoError(t, err)

	require.NoError(t, timer.Start(func(*Timer) { panic(`boom`) }, 0, 10*time.Millisecond))

	_, err = l.Run(RunDefault)
	var p *PanicError
	require.ErrorAs(t, err, &p)
	assert.Equal(t, `boom`, p.Value)
	assert.NotEmpty(t, p.Stack)
	assert.Contains(t, logs.String(), `recovered callback panic`)
	assert.EqualValues(t, 1, l.Metrics().Panics)

	// the loop is still usable
	require.NoError(t, timer.Stop())
	timer.Close(nil)
	run(t, l)
}

func TestLoop_walk(t *testing.T) {
	l := newTestLoop(t)
	_, err := NewTimer(l)
	require.NoError(t, err)
	_, err = NewIdle(l)
	require.NoError(t, err)

	seen := make(map[HandleType]int)
	l.Walk(func(h *Handle) { seen[h.Type()]++ })
	assert.Equal(t, map[HandleType]int{HandleTypeTimer: 1, HandleTypeIdle: 1}, seen)

	assert.Panics(t, func() { l.Walk(func(*Handle) { panic(`walk`) }) })
}

func TestLoop_metrics(t *testing.T) {
	l := newTestLoop(t, WithMetrics(true), WithIdleTimeMetrics())
	timer, err := NewTimer(l)
	require.NoError(t, err)

	var n int
	require.NoError(t, timer.Start(func(tm *Timer) {
		if n++; n == 5 {
			assert.NoError(t, tm.Stop())
		}
	}, 0, time.Millisecond))
	run(t, l)

	m := l.Metrics()
	require.NotNil(t, m)
	assert.Equal(t, 5, m.Callbacks.Count)
	assert.GreaterOrEqual(t, m.Callbacks.Max, m.Callbacks.P50)
	assert.NotZero(t, m.Iterations)
	assert.Zero(t, m.Panics)
}

func TestLoop_timeAndData(t *testing.T) {
	l := newTestLoop(t)
	before := l.Now()
	Sleep(5 * time.Millisecond)
	l.UpdateTime()
	assert.GreaterOrEqual(t, l.Now()-before, 5*time.Millisecond)

	l.SetData(42)
	assert.EqualValues(t, 42, l.Data())

	_, ok := l.BackendTimeout()
	assert.True(t, ok)
	assert.Zero(t, l.ActiveHandles())
	assert.Zero(t, l.ActiveRequests())
	assert.Positive(t, Hrtime())
}

func TestDefaultLoop(t *testing.T) {
	l := DefaultLoop()
	require.NotNil(t, l)
	assert.Same(t, l, DefaultLoop())
	assert.Equal(t, StateInitialized, l.State())
}

func TestRunMode_String(t *testing.T) {
	assert.Equal(t, `Default`, RunDefault.String())
	assert.Equal(t, `Once`, RunOnce.String())
	assert.Equal(t, `NoWait`, RunNoWait.String())
	assert.Equal(t, `Unknown`, RunMode(99).String())
}

func TestLoop_invokeUntracked(t *testing.T) {
	var logs syncBuffer
	d := newDiagnostics(newTestLogger(&logs), nil)
	prev := untrackedDiag.Swap(d)
	defer untrackedDiag.Store(prev)

	// zeroed memory that was never initialized as a loop, so has no entry
	var untracked Loop
	assert.Nil(t, untracked.entry())
	assert.NotPanics(t, func() { untracked.invoke(func() { panic(`lost`) }) })
	assert.Contains(t, logs.String(), `recovered callback panic on untracked loop`)
	assert.Contains(t, logs.String(), `lost`)

	var ran bool
	untracked.invoke(func() { ran = true })
	assert.True(t, ran)
}
