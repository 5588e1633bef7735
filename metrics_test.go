package libuv

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoopMetrics_snapshot(t *testing.T) {
	m := newLoopMetrics()
	for i := 1; i <= 100; i++ {
		m.recordCallback(time.Duration(i) * time.Millisecond)
	}
	m.recordRequest(ReqSubmitted)
	m.recordRequest(ReqSubmitted)
	m.recordRequest(ReqCompleted)
	m.recordRequest(ReqSubmitFailed)
	m.recordUnmatched()
	m.recordPanic()

	var out Metrics
	m.snapshot(&out)
	assert.Equal(t, 100, out.Callbacks.Count)
	assert.Equal(t, 100*time.Millisecond, out.Callbacks.Max)
	assert.Equal(t, 50500*time.Microsecond, out.Callbacks.Mean)
	assert.InDelta(t, float64(50*time.Millisecond), float64(out.Callbacks.P50), float64(5*time.Millisecond))
	assert.LessOrEqual(t, out.Callbacks.P50, out.Callbacks.P90)
	assert.LessOrEqual(t, out.Callbacks.P90, out.Callbacks.P99)
	assert.Equal(t, RequestMetrics{Submitted: 2, Completed: 1, SubmitFailed: 1, Unmatched: 1}, out.Requests)
	assert.EqualValues(t, 1, out.Panics)
}

func TestLoopMetrics_nil(t *testing.T) {
	var m *loopMetrics
	m.recordCallback(time.Second)
	m.recordRequest(ReqCompleted)
	m.recordUnmatched()
	m.recordPanic()
}

func TestLoop_metricsDisabled(t *testing.T) {
	l := newTestLoop(t)
	assert.Nil(t, l.Metrics())
}

func TestLoop_idleTimeMetrics(t *testing.T) {
	l := newTestLoop(t, WithMetrics(true), WithIdleTimeMetrics())
	timer, err := NewTimer(l)
	if !assert.NoError(t, err) {
		return
	}
	assert.NoError(t, timer.Start(func(tm *Timer) { tm.Close(nil) }, 20*time.Millisecond, 0))
	run(t, l)

	m := l.Metrics()
	if assert.NotNil(t, m) {
		assert.Positive(t, m.IdleTime)
		assert.Positive(t, m.Iterations)
	}
}
