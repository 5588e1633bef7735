package libuv

import (
	"sync"
	"time"
)

// Metrics is a point-in-time snapshot of a loop's runtime statistics, see
// WithMetrics and Loop.Metrics.
type Metrics struct {
	// Callbacks describes the latency of callbacks invoked by the loop.
	Callbacks LatencyMetrics

	// IdleTime is the cumulative time spent waiting in the kernel's event
	// provider. It is only tracked if WithIdleTimeMetrics was specified.
	IdleTime time.Duration

	// Iterations is the engine's count of loop iterations.
	Iterations uint64

	// Events is the engine's count of processed events.
	Events uint64

	// EventsWaiting is the number of events waiting to be processed when
	// the event provider was last called.
	EventsWaiting uint64

	// Requests counts request blocks, by outcome.
	Requests RequestMetrics

	// Panics is the number of callbacks that panicked.
	Panics uint64
}

// LatencyMetrics summarises a latency distribution, with estimated
// percentiles.
type LatencyMetrics struct {
	P50   time.Duration
	P90   time.Duration
	P95   time.Duration
	P99   time.Duration
	Max   time.Duration
	Mean  time.Duration
	Count int
}

// RequestMetrics counts requests by protocol outcome.
type RequestMetrics struct {
	Submitted    uint64
	Completed    uint64
	SubmitFailed uint64
	// Unmatched counts completions that had no registered request.
	Unmatched uint64
}

var latencyPercentiles = [...]float64{0.50, 0.90, 0.95, 0.99}

// loopMetrics accumulates the Go-side statistics of a loop.
type loopMetrics struct {
	quantiles [len(latencyPercentiles)]*quantile
	requests  RequestMetrics
	sum       time.Duration
	max       time.Duration
	count     int
	panics    uint64
	mu        sync.Mutex
}

func newLoopMetrics() *loopMetrics {
	m := &loopMetrics{}
	for i, p := range latencyPercentiles {
		m.quantiles[i] = newQuantile(p)
	}
	return m
}

func (m *loopMetrics) recordCallback(d time.Duration) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count++
	m.sum += d
	m.max = max(m.max, d)
	for _, q := range m.quantiles {
		q.observe(float64(d))
	}
}

func (m *loopMetrics) recordRequest(state ReqState) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	switch state {
	case ReqSubmitted:
		m.requests.Submitted++
	case ReqCompleted:
		m.requests.Completed++
	case ReqSubmitFailed:
		m.requests.SubmitFailed++
	}
}

func (m *loopMetrics) recordUnmatched() {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.requests.Unmatched++
	m.mu.Unlock()
}

func (m *loopMetrics) recordPanic() {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.panics++
	m.mu.Unlock()
}

func (m *loopMetrics) snapshot(out *Metrics) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out.Requests = m.requests
	out.Panics = m.panics
	out.Callbacks = LatencyMetrics{
		P50:   time.Duration(m.quantiles[0].value()),
		P90:   time.Duration(m.quantiles[1].value()),
		P95:   time.Duration(m.quantiles[2].value()),
		P99:   time.Duration(m.quantiles[3].value()),
		Max:   m.max,
		Count: m.count,
	}
	if m.count != 0 {
		out.Callbacks.Mean = m.sum / time.Duration(m.count)
	}
}
