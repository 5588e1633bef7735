package libuv

import (
	"sync/atomic"
	"time"

	"github.com/joeycumines/go-catrate"
	"github.com/joeycumines/logiface"
)

var defaultDiagnosticRates = map[time.Duration]int{
	time.Second: 5,
	time.Minute: 60,
}

// untrackedDiag receives diagnostics that cannot be attributed to a loop,
// e.g. a callback for a loop that is no longer registered. It is set by the
// first NewLoop configured with a logger.
var untrackedDiag atomic.Pointer[diagnostics]

// diagnostic categories, for rate limiting
type diagCategory int

const (
	diagCallbackPanic diagCategory = iota
	diagUnmatchedCompletion
	diagSubmitFailed
	diagDispatch
)

func (c diagCategory) String() string {
	switch c {
	case diagCallbackPanic:
		return `callback_panic`
	case diagUnmatchedCompletion:
		return `unmatched_completion`
	case diagSubmitFailed:
		return `submit_failed`
	case diagDispatch:
		return `dispatch`
	default:
		return `unknown`
	}
}

// diagnostics is the loop's logger, plus a per-category limiter for events
// that may repeat at the engine's rate.
type diagnostics struct {
	logger  *logiface.Logger[logiface.Event]
	limiter *catrate.Limiter
}

func newDiagnostics(logger *logiface.Logger[logiface.Event], rates map[time.Duration]int) *diagnostics {
	d := &diagnostics{logger: logger}
	if logger != nil && len(rates) != 0 {
		d.limiter = catrate.NewLimiter(rates)
	}
	return d
}

// build returns a builder for a rate limited category, or nil if the event
// should be dropped. The nil builder is safe to chain.
func (d *diagnostics) build(level logiface.Level, category diagCategory) *logiface.Builder[logiface.Event] {
	if d == nil || d.logger == nil {
		return nil
	}
	b := d.logger.Build(level)
	if !b.Enabled() {
		return nil
	}
	if next, ok := d.limiter.Allow(category); !ok {
		b.Release()
		return nil
	} else if !next.IsZero() {
		b = b.Time(`rate_limited_until`, next)
	}
	return b.Stringer(`category`, category)
}

func (d *diagnostics) debug() *logiface.Builder[logiface.Event] {
	if d == nil {
		return nil
	}
	return d.logger.Debug()
}
