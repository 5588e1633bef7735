package libuv

import (
	"fmt"
	"time"

	"github.com/joeycumines/logiface"
)

// loopOptions holds configuration options for Loop creation.
type loopOptions struct {
	logger          *logiface.Logger[logiface.Event]
	diagnosticRates map[time.Duration]int
	blockSignals    []int
	metricsEnabled  bool
	idleTime        bool
}

// LoopOption configures a Loop instance.
type LoopOption interface {
	applyLoop(*loopOptions) error
}

// loopOptionImpl implements LoopOption.
type loopOptionImpl struct {
	applyLoopFunc func(*loopOptions) error
}

func (l *loopOptionImpl) applyLoop(opts *loopOptions) error {
	return l.applyLoopFunc(opts)
}

// WithLogger configures structured logging for the loop, and everything
// attached to it. A nil logger (the default) disables logging.
func WithLogger(logger *logiface.Logger[logiface.Event]) LoopOption {
	return &loopOptionImpl{func(opts *loopOptions) error {
		opts.logger = logger
		return nil
	}}
}

// WithDiagnosticRate limits how often each category of repeated diagnostic
// (e.g. recovered panics, unmatched completions) is logged. Rates follow
// the rules of catrate.NewLimiter. A nil or empty map disables limiting.
func WithDiagnosticRate(rates map[time.Duration]int) LoopOption {
	return &loopOptionImpl{func(opts *loopOptions) error {
		for window, n := range rates {
			if window <= 0 || n <= 0 {
				return fmt.Errorf(`libuv: invalid diagnostic rate %v: %d`, window, n)
			}
		}
		opts.diagnosticRates = rates
		return nil
	}}
}

// WithBlockSignal blocks the given signal while polling for events.
// May be specified multiple times.
func WithBlockSignal(signum int) LoopOption {
	return &loopOptionImpl{func(opts *loopOptions) error {
		if signum <= 0 {
			return fmt.Errorf(`libuv: invalid signal number: %d`, signum)
		}
		opts.blockSignals = append(opts.blockSignals, signum)
		return nil
	}}
}

// WithIdleTimeMetrics enables the engine's accounting of time spent idle in
// the kernel's event provider, see Metrics.IdleTime.
func WithIdleTimeMetrics() LoopOption {
	return &loopOptionImpl{func(opts *loopOptions) error {
		opts.idleTime = true
		return nil
	}}
}

// WithMetrics enables runtime metrics collection on the Loop.
// When enabled, metrics can be accessed via Loop.Metrics().
func WithMetrics(enabled bool) LoopOption {
	return &loopOptionImpl{func(opts *loopOptions) error {
		opts.metricsEnabled = enabled
		return nil
	}}
}

// resolveLoopOptions applies LoopOption instances to loopOptions.
func resolveLoopOptions(opts []LoopOption) (*loopOptions, error) {
	cfg := &loopOptions{
		diagnosticRates: defaultDiagnosticRates,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.applyLoop(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// reqOptions holds per-request configuration, applied before submission.
type reqOptions struct {
	data    uintptr
	hasData bool
}

// ReqOption configures a request prior to its submission.
type ReqOption interface {
	applyReq(*reqOptions)
}

type reqOptionImpl func(*reqOptions)

func (f reqOptionImpl) applyReq(opts *reqOptions) { f(opts) }

// WithReqData populates the request's user data slot, which is readable
// from the completion callback, via Data.
func WithReqData(data uintptr) ReqOption {
	return reqOptionImpl(func(opts *reqOptions) {
		opts.data = data
		opts.hasData = true
	})
}

func resolveReqOptions(opts []ReqOption) reqOptions {
	var cfg reqOptions
	for _, opt := range opts {
		if opt != nil {
			opt.applyReq(&cfg)
		}
	}
	return cfg
}
