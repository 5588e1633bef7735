package libuv

import (
	"context"
	"errors"
	"runtime/debug"
	"sync"
	"time"

	"github.com/joeycumines/go-microbatch"
	"github.com/joeycumines/logiface"
)

// Dispatcher runs functions on a loop's goroutine, on behalf of any other
// goroutine. Submissions are batched, and each batch wakes the loop with a
// single Async.Send.
//
// The dispatcher's async handle keeps the loop alive, until Close.
type Dispatcher struct {
	loop    *Loop
	async   *Async
	batcher *microbatch.Batcher[*dispatchJob]
	queue   []*dispatchJob
	mu      sync.Mutex
	closed  bool
}

type dispatchJob struct {
	fn   func()
	err  error
	done chan struct{}
}

func (j *dispatchJob) finish(err error) {
	j.err = err
	close(j.done)
}

// dispatcherOptions holds configuration options for NewDispatcher.
type dispatcherOptions struct {
	maxSize       int
	flushInterval time.Duration
}

// DispatcherOption configures a Dispatcher instance.
type DispatcherOption interface {
	applyDispatcher(*dispatcherOptions)
}

type dispatcherOptionImpl func(*dispatcherOptions)

func (f dispatcherOptionImpl) applyDispatcher(opts *dispatcherOptions) { f(opts) }

// WithBatchSize sets the maximum number of functions per wakeup. Defaults
// to 64.
func WithBatchSize(n int) DispatcherOption {
	return dispatcherOptionImpl(func(opts *dispatcherOptions) {
		if n > 0 {
			opts.maxSize = n
		}
	})
}

// WithFlushInterval sets the maximum delay before an incomplete batch wakes
// the loop. Defaults to 1ms.
func WithFlushInterval(d time.Duration) DispatcherOption {
	return dispatcherOptionImpl(func(opts *dispatcherOptions) {
		if d > 0 {
			opts.flushInterval = d
		}
	})
}

// NewDispatcher initializes a dispatcher against l. It must be called from
// the loop goroutine, as must Close.
func NewDispatcher(l *Loop, opts ...DispatcherOption) (*Dispatcher, error) {
	cfg := dispatcherOptions{
		maxSize:       64,
		flushInterval: time.Millisecond,
	}
	for _, opt := range opts {
		if opt != nil {
			opt.applyDispatcher(&cfg)
		}
	}

	d := &Dispatcher{loop: l}
	async, err := NewAsync(l, func(*Async) { d.drain() })
	if err != nil {
		return nil, err
	}
	d.async = async
	d.batcher = microbatch.NewBatcher(&microbatch.BatcherConfig{
		MaxSize:       cfg.maxSize,
		FlushInterval: cfg.flushInterval,
	}, d.process)
	return d, nil
}

// process is the batch processor, which hands the batch to the loop.
func (d *Dispatcher) process(_ context.Context, jobs []*dispatchJob) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return ErrDispatcherClosed
	}
	d.queue = append(d.queue, jobs...)
	d.mu.Unlock()
	return d.async.Send()
}

// drain runs every queued function, on the loop goroutine. A panicking
// function fails its own submission, without stopping the loop.
func (d *Dispatcher) drain() {
	d.mu.Lock()
	jobs := d.queue
	d.queue = nil
	d.mu.Unlock()
	for _, job := range jobs {
		job.finish(d.run(job.fn))
	}
}

func (d *Dispatcher) run(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			p := &PanicError{Value: r, Stack: debug.Stack()}
			if e := d.loop.entry(); e != nil {
				e.diag.build(logiface.LevelError, diagDispatch).
					Any(`panic`, r).
					Log(`recovered dispatched function panic`)
			}
			err = p
		}
	}()
	fn()
	return nil
}

// Submit runs fn on the loop goroutine, blocking until it has returned, or
// ctx is done. It must not be called from the loop goroutine. If ctx is
// done after fn was handed to the loop, fn may still run.
func (d *Dispatcher) Submit(ctx context.Context, fn func()) error {
	if fn == nil {
		return EINVAL
	}
	job := &dispatchJob{fn: fn, done: make(chan struct{})}
	res, err := d.batcher.Submit(ctx, job)
	if err != nil {
		return d.submitErr(err)
	}
	if err := res.Wait(ctx); err != nil {
		return d.submitErr(err)
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-job.done:
		return job.err
	}
}

func (d *Dispatcher) submitErr(err error) error {
	d.mu.Lock()
	closed := d.closed
	d.mu.Unlock()
	if closed && !errors.Is(err, ErrDispatcherClosed) {
		return ErrDispatcherClosed
	}
	return err
}

// Close stops accepting submissions, fails any that have not yet run with
// ErrDispatcherClosed, and closes the async handle.
func (d *Dispatcher) Close() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return ErrDispatcherClosed
	}
	d.closed = true
	d.mu.Unlock()

	_ = d.batcher.Close()

	d.mu.Lock()
	jobs := d.queue
	d.queue = nil
	d.mu.Unlock()
	for _, job := range jobs {
		job.finish(ErrDispatcherClosed)
	}

	d.async.Close(nil)
	return nil
}
