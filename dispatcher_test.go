package libuv

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsync_send(t *testing.T) {
	l := newTestLoop(t)

	var calls atomic.Int32
	async, err := NewAsync(l, func(h *Async) {
		calls.Add(1)
		h.Close(nil)
	})
	require.NoError(t, err)
	assert.True(t, async.IsActive())

	go func() { _ = async.Send() }()
	run(t, l)
	assert.EqualValues(t, 1, calls.Load())
}

func TestAsync_nilCallback(t *testing.T) {
	l := newTestLoop(t)
	_, err := NewAsync(l, nil)
	assert.ErrorIs(t, err, EINVAL)
}

func TestDispatcher_submit(t *testing.T) {
	l := newTestLoop(t)
	d, err := NewDispatcher(l, WithBatchSize(4), WithFlushInterval(time.Millisecond))
	require.NoError(t, err)

	const producers = 8
	const perProducer = 25

	var (
		ran   int // only touched on the loop goroutine
		wg    sync.WaitGroup
		mu    sync.Mutex
		fails []error
	)
	for range producers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perProducer {
				if err := d.Submit(context.Background(), func() { ran++ }); err != nil {
					mu.Lock()
					fails = append(fails, err)
					mu.Unlock()
				}
			}
		}()
	}
	go func() {
		wg.Wait()
		_ = d.Submit(context.Background(), func() { assert.NoError(t, d.Close()) })
	}()

	run(t, l)
	assert.Empty(t, fails)
	assert.Equal(t, producers*perProducer, ran)
	assert.ErrorIs(t, d.Close(), ErrDispatcherClosed)
	assert.ErrorIs(t, d.Submit(context.Background(), func() {}), ErrDispatcherClosed)
}

func TestDispatcher_panicFailsSubmission(t *testing.T) {
	var logs syncBuffer
	l := newTestLoop(t, WithLogger(newTestLogger(&logs)))
	d, err := NewDispatcher(l)
	require.NoError(t, err)

	errCh := make(chan error, 1)
	go func() {
		errCh <- d.Submit(context.Background(), func() { panic(`dispatched`) })
		_ = d.Submit(context.Background(), func() { _ = d.Close() })
	}()

	run(t, l)
	err = <-errCh
	var p *PanicError
	require.ErrorAs(t, err, &p)
	assert.Equal(t, `dispatched`, p.Value)
	assert.Contains(t, logs.String(), `recovered dispatched function panic`)
}

func TestDispatcher_contextDone(t *testing.T) {
	l := newTestLoop(t)
	d, err := NewDispatcher(l)
	require.NoError(t, err)
	defer func() { _ = d.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, d.Submit(ctx, func() {}), context.Canceled)
	assert.ErrorIs(t, d.Submit(context.Background(), nil), EINVAL)
}
