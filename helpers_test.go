package libuv

import (
	"bytes"
	"sync"
	"testing"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
	"github.com/stretchr/testify/require"
)

// newTestLoop returns a loop that is torn down at the end of the test,
// closing any handles the test left open.
func newTestLoop(t *testing.T, opts ...LoopOption) *Loop {
	t.Helper()
	l, err := NewLoop(opts...)
	require.NoError(t, err)
	t.Cleanup(func() { closeLoop(t, l) })
	return l
}

func closeLoop(t *testing.T, l *Loop) {
	t.Helper()
	if l.State() == StateClosed {
		return
	}
	l.Walk(func(h *Handle) {
		if !h.IsClosing() {
			h.Close(nil)
		}
	})
	_, _ = l.Run(RunDefault)
	require.NoError(t, l.Close())
}

// run drives l until it has nothing left to do, failing the test on error.
func run(t *testing.T, l *Loop) {
	t.Helper()
	more, err := l.Run(RunDefault)
	require.NoError(t, err)
	require.False(t, more)
}

// syncBuffer is a bytes.Buffer safe for use by a logger and the test.
type syncBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newTestLogger(w *syncBuffer) *logiface.Logger[logiface.Event] {
	return stumpy.L.New(
		stumpy.L.WithStumpy(stumpy.WithWriter(w), stumpy.WithTimeField(``)),
		stumpy.L.WithLevel(logiface.LevelTrace),
	).Logger()
}
