package libuv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// socketPipe returns a pipe handle over one end of a socketpair, and the
// raw descriptor of the other end.
func socketPipe(t *testing.T, l *Loop) (*Pipe, int) {
	t.Helper()
	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM, 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = unix.Close(fds[1]) })
	p, err := NewPipe(l, false)
	require.NoError(t, err)
	require.NoError(t, p.Open(fds[0]))
	return p, fds[1]
}

func TestWrite_completesOnce(t *testing.T) {
	l := newTestLoop(t, WithMetrics(true))
	p, peer := socketPipe(t, l)
	before := OutstandingRequests()

	var calls int
	require.NoError(t, p.WriteBytes([]byte(`hello`), func(req *Write, err error) {
		calls++
		assert.NoError(t, err)
		assert.Equal(t, ReqTypeWrite, req.Type())
		assert.EqualValues(t, 7, req.Data())
		assert.Equal(t, ReqCompleted, req.AsReq().State())
		assert.Same(t, p.AsStream(), req.Handle())
		p.Close(nil)
	}, WithReqData(7)))
	assert.Equal(t, before+1, OutstandingRequests())
	assert.Equal(t, 1, l.OutstandingRequests())

	run(t, l)

	assert.Equal(t, 1, calls)
	assert.Equal(t, before, OutstandingRequests())

	buf := make([]byte, 16)
	n, err := unix.Read(peer, buf)
	require.NoError(t, err)
	assert.Equal(t, `hello`, string(buf[:n]))

	m := l.Metrics()
	assert.EqualValues(t, 1, m.Requests.Submitted)
	assert.EqualValues(t, 1, m.Requests.Completed)
	assert.Zero(t, m.Requests.SubmitFailed)
}

func TestWrite_submitFailure(t *testing.T) {
	var logs syncBuffer
	l := newTestLoop(t, WithLogger(newTestLogger(&logs)), WithMetrics(true))
	// never opened, so there is no descriptor to write to
	p, err := NewPipe(l, false)
	require.NoError(t, err)
	before := OutstandingRequests()

	var calls int
	err = p.WriteBytes([]byte(`x`), func(*Write, error) { calls++ })
	assert.ErrorIs(t, err, EBADF)
	assert.Equal(t, before, OutstandingRequests())

	p.Close(nil)
	run(t, l)
	assert.Zero(t, calls)
	assert.EqualValues(t, 1, l.Metrics().Requests.SubmitFailed)
	assert.Contains(t, logs.String(), `request submission failed`)
}

func TestWrite_emptyBufs(t *testing.T) {
	l := newTestLoop(t)
	p, _ := socketPipe(t, l)
	assert.ErrorIs(t, p.Write(nil, nil), EINVAL)
}

func TestWrite_callerBufs(t *testing.T) {
	l := newTestLoop(t)
	p, peer := socketPipe(t, l)

	a, b := BufFromBytes([]byte(`foo`)), BufFromBytes([]byte(`bar`))
	defer a.Free()
	defer b.Free()

	var done bool
	require.NoError(t, p.Write([]Buf{a, b}, func(_ *Write, err error) {
		done = true
		assert.NoError(t, err)
		p.Close(nil)
	}))
	run(t, l)
	assert.True(t, done)

	buf := make([]byte, 16)
	n, err := unix.Read(peer, buf)
	require.NoError(t, err)
	assert.Equal(t, `foobar`, string(buf[:n]))
}

func TestShutdown(t *testing.T) {
	l := newTestLoop(t)
	p, peer := socketPipe(t, l)

	var shutErr error
	var called bool
	require.NoError(t, p.Shutdown(func(req *Shutdown, err error) {
		called, shutErr = true, err
		assert.Same(t, p.AsStream(), req.Handle())
		p.Close(nil)
	}))
	run(t, l)
	require.True(t, called)
	assert.NoError(t, shutErr)

	// peer observes end of stream
	n, err := unix.Read(peer, make([]byte, 1))
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestReqState_String(t *testing.T) {
	assert.Equal(t, `Submitted`, ReqSubmitted.String())
	assert.Equal(t, `SubmitFailed`, ReqSubmitFailed.String())
}
