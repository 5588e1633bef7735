package libuv

import (
	"net/netip"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestQueueWork(t *testing.T) {
	l := newTestLoop(t)

	var worked atomic.Bool
	var afterErr error
	var afterCalls int
	w, err := l.QueueWork(func() { worked.Store(true) }, func(req *Work, err error) {
		afterCalls++
		afterErr = err
		assert.True(t, worked.Load())
		assert.EqualValues(t, 3, req.Data())
		assert.Same(t, l, req.Loop())
	}, WithReqData(3))
	require.NoError(t, err)
	assert.Equal(t, ReqTypeWork, w.Type())
	run(t, l)

	assert.Equal(t, 1, afterCalls)
	assert.NoError(t, afterErr)
	_, err = l.QueueWork(nil, nil)
	assert.ErrorIs(t, err, EINVAL)
}

func TestQueueWork_panic(t *testing.T) {
	l := newTestLoop(t)

	var afterErr error
	_, err := l.QueueWork(func() { panic(`in pool`) }, func(_ *Work, err error) { afterErr = err })
	require.NoError(t, err)
	run(t, l)

	var p *PanicError
	require.ErrorAs(t, afterErr, &p)
	assert.Equal(t, `in pool`, p.Value)
}

func TestRandom(t *testing.T) {
	l := newTestLoop(t)

	var data []byte
	require.NoError(t, l.Random(32, func(req *Random, b []byte, err error) {
		assert.NoError(t, err)
		assert.Equal(t, ReqTypeRandom, req.Type())
		data = b
	}))
	run(t, l)
	assert.Len(t, data, 32)

	b := make([]byte, 16)
	require.NoError(t, RandomBytes(b))
	assert.NotEqual(t, make([]byte, 16), b)
	assert.ErrorIs(t, l.Random(-1, nil), EINVAL)
}

func TestGetAddrInfo(t *testing.T) {
	l := newTestLoop(t)

	var addrs []AddrInfo
	var resolveErr error
	require.NoError(t, l.GetAddrInfo(`127.0.0.1`, `80`, &AddrInfoHints{Family: unix.AF_INET, SockType: unix.SOCK_STREAM, Flags: AddrInfoNumericHost}, func(req *GetAddrInfo, a []AddrInfo, err error) {
		addrs, resolveErr = a, err
	}))
	run(t, l)

	require.NoError(t, resolveErr)
	require.NotEmpty(t, addrs)
	assert.Equal(t, netip.MustParseAddrPort(`127.0.0.1:80`), addrs[0].Addr)
	assert.ErrorIs(t, l.GetAddrInfo(``, ``, nil, nil), EINVAL)
}

func TestGetNameInfo(t *testing.T) {
	l := newTestLoop(t)

	var host, service string
	var resolveErr error
	require.NoError(t, l.GetNameInfo(netip.MustParseAddrPort(`127.0.0.1:80`), NameInfoNumericHost|NameInfoNumericServ, func(req *GetNameInfo, h, s string, err error) {
		host, service, resolveErr = h, s, err
	}))
	run(t, l)

	require.NoError(t, resolveErr)
	assert.Equal(t, `127.0.0.1`, host)
	assert.Equal(t, `80`, service)
}

func TestWork_cancel(t *testing.T) {
	l := newTestLoop(t)

	// occupy the pool, so the last request is still queued when cancelled
	block := make(chan struct{})
	for range 4 {
		_, err := l.QueueWork(func() { <-block }, nil)
		require.NoError(t, err)
	}

	var ran atomic.Bool
	var afterErr error
	w, err := l.QueueWork(func() { ran.Store(true) }, func(_ *Work, err error) { afterErr = err })
	require.NoError(t, err)

	cancelErr := w.Cancel()
	close(block)
	run(t, l)

	if cancelErr != nil {
		// the pool is larger than the default, and the request already started
		assert.ErrorIs(t, cancelErr, EBUSY)
		return
	}
	assert.ErrorIs(t, afterErr, ECANCELED)
	assert.False(t, ran.Load())
}

func TestRequestKinds_cancelMethod(t *testing.T) {
	type canceller interface{ Cancel() error }
	for _, tc := range []struct {
		req    RequestCapability
		cancel bool
	}{
		{(*Work)(nil), true},
		{(*FS)(nil), false},
		{(*GetAddrInfo)(nil), false},
		{(*GetNameInfo)(nil), false},
		{(*Random)(nil), false},
		{(*Write)(nil), false},
	} {
		_, ok := tc.req.(canceller)
		assert.Equal(t, tc.cancel, ok, `%T`, tc.req)
	}
}
