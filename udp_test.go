package libuv

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestUDP_sendRecv(t *testing.T) {
	l := newTestLoop(t)

	rx, err := NewUDP(l)
	require.NoError(t, err)
	require.NoError(t, rx.Bind(loopback, UDPReuseAddr))
	rxAddr, err := rx.Sockname()
	require.NoError(t, err)

	tx, err := NewUDP(l)
	require.NoError(t, err)
	require.NoError(t, tx.Bind(loopback, 0))
	txAddr, err := tx.Sockname()
	require.NoError(t, err)

	var got string
	var from netip.AddrPort
	require.NoError(t, rx.RecvStart(nil, func(h *UDP, nread int, buf Buf, addr netip.AddrPort, flags UDPFlags, err error) {
		if !assert.NoError(t, err) {
			return
		}
		if nread == 0 && !addr.IsValid() {
			return
		}
		got, from = string(buf.Bytes()[:nread]), addr
		assert.Zero(t, flags&UDPPartial)
		assert.NoError(t, h.RecvStop())
		h.Close(nil)
	}))

	var sent bool
	require.NoError(t, tx.SendBytes([]byte(`datagram`), rxAddr, func(req *UDPSend, err error) {
		sent = true
		assert.NoError(t, err)
		assert.Same(t, tx, req.Handle())
		tx.Close(nil)
	}))

	run(t, l)
	assert.True(t, sent)
	assert.Equal(t, `datagram`, got)
	assert.Equal(t, txAddr, from)
}

func TestUDP_connected(t *testing.T) {
	l := newTestLoop(t)
	rx, err := NewUDP(l)
	require.NoError(t, err)
	require.NoError(t, rx.Bind(loopback, 0))
	rxAddr, err := rx.Sockname()
	require.NoError(t, err)

	tx, err := NewUDP(l)
	require.NoError(t, err)
	require.NoError(t, tx.Connect(rxAddr))
	peer, err := tx.Peername()
	require.NoError(t, err)
	assert.Equal(t, rxAddr, peer)

	b := BufFromBytes([]byte(`x`))
	defer b.Free()
	n, err := tx.TrySend([]Buf{b}, netip.AddrPort{})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, tx.Connect(netip.AddrPort{}))
	_, err = tx.Peername()
	assert.ErrorIs(t, err, ENOTCONN)

	assert.NoError(t, tx.SetTTL(32))
	assert.NoError(t, tx.SetBroadcast(true))
}

func TestUDP_emptySend(t *testing.T) {
	l := newTestLoop(t)
	h, err := NewUDP(l)
	require.NoError(t, err)
	assert.ErrorIs(t, h.Send(nil, loopback, nil), EINVAL)
	assert.ErrorIs(t, h.RecvStart(nil, nil), EINVAL)
}

func TestUDPFlags_releasesBuf(t *testing.T) {
	for _, tc := range [...]struct {
		flags UDPFlags
		want  bool
	}{
		{0, true},
		{UDPPartial, true},
		{UDPMmsgFree, true},
		{UDPMmsgChunk, false},
		{UDPMmsgChunk | UDPPartial, false},
	} {
		assert.Equal(t, tc.want, tc.flags.releasesBuf(), `flags %#x`, uint(tc.flags))
	}
}

func TestUDP_recvMmsgDefaultAlloc(t *testing.T) {
	l := newTestLoop(t)

	rx, err := NewUDPEx(l, unix.AF_INET|int(UDPRecvMmsg))
	require.NoError(t, err)
	require.NoError(t, rx.Bind(loopback, 0))
	rxAddr, err := rx.Sockname()
	require.NoError(t, err)

	tx, err := NewUDP(l)
	require.NoError(t, err)

	const count = 3
	var got []string
	require.NoError(t, rx.RecvStart(nil, func(h *UDP, nread int, buf Buf, addr netip.AddrPort, flags UDPFlags, err error) {
		if !assert.NoError(t, err) {
			h.Close(nil)
			return
		}
		if nread > 0 {
			got = append(got, string(buf.Bytes()[:nread]))
		}
		// the batch buffer is released by the callback without the chunk flag
		if len(got) == count && flags&UDPMmsgChunk == 0 {
			assert.NoError(t, h.RecvStop())
			h.Close(nil)
		}
	}))

	var sent int
	for _, msg := range [count]string{`one`, `two`, `three`} {
		require.NoError(t, tx.SendBytes([]byte(msg), rxAddr, func(req *UDPSend, err error) {
			assert.NoError(t, err)
			if sent++; sent == count {
				tx.Close(nil)
			}
		}))
	}

	run(t, l)
	assert.Equal(t, count, sent)
	assert.Equal(t, []string{`one`, `two`, `three`}, got)
}
