package libuv

import (
	"reflect"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestVerifyLayout(t *testing.T) {
	require.NoError(t, VerifyLayout())
}

func TestLayout_kinds(t *testing.T) {
	for _, v := range append(handleLayouts(), reqLayouts()...) {
		t.Run(v.name, func(t *testing.T) {
			assert.Equal(t, v.engine, v.size)
			assert.NotZero(t, v.align)
			assert.Zero(t, v.size%v.align)
		})
	}
}

func TestLayout_prefixes(t *testing.T) {
	for _, v := range handleLayouts() {
		assert.GreaterOrEqual(t, v.size, unsafe.Sizeof(Handle{}), v.name)
	}
	for _, v := range reqLayouts() {
		assert.GreaterOrEqual(t, v.size, unsafe.Sizeof(Req{}), v.name)
	}
	for _, size := range []uintptr{unsafe.Sizeof(TCP{}), unsafe.Sizeof(Pipe{}), unsafe.Sizeof(TTY{})} {
		assert.GreaterOrEqual(t, size, unsafe.Sizeof(Stream{}))
	}
}

func TestLayout_streamViewsShareAddress(t *testing.T) {
	for _, tc := range []struct {
		name string
		kind HandleType
		init func(t *testing.T, l *Loop) StreamCapability
	}{
		{`tcp`, HandleTypeTCP, func(t *testing.T, l *Loop) StreamCapability {
			h, err := NewTCP(l)
			require.NoError(t, err)
			return h
		}},
		{`pipe`, HandleTypePipe, func(t *testing.T, l *Loop) StreamCapability {
			h, err := NewPipe(l, false)
			require.NoError(t, err)
			return h
		}},
		{`tty`, HandleTypeTTY, func(t *testing.T, l *Loop) StreamCapability {
			fd, err := unix.Open(`/dev/ptmx`, unix.O_RDWR|unix.O_NOCTTY, 0)
			if err != nil {
				t.Skipf(`no pseudo-terminal available: %v`, err)
			}
			// closed along with the handle
			h, err := NewTTY(l, fd)
			if err != nil {
				_ = unix.Close(fd)
				t.Skipf(`pseudo-terminal rejected: %v`, err)
			}
			return h
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			l := newTestLoop(t)
			h := tc.init(t, l)

			p := reflect.ValueOf(h).UnsafePointer()
			assert.Equal(t, p, unsafe.Pointer(h.AsStream()))
			assert.Equal(t, p, unsafe.Pointer(h.AsHandle()))
			assert.Equal(t, p, unsafe.Pointer(h.AsHandle().AsStream()))
			assert.Equal(t, tc.kind, h.Type())
			assert.Equal(t, tc.kind.Size(), h.Size())
			assert.Same(t, l, h.AsStream().Loop())
		})
	}
}

func TestLayout_viewsShareAddress(t *testing.T) {
	l := newTestLoop(t)
	tcp, err := NewTCP(l)
	require.NoError(t, err)

	assert.Same(t, tcp, tcp.AsHandle().AsTCP())
	assert.Nil(t, tcp.AsHandle().AsTimer())
	assert.Nil(t, tcp.AsHandle().AsPipe())

	pipe, err := NewPipe(l, false)
	require.NoError(t, err)
	assert.Same(t, pipe, pipe.AsHandle().AsPipe())
	assert.Nil(t, pipe.AsHandle().AsTCP())

	timer, err := NewTimer(l)
	require.NoError(t, err)
	assert.Nil(t, timer.AsHandle().AsStream())
	assert.Same(t, timer, timer.AsHandle().AsTimer())
}

func TestHandleType(t *testing.T) {
	assert.True(t, HandleTypeTCP.IsStream())
	assert.True(t, HandleTypePipe.IsStream())
	assert.True(t, HandleTypeTTY.IsStream())
	assert.False(t, HandleTypeUDP.IsStream())
	assert.False(t, HandleTypeSignal.IsStream())

	assert.Equal(t, `timer`, HandleTypeTimer.String())
	assert.Equal(t, `write`, ReqTypeWrite.String())
	assert.Equal(t, `HandleType(-1)`, HandleType(-1).String())

	assert.Zero(t, HandleTypeUnknown.Size())
	assert.Zero(t, HandleTypeHandle.Size())
	assert.Zero(t, ReqTypeReq.Size())
	assert.Zero(t, ReqTypeMax.Size())

	assert.Panics(t, func() { handleTypeOf(0) })
	assert.Panics(t, func() { reqTypeOf(0) })
}

func TestHandle_data(t *testing.T) {
	l := newTestLoop(t)
	timer, err := NewTimer(l)
	require.NoError(t, err)

	assert.Zero(t, timer.Data())
	timer.SetData(0xbeef)
	assert.EqualValues(t, 0xbeef, timer.AsHandle().Data())
	timer.ClearData()
	assert.Zero(t, timer.Data())

	assert.True(t, timer.HasRef())
	timer.Unref()
	assert.False(t, timer.HasRef())
	timer.Ref()
	assert.True(t, timer.HasRef())

	_, err = timer.Fileno()
	assert.ErrorIs(t, err, EINVAL)
}

func TestHandle_closeReleases(t *testing.T) {
	l := newTestLoop(t)
	before := OpenHandles()

	timer, err := NewTimer(l)
	require.NoError(t, err)
	assert.Equal(t, before+1, OpenHandles())

	var calls int
	timer.Close(func(h *Handle) {
		calls++
		assert.True(t, h.IsClosing())
	})
	assert.True(t, timer.IsClosing())
	run(t, l)

	assert.Equal(t, 1, calls)
	assert.Equal(t, before, OpenHandles())
}

func TestHandle_entryState(t *testing.T) {
	l := newTestLoop(t)
	idle, err := NewIdle(l)
	require.NoError(t, err)
	p := unsafe.Pointer(idle)

	e, ok := handles.load(p)
	require.True(t, ok)
	assert.True(t, e.owned)
	assert.Nil(t, e.cb)

	require.NoError(t, idle.Start(func(*Idle) {}))
	assert.IsType(t, IdleFunc(nil), e.cb)
	assert.Nil(t, e.alloc)
	assert.Nil(t, e.read)
	assert.Nil(t, e.listen)
	assert.Nil(t, e.close)

	idle.Close(nil)
	run(t, l)
	_, ok = handles.load(p)
	assert.False(t, ok)
}
