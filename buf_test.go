package libuv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBuf(t *testing.T) {
	b := NewBuf(16)
	defer b.Free()
	assert.False(t, b.IsNil())
	assert.Equal(t, 16, b.Len())
	assert.Equal(t, make([]byte, 16), b.Bytes())

	copy(b.Bytes(), `hello, world`)
	s := b.Slice(7, 12)
	assert.Equal(t, `world`, string(s.Bytes()))
	assert.Equal(t, b.Base(), b.Slice(0, 0).Base())

	assert.Panics(t, func() { b.Slice(4, 2) })
	assert.Panics(t, func() { b.Slice(0, 17) })
	assert.Panics(t, func() { b.Slice(-1, 1) })
	assert.Panics(t, func() { NewBuf(-1) })
}

func TestBufFromBytes(t *testing.T) {
	src := []byte(`abc`)
	b := BufFromBytes(src)
	src[0] = 'x'
	assert.Equal(t, `abc`, string(b.Bytes()))

	view := BufFrom(b.Base(), 2)
	assert.Equal(t, `ab`, string(view.Bytes()))

	b.Free()
	assert.True(t, b.IsNil())
	assert.Zero(t, b.Len())
	assert.Nil(t, b.Bytes())
	// idempotent
	b.Free()
}

func TestBuf_zero(t *testing.T) {
	var b Buf
	assert.True(t, b.IsNil())
	assert.Nil(t, b.Bytes())
	assert.Nil(t, bufsPtr(nil))
}
