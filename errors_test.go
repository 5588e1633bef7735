package libuv

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestErrors_roundTrip(t *testing.T) {
	all := Errors()
	require.NotEmpty(t, all)
	for _, e := range all {
		t.Run(e.Name(), func(t *testing.T) {
			code := e.Code()
			assert.Less(t, code, 0)
			assert.Equal(t, e, FromCode(code))
			// older engines predate some codes, and name them generically
			if name := nativeErrName(code); !strings.HasPrefix(name, `Unknown`) {
				assert.Equal(t, e.Name(), name)
			}
			assert.Contains(t, e.Error(), e.Name()+`: `)
		})
	}
}

func TestErrors_noDuplicateCodes(t *testing.T) {
	seen := make(map[int]Error)
	for _, e := range Errors() {
		if prev, ok := seen[e.Code()]; ok {
			t.Fatalf(`%s and %s share code %d`, prev, e, e.Code())
		}
		seen[e.Code()] = e
	}
}

func TestFromCode_unknown(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		var abi *ABIError
		require.ErrorAs(t, r.(error), &abi)
		assert.Equal(t, `error code`, abi.Kind)
		assert.Equal(t, -123456, abi.Value)
	}()
	FromCode(-123456)
	t.Fatal(`expected panic`)
}

func TestLookupCode(t *testing.T) {
	e, ok := LookupCode(ECONNREFUSED.Code())
	assert.True(t, ok)
	assert.Equal(t, ECONNREFUSED, e)

	_, ok = LookupCode(1)
	assert.False(t, ok)
}

func TestError_Valid(t *testing.T) {
	assert.False(t, Error(0).Valid())
	assert.True(t, EINVAL.Valid())
	assert.Equal(t, `Error(0)`, Error(0).Name())
	assert.Panics(t, func() { Error(0).Code() })
}

func TestError_Is(t *testing.T) {
	assert.ErrorIs(t, EOF, io.EOF)
	assert.NotErrorIs(t, EINVAL, io.EOF)
	assert.ErrorIs(t, ECONNREFUSED, unix.ECONNREFUSED)
	assert.ErrorIs(t, ENOENT, unix.ENOENT)
	assert.NotErrorIs(t, ENOENT, unix.EEXIST)
	assert.NotErrorIs(t, EAI_AGAIN, unix.EAGAIN)

	var err error = EPIPE
	assert.True(t, errors.Is(err, unix.EPIPE))
}

func TestError_Errno(t *testing.T) {
	errno, ok := EACCES.Errno()
	assert.True(t, ok)
	assert.Equal(t, unix.EACCES, errno)

	_, ok = EOF.Errno()
	assert.False(t, ok)

	e, ok := ErrorFromErrno(unix.ETIMEDOUT)
	assert.True(t, ok)
	assert.Equal(t, ETIMEDOUT, e)
}

func TestCheckCode(t *testing.T) {
	assert.NoError(t, checkCode(0))
	assert.NoError(t, checkCode(7))
	assert.Equal(t, EINVAL, checkCode(-22))
}

func TestPanicError_Unwrap(t *testing.T) {
	cause := errors.New(`cause`)
	assert.ErrorIs(t, &PanicError{Value: cause}, cause)
	assert.NoError(t, (&PanicError{Value: `boom`}).Unwrap())
	assert.Contains(t, (&PanicError{Value: `boom`}).Error(), `boom`)
}
