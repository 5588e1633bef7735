package libuv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestFS_writeReadStat(t *testing.T) {
	l := newTestLoop(t, WithMetrics(true))
	path := filepath.Join(t.TempDir(), `data`)
	payload := []byte(`some file content`)

	var (
		stat    Stat
		read    string
		failure error
		steps   []FSType
	)
	fail := func(req *FS) bool {
		steps = append(steps, req.FSType())
		if err := req.Err(); err != nil {
			failure = err
			return true
		}
		return false
	}

	require.NoError(t, l.FSOpen(path, unix.O_CREAT|unix.O_RDWR, 0o600, func(req *FS) {
		if fail(req) {
			return
		}
		assert.Equal(t, path, req.Path())
		fd := int(req.Result())
		assert.NoError(t, l.FSWrite(fd, payload, 0, func(req *FS) {
			if fail(req) {
				return
			}
			assert.EqualValues(t, len(payload), req.Result())
			buf := NewBuf(64)
			assert.NoError(t, l.FSRead(fd, []Buf{buf}, 0, func(req *FS) {
				defer buf.Free()
				if fail(req) {
					return
				}
				read = string(buf.Bytes()[:req.Result()])
				assert.NoError(t, l.FSFstat(fd, func(req *FS) {
					if fail(req) {
						return
					}
					stat = req.Stat()
					assert.NoError(t, l.FSClose(fd, func(req *FS) { fail(req) }))
				}))
			}))
		}))
	}))
	run(t, l)

	require.NoError(t, failure)
	assert.Equal(t, []FSType{FSOpen, FSWrite, FSRead, FSFstat, FSClose}, steps)
	assert.Equal(t, string(payload), read)
	assert.EqualValues(t, len(payload), stat.Size)
	assert.False(t, stat.Mtime.IsZero())
	assert.EqualValues(t, 5, l.Metrics().Requests.Completed)
	assert.Zero(t, l.OutstandingRequests())
}

func TestFS_errors(t *testing.T) {
	l := newTestLoop(t)
	missing := filepath.Join(t.TempDir(), `missing`)

	var statErr, unlinkErr error
	require.NoError(t, l.FSStat(missing, func(req *FS) { statErr = req.Err() }))
	require.NoError(t, l.FSUnlink(missing, func(req *FS) { unlinkErr = req.Err() }))
	run(t, l)

	assert.ErrorIs(t, statErr, ENOENT)
	assert.ErrorIs(t, unlinkErr, os.ErrNotExist)
	assert.ErrorIs(t, l.FSRead(0, nil, 0, nil), EINVAL)
}

func TestFS_directories(t *testing.T) {
	l := newTestLoop(t)
	dir := t.TempDir()

	var created string
	require.NoError(t, l.FSMkdtemp(filepath.Join(dir, `tmpXXXXXX`), func(req *FS) {
		if !assert.NoError(t, req.Err()) {
			return
		}
		created = req.Path()
		renamed := created + `-renamed`
		assert.NoError(t, l.FSRename(created, renamed, func(req *FS) {
			if !assert.NoError(t, req.Err()) {
				return
			}
			assert.NoError(t, l.FSRmdir(renamed, func(req *FS) { assert.NoError(t, req.Err()) }))
		}))
	}))
	require.NoError(t, l.FSMkdir(filepath.Join(dir, `sub`), 0o755, func(req *FS) {
		assert.NoError(t, req.Err())
	}))
	run(t, l)

	assert.NotContains(t, created, `XXXXXX`)
	_, err := os.Stat(filepath.Join(dir, `sub`))
	assert.NoError(t, err)
	_, err = os.Stat(created)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
