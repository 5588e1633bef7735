package libuv

/*
#include "uvgo.h"
*/
import "C"

import (
	"time"
	"unsafe"
)

// FS is a filesystem request. Operations are always asynchronous, being
// executed on the engine's thread pool, and completed on the loop.
type FS C.uv_fs_t

// FSFunc is called exactly once per successfully submitted filesystem
// request. The request, and anything it references (e.g. Stat), is only
// valid for the duration of the call.
type FSFunc func(req *FS)

// FSType identifies the filesystem operation.
type FSType int

const (
	FSUnknown FSType = C.UV_FS_UNKNOWN
	FSOpen    FSType = C.UV_FS_OPEN
	FSClose   FSType = C.UV_FS_CLOSE
	FSRead    FSType = C.UV_FS_READ
	FSWrite   FSType = C.UV_FS_WRITE
	FSStat    FSType = C.UV_FS_STAT
	FSFstat   FSType = C.UV_FS_FSTAT
	FSFsync   FSType = C.UV_FS_FSYNC
	FSUnlink  FSType = C.UV_FS_UNLINK
	FSMkdir   FSType = C.UV_FS_MKDIR
	FSMkdtemp FSType = C.UV_FS_MKDTEMP
	FSRmdir   FSType = C.UV_FS_RMDIR
	FSRename  FSType = C.UV_FS_RENAME
)

func (t FSType) String() string {
	switch t {
	case FSOpen:
		return "open"
	case FSClose:
		return "close"
	case FSRead:
		return "read"
	case FSWrite:
		return "write"
	case FSStat:
		return "stat"
	case FSFstat:
		return "fstat"
	case FSFsync:
		return "fsync"
	case FSUnlink:
		return "unlink"
	case FSMkdir:
		return "mkdir"
	case FSMkdtemp:
		return "mkdtemp"
	case FSRmdir:
		return "rmdir"
	case FSRename:
		return "rename"
	default:
		return "unknown"
	}
}

// Stat mirrors the engine's portable stat structure.
type Stat struct {
	Atime     time.Time
	Mtime     time.Time
	Ctime     time.Time
	Birthtime time.Time
	Dev       uint64
	Mode      uint64
	Nlink     uint64
	UID       uint64
	GID       uint64
	Rdev      uint64
	Ino       uint64
	Size      uint64
	Blksize   uint64
	Blocks    uint64
	Flags     uint64
	Gen       uint64
}

func timespec(ts C.uv_timespec_t) time.Time {
	return time.Unix(int64(ts.tv_sec), int64(ts.tv_nsec))
}

func (r *FS) native() *C.uv_fs_t { return (*C.uv_fs_t)(unsafe.Pointer(r)) }

func (r *FS) Loop() *Loop { return (*Loop)(unsafe.Pointer(r.native().loop)) }

func (r *FS) FSType() FSType { return FSType(C.uv_fs_get_type(r.native())) }

// Result returns the raw result, e.g. the descriptor for FSOpen, or the
// byte count for FSRead. It is negative on failure, see Err.
func (r *FS) Result() int64 { return int64(C.uv_fs_get_result(r.native())) }

// Err returns the error the operation failed with, if any.
func (r *FS) Err() error {
	if n := r.Result(); n < 0 {
		return FromCode(int(n))
	}
	return nil
}

// Path returns the path the operation was given, or for FSMkdtemp, the
// path created.
func (r *FS) Path() string {
	if p := C.uv_fs_get_path(r.native()); p != nil {
		return C.GoString(p)
	}
	return ""
}

// Stat returns the result of FSStat or FSFstat.
func (r *FS) Stat() Stat {
	s := C.uv_fs_get_statbuf(r.native())
	return Stat{
		Atime:     timespec(s.st_atim),
		Mtime:     timespec(s.st_mtim),
		Ctime:     timespec(s.st_ctim),
		Birthtime: timespec(s.st_birthtim),
		Dev:       uint64(s.st_dev),
		Mode:      uint64(s.st_mode),
		Nlink:     uint64(s.st_nlink),
		UID:       uint64(s.st_uid),
		GID:       uint64(s.st_gid),
		Rdev:      uint64(s.st_rdev),
		Ino:       uint64(s.st_ino),
		Size:      uint64(s.st_size),
		Blksize:   uint64(s.st_blksize),
		Blocks:    uint64(s.st_blocks),
		Flags:     uint64(s.st_flags),
		Gen:       uint64(s.st_gen),
	}
}

// fs submits a filesystem request. Paths passed to the engine are copied by
// it, so they may be released once submit returns.
func (l *Loop) fs(cb FSFunc, opts []ReqOption, owned []unsafe.Pointer, submit func(r *C.uv_fs_t) C.int) error {
	p, e := newReq(l, ReqTypeFS, cb, opts)
	r := (*C.uv_fs_t)(p)
	e.owned = owned
	e.cleanup = func() { C.uv_fs_req_cleanup(r) }
	return submitReq(p, e, func() C.int { return submit(r) })
}

func fsCb() C.uv_fs_cb { return C.uv_fs_cb(C.uvgoFSCb) }

// FSOpen opens path, see open(2) for flags and mode.
func (l *Loop) FSOpen(path string, flags, mode int, cb FSFunc, opts ...ReqOption) error {
	s := C.CString(path)
	defer C.free(unsafe.Pointer(s))
	return l.fs(cb, opts, nil, func(r *C.uv_fs_t) C.int {
		return C.uv_fs_open(l.native(), r, s, C.int(flags), C.int(mode), fsCb())
	})
}

func (l *Loop) FSClose(file int, cb FSFunc, opts ...ReqOption) error {
	return l.fs(cb, opts, nil, func(r *C.uv_fs_t) C.int {
		return C.uv_fs_close(l.native(), r, C.uv_file(file), fsCb())
	})
}

// FSRead reads into bufs, which must remain valid until cb is called. A
// negative offset reads from the current file position.
func (l *Loop) FSRead(file int, bufs []Buf, offset int64, cb FSFunc, opts ...ReqOption) error {
	if len(bufs) == 0 {
		return EINVAL
	}
	return l.fs(cb, opts, nil, func(r *C.uv_fs_t) C.int {
		return C.uv_fs_read(l.native(), r, C.uv_file(file), bufsPtr(bufs), C.uint(len(bufs)), C.int64_t(offset), fsCb())
	})
}

// FSWrite writes a copy of b. A negative offset writes at the current file
// position.
func (l *Loop) FSWrite(file int, b []byte, offset int64, cb FSFunc, opts ...ReqOption) error {
	mem := cbytes(b)
	bufs := [1]Buf{BufFrom(mem, len(b))}
	return l.fs(cb, opts, []unsafe.Pointer{mem}, func(r *C.uv_fs_t) C.int {
		return C.uv_fs_write(l.native(), r, C.uv_file(file), bufsPtr(bufs[:]), 1, C.int64_t(offset), fsCb())
	})
}

func (l *Loop) FSStat(path string, cb FSFunc, opts ...ReqOption) error {
	s := C.CString(path)
	defer C.free(unsafe.Pointer(s))
	return l.fs(cb, opts, nil, func(r *C.uv_fs_t) C.int {
		return C.uv_fs_stat(l.native(), r, s, fsCb())
	})
}

func (l *Loop) FSFstat(file int, cb FSFunc, opts ...ReqOption) error {
	return l.fs(cb, opts, nil, func(r *C.uv_fs_t) C.int {
		return C.uv_fs_fstat(l.native(), r, C.uv_file(file), fsCb())
	})
}

func (l *Loop) FSFsync(file int, cb FSFunc, opts ...ReqOption) error {
	return l.fs(cb, opts, nil, func(r *C.uv_fs_t) C.int {
		return C.uv_fs_fsync(l.native(), r, C.uv_file(file), fsCb())
	})
}

func (l *Loop) FSUnlink(path string, cb FSFunc, opts ...ReqOption) error {
	s := C.CString(path)
	defer C.free(unsafe.Pointer(s))
	return l.fs(cb, opts, nil, func(r *C.uv_fs_t) C.int {
		return C.uv_fs_unlink(l.native(), r, s, fsCb())
	})
}

func (l *Loop) FSMkdir(path string, mode int, cb FSFunc, opts ...ReqOption) error {
	s := C.CString(path)
	defer C.free(unsafe.Pointer(s))
	return l.fs(cb, opts, nil, func(r *C.uv_fs_t) C.int {
		return C.uv_fs_mkdir(l.native(), r, s, C.int(mode), fsCb())
	})
}

// FSMkdtemp creates a unique directory, from a template ending in XXXXXX.
// The created path is reported by FS.Path.
func (l *Loop) FSMkdtemp(template string, cb FSFunc, opts ...ReqOption) error {
	s := C.CString(template)
	defer C.free(unsafe.Pointer(s))
	return l.fs(cb, opts, nil, func(r *C.uv_fs_t) C.int {
		return C.uv_fs_mkdtemp(l.native(), r, s, fsCb())
	})
}

func (l *Loop) FSRmdir(path string, cb FSFunc, opts ...ReqOption) error {
	s := C.CString(path)
	defer C.free(unsafe.Pointer(s))
	return l.fs(cb, opts, nil, func(r *C.uv_fs_t) C.int {
		return C.uv_fs_rmdir(l.native(), r, s, fsCb())
	})
}

func (l *Loop) FSRename(path, newPath string, cb FSFunc, opts ...ReqOption) error {
	s := C.CString(path)
	defer C.free(unsafe.Pointer(s))
	n := C.CString(newPath)
	defer C.free(unsafe.Pointer(n))
	return l.fs(cb, opts, nil, func(r *C.uv_fs_t) C.int {
		return C.uv_fs_rename(l.native(), r, s, n, fsCb())
	})
}
