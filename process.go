package libuv

/*
#include "uvgo.h"
*/
import "C"

import (
	"unsafe"
)

// Process is a child process, created by Spawn.
type Process C.uv_process_t

// ExitFunc is called when a spawned process exits. The handle must still be
// closed.
type ExitFunc func(h *Process, exitStatus int64, termSignal int)

// ProcessFlags modify Spawn.
type ProcessFlags uint

const (
	ProcessSetUID                   ProcessFlags = C.UV_PROCESS_SETUID
	ProcessSetGID                   ProcessFlags = C.UV_PROCESS_SETGID
	ProcessWindowsVerbatimArguments ProcessFlags = C.UV_PROCESS_WINDOWS_VERBATIM_ARGUMENTS
	ProcessDetached                 ProcessFlags = C.UV_PROCESS_DETACHED
	ProcessWindowsHide              ProcessFlags = C.UV_PROCESS_WINDOWS_HIDE
	ProcessWindowsHideConsole       ProcessFlags = C.UV_PROCESS_WINDOWS_HIDE_CONSOLE
	ProcessWindowsHideGUI           ProcessFlags = C.UV_PROCESS_WINDOWS_HIDE_GUI
)

// ProcessOptions configures Spawn. File is resolved using PATH, and Args
// should include the program name, as argv[0]. A nil Env inherits the
// parent's environment. UID and GID apply only with the corresponding flag.
type ProcessOptions struct {
	File  string
	Cwd   string
	Args  []string
	Env   []string
	Stdio []StdioContainer
	Flags ProcessFlags
	UID   uint32
	GID   uint32
}

// cstrings returns a NULL-terminated array of C strings, and a function
// releasing it. A nil slice yields a nil array.
func cstrings(s []string) (**C.char, func()) {
	if s == nil {
		return nil, func() {}
	}
	arr := (**C.char)(cmalloc(uintptr(len(s)+1) * unsafe.Sizeof((*C.char)(nil))))
	v := unsafe.Slice(arr, len(s)+1)
	for i, str := range s {
		v[i] = C.CString(str)
	}
	return arr, func() {
		for _, p := range v {
			if p != nil {
				C.free(unsafe.Pointer(p))
			}
		}
		cfree(unsafe.Pointer(arr))
	}
}

// Spawn starts a child process, calling exit (which may be nil) when it
// terminates.
//
// A failed spawn still initializes the handle, so it is closed internally,
// and the memory released by a subsequent Run of l.
func Spawn(l *Loop, opts ProcessOptions, exit ExitFunc) (*Process, error) {
	if opts.File == "" {
		return nil, EINVAL
	}

	var o C.uv_process_options_t
	file := C.CString(opts.File)
	defer C.free(unsafe.Pointer(file))
	o.file = file

	args := opts.Args
	if len(args) == 0 {
		args = []string{opts.File}
	}
	argv, freeArgs := cstrings(args)
	defer freeArgs()
	o.args = argv

	env, freeEnv := cstrings(opts.Env)
	defer freeEnv()
	o.env = env

	if opts.Cwd != "" {
		cwd := C.CString(opts.Cwd)
		defer C.free(unsafe.Pointer(cwd))
		o.cwd = cwd
	}

	if n := len(opts.Stdio); n != 0 {
		stdio := (*C.uv_stdio_container_t)(cmalloc(uintptr(n) * C.sizeof_uv_stdio_container_t))
		defer cfree(unsafe.Pointer(stdio))
		v := unsafe.Slice(stdio, n)
		for i := range v {
			if err := opts.Stdio[i].setNative(&v[i]); err != nil {
				return nil, err
			}
		}
		o.stdio = stdio
		o.stdio_count = C.int(n)
	}

	o.flags = C.uint(opts.Flags)
	o.uid = C.uv_uid_t(opts.UID)
	o.gid = C.uv_gid_t(opts.GID)
	o.exit_cb = C.uv_exit_cb(C.uvgoExitCb)

	p := allocHandle(HandleTypeProcess)
	e := &handleEntry{owned: true}
	if exit != nil {
		e.cb = exit
	}
	handles.store(p, e)
	if err := checkCode(C.uv_spawn(l.native(), (*C.uv_process_t)(p), &o)); err != nil {
		e.cb = nil
		C.uv_close((*C.uv_handle_t)(p), C.uv_close_cb(C.uvgoCloseCb))
		return nil, err
	}
	return (*Process)(p), nil
}

func (h *Process) native() *C.uv_process_t { return (*C.uv_process_t)(unsafe.Pointer(h)) }

// Pid returns the child's process id.
func (h *Process) Pid() int { return int(C.uv_process_get_pid(h.native())) }

// Kill sends signum to the process.
func (h *Process) Kill(signum int) error {
	return checkCode(C.uv_process_kill(h.native(), C.int(signum)))
}

// Kill sends signum to the process identified by pid.
func Kill(pid, signum int) error {
	return checkCode(C.uv_kill(C.int(pid), C.int(signum)))
}

// DisableStdioInheritance marks the parent's inherited descriptors as
// close-on-exec, so children only receive what Stdio names. It should be
// called early, before any other descriptors are opened.
func DisableStdioInheritance() { C.uv_disable_stdio_inheritance() }
