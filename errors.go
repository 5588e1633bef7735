package libuv

/*
#include "uvgo.h"
*/
import "C"

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrLoopClosed is returned by loop operations after a successful Close.
	ErrLoopClosed = errors.New("libuv: loop is closed")

	// ErrReentrantRun is returned by Run when the loop is already running,
	// e.g. if Run is called from within one of its own callbacks.
	ErrReentrantRun = errors.New("libuv: loop is already running")

	// ErrDispatcherClosed is returned by Dispatcher.Submit after Close.
	ErrDispatcherClosed = errors.New("libuv: dispatcher is closed")
)

// Error is the closed set of failure reasons reported by the engine. Each
// value maps to exactly one native (negative) status code, see Code.
//
// The zero value is not a valid Error.
type Error uint8

const (
	_ Error = iota
	E2BIG
	EACCES
	EADDRINUSE
	EADDRNOTAVAIL
	EAFNOSUPPORT
	EAGAIN
	EAI_ADDRFAMILY
	EAI_AGAIN
	EAI_BADFLAGS
	EAI_BADHINTS
	EAI_CANCELED
	EAI_FAIL
	EAI_FAMILY
	EAI_MEMORY
	EAI_NODATA
	EAI_NONAME
	EAI_OVERFLOW
	EAI_PROTOCOL
	EAI_SERVICE
	EAI_SOCKTYPE
	EALREADY
	EBADF
	EBUSY
	ECANCELED
	ECHARSET
	ECONNABORTED
	ECONNREFUSED
	ECONNRESET
	EDESTADDRREQ
	EEXIST
	EFAULT
	EFBIG
	EHOSTUNREACH
	EINTR
	EINVAL
	EIO
	EISCONN
	EISDIR
	ELOOP
	EMFILE
	EMSGSIZE
	ENAMETOOLONG
	ENETDOWN
	ENETUNREACH
	ENFILE
	ENOBUFS
	ENODEV
	ENOENT
	ENOMEM
	ENONET
	ENOPROTOOPT
	ENOSPC
	ENOSYS
	ENOTCONN
	ENOTDIR
	ENOTEMPTY
	ENOTSOCK
	ENOTSUP
	EOVERFLOW
	EPERM
	EPIPE
	EPROTO
	EPROTONOSUPPORT
	EPROTOTYPE
	ERANGE
	EROFS
	ESHUTDOWN
	ESPIPE
	ESRCH
	ETIMEDOUT
	ETXTBSY
	EXDEV
	UNKNOWN
	EOF
	ENXIO
	EMLINK
	EHOSTDOWN
	EREMOTEIO
	ENOTTY
	EFTYPE
	EILSEQ
	ESOCKTNOSUPPORT
	EUNATCH
	ENODATA
	ENOEXEC

	// ErrnoMax bounds the native code range. It is never reported by the
	// engine, and exists for range validation only.
	ErrnoMax
)

type errorInfo struct {
	name string
	code int
}

var errorTable = [...]errorInfo{
	E2BIG:           {`E2BIG`, C.UV_E2BIG},
	EACCES:          {`EACCES`, C.UV_EACCES},
	EADDRINUSE:      {`EADDRINUSE`, C.UV_EADDRINUSE},
	EADDRNOTAVAIL:   {`EADDRNOTAVAIL`, C.UV_EADDRNOTAVAIL},
	EAFNOSUPPORT:    {`EAFNOSUPPORT`, C.UV_EAFNOSUPPORT},
	EAGAIN:          {`EAGAIN`, C.UV_EAGAIN},
	EAI_ADDRFAMILY:  {`EAI_ADDRFAMILY`, C.UV_EAI_ADDRFAMILY},
	EAI_AGAIN:       {`EAI_AGAIN`, C.UV_EAI_AGAIN},
	EAI_BADFLAGS:    {`EAI_BADFLAGS`, C.UV_EAI_BADFLAGS},
	EAI_BADHINTS:    {`EAI_BADHINTS`, C.UV_EAI_BADHINTS},
	EAI_CANCELED:    {`EAI_CANCELED`, C.UV_EAI_CANCELED},
	EAI_FAIL:        {`EAI_FAIL`, C.UV_EAI_FAIL},
	EAI_FAMILY:      {`EAI_FAMILY`, C.UV_EAI_FAMILY},
	EAI_MEMORY:      {`EAI_MEMORY`, C.UV_EAI_MEMORY},
	EAI_NODATA:      {`EAI_NODATA`, C.UV_EAI_NODATA},
	EAI_NONAME:      {`EAI_NONAME`, C.UV_EAI_NONAME},
	EAI_OVERFLOW:    {`EAI_OVERFLOW`, C.UV_EAI_OVERFLOW},
	EAI_PROTOCOL:    {`EAI_PROTOCOL`, C.UV_EAI_PROTOCOL},
	EAI_SERVICE:     {`EAI_SERVICE`, C.UV_EAI_SERVICE},
	EAI_SOCKTYPE:    {`EAI_SOCKTYPE`, C.UV_EAI_SOCKTYPE},
	EALREADY:        {`EALREADY`, C.UV_EALREADY},
	EBADF:           {`EBADF`, C.UV_EBADF},
	EBUSY:           {`EBUSY`, C.UV_EBUSY},
	ECANCELED:       {`ECANCELED`, C.UV_ECANCELED},
	ECHARSET:        {`ECHARSET`, C.UV_ECHARSET},
	ECONNABORTED:    {`ECONNABORTED`, C.UV_ECONNABORTED},
	ECONNREFUSED:    {`ECONNREFUSED`, C.UV_ECONNREFUSED},
	ECONNRESET:      {`ECONNRESET`, C.UV_ECONNRESET},
	EDESTADDRREQ:    {`EDESTADDRREQ`, C.UV_EDESTADDRREQ},
	EEXIST:          {`EEXIST`, C.UV_EEXIST},
	EFAULT:          {`EFAULT`, C.UV_EFAULT},
	EFBIG:           {`EFBIG`, C.UV_EFBIG},
	EHOSTUNREACH:    {`EHOSTUNREACH`, C.UV_EHOSTUNREACH},
	EINTR:           {`EINTR`, C.UV_EINTR},
	EINVAL:          {`EINVAL`, C.UV_EINVAL},
	EIO:             {`EIO`, C.UV_EIO},
	EISCONN:         {`EISCONN`, C.UV_EISCONN},
	EISDIR:          {`EISDIR`, C.UV_EISDIR},
	ELOOP:           {`ELOOP`, C.UV_ELOOP},
	EMFILE:          {`EMFILE`, C.UV_EMFILE},
	EMSGSIZE:        {`EMSGSIZE`, C.UV_EMSGSIZE},
	ENAMETOOLONG:    {`ENAMETOOLONG`, C.UV_ENAMETOOLONG},
	ENETDOWN:        {`ENETDOWN`, C.UV_ENETDOWN},
	ENETUNREACH:     {`ENETUNREACH`, C.UV_ENETUNREACH},
	ENFILE:          {`ENFILE`, C.UV_ENFILE},
	ENOBUFS:         {`ENOBUFS`, C.UV_ENOBUFS},
	ENODEV:          {`ENODEV`, C.UV_ENODEV},
	ENOENT:          {`ENOENT`, C.UV_ENOENT},
	ENOMEM:          {`ENOMEM`, C.UV_ENOMEM},
	ENONET:          {`ENONET`, C.UV_ENONET},
	ENOPROTOOPT:     {`ENOPROTOOPT`, C.UV_ENOPROTOOPT},
	ENOSPC:          {`ENOSPC`, C.UV_ENOSPC},
	ENOSYS:          {`ENOSYS`, C.UV_ENOSYS},
	ENOTCONN:        {`ENOTCONN`, C.UV_ENOTCONN},
	ENOTDIR:         {`ENOTDIR`, C.UV_ENOTDIR},
	ENOTEMPTY:       {`ENOTEMPTY`, C.UV_ENOTEMPTY},
	ENOTSOCK:        {`ENOTSOCK`, C.UV_ENOTSOCK},
	ENOTSUP:         {`ENOTSUP`, C.UV_ENOTSUP},
	EOVERFLOW:       {`EOVERFLOW`, C.UV_EOVERFLOW},
	EPERM:           {`EPERM`, C.UV_EPERM},
	EPIPE:           {`EPIPE`, C.UV_EPIPE},
	EPROTO:          {`EPROTO`, C.UV_EPROTO},
	EPROTONOSUPPORT: {`EPROTONOSUPPORT`, C.UV_EPROTONOSUPPORT},
	EPROTOTYPE:      {`EPROTOTYPE`, C.UV_EPROTOTYPE},
	ERANGE:          {`ERANGE`, C.UV_ERANGE},
	EROFS:           {`EROFS`, C.UV_EROFS},
	ESHUTDOWN:       {`ESHUTDOWN`, C.UV_ESHUTDOWN},
	ESPIPE:          {`ESPIPE`, C.UV_ESPIPE},
	ESRCH:           {`ESRCH`, C.UV_ESRCH},
	ETIMEDOUT:       {`ETIMEDOUT`, C.UV_ETIMEDOUT},
	ETXTBSY:         {`ETXTBSY`, C.UV_ETXTBSY},
	EXDEV:           {`EXDEV`, C.UV_EXDEV},
	UNKNOWN:         {`UNKNOWN`, C.UV_UNKNOWN},
	EOF:             {`EOF`, C.UV_EOF},
	ENXIO:           {`ENXIO`, C.UV_ENXIO},
	EMLINK:          {`EMLINK`, C.UV_EMLINK},
	EHOSTDOWN:       {`EHOSTDOWN`, C.UV_EHOSTDOWN},
	EREMOTEIO:       {`EREMOTEIO`, C.UV_EREMOTEIO},
	ENOTTY:          {`ENOTTY`, C.UV_ENOTTY},
	EFTYPE:          {`EFTYPE`, C.UV_EFTYPE},
	EILSEQ:          {`EILSEQ`, C.UV_EILSEQ},
	ESOCKTNOSUPPORT: {`ESOCKTNOSUPPORT`, C.UV_ESOCKTNOSUPPORT},
	EUNATCH:         {`EUNATCH`, C.UVGO_EUNATCH},
	ENODATA:         {`ENODATA`, C.UVGO_ENODATA},
	ENOEXEC:         {`ENOEXEC`, C.UVGO_ENOEXEC},
	ErrnoMax:        {`ERRNO_MAX`, C.UV_ERRNO_MAX},
}

// errorsByCode is the inverse of errorTable, built once at init, and never
// mutated afterwards.
var errorsByCode = func() map[int]Error {
	m := make(map[int]Error, len(errorTable))
	for i := 1; i < len(errorTable); i++ {
		code := errorTable[i].code
		if _, ok := m[code]; ok {
			panic(fmt.Sprintf(`libuv: duplicate error code %d`, code))
		}
		m[code] = Error(i)
	}
	return m
}()

// FromCode maps a native status code to its Error. An unknown code means the
// linked engine does not match the error table this package was built
// against, and results in a panic, with an *ABIError value.
func FromCode(code int) Error {
	if e, ok := errorsByCode[code]; ok {
		return e
	}
	panic(&ABIError{Kind: `error code`, Value: code})
}

// LookupCode is like FromCode, but reports unknown codes via ok.
func LookupCode(code int) (e Error, ok bool) {
	e, ok = errorsByCode[code]
	return
}

// Errors returns every known Error, in declaration order, excluding
// ErrnoMax.
func Errors() []Error {
	out := make([]Error, 0, len(errorTable)-2)
	for i := Error(1); i < ErrnoMax; i++ {
		out = append(out, i)
	}
	return out
}

// Valid reports whether e is a member of the enumeration.
func (e Error) Valid() bool {
	return e > 0 && int(e) < len(errorTable)
}

// Code returns the native status code for e, which is always negative.
func (e Error) Code() int {
	if !e.Valid() {
		panic(&ABIError{Kind: `error value`, Value: int(e)})
	}
	return errorTable[e].code
}

// Name returns the symbolic name, e.g. "ECONNREFUSED".
func (e Error) Name() string {
	if !e.Valid() {
		return fmt.Sprintf(`Error(%d)`, int(e))
	}
	return errorTable[e].name
}

func (e Error) String() string { return e.Name() }

// Error implements the error interface, using the engine's message text.
func (e Error) Error() string {
	if !e.Valid() {
		return `libuv: ` + e.Name()
	}
	return e.Name() + `: ` + C.GoString(C.uv_strerror(C.int(e.Code())))
}

// Is supports errors.Is, with EOF matching io.EOF, and (on unix) each
// errno-backed value matching the equivalent syscall errno.
func (e Error) Is(target error) bool {
	if e == EOF && target == io.EOF {
		return true
	}
	return e.isErrno(target)
}

// nativeErrName is the engine's own name for code. It exists to check the
// table against the linked engine.
func nativeErrName(code int) string {
	return C.GoString(C.uv_err_name(C.int(code)))
}

// checkCode translates a native status, returning nil for non-negative
// values. It is the only place raw status codes become errors.
func checkCode(rc C.int) error {
	if rc >= 0 {
		return nil
	}
	return FromCode(int(rc))
}

// statusError is checkCode for the status argument of a completion.
func statusError(status C.int) error {
	return checkCode(status)
}

// ABIError reports a value received from the engine that this package does
// not recognise, e.g. an unknown handle type tag. It is only ever used as a
// panic value.
type ABIError struct {
	Kind  string
	Value int
}

func (e *ABIError) Error() string {
	return fmt.Sprintf(`libuv: abi mismatch: unknown %s %d`, e.Kind, e.Value)
}

// PanicError wraps a value recovered from a callback. It is returned by
// Loop.Run, which stops as soon as a callback panics.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf(`libuv: callback panicked: %v`, e.Value)
}

// Unwrap returns the panic value, if it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
