// Package libuv binds the libuv event loop, exposing its handles and
// requests as Go types that share the engine's memory layout.
//
// # Handles
//
// Each handle kind (Timer, TCP, Pipe, ...) is a Go definition of the
// engine's structure, so a pointer to any kind may be viewed as a *Handle,
// and a pointer to a stream shaped kind (TCP, Pipe, TTY) as a *Stream. The
// HandleCapability and StreamCapability interfaces expose the shared
// operations, and checked downcasts are provided, e.g. Handle.AsTimer.
//
// Handles are allocated in C memory by their constructors, and freed after
// their close callback, so the usual pattern is:
//
//	t, err := libuv.NewTimer(loop)
//	if err != nil {
//		return err
//	}
//	_ = t.Start(func(t *libuv.Timer) { t.Close(nil) }, time.Second, 0)
//
// # Requests
//
// Requests (Write, Connect, FS, ...) are allocated immediately before they
// are submitted, owned by the engine while in flight, and freed after the
// completion callback returns. A request that fails to submit is freed
// before the error is returned, and its callback is never called. See Req.
//
// # Errors
//
// Engine status codes are mapped to Error, which also satisfies errors.Is
// against io.EOF and, on unix, the equivalent unix.Errno. A code this
// package does not recognise indicates an ABI mismatch, and panics with an
// *ABIError.
//
// # Goroutines
//
// A loop, and everything attached to it, belongs to the goroutine calling
// Loop.Run. Async.Send and Dispatcher.Submit are the ways in from other
// goroutines. Panics from callbacks are recovered, stop the loop, and are
// returned from Run as a *PanicError.
package libuv

//go:generate go run ./internal/cmd/genkinds -output zkinds.go
