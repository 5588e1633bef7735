// Command genkinds generates the capability delegations for each concrete
// handle and request kind, which share the base layout by reinterpretation.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"text/template"
)

type handleKind struct {
	Name   string
	Recv   string
	Type   string
	Stream bool
}

type reqKind struct {
	Name   string
	Cancel bool
}

var handleKinds = []handleKind{
	{Name: `Async`, Recv: `h`, Type: `HandleTypeAsync`},
	{Name: `Check`, Recv: `h`, Type: `HandleTypeCheck`},
	{Name: `Idle`, Recv: `h`, Type: `HandleTypeIdle`},
	{Name: `Pipe`, Recv: `h`, Type: `HandleTypePipe`, Stream: true},
	{Name: `Poll`, Recv: `h`, Type: `HandleTypePoll`},
	{Name: `Prepare`, Recv: `h`, Type: `HandleTypePrepare`},
	{Name: `Process`, Recv: `h`, Type: `HandleTypeProcess`},
	{Name: `Signal`, Recv: `h`, Type: `HandleTypeSignal`},
	{Name: `Stream`, Recv: `s`},
	{Name: `TCP`, Recv: `h`, Type: `HandleTypeTCP`, Stream: true},
	{Name: `Timer`, Recv: `t`, Type: `HandleTypeTimer`},
	{Name: `TTY`, Recv: `h`, Type: `HandleTypeTTY`, Stream: true},
	{Name: `UDP`, Recv: `h`, Type: `HandleTypeUDP`},
}

var reqKinds = []reqKind{
	{Name: `Connect`},
	{Name: `FS`},
	{Name: `GetAddrInfo`},
	{Name: `GetNameInfo`},
	{Name: `Random`},
	{Name: `Shutdown`},
	{Name: `UDPSend`},
	{Name: `Work`, Cancel: true},
	{Name: `Write`},
}

var tmpl = template.Must(template.New(`zkinds`).Parse(`// Code generated by genkinds. DO NOT EDIT.

package libuv

import (
	"unsafe"
)

var (
{{- range .Handles}}
	_ HandleCapability = (*{{.Name}})(nil)
{{- end}}
{{- range .Handles}}{{if .Stream}}
	_ StreamCapability = (*{{.Name}})(nil)
{{- end}}{{end}}
{{- range .Reqs}}
	_ RequestCapability = (*{{.Name}})(nil)
{{- end}}
)
{{range .Handles}}{{$r := .Recv}}{{$n := .Name}}
func ({{$r}} *{{$n}}) AsHandle() *Handle { return (*Handle)(unsafe.Pointer({{$r}})) }

func ({{$r}} *{{$n}}) Size() uintptr { return {{$r}}.AsHandle().Size() }

func ({{$r}} *{{$n}}) Loop() *Loop { return {{$r}}.AsHandle().Loop() }

func ({{$r}} *{{$n}}) Type() HandleType { return {{$r}}.AsHandle().Type() }

func ({{$r}} *{{$n}}) Data() uintptr { return {{$r}}.AsHandle().Data() }

func ({{$r}} *{{$n}}) SetData(data uintptr) { {{$r}}.AsHandle().SetData(data) }

func ({{$r}} *{{$n}}) ClearData() { {{$r}}.AsHandle().ClearData() }

func ({{$r}} *{{$n}}) IsActive() bool { return {{$r}}.AsHandle().IsActive() }

func ({{$r}} *{{$n}}) IsClosing() bool { return {{$r}}.AsHandle().IsClosing() }

func ({{$r}} *{{$n}}) Close(cb CloseFunc) { {{$r}}.AsHandle().Close(cb) }

func ({{$r}} *{{$n}}) Fileno() (int, error) { return {{$r}}.AsHandle().Fileno() }

func ({{$r}} *{{$n}}) Ref() { {{$r}}.AsHandle().Ref() }

func ({{$r}} *{{$n}}) Unref() { {{$r}}.AsHandle().Unref() }

func ({{$r}} *{{$n}}) HasRef() bool { return {{$r}}.AsHandle().HasRef() }
{{if .Stream}}
func ({{$r}} *{{$n}}) AsStream() *Stream { return (*Stream)(unsafe.Pointer({{$r}})) }

func ({{$r}} *{{$n}}) Listen(backlog int, cb ConnectionFunc) error {
	return {{$r}}.AsStream().Listen(backlog, cb)
}

func ({{$r}} *{{$n}}) Accept(client StreamCapability) error { return {{$r}}.AsStream().Accept(client) }

func ({{$r}} *{{$n}}) ReadStart(alloc AllocFunc, read ReadFunc) error {
	return {{$r}}.AsStream().ReadStart(alloc, read)
}

func ({{$r}} *{{$n}}) ReadStop() error { return {{$r}}.AsStream().ReadStop() }

func ({{$r}} *{{$n}}) Write(bufs []Buf, cb WriteFunc, opts ...ReqOption) error {
	return {{$r}}.AsStream().Write(bufs, cb, opts...)
}

func ({{$r}} *{{$n}}) WriteBytes(p []byte, cb WriteFunc, opts ...ReqOption) error {
	return {{$r}}.AsStream().WriteBytes(p, cb, opts...)
}

func ({{$r}} *{{$n}}) Write2(bufs []Buf, send StreamCapability, cb WriteFunc, opts ...ReqOption) error {
	return {{$r}}.AsStream().Write2(bufs, send, cb, opts...)
}

func ({{$r}} *{{$n}}) TryWrite(bufs []Buf) (int, error) { return {{$r}}.AsStream().TryWrite(bufs) }

func ({{$r}} *{{$n}}) Shutdown(cb ShutdownFunc, opts ...ReqOption) error {
	return {{$r}}.AsStream().Shutdown(cb, opts...)
}

func ({{$r}} *{{$n}}) IsReadable() bool { return {{$r}}.AsStream().IsReadable() }

func ({{$r}} *{{$n}}) IsWritable() bool { return {{$r}}.AsStream().IsWritable() }

func ({{$r}} *{{$n}}) SetBlocking(blocking bool) error { return {{$r}}.AsStream().SetBlocking(blocking) }

func ({{$r}} *{{$n}}) WriteQueueSize() int { return {{$r}}.AsStream().WriteQueueSize() }
{{end}}{{if .Type}}
// As{{$n}} returns h as a *{{$n}}, or nil if it is of another kind.
func (h *Handle) As{{$n}}() *{{$n}} {
	if h.Type() != {{.Type}} {
		return nil
	}
	return (*{{$n}})(unsafe.Pointer(h))
}
{{end}}{{end}}{{range .Reqs}}{{$n := .Name}}
func (r *{{$n}}) AsReq() *Req { return (*Req)(unsafe.Pointer(r)) }

func (r *{{$n}}) Type() ReqType { return r.AsReq().Type() }

func (r *{{$n}}) Data() uintptr { return r.AsReq().Data() }

func (r *{{$n}}) SetData(data uintptr) { r.AsReq().SetData(data) }

func (r *{{$n}}) Size() uintptr { return r.AsReq().Size() }
{{if .Cancel}}
func (r *{{$n}}) Cancel() error { return r.AsReq().Cancel() }
{{end}}{{end}}`))

func main() {
	output := flag.String(`output`, `zkinds.go`, `output file`)
	flag.Parse()

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any{
		`Handles`: handleKinds,
		`Reqs`:    reqKinds,
	}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := os.WriteFile(*output, src, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
