package libuv

import (
	"sync"
	"unsafe"
)

// registry associates Go-side state with native blocks, keyed by address.
//
// Native memory is never scanned by the garbage collector, so any Go value a
// callback needs (closures, owned allocations) must be reachable from here
// for as long as the engine may invoke the callback.
//
// Handle and request callbacks normally run on the loop goroutine, but work
// requests complete on the engine's thread pool, hence the mutex.
type registry[V any] struct {
	data map[uintptr]V
	mu   sync.Mutex
}

func newRegistry[V any]() *registry[V] {
	return &registry[V]{data: make(map[uintptr]V)}
}

func (r *registry[V]) store(p unsafe.Pointer, v V) {
	r.mu.Lock()
	r.data[uintptr(p)] = v
	r.mu.Unlock()
}

func (r *registry[V]) load(p unsafe.Pointer) (v V, ok bool) {
	r.mu.Lock()
	v, ok = r.data[uintptr(p)]
	r.mu.Unlock()
	return
}

// take removes and returns the entry for p. At most one caller observes
// ok == true for each store.
func (r *registry[V]) take(p unsafe.Pointer) (v V, ok bool) {
	r.mu.Lock()
	v, ok = r.data[uintptr(p)]
	if ok {
		delete(r.data, uintptr(p))
	}
	r.mu.Unlock()
	return
}

func (r *registry[V]) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.data)
}

// countFunc returns the number of entries matching fn.
func (r *registry[V]) countFunc(fn func(V) bool) (n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.data {
		if fn(v) {
			n++
		}
	}
	return
}

var (
	loops    = newRegistry[*loopEntry]()
	handles  = newRegistry[*handleEntry]()
	requests = newRegistry[*reqEntry]()
)
