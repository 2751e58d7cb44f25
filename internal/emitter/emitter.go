package emitter

import "sync"

// Emitter fans values out to registered listeners. Listeners run
// synchronously and in registration order on the goroutine that calls
// Emit. Emitting with no listeners registered is a no-op.
type Emitter[T any] struct {
	mu       sync.Mutex
	nextID   int
	handlers []entry[T]
}

type entry[T any] struct {
	id int
	fn func(T)
}

// New creates an empty emitter.
func New[T any]() *Emitter[T] {
	return &Emitter[T]{}
}

// On registers a listener and returns a function that removes it.
// The returned function is safe to call more than once.
func (e *Emitter[T]) On(fn func(T)) (off func()) {
	e.mu.Lock()
	e.nextID++
	id := e.nextID
	e.handlers = append(e.handlers, entry[T]{id: id, fn: fn})
	e.mu.Unlock()

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		for i, h := range e.handlers {
			if h.id == id {
				e.handlers = append(e.handlers[:i], e.handlers[i+1:]...)
				return
			}
		}
	}
}

// Emit delivers v to every listener registered at the time of the call.
// A listener added or removed by another goroutine during delivery does
// not affect the current fan-out.
func (e *Emitter[T]) Emit(v T) {
	e.mu.Lock()
	if len(e.handlers) == 0 {
		e.mu.Unlock()
		return
	}
	snapshot := make([]entry[T], len(e.handlers))
	copy(snapshot, e.handlers)
	e.mu.Unlock()

	for _, h := range snapshot {
		h.fn(v)
	}
}

// Len returns the number of registered listeners.
func (e *Emitter[T]) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.handlers)
}
