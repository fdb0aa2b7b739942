package vector

import "sync/atomic"

// Ref is a mutable reference to a vector, for clients which have to maintain a single
// current incarnation of a vector shared between goroutines. Vectors themselves need no
// synchronization; Ref serializes the replacement of the current incarnation.
//
// The zero value of Ref refers to an empty vector.
type Ref[T any] struct {
	current atomic.Pointer[Vector[T]]
}

// NewRef creates a reference to v.
func NewRef[T any](v Vector[T]) *Ref[T] {
	r := &Ref[T]{}
	r.Store(v)
	return r
}

// Load returns the current vector.
func (r *Ref[T]) Load() Vector[T] {
	if v := r.current.Load(); v != nil {
		return *v
	}
	return Vector[T]{}
}

// Store replaces the current vector by v, unconditionally.
func (r *Ref[T]) Store(v Vector[T]) {
	r.current.Store(&v)
}

// Swap replaces the current vector by f(current) and returns the new vector.
// If another goroutine replaces the vector concurrently, f is called again with the
// newer vector, therefore f should be free of side-effects.
func (r *Ref[T]) Swap(f func(Vector[T]) Vector[T]) Vector[T] {
	for {
		old := r.current.Load()
		var v Vector[T]
		if old != nil {
			v = *old
		}
		w := f(v)
		if r.current.CompareAndSwap(old, &w) {
			return w
		}
		tracer().Debugf("concurrent update of vector reference, retrying")
	}
}
