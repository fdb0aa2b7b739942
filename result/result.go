/*
Package result provides values of computations which may fail, modelled after
Elm's Result type.

	var x int
	var err error
	switch m := vec.Lookup(7).Match(); m {
	case m.Ok(&x):
		…
	case m.Err(&err):
		…
	}
*/
package result

// Result either holds a value of type T or an error.
type Result[T any] interface {
	Match() Matcher[T]
	Get() (T, error)
	WithDefault(T) T
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps an error.
func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

// FromPair converts Go's conventional (value, error) pair into a Result.
// A non-nil err takes precedence over x.
func FromPair[T any](x T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(x)
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

func (r result[T]) Get() (T, error) {
	if r.err != nil {
		var none T
		return none, r.err
	}
	return r.value, nil
}

func (r result[T]) WithDefault(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

// --- Matching --------------------------------------------------------------

// Matcher helps switching over the cases of a Result.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
