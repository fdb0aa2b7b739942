/*
Package maybe provides optional values, modelled after Elm's Maybe type.

A Maybe either holds a value (Just) or holds nothing (Nothing). Clients
pattern-match on the two cases like this:

	var x int
	switch m := vec.Last().Match(); m {
	case m.Just(&x):
		fmt.Printf("last item is %d\n", x)
	case m.Nothing():
		fmt.Println("vector is empty")
	}
*/
package maybe

// Maybe is an optional value of type T.
type Maybe[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
	Get() (T, bool)
	IsNothing() bool
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps x.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing is the empty Maybe.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

func (m maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

func (m maybe[T]) IsNothing() bool {
	return !m.tag
}

// AndThen chains a computation which may produce nothing.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return f(v)
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher helps switching over the cases of a Maybe. Each case method returns
// the matcher itself if the case applies, nil otherwise.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
