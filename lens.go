package jsonfield

// Lens pairs a getter with a setter for one field of T, giving compile-time
// safe field access without path strings.
//
// Lenses are plain values; declare them once next to the model type and
// compose them for nested fields.
type Lens[T, U any] struct {
	Get func(T) U
	Set func(*T, U)
}

// Compose chains two lenses into one addressing a nested field:
// Compose(address, city) focuses T's address.city.
func Compose[T, M, U any](outer Lens[T, M], inner Lens[M, U]) Lens[T, U] {
	return Lens[T, U]{
		Get: func(t T) U {
			return inner.Get(outer.Get(t))
		},
		Set: func(t *T, u U) {
			m := outer.Get(*t)
			inner.Set(&m, u)
			outer.Set(t, m)
		},
	}
}

// At decodes the wrapper's payload and reads one field through l.
func At[T, U any](w *Wrapper[T], l Lens[T, U]) (U, error) {
	v, err := w.Value()
	if err != nil {
		var zero U
		return zero, err
	}
	return l.Get(v), nil
}

// Update decodes the payload, writes one field through l, and re-encodes
// the whole value into the wrapper. Same visibility contract as Proxy.Set:
// the write is visible to the next read, siblings are untouched.
func Update[T, U any](w *Wrapper[T], l Lens[T, U], u U) error {
	v, err := w.Value()
	if err != nil {
		return err
	}
	l.Set(&v, u)
	return w.SetValue(v)
}
