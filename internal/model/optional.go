package model

// Optional is a present/absent value. The zero value is absent.
type Optional[T comparable] struct {
	value T
	ok    bool
}

func Some[T comparable](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

func None[T comparable]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

func (o Optional[T]) IsPresent() bool {
	return o.ok
}

func (o Optional[T]) Equal(other Optional[T]) bool {
	if o.ok != other.ok {
		return false
	}
	return !o.ok || o.value == other.value
}

func (o Optional[T]) ptr() *T {
	if !o.ok {
		return nil
	}
	v := o.value
	return &v
}

func fromPtr[T comparable](p *T) Optional[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}
