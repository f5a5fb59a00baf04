package optional

// Value holds either nothing (absent) or a value of type T. The zero Value is
// absent, so struct fields of this type start out unset.
type Value[T any] struct {
	val T
	set bool
}

// Some wraps v as a present value, even if v is the zero value of T
func Some[T any](v T) Value[T] {
	return Value[T]{val: v, set: true}
}

// None returns an absent value
func None[T any]() Value[T] {
	return Value[T]{}
}

func (v Value[T]) Get() (T, bool) {
	return v.val, v.set
}

func (v Value[T]) IsSet() bool {
	return v.set
}

// OrElse returns the wrapped value, or def if the value is absent
func (v Value[T]) OrElse(def T) T {
	if !v.set {
		return def
	}
	return v.val
}

// Map applies fn to a present value and leaves an absent value absent
func Map[T, U any](v Value[T], fn func(T) U) Value[U] {
	if !v.set {
		return None[U]()
	}
	return Some(fn(v.val))
}
