// Package option provides Option, the result of a conversion that may have no
// value.
package option

import "fmt"

// Option holds either one value of T or nothing.
// The zero value is None.
type Option[T any] struct {
	value   T
	present bool
}

// Some wraps value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

// None returns the empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool { return o.present }

func (o Option[T]) IsNone() bool { return !o.present }

// Get is the comma-ok accessor.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// Unwrap returns the value. It panics on None.
func (o Option[T]) Unwrap() T {
	if !o.present {
		panic("option: Unwrap on None")
	}
	return o.value
}

// UnwrapOr returns the value, or fallback on None.
func (o Option[T]) UnwrapOr(fallback T) T {
	if !o.present {
		return fallback
	}
	return o.value
}

func (o Option[T]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Map converts the value with fn. None stays None.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.present {
		return None[U]()
	}
	return Some(fn(o.value))
}

// FlatMap chains a conversion that may itself yield None.
func FlatMap[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if !o.present {
		return None[U]()
	}
	return fn(o.value)
}

// FromPtr treats a nil pointer as None.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// ToPtr returns a pointer to a copy of the value, or nil on None.
func (o Option[T]) ToPtr() *T {
	if !o.present {
		return nil
	}
	v := o.value
	return &v
}
