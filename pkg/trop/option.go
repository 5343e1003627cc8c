package trop

import "fmt"

// Unit is the sentinel error for failures that carry no information about
// their cause.
type Unit struct{}

func (Unit) String() string { return "unit" }

// Option is a zero-or-one container, the bridge shape for FromOption and
// ToOption.
type Option[T any] struct {
	value   T
	present bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool {
	return o.present
}

func (o Option[T]) IsNone() bool {
	return !o.present
}

// Value returns the contained value and whether it is present.
func (o Option[T]) Value() (T, bool) {
	return o.value, o.present
}

func (o Option[T]) GetOrElse(def T) T {
	if o.present {
		return o.value
	}
	return def
}

func (o Option[T]) String() string {
	if o.present {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// FromOption maps a present value to Success and an absent one to a
// Failure carrying Unit.
func FromOption[T any](o Option[T]) Result[T, Unit] {
	if v, ok := o.Value(); ok {
		return Success[Unit](v)
	}
	return Failure[T](Unit{})
}

// ToOption keeps the successful value and forgets the error.
func (r Result[T, E]) ToOption() Option[T] {
	if r.IsSuccess() {
		return Some(r.value)
	}
	return None[T]()
}
