package trop

import "fmt"

// Either holds exactly one of a left or a right value, the bridge shape
// for FromEither and ToEither. By convention the right side is the
// successful one.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left builds the left variant. The right type cannot be inferred from
// the argument, so it comes first: trop.Left[int](ParseError{}).
func Left[R, L any](l L) Either[L, R] {
	return Either[L, R]{left: l}
}

// Right builds the right variant. The left type cannot be inferred from
// the argument, so it comes first: trop.Right[ParseError](5).
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{right: r, isRight: true}
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// Left returns the left value and whether the variant is the left one.
func (e Either[L, R]) Left() (L, bool) {
	return e.left, !e.isRight
}

// Right returns the right value and whether the variant is the right one.
func (e Either[L, R]) Right() (R, bool) {
	return e.right, e.isRight
}

func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// FromEither relabels an Either into a Result: right becomes Success,
// left becomes Failure. No semantic change.
func FromEither[L, R any](e Either[L, R]) Result[R, L] {
	if v, ok := e.Right(); ok {
		return Success[L](v)
	}
	return Failure[R](e.left)
}

// ToEither relabels the result: Success becomes right, Failure becomes
// left. Relabeling an empty result is a violation.
func (r Result[T, E]) ToEither() Either[E, T] {
	switch r.tag {
	case tagSuccess:
		return Right[E](r.value)
	case tagFailure:
		return Left[T](r.err)
	}
	panic(Violation.New("empty result"))
}
