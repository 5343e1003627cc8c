package trop

import (
	"strconv"
	"testing"
)

func parseDigits(s string) Result[int, error] {
	return FromTuple(strconv.Atoi(s))
}

func TestTraverse_KeepsInputOrder(t *testing.T) {
	t.Parallel()

	r := Traverse([]string{"10", "20", "30"}, parseDigits)
	if !r.IsSuccess() {
		t.Fatalf("expected success, got %v", r)
	}
	want := []int{10, 20, 30}
	got := r.Value()
	if len(got) != len(want) {
		t.Fatalf("expected %d values, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v at %d, got %v", want[i], i, got[i])
		}
	}
}

func TestTraverse_StopsAtFirstFailure(t *testing.T) {
	t.Parallel()
	calls := 0

	r := Traverse([]string{"1", "2", "x", "4"}, func(s string) Result[int, error] {
		calls++
		return parseDigits(s)
	})
	if !r.IsFailure() {
		t.Fatalf("expected failure, got %v", r)
	}
	if calls != 3 {
		t.Fatalf("expected traversal to stop after 'x', got %d calls", calls)
	}
}

func TestTraverse_EmptyInput(t *testing.T) {
	t.Parallel()

	r := Traverse(nil, parseDigits)
	if !r.IsSuccess() || len(r.Value()) != 0 {
		t.Fatalf("expected Success([]), got %v", r)
	}
}

func TestTraverse_PropagatesEmptyStep(t *testing.T) {
	t.Parallel()

	r := Traverse([]int{1}, func(int) Result[int, string] {
		return Result[int, string]{}
	})
	if !r.IsEmpty() {
		t.Fatalf("expected empty, got %v", r)
	}
}

func TestTraverseOption_Present(t *testing.T) {
	t.Parallel()

	r := TraverseOption(Some("21"), parseDigits)
	if !r.IsSuccess() {
		t.Fatalf("expected success, got %v", r)
	}
	if v, ok := r.Value().Value(); !ok || v != 21 {
		t.Fatalf("expected Some(21), got %v", r.Value())
	}
}

func TestTraverseOption_PresentFailure(t *testing.T) {
	t.Parallel()

	r := TraverseOption(Some("x"), parseDigits)
	if !r.IsFailure() {
		t.Fatalf("expected failure, got %v", r)
	}
}

func TestTraverseOption_AbsentSkipsStep(t *testing.T) {
	t.Parallel()
	called := false

	r := TraverseOption(None[string](), func(s string) Result[int, error] {
		called = true
		return parseDigits(s)
	})
	if !r.IsSuccess() || !r.Value().IsNone() {
		t.Fatalf("expected Success(None), got %v", r)
	}
	if called {
		t.Fatalf("step should not run on an absent input")
	}
}

func TestSequence_AllSuccess(t *testing.T) {
	t.Parallel()

	r := Sequence([]Result[int, string]{
		Success[string](1), Success[string](2), Success[string](3),
	})
	if !r.IsSuccess() || len(r.Value()) != 3 {
		t.Fatalf("expected three values, got %v", r)
	}
}

func TestSequence_FirstFailureWins(t *testing.T) {
	t.Parallel()

	r := Sequence([]Result[int, string]{
		Success[string](1), Failure[int]("first"), Failure[int]("second"),
	})
	if !r.IsFailure() || r.Err() != "first" {
		t.Fatalf("expected the first failure, got %v", r)
	}
}
