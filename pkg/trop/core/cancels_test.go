package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/ib-77/trop/pkg/trop"
)

func wrapCancel(err error) string {
	return "cancelled: " + err.Error()
}

func TestIsCancellation(t *testing.T) {
	t.Parallel()

	if !IsCancellation(ErrCancelled) {
		t.Fatalf("expected ErrCancelled to count")
	}
	if !IsCancellation(context.Canceled) {
		t.Fatalf("expected context.Canceled to count")
	}
	if !IsCancellation(context.DeadlineExceeded) {
		t.Fatalf("expected context.DeadlineExceeded to count")
	}
	if !IsCancellation(fmt.Errorf("stage: %w", ErrCancelled)) {
		t.Fatalf("expected wrapped cancellation to count")
	}
	if IsCancellation(errors.New("boom")) {
		t.Fatalf("expected ordinary error not to count")
	}
}

func TestDrainAsFailures_FlushesRemainingInput(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	handlers := DrainAsFailures[int, int](wrapCancel)

	in := make(chan trop.Result[int, string], 2)
	in <- trop.Success[string](1)
	in <- trop.Success[string](2)
	close(in)

	out := make(chan trop.Result[int, string], 2)
	handlers.OnCancel(ctx, in, out)
	close(out)

	flushed := 0
	for r := range out {
		if !r.IsFailure() || !strings.HasPrefix(r.Err(), "cancelled:") {
			t.Fatalf("expected a wrapped cancellation, got %v", r)
		}
		flushed++
	}
	if flushed != 2 {
		t.Fatalf("expected 2 flushed failures, got %d", flushed)
	}
}

func TestDrainAsFailures_RespectsOptOut(t *testing.T) {
	t.Parallel()
	ctx := WithProcessOptions(context.Background(), false)
	handlers := DrainAsFailures[int, int](wrapCancel)

	in := make(chan trop.Result[int, string], 1)
	in <- trop.Success[string](1)
	close(in)

	out := make(chan trop.Result[int, string], 1)
	handlers.OnCancel(ctx, in, out)
	handlers.OnCancelUnprocessed(ctx, trop.Success[string](2), out)
	handlers.OnCancelProcessed(ctx, trop.Success[string](3), trop.Success[string](30), out)
	close(out)

	if got := Drain(context.Background(), out); len(got) != 0 {
		t.Fatalf("expected nothing after opt-out, got %v", got)
	}
}

func TestDrainAsFailures_WrapsUnprocessedValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	handlers := DrainAsFailures[int, int](wrapCancel)

	out := make(chan trop.Result[int, string], 1)
	handlers.OnCancelUnprocessed(ctx, trop.Success[string](5), out)
	close(out)

	got := Drain(ctx, out)
	if len(got) != 1 || !got[0].IsFailure() || !strings.HasPrefix(got[0].Err(), "cancelled:") {
		t.Fatalf("expected one wrapped failure, got %v", got)
	}
}

func TestDrainAsFailures_ForwardsExistingFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	handlers := DrainAsFailures[int, int](wrapCancel)

	out := make(chan trop.Result[int, string], 1)
	handlers.OnCancelUnprocessed(ctx, trop.Failure[int]("boom"), out)
	close(out)

	got := Drain(ctx, out)
	if len(got) != 1 || !got[0].IsFailure() || got[0].Err() != "boom" {
		t.Fatalf("expected the original failure, got %v", got)
	}
}

func TestDrainAsFailures_DeliversProcessedValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	handlers := DrainAsFailures[int, int](wrapCancel)

	out := make(chan trop.Result[int, string], 1)
	handlers.OnCancelProcessed(ctx, trop.Success[string](5), trop.Success[string](50), out)
	close(out)

	got := Drain(ctx, out)
	if len(got) != 1 || !got[0].IsSuccess() || got[0].Value() != 50 {
		t.Fatalf("expected the processed value, got %v", got)
	}
}
