package tests

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/trop/pkg/trop"
	"github.com/ib-77/trop/pkg/trop/core"
	"github.com/ib-77/trop/pkg/trop/lite"
	"github.com/ib-77/trop/pkg/trop/union"
)

// The declared error set of the averaging scenario.
type avgError interface{ avgError() }

type parseError struct{ token string }

func (parseError) avgError()  {}
func (parseError) dataError() {}

type divideError struct{ cause error }

func (divideError) avgError() {}

// dataError is what remains after the scenario resolves division locally.
type dataError interface {
	avgError()
	dataError()
}

var avgErrors = union.Declare[avgError]("average", parseError{}, divideError{})

// TestAveragingDirectly drives the whole algebra end to end: traversal,
// the division fault boundary, widening, and partial handling.
func TestAveragingDirectly(t *testing.T) {
	res := computeAverage([]string{"10", "20", "30"})
	assert.True(t, res.IsSuccess())
	assert.Equal(t, 20, res.Value())

	// An empty input divides by zero; the fault is captured as data and
	// resolved by the handler.
	res = computeAverage(nil)
	assert.True(t, res.IsSuccess())
	assert.Equal(t, 0, res.Value())

	// A bad token is not resolved; it survives as the remaining data error.
	res = computeAverage([]string{"10", "x"})
	assert.True(t, res.IsFailure())
	pe, ok := res.Err().(parseError)
	assert.True(t, ok)
	assert.Equal(t, "x", pe.token)
}

// TestDivisionFaultIsRuntimeError pins down what the boundary captures.
func TestDivisionFaultIsRuntimeError(t *testing.T) {
	r := average(nil)
	assert.True(t, r.IsFailure())

	de, ok := r.Err().(divideError)
	assert.True(t, ok)

	var rtErr runtime.Error
	assert.True(t, errors.As(de.cause, &rtErr))
	assert.Contains(t, rtErr.Error(), "divide by zero")
}

// TestAveragingPipeline runs the parse stage as a journaled concurrent
// pipeline and collapses it to report strings.
func TestAveragingPipeline(t *testing.T) {
	tokens := []string{"10", "20", "x", "", "30"}

	j := core.NewJournal()
	results := processTokens(j, tokens)

	fmt.Println("Test Results:")
	for i, res := range results {
		fmt.Printf("%d. %s\n", i+1, res)
	}

	valid := 0
	invalid := 0
	for _, res := range results {
		if res == "invalid" {
			invalid++
		} else {
			valid++
		}
	}

	assert.Equal(t, len(tokens), len(results))
	assert.Equal(t, 2, invalid)
	assert.Equal(t, 3, valid)

	assert.Equal(t, len(tokens), j.Len())
	assert.NotEmpty(t, j.Render())
}

func processTokens(j *core.Journal, tokens []string) []string {
	ctx := core.WithWorkerOptions(context.Background(), 2)
	workers := core.GetWorkerMaxCount(ctx, 1)

	finallyHandlers := lite.FinallyHandlers[int, string, avgError]{
		OnSuccess: func(ctx context.Context, r int) string {
			return fmt.Sprintf("parsed: %d", r)
		},
		OnFailure: func(ctx context.Context, e avgError) string {
			return "invalid"
		},
	}

	return core.Drain(ctx,
		lite.Finally(ctx,
			lite.Run(ctx,
				lite.Turnout(ctx,
					lite.Run(ctx,
						core.Source[avgError](ctx, tokens...),
						lite.Validate(notEmpty, rejectEmpty),
						workers),
					lite.Try(parseToken, wrapParse), workers),
				lite.Observe[int, avgError](j, "parse"),
				1),
			finallyHandlers,
		),
	)
}

func parseAll(tokens []string) trop.Result[[]int, avgError] {
	return trop.WidenError[avgError](trop.Traverse(tokens, func(tok string) trop.Result[int, parseError] {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return trop.Failure[int](parseError{token: tok})
		}
		return trop.Success[parseError](n)
	}))
}

func average(nums []int) trop.Result[int, avgError] {
	sum := 0
	for _, n := range nums {
		sum += n
	}
	r := trop.Catch(func() int { return sum / len(nums) })
	return trop.WidenError[avgError](trop.MapError(r, func(err error) divideError {
		return divideError{cause: err}
	}))
}

func computeAverage(tokens []string) trop.Result[int, dataError] {
	res := trop.FlatMap(parseAll(tokens), average)

	handler := union.NewHandler[int, dataError](avgErrors)
	handler = union.On(handler, func(e divideError) trop.Result[int, dataError] {
		return trop.Success[dataError](0)
	})

	return trop.HandleSome(res, handler.Build())
}

func parseToken(_ context.Context, tok string) (int, error) {
	return strconv.Atoi(tok)
}

func wrapParse(err error) avgError {
	return parseError{token: err.Error()}
}

func notEmpty(_ context.Context, tok string) bool {
	return tok != ""
}

func rejectEmpty(tok string) avgError {
	return parseError{token: tok}
}
