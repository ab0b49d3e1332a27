package agent

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoopAgent_Run_DefaultMaxIterations(t *testing.T) {
	l := NewLoopAgent("loop", newSuffixAgent("worker", "."))

	result := l.Run(context.Background(), NewContext("x"))

	require.True(t, result.Success)
	assert.Equal(t, "x.....", result.Output)
	assert.Equal(t, 5, result.Metadata["iterations"])
	assert.Len(t, result.SubResults, 5)
}

func TestLoopAgent_Run_StopConditionFires(t *testing.T) {
	l := NewLoopAgent("loop", newSuffixAgent("worker", "!"),
		WithStopCondition(func(r *Result) bool {
			return strings.HasSuffix(r.Output, "!!!")
		}),
	)

	result := l.Run(context.Background(), NewContext("x"))

	// x! -> x!! -> x!!! stops on the third iteration.
	require.True(t, result.Success)
	assert.Equal(t, "x!!!", result.Output)
	assert.Equal(t, 3, result.Metadata["iterations"])
}

func TestLoopAgent_Run_StopConditionFirstIteration(t *testing.T) {
	l := NewLoopAgent("loop", newSuffixAgent("worker", "!"),
		WithStopCondition(func(_ *Result) bool { return true }),
	)

	result := l.Run(context.Background(), NewContext("x"))

	assert.Equal(t, 1, result.Metadata["iterations"])
	assert.Equal(t, "x!", result.Output)
}

func TestLoopAgent_Run_StopsOnFailure(t *testing.T) {
	calls := 0
	child := newStubAgent("flaky", func(_ context.Context, ec *Context) *Result {
		calls++
		if calls == 2 {
			return &Result{Success: false, Error: "boom"}
		}
		return &Result{Output: ec.Input + "+", Success: true}
	})
	l := NewLoopAgent("loop", child, WithMaxIterations(10))

	result := l.Run(context.Background(), NewContext("x"))

	assert.False(t, result.Success)
	assert.Equal(t, 2, result.Metadata["iterations"])
	assert.Equal(t, "boom", result.SubResults[1].Error)
}

func TestLoopAgent_Run_ChainsOutputsBetweenIterations(t *testing.T) {
	var inputs []string
	child := newStubAgent("worker", func(_ context.Context, ec *Context) *Result {
		inputs = append(inputs, ec.Input)
		return &Result{Output: ec.Input + ">", Success: true}
	})
	l := NewLoopAgent("loop", child, WithMaxIterations(3))

	l.Run(context.Background(), NewContext("x"))

	assert.Equal(t, []string{"x", "x>", "x>>"}, inputs)
}

func TestLoopAgent_Run_ZeroIterations(t *testing.T) {
	l := NewLoopAgent("loop", newSuffixAgent("worker", "!"), WithMaxIterations(0))

	result := l.Run(context.Background(), NewContext("x"))

	assert.False(t, result.Success)
	assert.Empty(t, result.Output)
	assert.Equal(t, 0, result.Metadata["iterations"])
}
