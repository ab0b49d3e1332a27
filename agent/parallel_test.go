package agent

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCombiner(t *testing.T) {
	results := []*Result{
		{Output: "first", Success: true},
		{Output: "ignored", Success: false},
		{Output: "second", Success: true},
	}

	assert.Equal(t, "first\n\n---\n\nsecond", DefaultCombiner(results))
}

func TestParallelAgent_Run_AllBranchesSameInput(t *testing.T) {
	a := newStubAgent("A", nil)
	b := newStubAgent("B", nil)
	p := NewParallelAgent("fanout", a, b)

	result := p.Run(context.Background(), NewContext("shared"))

	require.True(t, result.Success)
	assert.Equal(t, "shared", a.receivedCtx.Input)
	assert.Equal(t, "shared", b.receivedCtx.Input)
	// Branch contexts are derived copies, not the parent itself.
	assert.NotSame(t, a.receivedCtx, b.receivedCtx)
}

func TestParallelAgent_Run_PreservesDeclaredOrder(t *testing.T) {
	p := NewParallelAgent("fanout",
		newSuffixAgent("one", "-1"),
		newSuffixAgent("two", "-2"),
		newSuffixAgent("three", "-3"),
	)

	result := p.Run(context.Background(), NewContext("x"))

	require.True(t, result.Success)
	require.Len(t, result.SubResults, 3)
	assert.Equal(t, "x-1", result.SubResults[0].Output)
	assert.Equal(t, "x-2", result.SubResults[1].Output)
	assert.Equal(t, "x-3", result.SubResults[2].Output)
	assert.Equal(t, "x-1\n\n---\n\nx-2\n\n---\n\nx-3", result.Output)
}

func TestParallelAgent_Run_RecoversPanickingBranch(t *testing.T) {
	a := newSuffixAgent("A", "-ok")
	b := newStubAgent("B", func(_ context.Context, _ *Context) *Result {
		panic("branch exploded")
	})
	p := NewParallelAgent("fanout", a, b)

	result := p.Run(context.Background(), NewContext("x"))

	// The surviving branch still contributes; the composite fails overall.
	require.Len(t, result.SubResults, 2)
	assert.False(t, result.Success)
	assert.Equal(t, "x-ok", result.Output)
	assert.True(t, result.SubResults[0].Success)
	assert.False(t, result.SubResults[1].Success)
	assert.Equal(t, "agent B panicked: branch exploded", result.SubResults[1].Error)
}

func TestParallelAgent_Run_SuccessIsANDOfAllBranches(t *testing.T) {
	p := NewParallelAgent("fanout",
		newSuffixAgent("A", "-ok"),
		newFailingAgent("B", "boom"),
	)

	result := p.Run(context.Background(), NewContext("x"))

	assert.False(t, result.Success)
	assert.Equal(t, "x-ok", result.Output)
}

func TestParallelAgent_SetCombiner(t *testing.T) {
	p := NewParallelAgent("fanout",
		newSuffixAgent("A", "-1"),
		newSuffixAgent("B", "-2"),
	)
	p.SetCombiner(func(results []*Result) string {
		return fmt.Sprintf("%d branches", len(results))
	})

	result := p.Run(context.Background(), NewContext("x"))
	assert.Equal(t, "2 branches", result.Output)

	p.SetCombiner(nil)
	result = p.Run(context.Background(), NewContext("x"))
	assert.Equal(t, "x-1\n\n---\n\nx-2", result.Output)
}
