package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSequentialAgent(t *testing.T) {
	c1 := newStubAgent("Child 1", nil)
	c2 := newStubAgent("Child 2", nil)

	a := NewSequentialAgent("Sequential Agent", c1, c2)

	assert.Equal(t, "Sequential Agent", a.Name())
	assert.Len(t, a.children, 2)
	assert.Same(t, c1, a.children[0])
	assert.Same(t, c2, a.children[1])
}

func TestSequentialAgent_Run_ChainsOutputs(t *testing.T) {
	a := NewSequentialAgent("pipeline",
		newSuffixAgent("one", "-step"),
		newSuffixAgent("two", "-step"),
		newSuffixAgent("three", "-step"),
	)

	result := a.Run(context.Background(), NewContext("x"))

	require.True(t, result.Success)
	assert.Equal(t, "x-step-step-step", result.Output)
	assert.Len(t, result.SubResults, 3)
	assert.Equal(t, "x-step", result.SubResults[0].Output)
	assert.Equal(t, "x-step-step", result.SubResults[1].Output)
}

func TestSequentialAgent_Run_StopsAtFirstFailure(t *testing.T) {
	third := newSuffixAgent("three", "-step")
	a := NewSequentialAgent("pipeline",
		newSuffixAgent("one", "-step"),
		newFailingAgent("two", "boom"),
		third,
	)

	result := a.Run(context.Background(), NewContext("x"))

	require.False(t, result.Success)
	assert.Equal(t, "Agent two failed: boom", result.Error)
	// SubResults length equals the index of the failing child, inclusive.
	assert.Len(t, result.SubResults, 2)
	assert.Nil(t, third.receivedCtx)
}

func TestSequentialAgent_Run_AppendsHistory(t *testing.T) {
	a := NewSequentialAgent("pipeline",
		newSuffixAgent("one", "!"),
		newSuffixAgent("two", "?"),
	)

	ec := NewContext("x")
	result := a.Run(context.Background(), ec)

	require.True(t, result.Success)
	assert.Equal(t, []HistoryEntry{
		{Agent: "one", Output: "x!"},
		{Agent: "two", Output: "x!?"},
	}, ec.History)
}

func TestSequentialAgent_Run_NoChildren(t *testing.T) {
	a := NewSequentialAgent("empty")

	result := a.Run(context.Background(), NewContext("x"))

	assert.True(t, result.Success)
	assert.Equal(t, "x", result.Output)
	assert.Empty(t, result.SubResults)
}
