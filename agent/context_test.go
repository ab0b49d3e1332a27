package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewContext(t *testing.T) {
	ec := NewContext("hello")

	assert.Equal(t, "hello", ec.Input)
	assert.Empty(t, ec.History)
	assert.NotNil(t, ec.Variables)
	assert.Equal(t, 0, ec.Depth)
	assert.Equal(t, 10, ec.MaxDepth)
}

func TestContext_AddHistory_KeepsInsertionOrder(t *testing.T) {
	ec := NewContext("hello")
	ec.AddHistory("planner", "the plan")
	ec.AddHistory("executor", "the result")
	ec.AddHistory("planner", "the plan") // duplicates are kept

	assert.Equal(t, []HistoryEntry{
		{Agent: "planner", Output: "the plan"},
		{Agent: "executor", Output: "the result"},
		{Agent: "planner", Output: "the plan"},
	}, ec.History)
}

func TestContext_WithInput_CopiesState(t *testing.T) {
	parent := NewContext("original")
	parent.Variables["key"] = "value"
	parent.AddHistory("a", "first")
	parent.Depth = 2
	parent.MaxDepth = 7
	parent.ParentAgent = "root"

	child := parent.WithInput("derived")

	assert.Equal(t, "derived", child.Input)
	assert.Equal(t, parent.History, child.History)
	assert.Equal(t, parent.Variables, child.Variables)
	assert.Equal(t, 2, child.Depth)
	assert.Equal(t, 7, child.MaxDepth)
	assert.Equal(t, "root", child.ParentAgent)

	// Child mutations must not retroactively affect the parent's view.
	child.AddHistory("b", "second")
	child.Variables["key"] = "changed"
	child.Variables["new"] = true

	assert.Len(t, parent.History, 1)
	assert.Equal(t, "value", parent.Variables["key"])
	assert.NotContains(t, parent.Variables, "new")
}
