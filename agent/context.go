package agent

// HistoryEntry records one agent's output in execution order.
type HistoryEntry struct {
	Agent  string `json:"agent"`
	Output string `json:"output"`
}

// Context carries the state threaded through an agent composition. It is
// immutable by convention: composite agents derive child contexts via
// WithInput instead of mutating a shared instance.
//
// Depth and MaxDepth are recursion bookkeeping only; no agent variant
// enforces the bound.
type Context struct {
	Input       string         `json:"input"`
	History     []HistoryEntry `json:"history"`
	Variables   map[string]any `json:"variables"`
	ParentAgent string         `json:"parent_agent,omitempty"`
	Depth       int            `json:"depth"`
	MaxDepth    int            `json:"max_depth"`
}

// NewContext creates a root context for the given input.
func NewContext(input string) *Context {
	return &Context{
		Input:     input,
		Variables: make(map[string]any),
		MaxDepth:  10,
	}
}

// WithInput derives a context for a child call. History and Variables are
// copied by value so child mutations never retroactively alter the parent's
// view; ParentAgent, Depth and MaxDepth pass through unchanged.
func (c *Context) WithInput(input string) *Context {
	history := make([]HistoryEntry, len(c.History))
	copy(history, c.History)

	variables := make(map[string]any, len(c.Variables))
	for k, v := range c.Variables {
		variables[k] = v
	}

	return &Context{
		Input:       input,
		History:     history,
		Variables:   variables,
		ParentAgent: c.ParentAgent,
		Depth:       c.Depth,
		MaxDepth:    c.MaxDepth,
	}
}

// AddHistory appends an agent's output to the history. Entries keep
// insertion order and are never deduplicated.
func (c *Context) AddHistory(agentName, output string) {
	c.History = append(c.History, HistoryEntry{Agent: agentName, Output: output})
}
