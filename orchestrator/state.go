package orchestrator

import "context"

// State is the shared mutable value threaded through a staged pipeline.
// Each step reads and writes it in turn; the terminal state is projected
// into the RunResult.
type State struct {
	Task          string         `json:"task"`
	ToolsUsed     []string       `json:"tools_used"`
	Iterations    int            `json:"iterations"`
	Output        string         `json:"output"`
	Error         string         `json:"error,omitempty"`
	Steps         []string       `json:"steps,omitempty"`
	Plan          string         `json:"plan,omitempty"`
	Code          string         `json:"code,omitempty"`
	Findings      string         `json:"findings,omitempty"`
	MaxIterations int            `json:"max_iterations,omitempty"`
	Context       map[string]any `json:"context,omitempty"`
}

// Step is one named stage of a pipeline: a transformation of the shared state.
type Step struct {
	Name string
	Fn   func(ctx context.Context, state *State) error
}

// RunResult is the uniform projection of a pipeline's terminal state. Steps
// is carried through the projection but no built-in pipeline populates it;
// callers supplying their own steps may write to it via the state.
type RunResult struct {
	Output     string   `json:"output"`
	Steps      []string `json:"steps"`
	ToolsUsed  []string `json:"tools_used"`
	Iterations int      `json:"iterations"`
}
