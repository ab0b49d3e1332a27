package agent

import (
	"context"
	"fmt"
)

// SequentialAgent coordinates the execution of multiple child agents in
// fixed order. The output of child i becomes the input of child i+1 (chained,
// not the original context input); each child's output is also appended to
// the parent context's history.
//
// SequentialAgent is ideal for:
//   - Multi-step processing pipelines
//   - Workflows requiring a specific execution order
//   - Tasks where each step builds on the previous output
type SequentialAgent struct {
	BaseAgent
	children []Agent
}

// NewSequentialAgent creates a sequential execution coordinator over the
// given children, executed in the order specified.
func NewSequentialAgent(name string, children ...Agent) *SequentialAgent {
	return &SequentialAgent{
		BaseAgent: NewBaseAgent(name),
		children:  children,
	}
}

// Run executes the children in order, chaining outputs to inputs. Execution
// stops at the first child failure: SubResults then contains exactly the
// results up to and including the failing child, and the composite fails
// with "Agent <name> failed: <error>". On full success the final child's
// output becomes the composite output.
func (s *SequentialAgent) Run(ctx context.Context, ec *Context) *Result {
	results := make([]*Result, 0, len(s.children))
	currentInput := ec.Input

	for _, child := range s.children {
		subCtx := ec.WithInput(currentInput)
		result := child.Run(ctx, subCtx)
		results = append(results, result)

		if !result.Success {
			return &Result{
				Success:    false,
				Error:      fmt.Sprintf("Agent %s failed: %s", child.Name(), result.Error),
				SubResults: results,
			}
		}

		currentInput = result.Output
		ec.AddHistory(child.Name(), result.Output)
	}

	return &Result{
		Output:     currentInput,
		Success:    true,
		SubResults: results,
	}
}
