package agent

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// combinerSeparator joins the successful branch outputs produced by the
// default combiner.
const combinerSeparator = "\n\n---\n\n"

// Combiner reduces the collected branch results into one composite output.
// It receives all results, in declared child order, regardless of outcome.
type Combiner func(results []*Result) string

// DefaultCombiner concatenates only the successful branches' outputs,
// separated by "---" dividers.
func DefaultCombiner(results []*Result) string {
	outputs := make([]string, 0, len(results))
	for _, r := range results {
		if r.Success {
			outputs = append(outputs, r.Output)
		}
	}
	return strings.Join(outputs, combinerSeparator)
}

// ParallelAgentOptions configures a ParallelAgent instance.
type ParallelAgentOptions struct {
	Combiner Combiner
}

// ParallelAgent runs all children concurrently against the same original
// input. Branches are isolated: a failing or panicking branch never aborts
// its siblings, and no branch is cancelled because another failed.
//
// The composite Success is the logical AND across all branches even though
// the combiner may have used only the successful subset; callers should
// check Success before trusting partial combined output.
type ParallelAgent struct {
	BaseAgent
	children []Agent
	combiner Combiner
}

// NewParallelAgent creates a concurrent fan-out coordinator over the given
// children. The default combiner can be replaced with SetCombiner.
func NewParallelAgent(name string, children ...Agent) *ParallelAgent {
	return &ParallelAgent{
		BaseAgent: NewBaseAgent(name),
		children:  children,
		combiner:  DefaultCombiner,
	}
}

// SetCombiner replaces the function that reduces branch results into the
// composite output. A nil combiner restores the default.
func (p *ParallelAgent) SetCombiner(c Combiner) {
	if c == nil {
		c = DefaultCombiner
	}
	p.combiner = c
}

// Run launches every child in its own goroutine with a derived copy of the
// original context. SubResults always has exactly one entry per child, in
// declared order. A panic inside a branch is recovered at the fan-out
// boundary and converted into a failure Result for that branch.
func (p *ParallelAgent) Run(ctx context.Context, ec *Context) *Result {
	results := make([]*Result, len(p.children))

	var wg sync.WaitGroup
	for i, child := range p.children {
		wg.Add(1)
		go func(i int, c Agent) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					results[i] = &Result{Success: false, Error: fmt.Sprintf("agent %s panicked: %v", c.Name(), r)}
				}
			}()
			results[i] = c.Run(ctx, ec.WithInput(ec.Input))
		}(i, child)
	}
	wg.Wait()

	success := true
	for i, r := range results {
		if r == nil {
			results[i] = &Result{Success: false, Error: fmt.Sprintf("agent %s returned no result", p.children[i].Name())}
		}
		if !results[i].Success {
			success = false
		}
	}

	return &Result{
		Output:     p.combiner(results),
		Success:    success,
		SubResults: results,
	}
}
