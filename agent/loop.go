package agent

import "context"

// defaultMaxIterations bounds a loop when no explicit limit is configured.
const defaultMaxIterations = 5

// StopCondition is a termination predicate evaluated against each
// iteration's Result. Returning true stops the loop; the iteration that
// satisfied the condition still counts as run.
type StopCondition func(result *Result) bool

// LoopOption defines a configuration function for customizing LoopAgent behavior.
type LoopOption func(*LoopAgent)

// WithMaxIterations sets the maximum number of iterations for the loop.
func WithMaxIterations(n int) LoopOption {
	return func(l *LoopAgent) { l.maxIterations = n }
}

// WithStopCondition sets a termination predicate evaluated on each
// iteration's Result.
//
// Example:
//
//	WithStopCondition(func(r *agent.Result) bool {
//	    return strings.Contains(r.Output, "DONE")
//	})
func WithStopCondition(cond StopCondition) LoopOption {
	return func(l *LoopAgent) { l.stopCondition = cond }
}

// LoopAgent wraps exactly one child agent and invokes it repeatedly, feeding
// each iteration's output into the next as input. The loop has no mid-flight
// cancellation of its own; its only bound is the iteration limit.
//
// LoopAgent is ideal for:
//   - Iterative refinement workflows
//   - Convergence checking via a stop condition
type LoopAgent struct {
	BaseAgent
	child         Agent
	maxIterations int
	stopCondition StopCondition
}

// NewLoopAgent constructs a looping coordinator around a child agent.
// Defaults: 5 iterations, no stop condition.
func NewLoopAgent(name string, child Agent, opts ...LoopOption) *LoopAgent {
	la := &LoopAgent{
		BaseAgent:     NewBaseAgent(name),
		child:         child,
		maxIterations: defaultMaxIterations,
	}
	for _, o := range opts {
		o(la)
	}
	return la
}

// Run executes the child up to the iteration limit, starting from the
// original input and chaining outputs between iterations. The loop stops
// early when an iteration fails or the stop condition fires. The composite
// Output and Success mirror the last executed iteration;
// Metadata["iterations"] records how many iterations actually ran.
func (l *LoopAgent) Run(ctx context.Context, ec *Context) *Result {
	var results []*Result
	currentInput := ec.Input

	for i := 0; i < l.maxIterations; i++ {
		subCtx := ec.WithInput(currentInput)
		result := l.child.Run(ctx, subCtx)
		results = append(results, result)

		if !result.Success {
			break
		}
		if l.stopCondition != nil && l.stopCondition(result) {
			break
		}

		currentInput = result.Output
	}

	out := &Result{
		Metadata:   map[string]any{"iterations": len(results)},
		SubResults: results,
	}
	if len(results) > 0 {
		last := results[len(results)-1]
		out.Output = last.Output
		out.Success = last.Success
	}
	return out
}
