package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/aieco/agentkit/agent"
	"github.com/aieco/agentkit/llm"
	"github.com/aieco/agentkit/logging"
)

// defaultMaxIterations is used when a run does not supply its own bound.
const defaultMaxIterations = 10

// Options configures an Orchestrator instance.
type Options struct {
	Logger        logging.Logger
	MaxIterations int
}

// Orchestrator is the top-level driver. Given a coarse task-type tag it runs
// a fixed staged pipeline (Run) or a single direct streaming call (StreamRun)
// and projects the outcome into a uniform response shape.
type Orchestrator struct {
	client        llm.Client
	logger        logging.Logger
	maxIterations int
}

// New creates an Orchestrator backed by the given client.
func New(client llm.Client, optFns ...func(o *Options)) *Orchestrator {
	opts := Options{
		Logger:        logging.NoOpLogger{},
		MaxIterations: defaultMaxIterations,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Orchestrator{
		client:        client,
		logger:        opts.Logger,
		maxIterations: opts.MaxIterations,
	}
}

// Run executes the staged pipeline for the given agent type to completion.
// Caller-supplied context fields are merged into the initial state. Unlike
// the agent tree, a failing pipeline step surfaces as a Go error.
func (o *Orchestrator) Run(
	ctx context.Context,
	agentType string,
	task string,
	contextFields map[string]any,
	tools []string,
	maxIterations int,
) (*RunResult, error) {
	if maxIterations <= 0 {
		maxIterations = o.maxIterations
	}

	runID := uuid.NewString()
	o.logger.Info("running agent",
		"run_id", runID,
		"agent_type", agentType,
		"task", truncate(task, 50),
	)

	state := &State{
		Task:          task,
		ToolsUsed:     []string{},
		MaxIterations: maxIterations,
		Context:       make(map[string]any),
	}
	for k, v := range contextFields {
		state.Context[k] = v
	}
	_ = tools // the fixed pipelines issue direct completions; tool descriptors apply to the streaming path

	for _, step := range o.pipelineFor(agentType) {
		if err := step.Fn(ctx, state); err != nil {
			o.logger.Error("agent step failed", "run_id", runID, "step", step.Name, "error", err.Error())
			return nil, fmt.Errorf("step %s: %w", step.Name, err)
		}
	}

	return &RunResult{
		Output: state.Output,
		// Steps stays empty unless a step wrote to it; the fixed pipelines do not.
		Steps:      state.Steps,
		ToolsUsed:  state.ToolsUsed,
		Iterations: state.Iterations,
	}, nil
}

// StreamRun streams a run as step-events. It does not reuse the staged
// pipeline: one thought event, one action event, then a single streaming
// backend call whose deltas are forwarded as stream events, terminated by a
// result event with the full text. Backend failures surface on the error
// channel.
func (o *Orchestrator) StreamRun(
	ctx context.Context,
	agentType string,
	task string,
	contextFields map[string]any,
	tools []string,
	maxIterations int,
) (<-chan agent.Event, <-chan error) {
	events := make(chan agent.Event, 16)
	errCh := make(chan error, 1)

	go func() {
		defer close(events)
		defer close(errCh)

		emit := func(ev agent.Event) bool {
			select {
			case <-ctx.Done():
				errCh <- ctx.Err()
				return false
			case events <- ev:
				return true
			}
		}

		if !emit(agent.Event{
			Type:    agent.EventThought,
			Content: fmt.Sprintf("Starting %s agent for task: %s", agentType, task),
		}) {
			return
		}

		req := llm.Request{
			Messages: []llm.Message{
				{Role: "system", Content: systemPromptFor(agentType)},
				{Role: "user", Content: "Task: " + task},
			},
			Tools: toolsFor(agentType, tools),
		}

		if !emit(agent.Event{Type: agent.EventAction, Content: "Analyzing task and planning approach..."}) {
			return
		}

		chunks, chunkErrs := o.client.StreamChatCompletion(ctx, req)

		var full strings.Builder
		for chunk := range chunks {
			if chunk.Delta == "" {
				continue
			}
			full.WriteString(chunk.Delta)
			if !emit(agent.Event{Type: agent.EventStream, Content: chunk.Delta}) {
				return
			}
		}
		if err := <-chunkErrs; err != nil {
			errCh <- err
			return
		}

		emit(agent.Event{Type: agent.EventResult, Content: full.String()})
	}()

	return events, errCh
}

// pipelineFor returns the fixed ordered step list for an agent type. Tags
// without a dedicated pipeline fall through to the single process step.
func (o *Orchestrator) pipelineFor(agentType string) []Step {
	switch agentType {
	case "code":
		return []Step{
			{Name: "plan", Fn: o.planStep},
			{Name: "execute", Fn: o.executeStep},
			{Name: "review", Fn: o.reviewStep},
		}
	case "research":
		return []Step{
			{Name: "search", Fn: o.searchStep},
			{Name: "summarize", Fn: o.summarizeStep},
		}
	default:
		return []Step{
			{Name: "process", Fn: o.processStep},
		}
	}
}

// planStep drafts an approach for a coding task.
func (o *Orchestrator) planStep(ctx context.Context, state *State) error {
	completion, err := o.client.ChatCompletion(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: "system", Content: "You are a coding expert. Plan how to complete the coding task."},
			{Role: "user", Content: fmt.Sprintf("Plan how to: %s", state.Task)},
		},
		MaxTokens: 1024,
	})
	if err != nil {
		return err
	}
	state.Plan = completion.Content
	state.Iterations++
	return nil
}

// executeStep writes the code following the drafted plan.
func (o *Orchestrator) executeStep(ctx context.Context, state *State) error {
	completion, err := o.client.ChatCompletion(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: "system", Content: "You are a coding expert. Write clean, well-documented code."},
			{Role: "user", Content: fmt.Sprintf("Task: %s\n\nPlan: %s\n\nWrite the code:", state.Task, state.Plan)},
		},
		MaxTokens: 4096,
	})
	if err != nil {
		return err
	}
	state.Code = completion.Content
	state.Iterations++
	return nil
}

// reviewStep finalizes the code; its output becomes the run output.
func (o *Orchestrator) reviewStep(ctx context.Context, state *State) error {
	completion, err := o.client.ChatCompletion(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: "system", Content: "Review the code, fix any issues, and provide the final version."},
			{Role: "user", Content: fmt.Sprintf("Review this code:\n\n%s", state.Code)},
		},
		MaxTokens: 4096,
	})
	if err != nil {
		return err
	}
	state.Output = completion.Content
	state.Iterations++
	return nil
}

// searchStep produces a placeholder finding keyed by the task. Real retrieval
// is an external collaborator; this stage only seeds the summarize step.
func (o *Orchestrator) searchStep(_ context.Context, state *State) error {
	state.Findings = fmt.Sprintf("Research findings for: %s", state.Task)
	state.Iterations++
	return nil
}

// summarizeStep turns the findings into the run output.
func (o *Orchestrator) summarizeStep(ctx context.Context, state *State) error {
	completion, err := o.client.ChatCompletion(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: "system", Content: "Summarize the research findings clearly."},
			{Role: "user", Content: fmt.Sprintf("Task: %s\n\nFindings: %s", state.Task, state.Findings)},
		},
		MaxTokens: 2048,
	})
	if err != nil {
		return err
	}
	state.Output = completion.Content
	state.Iterations++
	return nil
}

// processStep answers the raw task directly; used for file, custom and
// unknown agent types.
func (o *Orchestrator) processStep(ctx context.Context, state *State) error {
	completion, err := o.client.ChatCompletion(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: "system", Content: "You are a helpful AI assistant."},
			{Role: "user", Content: state.Task},
		},
		MaxTokens: 4096,
	})
	if err != nil {
		return err
	}
	state.Output = completion.Content
	state.Iterations++
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
