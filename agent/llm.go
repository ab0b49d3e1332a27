package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/aieco/agentkit/llm"
	"github.com/aieco/agentkit/logging"
)

// historyWindow bounds how many trailing history entries are summarized into
// the context message of a completion request.
const historyWindow = 5

// LLMAgentOptions configures an LLMAgent instance.
//
// Use functional options with NewLLMAgent to override defaults.
type LLMAgentOptions struct {
	SystemPrompt string
	Description  string
	Model        string
	Tools        []llm.ToolDefinition
	Logger       logging.Logger
}

// LLMAgent is the leaf agent variant: it answers its input with a single
// chat completion against the backend client.
type LLMAgent struct {
	BaseAgent
	client       llm.Client
	systemPrompt string
	model        string
	logger       logging.Logger
}

var _ Streamer = (*LLMAgent)(nil)

// NewLLMAgent creates a model-backed leaf agent. The client is required;
// there is no process-wide fallback.
func NewLLMAgent(name string, client llm.Client, optFns ...func(o *LLMAgentOptions)) *LLMAgent {
	opts := LLMAgentOptions{
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	base := NewBaseAgent(name)
	if opts.Description != "" {
		base.SetDescription(opts.Description)
	}
	for _, t := range opts.Tools {
		base.AddTool(t)
	}

	return &LLMAgent{
		BaseAgent:    base,
		client:       client,
		systemPrompt: opts.SystemPrompt,
		model:        opts.Model,
		logger:       opts.Logger,
	}
}

// buildMessages assembles the completion request: system prompt, an optional
// summary of the trailing history entries, then the current input.
func (a *LLMAgent) buildMessages(ec *Context) []llm.Message {
	messages := []llm.Message{{Role: "system", Content: a.systemPrompt}}

	if len(ec.History) > 0 {
		start := len(ec.History) - historyWindow
		if start < 0 {
			start = 0
		}
		lines := make([]string, 0, len(ec.History)-start)
		for _, h := range ec.History[start:] {
			lines = append(lines, fmt.Sprintf("[%s]: %s", h.Agent, h.Output))
		}
		messages = append(messages, llm.Message{
			Role:    "system",
			Content: "Previous agent outputs:\n" + strings.Join(lines, "\n"),
		})
	}

	messages = append(messages, llm.Message{Role: "user", Content: ec.Input})
	return messages
}

// Run issues one completion request. Backend failures are caught and
// converted into a failure Result; this path never surfaces a Go error.
func (a *LLMAgent) Run(ctx context.Context, ec *Context) *Result {
	req := llm.Request{
		Messages: a.buildMessages(ec),
		Model:    a.model,
		Tools:    a.Tools(),
	}

	completion, err := a.client.ChatCompletion(ctx, req)
	if err != nil {
		a.logger.Error("LLM agent error", "agent", a.Name(), "error", err.Error())
		return &Result{Success: false, Error: err.Error()}
	}

	ec.AddHistory(a.Name(), completion.Content)

	return &Result{Output: completion.Content, Success: true}
}

// Stream issues a single streaming completion, forwarding each content
// fragment as a stream event and terminating with a done event carrying the
// concatenated text. Backend failures are forwarded raw on the error channel,
// unlike Run which folds them into a Result.
func (a *LLMAgent) Stream(ctx context.Context, ec *Context) (<-chan Event, <-chan error) {
	events := make(chan Event, 16)
	errCh := make(chan error, 1)

	go func() {
		defer close(events)
		defer close(errCh)

		req := llm.Request{
			Messages: []llm.Message{
				{Role: "system", Content: a.systemPrompt},
				{Role: "user", Content: ec.Input},
			},
			Model: a.model,
		}

		chunks, chunkErrs := a.client.StreamChatCompletion(ctx, req)

		var full strings.Builder
		for chunk := range chunks {
			if chunk.Delta == "" {
				continue
			}
			full.WriteString(chunk.Delta)
			select {
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			case events <- Event{Type: EventStream, Content: chunk.Delta}:
			}
		}
		if err := <-chunkErrs; err != nil {
			errCh <- err
			return
		}

		ec.AddHistory(a.Name(), full.String())
		events <- Event{Type: EventDone, Content: full.String()}
	}()

	return events, errCh
}
