package agent

import (
	"context"
	"fmt"

	"github.com/aieco/agentkit/llm"
)

// EventType identifies the kind of step-event emitted on a stream.
type EventType string

const (
	// EventThought announces what the agent is about to do.
	EventThought EventType = "thought"
	// EventAction announces a concrete action being taken.
	EventAction EventType = "action"
	// EventStream carries one incremental content fragment.
	EventStream EventType = "stream"
	// EventResult carries the full concatenated text of a streamed run.
	EventResult EventType = "result"
	// EventDone terminates an agent-level stream with the full text.
	EventDone EventType = "done"
)

// Event is one step-event emitted by a streaming execution path.
type Event struct {
	Type    EventType `json:"type"`
	Content string    `json:"content"`
}

// Agent is the unit of work in a composition. Run executes against the given
// execution context and always returns a non-nil Result; failures are
// reported as failure Results (Success=false, Error set), never as panics or
// Go errors, so that partial sub-results remain inspectable.
type Agent interface {
	Name() string
	Description() string
	Run(ctx context.Context, ec *Context) *Result
}

// Streamer is implemented by agents that can additionally stream their
// execution incrementally. Unlike Run, backend failures on this path are
// delivered raw on the error channel.
type Streamer interface {
	Agent
	Stream(ctx context.Context, ec *Context) (<-chan Event, <-chan error)
}

// BaseAgent bundles the identity and tool set shared by all agent variants.
// Embed it in concrete implementations and supply a Run method to satisfy
// the Agent interface. Agents are stateless across invocations except for
// the tools and children fixed at construction.
type BaseAgent struct {
	name        string
	description string
	tools       []llm.ToolDefinition
}

// NewBaseAgent constructs a BaseAgent with a generated description
// (customizable via SetDescription).
func NewBaseAgent(name string) BaseAgent {
	return BaseAgent{
		name:        name,
		description: fmt.Sprintf("Agent %s", name),
	}
}

// Name returns the human-readable name for this agent.
func (b *BaseAgent) Name() string { return b.name }

// Description returns a detailed description of this agent's purpose.
func (b *BaseAgent) Description() string { return b.description }

// SetDescription updates the agent's description.
func (b *BaseAgent) SetDescription(desc string) { b.description = desc }

// AddTool appends a tool descriptor passed opaquely to the backend.
func (b *BaseAgent) AddTool(t llm.ToolDefinition) { b.tools = append(b.tools, t) }

// Tools returns a copy of the agent's tool descriptors.
func (b *BaseAgent) Tools() []llm.ToolDefinition {
	out := make([]llm.ToolDefinition, len(b.tools))
	copy(out, b.tools)
	return out
}
