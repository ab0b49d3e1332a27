package agent

import (
	"fmt"

	"github.com/aieco/agentkit/llm"
)

// Type tags the concrete agent variant a Builder constructs.
type Type string

const (
	// TypeLLM builds a model-backed leaf agent.
	TypeLLM Type = "llm"
	// TypeSequential builds an ordered pipeline of sub-agents.
	TypeSequential Type = "sequential"
	// TypeParallel builds a concurrent fan-out over sub-agents.
	TypeParallel Type = "parallel"
	// TypeLoop builds an iterative wrapper around the first sub-agent.
	TypeLoop Type = "loop"
	// TypeRouter builds a content-based dispatcher.
	TypeRouter Type = "router"
)

// Builder accumulates configuration for an agent and constructs the concrete
// variant on Build. Unlike a free-form option map, every field is typed and
// validated when the agent is built.
//
// Example:
//
//	a, err := agent.NewBuilder("helper", agent.TypeLLM).
//	    WithSystemPrompt("You are a helpful assistant").
//	    WithClient(client).
//	    Build()
type Builder struct {
	name         string
	typ          Type
	systemPrompt string
	description  string
	tools        []llm.ToolDefinition
	subAgents    []Agent
	client       llm.Client
	model        string
}

// NewBuilder starts building an agent of the given type.
func NewBuilder(name string, typ Type) *Builder {
	return &Builder{name: name, typ: typ}
}

// WithSystemPrompt sets the system prompt used by LLM agents.
func (b *Builder) WithSystemPrompt(prompt string) *Builder {
	b.systemPrompt = prompt
	return b
}

// WithDescription sets the agent description.
func (b *Builder) WithDescription(desc string) *Builder {
	b.description = desc
	return b
}

// WithTool appends a tool descriptor.
func (b *Builder) WithTool(t llm.ToolDefinition) *Builder {
	b.tools = append(b.tools, t)
	return b
}

// WithSubAgent appends a child agent.
func (b *Builder) WithSubAgent(a Agent) *Builder {
	b.subAgents = append(b.subAgents, a)
	return b
}

// WithClient sets the backend client used by LLM agents.
func (b *Builder) WithClient(c llm.Client) *Builder {
	b.client = c
	return b
}

// WithModel sets the model override used by LLM agents.
func (b *Builder) WithModel(model string) *Builder {
	b.model = model
	return b
}

// Build dispatches on the declared agent type and constructs the concrete
// variant from the accumulated configuration. Missing required fields and
// unknown types are rejected here rather than failing on first use.
func (b *Builder) Build() (Agent, error) {
	switch b.typ {
	case TypeLLM:
		if b.client == nil {
			return nil, fmt.Errorf("llm agent %s requires a backend client", b.name)
		}
		return NewLLMAgent(b.name, b.client, func(o *LLMAgentOptions) {
			o.SystemPrompt = b.systemPrompt
			o.Description = b.description
			o.Model = b.model
			o.Tools = b.tools
		}), nil

	case TypeSequential:
		a := NewSequentialAgent(b.name, b.subAgents...)
		b.applyBase(&a.BaseAgent)
		return a, nil

	case TypeParallel:
		a := NewParallelAgent(b.name, b.subAgents...)
		b.applyBase(&a.BaseAgent)
		return a, nil

	case TypeLoop:
		if len(b.subAgents) == 0 {
			return nil, fmt.Errorf("loop agent %s requires a sub-agent to wrap", b.name)
		}
		a := NewLoopAgent(b.name, b.subAgents[0])
		b.applyBase(&a.BaseAgent)
		return a, nil

	case TypeRouter:
		a := NewRouterAgent(b.name, nil)
		b.applyBase(&a.BaseAgent)
		return a, nil

	default:
		return nil, fmt.Errorf("unknown agent type: %s", b.typ)
	}
}

func (b *Builder) applyBase(base *BaseAgent) {
	if b.description != "" {
		base.SetDescription(b.description)
	}
	for _, t := range b.tools {
		base.AddTool(t)
	}
}
