// Package agentkit provides a high-level façade over the orchestrator and
// the model router, enabling rapid construction of multi-agent reasoning
// systems against OpenAI-compatible or Anthropic backends. Most applications
// interact with this package by:
//  1. Creating an AgentKit via New() with a backend client
//  2. Running tasks by agent-type tag (Run) or streaming them (StreamRun)
//  3. Optionally routing raw chat requests through the model router
//
// Agent trees (sequential, parallel, loop, router compositions) are built
// directly from the agent package; this façade covers the common
// task-in/answer-out path. All defaults are safe for local development and
// testing; production deployments typically supply a structured logger and
// environment-derived endpoints.
package agentkit

import (
	"context"

	"github.com/aieco/agentkit/agent"
	"github.com/aieco/agentkit/llm"
	"github.com/aieco/agentkit/logging"
	"github.com/aieco/agentkit/orchestrator"
	"github.com/aieco/agentkit/router"
)

// Options configures the AgentKit instance.
type Options struct {
	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger

	// MaxIterations bounds orchestrator runs that do not supply their own limit.
	MaxIterations int

	// Router overrides the default model router.
	Router *router.ModelRouter
}

// AgentKit is the high-level façade aggregating the orchestrator and model router.
type AgentKit struct {
	orchestrator *orchestrator.Orchestrator
	router       *router.ModelRouter
}

// New creates a new AgentKit instance around the given backend client. Any
// unset service is initialized with a local default.
func New(client llm.Client, optFns ...func(o *Options)) *AgentKit {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Router == nil {
		opts.Router = router.NewModelRouter(func(o *router.Options) {
			o.Logger = opts.Logger
		})
	}

	orch := orchestrator.New(client, func(o *orchestrator.Options) {
		o.Logger = opts.Logger
		if opts.MaxIterations > 0 {
			o.MaxIterations = opts.MaxIterations
		}
	})

	return &AgentKit{orchestrator: orch, router: opts.Router}
}

// Run executes the staged pipeline for the given agent type to completion.
func (k *AgentKit) Run(
	ctx context.Context,
	agentType string,
	task string,
	contextFields map[string]any,
	tools []string,
	maxIterations int,
) (*orchestrator.RunResult, error) {
	return k.orchestrator.Run(ctx, agentType, task, contextFields, tools, maxIterations)
}

// StreamRun streams a run as step-events.
func (k *AgentKit) StreamRun(
	ctx context.Context,
	agentType string,
	task string,
	contextFields map[string]any,
	tools []string,
	maxIterations int,
) (<-chan agent.Event, <-chan error) {
	return k.orchestrator.StreamRun(ctx, agentType, task, contextFields, tools, maxIterations)
}

// Router exposes the model router for raw chat request routing.
func (k *AgentKit) Router() *router.ModelRouter {
	return k.router
}
