package agentkit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aieco/agentkit/agent"
	"github.com/aieco/agentkit/llm"
	"github.com/aieco/agentkit/router"
)

func TestAgentKit_Run(t *testing.T) {
	client := llm.NewMockClient()
	client.AddResponse("what is two plus two", "four")
	kit := New(client)

	result, err := kit.Run(context.Background(), "custom", "what is two plus two", nil, nil, 0)

	require.NoError(t, err)
	assert.Equal(t, "four", result.Output)
	assert.Equal(t, 1, result.Iterations)
}

func TestAgentKit_StreamRun(t *testing.T) {
	client := llm.NewMockClient()
	kit := New(client)

	events, errCh := kit.StreamRun(context.Background(), "custom", "hi", nil, nil, 0)

	var last agent.Event
	for ev := range events {
		last = ev
	}
	require.NoError(t, <-errCh)
	assert.Equal(t, agent.EventResult, last.Type)
}

func TestAgentKit_RouterDefaultAndOverride(t *testing.T) {
	client := llm.NewMockClient()

	kit := New(client)
	require.NotNil(t, kit.Router())

	custom := router.NewModelRouter()
	kit = New(client, func(o *Options) { o.Router = custom })
	assert.Same(t, custom, kit.Router())
}
