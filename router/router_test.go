package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aieco/agentkit/llm"
)

func TestModelRouter_ResolveModel(t *testing.T) {
	r := NewModelRouter()

	assert.Equal(t, ModelGLM, r.ResolveModel("glm"))
	assert.Equal(t, ModelGLM, r.ResolveModel("glm4"))
	assert.Equal(t, ModelGLM, r.ResolveModel("coding"))
	assert.Equal(t, ModelMiniMax, r.ResolveModel("minimax"))
	assert.Equal(t, ModelMiniMax, r.ResolveModel("m2"))
	assert.Equal(t, ModelMiniMax, r.ResolveModel("fast"))

	// Normalization before lookup.
	assert.Equal(t, ModelGLM, r.ResolveModel("  GLM  "))

	// Unknown names pass through (lower-cased).
	assert.Equal(t, "other-model", r.ResolveModel("Other-Model"))
}

func TestModelRouter_SelectModel(t *testing.T) {
	r := NewModelRouter()

	tests := []struct {
		name          string
		taskType      string
		contextLength int
		preferSpeed   bool
		preferred     string
		want          string
	}{
		{name: "explicit preference wins over everything", taskType: "creative", contextLength: 300000, preferred: "minimax", want: ModelMiniMax},
		{name: "unknown preference is ignored", taskType: "creative", preferred: "gpt-4", want: ModelMiniMax},
		{name: "long context overrides task type", taskType: "creative", contextLength: 300000, want: ModelGLM},
		{name: "threshold is exclusive", taskType: "creative", contextLength: 200000, want: ModelMiniMax},
		{name: "coding task", taskType: "coding", want: ModelGLM},
		{name: "reasoning task", taskType: "reasoning", want: ModelGLM},
		{name: "creative task", taskType: "creative", want: ModelMiniMax},
		{name: "conversation task", taskType: "conversation", want: ModelMiniMax},
		{name: "task type beats speed preference", taskType: "coding", preferSpeed: true, want: ModelGLM},
		{name: "speed preference", taskType: "general", preferSpeed: true, want: ModelMiniMax},
		{name: "quality default", taskType: "general", want: ModelGLM},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.SelectModel(tt.taskType, tt.contextLength, tt.preferSpeed, tt.preferred)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectTaskType(t *testing.T) {
	assert.Equal(t, "general", detectTaskType(nil))

	assert.Equal(t, "coding", detectTaskType([]llm.Message{
		{Role: "user", Content: "Fix this Python function"},
	}))
	assert.Equal(t, "creative", detectTaskType([]llm.Message{
		{Role: "user", Content: "Write a poem about the sea"},
	}))
	assert.Equal(t, "general", detectTaskType([]llm.Message{
		{Role: "user", Content: "What time is it in Tokyo?"},
	}))

	// Only the last message is scanned.
	assert.Equal(t, "creative", detectTaskType([]llm.Message{
		{Role: "user", Content: "debug my code"},
		{Role: "user", Content: "now write a story"},
	}))

	// Coding keywords take precedence over creative ones.
	assert.Equal(t, "coding", detectTaskType([]llm.Message{
		{Role: "user", Content: "write a function"},
	}))
}

func TestModelRouter_RouteRequest(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"cmpl-1","object":"chat.completion","model":"glm-4.7","choices":[{"index":0,"message":{"role":"assistant","content":"done"},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	models := DefaultModels()
	glm := models[ModelGLM]
	glm.Endpoint = srv.URL
	models[ModelGLM] = glm

	r := NewModelRouter(func(o *Options) { o.Models = models })

	resp, err := r.RouteRequest(context.Background(), []llm.Message{
		{Role: "user", Content: "implement a binary search"},
	}, "")

	require.NoError(t, err)
	assert.Equal(t, ModelGLM, resp.RoutedTo)
	assert.Equal(t, "done", resp.Choices[0].Message.Content)
	assert.Equal(t, "/chat/completions", gotPath)
}

func TestModelRouter_RouteRequest_BackendErrorWrapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"overloaded"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	models := DefaultModels()
	glm := models[ModelGLM]
	glm.Endpoint = srv.URL
	models[ModelGLM] = glm

	r := NewModelRouter(func(o *Options) { o.Models = models })

	resp, err := r.RouteRequest(context.Background(), []llm.Message{
		{Role: "user", Content: "implement a binary search"},
	}, "")

	assert.Nil(t, resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model glm-4.7 request failed")
}

func TestModelRouter_Status(t *testing.T) {
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer healthy.Close()

	models := DefaultModels()
	glm := models[ModelGLM]
	glm.Endpoint = healthy.URL
	models[ModelGLM] = glm
	minimax := models[ModelMiniMax]
	minimax.Endpoint = "http://127.0.0.1:1" // nothing listens here
	models[ModelMiniMax] = minimax

	r := NewModelRouter(func(o *Options) { o.Models = models })
	defer r.Close()

	status := r.Status(context.Background())

	require.Len(t, status, 2)
	assert.True(t, status[ModelGLM].Healthy)
	assert.Empty(t, status[ModelGLM].Error)
	assert.Equal(t, 1048576, status[ModelGLM].MaxContext)
	assert.False(t, status[ModelMiniMax].Healthy)
	assert.NotEmpty(t, status[ModelMiniMax].Error)
}

func TestModelsFromEnv(t *testing.T) {
	t.Setenv("AGENTKIT_GLM_ENDPOINT", "http://glm.internal:9000/v1")
	t.Setenv("AGENTKIT_MINIMAX_ENDPOINT", "http://minimax.internal:9001/v1")

	models, err := ModelsFromEnv()

	require.NoError(t, err)
	assert.Equal(t, "http://glm.internal:9000/v1", models[ModelGLM].Endpoint)
	assert.Equal(t, "http://minimax.internal:9001/v1", models[ModelMiniMax].Endpoint)
	// Routing traits are untouched by the override.
	assert.Equal(t, []string{"coding", "reasoning", "long_context", "tool_calling"}, models[ModelGLM].Strengths)
}
