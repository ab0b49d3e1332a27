package llm

import "context"

// Message is a single chat message exchanged with a backend.
type Message struct {
	Role    string `json:"role"` // "system", "user", "assistant"
	Content string `json:"content"`
}

// ToolDefinition declaratively exposes a callable function to the model.
type ToolDefinition struct {
	Type     string             `json:"type"` // "function"
	Function FunctionDefinition `json:"function"`
}

// FunctionDefinition describes an individual function (tool) exposed to the model.
// Parameters is a JSON Schema object (draft agnostic, minimal subset expected).
type FunctionDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"` // JSON Schema
}

// Request captures the normalized completion input produced by agents and the
// orchestrator. Zero values defer to the provider's configured defaults.
type Request struct {
	Messages    []Message        `json:"messages"`
	Model       string           `json:"model,omitempty"`
	Tools       []ToolDefinition `json:"tools,omitempty"`
	Temperature float64          `json:"temperature,omitempty"`
	MaxTokens   int64            `json:"max_tokens,omitempty"`
}

// TokenUsage captures token usage statistics for a completion.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Completion is the final result of a non-streaming chat completion.
type Completion struct {
	Content string      `json:"content"`
	Model   string      `json:"model,omitempty"`
	Usage   *TokenUsage `json:"usage,omitempty"`
}

// Chunk is one incremental fragment emitted by a streaming completion. The
// stream is finite; providers close the channel after the final chunk, which
// carries a non-empty FinishReason.
type Chunk struct {
	Delta        string `json:"delta"`
	FinishReason string `json:"finish_reason,omitempty"` // "stop", "length", etc.
}

// Client is the narrow capability interface consumed by the engine. Both
// methods block only on backend I/O; deadlines, if any, are supplied by the
// caller through ctx or configured on the concrete provider.
type Client interface {
	// ChatCompletion issues a single non-streaming completion request.
	ChatCompletion(ctx context.Context, req Request) (*Completion, error)

	// StreamChatCompletion issues a streaming completion request. Chunks are
	// delivered on the first channel; a terminal error, if any, on the second.
	// Both channels are closed when the stream ends.
	StreamChatCompletion(ctx context.Context, req Request) (<-chan Chunk, <-chan error)
}
