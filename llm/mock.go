package llm

import (
	"context"
	"fmt"
	"sync"
)

// MockClient is a lightweight in-memory Client useful for tests & examples.
//
// Responses are keyed on the last message content of the request. A transform
// function can be installed to compute a response from the full request
// instead. Unmatched prompts fall back to "Mock response to: <input>".
type MockClient struct {
	mu        sync.Mutex
	responses map[string]string
	transform func(req Request) string
	err       error
	requests  []Request
}

// NewMockClient constructs an empty MockClient.
func NewMockClient() *MockClient {
	return &MockClient{responses: make(map[string]string)}
}

// AddResponse registers a deterministic canned completion for an input prompt.
func (m *MockClient) AddResponse(prompt, response string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[prompt] = response
}

// SetTransform installs a function that computes the completion from the
// request, taking precedence over canned responses.
func (m *MockClient) SetTransform(fn func(req Request) string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transform = fn
}

// SetError makes all subsequent calls fail with err.
func (m *MockClient) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Requests returns a copy of all requests seen so far, in call order.
func (m *MockClient) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.requests))
	copy(out, m.requests)
	return out
}

func (m *MockClient) complete(req Request) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)
	if m.err != nil {
		return "", m.err
	}
	if m.transform != nil {
		return m.transform(req), nil
	}
	var input string
	if len(req.Messages) > 0 {
		input = req.Messages[len(req.Messages)-1].Content
	}
	if resp, ok := m.responses[input]; ok {
		return resp, nil
	}
	return fmt.Sprintf("Mock response to: %s", input), nil
}

// ChatCompletion implements Client.
func (m *MockClient) ChatCompletion(_ context.Context, req Request) (*Completion, error) {
	content, err := m.complete(req)
	if err != nil {
		return nil, err
	}
	return &Completion{
		Content: content,
		Model:   req.Model,
		Usage:   &TokenUsage{CompletionTokens: len(content) / 4, TotalTokens: len(content) / 4},
	}, nil
}

// StreamChatCompletion implements Client; emits the completion rune by rune
// followed by a final chunk carrying the finish reason.
func (m *MockClient) StreamChatCompletion(ctx context.Context, req Request) (<-chan Chunk, <-chan error) {
	chunks := make(chan Chunk, 16)
	errCh := make(chan error, 1)

	content, err := m.complete(req)

	go func() {
		defer close(chunks)
		defer close(errCh)
		if err != nil {
			errCh <- err
			return
		}
		for _, r := range content {
			select {
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			case chunks <- Chunk{Delta: string(r)}:
			}
		}
		chunks <- Chunk{FinishReason: "stop"}
	}()

	return chunks, errCh
}
