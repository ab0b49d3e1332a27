// Package openai provides an implementation of llm.Client using the OpenAI
// Chat Completions API. Because the base URL is configurable it also serves
// OpenAI-compatible inference servers such as vLLM or Ollama.
package openai

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/aieco/agentkit/llm"
)

// Options configure the OpenAI-compatible client adapter. Fields mirror a
// subset of Chat Completion parameters intentionally kept minimal; extend via
// functional options without breaking callers.
type Options struct {
	BaseURL     string        `env:"AGENTKIT_LLM_BASE_URL"`
	APIKey      string        `env:"AGENTKIT_LLM_API_KEY"`
	Model       string        `env:"AGENTKIT_LLM_MODEL" envDefault:"gpt-4o-mini"`
	Temperature float64       `env:"AGENTKIT_LLM_TEMPERATURE" envDefault:"0.7"`
	MaxTokens   int64         `env:"AGENTKIT_LLM_MAX_TOKENS" envDefault:"4096"`
	Timeout     time.Duration `env:"AGENTKIT_LLM_TIMEOUT" envDefault:"120s"`
}

// Client wraps the OpenAI Chat Completions API behind the generic llm.Client interface.
type Client struct {
	api  *openai.Client
	opts Options
}

var _ llm.Client = (*Client)(nil)

// NewClient creates a new adapter using the official SDK client.
func NewClient(optFns ...func(o *Options)) *Client {
	opts := Options{
		Model:       openai.ChatModelGPT4oMini,
		Temperature: 0.7,
		MaxTokens:   4096,
		Timeout:     120 * time.Second,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	clientOpts := []option.RequestOption{
		option.WithHTTPClient(&http.Client{Timeout: opts.Timeout}),
	}
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(opts.BaseURL))
	}
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}

	api := openai.NewClient(clientOpts...)

	return &Client{api: &api, opts: opts}
}

// NewClientFromClient creates an adapter from an existing SDK client.
func NewClientFromClient(api *openai.Client, optFns ...func(o *Options)) *Client {
	opts := Options{
		Model:       openai.ChatModelGPT4oMini,
		Temperature: 0.7,
		MaxTokens:   4096,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Client{api: api, opts: opts}
}

// NewClientFromEnv creates an adapter configured from AGENTKIT_LLM_* environment variables.
func NewClientFromEnv() (*Client, error) {
	var opts Options
	if err := env.Parse(&opts); err != nil {
		return nil, fmt.Errorf("parse llm environment config: %w", err)
	}
	return NewClient(func(o *Options) { *o = opts }), nil
}

// buildParams assembles the SDK request parameters including tool definitions.
func (c *Client) buildParams(req llm.Request) openai.ChatCompletionNewParams {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages))
	for _, m := range req.Messages {
		switch m.Role {
		case "system":
			messages = append(messages, openai.SystemMessage(m.Content))
		case "assistant":
			messages = append(messages, openai.AssistantMessage(m.Content))
		default:
			messages = append(messages, openai.UserMessage(m.Content))
		}
	}

	model := c.opts.Model
	if req.Model != "" {
		model = req.Model
	}
	temperature := c.opts.Temperature
	if req.Temperature != 0 {
		temperature = req.Temperature
	}
	maxTokens := c.opts.MaxTokens
	if req.MaxTokens != 0 {
		maxTokens = req.MaxTokens
	}

	params := openai.ChatCompletionNewParams{
		Messages:            messages,
		Model:               model,
		Temperature:         openai.Float(temperature),
		MaxCompletionTokens: openai.Int(maxTokens),
	}

	if len(req.Tools) > 0 {
		tools := make([]openai.ChatCompletionToolParam, len(req.Tools))
		for i, tdef := range req.Tools {
			tools[i] = openai.ChatCompletionToolParam{
				Type: "function",
				Function: openai.FunctionDefinitionParam{
					Name:        tdef.Function.Name,
					Description: openai.String(tdef.Function.Description),
					Parameters:  tdef.Function.Parameters,
				},
			}
		}
		params.Tools = tools
	}

	return params
}

// ChatCompletion implements llm.Client.
func (c *Client) ChatCompletion(ctx context.Context, req llm.Request) (*llm.Completion, error) {
	resp, err := c.api.Chat.Completions.New(ctx, c.buildParams(req))
	if err != nil {
		return nil, fmt.Errorf("openai api error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices returned")
	}

	completion := &llm.Completion{
		Content: resp.Choices[0].Message.Content,
		Model:   resp.Model,
	}
	completion.Usage = &llm.TokenUsage{
		PromptTokens:     int(resp.Usage.PromptTokens),
		CompletionTokens: int(resp.Usage.CompletionTokens),
		TotalTokens:      int(resp.Usage.TotalTokens),
	}

	return completion, nil
}

// StreamChatCompletion implements llm.Client; forwards content deltas as they
// arrive and closes both channels once the stream terminates.
func (c *Client) StreamChatCompletion(ctx context.Context, req llm.Request) (<-chan llm.Chunk, <-chan error) {
	chunks := make(chan llm.Chunk, 32)
	errCh := make(chan error, 1)

	go func() {
		defer close(chunks)
		defer close(errCh)

		stream := c.api.Chat.Completions.NewStreaming(ctx, c.buildParams(req))
		for stream.Next() {
			ck := stream.Current()
			for _, choice := range ck.Choices {
				if choice.Delta.Content == "" && choice.FinishReason == "" {
					continue
				}
				select {
				case <-ctx.Done():
					errCh <- ctx.Err()
					return
				case chunks <- llm.Chunk{Delta: choice.Delta.Content, FinishReason: choice.FinishReason}:
				}
			}
		}
		if err := stream.Err(); err != nil {
			errCh <- fmt.Errorf("openai streaming error: %w", err)
		}
	}()

	return chunks, errCh
}
