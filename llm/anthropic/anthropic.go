// Package anthropic provides an llm.Client wrapper for the Anthropic Claude API.
package anthropic

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/shared/constant"

	"github.com/aieco/agentkit/llm"
)

// Options configures the Anthropic client adapter (temperature, model id,
// max tokens, API key). Extend via functional options to preserve stability.
type Options struct {
	Model       anthropic.Model
	Temperature float64
	MaxTokens   int64
	APIKey      string
}

// Client wraps the Anthropic Messages API behind the generic llm.Client interface.
type Client struct {
	api  *anthropic.Client
	opts Options
}

var _ llm.Client = (*Client)(nil)

// NewClient creates a new Anthropic adapter using the official SDK client.
func NewClient(optFns ...func(o *Options)) *Client {
	opts := Options{
		Model:       anthropic.ModelClaude3_5Sonnet20241022,
		Temperature: 0.7,
		MaxTokens:   4096,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}
	api := anthropic.NewClient(clientOpts...)

	return &Client{api: &api, opts: opts}
}

// NewClientFromClient creates an adapter from an existing SDK client.
func NewClientFromClient(api *anthropic.Client, optFns ...func(o *Options)) *Client {
	opts := Options{
		Model:       anthropic.ModelClaude3_5Sonnet20241022,
		Temperature: 0.7,
		MaxTokens:   4096,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Client{api: api, opts: opts}
}

func (c *Client) buildParams(req llm.Request) anthropic.MessageNewParams {
	var messages []anthropic.MessageParam
	var systemBlocks []anthropic.TextBlockParam
	for _, m := range req.Messages {
		switch m.Role {
		case "system":
			if m.Content != "" {
				systemBlocks = append(systemBlocks, anthropic.TextBlockParam{Text: m.Content})
			}
		case "assistant":
			messages = append(messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Content)))
		default:
			// Unknown roles are treated as user input.
			messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		}
	}

	model := c.opts.Model
	if req.Model != "" {
		model = anthropic.Model(req.Model)
	}
	temperature := c.opts.Temperature
	if req.Temperature != 0 {
		temperature = req.Temperature
	}
	maxTokens := c.opts.MaxTokens
	if req.MaxTokens != 0 {
		maxTokens = req.MaxTokens
	}

	params := anthropic.MessageNewParams{
		Model:       model,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: anthropic.Float(temperature),
	}
	if len(systemBlocks) > 0 {
		params.System = systemBlocks
	}
	if len(req.Tools) > 0 {
		params.Tools = buildTools(req.Tools)
	}

	return params
}

// buildTools converts normalized tool definitions to the Anthropic tool format.
func buildTools(tools []llm.ToolDefinition) []anthropic.ToolUnionParam {
	anthropicTools := make([]anthropic.ToolUnionParam, len(tools))
	for i, t := range tools {
		inputSchema := anthropic.ToolInputSchemaParam{
			Type: constant.Object("object"),
		}
		if t.Function.Parameters != nil {
			if properties, exists := t.Function.Parameters["properties"]; exists {
				inputSchema.Properties = properties
			}
			if required, exists := t.Function.Parameters["required"]; exists {
				switch req := required.(type) {
				case []string:
					inputSchema.Required = req
				case []any:
					var reqStrings []string
					for _, r := range req {
						if s, ok := r.(string); ok {
							reqStrings = append(reqStrings, s)
						}
					}
					inputSchema.Required = reqStrings
				}
			}
		}
		anthropicTools[i] = anthropic.ToolUnionParamOfTool(inputSchema, t.Function.Name)
	}
	return anthropicTools
}

// ChatCompletion implements llm.Client.
func (c *Client) ChatCompletion(ctx context.Context, req llm.Request) (*llm.Completion, error) {
	resp, err := c.api.Messages.New(ctx, c.buildParams(req))
	if err != nil {
		return nil, fmt.Errorf("anthropic api error: %w", err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.AsText().Text)
		}
	}

	return &llm.Completion{
		Content: sb.String(),
		Model:   string(resp.Model),
		Usage: &llm.TokenUsage{
			PromptTokens:     int(resp.Usage.InputTokens),
			CompletionTokens: int(resp.Usage.OutputTokens),
			TotalTokens:      int(resp.Usage.InputTokens + resp.Usage.OutputTokens),
		},
	}, nil
}

// StreamChatCompletion implements llm.Client. Streaming is not wired for the
// Anthropic Messages API yet; callers receive a terminal error.
//
// TODO: adapt anthropic.MessageStreamEvent handling (text deltas, stop reason)
// onto llm.Chunk once the event accumulation is in place.
func (c *Client) StreamChatCompletion(_ context.Context, _ llm.Request) (<-chan llm.Chunk, <-chan error) {
	chunks := make(chan llm.Chunk)
	errCh := make(chan error, 1)
	errCh <- fmt.Errorf("streaming not yet implemented for anthropic client")
	close(chunks)
	close(errCh)
	return chunks, errCh
}
