package router

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/aieco/agentkit/llm"
	"github.com/aieco/agentkit/logging"
)

// longContextThreshold is the estimated token count above which requests are
// routed to the long-context model regardless of task type.
const longContextThreshold = 200000

// Task-type keyword lists scanned against the last message. Coding keywords
// are checked before creative keywords; the first hit wins.
var (
	codingKeywords = []string{
		"code", "function", "class", "debug", "error", "bug",
		"python", "javascript", "typescript", "implement", "algorithm",
		"def ", "import ", "const ", "let ", "var ",
	}
	creativeKeywords = []string{
		"write", "story", "creative", "poem", "essay",
		"describe", "imagine", "create a",
	}
)

// Task-type sets consulted by SelectModel.
var (
	codingTaskTypes   = []string{"coding", "code", "programming", "debug", "reasoning"}
	creativeTaskTypes = []string{"chat", "conversation", "creative", "writing"}
)

// Options configures a ModelRouter instance.
type Options struct {
	Models     map[string]ModelConfig
	Aliases    map[string]string
	HTTPClient *http.Client
	Logger     logging.Logger
}

// ModelRouter routes chat requests to the optimal backend model based on
// explicit preference, context length, task type and speed signals. One
// pooled client per model is created at construction and shared across
// concurrent requests; the router adds no locking of its own.
type ModelRouter struct {
	models     map[string]ModelConfig
	aliases    map[string]string
	clients    map[string]*openai.Client
	httpClient *http.Client
	logger     logging.Logger
}

// NewModelRouter constructs a router over the given (or default) model table.
func NewModelRouter(optFns ...func(o *Options)) *ModelRouter {
	opts := Options{
		Models:  DefaultModels(),
		Aliases: DefaultAliases(),
		Logger:  logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: 300 * time.Second}
	}

	clients := make(map[string]*openai.Client, len(opts.Models))
	for name, cfg := range opts.Models {
		c := openai.NewClient(
			option.WithBaseURL(cfg.Endpoint),
			option.WithHTTPClient(opts.HTTPClient),
		)
		clients[name] = &c
	}

	return &ModelRouter{
		models:     opts.Models,
		aliases:    opts.Aliases,
		clients:    clients,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
	}
}

// NewModelRouterFromEnv constructs a router with endpoints taken from
// AGENTKIT_*_ENDPOINT environment variables.
func NewModelRouterFromEnv(optFns ...func(o *Options)) (*ModelRouter, error) {
	models, err := ModelsFromEnv()
	if err != nil {
		return nil, err
	}
	fns := append([]func(o *Options){func(o *Options) { o.Models = models }}, optFns...)
	return NewModelRouter(fns...), nil
}

// ResolveModel resolves a model name from an alias. The input is lower-cased
// and trimmed; unknown names pass through unchanged.
func (r *ModelRouter) ResolveModel(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := r.aliases[name]; ok {
		return canonical
	}
	return name
}

// SelectModel picks the target model for a request. Signals apply in strict
// precedence order: explicit preference, context length, task type, speed
// preference, then the quality default.
func (r *ModelRouter) SelectModel(taskType string, contextLength int, preferSpeed bool, preferredModel string) string {
	if preferredModel != "" {
		resolved := r.ResolveModel(preferredModel)
		if _, ok := r.models[resolved]; ok {
			return resolved
		}
	}

	if contextLength > longContextThreshold {
		r.logger.Info("routing to long-context model", "context_length", contextLength)
		return ModelGLM
	}

	for _, t := range codingTaskTypes {
		if taskType == t {
			return ModelGLM
		}
	}
	for _, t := range creativeTaskTypes {
		if taskType == t {
			return ModelMiniMax
		}
	}

	if preferSpeed {
		return ModelMiniMax
	}

	return ModelGLM
}

// RequestOptions carries per-request routing and sampling knobs.
type RequestOptions struct {
	PreferSpeed bool
	Temperature float64
	MaxTokens   int64
}

// RoutedResponse tags the raw backend response with the model that served it.
type RoutedResponse struct {
	*openai.ChatCompletion
	RoutedTo string `json:"_routed_to"`
}

// RouteRequest estimates the request's context length (total content
// characters / 4 as a coarse token proxy), detects the task type from the
// last message, selects a model and forwards the original message list to
// that model's endpoint. Backend failures propagate to the caller.
func (r *ModelRouter) RouteRequest(ctx context.Context, messages []llm.Message, preferredModel string, optFns ...func(o *RequestOptions)) (*RoutedResponse, error) {
	var opts RequestOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	contextLength := 0
	for _, m := range messages {
		contextLength += len(m.Content)
	}
	contextLength /= 4

	taskType := detectTaskType(messages)
	selected := r.SelectModel(taskType, contextLength, opts.PreferSpeed, preferredModel)

	r.logger.Info("routing request",
		"selected_model", selected,
		"task_type", taskType,
		"context_estimate", contextLength,
	)

	client, ok := r.clients[selected]
	if !ok {
		return nil, fmt.Errorf("model %s not available", selected)
	}

	params := openai.ChatCompletionNewParams{
		Model:    selected,
		Messages: buildMessages(messages),
	}
	if opts.Temperature != 0 {
		params.Temperature = openai.Float(opts.Temperature)
	}
	if opts.MaxTokens != 0 {
		params.MaxCompletionTokens = openai.Int(opts.MaxTokens)
	}

	resp, err := client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("model %s request failed: %w", selected, err)
	}

	return &RoutedResponse{ChatCompletion: resp, RoutedTo: selected}, nil
}

// detectTaskType scans the last message's content, lower-cased, against the
// fixed keyword lists.
func detectTaskType(messages []llm.Message) string {
	if len(messages) == 0 {
		return "general"
	}
	last := strings.ToLower(messages[len(messages)-1].Content)

	for _, kw := range codingKeywords {
		if strings.Contains(last, kw) {
			return "coding"
		}
	}
	for _, kw := range creativeKeywords {
		if strings.Contains(last, kw) {
			return "creative"
		}
	}
	return "general"
}

func buildMessages(messages []llm.Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case "system":
			out = append(out, openai.SystemMessage(m.Content))
		case "assistant":
			out = append(out, openai.AssistantMessage(m.Content))
		default:
			out = append(out, openai.UserMessage(m.Content))
		}
	}
	return out
}

// ModelStatus reports the health probe outcome for one model endpoint.
type ModelStatus struct {
	Healthy    bool     `json:"healthy"`
	Endpoint   string   `json:"endpoint"`
	MaxContext int      `json:"max_context"`
	Strengths  []string `json:"strengths"`
	Error      string   `json:"error,omitempty"`
}

// Status probes each model's health endpoint and reports the results.
func (r *ModelRouter) Status(ctx context.Context) map[string]ModelStatus {
	status := make(map[string]ModelStatus, len(r.models))
	for name, cfg := range r.models {
		st := ModelStatus{
			Endpoint:   cfg.Endpoint,
			MaxContext: cfg.MaxContext,
			Strengths:  cfg.Strengths,
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.Endpoint+"/health", nil)
		if err != nil {
			st.Error = err.Error()
			status[name] = st
			continue
		}
		resp, err := r.httpClient.Do(req)
		if err != nil {
			st.Error = err.Error()
			status[name] = st
			continue
		}
		resp.Body.Close()

		st.Healthy = resp.StatusCode == http.StatusOK
		status[name] = st
	}
	return status
}

// Close releases pooled connections held by the router's shared HTTP client.
func (r *ModelRouter) Close() {
	r.httpClient.CloseIdleConnections()
}
