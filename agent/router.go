package agent

import "context"

// Classifier maps an input text to a route key.
type Classifier func(input string) string

// RouterOption defines a configuration function for customizing RouterAgent behavior.
type RouterOption func(*RouterAgent)

// WithClassifier sets the function used to classify the input into a route key.
func WithClassifier(c Classifier) RouterOption {
	return func(r *RouterAgent) { r.classifier = c }
}

// WithDefaultRoute sets the route used when classification yields no match.
func WithDefaultRoute(route string) RouterOption {
	return func(r *RouterAgent) { r.defaultRoute = route }
}

// RouterAgent dispatches to one of its named child agents based on a
// classification of the input text. The chosen child receives the context
// unmodified and its Result is returned verbatim, not wrapped.
type RouterAgent struct {
	BaseAgent
	routes       map[string]Agent
	classifier   Classifier
	defaultRoute string
}

// NewRouterAgent creates a content-based dispatcher over the given routes.
// Without a classifier, the default route is used directly.
func NewRouterAgent(name string, routes map[string]Agent, opts ...RouterOption) *RouterAgent {
	ra := &RouterAgent{
		BaseAgent: NewBaseAgent(name),
		routes:    routes,
	}
	if ra.routes == nil {
		ra.routes = make(map[string]Agent)
	}
	for _, o := range opts {
		o(ra)
	}
	return ra
}

// Run classifies the input, falls back to the default route when the key is
// unknown, and delegates to the matching child. When neither resolves, it
// returns a failure Result.
func (r *RouterAgent) Run(ctx context.Context, ec *Context) *Result {
	var key string
	if r.classifier != nil {
		key = r.classifier(ec.Input)
	} else {
		key = r.defaultRoute
	}

	if _, ok := r.routes[key]; !ok {
		key = r.defaultRoute
	}

	child, ok := r.routes[key]
	if key == "" || !ok {
		return &Result{Success: false, Error: "no route found for input"}
	}

	return child.Run(ctx, ec)
}
