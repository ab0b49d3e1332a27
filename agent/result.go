package agent

// Result is the outcome of one agent invocation. For composite agents,
// SubResults forms a tree mirroring the composition that produced it; the
// top-level Output and Success are derived from, but not identical to, the
// aggregate of the children (see the individual agent contracts).
type Result struct {
	Output     string         `json:"output"`
	Success    bool           `json:"success"`
	Error      string         `json:"error,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	SubResults []*Result      `json:"sub_results,omitempty"`
}
