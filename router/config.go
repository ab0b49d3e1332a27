package router

import (
	"fmt"

	"github.com/caarlos0/env/v9"
)

// Canonical model names in the default cluster.
const (
	// ModelGLM is the coding-optimized, long-context model.
	ModelGLM = "glm-4.7"
	// ModelMiniMax is the fast, conversational model.
	ModelMiniMax = "minimax-m2.1"
)

// ModelConfig describes one backend model: endpoint, capacity and routing
// traits. The table is static, loaded once at router construction.
type ModelConfig struct {
	Name       string   `json:"name"`
	Endpoint   string   `json:"endpoint"`
	MaxContext int      `json:"max_context"` // tokens
	Strengths  []string `json:"strengths"`
	Speed      string   `json:"speed"` // "fast", "medium"
	CostWeight float64  `json:"cost_weight"`
}

// EndpointConfig overrides the default model endpoints from the environment.
type EndpointConfig struct {
	GLMEndpoint     string `env:"AGENTKIT_GLM_ENDPOINT" envDefault:"http://localhost:8000/v1"`
	MiniMaxEndpoint string `env:"AGENTKIT_MINIMAX_ENDPOINT" envDefault:"http://localhost:8001/v1"`
}

// DefaultModels returns the built-in model table.
func DefaultModels() map[string]ModelConfig {
	return map[string]ModelConfig{
		ModelGLM: {
			Name:       ModelGLM,
			Endpoint:   "http://localhost:8000/v1",
			MaxContext: 1048576, // 1M tokens
			Strengths:  []string{"coding", "reasoning", "long_context", "tool_calling"},
			Speed:      "medium",
			CostWeight: 1.0,
		},
		ModelMiniMax: {
			Name:       ModelMiniMax,
			Endpoint:   "http://localhost:8001/v1",
			MaxContext: 204800, // 200K tokens
			Strengths:  []string{"fast", "general", "conversation", "creative"},
			Speed:      "fast",
			CostWeight: 0.8,
		},
	}
}

// ModelsFromEnv returns the default table with endpoints overridden from
// AGENTKIT_*_ENDPOINT environment variables.
func ModelsFromEnv() (map[string]ModelConfig, error) {
	var cfg EndpointConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse router environment config: %w", err)
	}

	models := DefaultModels()
	glm := models[ModelGLM]
	glm.Endpoint = cfg.GLMEndpoint
	models[ModelGLM] = glm

	minimax := models[ModelMiniMax]
	minimax.Endpoint = cfg.MiniMaxEndpoint
	models[ModelMiniMax] = minimax

	return models, nil
}

// DefaultAliases returns the user-facing shorthand names mapped to canonical
// model names.
func DefaultAliases() map[string]string {
	return map[string]string{
		"glm":     ModelGLM,
		"glm4":    ModelGLM,
		"minimax": ModelMiniMax,
		"m2":      ModelMiniMax,
		"fast":    ModelMiniMax,
		"coding":  ModelGLM,
	}
}
