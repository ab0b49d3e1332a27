// Package llm defines the provider-agnostic abstractions for issuing chat
// completion requests against a language model backend.
//
// Core goals:
//   - Unify streaming + non-streaming completion behind a single interface
//   - Normalize tool / function descriptors (ToolDefinition) passed to backends
//   - Keep request/response shapes minimal and transport independent
//   - Facilitate lightweight mocking for tests (MockClient)
//
// Providers (e.g. OpenAI-compatible endpoints, Anthropic) implement the Client
// interface from this package so higher layers (agents, orchestrator, router)
// remain decoupled from vendor SDKs.
package llm
