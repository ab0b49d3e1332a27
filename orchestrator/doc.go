// Package orchestrator drives top-level agent runs against a coarse task-type
// tag. For each tag it assembles a fixed, explicit pipeline of named steps
// (no graph compilation machinery) threaded through a single shared State:
//
//	code:     plan -> execute -> review
//	research: search -> summarize
//	default:  process (file, custom and unknown tags)
//
// The streaming path is deliberately different: it issues one direct
// streaming backend call with a role-specific system prompt and a
// type-specific tool list, emitting thought/action/stream/result events.
// The two paths are observably different behaviors for the same task type.
package orchestrator
