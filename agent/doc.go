// Package agent contains the composable agent implementations and supporting
// types for building multi-agent workflows in agentkit. The package covers
// three concerns:
//
//  1. Execution state plumbing (Context, Result, stream Events)
//  2. Concrete composition patterns (SequentialAgent, ParallelAgent,
//     LoopAgent, RouterAgent)
//  3. Model-backed leaf agent (LLMAgent) plus a staged Builder
//
// Design principles:
//   - No hidden global state – clients and loggers are injected explicitly
//   - Composability – agents nest arbitrarily; compositions form a tree
//   - Failures are data – an agent's Run returns a failure Result rather
//     than an error, so partial sub-results stay inspectable
//
// Execution model:
//   - An agent's Run receives a *Context (input, history, variables) and
//     returns a *Result whose SubResults mirror the composition tree
//   - Composite agents derive child contexts with Context.WithInput, which
//     copies history and variables so child mutations stay local
//   - Agents implementing Streamer additionally expose an incremental
//     event stream; backend errors on that path surface on the error
//     channel instead of being folded into a Result
package agent
