// Package router selects which backend model endpoint serves a given chat
// request. It holds a static table of model configurations with per-model
// pooled clients, resolves user-facing aliases to canonical names, and
// applies a strict signal precedence when selecting a target:
//
//  1. An explicit, known preferred model wins unconditionally
//  2. Context estimates above the long-context threshold pick the
//     long-context model
//  3. Coding/reasoning tasks pick the coding-optimized model;
//     creative/conversational tasks pick the fast model
//  4. A speed preference picks the fast model
//  5. Otherwise the coding-optimized (highest-quality) model is used
//
// Unlike the agent tree, backend failures on this path propagate to the
// caller as errors rather than being converted into failure results.
package router
