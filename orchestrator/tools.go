package orchestrator

import "github.com/aieco/agentkit/llm"

// Role prompts selected by task-type tag on the streaming path.
var systemPrompts = map[string]string{
	"code": `You are an expert coding assistant. You can:
- Write clean, efficient, and well-documented code
- Debug and fix issues
- Refactor and optimize code
- Explain code and concepts
Always provide complete, working code with proper error handling.`,

	"research": `You are a research assistant. You can:
- Search for information
- Analyze and summarize content
- Extract key insights
- Provide citations and sources
Be thorough and accurate in your research.`,

	"file": `You are a file management assistant. You can:
- List and navigate directories
- Read and write files
- Organize project structures
- Search for files by pattern
Be careful with file operations and always confirm destructive actions.`,

	"custom": `You are a versatile AI assistant with access to various tools.
Complete the user's task efficiently and accurately.`,
}

// systemPromptFor returns the role prompt for an agent type, falling back to
// the custom prompt for unknown tags.
func systemPromptFor(agentType string) string {
	if prompt, ok := systemPrompts[agentType]; ok {
		return prompt
	}
	return systemPrompts["custom"]
}

func stringSchema(description string) map[string]any {
	s := map[string]any{"type": "string"}
	if description != "" {
		s["description"] = description
	}
	return s
}

func objectSchema(properties map[string]any, required ...string) map[string]any {
	return map[string]any{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}

// builtinTools is the catalog of capability descriptors exposed to backends.
// Execution of these tools is an external collaborator's concern; the
// orchestrator only forwards the descriptors.
var builtinTools = map[string]llm.ToolDefinition{
	"execute_code": {
		Type: "function",
		Function: llm.FunctionDefinition{
			Name:        "execute_code",
			Description: "Execute Python code in a sandboxed environment",
			Parameters: objectSchema(map[string]any{
				"code": stringSchema("Python code to execute"),
			}, "code"),
		},
	},
	"read_file": {
		Type: "function",
		Function: llm.FunctionDefinition{
			Name:        "read_file",
			Description: "Read contents of a file",
			Parameters: objectSchema(map[string]any{
				"path": stringSchema("File path"),
			}, "path"),
		},
	},
	"write_file": {
		Type: "function",
		Function: llm.FunctionDefinition{
			Name:        "write_file",
			Description: "Write content to a file",
			Parameters: objectSchema(map[string]any{
				"path":    stringSchema(""),
				"content": stringSchema(""),
			}, "path", "content"),
		},
	},
	"web_search": {
		Type: "function",
		Function: llm.FunctionDefinition{
			Name:        "web_search",
			Description: "Search the web for information",
			Parameters: objectSchema(map[string]any{
				"query": stringSchema(""),
			}, "query"),
		},
	},
}

// agentToolNames maps a task-type tag to the tools it may use by default.
var agentToolNames = map[string][]string{
	"code":     {"execute_code", "read_file", "write_file"},
	"research": {"web_search", "read_file"},
	"file":     {"read_file", "write_file"},
	"custom":   {"execute_code", "read_file", "write_file", "web_search"},
}

// toolsFor resolves the tool descriptors for an agent type. Caller-supplied
// names take precedence over the per-type defaults; unknown names are skipped.
func toolsFor(agentType string, custom []string) []llm.ToolDefinition {
	names := custom
	if len(names) == 0 {
		names = agentToolNames[agentType]
	}

	var tools []llm.ToolDefinition
	for _, name := range names {
		if t, ok := builtinTools[name]; ok {
			tools = append(tools, t)
		}
	}
	return tools
}
