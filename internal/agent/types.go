package agent

import (
	"context"
	"fmt"
	"sort"

	"cashback-advisor/pkg/llmprovider"
)

// Tool represents an agent tool that can be called by LLM.
type Tool interface {
	// Name returns the tool name (used in function calling).
	Name() string

	// Description returns what the tool does (for LLM).
	Description() string

	// Parameters returns JSON schema for tool parameters.
	Parameters() map[string]interface{}

	// Execute runs the tool with given parameters. "No data" is a result,
	// not an error: handlers return an empty map or a message field instead.
	Execute(ctx context.Context, params map[string]interface{}) (map[string]interface{}, error)
}

// ToolRegistry manages available tools. Tools are registered at startup;
// lookups afterwards are read-only.
type ToolRegistry struct {
	tools map[string]Tool
}

// NewToolRegistry creates a new tool registry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool to the registry. A tool with the same name is replaced.
func (r *ToolRegistry) Register(tool Tool) {
	r.tools[tool.Name()] = tool
}

// Resolve returns the tool registered under name, or ErrUnknownTool.
func (r *ToolRegistry) Resolve(name string) (Tool, error) {
	tool, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	return tool, nil
}

// List returns all registered tools sorted by name.
func (r *ToolRegistry) List() []Tool {
	tools := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		tools = append(tools, tool)
	}
	sort.Slice(tools, func(i, j int) bool { return tools[i].Name() < tools[j].Name() })
	return tools
}

// Definitions converts tools to LLM function calling format, sorted by name.
func (r *ToolRegistry) Definitions() []llmprovider.Tool {
	list := r.List()
	defs := make([]llmprovider.Tool, 0, len(list))
	for _, tool := range list {
		defs = append(defs, llmprovider.Tool{
			Name:        tool.Name(),
			Description: tool.Description(),
			Parameters:  tool.Parameters(),
		})
	}
	return defs
}

// Required returns the names listed in the schema's "required" array.
func Required(tool Tool) []string {
	switch req := tool.Parameters()["required"].(type) {
	case []string:
		return req
	case []interface{}:
		names := make([]string, 0, len(req))
		for _, v := range req {
			if s, ok := v.(string); ok {
				names = append(names, s)
			}
		}
		return names
	default:
		return nil
	}
}

// ValidateArgs checks that every required argument is present and non-null.
func ValidateArgs(tool Tool, args map[string]interface{}) error {
	for _, name := range Required(tool) {
		if v, ok := args[name]; !ok || v == nil {
			return fmt.Errorf("%w: missing required argument %q", ErrInvalidArguments, name)
		}
	}
	return nil
}
