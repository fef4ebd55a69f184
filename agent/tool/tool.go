package tool

import (
	"context"
	"fmt"

	contractx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/contract"
	statex "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/state"
)

// Executor runs one named tool call against the conversation's state and
// produces the reply the runtime speaks back. Tool-contract misuse is reported
// inside the ToolResult; a non-nil error is reserved for infrastructure
// failures the gateway must surface.
type Executor func(ctx context.Context, st *statex.ConversationState, tool string, args map[string]any) (contractx.ToolResult, error)

// DefaultExecutor answers any tool the agent does not implement.
func DefaultExecutor(agentType contractx.AgentType) Executor {
	return func(_ context.Context, _ *statex.ConversationState, tool string, _ map[string]any) (contractx.ToolResult, error) {
		return contractx.ToolResult{
			Tool:  tool,
			Error: fmt.Sprintf("tool=%s is unavailable for agent=%s", tool, agentType),
		}, nil
	}
}

// StringArg extracts a trimmed string argument. ok is false when the argument
// is absent or not a string.
func StringArg(args map[string]any, name string) (string, bool) {
	raw, ok := args[name]
	if !ok {
		return "", false
	}
	s, ok := raw.(string)
	if !ok {
		return "", false
	}
	return s, true
}

// StringsArg extracts a list-of-strings argument, tolerating the []any shape
// JSON decoding produces.
func StringsArg(args map[string]any, name string) []string {
	raw, ok := args[name]
	if !ok {
		return nil
	}
	switch v := raw.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
