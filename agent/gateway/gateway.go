// Package gateway receives tool-call webhooks from the voice runtime, runs
// them through the conversation pipeline, and returns the reply the runtime
// speaks back.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino/compose"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	contractx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/contract"
	statex "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/state"
	toolx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/tool"
)

// GraphInput is one tool call as delivered by the runtime webhook.
type GraphInput struct {
	ConversationID string
	Tool           string
	Args           map[string]any
}

// GraphOutput is what the gateway hands back to the runtime.
type GraphOutput struct {
	ConversationID  string
	Reply           string
	EndConversation bool
}

type graphState struct {
	ConversationID string
	Tool           string
	Args           map[string]any
	Now            time.Time

	Session *statex.ConversationState
	Result  contractx.ToolResult
}

// Gateway owns one agent's tool pipeline: state store in, executor in the
// middle, state store out.
type Gateway struct {
	agentType contractx.AgentType
	store     statex.Store
	executor  toolx.Executor
	now       func() time.Time

	runner compose.Runnable[GraphInput, GraphOutput]
}

// New compiles the tool-call graph for one agent.
func New(ctx context.Context, agentType contractx.AgentType, store statex.Store, executor toolx.Executor) (*Gateway, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: store is nil", contractx.ErrValidation)
	}
	if executor == nil {
		return nil, fmt.Errorf("%w: executor is nil", contractx.ErrValidation)
	}

	g := &Gateway{
		agentType: agentType,
		store:     store,
		executor:  executor,
		now:       time.Now,
	}
	runner, err := g.compileToolCallGraph(ctx)
	if err != nil {
		return nil, err
	}
	g.runner = runner
	return g, nil
}

func (g *Gateway) compileToolCallGraph(ctx context.Context) (compose.Runnable[GraphInput, GraphOutput], error) {
	graph := compose.NewGraph[GraphInput, GraphOutput]()

	if err := graph.AddLambdaNode("validate_request",
		compose.InvokableLambda(func(ctx context.Context, in GraphInput) (*graphState, error) {
			return validateRequest(in, g.now)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node validate_request: %w", err)
	}

	if err := graph.AddLambdaNode("load_or_create_state",
		compose.InvokableLambda(func(ctx context.Context, in *graphState) (*graphState, error) {
			return g.loadOrCreateState(ctx, in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node load_or_create_state: %w", err)
	}

	if err := graph.AddLambdaNode("execute_tool",
		compose.InvokableLambda(func(ctx context.Context, in *graphState) (*graphState, error) {
			return g.executeTool(ctx, in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node execute_tool: %w", err)
	}

	if err := graph.AddLambdaNode("save_state",
		compose.InvokableLambda(func(ctx context.Context, in *graphState) (*graphState, error) {
			return g.saveState(ctx, in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node save_state: %w", err)
	}

	if err := graph.AddLambdaNode("finalize_reply",
		compose.InvokableLambda(func(ctx context.Context, in *graphState) (GraphOutput, error) {
			return finalizeReply(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node finalize_reply: %w", err)
	}

	edges := [][2]string{
		{compose.START, "validate_request"},
		{"validate_request", "load_or_create_state"},
		{"load_or_create_state", "execute_tool"},
		{"execute_tool", "save_state"},
		{"save_state", "finalize_reply"},
		{"finalize_reply", compose.END},
	}
	for _, edge := range edges {
		if err := graph.AddEdge(edge[0], edge[1]); err != nil {
			return nil, fmt.Errorf("add edge %s->%s: %w", edge[0], edge[1], err)
		}
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName(fmt.Sprintf("gateway.%s.tool_call", g.agentType)))
	if err != nil {
		return nil, fmt.Errorf("compile gateway graph: %w", err)
	}
	return runner, nil
}

// HandleToolCall runs one tool call end to end and returns the runtime-facing
// output.
func (g *Gateway) HandleToolCall(ctx context.Context, conversationID, tool string, args map[string]any) (GraphOutput, error) {
	out, err := g.runner.Invoke(ctx, GraphInput{ConversationID: conversationID, Tool: tool, Args: args})
	if err != nil {
		return GraphOutput{}, err
	}
	return out, nil
}

func validateRequest(in GraphInput, nowFn func() time.Time) (*graphState, error) {
	tool := strings.TrimSpace(in.Tool)
	if tool == "" {
		return nil, fmt.Errorf("%w: tool name is empty", contractx.ErrValidation)
	}

	// A blank conversation ID means the runtime has not assigned one yet;
	// mint one so the state is durable from the first turn.
	conversationID := strings.TrimSpace(in.ConversationID)
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	args := in.Args
	if args == nil {
		args = map[string]any{}
	}
	return &graphState{
		ConversationID: conversationID,
		Tool:           tool,
		Args:           args,
		Now:            nowFn().UTC(),
	}, nil
}

func (g *Gateway) loadOrCreateState(ctx context.Context, in *graphState) (*graphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	st, err := g.store.Load(ctx, in.ConversationID)
	if err != nil {
		if !errors.Is(err, statex.ErrStateNotFound) {
			return nil, err
		}
		st = statex.NewConversationState(in.ConversationID, g.agentType, in.Now)
		log.Debug().Str("conversation_id", in.ConversationID).Str("agent", string(g.agentType)).Msg("created conversation state")
	}
	st.EnsureMaps()
	in.Session = st
	return in, nil
}

func (g *Gateway) executeTool(ctx context.Context, in *graphState) (*graphState, error) {
	if in == nil || in.Session == nil {
		return nil, fmt.Errorf("%w: graph session is nil", contractx.ErrValidation)
	}

	result, err := g.executor(ctx, in.Session, in.Tool, in.Args)
	if err != nil {
		return nil, fmt.Errorf("execute tool %s: %w", in.Tool, err)
	}
	in.Result = result
	return in, nil
}

func (g *Gateway) saveState(ctx context.Context, in *graphState) (*graphState, error) {
	if in == nil || in.Session == nil {
		return nil, fmt.Errorf("%w: graph session is nil", contractx.ErrValidation)
	}

	if in.Result.EndConversation {
		// The conversation is over; a delete miss only costs storage.
		if err := g.store.Delete(ctx, in.ConversationID); err != nil {
			log.Warn().Err(err).Str("conversation_id", in.ConversationID).Msg("failed to delete finished conversation state")
		}
		return in, nil
	}

	in.Session.Touch(in.Now)
	if err := g.store.Save(ctx, in.Session); err != nil {
		return nil, err
	}
	return in, nil
}

func finalizeReply(in *graphState) (GraphOutput, error) {
	if in == nil {
		return GraphOutput{}, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	reply := strings.TrimSpace(in.Result.Reply)
	if reply == "" && in.Result.Error != "" {
		reply = in.Result.Error
	}
	if reply == "" {
		return GraphOutput{}, fmt.Errorf("%w: tool %s returned an empty reply", contractx.ErrValidation, in.Tool)
	}
	return GraphOutput{
		ConversationID:  in.ConversationID,
		Reply:           reply,
		EndConversation: in.Result.EndConversation,
	}, nil
}
