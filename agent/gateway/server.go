package gateway

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	contractx "github.com/paramgevariya123-creator/ten-days-of-voice-agents-2025/agent/contract"
)

type toolCallResponse struct {
	ConversationID  string `json:"conversation_id"`
	Reply           string `json:"reply"`
	EndConversation bool   `json:"end_conversation"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handler exposes the gateway as the webhook the voice runtime calls once per
// tool decision. POST only, JSON in, JSON out.
func (g *Gateway) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/tool-call", g.handleToolCall)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

func (g *Gateway) handleToolCall(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	var req contractx.ToolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	out, err := g.HandleToolCall(r.Context(), req.ConversationID, req.Tool, req.Args)
	if err != nil {
		if errors.Is(err, contractx.ErrValidation) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		log.Error().Err(err).Str("tool", req.Tool).Msg("tool call failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, toolCallResponse{
		ConversationID:  out.ConversationID,
		Reply:           out.Reply,
		EndConversation: out.EndConversation,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
