package http

import (
	"encoding/json"
	"net/http"

	"github.com/foodiespot/concierge/internal/domain"
)

// ChatRequest is the payload for a conversation turn.
type ChatRequest struct {
	Message  string                  `json:"message"`
	UserName string                  `json:"user_name"`
	History  []domain.LLMChatMessage `json:"history,omitempty"`
}

// ChatResponse is the outcome of a conversation turn.
type ChatResponse struct {
	Reply       string                  `json:"reply"`
	ToolResults []string                `json:"tool_results,omitempty"`
	Messages    []domain.LLMChatMessage `json:"messages"`
}

// Chat processes one conversation turn.
// (POST /api/chat)
func (api ConciergeServer) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResp{Error: "invalid request body"})
		return
	}
	if req.UserName == "" {
		req.UserName = "Guest"
	}

	result, err := api.ConverseUseCase.Execute(r.Context(), req.Message, req.UserName, req.History)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, ChatResponse{
		Reply:       result.Reply,
		ToolResults: result.ToolResults,
		Messages:    result.Messages,
	})
}
