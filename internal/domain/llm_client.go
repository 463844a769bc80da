package domain

import "context"

// LLMClient defines the interface for interacting with the LLM API.
type LLMClient interface {
	// Chat sends a chat request and returns the model's full response.
	Chat(ctx context.Context, request LLMChatRequest) (LLMChatResponse, error)
}
