package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLLMChatMessage_IsToolCallSuccess(t *testing.T) {
	callID := "call_1"

	tests := map[string]struct {
		message  LLMChatMessage
		expected bool
	}{
		"tool-result-with-plain-content": {
			message: LLMChatMessage{
				Role:       ChatRole_Tool,
				ToolCallID: &callID,
				Content:    "Here are some restaurants that match your criteria:",
			},
			expected: true,
		},
		"tool-result-with-error-payload": {
			message: LLMChatMessage{
				Role:       ChatRole_Tool,
				ToolCallID: &callID,
				Content:    `{"error":"search_error","details":"database error"}`,
			},
			expected: false,
		},
		"assistant-message": {
			message: LLMChatMessage{
				Role:    ChatRole_Assistant,
				Content: "I found some great Italian spots.",
			},
			expected: false,
		},
		"tool-result-without-call-id": {
			message: LLMChatMessage{
				Role:    ChatRole_Tool,
				Content: "Here are some restaurants that match your criteria:",
			},
			expected: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.message.IsToolCallSuccess())
		})
	}
}
