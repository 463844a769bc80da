package domain

import "strings"

// ChatRole represents the role of a chat message.
type ChatRole string

const (
	ChatRole_User      ChatRole = "user"
	ChatRole_Assistant ChatRole = "assistant"
	ChatRole_System    ChatRole = "system"
	ChatRole_Tool      ChatRole = "tool"
)

// LLMChatMessage represents a message in a chat request to the LLM API.
type LLMChatMessage struct {
	Role       ChatRole      `yaml:"role" json:"role"`
	Content    string        `yaml:"content" json:"content"`
	ToolCallID *string       `yaml:"-" json:"tool_call_id,omitempty"`
	ToolCalls  []LLMToolCall `yaml:"-" json:"tool_calls,omitempty"`
}

// IsToolCallSuccess returns true if the chat message is a tool result
// and indicates success based on its content.
func (m LLMChatMessage) IsToolCallSuccess() bool {
	return m.Role == ChatRole_Tool &&
		m.ToolCallID != nil &&
		!strings.Contains(m.Content, "error")
}

// LLMToolCall is a structured function invocation emitted by the model.
type LLMToolCall struct {
	ID        string `json:"id"`
	Function  string `json:"function"`
	Arguments string `json:"arguments"`
}

// LLMChatRequest represents a request to the LLM API.
type LLMChatRequest struct {
	Model    string
	Messages []LLMChatMessage
	// Optional parameters.
	Temperature *float64
	TopP        *float64
	MaxTokens   *int
	// Tools holds the tool schema offered to the model. When empty the model
	// must answer in prose and emit no tool calls.
	Tools []LLMToolDefinition
}

// LLMUsage contains token usage information.
type LLMUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// LLMChatResponse represents the response from a chat request to the LLM API.
type LLMChatResponse struct {
	Content   string
	ToolCalls []LLMToolCall
	Usage     LLMUsage
}
