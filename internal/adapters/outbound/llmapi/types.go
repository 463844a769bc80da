package llmapi

// ChatRequest is an OpenAI-compatible chat completions request
type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature *float64      `json:"temperature,omitempty"`
	MaxTokens   *int          `json:"max_tokens,omitempty"`
	TopP        *float64      `json:"top_p,omitempty"`
	Tools       []Tool        `json:"tools,omitempty"`
}

// Tool represents a tool the model may call (OpenAI function tool)
type Tool struct {
	Type     string   `json:"type"`
	Function ToolFunc `json:"function"`
}

// ToolFunc represents the function object in a tool
type ToolFunc struct {
	Description string             `json:"description"`
	Name        string             `json:"name"`
	Parameters  ToolFuncParameters `json:"parameters"`
}

// ToolFuncParameters represents the parameters schema for a function tool (OpenAI JSON Schema)
type ToolFuncParameters struct {
	Type                 string                             `json:"type"`
	Properties           map[string]ToolFuncParameterDetail `json:"properties"`
	Required             []string                           `json:"required,omitempty"`
	AdditionalProperties bool                               `json:"additionalProperties"`
}

// ToolFuncParameterDetail represents a single parameter in the function tool schema
type ToolFuncParameterDetail struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// ChatMessage is an OpenAI-compatible message
type ChatMessage struct {
	Role       string     `json:"role"`
	Content    string     `json:"content,omitempty"`
	ToolCallID *string    `json:"tool_call_id,omitempty"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
}

// ChatResponse is an OpenAI-compatible response
type ChatResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   *Usage   `json:"usage"`
}

// Choice represents a completion choice
type Choice struct {
	Index        int     `json:"index"`
	FinishReason string  `json:"finish_reason"`
	Message      Message `json:"message"`
}

// Message represents the assistant message
type Message struct {
	Role      string     `json:"role"`
	Content   string     `json:"content,omitempty"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
}

// ToolCall represents a tool call made by the model
type ToolCall struct {
	Type     string           `json:"type"`
	Function ToolCallFunction `json:"function"`
	ID       string           `json:"id"`
	Index    int              `json:"index,omitempty"`
}

// ToolCallFunction represents the function call details
type ToolCallFunction struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments,omitempty"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
