package llmapi

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sort"

	"github.com/cleitonmarx/symbiont/depend"

	"github.com/foodiespot/concierge/internal/domain"
	"github.com/foodiespot/concierge/internal/telemetry"
)

// GatewayAdapter adapts GatewayAPIClient to the domain.LLMClient interface
type GatewayAdapter struct {
	client GatewayAPIClient
}

// NewGatewayAdapter creates a new adapter
func NewGatewayAdapter(client GatewayAPIClient) GatewayAdapter {
	return GatewayAdapter{client: client}
}

// Chat implements domain.LLMClient.Chat
func (a GatewayAdapter) Chat(ctx context.Context, req domain.LLMChatRequest) (domain.LLMChatResponse, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	adapterReq := ChatRequest{
		Model:       req.Model,
		Temperature: req.Temperature,
		TopP:        req.TopP,
		MaxTokens:   req.MaxTokens,
		Messages:    mapMessages(req.Messages),
		Tools:       mapTools(req.Tools),
	}

	resp, err := a.client.Chat(spanCtx, adapterReq)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.LLMChatResponse{}, err
	}

	if len(resp.Choices) == 0 {
		err := errors.New("no choices in response")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.LLMChatResponse{}, err
	}

	out := domain.LLMChatResponse{
		Content: resp.Choices[0].Message.Content,
	}
	for _, call := range resp.Choices[0].Message.ToolCalls {
		out.ToolCalls = append(out.ToolCalls, domain.LLMToolCall{
			ID:        call.ID,
			Function:  call.Function.Name,
			Arguments: call.Function.Arguments,
		})
	}
	if resp.Usage != nil {
		out.Usage = domain.LLMUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

func mapMessages(messages []domain.LLMChatMessage) []ChatMessage {
	out := make([]ChatMessage, len(messages))
	for i, msg := range messages {
		out[i] = ChatMessage{
			Role:       string(msg.Role),
			Content:    msg.Content,
			ToolCallID: msg.ToolCallID,
		}
		for _, call := range msg.ToolCalls {
			out[i].ToolCalls = append(out[i].ToolCalls, ToolCall{
				Type: "function",
				ID:   call.ID,
				Function: ToolCallFunction{
					Name:      call.Function,
					Arguments: call.Arguments,
				},
			})
		}
	}
	return out
}

func mapTools(tools []domain.LLMToolDefinition) []Tool {
	out := make([]Tool, 0, len(tools))
	for _, tool := range tools {
		properties := make(map[string]ToolFuncParameterDetail, len(tool.Function.Parameters.Properties))
		required := []string{}
		for name, detail := range tool.Function.Parameters.Properties {
			properties[name] = ToolFuncParameterDetail{
				Type:        detail.Type,
				Description: detail.Description,
			}
			if detail.Required {
				required = append(required, name)
			}
		}
		// Map iteration order is random, so keep the schema stable.
		sort.Strings(required)

		out = append(out, Tool{
			Type: tool.Type,
			Function: ToolFunc{
				Name:        tool.Function.Name,
				Description: tool.Function.Description,
				Parameters: ToolFuncParameters{
					Type:       tool.Function.Parameters.Type,
					Properties: properties,
					Required:   required,
				},
			},
		})
	}
	return out
}

// InitLLMClient initializes the LLMClient dependency. When no API key is
// configured it falls back to the offline heuristic gateway, so the service
// stays usable without external credentials.
type InitLLMClient struct {
	Logger     *log.Logger  `resolve:""`
	HttpClient *http.Client `resolve:""`
	APIHost    string       `config:"LLM_API_HOST" default:"https://api.groq.com/openai"`
	APIKey     string       `config:"LLM_API_KEY" default:""`
}

// Initialize registers the LLMClient
func (i InitLLMClient) Initialize(ctx context.Context) (context.Context, error) {
	if i.APIKey == "" {
		i.Logger.Println("LLM_API_KEY not set, using offline heuristic gateway")
		depend.Register[domain.LLMClient](NewOfflineHeuristicGateway())
		return ctx, nil
	}

	depend.Register[domain.LLMClient](NewGatewayAdapter(
		NewGatewayAPIClient(i.APIHost, i.APIKey, i.HttpClient),
	))
	return ctx, nil
}
