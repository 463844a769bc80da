package llmapi

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"

	"github.com/foodiespot/concierge/internal/domain"
)

func TestGatewayAdapter_Chat(t *testing.T) {
	temp := 0.2
	maxTokens := 1000

	tests := map[string]struct {
		response     string
		statusCode   int
		req          domain.LLMChatRequest
		expectErr    bool
		expectedResp domain.LLMChatResponse
		validateReq  func(*testing.T, *ChatRequest)
	}{
		"success": {
			response:   `{"choices":[{"message":{"role":"assistant","content":"Hello!"}}],"usage":{"completion_tokens":10,"prompt_tokens":10,"total_tokens":20}}`,
			statusCode: http.StatusOK,
			req: domain.LLMChatRequest{
				Model: "test-model",
				Messages: []domain.LLMChatMessage{
					{Role: "user", Content: "hi"},
				},
			},
			expectedResp: domain.LLMChatResponse{
				Content: "Hello!",
				Usage:   domain.LLMUsage{PromptTokens: 10, CompletionTokens: 10, TotalTokens: 20},
			},
		},
		"tool-calls-mapped": {
			response:   `{"choices":[{"message":{"role":"assistant","tool_calls":[{"id":"call_1","type":"function","function":{"name":"search_restaurants","arguments":"{\"cuisine\":\"Italian\"}"}}]}}]}`,
			statusCode: http.StatusOK,
			req: domain.LLMChatRequest{
				Model: "test-model",
				Messages: []domain.LLMChatMessage{
					{Role: "user", Content: "find italian food"},
				},
			},
			expectedResp: domain.LLMChatResponse{
				ToolCalls: []domain.LLMToolCall{
					{ID: "call_1", Function: "search_restaurants", Arguments: `{"cuisine":"Italian"}`},
				},
			},
		},
		"with-params-and-tools": {
			response:   `{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`,
			statusCode: http.StatusOK,
			req: domain.LLMChatRequest{
				Model:       "test-model",
				Temperature: &temp,
				MaxTokens:   &maxTokens,
				Messages: []domain.LLMChatMessage{
					{Role: "system", Content: "sys"},
					{Role: "user", Content: "hi"},
				},
				Tools: []domain.LLMToolDefinition{
					{
						Type: "function",
						Function: domain.LLMToolFunction{
							Name: "check_availability",
							Parameters: domain.LLMToolFunctionParameters{
								Type: "object",
								Properties: map[string]domain.LLMToolFunctionParameterDetail{
									"restaurant_id": {Type: "string", Required: true},
									"date":          {Type: "string", Required: true},
									"time":          {Type: "string", Required: false},
								},
							},
						},
					},
				},
			},
			expectedResp: domain.LLMChatResponse{Content: "ok"},
			validateReq: func(t *testing.T, req *ChatRequest) {
				assert.Equal(t, "test-model", req.Model)
				assert.NotNil(t, req.Temperature)
				assert.InDelta(t, 0.2, *req.Temperature, 1e-6)
				assert.NotNil(t, req.MaxTokens)
				assert.Equal(t, 1000, *req.MaxTokens)
				assert.Len(t, req.Messages, 2)
				assert.Len(t, req.Tools, 1)
				assert.Equal(t, []string{"date", "restaurant_id"}, req.Tools[0].Function.Parameters.Required)
			},
		},
		"no-choices": {
			response:   `{"choices":[]}`,
			statusCode: http.StatusOK,
			req: domain.LLMChatRequest{
				Model: "test-model",
				Messages: []domain.LLMChatMessage{
					{Role: "user", Content: "hi"},
				},
			},
			expectErr: true,
		},
		"server-error": {
			response:   `Internal Server Error`,
			statusCode: http.StatusInternalServerError,
			req: domain.LLMChatRequest{
				Model: "test-model",
				Messages: []domain.LLMChatMessage{
					{Role: "user", Content: "hi"},
				},
			},
			expectErr: true,
		},
		"invalid-json": {
			response:   `{invalid json}`,
			statusCode: http.StatusOK,
			req: domain.LLMChatRequest{
				Model: "test-model",
				Messages: []domain.LLMChatMessage{
					{Role: "user", Content: "hi"},
				},
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var capturedReq *ChatRequest

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.validateReq != nil {
					var req ChatRequest
					json.NewDecoder(r.Body).Decode(&req) //nolint:errcheck
					capturedReq = &req
				}

				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.response)) //nolint:errcheck
			}))
			defer server.Close()

			client := NewGatewayAPIClient(server.URL, "", server.Client())
			adapter := NewGatewayAdapter(client)

			resp, err := adapter.Chat(context.Background(), tt.req)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedResp, resp)

			if tt.validateReq != nil && capturedReq != nil {
				tt.validateReq(t, capturedReq)
			}
		})
	}
}

func TestGatewayAPIClient_Chat_ValidationErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`)) //nolint:errcheck
	}))
	defer server.Close()

	client := NewGatewayAPIClient(server.URL, "", server.Client())

	tests := map[string]struct {
		req ChatRequest
	}{
		"no-model":    {req: ChatRequest{Messages: []ChatMessage{{Role: "user", Content: "hi"}}}},
		"no-messages": {req: ChatRequest{Model: "test"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := client.Chat(context.Background(), tt.req)
			assert.Error(t, err)
		})
	}
}

func TestGatewayAPIClient_Chat_BearerAuth(t *testing.T) {
	var authHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`)) //nolint:errcheck
	}))
	defer server.Close()

	client := NewGatewayAPIClient(server.URL, "secret-key", server.Client())
	_, err := client.Chat(context.Background(), ChatRequest{
		Model:    "test-model",
		Messages: []ChatMessage{{Role: "user", Content: "hi"}},
	})
	assert.NoError(t, err)
	assert.Equal(t, "Bearer secret-key", authHeader)
}

func TestInitLLMClient_Initialize(t *testing.T) {
	i := InitLLMClient{
		Logger:     log.New(io.Discard, "", 0),
		HttpClient: http.DefaultClient,
	}

	_, err := i.Initialize(context.Background())
	assert.NoError(t, err)

	r, err := depend.Resolve[domain.LLMClient]()
	assert.NotNil(t, r)
	assert.NoError(t, err)
	assert.IsType(t, OfflineHeuristicGateway{}, r)
}
