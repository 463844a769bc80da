package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/foodiespot/concierge/internal/domain"
	"github.com/foodiespot/concierge/internal/usecases"
)

func serializeJSON(t *testing.T, payload any) []byte {
	t.Helper()
	data, err := json.Marshal(payload)
	assert.NoError(t, err)
	return data
}

func TestConciergeServer_Chat(t *testing.T) {
	tests := map[string]struct {
		requestBody    []byte
		setupMocks     func(*usecases.MockConverse)
		expectedStatus int
		expectedReply  string
		expectedError  string
	}{
		"success": {
			requestBody: serializeJSON(t, ChatRequest{
				Message:  "find me italian food",
				UserName: "Ana",
			}),
			setupMocks: func(m *usecases.MockConverse) {
				m.EXPECT().
					Execute(mock.Anything, "find me italian food", "Ana", mock.Anything).
					Return(usecases.ConverseResult{Reply: "Here are some Italian spots."}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedReply:  "Here are some Italian spots.",
		},
		"defaults-user-name-to-guest": {
			requestBody: serializeJSON(t, ChatRequest{
				Message: "hello",
			}),
			setupMocks: func(m *usecases.MockConverse) {
				m.EXPECT().
					Execute(mock.Anything, "hello", "Guest", mock.Anything).
					Return(usecases.ConverseResult{Reply: "Hi!"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedReply:  "Hi!",
		},
		"empty-message": {
			requestBody: serializeJSON(t, ChatRequest{
				Message:  "",
				UserName: "Ana",
			}),
			setupMocks: func(m *usecases.MockConverse) {
				m.EXPECT().
					Execute(mock.Anything, "", "Ana", mock.Anything).
					Return(usecases.ConverseResult{}, domain.NewValidationErr("message cannot be empty"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "message cannot be empty",
		},
		"invalid-json-body": {
			requestBody:    []byte(`{"message":`),
			setupMocks:     func(m *usecases.MockConverse) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid request body",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			converse := usecases.NewMockConverse(t)
			tt.setupMocks(converse)

			api := ConciergeServer{ConverseUseCase: converse}
			req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(tt.requestBody))
			rec := httptest.NewRecorder()
			api.Chat(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedError != "" {
				var errResp ErrorResp
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
				assert.Equal(t, tt.expectedError, errResp.Error)
				return
			}

			var resp ChatResponse
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedReply, resp.Reply)
		})
	}
}

func TestConciergeServer_Health(t *testing.T) {
	api := ConciergeServer{}
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	api.Health(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
