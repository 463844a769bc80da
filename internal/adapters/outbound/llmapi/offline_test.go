package llmapi

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foodiespot/concierge/internal/domain"
)

func offlineRequest(userText string) domain.LLMChatRequest {
	return domain.LLMChatRequest{
		Model: "offline",
		Messages: []domain.LLMChatMessage{
			{Role: domain.ChatRole_User, Content: userText},
		},
		Tools: []domain.LLMToolDefinition{
			{Type: "function", Function: domain.LLMToolFunction{Name: "search_restaurants"}},
		},
	}
}

func TestOfflineHeuristicGateway_Chat_ToolSelection(t *testing.T) {
	tests := map[string]struct {
		userText         string
		expectedFunction string
		expectedArgs     map[string]any
	}{
		"book-intent": {
			userText:         "Book a table at rest_1 on 2026-07-20 at 19:00 for 4 under Ana Silva",
			expectedFunction: "make_reservation",
			expectedArgs: map[string]any{
				"restaurant_id": "rest_1",
				"customer_name": "Ana Silva",
				"date":          "2026-07-20",
				"time":          "19:00",
				"party_size":    float64(4),
			},
		},
		"book-intent-pads-short-time": {
			userText:         "reserve rest_2 on 2026-07-21 at 9:30 for 2, name is Bruno",
			expectedFunction: "make_reservation",
			expectedArgs: map[string]any{
				"restaurant_id": "rest_2",
				"customer_name": "Bruno",
				"date":          "2026-07-21",
				"time":          "09:30",
				"party_size":    float64(2),
			},
		},
		"availability-intent": {
			userText:         "what slots are available at rest_1 on 2026-07-20?",
			expectedFunction: "check_availability",
			expectedArgs: map[string]any{
				"restaurant_id": "rest_1",
				"date":          "2026-07-20",
			},
		},
		"details-intent": {
			userText:         "tell me more about rest_3",
			expectedFunction: "get_restaurant_details",
			expectedArgs: map[string]any{
				"restaurant_id": "rest_3",
			},
		},
		"search-by-cuisine-and-location": {
			userText:         "I'm craving italian downtown for 6",
			expectedFunction: "search_restaurants",
			expectedArgs: map[string]any{
				"cuisine":    "Italian",
				"location":   "Downtown",
				"party_size": float64(6),
			},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			gateway := NewOfflineHeuristicGateway()
			resp, err := gateway.Chat(context.Background(), offlineRequest(tt.userText))
			assert.NoError(t, err)
			assert.Len(t, resp.ToolCalls, 1)
			assert.Equal(t, tt.expectedFunction, resp.ToolCalls[0].Function)

			args := map[string]any{}
			assert.NoError(t, json.Unmarshal([]byte(resp.ToolCalls[0].Arguments), &args))
			assert.Equal(t, tt.expectedArgs, args)
		})
	}
}

func TestOfflineHeuristicGateway_Chat_MissingParameters(t *testing.T) {
	tests := map[string]struct {
		userText        string
		expectedContent string
	}{
		"book-without-details": {
			userText: "I'd like to make a reservation",
			expectedContent: "(offline mode) To book a table I still need the restaurant id, " +
				"the date (YYYY-MM-DD), the time (HH:MM), the party size, the name for the reservation.",
		},
		"availability-without-date": {
			userText:        "is rest_1 open?",
			expectedContent: "(offline mode) To check availability I need a restaurant id and a date in YYYY-MM-DD format.",
		},
		"details-without-id": {
			userText:        "tell me more about the bistro",
			expectedContent: "(offline mode) Which restaurant would you like details for? A restaurant id like rest_1 works best.",
		},
		"search-without-criteria": {
			userText:        "I'm hungry",
			expectedContent: "(offline mode) What kind of restaurant are you looking for? A cuisine or a neighborhood helps.",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			gateway := NewOfflineHeuristicGateway()
			resp, err := gateway.Chat(context.Background(), offlineRequest(tt.userText))
			assert.NoError(t, err)
			assert.Empty(t, resp.ToolCalls)
			assert.Equal(t, tt.expectedContent, resp.Content)
		})
	}
}

func TestOfflineHeuristicGateway_Chat_GroundingTurn(t *testing.T) {
	t.Run("relays-tool-results", func(t *testing.T) {
		gateway := NewOfflineHeuristicGateway()
		resp, err := gateway.Chat(context.Background(), domain.LLMChatRequest{
			Model: "offline",
			Messages: []domain.LLMChatMessage{
				{Role: domain.ChatRole_User, Content: "find italian food"},
				{Role: domain.ChatRole_Tool, Content: "Here are some restaurants that match your criteria:"},
			},
		})
		assert.NoError(t, err)
		assert.Equal(t, "(offline mode) Here are some restaurants that match your criteria:", resp.Content)
	})

	t.Run("no-tool-results", func(t *testing.T) {
		gateway := NewOfflineHeuristicGateway()
		resp, err := gateway.Chat(context.Background(), domain.LLMChatRequest{
			Model: "offline",
			Messages: []domain.LLMChatMessage{
				{Role: domain.ChatRole_User, Content: "hello"},
			},
		})
		assert.NoError(t, err)
		assert.Equal(t, "(offline mode) I can help you search restaurants, check availability, and make reservations.", resp.Content)
	})
}
