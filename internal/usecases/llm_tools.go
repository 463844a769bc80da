package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/foodiespot/concierge/internal/domain"
)

// RestaurantSearchTool is an LLM tool for searching the restaurant catalog.
type RestaurantSearchTool struct {
	finder RestaurantFinder
}

// NewRestaurantSearchTool creates a new instance of RestaurantSearchTool.
func NewRestaurantSearchTool(finder RestaurantFinder) RestaurantSearchTool {
	return RestaurantSearchTool{
		finder: finder,
	}
}

// StatusMessage returns a status message about the tool execution.
func (t RestaurantSearchTool) StatusMessage() string {
	return "🔎 Searching restaurants..."
}

// Definition returns the LLMTool definition for the RestaurantSearchTool.
func (t RestaurantSearchTool) Definition() domain.LLMToolDefinition {
	return domain.LLMToolDefinition{
		Type: "function",
		Function: domain.LLMToolFunction{
			Name:        "search_restaurants",
			Description: "Search for restaurants based on criteria. All keys are optional; send only criteria the user explicitly stated. Allowed keys: cuisine (string), location (string), price_range (integer 1-4, maximum tier), party_size (integer). No extra keys. Valid: {\"cuisine\":\"Italian\",\"location\":\"Downtown\"}. Invalid: {\"cuisine\":\"Italian\",\"open_now\":true}.",
			Parameters: domain.LLMToolFunctionParameters{
				Type: "object",
				Properties: map[string]domain.LLMToolFunctionParameterDetail{
					"cuisine": {
						Type:        "string",
						Description: "Type of cuisine (e.g., Italian, Japanese). Optional.",
						Required:    false,
					},
					"location": {
						Type:        "string",
						Description: "Restaurant location. Optional.",
						Required:    false,
					},
					"price_range": {
						Type:        "integer",
						Description: "Maximum price range (1-4). Optional.",
						Required:    false,
					},
					"party_size": {
						Type:        "integer",
						Description: "Size of the dining party. Optional.",
						Required:    false,
					},
				},
			},
		},
	}
}

// Call executes the RestaurantSearchTool with the provided function call.
func (t RestaurantSearchTool) Call(ctx context.Context, call domain.LLMToolCall, _ []domain.LLMChatMessage) domain.LLMChatMessage {
	params := struct {
		Cuisine    *string `json:"cuisine"`
		Location   *string `json:"location"`
		PriceRange *int    `json:"price_range"`
		PartySize  *int    `json:"party_size"`
	}{}

	exampleArgs := `{"cuisine":"Italian","location":"Downtown","price_range":2,"party_size":4}`

	err := unmarshalToolArguments(call.Arguments, &params)
	if err != nil {
		return domain.LLMChatMessage{
			Role:       domain.ChatRole_Tool,
			ToolCallID: &call.ID,
			Content:    fmt.Sprintf(`{"error":"invalid_arguments","details":"%s", "example":%s}`, err.Error(), exampleArgs),
		}
	}

	restaurants, err := t.finder.Search(ctx, SearchCriteria{
		Cuisine:       params.Cuisine,
		Location:      params.Location,
		MaxPriceRange: params.PriceRange,
		PartySize:     params.PartySize,
	}, DEFAULT_SEARCH_LIMIT)
	if err != nil {
		return domain.LLMChatMessage{
			Role:       domain.ChatRole_Tool,
			ToolCallID: &call.ID,
			Content:    fmt.Sprintf(`{"error":"search_error","details":"%s"}`, err.Error()),
		}
	}

	return domain.LLMChatMessage{
		Role:       domain.ChatRole_Tool,
		ToolCallID: &call.ID,
		Content:    formatRestaurantList(restaurants),
	}
}

// RestaurantDetailsTool is an LLM tool for fetching a restaurant detail card.
type RestaurantDetailsTool struct {
	finder RestaurantFinder
}

// NewRestaurantDetailsTool creates a new instance of RestaurantDetailsTool.
func NewRestaurantDetailsTool(finder RestaurantFinder) RestaurantDetailsTool {
	return RestaurantDetailsTool{
		finder: finder,
	}
}

// StatusMessage returns a status message about the tool execution.
func (t RestaurantDetailsTool) StatusMessage() string {
	return "📋 Looking up restaurant details..."
}

// Definition returns the LLMTool definition for the RestaurantDetailsTool.
func (t RestaurantDetailsTool) Definition() domain.LLMToolDefinition {
	return domain.LLMToolDefinition{
		Type: "function",
		Function: domain.LLMToolFunction{
			Name:        "get_restaurant_details",
			Description: "Get detailed information about a restaurant. Required key: restaurant_id (string). No extra keys. If the id is unknown, call search_restaurants first. Valid: {\"restaurant_id\":\"rest_1\"}.",
			Parameters: domain.LLMToolFunctionParameters{
				Type: "object",
				Properties: map[string]domain.LLMToolFunctionParameterDetail{
					"restaurant_id": {
						Type:        "string",
						Description: "ID of the restaurant. REQUIRED.",
						Required:    true,
					},
				},
			},
		},
	}
}

// Call executes the RestaurantDetailsTool with the provided function call.
func (t RestaurantDetailsTool) Call(ctx context.Context, call domain.LLMToolCall, _ []domain.LLMChatMessage) domain.LLMChatMessage {
	params := struct {
		RestaurantID string `json:"restaurant_id"`
	}{}

	exampleArgs := `{"restaurant_id":"rest_1"}`

	err := unmarshalToolArguments(call.Arguments, &params)
	if err != nil {
		return domain.LLMChatMessage{
			Role:       domain.ChatRole_Tool,
			ToolCallID: &call.ID,
			Content:    fmt.Sprintf(`{"error":"invalid_arguments","details":"%s", "example":%s}`, err.Error(), exampleArgs),
		}
	}

	restaurant, found, err := t.finder.Details(ctx, params.RestaurantID)
	if err != nil {
		return domain.LLMChatMessage{
			Role:       domain.ChatRole_Tool,
			ToolCallID: &call.ID,
			Content:    fmt.Sprintf(`{"error":"details_error","details":"%s"}`, err.Error()),
		}
	}
	if !found {
		return domain.LLMChatMessage{
			Role:       domain.ChatRole_Tool,
			ToolCallID: &call.ID,
			Content:    "Restaurant details not found.",
		}
	}

	return domain.LLMChatMessage{
		Role:       domain.ChatRole_Tool,
		ToolCallID: &call.ID,
		Content:    formatRestaurantDetails(restaurant),
	}
}

// AvailabilityCheckTool is an LLM tool for listing open time slots.
type AvailabilityCheckTool struct {
	availability AvailabilityEngine
	timeProvider domain.CurrentTimeProvider
}

// NewAvailabilityCheckTool creates a new instance of AvailabilityCheckTool.
func NewAvailabilityCheckTool(availability AvailabilityEngine, timeProvider domain.CurrentTimeProvider) AvailabilityCheckTool {
	return AvailabilityCheckTool{
		availability: availability,
		timeProvider: timeProvider,
	}
}

// StatusMessage returns a status message about the tool execution.
func (t AvailabilityCheckTool) StatusMessage() string {
	return "📅 Checking availability..."
}

// Definition returns the LLMTool definition for the AvailabilityCheckTool.
func (t AvailabilityCheckTool) Definition() domain.LLMToolDefinition {
	return domain.LLMToolDefinition{
		Type: "function",
		Function: domain.LLMToolFunction{
			Name:        "check_availability",
			Description: "Check available time slots for a restaurant on a specific date. Required keys: restaurant_id (string) and date (YYYY-MM-DD). Optional keys: time (HH:MM, 24-hour) and party_size (integer). No extra keys. Valid: {\"restaurant_id\":\"rest_1\",\"date\":\"2026-07-15\",\"time\":\"19:00\"}.",
			Parameters: domain.LLMToolFunctionParameters{
				Type: "object",
				Properties: map[string]domain.LLMToolFunctionParameterDetail{
					"restaurant_id": {
						Type:        "string",
						Description: "ID of the restaurant. REQUIRED.",
						Required:    true,
					},
					"date": {
						Type:        "string",
						Description: "Date in YYYY-MM-DD format. REQUIRED.",
						Required:    true,
					},
					"time": {
						Type:        "string",
						Description: "Preferred time in HH:MM format. Optional.",
						Required:    false,
					},
					"party_size": {
						Type:        "integer",
						Description: "Size of the party. Optional.",
						Required:    false,
					},
				},
			},
		},
	}
}

// Call executes the AvailabilityCheckTool with the provided function call.
func (t AvailabilityCheckTool) Call(ctx context.Context, call domain.LLMToolCall, conversationHistory []domain.LLMChatMessage) domain.LLMChatMessage {
	params := struct {
		RestaurantID string  `json:"restaurant_id"`
		Date         string  `json:"date"`
		Time         *string `json:"time"`
		PartySize    *int    `json:"party_size"`
	}{}

	exampleArgs := `{"restaurant_id":"rest_1","date":"2026-07-15","time":"19:00","party_size":2}`

	err := unmarshalToolArguments(call.Arguments, &params)
	if err != nil {
		return domain.LLMChatMessage{
			Role:       domain.ChatRole_Tool,
			ToolCallID: &call.ID,
			Content:    fmt.Sprintf(`{"error":"invalid_arguments","details":"%s", "example":%s}`, err.Error(), exampleArgs),
		}
	}

	now := t.timeProvider.Now()
	date, found := resolveDateParam(params.Date, conversationHistory, now)
	if !found {
		return domain.LLMChatMessage{
			Role:       domain.ChatRole_Tool,
			ToolCallID: &call.ID,
			Content:    fmt.Sprintf(`{"error":"invalid_date","details":"Date cannot be empty. YYYY-MM-DD string is required.", "example":%s}`, exampleArgs),
		}
	}

	opts := []domain.SlotQueryOption{}
	if params.Time != nil {
		opts = append(opts, domain.WithPreferredTime(*params.Time))
	}
	if params.PartySize != nil {
		opts = append(opts, domain.WithPartySize(*params.PartySize))
	}

	slots, err := t.availability.ComputeAvailableSlots(ctx, params.RestaurantID, date, opts...)
	if err != nil {
		return domain.LLMChatMessage{
			Role:       domain.ChatRole_Tool,
			ToolCallID: &call.ID,
			Content:    fmt.Sprintf(`{"error":"availability_error","details":"%s"}`, err.Error()),
		}
	}

	return domain.LLMChatMessage{
		Role:       domain.ChatRole_Tool,
		ToolCallID: &call.ID,
		Content:    formatAvailableTimes(date, slots),
	}
}

// ReservationMakerTool is an LLM tool for booking a table.
type ReservationMakerTool struct {
	booker       ReservationBooker
	finder       RestaurantFinder
	availability AvailabilityEngine
	timeProvider domain.CurrentTimeProvider
}

// NewReservationMakerTool creates a new instance of ReservationMakerTool.
func NewReservationMakerTool(
	booker ReservationBooker,
	finder RestaurantFinder,
	availability AvailabilityEngine,
	timeProvider domain.CurrentTimeProvider,
) ReservationMakerTool {
	return ReservationMakerTool{
		booker:       booker,
		finder:       finder,
		availability: availability,
		timeProvider: timeProvider,
	}
}

// StatusMessage returns a status message about the tool execution.
func (t ReservationMakerTool) StatusMessage() string {
	return "🍽️ Booking your table..."
}

// Definition returns the LLMTool definition for the ReservationMakerTool.
func (t ReservationMakerTool) Definition() domain.LLMToolDefinition {
	return domain.LLMToolDefinition{
		Type: "function",
		Function: domain.LLMToolFunction{
			Name:        "make_reservation",
			Description: "Make a restaurant reservation. Required keys: restaurant_id (string), customer_name (string), date (YYYY-MM-DD), time (HH:MM, 24-hour), party_size (positive integer). Optional keys: email, phone. No extra keys. Valid: {\"restaurant_id\":\"rest_1\",\"customer_name\":\"Alice\",\"date\":\"2026-07-15\",\"time\":\"19:00\",\"party_size\":2}.",
			Parameters: domain.LLMToolFunctionParameters{
				Type: "object",
				Properties: map[string]domain.LLMToolFunctionParameterDetail{
					"restaurant_id": {
						Type:        "string",
						Description: "ID of the restaurant. REQUIRED.",
						Required:    true,
					},
					"customer_name": {
						Type:        "string",
						Description: "Name of the customer. REQUIRED.",
						Required:    true,
					},
					"date": {
						Type:        "string",
						Description: "Date in YYYY-MM-DD format. REQUIRED.",
						Required:    true,
					},
					"time": {
						Type:        "string",
						Description: "Time in HH:MM format. REQUIRED.",
						Required:    true,
					},
					"party_size": {
						Type:        "integer",
						Description: "Size of the party. REQUIRED.",
						Required:    true,
					},
					"email": {
						Type:        "string",
						Description: "Customer email address. Optional.",
						Required:    false,
					},
					"phone": {
						Type:        "string",
						Description: "Customer phone number. Optional.",
						Required:    false,
					},
				},
			},
		},
	}
}

// Call executes the ReservationMakerTool with the provided function call.
func (t ReservationMakerTool) Call(ctx context.Context, call domain.LLMToolCall, conversationHistory []domain.LLMChatMessage) domain.LLMChatMessage {
	params := struct {
		RestaurantID string  `json:"restaurant_id"`
		CustomerName string  `json:"customer_name"`
		Date         string  `json:"date"`
		Time         string  `json:"time"`
		PartySize    int     `json:"party_size"`
		Email        *string `json:"email"`
		Phone        *string `json:"phone"`
	}{}

	exampleArgs := `{"restaurant_id":"rest_1","customer_name":"Alice","date":"2026-07-15","time":"19:00","party_size":2}`

	err := unmarshalToolArguments(call.Arguments, &params)
	if err != nil {
		return domain.LLMChatMessage{
			Role:       domain.ChatRole_Tool,
			ToolCallID: &call.ID,
			Content:    fmt.Sprintf(`{"error":"invalid_arguments","details":"%s", "example":%s}`, err.Error(), exampleArgs),
		}
	}

	now := t.timeProvider.Now()
	if date, found := resolveDateParam(params.Date, conversationHistory, now); found {
		params.Date = date
	}

	reservation, err := t.booker.Book(ctx, BookReservationParams{
		RestaurantID: params.RestaurantID,
		CustomerName: params.CustomerName,
		Date:         params.Date,
		Time:         params.Time,
		PartySize:    params.PartySize,
		Email:        params.Email,
		Phone:        params.Phone,
	})
	if err != nil {
		content := fmt.Sprintf("Sorry, I couldn't make the reservation: %s", err.Error())

		var conflictErr *domain.ConflictErr
		if errors.As(err, &conflictErr) {
			if alternatives, altErr := t.availability.SuggestAlternatives(ctx, params.RestaurantID, params.Date, params.Time, params.PartySize, DEFAULT_ALTERNATIVE_COUNT); altErr == nil && len(alternatives) > 0 {
				display := make([]string, len(alternatives))
				for i, slot := range alternatives {
					display[i] = formatTwelveHour(slot)
				}
				content += fmt.Sprintf(" The closest open times are: %s.", strings.Join(display, ", "))
			}
		}

		return domain.LLMChatMessage{
			Role:       domain.ChatRole_Tool,
			ToolCallID: &call.ID,
			Content:    content,
		}
	}

	restaurant, found, err := t.finder.Details(ctx, params.RestaurantID)
	if err != nil || !found {
		// The booking stands even if the enrichment lookup fails.
		return domain.LLMChatMessage{
			Role:       domain.ChatRole_Tool,
			ToolCallID: &call.ID,
			Content:    fmt.Sprintf("Your reservation is confirmed! Reservation ID: %s", reservation.ID),
		}
	}

	return domain.LLMChatMessage{
		Role:       domain.ChatRole_Tool,
		ToolCallID: &call.ID,
		Content:    formatReservationConfirmation(reservation, restaurant),
	}
}

// resolveDateParam canonicalizes a date argument to YYYY-MM-DD. The parameter
// itself is tried first, including relative phrases like "tomorrow", then the
// user messages in the history, newest first.
func resolveDateParam(param string, history []domain.LLMChatMessage, referenceDate time.Time) (string, bool) {
	if _, err := domain.ParseDate(param); err == nil {
		return param, true
	}

	if date, ok := domain.ExtractDateFromText(param, referenceDate, referenceDate.Location()); ok {
		return date.Format(domain.DateLayout), true
	}

	for i := len(history) - 1; i >= 0; i-- {
		msg := history[i]
		if msg.Role != domain.ChatRole_User {
			continue
		}
		if date, ok := domain.ExtractDateFromText(msg.Content, referenceDate, referenceDate.Location()); ok {
			return date.Format(domain.DateLayout), true
		}
	}
	return "", false
}
