package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/foodiespot/concierge/internal/domain"
)

func searchCall(arguments string) domain.LLMToolCall {
	return domain.LLMToolCall{ID: "call_1", Function: "search_restaurants", Arguments: arguments}
}

func TestRestaurantSearchTool_Call(t *testing.T) {
	tests := map[string]struct {
		arguments       string
		setExpectations func(finder *MockRestaurantFinder)
		assertContent   func(t *testing.T, content string)
	}{
		"success": {
			arguments: `{"cuisine":"Italian","location":"Downtown"}`,
			setExpectations: func(finder *MockRestaurantFinder) {
				finder.EXPECT().Search(mock.Anything, SearchCriteria{
					Cuisine:  strPtr("Italian"),
					Location: strPtr("Downtown"),
				}, DEFAULT_SEARCH_LIMIT).Return(finderCatalog()[:1], nil)
			},
			assertContent: func(t *testing.T, content string) {
				assert.Contains(t, content, "The Tasty Italian")
			},
		},
		"unknown-field-rejected": {
			arguments: `{"cuisine":"Italian","open_now":true}`,
			assertContent: func(t *testing.T, content string) {
				assert.Contains(t, content, "invalid_arguments")
				assert.Contains(t, content, "open_now")
			},
		},
		"trailing-json-rejected": {
			arguments: `{"cuisine":"Italian"}{"cuisine":"French"}`,
			assertContent: func(t *testing.T, content string) {
				assert.Contains(t, content, "invalid_arguments")
			},
		},
		"search-error": {
			arguments: `{}`,
			setExpectations: func(finder *MockRestaurantFinder) {
				finder.EXPECT().Search(mock.Anything, SearchCriteria{}, DEFAULT_SEARCH_LIMIT).
					Return(nil, errors.New("database error"))
			},
			assertContent: func(t *testing.T, content string) {
				assert.Contains(t, content, "search_error")
			},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			finder := NewMockRestaurantFinder(t)
			if tt.setExpectations != nil {
				tt.setExpectations(finder)
			}

			tool := NewRestaurantSearchTool(finder)
			got := tool.Call(context.Background(), searchCall(tt.arguments), nil)
			assert.Equal(t, domain.ChatRole_Tool, got.Role)
			assert.Equal(t, "call_1", *got.ToolCallID)
			tt.assertContent(t, got.Content)
		})
	}
}

func TestRestaurantDetailsTool_Call(t *testing.T) {
	call := domain.LLMToolCall{ID: "call_2", Function: "get_restaurant_details", Arguments: `{"restaurant_id":"rest_1"}`}

	t.Run("found", func(t *testing.T) {
		finder := NewMockRestaurantFinder(t)
		finder.EXPECT().Details(mock.Anything, "rest_1").Return(finderCatalog()[0], true, nil)

		got := NewRestaurantDetailsTool(finder).Call(context.Background(), call, nil)
		assert.Contains(t, got.Content, "# The Tasty Italian")
		assert.Contains(t, got.Content, "**Cuisine:** Italian")
	})

	t.Run("not-found", func(t *testing.T) {
		finder := NewMockRestaurantFinder(t)
		finder.EXPECT().Details(mock.Anything, "rest_1").Return(domain.Restaurant{}, false, nil)

		got := NewRestaurantDetailsTool(finder).Call(context.Background(), call, nil)
		assert.Equal(t, "Restaurant details not found.", got.Content)
	})
}

func TestAvailabilityCheckTool_Call(t *testing.T) {
	fixedTime := time.Date(2026, 7, 15, 18, 0, 0, 0, time.UTC)

	t.Run("explicit-date", func(t *testing.T) {
		availability := NewMockAvailabilityEngine(t)
		timeProvider := domain.NewMockCurrentTimeProvider(t)
		timeProvider.EXPECT().Now().Return(fixedTime)
		availability.EXPECT().ComputeAvailableSlots(mock.Anything, "rest_1", "2026-07-20").
			Return([]string{"19:00", "19:30"}, nil)

		call := domain.LLMToolCall{ID: "call_3", Function: "check_availability", Arguments: `{"restaurant_id":"rest_1","date":"2026-07-20"}`}
		got := NewAvailabilityCheckTool(availability, timeProvider).Call(context.Background(), call, nil)
		assert.Contains(t, got.Content, "Available time slots for 2026-07-20")
		assert.Contains(t, got.Content, "7:00 PM, 7:30 PM")
	})

	t.Run("relative-date-resolved", func(t *testing.T) {
		availability := NewMockAvailabilityEngine(t)
		timeProvider := domain.NewMockCurrentTimeProvider(t)
		timeProvider.EXPECT().Now().Return(fixedTime)
		availability.EXPECT().ComputeAvailableSlots(mock.Anything, "rest_1", "2026-07-16", mock.Anything).
			Return([]string{"19:00"}, nil)

		call := domain.LLMToolCall{ID: "call_4", Function: "check_availability", Arguments: `{"restaurant_id":"rest_1","date":"tomorrow","time":"19:00"}`}
		got := NewAvailabilityCheckTool(availability, timeProvider).Call(context.Background(), call, nil)
		assert.Contains(t, got.Content, "2026-07-16")
	})

	t.Run("date-recovered-from-history", func(t *testing.T) {
		availability := NewMockAvailabilityEngine(t)
		timeProvider := domain.NewMockCurrentTimeProvider(t)
		timeProvider.EXPECT().Now().Return(fixedTime)
		availability.EXPECT().ComputeAvailableSlots(mock.Anything, "rest_1", "2026-07-18").
			Return([]string{"12:00"}, nil)

		history := []domain.LLMChatMessage{
			{Role: domain.ChatRole_User, Content: "can I get a table on 2026-07-18?"},
		}
		call := domain.LLMToolCall{ID: "call_5", Function: "check_availability", Arguments: `{"restaurant_id":"rest_1","date":""}`}
		got := NewAvailabilityCheckTool(availability, timeProvider).Call(context.Background(), call, history)
		assert.Contains(t, got.Content, "2026-07-18")
	})

	t.Run("missing-date", func(t *testing.T) {
		availability := NewMockAvailabilityEngine(t)
		timeProvider := domain.NewMockCurrentTimeProvider(t)
		timeProvider.EXPECT().Now().Return(fixedTime)

		call := domain.LLMToolCall{ID: "call_6", Function: "check_availability", Arguments: `{"restaurant_id":"rest_1","date":""}`}
		got := NewAvailabilityCheckTool(availability, timeProvider).Call(context.Background(), call, nil)
		assert.Contains(t, got.Content, "invalid_date")
	})
}

func TestReservationMakerTool_Call(t *testing.T) {
	fixedTime := time.Date(2026, 7, 15, 18, 0, 0, 0, time.UTC)
	arguments := `{"restaurant_id":"rest_1","customer_name":"Ana Silva","date":"2026-07-20","time":"19:00","party_size":4}`
	call := domain.LLMToolCall{ID: "call_7", Function: "make_reservation", Arguments: arguments}
	bookParams := BookReservationParams{
		RestaurantID: "rest_1",
		CustomerName: "Ana Silva",
		Date:         "2026-07-20",
		Time:         "19:00",
		PartySize:    4,
	}

	t.Run("confirmation-with-restaurant-details", func(t *testing.T) {
		booker := NewMockReservationBooker(t)
		finder := NewMockRestaurantFinder(t)
		availability := NewMockAvailabilityEngine(t)
		timeProvider := domain.NewMockCurrentTimeProvider(t)
		timeProvider.EXPECT().Now().Return(fixedTime)
		booker.EXPECT().Book(mock.Anything, bookParams).Return(confirmedReservation(), nil)
		finder.EXPECT().Details(mock.Anything, "rest_1").Return(finderCatalog()[0], true, nil)

		got := NewReservationMakerTool(booker, finder, availability, timeProvider).Call(context.Background(), call, nil)
		assert.Contains(t, got.Content, "# Reservation Confirmed!")
		assert.Contains(t, got.Content, "res_20260715180000_a1b2c3d4")
	})

	t.Run("confirmation-survives-failed-enrichment", func(t *testing.T) {
		booker := NewMockReservationBooker(t)
		finder := NewMockRestaurantFinder(t)
		availability := NewMockAvailabilityEngine(t)
		timeProvider := domain.NewMockCurrentTimeProvider(t)
		timeProvider.EXPECT().Now().Return(fixedTime)
		booker.EXPECT().Book(mock.Anything, bookParams).Return(confirmedReservation(), nil)
		finder.EXPECT().Details(mock.Anything, "rest_1").Return(domain.Restaurant{}, false, errors.New("database error"))

		got := NewReservationMakerTool(booker, finder, availability, timeProvider).Call(context.Background(), call, nil)
		assert.Equal(t, "Your reservation is confirmed! Reservation ID: res_20260715180000_a1b2c3d4", got.Content)
	})

	t.Run("slot-conflict-suggests-alternatives", func(t *testing.T) {
		booker := NewMockReservationBooker(t)
		finder := NewMockRestaurantFinder(t)
		availability := NewMockAvailabilityEngine(t)
		timeProvider := domain.NewMockCurrentTimeProvider(t)
		timeProvider.EXPECT().Now().Return(fixedTime)
		booker.EXPECT().Book(mock.Anything, bookParams).
			Return(domain.Reservation{}, domain.NewConflictErr("the requested time slot is not available"))
		availability.EXPECT().SuggestAlternatives(mock.Anything, "rest_1", "2026-07-20", "19:00", 4, DEFAULT_ALTERNATIVE_COUNT).
			Return([]string{"18:30", "19:30"}, nil)

		got := NewReservationMakerTool(booker, finder, availability, timeProvider).Call(context.Background(), call, nil)
		assert.Contains(t, got.Content, "Sorry, I couldn't make the reservation")
		assert.Contains(t, got.Content, "The closest open times are: 6:30 PM, 7:30 PM.")
	})

	t.Run("validation-error-has-no-alternatives", func(t *testing.T) {
		booker := NewMockReservationBooker(t)
		finder := NewMockRestaurantFinder(t)
		availability := NewMockAvailabilityEngine(t)
		timeProvider := domain.NewMockCurrentTimeProvider(t)
		timeProvider.EXPECT().Now().Return(fixedTime)
		booker.EXPECT().Book(mock.Anything, bookParams).
			Return(domain.Reservation{}, domain.NewValidationErr("party size 80 exceeds restaurant capacity of 60"))

		got := NewReservationMakerTool(booker, finder, availability, timeProvider).Call(context.Background(), call, nil)
		assert.Contains(t, got.Content, "Sorry, I couldn't make the reservation")
		assert.NotContains(t, got.Content, "closest open times")
	})
}
