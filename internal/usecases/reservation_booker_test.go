package usecases

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/foodiespot/concierge/internal/domain"
)

func TestReservationBookerImpl_Book(t *testing.T) {
	fixedTime := time.Date(2026, 7, 15, 18, 0, 0, 0, time.UTC)
	monday := "2026-07-20"

	validParams := BookReservationParams{
		RestaurantID: "rest_1",
		CustomerName: "Ana Silva",
		Date:         monday,
		Time:         "19:00",
		PartySize:    4,
	}

	tests := map[string]struct {
		params          BookReservationParams
		setExpectations func(
			restaurantRepo *domain.MockRestaurantRepository,
			reservationRepo *domain.MockReservationRepository,
			availability *MockAvailabilityEngine,
			timeProvider *domain.MockCurrentTimeProvider,
		)
		expectedErr error
	}{
		"success": {
			params: validParams,
			setExpectations: func(
				restaurantRepo *domain.MockRestaurantRepository,
				reservationRepo *domain.MockReservationRepository,
				availability *MockAvailabilityEngine,
				timeProvider *domain.MockCurrentTimeProvider,
			) {
				restaurantRepo.EXPECT().GetRestaurant(mock.Anything, "rest_1").Return(catalogRestaurant(), true, nil)
				availability.EXPECT().ComputeAvailableSlots(mock.Anything, "rest_1", monday, mock.Anything, mock.Anything).
					Return([]string{"18:30", "19:00", "19:30"}, nil)
				timeProvider.EXPECT().Now().Return(fixedTime)
				reservationRepo.EXPECT().UpsertReservation(mock.Anything, mock.MatchedBy(func(r domain.Reservation) bool {
					return r.RestaurantID == "rest_1" &&
						r.Time == "19:00" &&
						r.Status == domain.ReservationStatus_Confirmed &&
						strings.HasPrefix(r.ID, "res_20260715180000_")
				})).Return(nil)
			},
		},
		"restaurant-not-found": {
			params: validParams,
			setExpectations: func(
				restaurantRepo *domain.MockRestaurantRepository,
				reservationRepo *domain.MockReservationRepository,
				availability *MockAvailabilityEngine,
				timeProvider *domain.MockCurrentTimeProvider,
			) {
				restaurantRepo.EXPECT().GetRestaurant(mock.Anything, "rest_1").Return(domain.Restaurant{}, false, nil)
			},
			expectedErr: domain.NewNotFoundErr(`restaurant "rest_1" does not exist`),
		},
		"capacity-check-wins-over-slot-check": {
			params: BookReservationParams{
				RestaurantID: "rest_1",
				CustomerName: "Ana Silva",
				Date:         monday,
				Time:         "19:00",
				PartySize:    80,
			},
			setExpectations: func(
				restaurantRepo *domain.MockRestaurantRepository,
				reservationRepo *domain.MockReservationRepository,
				availability *MockAvailabilityEngine,
				timeProvider *domain.MockCurrentTimeProvider,
			) {
				restaurantRepo.EXPECT().GetRestaurant(mock.Anything, "rest_1").Return(catalogRestaurant(), true, nil)
			},
			expectedErr: domain.NewValidationErr("party size 80 exceeds restaurant capacity of 60"),
		},
		"invalid-date": {
			params: BookReservationParams{
				RestaurantID: "rest_1",
				CustomerName: "Ana Silva",
				Date:         "07/20/2026",
				Time:         "19:00",
				PartySize:    4,
			},
			setExpectations: func(
				restaurantRepo *domain.MockRestaurantRepository,
				reservationRepo *domain.MockReservationRepository,
				availability *MockAvailabilityEngine,
				timeProvider *domain.MockCurrentTimeProvider,
			) {
				restaurantRepo.EXPECT().GetRestaurant(mock.Anything, "rest_1").Return(catalogRestaurant(), true, nil)
			},
			expectedErr: domain.NewValidationErr(`invalid date "07/20/2026", expected YYYY-MM-DD`),
		},
		"invalid-time": {
			params: BookReservationParams{
				RestaurantID: "rest_1",
				CustomerName: "Ana Silva",
				Date:         monday,
				Time:         "7pm",
				PartySize:    4,
			},
			setExpectations: func(
				restaurantRepo *domain.MockRestaurantRepository,
				reservationRepo *domain.MockReservationRepository,
				availability *MockAvailabilityEngine,
				timeProvider *domain.MockCurrentTimeProvider,
			) {
				restaurantRepo.EXPECT().GetRestaurant(mock.Anything, "rest_1").Return(catalogRestaurant(), true, nil)
			},
			expectedErr: domain.NewValidationErr(`invalid time "7pm", expected HH:MM`),
		},
		"invalid-party-size": {
			params: BookReservationParams{
				RestaurantID: "rest_1",
				CustomerName: "Ana Silva",
				Date:         monday,
				Time:         "19:00",
				PartySize:    0,
			},
			setExpectations: func(
				restaurantRepo *domain.MockRestaurantRepository,
				reservationRepo *domain.MockReservationRepository,
				availability *MockAvailabilityEngine,
				timeProvider *domain.MockCurrentTimeProvider,
			) {
				restaurantRepo.EXPECT().GetRestaurant(mock.Anything, "rest_1").Return(catalogRestaurant(), true, nil)
			},
			expectedErr: domain.NewValidationErr("invalid party size 0, must be a positive number"),
		},
		"slot-unavailable": {
			params: validParams,
			setExpectations: func(
				restaurantRepo *domain.MockRestaurantRepository,
				reservationRepo *domain.MockReservationRepository,
				availability *MockAvailabilityEngine,
				timeProvider *domain.MockCurrentTimeProvider,
			) {
				restaurantRepo.EXPECT().GetRestaurant(mock.Anything, "rest_1").Return(catalogRestaurant(), true, nil)
				availability.EXPECT().ComputeAvailableSlots(mock.Anything, "rest_1", monday, mock.Anything, mock.Anything).
					Return([]string{"18:30", "19:30"}, nil)
			},
			expectedErr: domain.NewConflictErr("the requested time slot is not available"),
		},
		"persistence-error": {
			params: validParams,
			setExpectations: func(
				restaurantRepo *domain.MockRestaurantRepository,
				reservationRepo *domain.MockReservationRepository,
				availability *MockAvailabilityEngine,
				timeProvider *domain.MockCurrentTimeProvider,
			) {
				restaurantRepo.EXPECT().GetRestaurant(mock.Anything, "rest_1").Return(catalogRestaurant(), true, nil)
				availability.EXPECT().ComputeAvailableSlots(mock.Anything, "rest_1", monday, mock.Anything, mock.Anything).
					Return([]string{"19:00"}, nil)
				timeProvider.EXPECT().Now().Return(fixedTime)
				reservationRepo.EXPECT().UpsertReservation(mock.Anything, mock.Anything).Return(errors.New("database error"))
			},
			expectedErr: domain.NewPersistenceErr("failed to save reservation", errors.New("database error")),
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			restaurantRepo := domain.NewMockRestaurantRepository(t)
			reservationRepo := domain.NewMockReservationRepository(t)
			availability := NewMockAvailabilityEngine(t)
			timeProvider := domain.NewMockCurrentTimeProvider(t)
			if tt.setExpectations != nil {
				tt.setExpectations(restaurantRepo, reservationRepo, availability, timeProvider)
			}

			booker := NewReservationBookerImpl(restaurantRepo, reservationRepo, availability, timeProvider, newSlotGuard())
			got, gotErr := booker.Book(context.Background(), tt.params)
			assert.Equal(t, tt.expectedErr, gotErr)
			if tt.expectedErr == nil {
				assert.Equal(t, tt.params.RestaurantID, got.RestaurantID)
				assert.Equal(t, tt.params.CustomerName, got.CustomerName)
				assert.Equal(t, tt.params.Date, got.Date)
				assert.Equal(t, tt.params.Time, got.Time)
				assert.Equal(t, tt.params.PartySize, got.PartySize)
				assert.Equal(t, domain.ReservationStatus_Confirmed, got.Status)
			} else {
				assert.Equal(t, domain.Reservation{}, got)
			}
		})
	}
}
