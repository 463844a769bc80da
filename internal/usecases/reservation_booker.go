package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/foodiespot/concierge/internal/domain"
	"github.com/foodiespot/concierge/internal/telemetry"
)

// BookReservationParams holds the input for booking a table.
type BookReservationParams struct {
	RestaurantID string
	CustomerName string
	Date         string
	Time         string
	PartySize    int
	Email        *string
	Phone        *string
}

// ReservationBooker defines the interface for booking reservations.
type ReservationBooker interface {
	Book(ctx context.Context, params BookReservationParams) (domain.Reservation, error)
}

// ReservationBookerImpl is the implementation of the ReservationBooker use case.
type ReservationBookerImpl struct {
	restaurantRepo  domain.RestaurantRepository
	reservationRepo domain.ReservationRepository
	availability    AvailabilityEngine
	timeProvider    domain.CurrentTimeProvider
	guard           *slotGuard
}

// NewReservationBookerImpl creates a new instance of ReservationBookerImpl.
func NewReservationBookerImpl(
	restaurantRepo domain.RestaurantRepository,
	reservationRepo domain.ReservationRepository,
	availability AvailabilityEngine,
	timeProvider domain.CurrentTimeProvider,
	guard *slotGuard,
) ReservationBookerImpl {
	return ReservationBookerImpl{
		restaurantRepo:  restaurantRepo,
		reservationRepo: reservationRepo,
		availability:    availability,
		timeProvider:    timeProvider,
		guard:           guard,
	}
}

// Book validates and persists a new reservation. Checks run in a fixed order
// and the first failure wins: restaurant existence, capacity, date format,
// time format, party size, slot availability.
func (rb ReservationBookerImpl) Book(ctx context.Context, params BookReservationParams) (domain.Reservation, error) {
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.String("restaurant.id", params.RestaurantID),
			attribute.String("reservation.date", params.Date),
			attribute.String("reservation.time", params.Time),
			attribute.Int("reservation.party_size", params.PartySize),
		),
	)
	defer span.End()

	restaurant, found, err := rb.restaurantRepo.GetRestaurant(spanCtx, params.RestaurantID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Reservation{}, domain.NewPersistenceErr("failed to load restaurant", err)
	}
	if !found {
		return domain.Reservation{}, domain.NewNotFoundErr(fmt.Sprintf("restaurant %q does not exist", params.RestaurantID))
	}

	if params.PartySize > restaurant.Capacity {
		return domain.Reservation{}, domain.NewValidationErr(
			fmt.Sprintf("party size %d exceeds restaurant capacity of %d", params.PartySize, restaurant.Capacity),
		)
	}

	if _, err := domain.ParseDate(params.Date); err != nil {
		return domain.Reservation{}, err
	}

	if _, err := domain.ParseClockTime(params.Time); err != nil {
		return domain.Reservation{}, err
	}

	if params.PartySize <= 0 {
		return domain.Reservation{}, domain.NewValidationErr(
			fmt.Sprintf("invalid party size %d, must be a positive number", params.PartySize),
		)
	}

	unlock := rb.guard.Lock(params.RestaurantID, params.Date)
	defer unlock()

	slots, err := rb.availability.ComputeAvailableSlots(spanCtx, params.RestaurantID, params.Date,
		domain.WithPreferredTime(params.Time),
		domain.WithPartySize(params.PartySize),
	)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Reservation{}, err
	}
	if !containsSlot(slots, params.Time) {
		return domain.Reservation{}, domain.NewConflictErr("the requested time slot is not available")
	}

	now := rb.timeProvider.Now()
	reservation := domain.Reservation{
		ID:           domain.NewReservationID(now),
		RestaurantID: params.RestaurantID,
		CustomerName: params.CustomerName,
		Date:         params.Date,
		Time:         params.Time,
		PartySize:    params.PartySize,
		Email:        params.Email,
		Phone:        params.Phone,
		Status:       domain.ReservationStatus_Confirmed,
		CreatedAt:    now,
	}

	if err := reservation.Validate(); err != nil {
		return domain.Reservation{}, err
	}

	if err := rb.reservationRepo.UpsertReservation(spanCtx, reservation); err != nil {
		telemetry.RecordErrorAndStatus(span, err)
		return domain.Reservation{}, domain.NewPersistenceErr("failed to save reservation", err)
	}

	RecordReservationBooked(spanCtx, params.RestaurantID)
	return reservation, nil
}

func containsSlot(slots []string, time string) bool {
	for _, slot := range slots {
		if slot == time {
			return true
		}
	}
	return false
}

// InitReservationBooker initializes the ReservationBooker and registers it in the dependency container.
type InitReservationBooker struct {
	RestaurantRepo  domain.RestaurantRepository  `resolve:""`
	ReservationRepo domain.ReservationRepository `resolve:""`
	Availability    AvailabilityEngine           `resolve:""`
	TimeProvider    domain.CurrentTimeProvider   `resolve:""`
	Guard           *slotGuard                   `resolve:""`
}

// Initialize initializes the ReservationBookerImpl use case and registers it in the dependency container.
func (irb InitReservationBooker) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ReservationBooker](NewReservationBookerImpl(
		irb.RestaurantRepo,
		irb.ReservationRepo,
		irb.Availability,
		irb.TimeProvider,
		irb.Guard,
	))
	return ctx, nil
}
