package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/foodiespot/concierge/internal/domain"
	"github.com/foodiespot/concierge/internal/telemetry"
)

const (
	// Bookable slots start every 30 minutes.
	SLOT_CADENCE_MINUTES = 30

	// A preferred time narrows results to slots within two hours of it.
	PREFERRED_TIME_WINDOW_MINUTES = 120

	// Default number of alternative slots suggested around an occupied time.
	DEFAULT_ALTERNATIVE_COUNT = 3
)

// AvailabilityEngine computes bookable time slots for a restaurant and date.
type AvailabilityEngine interface {
	// ComputeAvailableSlots returns the open "HH:MM" slots in ascending order.
	ComputeAvailableSlots(ctx context.Context, restaurantID, date string, opts ...domain.SlotQueryOption) ([]string, error)

	// SuggestAlternatives ranks open slots by proximity to the requested time.
	SuggestAlternatives(ctx context.Context, restaurantID, date, preferredTime string, partySize, count int) ([]string, error)
}

// AvailabilityEngineImpl is the implementation of the AvailabilityEngine use case.
type AvailabilityEngineImpl struct {
	restaurantRepo  domain.RestaurantRepository
	reservationRepo domain.ReservationRepository
}

// NewAvailabilityEngineImpl creates a new instance of AvailabilityEngineImpl.
func NewAvailabilityEngineImpl(restaurantRepo domain.RestaurantRepository, reservationRepo domain.ReservationRepository) AvailabilityEngineImpl {
	return AvailabilityEngineImpl{
		restaurantRepo:  restaurantRepo,
		reservationRepo: reservationRepo,
	}
}

// ComputeAvailableSlots returns the open "HH:MM" slots for the restaurant and
// date in ascending order. An unknown restaurant, an unparseable date, or a
// party size over capacity yields an empty result rather than an error, so
// callers can render "no slots" without branching.
func (ae AvailabilityEngineImpl) ComputeAvailableSlots(ctx context.Context, restaurantID, date string, opts ...domain.SlotQueryOption) ([]string, error) {
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.String("restaurant.id", restaurantID),
			attribute.String("reservation.date", date),
		),
	)
	defer span.End()

	params := &domain.SlotQueryParams{}
	for _, opt := range opts {
		opt(params)
	}

	restaurant, found, err := ae.restaurantRepo.GetRestaurant(spanCtx, restaurantID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	if !found {
		return []string{}, nil
	}

	if params.PartySize != nil && *params.PartySize > restaurant.Capacity {
		return []string{}, nil
	}

	parsedDate, err := domain.ParseDate(date)
	if err != nil {
		return []string{}, nil
	}

	hours, found := restaurant.HoursFor(domain.DayKindFor(parsedDate))
	if !found {
		return []string{}, nil
	}

	open, err := domain.ParseClockTime(hours.Open)
	if err != nil {
		return nil, err
	}
	close, err := domain.ParseClockTime(hours.Close)
	if err != nil {
		return nil, err
	}

	reservations, err := ae.reservationRepo.ListConfirmedReservations(spanCtx, restaurantID, date)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	booked := make(map[string]struct{}, len(reservations))
	for _, reservation := range reservations {
		if params.IgnoredReservation != nil && reservation.ID == *params.IgnoredReservation {
			continue
		}
		booked[reservation.Time] = struct{}{}
	}

	slots := []string{}
	for minutes := open; minutes < close; minutes += SLOT_CADENCE_MINUTES {
		slot := domain.FormatClockTime(minutes)
		if _, taken := booked[slot]; taken {
			continue
		}
		slots = append(slots, slot)
	}

	if params.PreferredTime != nil {
		if preferred, err := domain.ParseClockTime(*params.PreferredTime); err == nil {
			slots = narrowAroundPreferred(slots, preferred)
		}
		// An unparseable preferred time leaves the full slot list intact.
	}

	return slots, nil
}

// SuggestAlternatives returns up to count open slots, the exact requested time
// first when free, the rest ranked by minute distance ascending with earlier
// times winning ties.
func (ae AvailabilityEngineImpl) SuggestAlternatives(ctx context.Context, restaurantID, date, preferredTime string, partySize, count int) ([]string, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if count <= 0 {
		count = DEFAULT_ALTERNATIVE_COUNT
	}

	slots, err := ae.ComputeAvailableSlots(spanCtx, restaurantID, date, domain.WithPartySize(partySize))
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	if len(slots) == 0 {
		return []string{}, nil
	}

	preferred, err := domain.ParseClockTime(preferredTime)
	if err != nil {
		if len(slots) > count {
			slots = slots[:count]
		}
		return slots, nil
	}

	alternatives := []string{}
	remaining := []string{}
	for _, slot := range slots {
		if slot == preferredTime {
			alternatives = append(alternatives, slot)
			continue
		}
		remaining = append(remaining, slot)
	}

	// Slots arrive chronologically, so a stable sort by distance keeps the
	// earlier of two equidistant slots first.
	sortByDistance(remaining, preferred)

	for _, slot := range remaining {
		if len(alternatives) >= count {
			break
		}
		alternatives = append(alternatives, slot)
	}
	if len(alternatives) > count {
		alternatives = alternatives[:count]
	}

	return alternatives, nil
}

func narrowAroundPreferred(slots []string, preferredMinutes int) []string {
	narrowed := []string{}
	for _, slot := range slots {
		minutes, err := domain.ParseClockTime(slot)
		if err != nil {
			continue
		}
		if abs(minutes-preferredMinutes) <= PREFERRED_TIME_WINDOW_MINUTES {
			narrowed = append(narrowed, slot)
		}
	}
	return narrowed
}

func sortByDistance(slots []string, preferredMinutes int) {
	// Insertion sort keeps equal-distance slots in chronological order.
	for i := 1; i < len(slots); i++ {
		for j := i; j > 0; j-- {
			prev, _ := domain.ParseClockTime(slots[j-1])
			cur, _ := domain.ParseClockTime(slots[j])
			if abs(cur-preferredMinutes) >= abs(prev-preferredMinutes) {
				break
			}
			slots[j-1], slots[j] = slots[j], slots[j-1]
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// InitAvailabilityEngine initializes the AvailabilityEngine and registers it in the dependency container.
type InitAvailabilityEngine struct {
	RestaurantRepo  domain.RestaurantRepository  `resolve:""`
	ReservationRepo domain.ReservationRepository `resolve:""`
}

// Initialize initializes the AvailabilityEngineImpl use case and registers it in the dependency container.
func (iae InitAvailabilityEngine) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[AvailabilityEngine](NewAvailabilityEngineImpl(iae.RestaurantRepo, iae.ReservationRepo))
	return ctx, nil
}
