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

// ReservationUpdater defines the interface for editing existing reservations.
type ReservationUpdater interface {
	Update(ctx context.Context, reservationID string, update domain.ReservationUpdate) (domain.Reservation, error)
}

// ReservationUpdaterImpl is the implementation of the ReservationUpdater use case.
type ReservationUpdaterImpl struct {
	reservationRepo domain.ReservationRepository
	availability    AvailabilityEngine
	guard           *slotGuard
}

// NewReservationUpdaterImpl creates a new instance of ReservationUpdaterImpl.
func NewReservationUpdaterImpl(
	reservationRepo domain.ReservationRepository,
	availability AvailabilityEngine,
	guard *slotGuard,
) ReservationUpdaterImpl {
	return ReservationUpdaterImpl{
		reservationRepo: reservationRepo,
		availability:    availability,
		guard:           guard,
	}
}

// Update applies the supplied field changes to a confirmed reservation. When
// the date, time, or party size moves, availability is re-checked against the
// new slot with the reservation's own booking excluded so an in-place
// reschedule to the same time still succeeds.
func (ru ReservationUpdaterImpl) Update(ctx context.Context, reservationID string, update domain.ReservationUpdate) (domain.Reservation, error) {
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.String("reservation.id", reservationID),
		),
	)
	defer span.End()

	reservation, found, err := ru.reservationRepo.GetReservation(spanCtx, reservationID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Reservation{}, domain.NewPersistenceErr("failed to load reservation", err)
	}
	if !found {
		return domain.Reservation{}, domain.NewNotFoundErr(fmt.Sprintf("reservation %q does not exist", reservationID))
	}
	if reservation.Status == domain.ReservationStatus_Cancelled {
		return domain.Reservation{}, domain.NewConflictErr("cannot modify a cancelled reservation")
	}

	newDate := reservation.Date
	if update.Date != nil {
		newDate = *update.Date
	}
	newTime := reservation.Time
	if update.Time != nil {
		newTime = *update.Time
	}
	newPartySize := reservation.PartySize
	if update.PartySize != nil {
		newPartySize = *update.PartySize
	}

	if update.ChangesSlot(reservation) {
		unlock := ru.guard.Lock(reservation.RestaurantID, newDate)
		defer unlock()

		slots, err := ru.availability.ComputeAvailableSlots(spanCtx, reservation.RestaurantID, newDate,
			domain.WithPreferredTime(newTime),
			domain.WithPartySize(newPartySize),
			domain.WithIgnoredReservation(reservation.ID),
		)
		if telemetry.RecordErrorAndStatus(span, err) {
			return domain.Reservation{}, err
		}
		if !containsSlot(slots, newTime) {
			return domain.Reservation{}, domain.NewConflictErr("the requested time slot is not available")
		}
	}

	reservation.Date = newDate
	reservation.Time = newTime
	reservation.PartySize = newPartySize
	if update.CustomerName != nil {
		reservation.CustomerName = *update.CustomerName
	}
	if update.Email != nil {
		reservation.Email = update.Email
	}
	if update.Phone != nil {
		reservation.Phone = update.Phone
	}

	if err := reservation.Validate(); err != nil {
		return domain.Reservation{}, err
	}

	if err := ru.reservationRepo.UpsertReservation(spanCtx, reservation); err != nil {
		telemetry.RecordErrorAndStatus(span, err)
		return domain.Reservation{}, domain.NewPersistenceErr("failed to save reservation", err)
	}

	return reservation, nil
}

// InitReservationUpdater initializes the ReservationUpdater and registers it in the dependency container.
type InitReservationUpdater struct {
	ReservationRepo domain.ReservationRepository `resolve:""`
	Availability    AvailabilityEngine           `resolve:""`
	Guard           *slotGuard                   `resolve:""`
}

// Initialize initializes the ReservationUpdaterImpl use case and registers it in the dependency container.
func (iru InitReservationUpdater) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ReservationUpdater](NewReservationUpdaterImpl(
		iru.ReservationRepo,
		iru.Availability,
		iru.Guard,
	))
	return ctx, nil
}
