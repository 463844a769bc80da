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

// ReservationCanceller defines the interface for cancelling reservations.
type ReservationCanceller interface {
	Cancel(ctx context.Context, reservationID string) error
}

// ReservationCancellerImpl is the implementation of the ReservationCanceller use case.
type ReservationCancellerImpl struct {
	reservationRepo domain.ReservationRepository
}

// NewReservationCancellerImpl creates a new instance of ReservationCancellerImpl.
func NewReservationCancellerImpl(reservationRepo domain.ReservationRepository) ReservationCancellerImpl {
	return ReservationCancellerImpl{
		reservationRepo: reservationRepo,
	}
}

// Cancel flips a confirmed reservation to cancelled. Reservations are never
// deleted, so the slot simply reopens for other bookings.
func (rc ReservationCancellerImpl) Cancel(ctx context.Context, reservationID string) error {
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.String("reservation.id", reservationID),
		),
	)
	defer span.End()

	reservation, found, err := rc.reservationRepo.GetReservation(spanCtx, reservationID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.NewPersistenceErr("failed to load reservation", err)
	}
	if !found {
		return domain.NewNotFoundErr(fmt.Sprintf("reservation %q does not exist", reservationID))
	}
	if reservation.Status == domain.ReservationStatus_Cancelled {
		return domain.NewConflictErr("reservation is already cancelled")
	}

	reservation.Status = domain.ReservationStatus_Cancelled
	if err := rc.reservationRepo.UpsertReservation(spanCtx, reservation); err != nil {
		telemetry.RecordErrorAndStatus(span, err)
		return domain.NewPersistenceErr("failed to save reservation", err)
	}

	return nil
}

// InitReservationCanceller initializes the ReservationCanceller and registers it in the dependency container.
type InitReservationCanceller struct {
	ReservationRepo domain.ReservationRepository `resolve:""`
}

// Initialize initializes the ReservationCancellerImpl use case and registers it in the dependency container.
func (irc InitReservationCanceller) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ReservationCanceller](NewReservationCancellerImpl(irc.ReservationRepo))
	return ctx, nil
}
