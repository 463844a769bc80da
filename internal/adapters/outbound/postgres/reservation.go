package postgres

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/foodiespot/concierge/internal/domain"
	"github.com/foodiespot/concierge/internal/telemetry"
)

var (
	reservationFields = []string{
		"id",
		"restaurant_id",
		"customer_name",
		"reservation_date",
		"reservation_time",
		"party_size",
		"email",
		"phone",
		"status",
		"created_at",
	}
)

// ReservationRepository implements the domain.ReservationRepository interface using PostgreSQL as the storage backend.
type ReservationRepository struct {
	sb squirrel.StatementBuilderType
}

// NewReservationRepository creates a new instance of ReservationRepository.
func NewReservationRepository(br squirrel.BaseRunner) ReservationRepository {
	return ReservationRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// ListReservations lists all reservations, oldest first.
func (rr ReservationRepository) ListReservations(ctx context.Context) ([]domain.Reservation, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	rows, err := rr.sb.
		Select(reservationFields...).
		From("reservations").
		OrderBy("created_at ASC").
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	return collectReservations(span, rows)
}

// GetReservation retrieves a reservation by its ID.
func (rr ReservationRepository) GetReservation(ctx context.Context, id string) (domain.Reservation, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	row := rr.sb.
		Select(reservationFields...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		QueryRowContext(spanCtx)

	reservation, err := scanReservation(row)
	if telemetry.RecordErrorAndStatus(span, err) {
		if err == sql.ErrNoRows {
			return domain.Reservation{}, false, nil
		}
		return domain.Reservation{}, false, err
	}
	return reservation, true, nil
}

// ListConfirmedReservations lists confirmed reservations for a restaurant on a given date.
func (rr ReservationRepository) ListConfirmedReservations(ctx context.Context, restaurantID, date string) ([]domain.Reservation, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("restaurant.id", restaurantID),
		attribute.String("reservation.date", date),
	))
	defer span.End()

	rows, err := rr.sb.
		Select(reservationFields...).
		From("reservations").
		Where(squirrel.Eq{
			"restaurant_id":    restaurantID,
			"reservation_date": date,
			"status":           domain.ReservationStatus_Confirmed,
		}).
		OrderBy("reservation_time ASC").
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	return collectReservations(span, rows)
}

// UpsertReservation inserts a reservation or updates it when the ID already exists.
func (rr ReservationRepository) UpsertReservation(ctx context.Context, reservation domain.Reservation) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := rr.sb.
		Insert("reservations").
		Columns(reservationFields...).
		Values(
			reservation.ID,
			reservation.RestaurantID,
			reservation.CustomerName,
			reservation.Date,
			reservation.Time,
			reservation.PartySize,
			reservation.Email,
			reservation.Phone,
			reservation.Status,
			reservation.CreatedAt,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			customer_name = EXCLUDED.customer_name,
			reservation_date = EXCLUDED.reservation_date,
			reservation_time = EXCLUDED.reservation_time,
			party_size = EXCLUDED.party_size,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			status = EXCLUDED.status`).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

func collectReservations(span trace.Span, rows *sql.Rows) ([]domain.Reservation, error) {
	var reservations []domain.Reservation
	for rows.Next() {
		reservation, err := scanReservation(rows)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		reservations = append(reservations, reservation)
	}
	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return reservations, nil
}

func scanReservation(row rowScanner) (domain.Reservation, error) {
	var reservation domain.Reservation
	err := row.Scan(
		&reservation.ID,
		&reservation.RestaurantID,
		&reservation.CustomerName,
		&reservation.Date,
		&reservation.Time,
		&reservation.PartySize,
		&reservation.Email,
		&reservation.Phone,
		&reservation.Status,
		&reservation.CreatedAt,
	)
	if err != nil {
		return domain.Reservation{}, err
	}
	return reservation, nil
}

// InitReservationRepository is a Symbiont initializer for ReservationRepository.
type InitReservationRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the ReservationRepository in the dependency container.
func (ir InitReservationRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.ReservationRepository](NewReservationRepository(ir.DB))
	return ctx, nil
}
