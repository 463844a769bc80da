package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ReservationStatus represents the lifecycle state of a reservation.
type ReservationStatus string

const (
	ReservationStatus_Confirmed ReservationStatus = "confirmed"
	ReservationStatus_Cancelled ReservationStatus = "cancelled"
)

// Reservation represents a confirmed or cancelled booking.
type Reservation struct {
	ID           string            `json:"id"`
	RestaurantID string            `json:"restaurant_id"`
	CustomerName string            `json:"customer_name"`
	Date         string            `json:"date"` // YYYY-MM-DD
	Time         string            `json:"time"` // HH:MM
	PartySize    int               `json:"party_size"`
	Email        *string           `json:"email,omitempty"`
	Phone        *string           `json:"phone,omitempty"`
	Status       ReservationStatus `json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
}

// Validate validates the reservation fields.
func (r Reservation) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return NewValidationErr("id cannot be empty")
	}
	if strings.TrimSpace(r.RestaurantID) == "" {
		return NewValidationErr("restaurant_id cannot be empty")
	}
	if strings.TrimSpace(r.CustomerName) == "" {
		return NewValidationErr("customer_name cannot be empty")
	}
	if _, err := ParseDate(r.Date); err != nil {
		return err
	}
	if _, err := ParseClockTime(r.Time); err != nil {
		return err
	}
	if r.PartySize <= 0 {
		return NewValidationErr("party_size must be positive")
	}
	if r.Status != ReservationStatus_Confirmed && r.Status != ReservationStatus_Cancelled {
		return NewValidationErr("status must be either confirmed or cancelled")
	}
	return nil
}

// NewReservationID builds a reservation id from the booking timestamp plus a
// random disambiguator, so same-second bookings never collide.
func NewReservationID(now time.Time) string {
	return fmt.Sprintf("res_%s_%s", now.Format("20060102150405"), uuid.NewString()[:8])
}

// ReservationUpdate carries the mutable reservation fields; nil means keep.
type ReservationUpdate struct {
	CustomerName *string
	Date         *string
	Time         *string
	PartySize    *int
	Email        *string
	Phone        *string
}

// ChangesSlot reports whether the update moves the reservation to a different
// date, time, or party size, which requires re-checking availability.
func (u ReservationUpdate) ChangesSlot(current Reservation) bool {
	if u.Date != nil && *u.Date != current.Date {
		return true
	}
	if u.Time != nil && *u.Time != current.Time {
		return true
	}
	if u.PartySize != nil && *u.PartySize != current.PartySize {
		return true
	}
	return false
}

// ReservationRepository defines the interface for interacting with stored reservations.
type ReservationRepository interface {
	// ListReservations retrieves all reservations ordered by creation time.
	ListReservations(ctx context.Context) ([]Reservation, error)

	// GetReservation retrieves a reservation by id; found is false when absent.
	GetReservation(ctx context.Context, id string) (Reservation, bool, error)

	// ListConfirmedReservations retrieves the confirmed reservations for a
	// restaurant on a given date.
	ListConfirmedReservations(ctx context.Context, restaurantID string, date string) ([]Reservation, error)

	// UpsertReservation inserts or replaces a reservation.
	UpsertReservation(ctx context.Context, reservation Reservation) error
}
