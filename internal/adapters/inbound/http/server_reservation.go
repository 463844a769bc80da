package http

import (
	"encoding/json"
	"net/http"

	"github.com/foodiespot/concierge/internal/domain"
	"github.com/foodiespot/concierge/internal/usecases"
)

// MakeReservationRequest is the payload for booking a table.
type MakeReservationRequest struct {
	RestaurantID string  `json:"restaurant_id"`
	CustomerName string  `json:"customer_name"`
	Date         string  `json:"date"`
	Time         string  `json:"time"`
	PartySize    int     `json:"party_size"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
}

// UpdateReservationRequest carries the fields to change on a reservation.
// Absent fields keep their current values.
type UpdateReservationRequest struct {
	CustomerName *string `json:"customer_name,omitempty"`
	Date         *string `json:"date,omitempty"`
	Time         *string `json:"time,omitempty"`
	PartySize    *int    `json:"party_size,omitempty"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
}

// MakeReservation books a table.
// (POST /api/reservations)
func (api ConciergeServer) MakeReservation(w http.ResponseWriter, r *http.Request) {
	var req MakeReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResp{Error: "invalid request body"})
		return
	}

	reservation, err := api.BookerUseCase.Book(r.Context(), usecases.BookReservationParams{
		RestaurantID: req.RestaurantID,
		CustomerName: req.CustomerName,
		Date:         req.Date,
		Time:         req.Time,
		PartySize:    req.PartySize,
		Email:        req.Email,
		Phone:        req.Phone,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, reservation)
}

// UpdateReservation modifies an existing reservation.
// (PATCH /api/reservations/{reservation_id})
func (api ConciergeServer) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	var req UpdateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResp{Error: "invalid request body"})
		return
	}

	reservation, err := api.UpdaterUseCase.Update(r.Context(), r.PathValue("reservation_id"), domain.ReservationUpdate{
		CustomerName: req.CustomerName,
		Date:         req.Date,
		Time:         req.Time,
		PartySize:    req.PartySize,
		Email:        req.Email,
		Phone:        req.Phone,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, reservation)
}

// CancelReservation marks a reservation as cancelled.
// (DELETE /api/reservations/{reservation_id})
func (api ConciergeServer) CancelReservation(w http.ResponseWriter, r *http.Request) {
	if err := api.CancellerUseCase.Cancel(r.Context(), r.PathValue("reservation_id")); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
