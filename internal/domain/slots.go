package domain

// SlotQueryParams represents the parameters for computing available time slots.
type SlotQueryParams struct {
	PreferredTime      *string
	PartySize          *int
	IgnoredReservation *string
}

// SlotQueryOption defines a function type for modifying SlotQueryParams.
type SlotQueryOption func(*SlotQueryParams)

// WithPreferredTime narrows the slot window to two hours around the given "HH:MM" time.
func WithPreferredTime(preferredTime string) SlotQueryOption {
	return func(params *SlotQueryParams) {
		params.PreferredTime = &preferredTime
	}
}

// WithPartySize requires each slot to fit the given party size within remaining capacity.
func WithPartySize(partySize int) SlotQueryOption {
	return func(params *SlotQueryParams) {
		params.PartySize = &partySize
	}
}

// WithIgnoredReservation excludes one reservation from the occupancy count,
// used when rescheduling so the reservation's own slot stays bookable.
func WithIgnoredReservation(reservationID string) SlotQueryOption {
	return func(params *SlotQueryParams) {
		params.IgnoredReservation = &reservationID
	}
}
