package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRestaurant() Restaurant {
	return Restaurant{
		ID:          "rest_1",
		Name:        "FoodieSpot Downtown",
		Cuisine:     "Italian",
		Location:    "Downtown",
		Capacity:    60,
		PriceRange:  2,
		Rating:      4.5,
		Description: "Cozy trattoria in the heart of downtown.",
		Hours: map[DayKind]OpeningHours{
			DayKind_Weekday: {Open: "11:00", Close: "22:00"},
			DayKind_Weekend: {Open: "10:00", Close: "23:00"},
		},
	}
}

func TestRestaurant_Validate(t *testing.T) {
	tests := map[string]struct {
		mutate  func(*Restaurant)
		wantErr string
	}{
		"valid": {
			mutate: func(r *Restaurant) {},
		},
		"empty-id": {
			mutate:  func(r *Restaurant) { r.ID = "  " },
			wantErr: "id cannot be empty",
		},
		"empty-name": {
			mutate:  func(r *Restaurant) { r.Name = "" },
			wantErr: "name cannot be empty",
		},
		"zero-capacity": {
			mutate:  func(r *Restaurant) { r.Capacity = 0 },
			wantErr: "capacity must be positive",
		},
		"price-range-too-high": {
			mutate:  func(r *Restaurant) { r.PriceRange = 5 },
			wantErr: "price_range must be between 1 and 4",
		},
		"rating-too-low": {
			mutate:  func(r *Restaurant) { r.Rating = 0.5 },
			wantErr: "rating must be between 1.0 and 5.0",
		},
		"missing-weekend-hours": {
			mutate:  func(r *Restaurant) { delete(r.Hours, DayKind_Weekend) },
			wantErr: "missing weekend hours",
		},
		"malformed-open-time": {
			mutate: func(r *Restaurant) {
				r.Hours[DayKind_Weekday] = OpeningHours{Open: "11am", Close: "22:00"}
			},
			wantErr: "invalid time",
		},
		"open-after-close": {
			mutate: func(r *Restaurant) {
				r.Hours[DayKind_Weekday] = OpeningHours{Open: "22:00", Close: "11:00"}
			},
			wantErr: "weekday hours must open before they close",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r := validRestaurant()
			tt.mutate(&r)
			err := r.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
			assert.IsType(t, &ValidationErr{}, err)
		})
	}
}

func TestRestaurant_HoursFor(t *testing.T) {
	r := validRestaurant()

	hours, found := r.HoursFor(DayKind_Weekend)
	assert.True(t, found)
	assert.Equal(t, OpeningHours{Open: "10:00", Close: "23:00"}, hours)

	delete(r.Hours, DayKind_Weekend)
	_, found = r.HoursFor(DayKind_Weekend)
	assert.False(t, found)
}

func TestPriceTag(t *testing.T) {
	tests := map[string]struct {
		priceRange int
		expected   string
	}{
		"cheap":         {priceRange: 1, expected: "$"},
		"upscale":       {priceRange: 4, expected: "$$$$"},
		"clamped-low":   {priceRange: 0, expected: "$"},
		"clamped-high":  {priceRange: 9, expected: "$$$$"},
		"clamped-below": {priceRange: -2, expected: "$"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PriceTag(tt.priceRange))
		})
	}
}
