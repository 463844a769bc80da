package domain

import (
	"context"
	"fmt"
	"strings"
)

// DayKind classifies a calendar date for opening-hour lookup.
type DayKind string

const (
	DayKind_Weekday DayKind = "weekday"
	DayKind_Weekend DayKind = "weekend"
)

// OpeningHours represents a daily opening window in canonical "HH:MM" times.
type OpeningHours struct {
	Open  string `yaml:"open" json:"open"`
	Close string `yaml:"close" json:"close"`
}

// Restaurant represents a restaurant in the catalog.
type Restaurant struct {
	ID          string                   `yaml:"id" json:"id"`
	Name        string                   `yaml:"name" json:"name"`
	Cuisine     string                   `yaml:"cuisine" json:"cuisine"`
	Location    string                   `yaml:"location" json:"location"`
	Capacity    int                      `yaml:"capacity" json:"capacity"`
	PriceRange  int                      `yaml:"price_range" json:"price_range"`
	Rating      float64                  `yaml:"rating" json:"rating"`
	Description string                   `yaml:"description" json:"description"`
	Hours       map[DayKind]OpeningHours `yaml:"hours" json:"hours"`
}

// Validate validates the restaurant fields.
func (r Restaurant) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return NewValidationErr("id cannot be empty")
	}
	if strings.TrimSpace(r.Name) == "" {
		return NewValidationErr("name cannot be empty")
	}
	if r.Capacity <= 0 {
		return NewValidationErr("capacity must be positive")
	}
	if r.PriceRange < 1 || r.PriceRange > 4 {
		return NewValidationErr("price_range must be between 1 and 4")
	}
	if r.Rating < 1.0 || r.Rating > 5.0 {
		return NewValidationErr("rating must be between 1.0 and 5.0")
	}
	for _, kind := range []DayKind{DayKind_Weekday, DayKind_Weekend} {
		hours, found := r.Hours[kind]
		if !found {
			return NewValidationErr(fmt.Sprintf("missing %s hours", kind))
		}
		open, err := ParseClockTime(hours.Open)
		if err != nil {
			return err
		}
		close, err := ParseClockTime(hours.Close)
		if err != nil {
			return err
		}
		if open >= close {
			return NewValidationErr(fmt.Sprintf("%s hours must open before they close", kind))
		}
	}
	return nil
}

// HoursFor returns the opening hours for the given day kind.
func (r Restaurant) HoursFor(kind DayKind) (OpeningHours, bool) {
	hours, found := r.Hours[kind]
	return hours, found
}

// PriceTag renders a price range as a run of dollar signs, clamped to 1..4.
func PriceTag(priceRange int) string {
	if priceRange < 1 {
		priceRange = 1
	}
	if priceRange > 4 {
		priceRange = 4
	}
	return strings.Repeat("$", priceRange)
}

// RestaurantRepository defines the interface for interacting with the restaurant catalog.
type RestaurantRepository interface {
	// ListRestaurants retrieves the full catalog in stable order.
	ListRestaurants(ctx context.Context) ([]Restaurant, error)

	// GetRestaurant retrieves a restaurant by id; found is false when absent.
	GetRestaurant(ctx context.Context, id string) (Restaurant, bool, error)

	// UpsertRestaurant inserts or replaces a catalog entry.
	UpsertRestaurant(ctx context.Context, restaurant Restaurant) error
}
