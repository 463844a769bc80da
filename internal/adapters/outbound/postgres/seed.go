package postgres

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"log"

	"go.yaml.in/yaml/v3"

	"github.com/foodiespot/concierge/internal/domain"
)

//go:embed catalog.yml
var catalogFS embed.FS

// InitSeedCatalog populates the restaurant catalog from the embedded seed
// file when the table is empty. Existing data is never overwritten.
type InitSeedCatalog struct {
	Logger      *log.Logger                 `resolve:""`
	Restaurants domain.RestaurantRepository `resolve:""`
}

// Initialize seeds the catalog if no restaurants exist yet.
func (is InitSeedCatalog) Initialize(ctx context.Context) (context.Context, error) {
	existing, err := is.Restaurants.ListRestaurants(ctx)
	if err != nil {
		return ctx, fmt.Errorf("failed to check existing catalog: %w", err)
	}
	if len(existing) > 0 {
		return ctx, nil
	}

	catalog, err := loadCatalog()
	if err != nil {
		return ctx, err
	}

	for _, restaurant := range catalog {
		if err := restaurant.Validate(); err != nil {
			return ctx, fmt.Errorf("invalid seed restaurant %s: %w", restaurant.ID, err)
		}
		if err := is.Restaurants.UpsertRestaurant(ctx, restaurant); err != nil {
			return ctx, fmt.Errorf("failed to seed restaurant %s: %w", restaurant.ID, err)
		}
	}

	is.Logger.Printf("InitSeedCatalog: seeded %d restaurants", len(catalog))
	return ctx, nil
}

func loadCatalog() ([]domain.Restaurant, error) {
	raw, err := catalogFS.ReadFile("catalog.yml")
	if err != nil {
		return nil, fmt.Errorf("failed to read seed catalog: %w", err)
	}

	var catalog []domain.Restaurant
	if err := yaml.NewDecoder(bytes.NewReader(raw)).Decode(&catalog); err != nil {
		return nil, fmt.Errorf("failed to decode seed catalog: %w", err)
	}
	return catalog, nil
}
