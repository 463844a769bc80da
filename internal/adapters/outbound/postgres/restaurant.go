package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont/depend"

	"github.com/foodiespot/concierge/internal/domain"
	"github.com/foodiespot/concierge/internal/telemetry"
)

var (
	restaurantFields = []string{
		"id",
		"name",
		"cuisine",
		"location",
		"capacity",
		"price_range",
		"rating",
		"description",
		"hours",
	}
)

// RestaurantRepository implements the domain.RestaurantRepository interface using PostgreSQL as the storage backend.
type RestaurantRepository struct {
	sb squirrel.StatementBuilderType
}

// NewRestaurantRepository creates a new instance of RestaurantRepository.
func NewRestaurantRepository(br squirrel.BaseRunner) RestaurantRepository {
	return RestaurantRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// ListRestaurants lists all restaurants in catalog order.
func (rr RestaurantRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	rows, err := rr.sb.
		Select(restaurantFields...).
		From("restaurants").
		OrderBy("position ASC").
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var restaurants []domain.Restaurant
	for rows.Next() {
		restaurant, err := scanRestaurant(rows)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		restaurants = append(restaurants, restaurant)
	}

	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return restaurants, nil
}

// GetRestaurant retrieves a restaurant by its ID.
func (rr RestaurantRepository) GetRestaurant(ctx context.Context, id string) (domain.Restaurant, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	row := rr.sb.
		Select(restaurantFields...).
		From("restaurants").
		Where(squirrel.Eq{"id": id}).
		QueryRowContext(spanCtx)

	restaurant, err := scanRestaurant(row)
	if telemetry.RecordErrorAndStatus(span, err) {
		if err == sql.ErrNoRows {
			return domain.Restaurant{}, false, nil
		}
		return domain.Restaurant{}, false, err
	}

	return restaurant, true, nil
}

// UpsertRestaurant inserts a restaurant or updates it when the ID already exists.
func (rr RestaurantRepository) UpsertRestaurant(ctx context.Context, restaurant domain.Restaurant) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	hours, err := json.Marshal(restaurant.Hours)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	_, err = rr.sb.
		Insert("restaurants").
		Columns(restaurantFields...).
		Values(
			restaurant.ID,
			restaurant.Name,
			restaurant.Cuisine,
			restaurant.Location,
			restaurant.Capacity,
			restaurant.PriceRange,
			restaurant.Rating,
			restaurant.Description,
			hours,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			cuisine = EXCLUDED.cuisine,
			location = EXCLUDED.location,
			capacity = EXCLUDED.capacity,
			price_range = EXCLUDED.price_range,
			rating = EXCLUDED.rating,
			description = EXCLUDED.description,
			hours = EXCLUDED.hours`).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRestaurant(row rowScanner) (domain.Restaurant, error) {
	var restaurant domain.Restaurant
	var hours []byte
	err := row.Scan(
		&restaurant.ID,
		&restaurant.Name,
		&restaurant.Cuisine,
		&restaurant.Location,
		&restaurant.Capacity,
		&restaurant.PriceRange,
		&restaurant.Rating,
		&restaurant.Description,
		&hours,
	)
	if err != nil {
		return domain.Restaurant{}, err
	}
	if err := json.Unmarshal(hours, &restaurant.Hours); err != nil {
		return domain.Restaurant{}, err
	}
	return restaurant, nil
}

// InitRestaurantRepository is a Symbiont initializer for RestaurantRepository.
type InitRestaurantRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the RestaurantRepository in the dependency container.
func (ir InitRestaurantRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.RestaurantRepository](NewRestaurantRepository(ir.DB))
	return ctx, nil
}
