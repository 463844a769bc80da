package usecases

import (
	"context"
	"sort"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"

	"github.com/foodiespot/concierge/internal/domain"
	"github.com/foodiespot/concierge/internal/telemetry"
)

const (
	// Default result caps for search and recommendation.
	DEFAULT_SEARCH_LIMIT    = 5
	DEFAULT_RECOMMEND_LIMIT = 3
)

// SearchCriteria holds the optional filters for a restaurant search.
type SearchCriteria struct {
	Cuisine       *string
	Location      *string
	MaxPriceRange *int
	PartySize     *int
}

// RestaurantFinder defines the interface for searching and recommending restaurants.
type RestaurantFinder interface {
	// Search filters the catalog in stable order, stopping at limit matches.
	Search(ctx context.Context, criteria SearchCriteria, limit int) ([]domain.Restaurant, error)

	// Recommend scores and ranks the whole catalog against the preferences.
	Recommend(ctx context.Context, preferences SearchCriteria, limit int) ([]domain.Restaurant, error)

	// Details resolves a restaurant by id, falling back to a name substring match.
	Details(ctx context.Context, idOrName string) (domain.Restaurant, bool, error)
}

// RestaurantFinderImpl is the implementation of the RestaurantFinder use case.
type RestaurantFinderImpl struct {
	restaurantRepo domain.RestaurantRepository
}

// NewRestaurantFinderImpl creates a new instance of RestaurantFinderImpl.
func NewRestaurantFinderImpl(restaurantRepo domain.RestaurantRepository) RestaurantFinderImpl {
	return RestaurantFinderImpl{
		restaurantRepo: restaurantRepo,
	}
}

// Search filters the catalog by case-insensitive substring on cuisine and
// location, a price ceiling, and a capacity floor, preserving catalog order.
func (rf RestaurantFinderImpl) Search(ctx context.Context, criteria SearchCriteria, limit int) ([]domain.Restaurant, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if limit <= 0 {
		limit = DEFAULT_SEARCH_LIMIT
	}

	restaurants, err := rf.restaurantRepo.ListRestaurants(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	results := []domain.Restaurant{}
	for _, restaurant := range restaurants {
		if criteria.Cuisine != nil && !containsFold(restaurant.Cuisine, *criteria.Cuisine) {
			continue
		}
		if criteria.Location != nil && !containsFold(restaurant.Location, *criteria.Location) {
			continue
		}
		if criteria.MaxPriceRange != nil && restaurant.PriceRange > *criteria.MaxPriceRange {
			continue
		}
		if criteria.PartySize != nil && *criteria.PartySize > restaurant.Capacity {
			continue
		}

		results = append(results, restaurant)
		if len(results) >= limit {
			break
		}
	}

	return results, nil
}

// Recommend scores every restaurant: +3 for a cuisine match, +2 for location,
// +1 when the price tier fits, plus half the rating. Ties keep catalog order.
func (rf RestaurantFinderImpl) Recommend(ctx context.Context, preferences SearchCriteria, limit int) ([]domain.Restaurant, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if limit <= 0 {
		limit = DEFAULT_RECOMMEND_LIMIT
	}

	restaurants, err := rf.restaurantRepo.ListRestaurants(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	type scored struct {
		restaurant domain.Restaurant
		score      float64
	}

	ranked := make([]scored, 0, len(restaurants))
	for _, restaurant := range restaurants {
		score := 0.0
		if preferences.Cuisine != nil && containsFold(restaurant.Cuisine, *preferences.Cuisine) {
			score += 3
		}
		if preferences.Location != nil && containsFold(restaurant.Location, *preferences.Location) {
			score += 2
		}
		if preferences.MaxPriceRange != nil && restaurant.PriceRange <= *preferences.MaxPriceRange {
			score += 1
		}
		score += restaurant.Rating * 0.5
		ranked = append(ranked, scored{restaurant: restaurant, score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	results := make([]domain.Restaurant, len(ranked))
	for i, entry := range ranked {
		results[i] = entry.restaurant
	}

	return results, nil
}

// Details looks up by exact id first, then falls back to a case-insensitive
// name substring match, first catalog hit wins. The fallback is deliberately
// forgiving: upstream model output often passes a name where an id belongs.
// A name fragment matching several restaurants resolves to the first one.
func (rf RestaurantFinderImpl) Details(ctx context.Context, idOrName string) (domain.Restaurant, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	restaurant, found, err := rf.restaurantRepo.GetRestaurant(spanCtx, idOrName)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Restaurant{}, false, err
	}
	if found {
		return restaurant, true, nil
	}

	restaurants, err := rf.restaurantRepo.ListRestaurants(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Restaurant{}, false, err
	}
	for _, candidate := range restaurants {
		if containsFold(candidate.Name, idOrName) {
			return candidate, true, nil
		}
	}

	return domain.Restaurant{}, false, nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// InitRestaurantFinder initializes the RestaurantFinder and registers it in the dependency container.
type InitRestaurantFinder struct {
	RestaurantRepo domain.RestaurantRepository `resolve:""`
}

// Initialize initializes the RestaurantFinderImpl use case and registers it in the dependency container.
func (irf InitRestaurantFinder) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RestaurantFinder](NewRestaurantFinderImpl(irf.RestaurantRepo))
	return ctx, nil
}
