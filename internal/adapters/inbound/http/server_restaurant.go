package http

import (
	"net/http"
	"strconv"

	"github.com/foodiespot/concierge/internal/domain"
	"github.com/foodiespot/concierge/internal/usecases"
)

// SearchRestaurants filters the catalog by the query parameters.
// (GET /api/restaurants)
func (api ConciergeServer) SearchRestaurants(w http.ResponseWriter, r *http.Request) {
	criteria, err := criteriaFromQuery(r)
	if err != nil {
		respondError(w, err)
		return
	}

	restaurants, err := api.FinderUseCase.Search(r.Context(), criteria, usecases.DEFAULT_SEARCH_LIMIT)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string][]domain.Restaurant{"restaurants": restaurants})
}

// RecommendRestaurants ranks the catalog against soft preferences.
// (GET /api/restaurants/recommendations)
func (api ConciergeServer) RecommendRestaurants(w http.ResponseWriter, r *http.Request) {
	criteria, err := criteriaFromQuery(r)
	if err != nil {
		respondError(w, err)
		return
	}

	restaurants, err := api.FinderUseCase.Recommend(r.Context(), criteria, usecases.DEFAULT_RECOMMEND_LIMIT)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string][]domain.Restaurant{"restaurants": restaurants})
}

// GetRestaurant resolves a restaurant by id or name fragment.
// (GET /api/restaurants/{restaurant_id})
func (api ConciergeServer) GetRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurant, found, err := api.FinderUseCase.Details(r.Context(), r.PathValue("restaurant_id"))
	if err != nil {
		respondError(w, err)
		return
	}
	if !found {
		respondJSON(w, http.StatusNotFound, ErrorResp{Error: "restaurant not found"})
		return
	}

	respondJSON(w, http.StatusOK, restaurant)
}

// CheckAvailability returns the open slots for a restaurant on a date.
// (GET /api/restaurants/{restaurant_id}/availability)
func (api ConciergeServer) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		respondJSON(w, http.StatusBadRequest, ErrorResp{Error: "date query parameter is required"})
		return
	}

	opts := []domain.SlotQueryOption{}
	if preferred := r.URL.Query().Get("time"); preferred != "" {
		opts = append(opts, domain.WithPreferredTime(preferred))
	}
	if raw := r.URL.Query().Get("party_size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, ErrorResp{Error: "party_size must be a number"})
			return
		}
		opts = append(opts, domain.WithPartySize(size))
	}

	slots, err := api.AvailabilityUseCase.ComputeAvailableSlots(r.Context(), r.PathValue("restaurant_id"), date, opts...)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"date":            date,
		"available_times": slots,
	})
}

func criteriaFromQuery(r *http.Request) (usecases.SearchCriteria, error) {
	criteria := usecases.SearchCriteria{}
	query := r.URL.Query()

	if cuisine := query.Get("cuisine"); cuisine != "" {
		criteria.Cuisine = &cuisine
	}
	if location := query.Get("location"); location != "" {
		criteria.Location = &location
	}
	if raw := query.Get("price_range"); raw != "" {
		price, err := strconv.Atoi(raw)
		if err != nil {
			return criteria, domain.NewValidationErr("price_range must be a number")
		}
		criteria.MaxPriceRange = &price
	}
	if raw := query.Get("party_size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return criteria, domain.NewValidationErr("party_size must be a number")
		}
		criteria.PartySize = &size
	}

	return criteria, nil
}
