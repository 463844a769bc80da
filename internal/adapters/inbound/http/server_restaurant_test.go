package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/foodiespot/concierge/internal/domain"
	"github.com/foodiespot/concierge/internal/usecases"
)

func catalogRestaurant() domain.Restaurant {
	return domain.Restaurant{
		ID:         "rest_1",
		Name:       "The Tasty Italian",
		Cuisine:    "Italian",
		Location:   "Downtown",
		Capacity:   60,
		PriceRange: 2,
		Rating:     4.5,
		Hours: map[domain.DayKind]domain.OpeningHours{
			domain.DayKind_Weekday: {Open: "11:00", Close: "22:00"},
			domain.DayKind_Weekend: {Open: "10:00", Close: "23:00"},
		},
	}
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestConciergeServer_SearchRestaurants(t *testing.T) {
	tests := map[string]struct {
		target         string
		setupMocks     func(*usecases.MockRestaurantFinder)
		expectedStatus int
		expectedError  string
	}{
		"success-with-filters": {
			target: "/api/restaurants?cuisine=italian&location=downtown&price_range=2&party_size=4",
			setupMocks: func(m *usecases.MockRestaurantFinder) {
				m.EXPECT().Search(mock.Anything, usecases.SearchCriteria{
					Cuisine:       strPtr("italian"),
					Location:      strPtr("downtown"),
					MaxPriceRange: intPtr(2),
					PartySize:     intPtr(4),
				}, usecases.DEFAULT_SEARCH_LIMIT).Return([]domain.Restaurant{catalogRestaurant()}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		"invalid-price-range": {
			target:         "/api/restaurants?price_range=cheap",
			setupMocks:     func(m *usecases.MockRestaurantFinder) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "price_range must be a number",
		},
		"internal-error": {
			target: "/api/restaurants",
			setupMocks: func(m *usecases.MockRestaurantFinder) {
				m.EXPECT().Search(mock.Anything, usecases.SearchCriteria{}, usecases.DEFAULT_SEARCH_LIMIT).
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "database error",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			finder := usecases.NewMockRestaurantFinder(t)
			tt.setupMocks(finder)

			api := ConciergeServer{FinderUseCase: finder}
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()
			api.SearchRestaurants(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedError != "" {
				var errResp ErrorResp
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
				assert.Equal(t, tt.expectedError, errResp.Error)
				return
			}

			var resp map[string][]domain.Restaurant
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, []domain.Restaurant{catalogRestaurant()}, resp["restaurants"])
		})
	}
}

func TestConciergeServer_RecommendRestaurants(t *testing.T) {
	finder := usecases.NewMockRestaurantFinder(t)
	finder.EXPECT().Recommend(mock.Anything, usecases.SearchCriteria{
		Cuisine: strPtr("italian"),
	}, usecases.DEFAULT_RECOMMEND_LIMIT).Return([]domain.Restaurant{catalogRestaurant()}, nil)

	api := ConciergeServer{FinderUseCase: finder}
	req := httptest.NewRequest(http.MethodGet, "/api/restaurants/recommendations?cuisine=italian", nil)
	rec := httptest.NewRecorder()
	api.RecommendRestaurants(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp map[string][]domain.Restaurant
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []domain.Restaurant{catalogRestaurant()}, resp["restaurants"])
}

func TestConciergeServer_GetRestaurant(t *testing.T) {
	tests := map[string]struct {
		setupMocks     func(*usecases.MockRestaurantFinder)
		expectedStatus int
	}{
		"found": {
			setupMocks: func(m *usecases.MockRestaurantFinder) {
				m.EXPECT().Details(mock.Anything, "rest_1").Return(catalogRestaurant(), true, nil)
			},
			expectedStatus: http.StatusOK,
		},
		"not-found": {
			setupMocks: func(m *usecases.MockRestaurantFinder) {
				m.EXPECT().Details(mock.Anything, "rest_1").Return(domain.Restaurant{}, false, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			finder := usecases.NewMockRestaurantFinder(t)
			tt.setupMocks(finder)

			api := ConciergeServer{FinderUseCase: finder}
			req := httptest.NewRequest(http.MethodGet, "/api/restaurants/rest_1", nil)
			req.SetPathValue("restaurant_id", "rest_1")
			rec := httptest.NewRecorder()
			api.GetRestaurant(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				var resp domain.Restaurant
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, catalogRestaurant(), resp)
			}
		})
	}
}

func TestConciergeServer_CheckAvailability(t *testing.T) {
	tests := map[string]struct {
		target         string
		setupMocks     func(*usecases.MockAvailabilityEngine)
		expectedStatus int
		expectedSlots  []string
		expectedError  string
	}{
		"success": {
			target: "/api/restaurants/rest_1/availability?date=2026-07-20",
			setupMocks: func(m *usecases.MockAvailabilityEngine) {
				m.EXPECT().ComputeAvailableSlots(mock.Anything, "rest_1", "2026-07-20").
					Return([]string{"19:00", "19:30"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedSlots:  []string{"19:00", "19:30"},
		},
		"with-time-and-party-size": {
			target: "/api/restaurants/rest_1/availability?date=2026-07-20&time=19:00&party_size=4",
			setupMocks: func(m *usecases.MockAvailabilityEngine) {
				m.EXPECT().ComputeAvailableSlots(mock.Anything, "rest_1", "2026-07-20", mock.Anything, mock.Anything).
					Return([]string{"19:00"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedSlots:  []string{"19:00"},
		},
		"missing-date": {
			target:         "/api/restaurants/rest_1/availability",
			setupMocks:     func(m *usecases.MockAvailabilityEngine) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "date query parameter is required",
		},
		"invalid-party-size": {
			target:         "/api/restaurants/rest_1/availability?date=2026-07-20&party_size=four",
			setupMocks:     func(m *usecases.MockAvailabilityEngine) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "party_size must be a number",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			availability := usecases.NewMockAvailabilityEngine(t)
			tt.setupMocks(availability)

			api := ConciergeServer{AvailabilityUseCase: availability}
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			req.SetPathValue("restaurant_id", "rest_1")
			rec := httptest.NewRecorder()
			api.CheckAvailability(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedError != "" {
				var errResp ErrorResp
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
				assert.Equal(t, tt.expectedError, errResp.Error)
				return
			}

			var resp struct {
				Date           string   `json:"date"`
				AvailableTimes []string `json:"available_times"`
			}
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "2026-07-20", resp.Date)
			assert.Equal(t, tt.expectedSlots, resp.AvailableTimes)
		})
	}
}
