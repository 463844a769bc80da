package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/rs/cors"

	"github.com/foodiespot/concierge/internal/telemetry"
	"github.com/foodiespot/concierge/internal/usecases"
)

// ConciergeServer is the REST API HTTP server for the reservation assistant.
type ConciergeServer struct {
	Port                int                           `config:"HTTP_PORT" default:"8080"`
	Logger              *log.Logger                   `resolve:""`
	ConverseUseCase     usecases.Converse             `resolve:""`
	FinderUseCase       usecases.RestaurantFinder     `resolve:""`
	AvailabilityUseCase usecases.AvailabilityEngine   `resolve:""`
	BookerUseCase       usecases.ReservationBooker    `resolve:""`
	UpdaterUseCase      usecases.ReservationUpdater   `resolve:""`
	CancellerUseCase    usecases.ReservationCanceller `resolve:""`
}

// Run starts the HTTP server for the ConciergeServer.
func (api ConciergeServer) Run(ctx context.Context) error {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", api.Health)

	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("/introspect", IntrospectHandler)

	mux.HandleFunc("POST /api/chat", api.Chat)
	mux.HandleFunc("GET /api/restaurants", api.SearchRestaurants)
	mux.HandleFunc("GET /api/restaurants/recommendations", api.RecommendRestaurants)
	mux.HandleFunc("GET /api/restaurants/{restaurant_id}", api.GetRestaurant)
	mux.HandleFunc("GET /api/restaurants/{restaurant_id}/availability", api.CheckAvailability)
	mux.HandleFunc("POST /api/reservations", api.MakeReservation)
	mux.HandleFunc("PATCH /api/reservations/{reservation_id}", api.UpdateReservation)
	mux.HandleFunc("DELETE /api/reservations/{reservation_id}", api.CancelReservation)

	h := telemetry.HttpHandler(mux, "concierge-api")

	// Apply CORS at the top-level so preflight requests hit it, too.
	h = cors.AllowAll().Handler(h)

	s := &http.Server{
		Handler: h,
		Addr:    fmt.Sprintf(":%d", api.Port),
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("ConciergeServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("ConciergeServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("ConciergeServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the ConciergeServer is ready by performing a health check.
func (api ConciergeServer) IsReady(ctx context.Context) error {
	resp, err := http.Get(fmt.Sprintf("http://:%d/healthz", api.Port))
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}

// Health reports service liveness.
func (api ConciergeServer) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
