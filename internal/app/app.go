package app

import (
	"github.com/cleitonmarx/symbiont"

	"github.com/foodiespot/concierge/internal/adapters/inbound/http"
	"github.com/foodiespot/concierge/internal/adapters/outbound/llmapi"
	"github.com/foodiespot/concierge/internal/adapters/outbound/log"
	"github.com/foodiespot/concierge/internal/adapters/outbound/postgres"
	"github.com/foodiespot/concierge/internal/adapters/outbound/time"
	"github.com/foodiespot/concierge/internal/telemetry"
	"github.com/foodiespot/concierge/internal/usecases"
)

// NewConciergeApp creates and returns a new instance of the reservation assistant application.
func NewConciergeApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&postgres.InitDB{},
			&postgres.InitRestaurantRepository{},
			&postgres.InitReservationRepository{},
			&postgres.InitSeedCatalog{},
			&time.InitCurrentTimeProvider{},
			&llmapi.InitLLMClient{},

			&usecases.InitSlotGuard{},
			&usecases.InitAvailabilityEngine{},
			&usecases.InitRestaurantFinder{},
			&usecases.InitReservationBooker{},
			&usecases.InitReservationUpdater{},
			&usecases.InitReservationCanceller{},
			&usecases.InitLLMToolRegistry{},
			&usecases.InitConverse{},
		).
		Host(
			&http.ConciergeServer{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
