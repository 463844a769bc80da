package time

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont/depend"

	"github.com/foodiespot/concierge/internal/domain"
)

// CurrentTimeProvider provides the current time.
type CurrentTimeProvider struct{}

// Now returns the current time.
func (CurrentTimeProvider) Now() time.Time {
	return time.Now()
}

// InitCurrentTimeProvider initializes the time provider and registers it in the dependency container.
type InitCurrentTimeProvider struct{}

// Initialize registers the time provider in the dependency container.
func (it InitCurrentTimeProvider) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.CurrentTimeProvider](CurrentTimeProvider{})
	return ctx, nil
}
