package usecases

import (
	"context"
	"sync"

	"github.com/cleitonmarx/symbiont/depend"
)

// slotGuard serializes check-then-write booking sequences per restaurant/date,
// closing the race where two bookings pass the availability check for the same
// slot before either is persisted.
type slotGuard struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newSlotGuard() *slotGuard {
	return &slotGuard{
		locks: map[string]*sync.Mutex{},
	}
}

// Lock acquires the critical section for the given restaurant and date.
// The returned function releases it.
func (g *slotGuard) Lock(restaurantID, date string) func() {
	key := restaurantID + "|" + date

	g.mu.Lock()
	lock, found := g.locks[key]
	if !found {
		lock = &sync.Mutex{}
		g.locks[key] = lock
	}
	g.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// InitSlotGuard registers the shared booking critical section in the dependency container.
type InitSlotGuard struct{}

// Initialize registers a single slotGuard shared by the booking and update use cases.
func (InitSlotGuard) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(newSlotGuard())
	return ctx, nil
}
