package log

import (
	"context"
	"log"
	"os"

	"github.com/cleitonmarx/symbiont/depend"
)

// InitLogger initializes the application logger and registers it in the dependency container.
type InitLogger struct{}

// Initialize creates a standard logger writing to stdout and registers it.
func (il InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	logger := log.New(os.Stdout, "", log.Lmsgprefix)
	depend.Register(logger)
	return ctx, nil
}
