package main

import (
	"context"
	"os/signal"
	"syscall"

	"go.uber.org/fx"

	"github.com/trangvu/shopmart/internal/di"
)

// main boots the shopmart API server. SIGINT or SIGTERM cancels the root
// context, which unwinds the fx lifecycle and stops the HTTP server and the
// outbox dispatcher.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := fx.New(
		fx.Provide(func() context.Context { return ctx }),
		di.Module(),
	)

	run(ctx, app)
}
