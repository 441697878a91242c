package logger

import (
	"log/slog"
	"os"
)

// New creates the service-wide slog.Logger. Every record carries the service
// name so shopmart lines are filterable in shared log storage.
func New() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(handler).With(slog.String("service", "shopmart"))
}
