package logger

import (
	"log/slog"
	"os"
)

// New creates the process-wide slog.Logger. Every line carries the
// service attribute so aggregated logs stay attributable.
func New() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(handler).With(slog.String("service", "storemart"))
}
