package logger

import (
	"log/slog"
	"os"
)

// SetupPrettySlog returns a text handler for local runs; dev/prod use JSON.
func SetupPrettySlog() *slog.Logger {
	return slog.New(
		slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}),
	)
}
