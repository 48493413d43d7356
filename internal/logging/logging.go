// Package logging owns the process-wide structured logger. Setup happens
// exactly once regardless of how many extractions run; repeated Init calls
// are absorbed by the guard rather than re-installing a handler.
package logging

import (
	"log/slog"
	"os"
	"sync"
)

var initOnce sync.Once

// Init installs a JSON slog handler as the default logger. Only the first
// call has any effect.
func Init(verbose bool) {
	initOnce.Do(func() {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})
		slog.SetDefault(slog.New(handler))
	})
}
