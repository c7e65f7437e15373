package trace

import (
	"context"
	"log/slog"
)

// SlogAdapter writes operation events to an slog.Logger.
// Useful for development when you want to see remote operations in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session_id", event.SessionID),
		slog.String("remote", event.Remote.String()),
		slog.String("op", event.Op.String()),
		slog.Bool("power_on", event.PowerOn),
		slog.Int("volume", event.Volume),
	}

	// Add optional identifiers
	if event.Device != "" {
		attrs = append(attrs, slog.String("device", event.Device))
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "remote", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
