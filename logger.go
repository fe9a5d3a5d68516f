package sketch

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gg"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled reports false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so hosts may
// swap it from a different goroutine than the frame loop.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for sketch, its hosts and the underlying
// gg rasterizer. By default nothing is logged.
//
// Log levels used by sketch:
//   - [slog.LevelDebug]: per-shape diagnostics (raster sizes, placements)
//   - [slog.LevelInfo]: lifecycle events (setup finished, frames saved)
//   - [slog.LevelWarn]: degraded operations (capture failure, font fallback)
//
// Pass nil to restore the silent default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	gg.SetLogger(l)
}

// Logger returns the current logger used by sketch.
// Subpackages call this to share the same configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
