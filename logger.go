package zoomer

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while a session is running.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for zoomer and all its sub-packages.
// By default zoomer produces no log output.
//
// Pass nil to restore the default silent behavior.
//
// Log levels used by zoomer:
//   - [slog.LevelDebug]: per-event diagnostics (ignored monitor selections,
//     clamped configuration values)
//   - [slog.LevelInfo]: lifecycle events (capture size, window size)
//   - [slog.LevelWarn]: recoverable problems (configuration fallbacks)
//
// Example:
//
//	zoomer.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by zoomer.
// Sub-packages (capture, config, session, backends) call this to share the
// same logger configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
