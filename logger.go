package geodesic

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var nopLogger = slog.New(nopHandler{})

// loggerPtr stores the active logger. A nil value means silent.
var loggerPtr atomic.Pointer[slog.Logger]

// SetLogger configures the logger used by the package. By default nothing
// is logged. Pass nil to restore the silent default.
//
// SetLogger is safe for concurrent use.
//
// Log levels used:
//   - [slog.LevelDebug]: rejected ellipsoid parameters, Line misuse
//     (distance requested without the DistanceIn capability)
//   - [slog.LevelWarn]: the inverse solver exhausted its iteration budget
func SetLogger(l *slog.Logger) {
	loggerPtr.Store(l)
}

// Logger returns the current logger. It never returns nil.
func Logger() *slog.Logger {
	if l := loggerPtr.Load(); l != nil {
		return l
	}
	return nopLogger
}
