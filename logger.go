package softgl

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip building the record entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for softgl and its sub-packages.
// By default softgl produces no log output; pass nil to restore that.
//
// Log levels used by softgl:
//   - [slog.LevelDebug]: per-render statistics and loader details
//   - [slog.LevelInfo]: files written by the drivers
//   - [slog.LevelWarn]: missing or undecodable textures replaced by defaults
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by softgl.
// Sub-packages (mesh, imageio) call this to share the same configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
