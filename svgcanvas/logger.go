package svgcanvas

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/benoitkugler/svgcanvas/svgdom"
)

// nopHandler discards every record.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger of svgcanvas and svgdom.
// By default nothing is logged. Pass nil to restore the silent behavior.
//
// Log levels used:
//   - [slog.LevelDebug]: mask creation, query sizes, ignored fonts
//   - [slog.LevelWarn]: unknown elements met while parsing in WarnErrorMode
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	svgdom.SetLogger(l)
}

// Logger returns the current logger, never nil.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
