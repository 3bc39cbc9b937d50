package svgcanvas

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/benoitkugler/svgcanvas/svgdom"
)

func TestLoggerDefaultSilent(t *testing.T) {
	if Logger().Enabled(context.Background(), slog.LevelWarn) {
		t.Fatal("default logger should be disabled")
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	SetLogger(l)
	if Logger() != l || svgdom.Logger() != l {
		t.Fatal("logger should be shared with svgdom")
	}

	c := newTestContext(t)
	c.FillRect(0, 0, 10, 10)
	if err := c.ClearRect(0, 0, 5, 5); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "mask created") {
		t.Fatalf("expected a mask creation record, got %q", buf.String())
	}

	SetLogger(nil)
	if Logger() == nil || Logger().Enabled(context.Background(), slog.LevelError) {
		t.Fatal("nil should restore the silent logger")
	}
}
