package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stylewheel/pkg/observability"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info", log.InfoLevel, func(l *log.Logger) { l.Info("loaded") }, true},
		{"debug at info", log.InfoLevel, func(l *log.Logger) { l.Debug("drag start") }, false},
		{"debug at debug", log.DebugLevel, func(l *log.Logger) { l.Debug("drag start") }, true},
		{"warn at info", log.InfoLevel, func(l *log.Logger) { l.Warn("catalog unavailable") }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("logged = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	p := newProgress(newLogger(&buf, log.InfoLevel))
	p.start = p.start.Add(-1500 * time.Millisecond)
	p.done("Loaded 6 styles")

	if !strings.Contains(buf.String(), "Loaded 6 styles (1.5") {
		t.Errorf("progress output = %q", buf.String())
	}
}

func TestLoggerContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("bare context should yield log.Default()")
	}

	var buf bytes.Buffer
	l := newLogger(&buf, log.InfoLevel)
	if loggerFromContext(withLogger(context.Background(), l)) != l {
		t.Error("loggerFromContext should return the attached logger")
	}
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.DebugLevel)
	installLogHooks(logger)
	t.Cleanup(observability.Reset)

	observability.Control().OnDragStart("wheel", 250, 250)
	observability.Control().OnDragEnd("wheel", "leave")
	observability.Catalog().OnCacheMiss(context.Background(), "styles:http://x")
	observability.HTTP().OnResponse(context.Background(), "GET", "/health", 200, time.Millisecond)

	for _, want := range []string{"drag start", "reason=leave", "cache miss", "status=200"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("log output missing %q:\n%s", want, buf.String())
		}
	}
}

func TestLogHooksQuietAtInfo(t *testing.T) {
	var buf bytes.Buffer
	installLogHooks(newLogger(&buf, log.InfoLevel))
	t.Cleanup(observability.Reset)

	observability.Control().OnRecompute("wheel", 1, 2, 3)
	if buf.Len() != 0 {
		t.Errorf("recompute should log at debug only, got %q", buf.String())
	}
}
