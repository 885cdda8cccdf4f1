package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stylewheel/pkg/observability"
)

// newLogger creates a logger with "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress measures an operation from creation until done.
// It is safe for sequential use by a single goroutine.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

func (p *progress) elapsed() time.Duration {
	return time.Since(p.start).Round(time.Millisecond)
}

// done logs msg with the elapsed time, e.g. "Loaded 6 styles (12ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, p.elapsed())
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached by withLogger, or
// log.Default() when there is none.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Observability
// =============================================================================

// logHooks reports control, catalog and server events at debug level.
type logHooks struct {
	logger *log.Logger
}

func installLogHooks(l *log.Logger) {
	h := logHooks{logger: l}
	observability.SetControlHooks(h)
	observability.SetCatalogHooks(h)
	observability.SetHTTPHooks(h)
}

func (h logHooks) OnDragStart(id string, x, y float64) {
	h.logger.Debug("drag start", "control", id, "x", x, "y", y)
}

func (h logHooks) OnDragEnd(id, reason string) {
	h.logger.Debug("drag end", "control", id, "reason", reason)
}

func (h logHooks) OnRecompute(id string, x, y float64, entries int) {
	h.logger.Debug("weights", "control", id, "x", x, "y", y, "entries", entries)
}

func (h logHooks) OnFetchStart(_ context.Context, source string) {
	h.logger.Debug("fetching catalog", "source", source)
}

func (h logHooks) OnFetchComplete(_ context.Context, source string, styles int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("catalog fetch failed", "source", source, "duration", d, "err", err)
		return
	}
	h.logger.Debug("catalog fetched", "source", source, "styles", styles, "duration", d)
}

func (h logHooks) OnCacheHit(_ context.Context, key string) {
	h.logger.Debug("cache hit", "key", key)
}

func (h logHooks) OnCacheMiss(_ context.Context, key string) {
	h.logger.Debug("cache miss", "key", key)
}

func (h logHooks) OnRequest(_ context.Context, method, path, requestID string) {
	h.logger.Debug("request", "method", method, "path", path, "id", requestID)
}

func (h logHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	h.logger.Info("served", "method", method, "path", path, "status", status, "duration", d.Round(time.Microsecond))
}
