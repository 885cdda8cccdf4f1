package catalog

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stylewheel/pkg/blend"
	"github.com/matzehuels/stylewheel/pkg/observability"
)

// Loaded is the outcome of [Load]: the styles handed to the blend core and
// the catalog they came from, kept for labels and colors.
type Loaded struct {
	Styles  []blend.Style
	Catalog Catalog
	Err     error // fetch failure that forced the empty fallback, if any
}

// Load fetches src once and converts it into a style list. It never fails:
// a fetch error or malformed document yields an empty style list, logged at
// warn level, so the control can still run with only the Default weight.
func Load(ctx context.Context, src Source, logger *log.Logger) Loaded {
	if logger == nil {
		logger = log.Default()
	}
	start := time.Now()
	observability.Catalog().OnFetchStart(ctx, src.String())

	c, err := src.Fetch(ctx)
	if err != nil {
		observability.Catalog().OnFetchComplete(ctx, src.String(), 0, time.Since(start), err)
		logger.Warn("style catalog unavailable, using Default only", "source", src.String(), "err", err)
		return Loaded{Catalog: Catalog{}, Err: err}
	}

	styles, skipped := c.Styles()
	for _, s := range skipped {
		logger.Warn("skipping catalog entry", "name", s.Name, "reason", s.Reason)
	}
	observability.Catalog().OnFetchComplete(ctx, src.String(), len(styles), time.Since(start), nil)
	logger.Debug("loaded style catalog", "source", src.String(), "styles", len(styles), "duration", time.Since(start))

	return Loaded{Styles: styles, Catalog: c}
}
