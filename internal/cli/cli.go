// Package cli implements the stylewheel command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stylewheel/internal/config"
	"github.com/matzehuels/stylewheel/pkg/buildinfo"
	"github.com/matzehuels/stylewheel/pkg/catalog"
	"github.com/matzehuels/stylewheel/pkg/httputil"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	logOut io.Writer

	verbose bool

	// Persistent flags, applied over the config file.
	configPath  string
	catalogURL  string
	catalogPath string
	refresh     bool
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		logOut: w,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// =============================================================================
// Config & Catalog
// =============================================================================

// loadConfig reads the config file named by --config (or the default path)
// and applies the catalog flags on top.
func (c *CLI) loadConfig() (config.Config, error) {
	path := c.configPath
	if path == "" {
		if p, err := config.DefaultPath(); err == nil {
			path = p
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	c.Logger.Debug("config loaded", "path", path)

	if c.catalogURL != "" {
		cfg.Catalog.URL = c.catalogURL
		cfg.Catalog.Path = ""
	}
	if c.catalogPath != "" {
		cfg.Catalog.Path = c.catalogPath
		cfg.Catalog.URL = ""
	}
	if c.refresh {
		cfg.Catalog.Refresh = true
	}
	return cfg, cfg.Validate()
}

// loadCatalog resolves the configured source and fetches it once. Fetch
// failures degrade to an empty style list; only a malformed source setting
// is an error.
func (c *CLI) loadCatalog(ctx context.Context, cfg config.Config) (catalog.Loaded, error) {
	client := catalog.NewClient(newCache(cfg.Catalog.CacheTTL), map[string]string{
		"User-Agent": buildinfo.UserAgent(),
	})
	src, err := catalog.NewSource(cfg.Catalog.URL, cfg.Catalog.Path, client)
	if err != nil {
		return catalog.Loaded{}, err
	}
	if hs, ok := src.(*catalog.HTTPSource); ok {
		hs.Refresh = cfg.Catalog.Refresh
	}

	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	var spin *Spinner
	if _, remote := src.(*catalog.HTTPSource); remote && isTerminal(os.Stderr) {
		spin = newSpinnerWithContext(ctx, os.Stderr, "Fetching styles from "+src.String())
		spin.Start()
	}

	loaded := catalog.Load(ctx, src, logger)

	switch {
	case spin != nil && loaded.Err != nil:
		spin.StopWithError("Style catalog unavailable")
	case spin != nil:
		spin.StopWithSuccess(fmt.Sprintf("Loaded %d styles", len(loaded.Styles)))
	case loaded.Err == nil:
		prog.done(fmt.Sprintf("Loaded %d styles from %s", len(loaded.Styles), src))
	}
	return loaded, nil
}

// newCache opens the catalog response cache, or returns nil when the cache
// directory is unavailable.
func newCache(ttl time.Duration) *httputil.Cache {
	dir, err := httputil.DefaultDir()
	if err != nil {
		return nil
	}
	cache, err := httputil.NewCache(dir, ttl)
	if err != nil {
		return nil
	}
	return cache
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}
