// Package config loads the stylewheel TOML configuration file.
//
// A missing file is not an error: every section falls back to the built-in
// defaults, and values present in the file override them field by field.
//
//	[disk]
//	center_x = 250
//	center_y = 250
//	radius   = 200
//
//	[blend]
//	epsilon          = 5
//	hit_radius       = 15
//	cone_half_width  = 60
//	inclusion_cutoff = 0.1
//
//	[catalog]
//	url       = "http://localhost:5000/api/styles"
//	cache_ttl = "24h"
//
//	[server]
//	addr = ":5000"
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/stylewheel/pkg/blend"
	"github.com/matzehuels/stylewheel/pkg/errors"
)

const (
	appName = "stylewheel"

	// DefaultCacheTTL is how long fetched catalogs stay fresh.
	DefaultCacheTTL = 24 * time.Hour

	// DefaultAddr is the listen address of the catalog server.
	DefaultAddr = ":5000"
)

// Config is the full configuration document.
type Config struct {
	Disk    blend.Disk   `toml:"disk"`
	Blend   blend.Params `toml:"blend"`
	Catalog Catalog      `toml:"catalog"`
	Server  Server       `toml:"server"`
}

// Catalog selects where styles come from. URL wins over Path; with neither
// set the builtin catalog is used.
type Catalog struct {
	URL      string        `toml:"url"`
	Path     string        `toml:"path"`
	CacheTTL time.Duration `toml:"cache_ttl"`
	Refresh  bool          `toml:"refresh"`
}

// Server configures the HTTP API.
type Server struct {
	Addr string `toml:"addr"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Disk:    blend.DefaultDisk(),
		Blend:   blend.DefaultParams(),
		Catalog: Catalog{CacheTTL: DefaultCacheTTL},
		Server:  Server{Addr: DefaultAddr},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/stylewheel/config.toml, falling back
// to ~/.config/stylewheel/config.toml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the file at path over the defaults and validates the result.
// A path that does not exist yields [Default].
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown key %q in %s", undecoded[0].String(), path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Disk.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "[disk]")
	}
	if err := c.Blend.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "[blend]")
	}
	if c.Catalog.URL != "" {
		if err := errors.ValidateURL(c.Catalog.URL); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "[catalog] url")
		}
	}
	if c.Catalog.CacheTTL < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "[catalog] cache_ttl must not be negative, got %s", c.Catalog.CacheTTL)
	}
	if c.Server.Addr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "[server] addr must not be empty")
	}
	return nil
}
