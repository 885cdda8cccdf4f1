package catalog

import (
	"context"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/stylewheel/pkg/errors"
)

// Source fetches a catalog document.
type Source interface {
	Fetch(ctx context.Context) (Catalog, error)

	// String names the source in logs and hook events.
	String() string
}

// FileSource reads a catalog from a local JSON or TOML file. The format
// follows the file extension; anything other than .toml is read as JSON.
type FileSource struct {
	Path string
}

// Fetch reads and decodes the file.
func (s FileSource) Fetch(ctx context.Context) (Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.Path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeNotFound, err, "catalog file %s", s.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Decode(f, formatFor(s.Path))
}

func (s FileSource) String() string { return "file:" + s.Path }

func formatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatJSON
}

// StaticSource serves a fixed in-memory catalog.
type StaticSource struct {
	Catalog Catalog
}

// Fetch returns a copy of the catalog.
func (s StaticSource) Fetch(ctx context.Context) (Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return maps.Clone(s.Catalog), nil
}

func (s StaticSource) String() string { return "static" }

// NewSource picks a source from configuration: a URL wins over a path, and
// with neither the builtin catalog is used.
func NewSource(url, path string, client *Client) (Source, error) {
	switch {
	case url != "":
		if err := errors.ValidateURL(url); err != nil {
			return nil, err
		}
		return &HTTPSource{URL: url, Client: client}, nil
	case path != "":
		return FileSource{Path: path}, nil
	default:
		return StaticSource{Catalog: Builtin()}, nil
	}
}
