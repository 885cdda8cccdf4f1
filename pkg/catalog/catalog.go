package catalog

import (
	"cmp"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/stylewheel/pkg/blend"
	"github.com/matzehuels/stylewheel/pkg/errors"
	"github.com/matzehuels/stylewheel/pkg/palette"
)

// Format identifies a catalog document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// Entry is one catalog record.
type Entry struct {
	Name        string  `json:"name,omitempty" toml:"name"` // display name; the map key is the identity
	Angle       float64 `json:"angle" toml:"angle"`
	Color       string  `json:"color,omitempty" toml:"color"`
	IsDefault   bool    `json:"is_default,omitempty" toml:"is_default"`
	Description string  `json:"description,omitempty" toml:"description"`
}

// Catalog maps style names to entries.
type Catalog map[string]Entry

// Skipped describes an entry left out of [Catalog.Styles].
type Skipped struct {
	Name   string
	Reason error
}

// Styles returns the blendable styles: default-flagged entries and entries
// with invalid names are left out and reported in skipped. Angles are
// normalized into [0,360) and missing colors get [palette.FallbackColor].
// The result is ordered by angle, then name.
func (c Catalog) Styles() (styles []blend.Style, skipped []Skipped) {
	for name, e := range c {
		if e.IsDefault {
			continue
		}
		if err := errors.ValidateStyleName(name); err != nil {
			skipped = append(skipped, Skipped{Name: name, Reason: err})
			continue
		}
		if err := errors.ValidateFinite(errors.ErrCodeInvalidCatalog, name+".angle", e.Angle); err != nil {
			skipped = append(skipped, Skipped{Name: name, Reason: err})
			continue
		}
		color := e.Color
		if color == "" {
			color = palette.FallbackColor
		}
		styles = append(styles, blend.Style{
			Name:  name,
			Angle: blend.NormalizeAngle(e.Angle),
			Color: color,
		})
	}
	slices.SortFunc(styles, func(a, b blend.Style) int {
		if c := cmp.Compare(a.Angle, b.Angle); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	slices.SortFunc(skipped, func(a, b Skipped) int { return cmp.Compare(a.Name, b.Name) })
	return styles, skipped
}

// Label returns the display name of a style, falling back to its key.
func (c Catalog) Label(name string) string {
	if e, ok := c[name]; ok && e.Name != "" {
		return e.Name
	}
	return name
}

// DefaultColor returns the color of the default-flagged entry, if any.
func (c Catalog) DefaultColor() string {
	for _, e := range c {
		if e.IsDefault && e.Color != "" {
			return e.Color
		}
	}
	return palette.DefaultColor
}

// Colors returns the color lookup for blending, including the Default entry.
func (c Catalog) Colors() palette.Colors {
	styles, _ := c.Styles()
	colors := palette.FromStyles(styles)
	colors[blend.DefaultStyle] = c.DefaultColor()
	return colors
}

// Decode reads a catalog document in the given format.
func Decode(r io.Reader, format Format) (Catalog, error) {
	var c Catalog
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&c); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "decode JSON catalog")
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&c); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "decode TOML catalog")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unsupported catalog format %q", format)
	}
	if c == nil {
		c = Catalog{}
	}
	return c, nil
}

//go:embed builtin.toml
var builtinFS embed.FS

// Builtin returns the catalog shipped with the binary, used when no source
// is configured.
func Builtin() Catalog {
	f, err := builtinFS.Open("builtin.toml")
	if err != nil {
		panic(fmt.Sprintf("catalog: builtin catalog missing: %v", err))
	}
	defer f.Close()
	c, err := Decode(f, FormatTOML)
	if err != nil {
		panic(fmt.Sprintf("catalog: builtin catalog invalid: %v", err))
	}
	return c
}
