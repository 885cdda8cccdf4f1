// Package palette turns style display colors into a single blended color for
// a weight distribution, so a cursor marker can show the blend it represents.
package palette

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/stylewheel/pkg/blend"
)

const (
	// DefaultColor is the display color of the implicit Default style.
	DefaultColor = "#FF1B6D"

	// FallbackColor is used for styles whose catalog entry has no color.
	FallbackColor = "#888888"
)

// Parse parses a "#rgb" or "#rrggbb" color.
func Parse(hex string) (colorful.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("parse color %q: %w", hex, err)
	}
	return c, nil
}

// Colors maps style names to display colors. The Default entry is implicit.
type Colors map[string]string

// FromStyles builds a color lookup from a style list.
func FromStyles(styles []blend.Style) Colors {
	c := make(Colors, len(styles)+1)
	for _, s := range styles {
		c[s.Name] = s.Color
	}
	return c
}

// Of returns the parsed color for name. Unknown names and unparseable values
// resolve to [FallbackColor]; the Default style resolves to [DefaultColor]
// unless overridden.
func (c Colors) Of(name string) colorful.Color {
	hex, ok := c[name]
	if !ok || hex == "" {
		if name == blend.DefaultStyle {
			hex = DefaultColor
		} else {
			hex = FallbackColor
		}
	}
	col, err := Parse(hex)
	if err != nil {
		col, _ = Parse(FallbackColor)
	}
	return col
}

// Blend mixes the colors of every entry in d, weighted by its share. Mixing
// happens in linear RGB so equal weights of complementary colors land on a
// perceptually even midpoint. The result is a "#rrggbb" string.
func (c Colors) Blend(d blend.Distribution) string {
	if len(d) == 0 {
		return c.Of(blend.DefaultStyle).Hex()
	}
	var r, g, b, total float64
	for _, name := range d.Names() {
		w := d[name]
		lr, lg, lb := c.Of(name).LinearRgb()
		r += lr * w
		g += lg * w
		b += lb * w
		total += w
	}
	return colorful.LinearRgb(r/total, g/total, b/total).Clamped().Hex()
}
