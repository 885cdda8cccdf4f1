package blend

import (
	"cmp"
	"maps"
	"math"
	"slices"
)

// negligible absorbs rounding noise in the default weight for cursors that
// sit on the rim after clamping.
const negligible = 1e-9

// Style is one blend target anchored on the disk's rim.
// Styles are immutable once loaded.
type Style struct {
	Name  string  `json:"name"`
	Angle float64 `json:"angle"` // degrees, [0,360)
	Color string  `json:"color"` // display value, opaque to the calculator
}

// Distribution maps style names (or [DefaultStyle]) to weights in (0,1].
// Entries always sum to 1; a style missing from the map has weight 0.
type Distribution map[string]float64

// Pure returns the dead-center distribution {Default: 1}.
func Pure() Distribution {
	return Distribution{DefaultStyle: 1}
}

// Weight returns the weight of name, or 0 when it is absent.
func (d Distribution) Weight(name string) float64 { return d[name] }

// Sum returns the total of all weights.
func (d Distribution) Sum() float64 {
	var sum float64
	for _, w := range d {
		sum += w
	}
	return sum
}

// Names returns the present names ordered by descending weight, then name.
func (d Distribution) Names() []string {
	names := slices.Collect(maps.Keys(d))
	slices.SortFunc(names, func(a, b string) int {
		return cmp.Or(cmp.Compare(d[b], d[a]), cmp.Compare(a, b))
	})
	return names
}

// Clone returns an independent copy of d.
func (d Distribution) Clone() Distribution {
	return maps.Clone(d)
}

// Equal reports whether d and other hold the same names with weights within tol.
func (d Distribution) Equal(other Distribution, tol float64) bool {
	if len(d) != len(other) {
		return false
	}
	for name, w := range d {
		ow, ok := other[name]
		if !ok || math.Abs(w-ow) > tol {
			return false
		}
	}
	return true
}

// Compute maps a cursor position to a normalized weight distribution.
//
// The cursor is expected to lie inside the disk (see [Disk.Clamp]); points
// outside still produce a valid distribution because the default weight is
// floored at zero. Compute never returns an empty or NaN-valued result: when
// every raw weight is zero it falls back to [Pure].
func Compute(cursor Point, disk Disk, styles []Style, p Params) Distribution {
	dist := disk.Distance(cursor)
	if dist < p.Epsilon {
		return Pure()
	}

	cursorAngle := disk.angleOf(cursor)
	influence := dist / disk.Radius

	raw := make(Distribution, len(styles)+1)
	if w := math.Max(0, 1-influence); w > negligible {
		raw[DefaultStyle] = w
	}

	for _, s := range styles {
		proximity := math.Max(0, 1-ArcDistance(cursorAngle, s.Angle)/p.ConeHalfWidth)
		if w := proximity * influence; w > p.InclusionCutoff {
			raw[s.Name] = w
		}
	}

	total := raw.Sum()
	if total <= 0 {
		return Pure()
	}
	for name, w := range raw {
		raw[name] = w / total
	}
	return raw
}
