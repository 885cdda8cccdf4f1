package blend

import (
	"math"

	"github.com/matzehuels/stylewheel/pkg/errors"
)

// Point is a position in the control's local coordinate space.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// Disk is the interactive area: a circle with a fixed center and radius.
// It is a value object and never changes for the lifetime of a control.
type Disk struct {
	CenterX float64 `json:"center_x" toml:"center_x"`
	CenterY float64 `json:"center_y" toml:"center_y"`
	Radius  float64 `json:"radius" toml:"radius"`
}

// DefaultDisk fits a 500x500 drawing surface: centered at (250,250)
// with a 200 unit radius.
func DefaultDisk() Disk {
	return Disk{CenterX: 250, CenterY: 250, Radius: 200}
}

// Validate reports an INVALID_GEOMETRY error when the radius is not positive
// or any coordinate is not finite.
func (d Disk) Validate() error {
	if err := errors.ValidateFinite(errors.ErrCodeInvalidGeometry, "center_x", d.CenterX); err != nil {
		return err
	}
	if err := errors.ValidateFinite(errors.ErrCodeInvalidGeometry, "center_y", d.CenterY); err != nil {
		return err
	}
	return errors.ValidatePositive(errors.ErrCodeInvalidGeometry, "radius", d.Radius)
}

// Center returns the disk's center point.
func (d Disk) Center() Point { return Point{X: d.CenterX, Y: d.CenterY} }

// Distance returns how far p lies from the center.
func (d Disk) Distance(p Point) float64 { return p.Dist(d.Center()) }

// Contains reports whether p lies inside the disk or on its rim.
func (d Disk) Contains(p Point) bool { return d.Distance(p) <= d.Radius }

// Clamp returns the point of the disk closest to p. Points inside the disk,
// including the center itself, are returned unchanged; points outside are
// projected onto the rim along the ray from the center.
func (d Disk) Clamp(p Point) Point {
	dist := d.Distance(p)
	if dist <= d.Radius {
		return p
	}
	v := p.Sub(d.Center())
	return Point{
		X: d.CenterX + v.X/dist*d.Radius,
		Y: d.CenterY + v.Y/dist*d.Radius,
	}
}

// PointAt returns the point at dist from the center in direction angleDeg.
// Angles follow screen coordinates: 0° points right and 90° points down.
func (d Disk) PointAt(angleDeg, dist float64) Point {
	rad := angleDeg * math.Pi / 180
	return Point{
		X: d.CenterX + dist*math.Cos(rad),
		Y: d.CenterY + dist*math.Sin(rad),
	}
}

// Anchor returns the rim position of a style's anchor angle.
func (d Disk) Anchor(angleDeg float64) Point { return d.PointAt(angleDeg, d.Radius) }

// angleOf returns the direction of p from the center in degrees, (-180,180].
func (d Disk) angleOf(p Point) float64 {
	v := p.Sub(d.Center())
	return math.Atan2(v.Y, v.X) * 180 / math.Pi
}

// NormalizeAngle maps any angle in degrees into [0,360).
func NormalizeAngle(deg float64) float64 {
	a := math.Mod(deg, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a = 0
	}
	return a
}

// ArcDistance returns the shortest circular distance between two angles in
// degrees, always within [0,180].
func ArcDistance(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}
