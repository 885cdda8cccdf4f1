package blend

import (
	"math"
	"testing"

	"github.com/matzehuels/stylewheel/pkg/errors"
)

const tol = 1e-9

func TestDiskClamp(t *testing.T) {
	disk := DefaultDisk()

	t.Run("inside unchanged", func(t *testing.T) {
		for _, p := range []Point{{250, 250}, {300, 300}, {449.9, 250}, {250, 50}, {250 + 141, 250 + 141}} {
			if got := disk.Clamp(p); got != p {
				t.Errorf("Clamp(%v) = %v, want unchanged", p, got)
			}
		}
	})

	t.Run("center unchanged", func(t *testing.T) {
		c := disk.Center()
		if got := disk.Clamp(c); got != c {
			t.Errorf("Clamp(center) = %v, want %v", got, c)
		}
	})

	tests := []struct {
		name string
		raw  Point
		want Point
	}{
		{"right", Point{700, 250}, Point{450, 250}},
		{"left", Point{-1000, 250}, Point{50, 250}},
		{"up", Point{250, -50}, Point{250, 50}},
		{"down", Point{250, 451}, Point{250, 450}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := disk.Clamp(tt.raw)
			if math.Abs(got.X-tt.want.X) > tol || math.Abs(got.Y-tt.want.Y) > tol {
				t.Errorf("Clamp(%v) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDiskClampKeepsRay(t *testing.T) {
	disk := Disk{CenterX: -10, CenterY: 40, Radius: 7}
	raws := []Point{{100, 100}, {-300, 41}, {-10, -500}, {1e6, -1e6}, {-9, 48}}

	for _, raw := range raws {
		got := disk.Clamp(raw)
		if d := disk.Distance(got); math.Abs(d-disk.Radius) > 1e-6 {
			t.Errorf("Clamp(%v) distance = %v, want %v", raw, d, disk.Radius)
		}
		// Same ray: parallel (zero cross product) and same direction (positive dot).
		v, w := raw.Sub(disk.Center()), got.Sub(disk.Center())
		cross := v.X*w.Y - v.Y*w.X
		dot := v.X*w.X + v.Y*w.Y
		if math.Abs(cross)/(math.Hypot(v.X, v.Y)*disk.Radius) > 1e-9 || dot <= 0 {
			t.Errorf("Clamp(%v) = %v is not on the ray from center", raw, got)
		}
	}
}

func TestDiskValidate(t *testing.T) {
	tests := []struct {
		name    string
		disk    Disk
		wantErr bool
	}{
		{"default", DefaultDisk(), false},
		{"negative center", Disk{CenterX: -5, CenterY: -5, Radius: 1}, false},
		{"zero radius", Disk{CenterX: 250, CenterY: 250, Radius: 0}, true},
		{"negative radius", Disk{Radius: -200}, true},
		{"nan radius", Disk{Radius: math.NaN()}, true},
		{"inf center", Disk{CenterX: math.Inf(1), Radius: 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.disk.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidGeometry) {
				t.Errorf("Validate() code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidGeometry)
			}
		})
	}
}

func TestDiskAnchor(t *testing.T) {
	disk := DefaultDisk()
	tests := []struct {
		angle float64
		want  Point
	}{
		{0, Point{450, 250}},
		{90, Point{250, 450}},
		{180, Point{50, 250}},
		{270, Point{250, 50}},
	}
	for _, tt := range tests {
		got := disk.Anchor(tt.angle)
		if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
			t.Errorf("Anchor(%v) = %v, want %v", tt.angle, got, tt.want)
		}
		if math.Abs(disk.Distance(got)-disk.Radius) > 1e-9 {
			t.Errorf("Anchor(%v) = %v lies off the rim", tt.angle, got)
		}
	}
}

func TestArcDistance(t *testing.T) {
	tests := []struct {
		a, b float64
		want float64
	}{
		{0, 0, 0},
		{10, 350, 20},
		{350, 10, 20},
		{-90, 0, 90},
		{180, 0, 180},
		{-170, 350, 160},
		{-180, 180, 0},
		{45, 315, 90},
		{720, 0, 0},
	}
	for _, tt := range tests {
		got := ArcDistance(tt.a, tt.b)
		if math.Abs(got-tt.want) > tol {
			t.Errorf("ArcDistance(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
		if got < 0 || got > 180 {
			t.Errorf("ArcDistance(%v, %v) = %v out of [0,180]", tt.a, tt.b, got)
		}
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0},
		{359.5, 359.5},
		{360, 0},
		{-90, 270},
		{725, 5},
		{-720, 0},
	}
	for _, tt := range tests {
		if got := NormalizeAngle(tt.in); math.Abs(got-tt.want) > tol {
			t.Errorf("NormalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
