package blend

import "github.com/matzehuels/stylewheel/pkg/errors"

// Threshold defaults. Their exact values shape the normalized output, so they
// are part of the control's observable behavior.
const (
	// DefaultEpsilon is the distance from the center below which the cursor
	// counts as dead-center and yields pure Default.
	DefaultEpsilon = 5.0

	// DefaultHitRadius is the tolerance around the cursor marker within which
	// a pointer-down starts a drag.
	DefaultHitRadius = 15.0

	// DefaultConeHalfWidth is the arc distance in degrees at which a style's
	// angular proximity falls to zero.
	DefaultConeHalfWidth = 60.0

	// DefaultInclusionCutoff is the raw weight a style must exceed to appear
	// in a distribution.
	DefaultInclusionCutoff = 0.1
)

// DefaultStyle is the name of the implicit style at the disk's center.
const DefaultStyle = "Default"

// Params holds the tunable thresholds of the weight calculator and the drag
// state machine.
type Params struct {
	Epsilon         float64 `json:"epsilon" toml:"epsilon"`
	HitRadius       float64 `json:"hit_radius" toml:"hit_radius"`
	ConeHalfWidth   float64 `json:"cone_half_width" toml:"cone_half_width"`
	InclusionCutoff float64 `json:"inclusion_cutoff" toml:"inclusion_cutoff"`
}

// DefaultParams returns the standard thresholds.
func DefaultParams() Params {
	return Params{
		Epsilon:         DefaultEpsilon,
		HitRadius:       DefaultHitRadius,
		ConeHalfWidth:   DefaultConeHalfWidth,
		InclusionCutoff: DefaultInclusionCutoff,
	}
}

// Validate reports an INVALID_PARAMS error for non-positive or non-finite
// thresholds. The inclusion cutoff may be zero but not negative.
func (p Params) Validate() error {
	if err := errors.ValidatePositive(errors.ErrCodeInvalidParams, "epsilon", p.Epsilon); err != nil {
		return err
	}
	if err := errors.ValidatePositive(errors.ErrCodeInvalidParams, "hit_radius", p.HitRadius); err != nil {
		return err
	}
	if err := errors.ValidatePositive(errors.ErrCodeInvalidParams, "cone_half_width", p.ConeHalfWidth); err != nil {
		return err
	}
	if err := errors.ValidateFinite(errors.ErrCodeInvalidParams, "inclusion_cutoff", p.InclusionCutoff); err != nil {
		return err
	}
	if p.InclusionCutoff < 0 || p.InclusionCutoff >= 1 {
		return errors.New(errors.ErrCodeInvalidParams, "inclusion_cutoff must be in [0,1), got %g", p.InclusionCutoff)
	}
	return nil
}
