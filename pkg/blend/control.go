package blend

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/matzehuels/stylewheel/pkg/errors"
	"github.com/matzehuels/stylewheel/pkg/observability"
)

// State is the drag state of a [Control].
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// EventKind identifies a pointer event delivered to [Control.Handle].
type EventKind int

const (
	PointerDown EventKind = iota
	PointerMove
	PointerUp
	PointerLeave
	PointerCancel
)

func (k EventKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerLeave:
		return "leave"
	case PointerCancel:
		return "cancel"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is a pointer event already translated into local coordinates.
// Point is ignored for up, leave and cancel.
type Event struct {
	Kind  EventKind
	Point Point
}

// Listener receives every recomputed distribution.
type Listener interface {
	WeightsChanged(Distribution)
}

// ListenerFunc adapts a plain function to [Listener].
type ListenerFunc func(Distribution)

// WeightsChanged calls f(d).
func (f ListenerFunc) WeightsChanged(d Distribution) { f(d) }

type subscription struct {
	id       uint64
	listener Listener
}

// Control is the radial blend control: an Idle/Dragging state machine over a
// fixed disk and style list. The zero value is not usable; construct with [New].
type Control struct {
	id     string
	disk   Disk
	styles []Style
	params Params

	state  State
	cursor Point

	// weights is the distribution for the current cursor, seeded at
	// construction and replaced on every accepted move.
	weights Distribution

	subs   []subscription
	nextID uint64
}

// Option configures a [Control] at construction.
type Option func(*Control)

// WithParams overrides the default thresholds.
func WithParams(p Params) Option {
	return func(c *Control) { c.params = p }
}

// WithID sets the identifier reported to observability hooks. By default
// each control gets a random UUID.
func WithID(id string) Option {
	return func(c *Control) { c.id = id }
}

// New creates a control in the Idle state with the cursor at the disk center.
// The styles slice is copied; later changes by the caller are not observed.
//
// New fails with INVALID_GEOMETRY when the disk is malformed and with
// INVALID_PARAMS when a threshold is out of range.
func New(disk Disk, styles []Style, opts ...Option) (*Control, error) {
	if err := disk.Validate(); err != nil {
		return nil, err
	}
	c := &Control{
		disk:   disk,
		styles: append([]Style(nil), styles...),
		params: DefaultParams(),
		state:  Idle,
		cursor: disk.Center(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.params.Validate(); err != nil {
		return nil, err
	}
	if c.id == "" {
		c.id = uuid.NewString()
	}
	if err := validateStyles(c.styles); err != nil {
		return nil, err
	}
	c.weights = Compute(c.cursor, c.disk, c.styles, c.params)
	return c, nil
}

func validateStyles(styles []Style) error {
	seen := make(map[string]bool, len(styles))
	for _, s := range styles {
		if err := errors.ValidateStyleName(s.Name); err != nil {
			return err
		}
		if seen[s.Name] {
			return errors.New(errors.ErrCodeInvalidStyle, "duplicate style %q", s.Name)
		}
		seen[s.Name] = true
		if err := errors.ValidateFinite(errors.ErrCodeInvalidStyle, s.Name+".angle", s.Angle); err != nil {
			return err
		}
	}
	return nil
}

// ID returns the control's identifier.
func (c *Control) ID() string { return c.id }

// Disk returns the control's geometry.
func (c *Control) Disk() Disk { return c.disk }

// Params returns the control's thresholds.
func (c *Control) Params() Params { return c.params }

// Styles returns a copy of the style list.
func (c *Control) Styles() []Style { return append([]Style(nil), c.styles...) }

// State returns the current drag state.
func (c *Control) State() State { return c.state }

// Cursor returns the last committed cursor position.
func (c *Control) Cursor() Point { return c.cursor }

// Weights returns a copy of the distribution for the current cursor, the same
// value most recently delivered to listeners.
func (c *Control) Weights() Distribution {
	return c.weights.Clone()
}

// Subscribe registers l for change notifications and returns a function that
// removes it. Calling the returned function more than once is harmless.
func (c *Control) Subscribe(l Listener) (unsubscribe func()) {
	c.nextID++
	id := c.nextID
	c.subs = append(c.subs, subscription{id: id, listener: l})
	return func() {
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

// Handle dispatches ev to the matching transition and reports whether it
// changed the state or the cursor.
func (c *Control) Handle(ev Event) bool {
	switch ev.Kind {
	case PointerDown:
		return c.PointerDown(ev.Point)
	case PointerMove:
		return c.PointerMove(ev.Point)
	case PointerUp:
		return c.PointerUp()
	case PointerLeave:
		return c.PointerLeave()
	case PointerCancel:
		return c.PointerCancel()
	}
	return false
}

// PointerDown starts a drag when p lies within the hit radius of the current
// cursor marker. Presses elsewhere, or while already dragging, are ignored.
func (c *Control) PointerDown(p Point) bool {
	if c.state != Idle {
		return false
	}
	if p.Dist(c.cursor) >= c.params.HitRadius {
		return false
	}
	c.state = Dragging
	observability.Control().OnDragStart(c.id, c.cursor.X, c.cursor.Y)
	return true
}

// PointerMove moves the cursor to the clamped position of p, recomputes the
// distribution and notifies listeners. It does nothing while Idle.
func (c *Control) PointerMove(p Point) bool {
	if c.state != Dragging {
		return false
	}
	c.cursor = c.disk.Clamp(p)
	c.weights = Compute(c.cursor, c.disk, c.styles, c.params)
	observability.Control().OnRecompute(c.id, c.cursor.X, c.cursor.Y, len(c.weights))
	c.notify()
	return true
}

// PointerUp ends a drag.
func (c *Control) PointerUp() bool { return c.endDrag(PointerUp) }

// PointerLeave ends a drag when the pointer leaves the control. The cursor
// keeps its last clamped position.
func (c *Control) PointerLeave() bool { return c.endDrag(PointerLeave) }

// PointerCancel ends a drag aborted by the input source. The cursor keeps its
// last clamped position.
func (c *Control) PointerCancel() bool { return c.endDrag(PointerCancel) }

func (c *Control) endDrag(reason EventKind) bool {
	if c.state != Dragging {
		return false
	}
	c.state = Idle
	observability.Control().OnDragEnd(c.id, reason.String())
	return true
}

func (c *Control) notify() {
	// Listeners may unsubscribe during delivery.
	subs := append([]subscription(nil), c.subs...)
	for _, s := range subs {
		s.listener.WeightsChanged(c.weights.Clone())
	}
}
