package blend

import (
	"math"
	"testing"

	"github.com/matzehuels/stylewheel/pkg/errors"
	"github.com/matzehuels/stylewheel/pkg/observability"
)

func newTestControl(t *testing.T, styles []Style) *Control {
	t.Helper()
	c, err := New(DefaultDisk(), styles, WithID("test"))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return c
}

// recorder collects every pushed distribution.
type recorder struct {
	got []Distribution
}

func (r *recorder) WeightsChanged(d Distribution) { r.got = append(r.got, d) }

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name   string
		disk   Disk
		styles []Style
		opts   []Option
		code   errors.Code
	}{
		{"zero radius", Disk{CenterX: 250, CenterY: 250}, nil, nil, errors.ErrCodeInvalidGeometry},
		{"negative radius", Disk{Radius: -1}, nil, nil, errors.ErrCodeInvalidGeometry},
		{"nan center", Disk{CenterX: math.NaN(), Radius: 1}, nil, nil, errors.ErrCodeInvalidGeometry},
		{"zero hit radius", DefaultDisk(), nil, []Option{WithParams(Params{Epsilon: 5, ConeHalfWidth: 60})}, errors.ErrCodeInvalidParams},
		{"cutoff of one", DefaultDisk(), nil, []Option{WithParams(Params{Epsilon: 5, HitRadius: 15, ConeHalfWidth: 60, InclusionCutoff: 1})}, errors.ErrCodeInvalidParams},
		{"duplicate style", DefaultDisk(), []Style{{Name: "A"}, {Name: "A", Angle: 90}}, nil, errors.ErrCodeInvalidStyle},
		{"empty style name", DefaultDisk(), []Style{{Name: ""}}, nil, errors.ErrCodeInvalidStyle},
		{"reserved name", DefaultDisk(), []Style{{Name: DefaultStyle}}, nil, errors.ErrCodeInvalidStyle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.disk, tt.styles, tt.opts...)
			if err == nil {
				t.Fatalf("New() = %v, want error", c)
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("New() code = %v, want %v", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestNewInitialState(t *testing.T) {
	c := newTestControl(t, spooky())

	if c.State() != Idle {
		t.Errorf("State() = %v, want idle", c.State())
	}
	if c.Cursor() != c.Disk().Center() {
		t.Errorf("Cursor() = %v, want center", c.Cursor())
	}
	assertDistribution(t, c.Weights(), Pure())
	if c.ID() != "test" {
		t.Errorf("ID() = %q, want %q", c.ID(), "test")
	}
}

func TestNewGeneratesID(t *testing.T) {
	a, _ := New(DefaultDisk(), nil)
	b, _ := New(DefaultDisk(), nil)
	if a.ID() == "" || a.ID() == b.ID() {
		t.Errorf("expected distinct generated IDs, got %q and %q", a.ID(), b.ID())
	}
}

func TestNewCopiesStyles(t *testing.T) {
	styles := spooky()
	c := newTestControl(t, styles)
	styles[0].Angle = 180

	c.PointerDown(Point{250, 250})
	c.PointerMove(Point{450, 250})
	assertDistribution(t, c.Weights(), Distribution{"Spooky": 1})
}

func TestPointerDownHitRadius(t *testing.T) {
	tests := []struct {
		name  string
		press Point
		want  State
	}{
		{"on marker", Point{250, 250}, Dragging},
		{"inside tolerance", Point{260, 255}, Dragging},
		{"at tolerance", Point{265, 250}, Idle},
		{"far away", Point{400, 250}, Idle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestControl(t, spooky())
			c.PointerDown(tt.press)
			if c.State() != tt.want {
				t.Errorf("State() = %v, want %v", c.State(), tt.want)
			}
		})
	}
}

func TestDragGating(t *testing.T) {
	c := newTestControl(t, spooky())
	rec := &recorder{}
	c.Subscribe(rec)

	if c.PointerMove(Point{400, 250}) {
		t.Error("PointerMove while idle reported a change")
	}
	if c.PointerUp() {
		t.Error("PointerUp while idle reported a change")
	}
	if c.Cursor() != c.Disk().Center() {
		t.Errorf("idle move changed cursor to %v", c.Cursor())
	}
	if len(rec.got) != 0 {
		t.Errorf("idle move notified %d times", len(rec.got))
	}
}

func TestDragLifecycle(t *testing.T) {
	c := newTestControl(t, spooky())
	rec := &recorder{}
	c.Subscribe(rec)

	if !c.PointerDown(Point{252, 249}) {
		t.Fatal("PointerDown on marker should start a drag")
	}
	if c.PointerDown(Point{252, 249}) {
		t.Error("PointerDown while dragging should be a no-op")
	}

	c.PointerMove(Point{350, 250})
	c.PointerMove(Point{900, 250}) // clamped onto the rim

	if got := c.Cursor(); math.Abs(got.X-450) > tol || math.Abs(got.Y-250) > tol {
		t.Errorf("Cursor() = %v, want clamped (450,250)", got)
	}
	if len(rec.got) != 2 {
		t.Fatalf("got %d notifications, want 2", len(rec.got))
	}
	assertDistribution(t, rec.got[0], Distribution{DefaultStyle: 0.5, "Spooky": 0.5})
	assertDistribution(t, rec.got[1], Distribution{"Spooky": 1})

	// Pull accessor agrees with the last push.
	assertDistribution(t, c.Weights(), rec.got[1])

	if !c.PointerUp() {
		t.Error("PointerUp while dragging should end the drag")
	}
	if c.State() != Idle {
		t.Errorf("State() = %v after up, want idle", c.State())
	}

	c.PointerMove(Point{250, 50})
	if len(rec.got) != 2 {
		t.Error("move after up should not notify")
	}
}

func TestPointerLeaveRetainsCursor(t *testing.T) {
	for _, end := range []EventKind{PointerLeave, PointerCancel} {
		t.Run(end.String(), func(t *testing.T) {
			c := newTestControl(t, spooky())
			c.PointerDown(Point{250, 250})
			c.PointerMove(Point{300, 300})

			if !c.Handle(Event{Kind: end}) {
				t.Fatalf("%v while dragging should end the drag", end)
			}
			if c.State() != Idle {
				t.Errorf("State() = %v, want idle", c.State())
			}
			if c.Cursor() != (Point{300, 300}) {
				t.Errorf("Cursor() = %v, want retained (300,300)", c.Cursor())
			}
		})
	}
}

func TestHitRadiusFollowsCursor(t *testing.T) {
	c := newTestControl(t, spooky())
	c.PointerDown(Point{250, 250})
	c.PointerMove(Point{400, 250})
	c.PointerUp()

	if c.PointerDown(Point{250, 250}) {
		t.Error("pressing the disk center should not grab a cursor parked elsewhere")
	}
	if !c.PointerDown(Point{405, 245}) {
		t.Error("pressing near the parked cursor should start a drag")
	}
}

func TestHandleDispatch(t *testing.T) {
	c := newTestControl(t, spooky())
	events := []struct {
		ev        Event
		want      bool
		wantState State
	}{
		{Event{Kind: PointerMove, Point: Point{300, 250}}, false, Idle},
		{Event{Kind: PointerDown, Point: Point{100, 100}}, false, Idle},
		{Event{Kind: PointerDown, Point: Point{250, 250}}, true, Dragging},
		{Event{Kind: PointerMove, Point: Point{300, 250}}, true, Dragging},
		{Event{Kind: PointerUp}, true, Idle},
		{Event{Kind: PointerLeave}, false, Idle},
		{Event{Kind: EventKind(42)}, false, Idle},
	}
	for i, e := range events {
		if got := c.Handle(e.ev); got != e.want {
			t.Errorf("step %d: Handle(%v) = %v, want %v", i, e.ev.Kind, got, e.want)
		}
		if c.State() != e.wantState {
			t.Errorf("step %d: State() = %v, want %v", i, c.State(), e.wantState)
		}
	}
}

func TestUnsubscribe(t *testing.T) {
	c := newTestControl(t, spooky())
	a, b := &recorder{}, &recorder{}
	unsubA := c.Subscribe(a)
	c.Subscribe(b)

	c.PointerDown(Point{250, 250})
	c.PointerMove(Point{300, 250})
	unsubA()
	unsubA()
	c.PointerMove(Point{350, 250})

	if len(a.got) != 1 {
		t.Errorf("unsubscribed listener got %d notifications, want 1", len(a.got))
	}
	if len(b.got) != 2 {
		t.Errorf("subscribed listener got %d notifications, want 2", len(b.got))
	}
}

func TestUnsubscribeDuringDelivery(t *testing.T) {
	c := newTestControl(t, spooky())
	var calls int
	var unsub func()
	unsub = c.Subscribe(ListenerFunc(func(Distribution) {
		calls++
		unsub()
	}))
	other := &recorder{}
	c.Subscribe(other)

	c.PointerDown(Point{250, 250})
	c.PointerMove(Point{300, 250})
	c.PointerMove(Point{310, 250})

	if calls != 1 {
		t.Errorf("self-removing listener called %d times, want 1", calls)
	}
	if len(other.got) != 2 {
		t.Errorf("other listener got %d notifications, want 2", len(other.got))
	}
}

func TestListenerReceivesCopy(t *testing.T) {
	c := newTestControl(t, spooky())
	c.Subscribe(ListenerFunc(func(d Distribution) {
		d["Spooky"] = 42
	}))
	c.PointerDown(Point{250, 250})
	c.PointerMove(Point{450, 250})

	assertDistribution(t, c.Weights(), Distribution{"Spooky": 1})
}

func TestControlHooks(t *testing.T) {
	observability.Reset()
	t.Cleanup(observability.Reset)

	h := &hookRecorder{}
	observability.SetControlHooks(h)

	c := newTestControl(t, spooky())
	c.PointerDown(Point{250, 250})
	c.PointerMove(Point{300, 250})
	c.PointerLeave()

	want := []string{"start:test", "recompute:test:2", "end:test:leave"}
	if len(h.events) != len(want) {
		t.Fatalf("hook events = %v, want %v", h.events, want)
	}
	for i := range want {
		if h.events[i] != want[i] {
			t.Errorf("event %d = %q, want %q", i, h.events[i], want[i])
		}
	}
}

type hookRecorder struct{ events []string }

func (h *hookRecorder) OnDragStart(id string, _, _ float64) {
	h.events = append(h.events, "start:"+id)
}

func (h *hookRecorder) OnDragEnd(id, reason string) {
	h.events = append(h.events, "end:"+id+":"+reason)
}

func (h *hookRecorder) OnRecompute(id string, _, _ float64, entries int) {
	h.events = append(h.events, "recompute:"+id+":"+string(rune('0'+entries)))
}

func TestStateString(t *testing.T) {
	if Idle.String() != "idle" || Dragging.String() != "dragging" {
		t.Errorf("unexpected state names %q %q", Idle, Dragging)
	}
	if got := State(9).String(); got != "State(9)" {
		t.Errorf("State(9).String() = %q", got)
	}
}
