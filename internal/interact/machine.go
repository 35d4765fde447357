// Package interact turns raw pointer and keyboard events for a single
// timeline bar into drafts, selections and committed updates.
//
// The gesture logic is a pure transition function, Step, over an explicit
// State value. Controller wraps Step for one bar, delivers callbacks and
// coordinates pointer capture with the other bars through a shared Capture.
package interact

import (
	"math"
	"strings"
	"time"

	"gantt/internal/timeline"
)

const (
	// DefaultThreshold is the displacement a press must travel before it
	// becomes a drag.
	DefaultThreshold = 4.0

	// DefaultClickDelay is how long a single click waits for a second one
	// before it selects the item.
	DefaultClickDelay = 250 * time.Millisecond
)

// Part identifies the region of a bar that received a press.
type Part int

const (
	Body Part = iota
	LeftHandle
	RightHandle
)

// Kind is the gesture started by a press.
type Kind int

const (
	Move Kind = iota
	ResizeLeft
	ResizeRight
)

func (k Kind) String() string {
	switch k {
	case ResizeLeft:
		return "resize-left"
	case ResizeRight:
		return "resize-right"
	default:
		return "move"
	}
}

func kindFor(p Part) Kind {
	switch p {
	case LeftHandle:
		return ResizeLeft
	case RightHandle:
		return ResizeRight
	default:
		return Move
	}
}

// Mode is the coarse state of a bar.
type Mode int

const (
	Idle Mode = iota
	Candidate
	Activated
	Editing
)

func (m Mode) String() string {
	switch m {
	case Candidate:
		return "candidate"
	case Activated:
		return "activated"
	case Editing:
		return "editing"
	default:
		return "idle"
	}
}

// Session is the state of one press-drag-release gesture.
type Session struct {
	Kind         Kind
	OriginX      float64
	OriginScroll float64
	Start        timeline.Date // committed start when the press happened
	End          timeline.Date // committed end when the press happened
	Activated    bool
}

// Displacement is the distance travelled along the time axis, including
// any scrolling since the press.
func (s Session) Displacement(x, scroll float64) float64 {
	return (x - s.OriginX) + (scroll - s.OriginScroll)
}

// RangeAt returns the normalized range the gesture proposes for a pointer
// at x with the given scroll offset.
func (s Session) RangeAt(x, scroll, pixelsPerDay float64) timeline.Range {
	days := DayDelta(s.Displacement(x, scroll), pixelsPerDay)
	r := timeline.Range{Start: s.Start, End: s.End}
	switch s.Kind {
	case Move:
		r = r.Shift(days)
	case ResizeLeft:
		r.Start = r.Start.AddDays(days)
	case ResizeRight:
		r.End = r.End.AddDays(days)
	}
	return r.Normalize()
}

// DayDelta converts a displacement to whole days.
func DayDelta(delta, pixelsPerDay float64) int {
	if pixelsPerDay <= 0 {
		return 0
	}
	return int(math.Round(delta / pixelsPerDay))
}

// SelectTimer asks the host to deliver SelectTimerFired{Token} after Delay.
type SelectTimer struct {
	Token uint64
	Delay time.Duration
}

// State is everything a bar remembers between events. Treat values as
// immutable: Step never modifies the Session or Draft it was given.
type State struct {
	Mode    Mode
	Session *Session
	Draft   *timeline.Range

	// SuppressClick swallows the click that follows a completed drag.
	SuppressClick bool

	// Pending is the token of the scheduled selection, 0 when none.
	Pending uint64
	seq     uint64
}

// Env is the context Step needs besides the event itself.
type Env struct {
	Item         timeline.Item // committed item
	PixelsPerDay float64
	Threshold    float64       // DefaultThreshold when <= 0
	ClickDelay   time.Duration // DefaultClickDelay when <= 0
}

func (e Env) threshold() float64 {
	if e.Threshold <= 0 {
		return DefaultThreshold
	}
	return e.Threshold
}

func (e Env) clickDelay() time.Duration {
	if e.ClickDelay <= 0 {
		return DefaultClickDelay
	}
	return e.ClickDelay
}

// Output describes what a transition asks of the outside world.
type Output struct {
	Commit   *timeline.Update
	Select   bool
	Schedule *SelectTimer
	Focus    bool // focus the name editor on the next turn
	Acquire  bool // start receiving pointer motion and release
	Release  bool // stop receiving pointer motion and release
}

// Event is an input to Step.
type Event interface {
	event()
}

// PointerDown is a press on part of the bar.
type PointerDown struct {
	Part   Part
	X      float64
	Scroll float64
}

// PointerMove is pointer motion while a gesture holds the capture.
type PointerMove struct {
	X      float64
	Scroll float64
}

// PointerUp is the release that ends a gesture.
type PointerUp struct {
	X      float64
	Scroll float64
}

// Click follows a press and release on the bar.
type Click struct{}

// DoubleClick is a host-detected double click.
type DoubleClick struct{}

// SelectTimerFired reports that a scheduled selection delay elapsed.
type SelectTimerFired struct {
	Token uint64
}

// BeginEdit enters inline name editing.
type BeginEdit struct{}

// CommitEdit leaves editing, proposing Value as the new name.
type CommitEdit struct {
	Value string
}

// CancelEdit leaves editing without changes.
type CancelEdit struct{}

// CancelGesture drops an in-flight gesture without committing.
type CancelGesture struct{}

// Teardown resets the bar when it goes away.
type Teardown struct{}

func (PointerDown) event()      {}
func (PointerMove) event()      {}
func (PointerUp) event()        {}
func (Click) event()            {}
func (DoubleClick) event()      {}
func (SelectTimerFired) event() {}
func (BeginEdit) event()        {}
func (CommitEdit) event()       {}
func (CancelEdit) event()       {}
func (CancelGesture) event()    {}
func (Teardown) event()         {}

// Step applies one event to s and returns the next state together with the
// effects the transition requests. Step has no side effects.
func Step(s State, ev Event, env Env) (State, Output) {
	var out Output

	switch ev := ev.(type) {
	case PointerDown:
		if s.Mode == Editing {
			return s, out
		}
		s.Session = &Session{
			Kind:         kindFor(ev.Part),
			OriginX:      ev.X,
			OriginScroll: ev.Scroll,
			Start:        env.Item.Start,
			End:          env.Item.End,
		}
		s.Mode = Candidate
		s.Draft = nil
		out.Acquire = true

	case PointerMove:
		if s.Session == nil {
			return s, out
		}
		sess := *s.Session
		if !sess.Activated {
			if math.Abs(sess.Displacement(ev.X, ev.Scroll)) < env.threshold() {
				return s, out
			}
			sess.Activated = true
			s.Pending = 0
		}
		r := sess.RangeAt(ev.X, ev.Scroll, env.PixelsPerDay)
		s.Session = &sess
		s.Mode = Activated
		s.Draft = &r

	case PointerUp:
		if s.Session == nil {
			return s, out
		}
		sess := *s.Session
		if !sess.Activated && math.Abs(sess.Displacement(ev.X, ev.Scroll)) >= env.threshold() {
			// Released far away without any reported motion.
			sess.Activated = true
			s.Pending = 0
		}
		s.Session = nil
		s.Mode = Idle
		out.Release = true
		if !sess.Activated {
			s.Draft = nil
			return s, out
		}

		var final timeline.Range
		if s.Draft != nil {
			final = *s.Draft
		} else {
			final = sess.RangeAt(ev.X, ev.Scroll, env.PixelsPerDay)
		}
		u := timeline.RangeUpdate(env.Item.ID, final)
		out.Commit = &u
		s.Draft = nil
		s.SuppressClick = true

	case Click:
		if s.Mode == Editing || s.Session != nil {
			return s, out
		}
		if s.SuppressClick {
			s.SuppressClick = false
			return s, out
		}
		if s.Pending != 0 {
			return beginEdit(s, out)
		}
		s.seq++
		s.Pending = s.seq
		out.Schedule = &SelectTimer{Token: s.Pending, Delay: env.clickDelay()}

	case DoubleClick, BeginEdit:
		if s.Mode == Editing {
			return s, out
		}
		return beginEdit(s, out)

	case SelectTimerFired:
		if ev.Token == 0 || ev.Token != s.Pending {
			return s, out
		}
		s.Pending = 0
		// A press held past the delay is a new gesture; its own click
		// schedules the selection again.
		if s.Mode != Editing && s.Session == nil {
			out.Select = true
		}

	case CommitEdit:
		if s.Mode != Editing {
			return s, out
		}
		s.Mode = Idle
		name := strings.TrimSpace(ev.Value)
		if name != "" && name != env.Item.Name {
			u := timeline.NameUpdate(env.Item.ID, name)
			out.Commit = &u
		}

	case CancelEdit:
		if s.Mode == Editing {
			s.Mode = Idle
		}

	case CancelGesture:
		if s.Session == nil {
			return s, out
		}
		s.SuppressClick = s.Session.Activated
		s.Session = nil
		s.Draft = nil
		s.Mode = Idle
		out.Release = true

	case Teardown:
		out.Release = s.Session != nil
		s = State{seq: s.seq}
	}

	return s, out
}

func beginEdit(s State, out Output) (State, Output) {
	if s.Session != nil {
		out.Release = true
	}
	s.Session = nil
	s.Draft = nil
	s.Pending = 0
	s.Mode = Editing
	out.Focus = true
	return s, out
}
