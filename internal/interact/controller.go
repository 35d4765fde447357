package interact

import (
	"math"
	"time"

	"gantt/internal/timeline"
)

// Options binds a Controller to its host.
type Options struct {
	PixelsPerDay float64
	DateToX      func(timeline.Date) float64
	Threshold    float64
	ClickDelay   time.Duration

	// OnUpdate receives committed partial updates. Nil discards them.
	OnUpdate func(timeline.Update)
	// OnSelect receives the item after a qualifying click. Nil discards it.
	OnSelect func(timeline.Item)

	// Capture is shared by all bars of a view. Nil disables capture
	// coordination.
	Capture *Capture
}

// Effects are deferred work the host must schedule.
type Effects struct {
	Schedule *SelectTimer
	Focus    bool
}

// Controller drives one bar. It is not safe for concurrent use; all calls
// are expected from the host's event loop.
type Controller struct {
	item   timeline.Item
	opts   Options
	state  State
	closed bool
}

// NewController returns an idle controller for item.
func NewController(item timeline.Item, opts Options) *Controller {
	return &Controller{item: item, opts: opts}
}

// ID returns the bound item's ID.
func (c *Controller) ID() string { return c.item.ID }

// Item returns the committed item the controller is bound to.
func (c *Controller) Item() timeline.Item { return c.item }

// SetItem rebinds the controller to the latest committed item. An
// in-flight gesture keeps the range it captured at press time.
func (c *Controller) SetItem(item timeline.Item) {
	c.item = item
}

// SetScale updates the zoom level and the date-to-offset mapping.
func (c *Controller) SetScale(pixelsPerDay float64, dateToX func(timeline.Date) float64) {
	c.opts.PixelsPerDay = pixelsPerDay
	c.opts.DateToX = dateToX
}

// State returns a snapshot of the gesture state.
func (c *Controller) State() State { return c.state }

// Mode returns the current mode.
func (c *Controller) Mode() Mode { return c.state.Mode }

// Editing reports whether the bar is in inline edit mode.
func (c *Controller) Editing() bool { return c.state.Mode == Editing }

// Draft returns the live range of an active drag.
func (c *Controller) Draft() (timeline.Range, bool) {
	if c.state.Draft == nil {
		return timeline.Range{}, false
	}
	return *c.state.Draft, true
}

// Range returns the range to display: the draft while dragging, otherwise
// the committed range.
func (c *Controller) Range() timeline.Range {
	if r, ok := c.Draft(); ok {
		return r
	}
	return c.item.Range()
}

// Extent returns the bar's left offset and width for the displayed range.
func (c *Controller) Extent() (left, width float64) {
	ppd := c.opts.PixelsPerDay
	r := c.Range()
	if c.opts.DateToX == nil {
		return 0, math.Max(ppd, float64(r.Days())*ppd)
	}
	left = c.opts.DateToX(r.Start)
	right := c.opts.DateToX(r.End) + ppd
	return left, math.Max(ppd, right-left)
}

// Handle feeds one event through the state machine, delivers callbacks and
// returns the effects the host has to schedule.
func (c *Controller) Handle(ev Event) Effects {
	if c.closed {
		return Effects{}
	}

	next, out := Step(c.state, ev, c.env())
	c.state = next

	if capture := c.opts.Capture; capture != nil {
		if out.Release {
			capture.release(c)
		}
		if out.Acquire {
			capture.acquire(c)
		}
	}
	if out.Commit != nil && c.opts.OnUpdate != nil {
		c.opts.OnUpdate(*out.Commit)
	}
	if out.Select && c.opts.OnSelect != nil {
		c.opts.OnSelect(c.item)
	}

	return Effects{Schedule: out.Schedule, Focus: out.Focus}
}

// Close tears the controller down: an in-flight gesture is dropped without
// a commit, capture is released and any pending selection is cancelled.
// Further events are ignored.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.Handle(Teardown{})
	if c.opts.Capture != nil {
		c.opts.Capture.release(c)
	}
	c.closed = true
}

func (c *Controller) env() Env {
	return Env{
		Item:         c.item,
		PixelsPerDay: c.opts.PixelsPerDay,
		Threshold:    c.opts.Threshold,
		ClickDelay:   c.opts.ClickDelay,
	}
}
