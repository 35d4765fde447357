package interact

// Capture routes pointer motion and release to the one controller whose
// gesture is live, wherever the pointer happens to be.
//
// A controller acquires the capture on press and releases it when the
// gesture ends. Acquiring while another controller holds it cancels that
// controller's gesture first, so there is never more than one receiver.
type Capture struct {
	holder *Controller
}

// Holder returns the controller receiving pointer events, or nil.
func (c *Capture) Holder() *Controller {
	return c.holder
}

// Active reports whether a gesture holds the capture.
func (c *Capture) Active() bool {
	return c.holder != nil
}

// Move forwards motion to the holder.
func (c *Capture) Move(ev PointerMove) {
	if h := c.holder; h != nil {
		h.Handle(ev)
	}
}

// Up forwards a release to the holder and returns it, or nil when no
// gesture was live.
func (c *Capture) Up(ev PointerUp) *Controller {
	h := c.holder
	if h == nil {
		return nil
	}
	h.Handle(ev)
	return h
}

// Cancel drops the live gesture, if any, without a commit.
func (c *Capture) Cancel() {
	if h := c.holder; h != nil {
		h.Handle(CancelGesture{})
		c.release(h)
	}
}

func (c *Capture) acquire(ctrl *Controller) {
	if prev := c.holder; prev != nil && prev != ctrl {
		c.holder = nil
		prev.Handle(CancelGesture{})
	}
	c.holder = ctrl
}

func (c *Capture) release(ctrl *Controller) {
	if c.holder == ctrl {
		c.holder = nil
	}
}
