// Package ui provides the terminal interface for gantt.
// This file defines the messages commands deliver back to the event loop.
package ui

import "time"

// tickMsg is sent periodically for status expiry and the clock.
type tickMsg time.Time

// selectTimerMsg is delivered when a bar's click delay has elapsed. The
// token identifies the click that scheduled it; stale tokens are ignored
// by the bar's controller.
type selectTimerMsg struct {
	itemID string
	token  uint64
}

// editFocusMsg asks the app to focus the inline rename input of a bar.
// Focus is deferred to a command so the bar is rendered in edit mode
// before it grabs the cursor.
type editFocusMsg struct {
	itemID string
}
