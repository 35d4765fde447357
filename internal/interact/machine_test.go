package interact

import (
	"testing"

	"gantt/internal/timeline"
)

func testEnv() Env {
	return Env{
		Item: timeline.Item{
			ID:    "A",
			Start: timeline.MustParseDate("2024-01-10"),
			End:   timeline.MustParseDate("2024-01-14"),
			Name:  "Design",
		},
		PixelsPerDay: 10,
	}
}

// run feeds events through Step and collects every output.
func run(env Env, events ...Event) (State, []Output) {
	var s State
	outs := make([]Output, 0, len(events))
	for _, ev := range events {
		var out Output
		s, out = Step(s, ev, env)
		outs = append(outs, out)
	}
	return s, outs
}

func commits(outs []Output) []timeline.Update {
	var us []timeline.Update
	for _, o := range outs {
		if o.Commit != nil {
			us = append(us, *o.Commit)
		}
	}
	return us
}

// TestStep_DragKinds verifies each gesture kind maps displacement to days.
func TestStep_DragKinds(t *testing.T) {
	tests := []struct {
		name      string
		part      Part
		dx        float64
		wantStart string
		wantEnd   string
	}{
		{"move right", Body, 20, "2024-01-12", "2024-01-16"},
		{"move left", Body, -30, "2024-01-07", "2024-01-11"},
		{"resize right", RightHandle, 30, "2024-01-10", "2024-01-17"},
		{"resize left", LeftHandle, -20, "2024-01-08", "2024-01-14"},
		{"resize left past end swaps", LeftHandle, 70, "2024-01-14", "2024-01-17"},
		{"resize right before start swaps", RightHandle, -60, "2024-01-08", "2024-01-10"},
		{"rounds to nearest day", Body, 14, "2024-01-11", "2024-01-15"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, outs := run(testEnv(),
				PointerDown{Part: tc.part, X: 100},
				PointerMove{X: 100 + tc.dx/2},
				PointerMove{X: 100 + tc.dx},
				PointerUp{X: 100 + tc.dx},
			)
			us := commits(outs)
			if len(us) != 1 {
				t.Fatalf("commits = %d, want 1", len(us))
			}
			u := us[0]
			if u.ID != "A" || u.Range == nil || u.Name != nil {
				t.Fatalf("commit = %v, want range-only update for A", u)
			}
			if u.Range.Start.String() != tc.wantStart || u.Range.End.String() != tc.wantEnd {
				t.Errorf("commit range = %s, want %s → %s", u.Range, tc.wantStart, tc.wantEnd)
			}
		})
	}
}

// TestStep_BelowThreshold verifies small wiggles never commit.
func TestStep_BelowThreshold(t *testing.T) {
	s, outs := run(testEnv(),
		PointerDown{Part: Body, X: 50},
		PointerMove{X: 51},
		PointerMove{X: 53},
		PointerMove{X: 47},
		PointerUp{X: 53},
	)
	if us := commits(outs); len(us) != 0 {
		t.Errorf("commits = %v, want none", us)
	}
	if s.Mode != Idle || s.Draft != nil || s.SuppressClick {
		t.Errorf("state after release = %+v, want idle without suppression", s)
	}
	if !outs[0].Acquire || !outs[len(outs)-1].Release {
		t.Error("gesture should acquire on press and release on up")
	}
}

// TestStep_ActivatesAtThreshold verifies a displacement of exactly the
// threshold starts the drag.
func TestStep_ActivatesAtThreshold(t *testing.T) {
	s, _ := run(testEnv(),
		PointerDown{Part: Body, X: 50},
		PointerMove{X: 54},
	)
	if s.Mode != Activated {
		t.Fatalf("Mode = %s, want activated", s.Mode)
	}
	if s.Draft == nil {
		t.Fatal("activation should compute a draft")
	}
	// 4 cells at 10 per day rounds to zero days.
	if s.Draft.Start.String() != "2024-01-10" {
		t.Errorf("draft = %s, want unchanged start", s.Draft)
	}
}

// TestStep_OneCommitPerGesture verifies many moves yield a single commit
// carrying the last draft.
func TestStep_OneCommitPerGesture(t *testing.T) {
	events := []Event{PointerDown{Part: RightHandle, X: 0}}
	for x := 1.0; x <= 50; x++ {
		events = append(events, PointerMove{X: x})
	}
	events = append(events, PointerUp{X: 50})

	_, outs := run(testEnv(), events...)
	us := commits(outs)
	if len(us) != 1 {
		t.Fatalf("commits = %d, want 1", len(us))
	}
	if got := us[0].Range.End.String(); got != "2024-01-19" {
		t.Errorf("end = %s, want 2024-01-19", got)
	}
}

// TestStep_DraftNeverInverted verifies every intermediate draft is normalized.
func TestStep_DraftNeverInverted(t *testing.T) {
	env := testEnv()
	s, _ := run(env, PointerDown{Part: LeftHandle, X: 0})
	for x := -100.0; x <= 200; x += 7 {
		var out Output
		s, out = Step(s, PointerMove{X: x}, env)
		if out.Commit != nil {
			t.Fatalf("move at %v committed", x)
		}
		if s.Draft != nil && s.Draft.End.Before(s.Draft.Start) {
			t.Fatalf("draft at %v inverted: %s", x, s.Draft)
		}
	}
}

// TestStep_ScrollCompensation verifies scrolling during a drag counts as
// displacement.
func TestStep_ScrollCompensation(t *testing.T) {
	_, outs := run(testEnv(),
		PointerDown{Part: Body, X: 40, Scroll: 0},
		PointerMove{X: 40, Scroll: 30},
		PointerUp{X: 40, Scroll: 30},
	)
	us := commits(outs)
	if len(us) != 1 {
		t.Fatalf("commits = %d, want 1", len(us))
	}
	if got := us[0].Range.Start.String(); got != "2024-01-13" {
		t.Errorf("start = %s, want 2024-01-13", got)
	}
}

// TestStep_ReleaseWithoutMotion verifies a far release with no reported
// motion still commits once, from the release position.
func TestStep_ReleaseWithoutMotion(t *testing.T) {
	s, outs := run(testEnv(),
		PointerDown{Part: RightHandle, X: 0},
		PointerUp{X: 30},
	)
	us := commits(outs)
	if len(us) != 1 {
		t.Fatalf("commits = %d, want 1", len(us))
	}
	if got := us[0].Range.End.String(); got != "2024-01-17" {
		t.Errorf("end = %s, want 2024-01-17", got)
	}
	if !s.SuppressClick {
		t.Error("click after a drag should be suppressed")
	}
}

// TestStep_ClickSuppressedAfterDrag verifies exactly one click is swallowed.
func TestStep_ClickSuppressedAfterDrag(t *testing.T) {
	s, outs := run(testEnv(),
		PointerDown{Part: Body, X: 0},
		PointerMove{X: 20},
		PointerUp{X: 20},
		Click{},
	)
	if outs[3].Schedule != nil {
		t.Error("click after drag scheduled a selection")
	}
	if s.SuppressClick {
		t.Error("suppression should be consumed by the first click")
	}

	_, out := Step(s, Click{}, testEnv())
	if out.Schedule == nil {
		t.Error("second click should schedule a selection")
	}
}

// TestStep_SelectDebounce verifies a click selects only after its timer
// fires and stale timers are ignored.
func TestStep_SelectDebounce(t *testing.T) {
	env := testEnv()
	s, outs := run(env, Click{})
	sched := outs[0].Schedule
	if sched == nil {
		t.Fatal("click did not schedule a selection")
	}
	if sched.Delay != DefaultClickDelay {
		t.Errorf("delay = %v, want %v", sched.Delay, DefaultClickDelay)
	}
	if outs[0].Select {
		t.Error("click selected immediately")
	}

	if _, out := Step(s, SelectTimerFired{Token: sched.Token + 1}, env); out.Select {
		t.Error("stale token selected")
	}

	s, out := Step(s, SelectTimerFired{Token: sched.Token}, env)
	if !out.Select {
		t.Error("matching token did not select")
	}
	if _, out := Step(s, SelectTimerFired{Token: sched.Token}, env); out.Select {
		t.Error("timer selected twice")
	}
}

// TestStep_CustomClickDelay verifies the configured delay is used.
func TestStep_CustomClickDelay(t *testing.T) {
	env := testEnv()
	env.ClickDelay = 400e6
	_, out := Step(State{}, Click{}, env)
	if out.Schedule == nil || out.Schedule.Delay != env.ClickDelay {
		t.Errorf("schedule = %+v, want delay %v", out.Schedule, env.ClickDelay)
	}
}

// TestStep_DoubleClickEdits verifies a second click inside the delay enters
// edit mode and cancels the selection.
func TestStep_DoubleClickEdits(t *testing.T) {
	env := testEnv()
	s, outs := run(env,
		PointerDown{Part: Body, X: 10},
		PointerUp{X: 10},
		Click{},
		PointerDown{Part: Body, X: 10},
		PointerUp{X: 10},
		Click{},
	)
	token := outs[2].Schedule.Token
	if s.Mode != Editing {
		t.Fatalf("Mode = %s, want editing", s.Mode)
	}
	if !outs[5].Focus {
		t.Error("double click should request focus")
	}
	if _, out := Step(s, SelectTimerFired{Token: token}, env); out.Select {
		t.Error("cancelled selection still fired")
	}
}

// TestStep_DoubleClickEvent verifies a host-detected double click cancels
// a pending selection.
func TestStep_DoubleClickEvent(t *testing.T) {
	env := testEnv()
	s, outs := run(env, Click{}, DoubleClick{})
	if s.Mode != Editing || s.Pending != 0 {
		t.Errorf("state = %+v, want editing without pending selection", s)
	}
	if !outs[1].Focus {
		t.Error("double click should request focus")
	}
}

// TestStep_Edit covers commit, trimming, no-op and cancel.
func TestStep_Edit(t *testing.T) {
	tests := []struct {
		name     string
		final    Event
		wantName string
		wantNone bool
	}{
		{"commit trims", CommitEdit{Value: "  Build  "}, "Build", false},
		{"empty is ignored", CommitEdit{Value: "   "}, "", true},
		{"unchanged is ignored", CommitEdit{Value: "Design"}, "", true},
		{"unchanged after trim is ignored", CommitEdit{Value: " Design "}, "", true},
		{"escape cancels", CancelEdit{}, "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, outs := run(testEnv(), BeginEdit{}, tc.final)
			if s.Mode != Idle {
				t.Errorf("Mode = %s, want idle", s.Mode)
			}
			us := commits(outs)
			if tc.wantNone {
				if len(us) != 0 {
					t.Errorf("commits = %v, want none", us)
				}
				return
			}
			if len(us) != 1 || us[0].Name == nil || us[0].Range != nil {
				t.Fatalf("commits = %v, want one name update", us)
			}
			if *us[0].Name != tc.wantName {
				t.Errorf("name = %q, want %q", *us[0].Name, tc.wantName)
			}
		})
	}
}

// TestStep_EditingIgnoresPointer verifies presses and clicks do nothing
// while editing.
func TestStep_EditingIgnoresPointer(t *testing.T) {
	s, outs := run(testEnv(),
		BeginEdit{},
		PointerDown{Part: Body, X: 0},
		PointerMove{X: 50},
		PointerUp{X: 50},
		Click{},
	)
	if s.Mode != Editing {
		t.Errorf("Mode = %s, want editing", s.Mode)
	}
	for i, o := range outs[1:] {
		if o.Commit != nil || o.Acquire || o.Schedule != nil {
			t.Errorf("event %d produced %+v while editing", i+1, o)
		}
	}
}

// TestStep_Teardown verifies teardown during a gesture commits nothing and
// cancels the pending selection.
func TestStep_Teardown(t *testing.T) {
	env := testEnv()
	s, _ := run(env, Click{}, PointerDown{Part: Body, X: 0})
	pending := s.Pending
	if pending == 0 {
		t.Fatal("click did not leave a pending selection")
	}
	s, _ = Step(s, PointerMove{X: 2}, env)

	s, out := Step(s, Teardown{}, env)
	if out.Commit != nil {
		t.Error("teardown committed")
	}
	if !out.Release {
		t.Error("teardown during a gesture should release capture")
	}
	if s.Mode != Idle || s.Session != nil || s.Draft != nil {
		t.Errorf("state = %+v, want idle", s)
	}
	if _, out := Step(s, SelectTimerFired{Token: pending}, env); out.Select {
		t.Error("selection fired after teardown")
	}
	if _, out := Step(s, PointerUp{X: 40}, env); out.Commit != nil {
		t.Error("release after teardown committed")
	}
}

// TestStep_CancelGestureSwallowsClick verifies a canceled drag still
// swallows the click of its release, and an unactivated one does not.
func TestStep_CancelGestureSwallowsClick(t *testing.T) {
	env := testEnv()

	s, outs := run(env,
		PointerDown{Part: Body, X: 0},
		PointerMove{X: 40},
		CancelGesture{},
		PointerUp{X: 40},
		Click{},
	)
	if len(commits(outs)) != 0 {
		t.Errorf("commits = %v, want none", commits(outs))
	}
	if outs[4].Schedule != nil || s.Pending != 0 {
		t.Error("click after a canceled drag scheduled a selection")
	}
	if s.SuppressClick {
		t.Error("suppression should be consumed by one click")
	}

	s, outs = run(env,
		PointerDown{Part: Body, X: 0},
		PointerMove{X: 2},
		CancelGesture{},
		Click{},
	)
	if outs[3].Schedule == nil || s.Pending == 0 {
		t.Error("click after an unactivated cancel should schedule a selection")
	}
}

// TestStep_SelectTimerDuringPress verifies a selection timer that fires
// while a press is held does not select; the release click re-arms it.
func TestStep_SelectTimerDuringPress(t *testing.T) {
	env := testEnv()

	s, outs := run(env, Click{}, PointerDown{Part: Body, X: 0})
	token := outs[0].Schedule.Token

	s, out := Step(s, SelectTimerFired{Token: token}, env)
	if out.Select {
		t.Error("timer selected during a live press")
	}

	s, _ = Step(s, PointerUp{X: 1}, env)
	s, out = Step(s, Click{}, env)
	if s.Mode == Editing || out.Focus {
		t.Error("slow second click should not begin editing")
	}
	if out.Schedule == nil {
		t.Fatal("release click should schedule a selection")
	}
	if _, out := Step(s, SelectTimerFired{Token: out.Schedule.Token}, env); !out.Select {
		t.Error("re-armed timer did not select")
	}
}

// TestStep_DoesNotMutateInput verifies Step treats state as a value.
func TestStep_DoesNotMutateInput(t *testing.T) {
	env := testEnv()
	s, _ := run(env, PointerDown{Part: Body, X: 0})
	before := *s.Session

	Step(s, PointerMove{X: 40}, env)
	Step(s, PointerUp{X: 40}, env)

	if *s.Session != before {
		t.Errorf("session mutated: %+v, want %+v", *s.Session, before)
	}
}

// TestDayDelta verifies rounding and a zero scale.
func TestDayDelta(t *testing.T) {
	tests := []struct {
		delta, ppd float64
		want       int
	}{
		{0, 6, 0},
		{6, 6, 1},
		{8, 6, 1},
		{9, 6, 2},
		{-9, 6, -2},
		{50, 0, 0},
	}
	for _, tc := range tests {
		if got := DayDelta(tc.delta, tc.ppd); got != tc.want {
			t.Errorf("DayDelta(%v, %v) = %d, want %d", tc.delta, tc.ppd, got, tc.want)
		}
	}
}
