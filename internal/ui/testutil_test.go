package ui

import (
	"testing"
	"time"

	"gantt/internal/config"
	"gantt/internal/store"
	"gantt/internal/timeline"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// setupTest prepares the test environment for deterministic rendering.
func setupTest(t *testing.T) {
	t.Helper()
	// Use ASCII profile to disable all color codes in output
	lipgloss.SetColorProfile(termenv.Ascii)
}

// createTestStyles creates a default Styles instance for testing.
func createTestStyles() *Styles {
	return NewStylesFromTheme(&config.ThemeConfig{})
}

func item(id, start, end, name string) timeline.Item {
	return timeline.Item{
		ID:    id,
		Start: timeline.MustParseDate(start),
		End:   timeline.MustParseDate(end),
		Name:  name,
	}
}

// testItems pack into two lanes with a zero gap: [1 3] and [2].
func testItems() []timeline.Item {
	return []timeline.Item{
		item("1", "2024-01-10", "2024-01-14", "Design"),
		item("2", "2024-01-12", "2024-01-20", "Build"),
		item("3", "2024-01-25", "2024-01-26", "Ship"),
	}
}

var testNow = time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

// createTestApp returns an 80x20 app at 4 cells per day with two days of
// padding. The span starts on 2024-01-08, so on screen:
//
//	row 3: lane 1, Design in columns 13-32, Ship from column 73
//	row 4: lane 2, Build in columns 21-56
func createTestApp(t *testing.T) (*App, *store.Store) {
	t.Helper()
	setupTest(t)

	st, err := store.New(testItems())
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}

	gap := 0
	cfg := &AppConfig{
		Title: "plan.json",
		Keys:  &config.KeysConfig{},
		View: config.ViewConfig{
			CellsPerDay:    4,
			MinCellsPerDay: 1,
			MaxCellsPerDay: 20,
			PadDays:        2,
			TickCells:      16,
			LabelCells:     12,
			MinGapDays:     &gap,
			MetaCells:      40,
		},
		Interaction: config.InteractionConfig{DragThreshold: 4, ClickDelayMS: 250},
	}

	app := NewApp(st, createTestStyles(), cfg)
	app.SetNowFunc(func() time.Time { return testNow })
	app.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	return app, st
}

func mustGet(t *testing.T, st *store.Store, id string) timeline.Item {
	t.Helper()
	it, ok := st.Get(id)
	if !ok {
		t.Fatalf("item %s missing", id)
	}
	return it
}

func press(a *App, x, y int) tea.Cmd {
	_, cmd := a.Update(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	return cmd
}

func motion(a *App, x, y int) {
	a.Update(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
}

func release(a *App, x, y int) tea.Cmd {
	_, cmd := a.Update(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	return cmd
}

func click(a *App, x, y int) tea.Cmd {
	press(a, x, y)
	return release(a, x, y)
}

// sendKey delivers a key by name; anything not listed is typed as runes.
func sendKey(a *App, k string) tea.Cmd {
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		msg = tea.KeyMsg{Type: tea.KeyShiftTab}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	_, cmd := a.Update(msg)
	return cmd
}

// fireSelect delivers the pending select timer of a bar.
func fireSelect(t *testing.T, a *App, id string) {
	t.Helper()
	bar := a.bars[id]
	if bar == nil {
		t.Fatalf("no bar for %s", id)
	}
	token := bar.ctrl.State().Pending
	if token == 0 {
		t.Fatalf("bar %s has no pending selection", id)
	}
	a.Update(selectTimerMsg{itemID: id, token: token})
}
