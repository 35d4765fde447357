package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func newTestDetail(t *testing.T) *DetailPanel {
	t.Helper()
	setupTest(t)
	d := NewDetailPanel(createTestStyles(), DefaultInputKeyMap())
	d.Open(item("1", "2024-01-10", "2024-01-14", "Design"), 0)
	return d
}

func typeRunes(d *DetailPanel, s string) {
	d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestDetailPanel_Open(t *testing.T) {
	d := newTestDetail(t)

	if !d.IsOpen() {
		t.Fatal("panel should be open")
	}
	if d.ItemID() != "1" || d.Value() != "Design" {
		t.Errorf("ItemID() = %q, Value() = %q", d.ItemID(), d.Value())
	}
	if d.Pending() != nil {
		t.Error("unmodified panel should have nothing pending")
	}
}

func TestDetailPanel_ConfirmKeepsPanelOpen(t *testing.T) {
	d := newTestDetail(t)
	typeRunes(d, " v2")

	_, u := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if u == nil || u.Name == nil || *u.Name != "Design v2" {
		t.Fatalf("Update(enter) = %+v, want rename to %q", u, "Design v2")
	}
	if u.Range != nil {
		t.Error("rename should not carry a range")
	}
	if !d.IsOpen() {
		t.Error("confirm should keep the panel open")
	}
}

func TestDetailPanel_PendingTrimsAndIgnoresBlank(t *testing.T) {
	d := newTestDetail(t)

	d.input.SetValue("   ")
	if d.Pending() != nil {
		t.Error("blank name should not be pending")
	}

	d.input.SetValue("  Design  ")
	if d.Pending() != nil {
		t.Error("name equal after trimming should not be pending")
	}

	d.input.SetValue("  Draft ")
	u := d.Pending()
	if u == nil || *u.Name != "Draft" {
		t.Errorf("Pending() = %+v, want trimmed rename", u)
	}
}

func TestDetailPanel_EscRevertsThenCloses(t *testing.T) {
	d := newTestDetail(t)
	typeRunes(d, "!")

	d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !d.IsOpen() {
		t.Fatal("first esc should only revert")
	}
	if d.Value() != "Design" {
		t.Errorf("Value() = %q, want reverted name", d.Value())
	}

	d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if d.IsOpen() {
		t.Error("second esc should close the panel")
	}
	if d.Pending() != nil {
		t.Error("closed panel should have nothing pending")
	}
}

func TestDetailPanel_Refresh(t *testing.T) {
	d := newTestDetail(t)

	// Unmodified input follows the committed item.
	d.Refresh(item("1", "2024-01-12", "2024-01-16", "Design v2"), 1)
	if d.Value() != "Design v2" {
		t.Errorf("Value() = %q, want refreshed name", d.Value())
	}

	// Edits in progress are kept.
	typeRunes(d, "!")
	d.Refresh(item("1", "2024-01-12", "2024-01-16", "Other"), 1)
	if d.Value() != "Design v2!" {
		t.Errorf("Value() = %q, want typed text kept", d.Value())
	}
}

func TestDetailPanel_View(t *testing.T) {
	d := newTestDetail(t)
	view := d.View()

	for _, want := range []string{
		"Item 1",
		"[x]",
		"Design",
		"2024-01-10 (Wed)",
		"2024-01-14 (Sun)",
		"Days",
		"5",
		"Lane",
		"[enter] save",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}

	if w := lipgloss.Width(view); w != detailContentWidth+4 {
		t.Errorf("panel width = %d, want %d", w, detailContentWidth+4)
	}
}

func TestDetailPanel_HitTest(t *testing.T) {
	d := newTestDetail(t)

	px, py, w, h := d.Bounds(80, 24)
	if px != (80-w)/2 || py != (24-h)/2 {
		t.Fatalf("Bounds() = (%d, %d, %d, %d), want centered", px, py, w, h)
	}

	tests := []struct {
		name string
		x, y int
		want panelHit
	}{
		{"outside left", px - 1, py + 2, hitOutside},
		{"outside below", px + 2, py + h, hitOutside},
		{"corner", px, py, hitInside},
		{"name row", px + 12, py + 3, hitInside},
		{"close first", px + w - 5, py + 1, hitClose},
		{"close last", px + w - 3, py + 1, hitClose},
		{"right of close", px + w - 2, py + 1, hitInside},
		{"title", px + 3, py + 1, hitInside},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.HitTest(tt.x, tt.y, 80, 24); got != tt.want {
				t.Errorf("HitTest(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}

	// The close label sits where HitTest expects it.
	lines := strings.Split(d.View(), "\n")
	if idx := strings.Index(lines[1], "[x]"); len([]rune(lines[1][:idx])) != w-5 {
		t.Errorf("[x] at column %d, want %d", len([]rune(lines[1][:idx])), w-5)
	}
}

func TestOverlayCenter(t *testing.T) {
	base := strings.Join([]string{
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
	}, "\n")

	got := overlayCenter(base, "AB\nCD", 10, 5)
	want := strings.Join([]string{
		"..........",
		"....AB....",
		"....CD....",
		"..........",
		"..........",
	}, "\n")
	if got != want {
		t.Errorf("overlayCenter() =\n%s\nwant\n%s", got, want)
	}
}

func TestOverlayCenter_ShortBase(t *testing.T) {
	got := overlayCenter("ab", "XY", 6, 3)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[1] != "  XY" {
		t.Errorf("line 1 = %q, want %q", lines[1], "  XY")
	}
	if lines[0] != "ab" {
		t.Errorf("line 0 = %q, want base kept", lines[0])
	}
}
