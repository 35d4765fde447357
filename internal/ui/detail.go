package ui

import (
	"fmt"
	"strings"

	"gantt/internal/timeline"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// detailContentWidth is the text width inside the panel border and padding.
const detailContentWidth = 40

const detailDateLayout = "2006-01-02 (Mon)"

// panelHit classifies a press against the open panel.
type panelHit int

const (
	hitOutside panelHit = iota
	hitInside
	hitClose
)

// DetailPanel is the modal shown for a selected item: an editable name,
// the date range and the item's lane.
type DetailPanel struct {
	open   bool
	item   timeline.Item
	lane   int
	input  textinput.Model
	styles *Styles
	keys   InputKeyMap
}

// NewDetailPanel creates a closed panel.
func NewDetailPanel(styles *Styles, keys InputKeyMap) *DetailPanel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 200
	ti.Width = detailContentWidth - 10

	return &DetailPanel{
		input:  ti,
		styles: styles,
		keys:   keys,
	}
}

// Open shows item and focuses the name input.
func (d *DetailPanel) Open(item timeline.Item, lane int) tea.Cmd {
	d.open = true
	d.item = item
	d.lane = lane
	d.input.SetValue(item.Name)
	d.input.CursorEnd()
	d.input.Focus()
	return textinput.Blink
}

// Close hides the panel without committing.
func (d *DetailPanel) Close() {
	d.open = false
	d.input.Blur()
}

// IsOpen reports whether the panel is shown.
func (d *DetailPanel) IsOpen() bool { return d.open }

// ItemID returns the ID of the shown item.
func (d *DetailPanel) ItemID() string { return d.item.ID }

// Value returns the current name input.
func (d *DetailPanel) Value() string { return d.input.Value() }

// Refresh rebinds the panel to the latest committed item. An unmodified
// name input follows the new name; edits in progress are kept.
func (d *DetailPanel) Refresh(item timeline.Item, lane int) {
	if d.input.Value() == d.item.Name {
		d.input.SetValue(item.Name)
		d.input.CursorEnd()
	}
	d.item = item
	d.lane = lane
}

// Pending returns the rename the input holds, or nil when the trimmed
// value is empty or unchanged.
func (d *DetailPanel) Pending() *timeline.Update {
	if !d.open {
		return nil
	}
	name := strings.TrimSpace(d.input.Value())
	if name == "" || name == d.item.Name {
		return nil
	}
	u := timeline.NameUpdate(d.item.ID, name)
	return &u
}

// Update handles keys while the panel is open. Confirm returns the pending
// rename and keeps the panel open. Cancel reverts a modified name, or
// closes the panel when there is nothing to revert.
func (d *DetailPanel) Update(msg tea.KeyMsg) (tea.Cmd, *timeline.Update) {
	switch {
	case key.Matches(msg, d.keys.Confirm):
		return nil, d.Pending()
	case key.Matches(msg, d.keys.Cancel):
		if d.input.Value() != d.item.Name {
			d.input.SetValue(d.item.Name)
			d.input.CursorEnd()
			return nil, nil
		}
		d.Close()
		return nil, nil
	}

	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return cmd, nil
}

// View renders the bordered panel.
func (d *DetailPanel) View() string {
	s := d.styles
	closeLabel := "[x]"

	title := truncate("Item "+d.item.ID, detailContentWidth-len(closeLabel)-1)
	gap := detailContentWidth - lipgloss.Width(title) - len(closeLabel)
	header := s.PanelTitleStyle.Render(title) + strings.Repeat(" ", max(gap, 1)) + s.PanelCloseStyle.Render(closeLabel)

	r := d.item.Range()
	row := func(label, value string) string {
		return s.PanelLabelStyle.Render(label) + value
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString(row("Name", d.input.View()))
	b.WriteString("\n")
	b.WriteString(row("Start", r.Start.Format(detailDateLayout)))
	b.WriteString("\n")
	b.WriteString(row("End", r.End.Format(detailDateLayout)))
	b.WriteString("\n")
	b.WriteString(row("Days", fmt.Sprintf("%d", r.Days())))
	b.WriteString("\n")
	b.WriteString(row("Lane", fmt.Sprintf("%d", d.lane+1)))
	b.WriteString("\n\n")
	b.WriteString(s.RenderHelp("enter", "save", "esc", "revert/close"))

	return s.PanelStyle.Width(detailContentWidth + 2).Render(b.String())
}

// Bounds returns the panel's position and size when centered on a
// width x height screen.
func (d *DetailPanel) Bounds(width, height int) (x, y, w, h int) {
	box := d.View()
	w, h = lipgloss.Width(box), lipgloss.Height(box)
	return max(0, (width-w)/2), max(0, (height-h)/2), w, h
}

// HitTest classifies a press at screen position (x, y).
func (d *DetailPanel) HitTest(x, y, width, height int) panelHit {
	px, py, w, h := d.Bounds(width, height)
	rx, ry := x-px, y-py
	if rx < 0 || ry < 0 || rx >= w || ry >= h {
		return hitOutside
	}
	// Border and left padding put the header on row 1; "[x]" ends before
	// the right padding and border.
	if ry == 1 && rx >= w-5 && rx < w-2 {
		return hitClose
	}
	return hitInside
}

// overlayCenter draws modal over the middle of base, keeping the rest of
// base visible around it.
func overlayCenter(base, modal string, width, height int) string {
	baseLines := strings.Split(base, "\n")
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}
	modalLines := strings.Split(modal, "\n")

	modalW := 0
	for _, ml := range modalLines {
		modalW = max(modalW, ansi.StringWidth(ml))
	}
	top := max(0, (height-len(modalLines))/2)
	left := max(0, (width-modalW)/2)

	for i, ml := range modalLines {
		row := top + i
		if row >= len(baseLines) {
			break
		}
		line := baseLines[row]
		prefix := ansi.Cut(line, 0, left)
		if pad := left - ansi.StringWidth(prefix); pad > 0 {
			prefix += strings.Repeat(" ", pad)
		}
		mw := ansi.StringWidth(ml)
		if mw < modalW {
			ml += strings.Repeat(" ", modalW-mw)
		}
		suffix := ""
		if ansi.StringWidth(line) > left+modalW {
			suffix = ansi.Cut(line, left+modalW, ansi.StringWidth(line))
		}
		baseLines[row] = prefix + ml + suffix
	}
	return strings.Join(baseLines, "\n")
}
