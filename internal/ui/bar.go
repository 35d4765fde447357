package ui

import (
	"math"

	"gantt/internal/interact"
	"gantt/internal/timeline"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// minEditCells is the narrowest inline rename box.
const minEditCells = 14

// ItemBar is one rendered timeline item. It owns the item's interaction
// controller and the inline rename input.
type ItemBar struct {
	ctrl  *interact.Controller
	input textinput.Model
}

func newItemBar(item timeline.Item, opts interact.Options) *ItemBar {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 200

	return &ItemBar{
		ctrl:  interact.NewController(item, opts),
		input: ti,
	}
}

// ID returns the item ID.
func (b *ItemBar) ID() string { return b.ctrl.ID() }

// Item returns the committed item.
func (b *ItemBar) Item() timeline.Item { return b.ctrl.Item() }

// Controller exposes the bar's interaction controller.
func (b *ItemBar) Controller() *interact.Controller { return b.ctrl }

// Cells returns the first column and width of the bar in timeline cells,
// following the live draft while a drag is active.
func (b *ItemBar) Cells() (left, width int) {
	l, w := b.ctrl.Extent()
	return int(math.Floor(l)), max(1, int(math.Round(w)))
}

// PartAt maps a timeline column to the part of the bar under it. Bars
// narrower than three cells have no handles.
func (b *ItemBar) PartAt(col int) (interact.Part, bool) {
	left, width := b.Cells()
	if col < left || col >= left+width {
		return interact.Body, false
	}
	if width >= 3 {
		switch col {
		case left:
			return interact.LeftHandle, true
		case left + width - 1:
			return interact.RightHandle, true
		}
	}
	return interact.Body, true
}

// label is the text shown inside the bar.
func (b *ItemBar) label() string {
	it := b.Item()
	if it.Name != "" {
		return it.Name
	}
	return it.ID
}

// Draw paints the bar onto row, shifted left by offset columns. The date
// range is appended when the bar is at least metaCells wide.
func (b *ItemBar) Draw(row *canvas, offset int, selected bool, metaCells int) {
	left, width := b.Cells()
	x := left - offset

	body := paintBar
	switch {
	case b.ctrl.Mode() == interact.Activated:
		body = paintDraft
	case selected:
		body = paintSelected
	}
	handle := paintHandle
	if body != paintBar {
		handle = body
	}

	switch width {
	case 1:
		row.put(x, '◆', body)
		return
	case 2:
		row.put(x, '[', handle)
		row.put(x+1, ']', handle)
		return
	}

	row.fill(x, width, ' ', body)
	row.put(x, '[', handle)
	row.put(x+width-1, ']', handle)

	inner := width - 2
	used := row.text(x+1, truncate(b.label(), inner), body)
	if metaCells > 0 && width >= metaCells {
		meta := "  " + b.ctrl.Range().String()
		if used+runewidth.StringWidth(meta) <= inner {
			metaPaint := paintMeta
			if body != paintBar {
				metaPaint = body
			}
			row.text(x+1+used, meta, metaPaint)
		}
	}
}

// editWidth is the width of the inline rename box, clamped to limit.
func (b *ItemBar) editWidth(limit int) int {
	_, width := b.Cells()
	return min(max(width, minEditCells), limit)
}

// EditView renders the inline rename box exactly width cells wide.
func (b *ItemBar) EditView(width int, style lipgloss.Style) string {
	if width < 3 {
		return style.Render(truncate(b.input.Value(), width))
	}
	b.input.Width = max(1, width-3)
	field := lipgloss.NewStyle().Width(width - 2).MaxWidth(width - 2).Render(b.input.View())
	return style.Render("[" + field + "]")
}
