package ui

import (
	"gantt/internal/timeline"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// rulerDateLayout is the label format of ruler ticks.
const rulerDateLayout = "Jan 2, 2006"

// renderRuler draws the tick labels and the axis for the visible columns
// [offset, offset+width). Labels that would run into the previous one are
// skipped. today is marked on the axis when it falls inside span.
func renderRuler(scale timeline.Scale, span timeline.Span, tickCells int, today timeline.Date,
	offset, width int, palette []lipgloss.Style) (labels, axis string) {
	top := newCanvas(width, palette)
	bottom := newCanvas(width, palette)

	bottom.fill(-offset, int(scale.Width(span)), '─', paintRulerAxis)

	nextFree := -1 << 30
	for _, tick := range scale.Ticks(span, float64(tickCells)) {
		x := int(tick.X) - offset
		if x >= width {
			break
		}
		bottom.put(x, '┬', paintRulerAxis)

		label := tick.Date.Format(rulerDateLayout)
		if x < nextFree || x+runewidth.StringWidth(label) <= 0 {
			continue
		}
		nextFree = x + top.text(x, label, paintRulerLabel) + 1
	}

	if !today.Before(span.Left) && !today.After(span.Right) {
		bottom.put(int(scale.DateToX(today))-offset, '┃', paintToday)
	}

	return top.String(), bottom.String()
}
