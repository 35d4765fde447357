package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Palette indices for canvas cells.
const (
	paintPlain = iota
	paintBar
	paintSelected
	paintDraft
	paintHandle
	paintMeta
	paintRulerLabel
	paintRulerAxis
	paintToday
	paintCount
)

// cell is one terminal column. r == 0 marks the right half of a wide rune.
type cell struct {
	r     rune
	paint int
}

// canvas is a single styled row, written out of order and flattened into
// a string once. Later writes win, so overlapping bars show the last one
// drawn.
type canvas struct {
	cells   []cell
	palette []lipgloss.Style
}

func newCanvas(width int, palette []lipgloss.Style) *canvas {
	c := &canvas{cells: make([]cell, max(width, 0)), palette: palette}
	for i := range c.cells {
		c.cells[i] = cell{r: ' '}
	}
	return c
}

// Width returns the number of columns.
func (c *canvas) Width() int { return len(c.cells) }

// put writes r at column x and returns the columns it occupies. Writes
// outside the canvas are dropped; a wide rune cut by the right edge is
// replaced by a space.
func (c *canvas) put(x int, r rune, paint int) int {
	w := runewidth.RuneWidth(r)
	if w == 0 {
		return 0
	}
	if x < 0 || x >= len(c.cells) {
		return w
	}
	c.clearWide(x)
	if w == 2 && x+1 >= len(c.cells) {
		c.cells[x] = cell{r: ' ', paint: paint}
		return w
	}
	c.cells[x] = cell{r: r, paint: paint}
	if w == 2 {
		c.clearWide(x + 1)
		c.cells[x+1] = cell{r: 0, paint: paint}
	}
	return w
}

// clearWide blanks the other half of a wide rune about to be overwritten.
func (c *canvas) clearWide(x int) {
	if c.cells[x].r == 0 && x > 0 {
		c.cells[x-1].r = ' '
	}
	if x+1 < len(c.cells) && c.cells[x+1].r == 0 {
		c.cells[x+1].r = ' '
	}
}

// text writes s starting at column x and returns the columns used.
func (c *canvas) text(x int, s string, paint int) int {
	start := x
	for _, r := range s {
		x += c.put(x, r, paint)
	}
	return x - start
}

// fill writes n copies of r starting at column x.
func (c *canvas) fill(x, n int, r rune, paint int) {
	for i := 0; i < n; i++ {
		c.put(x+i, r, paint)
	}
}

// String renders the whole row.
func (c *canvas) String() string {
	return c.render(0, len(c.cells))
}

// render flattens columns [from, to) into styled runs.
func (c *canvas) render(from, to int) string {
	from = max(from, 0)
	to = min(to, len(c.cells))
	if from >= to {
		return ""
	}

	var b strings.Builder
	var run strings.Builder
	paint := c.cells[from].paint
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if paint == paintPlain || paint >= len(c.palette) {
			b.WriteString(run.String())
		} else {
			b.WriteString(c.palette[paint].Render(run.String()))
		}
		run.Reset()
	}

	for i := from; i < to; i++ {
		cl := c.cells[i]
		if cl.paint != paint {
			flush()
			paint = cl.paint
		}
		switch {
		case cl.r == 0 && i == from:
			// Left half of this wide rune was cut off.
			run.WriteRune(' ')
		case cl.r == 0:
		default:
			if cl.r != ' ' && runewidth.RuneWidth(cl.r) == 2 && i+1 >= to {
				run.WriteRune(' ')
				continue
			}
			run.WriteRune(cl.r)
		}
	}
	flush()
	return b.String()
}

// palette maps paint indices to the theme.
func (s *Styles) palette() []lipgloss.Style {
	p := make([]lipgloss.Style, paintCount)
	p[paintPlain] = lipgloss.NewStyle()
	p[paintBar] = s.BarStyle
	p[paintSelected] = s.BarSelectedStyle
	p[paintDraft] = s.BarDraftStyle
	p[paintHandle] = s.BarHandleStyle
	p[paintMeta] = s.BarMetaStyle
	p[paintRulerLabel] = s.RulerLabelStyle
	p[paintRulerAxis] = s.RulerAxisStyle
	p[paintToday] = s.TodayStyle
	return p
}

// truncate fits s into width columns with a trailing ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
