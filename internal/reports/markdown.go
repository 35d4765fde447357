package reports

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

const humanDate = "Jan 2, 2006"

// FormatMarkdown renders a report as a Markdown document with one table
// per lane.
func FormatMarkdown(report *Report) string {
	var b strings.Builder

	b.WriteString("# Timeline\n\n")
	fmt.Fprintf(&b, "- **Span:** %s to %s (%d days)\n",
		report.Start.Format(humanDate), report.End.Format(humanDate), report.TotalDays)
	fmt.Fprintf(&b, "- **Items:** %d in %d %s\n",
		report.ItemCount, len(report.Lanes), plural(len(report.Lanes), "lane", "lanes"))
	fmt.Fprintf(&b, "- **Minimum gap:** %d %s\n", report.MinGapDays, plural(report.MinGapDays, "day", "days"))

	for _, lane := range report.Lanes {
		fmt.Fprintf(&b, "\n## Lane %d\n\n", lane.Index)
		fmt.Fprintf(&b, "%d busy %s, %.0f%% of the span.\n\n",
			lane.BusyDays, plural(lane.BusyDays, "day", "days"), lane.Utilization*100)
		b.WriteString("| ID | Name | Start | End | Days |\n")
		b.WriteString("|----|------|-------|-----|-----:|\n")
		for _, it := range lane.Items {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %d |\n",
				escapeCell(it.ID), escapeCell(it.Name), it.Start, it.End, it.Range().Days())
		}
	}

	return b.String()
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

var (
	rendererMu sync.Mutex
	// Keyed by style and width. Fixed styles avoid terminal background
	// queries that WithAutoStyle performs.
	renderers = map[string]*glamour.TermRenderer{}
)

// RenderMarkdown renders Markdown for a terminal of the given width using
// a glamour standard style ("dark", "light", "notty", ...). On failure the
// source is returned unchanged.
func RenderMarkdown(md, style string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 20 {
		width = 20
	}
	if style == "" {
		style = "dark"
	}

	key := fmt.Sprintf("%s:%d", style, width)
	rendererMu.Lock()
	r := renderers[key]
	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			rendererMu.Unlock()
			return md
		}
		renderers[key] = rr
		r = rr
	}
	rendererMu.Unlock()

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
