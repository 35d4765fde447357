package reports

import (
	"fmt"
	"strings"

	"gantt/internal/timeline"

	"github.com/mattn/go-runewidth"
)

// SVGOptions controls chart geometry and colors.
type SVGOptions struct {
	DayWidth   int // pixels per day
	LaneHeight int
	BarHeight  int
	Margin     int
	TickPixels int // approximate spacing between ruler labels
	FontFamily string
	FontSize   int
	Background string
	Bar        string
	BarText    string
	Grid       string
	Text       string
}

// DefaultSVGOptions returns the default chart style.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		DayWidth:   12,
		LaneHeight: 28,
		BarHeight:  20,
		Margin:     20,
		TickPixels: 100,
		FontFamily: "Helvetica, Arial, sans-serif",
		FontSize:   11,
		Background: "#ffffff",
		Bar:        "#7D56F4",
		BarText:    "#ffffff",
		Grid:       "#dddddd",
		Text:       "#333333",
	}
}

func (o SVGOptions) withDefaults() SVGOptions {
	d := DefaultSVGOptions()
	if o.DayWidth <= 0 {
		o.DayWidth = d.DayWidth
	}
	if o.LaneHeight <= 0 {
		o.LaneHeight = d.LaneHeight
	}
	if o.BarHeight <= 0 || o.BarHeight > o.LaneHeight {
		o.BarHeight = o.LaneHeight * 5 / 7
	}
	if o.Margin < 0 {
		o.Margin = d.Margin
	}
	if o.TickPixels <= 0 {
		o.TickPixels = d.TickPixels
	}
	if o.FontFamily == "" {
		o.FontFamily = d.FontFamily
	}
	if o.FontSize <= 0 {
		o.FontSize = d.FontSize
	}
	for _, c := range []struct{ dst *string; def string }{
		{&o.Background, d.Background},
		{&o.Bar, d.Bar},
		{&o.BarText, d.BarText},
		{&o.Grid, d.Grid},
		{&o.Text, d.Text},
	} {
		if *c.dst == "" {
			*c.dst = c.def
		}
	}
	return o
}

// FormatSVG draws the report as a Gantt chart: a date ruler on top and one
// row of bars per lane.
func FormatSVG(report *Report, opts SVGOptions) string {
	opts = opts.withDefaults()

	rulerHeight := opts.FontSize*2 + 6
	chartTop := opts.Margin + rulerHeight
	width := opts.Margin*2 + report.TotalDays*opts.DayWidth
	height := chartTop + len(report.Lanes)*opts.LaneHeight + opts.Margin
	scale := timeline.Scale{Origin: report.Start, PixelsPerDay: float64(opts.DayWidth)}
	span := timeline.Span{Left: report.Start, Right: report.End}

	var svg strings.Builder
	fmt.Fprintf(&svg, `<?xml version="1.0" encoding="UTF-8"?>
<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">
<rect width="100%%" height="100%%" fill="%s"/>
<defs>
<style>
.tick { font-family: %s; font-size: %dpx; fill: %s; }
.bar-label { font-family: %s; font-size: %dpx; fill: %s; }
</style>
</defs>
`, width, height, opts.Background,
		opts.FontFamily, opts.FontSize, opts.Text,
		opts.FontFamily, opts.FontSize, opts.BarText)

	for _, tick := range scale.Ticks(span, float64(opts.TickPixels)) {
		x := opts.Margin + int(tick.X)
		fmt.Fprintf(&svg, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="1"/>
`, x, chartTop-4, x, height-opts.Margin, opts.Grid)
		fmt.Fprintf(&svg, `<text class="tick" x="%d" y="%d">%s</text>
`, x+2, opts.Margin+opts.FontSize, escapeXML(tick.Date.Format(humanDate)))
	}

	pad := (opts.LaneHeight - opts.BarHeight) / 2
	for row, lane := range report.Lanes {
		y := chartTop + row*opts.LaneHeight + pad
		for _, it := range lane.Items {
			left, w := scale.BarExtent(it.Range())
			x := opts.Margin + int(left)
			fmt.Fprintf(&svg, `<g><title>%s</title>
<rect x="%d" y="%d" width="%d" height="%d" rx="3" fill="%s"/>
`, escapeXML(fmt.Sprintf("%s: %s", it.Name, it.Range())), x, y, int(w), opts.BarHeight, opts.Bar)
			if label := fitLabel(it.Name, int(w)-6, opts.FontSize); label != "" {
				fmt.Fprintf(&svg, `<text class="bar-label" x="%d" y="%d">%s</text>
`, x+3, y+opts.BarHeight/2+opts.FontSize/2-1, escapeXML(label))
			}
			svg.WriteString("</g>\n")
		}
	}

	svg.WriteString("</svg>\n")
	return svg.String()
}

// fitLabel truncates text to the estimated pixel width. A cell averages
// 0.6 of the font size; wide runes take two.
func fitLabel(text string, width, fontSize int) string {
	if width <= 0 || fontSize <= 0 {
		return ""
	}
	maxCells := int(float64(width) / (float64(fontSize) * 0.6))
	if runewidth.StringWidth(text) <= maxCells {
		return text
	}
	if maxCells < 2 {
		return ""
	}
	return runewidth.Truncate(text, maxCells, "…")
}

// escapeXML escapes special XML characters in text content and attributes.
func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
