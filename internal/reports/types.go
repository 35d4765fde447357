// Package reports summarizes a lane layout for export as Markdown, JSON or
// SVG.
package reports

import (
	"time"

	"gantt/internal/timeline"
)

// Report describes a packed timeline.
type Report struct {
	Start       timeline.Date `json:"start"`
	End         timeline.Date `json:"end"`
	TotalDays   int           `json:"total_days"`
	MinGapDays  int           `json:"min_gap_days"`
	ItemCount   int           `json:"item_count"`
	Lanes       []LaneSummary `json:"lanes"`
	GeneratedAt time.Time     `json:"generated_at"`
}

// LaneSummary contains the items of one lane and how busy it is.
type LaneSummary struct {
	Index       int             `json:"index"`
	Items       []timeline.Item `json:"items"`
	BusyDays    int             `json:"busy_days"`
	Utilization float64         `json:"utilization"` // busy days / total days
}

// Options controls how a report is built.
type Options struct {
	MinGapDays int
	PadDays    int
}
