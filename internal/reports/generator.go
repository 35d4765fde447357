package reports

import (
	"time"

	"gantt/internal/store"
	"gantt/internal/timeline"
)

// Generator creates reports from the current store contents.
type Generator struct {
	store *store.Store
	opts  Options
	now   func() time.Time
}

// NewGenerator creates a new report generator.
func NewGenerator(s *store.Store, opts Options) *Generator {
	return &Generator{store: s, opts: opts, now: time.Now}
}

// SetNowFunc overrides the clock. Passing nil resets it to time.Now.
func (g *Generator) SetNowFunc(now func() time.Time) {
	if now == nil {
		g.now = time.Now
		return
	}
	g.now = now
}

// Generate builds a report for the store's current items.
func (g *Generator) Generate() *Report {
	now := g.now()
	r := Build(g.store.Items(), g.opts, timeline.DateOf(now))
	r.GeneratedAt = now
	return r
}

// Build packs items into lanes and summarizes them. today anchors the span
// when there are no items.
func Build(items []timeline.Item, opts Options, today timeline.Date) *Report {
	if opts.MinGapDays < 0 {
		opts.MinGapDays = 0
	}
	if opts.PadDays < 0 {
		opts.PadDays = 0
	}

	span := timeline.NewSpan(items, opts.PadDays, today)
	lanes := timeline.AssignLanes(items, timeline.LaneOptions{MinGapDays: opts.MinGapDays})
	total := span.TotalDays()

	r := &Report{
		Start:      span.Left,
		End:        span.Right,
		TotalDays:  total,
		MinGapDays: opts.MinGapDays,
		ItemCount:  len(items),
		Lanes:      make([]LaneSummary, 0, len(lanes)),
	}
	for i, lane := range lanes {
		busy := 0
		for _, it := range lane {
			busy += it.Range().Days()
		}
		ls := LaneSummary{
			Index:    i + 1,
			Items:    []timeline.Item(lane),
			BusyDays: busy,
		}
		if total > 0 {
			ls.Utilization = float64(busy) / float64(total)
		}
		r.Lanes = append(r.Lanes, ls)
	}
	return r
}
