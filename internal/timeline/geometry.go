package timeline

import "math"

// DefaultPadDays is the padding added on both sides of the item bounds.
const DefaultPadDays = 7

// Bounds returns the earliest start and the latest end across items.
// For an empty set both are fallback.
func Bounds(items []Item, fallback Date) (lo, hi Date) {
	if len(items) == 0 {
		return fallback, fallback
	}
	lo, hi = items[0].Start, items[0].End
	for _, it := range items[1:] {
		lo = MinDate(lo, it.Start)
		hi = MaxDate(hi, it.End)
	}
	return lo, hi
}

// Span is the padded window of days shown on the ruler.
type Span struct {
	Left  Date
	Right Date
}

// NewSpan pads the item bounds by padDays on both sides.
func NewSpan(items []Item, padDays int, fallback Date) Span {
	lo, hi := Bounds(items, fallback)
	return Span{Left: lo.AddDays(-padDays), Right: hi.AddDays(padDays)}
}

// TotalDays is the inclusive number of days in the span, at least 1.
func (s Span) TotalDays() int {
	return max(1, DaysBetween(s.Left, s.Right)+1)
}

// Scale maps dates to horizontal offsets.
type Scale struct {
	Origin       Date
	PixelsPerDay float64
}

// NewScale places the origin padDays before the earliest item start.
func NewScale(items []Item, pixelsPerDay float64, padDays int, fallback Date) Scale {
	return Scale{
		Origin:       NewSpan(items, padDays, fallback).Left,
		PixelsPerDay: pixelsPerDay,
	}
}

// DateToX returns the offset of the start of day d.
func (s Scale) DateToX(d Date) float64 {
	return float64(DaysBetween(s.Origin, d)) * s.PixelsPerDay
}

// XToDate returns the day containing offset x.
func (s Scale) XToDate(x float64) Date {
	if s.PixelsPerDay <= 0 {
		return s.Origin
	}
	return s.Origin.AddDays(int(math.Floor(x / s.PixelsPerDay)))
}

// BarExtent returns the left offset and width of a bar covering r. The end
// day is inclusive, so a single-day range is one day wide.
func (s Scale) BarExtent(r Range) (left, width float64) {
	left = s.DateToX(r.Start)
	right := s.DateToX(r.End) + s.PixelsPerDay
	return left, math.Max(s.PixelsPerDay, right-left)
}

// Width returns the total width of the span at this scale.
func (s Scale) Width(span Span) float64 {
	return float64(span.TotalDays()) * s.PixelsPerDay
}

// Tick is a labelled ruler position.
type Tick struct {
	Date Date
	X    float64
}

// TickDays returns the ruler step in days for roughly approxTick units
// between labels.
func TickDays(approxTick, pixelsPerDay float64) int {
	if pixelsPerDay <= 0 {
		return 1
	}
	return max(1, int(math.Round(approxTick/pixelsPerDay)))
}

// Ticks returns the ruler ticks across span, starting at span.Left.
func (s Scale) Ticks(span Span, approxTick float64) []Tick {
	step := TickDays(approxTick, s.PixelsPerDay)
	total := span.TotalDays()
	ticks := make([]Tick, 0, total/step+1)
	for i := 0; i < total; i += step {
		d := span.Left.AddDays(i)
		ticks = append(ticks, Tick{Date: d, X: s.DateToX(d)})
	}
	return ticks
}
