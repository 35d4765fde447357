package timeline

import "fmt"

// Range is an inclusive span of calendar days.
type Range struct {
	Start Date `json:"start" yaml:"start"`
	End   Date `json:"end" yaml:"end"`
}

// Normalize swaps the endpoints when End precedes Start so that
// Start <= End always holds for the result.
func (r Range) Normalize() Range {
	if r.End.Before(r.Start) {
		return Range{Start: r.End, End: r.Start}
	}
	return r
}

// Shift moves both endpoints by n days.
func (r Range) Shift(n int) Range {
	return Range{Start: r.Start.AddDays(n), End: r.End.AddDays(n)}
}

// Days returns the inclusive number of days covered by the range.
func (r Range) Days() int {
	return DaysBetween(r.Start, r.End) + 1
}

// Valid reports whether both endpoints are present and Start <= End.
func (r Range) Valid() bool {
	return !r.Start.IsZero() && !r.End.IsZero() && !r.End.Before(r.Start)
}

// Overlaps reports whether the two ranges share at least one day.
func (r Range) Overlaps(other Range) bool {
	return !r.End.Before(other.Start) && !other.End.Before(r.Start)
}

// String renders the range as "start → end".
func (r Range) String() string {
	return fmt.Sprintf("%s → %s", r.Start, r.End)
}

// Item is a scheduled entity on the timeline.
type Item struct {
	ID    string `json:"id" yaml:"id"`
	Start Date   `json:"start" yaml:"start"`
	End   Date   `json:"end" yaml:"end"`
	Name  string `json:"name" yaml:"name"`
}

// Range returns the item's committed date range.
func (it Item) Range() Range {
	return Range{Start: it.Start, End: it.End}
}

// Apply returns a copy of the item with the fields of u merged in.
// Apply does not check that u targets this item.
func (it Item) Apply(u Update) Item {
	if u.Range != nil {
		it.Start = u.Range.Start
		it.End = u.Range.End
	}
	if u.Name != nil {
		it.Name = *u.Name
	}
	return it
}

// Update is a proposed partial change to a single item. Only non-nil
// fields changed.
type Update struct {
	ID    string
	Range *Range
	Name  *string
}

// RangeUpdate builds an update that moves or resizes an item.
func RangeUpdate(id string, r Range) Update {
	return Update{ID: id, Range: &r}
}

// NameUpdate builds an update that renames an item.
func NameUpdate(id, name string) Update {
	return Update{ID: id, Name: &name}
}

// Empty reports whether the update changes nothing.
func (u Update) Empty() bool {
	return u.Range == nil && u.Name == nil
}

// String describes the update for logs and status messages.
func (u Update) String() string {
	switch {
	case u.Range != nil && u.Name != nil:
		return fmt.Sprintf("%s: %s, name %q", u.ID, u.Range, *u.Name)
	case u.Range != nil:
		return fmt.Sprintf("%s: %s", u.ID, u.Range)
	case u.Name != nil:
		return fmt.Sprintf("%s: name %q", u.ID, *u.Name)
	default:
		return u.ID + ": no change"
	}
}
