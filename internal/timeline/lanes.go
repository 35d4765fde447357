package timeline

import (
	"fmt"
	"slices"
)

// Lane is one visual row of items, ordered by ascending start date.
type Lane []Item

// LaneOptions tunes lane assignment.
type LaneOptions struct {
	// MinGapDays is the number of calendar days required between one item's
	// end and the next item's start for both to share a lane. Negative
	// values are treated as 0.
	MinGapDays int
}

// AssignLanes packs items into the fewest lanes a greedy first-fit pass
// over the start-sorted items produces.
//
// Items with equal start dates keep their input order. Lanes are filled in
// creation order and never reordered. The input slice is not modified.
func AssignLanes(items []Item, opts LaneOptions) []Lane {
	gap := max(opts.MinGapDays, 0)

	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b Item) int {
		return a.Start.Compare(b.Start)
	})

	lanes := make([]Lane, 0)
	for _, item := range sorted {
		placed := false
		for i := range lanes {
			last := lanes[i][len(lanes[i])-1]
			if fitsAfter(last, item, gap) {
				lanes[i] = append(lanes[i], item)
				placed = true
				break
			}
		}
		if !placed {
			lanes = append(lanes, Lane{item})
		}
	}
	return lanes
}

// fitsAfter reports whether next may follow prev in the same lane.
func fitsAfter(prev, next Item, gap int) bool {
	return DaysBetween(prev.End, next.Start) >= gap
}

// AutoGapDays derives a minimum lane gap from the zoom level so that a label
// of labelCells units still fits between neighbouring bars.
func AutoGapDays(labelCells, cellsPerDay int) int {
	if cellsPerDay <= 0 || labelCells <= 0 {
		return 0
	}
	return labelCells / cellsPerDay
}

// ValidateLanes checks the packing invariant: consecutive items in a lane
// are ordered by start and separated by at least minGapDays.
func ValidateLanes(lanes []Lane, minGapDays int) error {
	gap := max(minGapDays, 0)
	for li, lane := range lanes {
		if len(lane) == 0 {
			return fmt.Errorf("lane %d is empty", li)
		}
		for i := 1; i < len(lane); i++ {
			prev, next := lane[i-1], lane[i]
			if next.Start.Before(prev.Start) {
				return fmt.Errorf("lane %d: %s starts before %s", li, next.ID, prev.ID)
			}
			if !fitsAfter(prev, next, gap) {
				return fmt.Errorf("lane %d: %s and %s are closer than %d days", li, prev.ID, next.ID, gap)
			}
		}
	}
	return nil
}

// LaneOf returns the index of the lane holding the item with the given ID,
// or -1.
func LaneOf(lanes []Lane, id string) int {
	for i, lane := range lanes {
		for _, it := range lane {
			if it.ID == id {
				return i
			}
		}
	}
	return -1
}
