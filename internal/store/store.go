// Package store holds the authoritative list of timeline items for a
// session. Views render from it and propose changes as partial updates;
// the store validates and merges them.
package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gantt/internal/timeline"
)

var (
	ErrUnknownItem  = errors.New("unknown item")
	ErrDuplicateID  = errors.New("duplicate item id")
	ErrInvalidRange = errors.New("invalid date range")
	ErrInvalidName  = errors.New("invalid item name")
)

const maxNameLen = 200

// Change describes an applied update, for status messages and logging.
type Change struct {
	Operation string // "move", "resize", "rename"
	Before    timeline.Item
	After     timeline.Item
	At        time.Time
}

// Store is an in-memory, ordered item collection. It is not safe for
// concurrent use.
type Store struct {
	items    []timeline.Item
	index    map[string]int
	version  uint64
	onChange func(Change)
	now      func() time.Time
}

// New validates items and returns a store holding a copy of them in input
// order.
func New(items []timeline.Item) (*Store, error) {
	s := &Store{
		items: make([]timeline.Item, 0, len(items)),
		index: make(map[string]int, len(items)),
		now:   time.Now,
	}
	for i, it := range items {
		if err := validate(it); err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		if _, ok := s.index[it.ID]; ok {
			return nil, fmt.Errorf("item %d: %w: %s", i+1, ErrDuplicateID, it.ID)
		}
		s.index[it.ID] = len(s.items)
		s.items = append(s.items, it)
	}
	return s, nil
}

func validate(it timeline.Item) error {
	if strings.TrimSpace(it.ID) == "" {
		return fmt.Errorf("item id is required")
	}
	if it.Start.IsZero() || it.End.IsZero() {
		return fmt.Errorf("%w: %s is missing a date", ErrInvalidRange, it.ID)
	}
	if it.End.Before(it.Start) {
		return fmt.Errorf("%w: %s ends %s before it starts %s", ErrInvalidRange, it.ID, it.End, it.Start)
	}
	if len(it.Name) > maxNameLen {
		return fmt.Errorf("%w: %s name too long (max %d)", ErrInvalidName, it.ID, maxNameLen)
	}
	return nil
}

// SetNowFunc overrides the clock stamped on changes. Passing nil resets it
// to time.Now.
func (s *Store) SetNowFunc(now func() time.Time) {
	if now == nil {
		s.now = time.Now
		return
	}
	s.now = now
}

// SetOnChange registers a callback invoked after each applied update.
func (s *Store) SetOnChange(fn func(Change)) {
	s.onChange = fn
}

// Items returns a copy of all items in their original order.
func (s *Store) Items() []timeline.Item {
	out := make([]timeline.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of items.
func (s *Store) Len() int {
	return len(s.items)
}

// Get returns the item with the given ID.
func (s *Store) Get(id string) (timeline.Item, bool) {
	i, ok := s.index[id]
	if !ok {
		return timeline.Item{}, false
	}
	return s.items[i], true
}

// Version increments every time an update changes an item.
func (s *Store) Version() uint64 {
	return s.version
}

// Apply merges u into the matching item and returns the result. Updates
// that would leave the item invalid are rejected and the store is left
// untouched. An update that changes nothing is accepted without bumping
// the version.
func (s *Store) Apply(u timeline.Update) (timeline.Item, error) {
	i, ok := s.index[u.ID]
	if !ok {
		return timeline.Item{}, fmt.Errorf("%w: %s", ErrUnknownItem, u.ID)
	}
	before := s.items[i]

	if u.Name != nil {
		name := strings.TrimSpace(*u.Name)
		if name == "" {
			return before, fmt.Errorf("%w: name is required", ErrInvalidName)
		}
		u.Name = &name
	}
	after := before.Apply(u)
	if err := validate(after); err != nil {
		return before, err
	}
	if after == before {
		return before, nil
	}

	s.items[i] = after
	s.version++
	if s.onChange != nil {
		s.onChange(Change{
			Operation: operation(before, after),
			Before:    before,
			After:     after,
			At:        s.now(),
		})
	}
	return after, nil
}

func operation(before, after timeline.Item) string {
	switch {
	case before.Name != after.Name:
		return "rename"
	case before.Range().Days() == after.Range().Days():
		return "move"
	default:
		return "resize"
	}
}

// String describes the change for the status bar.
func (c Change) String() string {
	switch c.Operation {
	case "rename":
		return fmt.Sprintf("Renamed %q to %q", c.Before.Name, c.After.Name)
	case "move":
		return fmt.Sprintf("Moved %s to %s", c.After.Name, c.After.Range())
	default:
		return fmt.Sprintf("Resized %s to %s (%d days)", c.After.Name, c.After.Range(), c.After.Range().Days())
	}
}
