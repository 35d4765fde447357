// Package importer loads timeline items from JSON, YAML and CSV files.
package importer

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gantt/internal/timeline"
)

// ErrUnknownFormat is returned when no loader matches a file or format name.
var ErrUnknownFormat = errors.New("unknown item format")

//go:embed sample.json
var sampleJSON []byte

// Loader decodes a list of items.
type Loader interface {
	// Load reads all items from the reader. Any malformed item fails the
	// whole load.
	Load(reader io.Reader) ([]timeline.Item, error)

	// Name returns the loader name (e.g., "json", "csv").
	Name() string
}

// GetLoader returns the loader for the given format name, or nil.
func GetLoader(format string) Loader {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return &JSONLoader{}
	case "yaml", "yml":
		return &YAMLLoader{}
	case "csv":
		return &CSVLoader{}
	default:
		return nil
	}
}

// SupportedFormats returns the list of supported format names.
func SupportedFormats() []string {
	return []string{"json", "yaml", "csv"}
}

// ForPath picks a loader by file extension.
func ForPath(path string) (Loader, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if l := GetLoader(ext); l != nil {
		return l, nil
	}
	return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnknownFormat, filepath.Base(path), strings.Join(SupportedFormats(), ", "))
}

// LoadFile reads items from path using the loader for its extension.
func LoadFile(path string) ([]timeline.Item, error) {
	l, err := ForPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	items, err := l.Load(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filepath.Base(path), err)
	}
	return items, nil
}

// Sample returns the built-in demo items.
func Sample() []timeline.Item {
	items, err := (&JSONLoader{}).Load(strings.NewReader(string(sampleJSON)))
	if err != nil {
		panic(fmt.Sprintf("importer: bad sample data: %v", err))
	}
	return items
}

// dateFormats are tried in order after ISO.
var dateFormats = []string{
	"Jan 2 2006",
	"Jan 2, 2006",
	"2 Jan 2006",
	"January 2, 2006",
	"2006/01/02",
}

// parseDate accepts ISO dates and a few common spellings.
func parseDate(s string) (timeline.Date, error) {
	s = strings.TrimSpace(s)
	if d, err := timeline.ParseDate(s); err == nil {
		return d, nil
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return timeline.DateOf(t), nil
		}
	}
	return timeline.Date{}, fmt.Errorf("%w: %q", timeline.ErrInvalidDate, s)
}

// rawItem is the loose on-disk shape shared by JSON and YAML.
type rawItem struct {
	ID    any    `json:"id" yaml:"id"`
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
	Name  string `json:"name" yaml:"name"`
}

func (r rawItem) item(n int) (timeline.Item, error) {
	id := formatID(r.ID)
	if id == "" {
		return timeline.Item{}, fmt.Errorf("item %d: id is required", n)
	}
	if strings.TrimSpace(r.Start) == "" || strings.TrimSpace(r.End) == "" {
		return timeline.Item{}, fmt.Errorf("item %d (%s): start and end are required: %w", n, id, timeline.ErrInvalidDate)
	}
	start, err := parseDate(r.Start)
	if err != nil {
		return timeline.Item{}, fmt.Errorf("item %d (%s) start: %w", n, id, err)
	}
	end, err := parseDate(r.End)
	if err != nil {
		return timeline.Item{}, fmt.Errorf("item %d (%s) end: %w", n, id, err)
	}
	return timeline.Item{ID: id, Start: start, End: end, Name: strings.TrimSpace(r.Name)}, nil
}

// formatID accepts string and numeric IDs.
func formatID(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(id)
	case float64:
		if id == float64(int64(id)) {
			return fmt.Sprintf("%d", int64(id))
		}
		return fmt.Sprintf("%g", id)
	default:
		return strings.TrimSpace(fmt.Sprint(id))
	}
}

func convert(raw []rawItem) ([]timeline.Item, error) {
	items := make([]timeline.Item, 0, len(raw))
	for i, r := range raw {
		it, err := r.item(i + 1)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}
