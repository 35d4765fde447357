package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gantt/internal/timeline"
)

// JSONLoader reads a JSON array of items, or an object with an "items"
// array.
type JSONLoader struct{}

// Name returns the loader name.
func (l *JSONLoader) Name() string {
	return "json"
}

// Load decodes items from JSON.
func (l *JSONLoader) Load(reader io.Reader) ([]timeline.Item, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read JSON: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return []timeline.Item{}, nil
	}

	var raw []rawItem
	if data[0] == '{' {
		var wrapped struct {
			Items []rawItem `json:"items"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return nil, fmt.Errorf("parse JSON: %w", err)
		}
		raw = wrapped.Items
	} else if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse JSON: %w", err)
	}

	return convert(raw)
}
