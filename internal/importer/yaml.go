package importer

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"gantt/internal/timeline"
)

// YAMLLoader reads a YAML sequence of items, or a mapping with an "items"
// sequence.
type YAMLLoader struct{}

// Name returns the loader name.
func (l *YAMLLoader) Name() string {
	return "yaml"
}

// Load decodes items from YAML.
func (l *YAMLLoader) Load(reader io.Reader) ([]timeline.Item, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(reader).Decode(&doc); err != nil {
		if err == io.EOF {
			return []timeline.Item{}, nil
		}
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	if len(doc.Content) == 0 {
		return []timeline.Item{}, nil
	}

	root := doc.Content[0]
	var raw []rawItem
	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&raw); err != nil {
			return nil, fmt.Errorf("parse YAML: %w", err)
		}
	case yaml.MappingNode:
		var wrapped struct {
			Items []rawItem `yaml:"items"`
		}
		if err := root.Decode(&wrapped); err != nil {
			return nil, fmt.Errorf("parse YAML: %w", err)
		}
		raw = wrapped.Items
	default:
		return nil, fmt.Errorf("parse YAML: expected a list of items")
	}

	return convert(raw)
}
