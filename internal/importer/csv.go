package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"gantt/internal/timeline"
)

// CSVLoader reads items from CSV with an id,start,end,name header. Column
// order and case do not matter; extra columns are ignored.
type CSVLoader struct{}

// Name returns the loader name.
func (l *CSVLoader) Name() string {
	return "csv"
}

// Load decodes items from CSV.
func (l *CSVLoader) Load(reader io.Reader) ([]timeline.Item, error) {
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1
	csvReader.LazyQuotes = true
	csvReader.TrimLeadingSpace = true

	header, err := csvReader.Read()
	if err == io.EOF {
		return []timeline.Item{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	colIndex := make(map[string]int)
	for i, col := range header {
		if i == 0 {
			col = strings.TrimPrefix(col, "\ufeff") // UTF-8 BOM
		}
		colIndex[strings.ToUpper(strings.TrimSpace(col))] = i
	}
	for _, col := range []string{"ID", "START", "END"} {
		if _, ok := colIndex[col]; !ok {
			return nil, fmt.Errorf("missing required column: %s", strings.ToLower(col))
		}
	}

	field := func(record []string, col string) string {
		idx, ok := colIndex[col]
		if !ok || idx >= len(record) {
			return ""
		}
		return record[idx]
	}

	var raw []rawItem
	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		if blankRecord(record) {
			continue
		}
		raw = append(raw, rawItem{
			ID:    field(record, "ID"),
			Start: field(record, "START"),
			End:   field(record, "END"),
			Name:  field(record, "NAME"),
		})
	}

	return convert(raw)
}

func blankRecord(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
