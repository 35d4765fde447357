package timeline

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

// TestParseDate verifies ISO parsing and rejection of bad input.
func TestParseDate(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"2024-01-05", "2024-01-05", false},
		{" 2024-02-29 ", "2024-02-29", false},
		{"2023-02-29", "", true},
		{"01/05/2024", "", true},
		{"", "", true},
		{"soon", "", true},
	}

	for _, tc := range tests {
		got, err := ParseDate(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q) = %v, want error", tc.input, got)
			} else if !errors.Is(err, ErrInvalidDate) {
				t.Errorf("ParseDate(%q) error = %v, want ErrInvalidDate", tc.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q) error = %v", tc.input, err)
			continue
		}
		if got.String() != tc.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tc.input, got, tc.want)
		}
	}
}

// TestDaysBetween verifies calendar-day differences.
func TestDaysBetween(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"2024-01-05", "2024-01-05", 0},
		{"2024-01-05", "2024-01-06", 1},
		{"2024-01-06", "2024-01-05", -1},
		{"2024-02-28", "2024-03-01", 2},
		{"2023-12-31", "2024-12-31", 366},
		{"2024-03-09", "2024-03-11", 2}, // US DST change does not matter
		{"1500-01-01", "2024-01-01", 191387},
		{"2024-01-01", "1500-01-01", -191387},
		{"0001-01-01", "9999-12-31", 3652058},
	}
	for _, tc := range tests {
		if got := DaysBetween(MustParseDate(tc.a), MustParseDate(tc.b)); got != tc.want {
			t.Errorf("DaysBetween(%s, %s) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

// TestDateOf verifies time-of-day is dropped.
func TestDateOf(t *testing.T) {
	loc := time.FixedZone("UTC-8", -8*3600)
	got := DateOf(time.Date(2024, 1, 5, 23, 30, 0, 0, loc))
	if got.String() != "2024-01-05" {
		t.Errorf("DateOf() = %s, want 2024-01-05", got)
	}
}

// TestAddDays verifies day arithmetic across month boundaries.
func TestAddDays(t *testing.T) {
	d := MustParseDate("2024-01-30")
	if got := d.AddDays(3).String(); got != "2024-02-02" {
		t.Errorf("AddDays(3) = %s, want 2024-02-02", got)
	}
	if got := d.AddDays(-30).String(); got != "2023-12-31" {
		t.Errorf("AddDays(-30) = %s, want 2023-12-31", got)
	}
}

// TestDate_JSONAndYAML verifies dates serialize as ISO strings.
func TestDate_JSONAndYAML(t *testing.T) {
	it := Item{ID: "1", Start: MustParseDate("2024-01-01"), End: MustParseDate("2024-01-05"), Name: "Kickoff"}

	data, err := json.Marshal(it)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	want := `{"id":"1","start":"2024-01-01","end":"2024-01-05","name":"Kickoff"}`
	if string(data) != want {
		t.Errorf("json.Marshal() = %s, want %s", data, want)
	}

	var fromJSON Item
	if err := json.Unmarshal(data, &fromJSON); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if fromJSON != it {
		t.Errorf("json round trip = %+v, want %+v", fromJSON, it)
	}

	var fromYAML Item
	doc := "id: \"1\"\nstart: 2024-01-01\nend: 2024-01-05\nname: Kickoff\n"
	if err := yaml.Unmarshal([]byte(doc), &fromYAML); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if fromYAML != it {
		t.Errorf("yaml decode = %+v, want %+v", fromYAML, it)
	}

	var bad Item
	if err := json.Unmarshal([]byte(`{"id":"x","start":"nope"}`), &bad); err == nil {
		t.Error("json.Unmarshal() with bad date returned nil error")
	}
}

// TestRange_Normalize verifies the endpoint swap.
func TestRange_Normalize(t *testing.T) {
	r := Range{Start: MustParseDate("2024-01-10"), End: MustParseDate("2024-01-02")}.Normalize()
	if r.Start.String() != "2024-01-02" || r.End.String() != "2024-01-10" {
		t.Errorf("Normalize() = %s, want 2024-01-02 → 2024-01-10", r)
	}
	if !r.Valid() {
		t.Error("normalized range should be valid")
	}
	if got := r.Days(); got != 9 {
		t.Errorf("Days() = %d, want 9", got)
	}
}

// TestItem_Apply verifies partial updates merge only changed fields.
func TestItem_Apply(t *testing.T) {
	it := item("A", "2024-01-01", "2024-01-05")

	renamed := it.Apply(NameUpdate("A", "Renamed"))
	if renamed.Name != "Renamed" || renamed.Start != it.Start || renamed.End != it.End {
		t.Errorf("Apply(name) = %+v", renamed)
	}

	moved := it.Apply(RangeUpdate("A", it.Range().Shift(2)))
	if moved.Start.String() != "2024-01-03" || moved.End.String() != "2024-01-07" || moved.Name != it.Name {
		t.Errorf("Apply(range) = %+v", moved)
	}
}
