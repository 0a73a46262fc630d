package dataset

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/fake-useragent/datafix/pkg/e"
)

func TestLoad(t *testing.T) {
	input := `{"useragent": "Mozilla/5.0 A", "percent": 1.0}

{"useragent": "Mozilla/5.0 B ", "percent": 2.0}
{"useragent": "Mozilla/5.0 A", "percent": 1.0}
`

	records, err := Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("Load() returned %d records, want 3", len(records))
	}

	// Blank line skipped, line numbers still track the file
	expectedLines := []int{1, 3, 4}
	for i, rec := range records {
		if rec.Line != expectedLines[i] {
			t.Errorf("record %d line = %d, want %d", i, rec.Line, expectedLines[i])
		}
	}

	if diff := cmp.Diff(`{"useragent": "Mozilla/5.0 B ", "percent": 2.0}`, string(records[1].Raw)); diff != "" {
		t.Errorf("raw line mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMalformedLine(t *testing.T) {
	tables := []struct {
		name  string
		input string
		line  string
	}{
		{"invalid json", "{\"useragent\": \"a\", \"percent\": 1.0}\n{\"useragent\": \"b\", \n{\"useragent\": \"c\", \"percent\": 1.0}\n", "line 2"},
		{"not an object", "{\"useragent\": \"a\", \"percent\": 1.0}\n{\"useragent\": \"b\", \"percent\": 1.0}\n42\n", "line 3"},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			records, err := Load(strings.NewReader(table.input))
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !errors.Is(err, e.ErrMalformedLine) {
				t.Errorf("error %v is not ErrMalformedLine", err)
			}
			if !strings.Contains(err.Error(), table.line) {
				t.Errorf("error %q does not name %s", err.Error(), table.line)
			}
			if records != nil {
				t.Errorf("expected no records on abort, got %d", len(records))
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("does/not/exist.json")
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if !strings.Contains(err.Error(), "does/not/exist.json") {
		t.Errorf("error %q does not name the attempted path", err.Error())
	}
}
