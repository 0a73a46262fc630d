// Package normalize strips trailing whitespace from the useragent field of
// dataset records. Rewrites happen on the raw line bytes so field order and
// every other field survive untouched.
package normalize

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/fake-useragent/datafix/pkg/s"
)

// Field is the dataset key the fix operates on.
const Field = "useragent"

// TrimTrailing removes whitespace (space, tab, newline, carriage return and
// any other unicode space) from the right end of ua only. Leading and
// interior whitespace is left alone.
func TrimTrailing(ua string) string {
	return strings.TrimRightFunc(ua, unicode.IsSpace)
}

// Record trims the useragent field of one raw JSONL line. The returned bool
// reports whether the line changed; a clean line is returned as-is. Lines
// where the field is missing or not a string pass through unchanged, the
// verifier flags those separately.
func Record(raw []byte) ([]byte, bool, error) {
	ua := gjson.GetBytes(raw, Field)
	if !ua.Exists() || ua.Type != gjson.String {
		return raw, false, nil
	}

	cleaned := TrimTrailing(ua.Str)
	if cleaned == ua.Str {
		return raw, false, nil
	}

	fixed, err := sjson.SetBytes(raw, Field, cleaned)
	if err != nil {
		return nil, false, fmt.Errorf("rewrite %s: %w", Field, err)
	}
	return fixed, true, nil
}

// Dataset trims every record and reports how many changed. Record order and
// count are preserved, duplicates included.
func Dataset(records []s.Record) ([]s.Record, int, error) {
	out := make([]s.Record, 0, len(records))
	changed := 0

	for _, rec := range records {
		fixed, didChange, err := Record(rec.Raw)
		if err != nil {
			return nil, 0, fmt.Errorf("record at line %d: %w", rec.Line, err)
		}
		if didChange {
			changed++
		}
		out = append(out, s.Record{Line: rec.Line, Raw: fixed})
	}
	return out, changed, nil
}

// Stats summarises whitespace issues across a dataset. Records whose
// useragent is missing or not a string only contribute to Total.
func Stats(records []s.Record) s.DatasetStats {
	stats := s.DatasetStats{Total: len(records)}
	seen := make(map[string]struct{}, len(records))

	for _, rec := range records {
		ua := gjson.GetBytes(rec.Raw, Field)
		if ua.Type != gjson.String {
			continue
		}
		if TrimTrailing(ua.Str) != ua.Str {
			stats.Trailing++
		}
		if strings.TrimLeftFunc(ua.Str, unicode.IsSpace) != ua.Str {
			stats.Leading++
		}
		if strings.Contains(ua.Str, "  ") {
			stats.DoubleSpace++
		}
		seen[ua.Str] = struct{}{}
	}

	stats.Unique = len(seen)
	stats.Duplicates = stats.Total - stats.Unique
	return stats
}
