// Package verify re-checks a fixed dataset file. Every check category runs
// over the whole file and reports pass/fail counts instead of aborting on the
// first bad record, so one run gives the full picture.
package verify

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/fake-useragent/datafix/pkg/normalize"
	"github.com/fake-useragent/datafix/pkg/s"
)

// Check is the aggregate result of one check category.
type Check struct {
	Name     string
	Passed   int
	Failed   int
	Problems []string
}

func (c Check) OK() bool {
	return c.Failed == 0
}

func (c *Check) fail(problem string) {
	c.Failed++
	c.Problems = append(c.Problems, problem)
}

// Report aggregates every check category for one verification run.
type Report struct {
	Checks []Check
}

func (r Report) OK() bool {
	for _, c := range r.Checks {
		if !c.OK() {
			return false
		}
	}
	return true
}

// Failures returns the total failed count across categories.
func (r Report) Failures() int {
	total := 0
	for _, c := range r.Checks {
		total += c.Failed
	}
	return total
}

// File verifies the dataset at path. expected is the record count the file
// must contain; pass a negative value to accept however many records are
// found (the count check then only guards against an unreadable file).
func File(path string, expected int) (Report, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("read %s: %w", path, err)
	}

	jsonCheck := Check{Name: "valid json"}
	countCheck := Check{Name: "record count"}
	trailingCheck := Check{Name: "no trailing whitespace"}
	fieldsCheck := Check{Name: "required fields"}
	headerCheck := Check{Name: "header value"}

	found := 0
	lineNo := 0
	for _, line := range bytes.Split(content, []byte("\n")) {
		lineNo++
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		if !gjson.ValidBytes(line) || !gjson.ParseBytes(line).IsObject() {
			jsonCheck.fail(fmt.Sprintf("line %d: not a JSON object", lineNo))
			continue
		}
		jsonCheck.Passed++
		found++

		if ua := gjson.GetBytes(line, normalize.Field); ua.Type == gjson.String {
			if normalize.TrimTrailing(ua.Str) == ua.Str {
				trailingCheck.Passed++
			} else {
				trailingCheck.fail(fmt.Sprintf("line %d: %s ends in whitespace", lineNo, normalize.Field))
			}

			if ValidHeaderValue(ua.Str) {
				headerCheck.Passed++
			} else {
				headerCheck.fail(fmt.Sprintf("line %d: %s is not an acceptable header value", lineNo, normalize.Field))
			}
		}

		if problems := fieldProblems(line); len(problems) == 0 {
			fieldsCheck.Passed++
		} else {
			fieldsCheck.fail(fmt.Sprintf("line %d: %s", lineNo, strings.Join(problems, ", ")))
		}
	}

	if expected < 0 {
		expected = found
	}
	if found == expected {
		countCheck.Passed++
	} else {
		countCheck.fail(fmt.Sprintf("found %d records, expected %d", found, expected))
	}

	return Report{Checks: []Check{jsonCheck, countCheck, trailingCheck, fieldsCheck, headerCheck}}, nil
}

func fieldProblems(line []byte) []string {
	var problems []string
	for _, field := range s.RequiredFields {
		v := gjson.GetBytes(line, field)
		switch {
		case !v.Exists() || v.Type == gjson.Null:
			problems = append(problems, field+" missing")
		case field == "percent":
			if v.Type != gjson.Number {
				problems = append(problems, "percent is not numeric")
			}
		case field == normalize.Field:
			if v.Type != gjson.String || v.Str == "" {
				problems = append(problems, field+" is not a non-empty string")
			}
		default:
			if v.Type != gjson.String {
				problems = append(problems, field+" is not a string")
			}
		}
	}
	return problems
}
