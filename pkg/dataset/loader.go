package dataset

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/tidwall/gjson"

	"github.com/fake-useragent/datafix/pkg/e"
	"github.com/fake-useragent/datafix/pkg/s"
)

// Load reads line-delimited JSON from r into records, in input order. Lines
// containing only whitespace are skipped. A line that is not a valid JSON
// object aborts the whole load, there is no partial recovery.
func Load(r io.Reader) ([]s.Record, error) {
	var records []s.Record

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(bytes.TrimSpace(raw)) == 0 {
			continue
		}
		if !gjson.ValidBytes(raw) || !gjson.ParseBytes(raw).IsObject() {
			return nil, fmt.Errorf("%w at line %d: %s", e.ErrMalformedLine, line, string(raw))
		}

		// Scanner reuses its buffer
		buf := make([]byte, len(raw))
		copy(buf, raw)
		records = append(records, s.Record{Line: line, Raw: buf})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	return records, nil
}

// LoadFile loads the JSONL dataset at path.
func LoadFile(path string) ([]s.Record, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer fp.Close()

	records, err := Load(fp)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return records, nil
}
