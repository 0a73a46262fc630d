package dataset

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/fake-useragent/datafix/pkg/s"
)

// WriteFile serialises records to path as line-delimited JSON, one record per
// line, newline-terminated. The data is written to a uuid-named temp file in
// the destination directory and renamed into place, so a failed run never
// leaves a partial dataset behind.
func WriteFile(path string, records []s.Record) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmpPath := filepath.Join(dir, "."+uuid.New().String()+".tmp")
	fp, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	w := bufio.NewWriter(fp)
	var loopErr error
	for _, rec := range records {
		if _, loopErr = w.Write(rec.Raw); loopErr != nil {
			break
		}
		if loopErr = w.WriteByte('\n'); loopErr != nil {
			break
		}
	}
	if loopErr == nil {
		loopErr = w.Flush()
	}

	if closeErr := fp.Close(); loopErr == nil {
		loopErr = closeErr
	}
	if loopErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", path, loopErr)
	}

	if err = os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
