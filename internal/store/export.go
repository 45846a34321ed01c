package store

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// ExportJSONL writes every stored run as one JSON line per run, newest
// first, to the given path. The output is the full run payload, suitable
// for external analysis tooling.
func (s *RunStore) ExportJSONL(ctx context.Context, path string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, "SELECT payload FROM runs ORDER BY created_at DESC")
	if err != nil {
		return 0, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	count := 0
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return count, fmt.Errorf("scan run: %w", err)
		}
		// Compact to guarantee one line per run regardless of how the
		// payload was stored.
		var line bytes.Buffer
		if err := json.Compact(&line, []byte(payload)); err != nil {
			return count, fmt.Errorf("compact run payload: %w", err)
		}
		line.WriteByte('\n')
		if _, err := w.Write(line.Bytes()); err != nil {
			return count, fmt.Errorf("write run: %w", err)
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return count, err
	}
	if err := w.Flush(); err != nil {
		return count, err
	}
	return count, f.Close()
}
