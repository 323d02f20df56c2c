package sink

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"dcs/internal/aggregate"
)

// FileSink writes rows as JSONL. Each batch truncates the previous one
// (overwrite mode).
type FileSink struct {
	path string
}

func NewFileSink(dir string, filename string) (*FileSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}
	return &FileSink{path: filepath.Join(dir, filename)}, nil
}

func (s *FileSink) Write(rows []aggregate.Row) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	for _, r := range rows {
		if err := enc.Encode(&r); err != nil {
			return fmt.Errorf("encode row %s: %w", r.Key(), err)
		}
	}
	return nil
}
