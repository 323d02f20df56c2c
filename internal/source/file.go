package source

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"dcs/internal/model"
)

// FileSource reads raw orders from a JSONL file, one order per line.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// ReadBatch materializes the whole file. Any undecodable line or order with
// missing fields fails the batch; the aggregator never sees a partial or
// malformed input.
func (s *FileSource) ReadBatch() ([]model.Order, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open orders: %w", err)
	}
	defer file.Close()

	var orders []model.Order
	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		var o model.Order
		if err := json.Unmarshal(scanner.Bytes(), &o); err != nil {
			return nil, fmt.Errorf("unmarshal line %d: %w", lineNum, err)
		}
		if err := o.Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		orders = append(orders, o)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan orders: %w", err)
	}
	return orders, nil
}
