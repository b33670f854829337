package corpus

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kodhukum/pasal/pkg/record"
)

// JSONLSink writes one JSON object per line, UTF-8, with non-ASCII
// characters emitted literally. The target file is truncated on open.
type JSONLSink struct {
	f   *os.File
	enc *json.Encoder
}

// NewJSONLSink truncates path and opens it for appending records.
func NewJSONLSink(path string) (*JSONLSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)

	return &JSONLSink{f: f, enc: enc}, nil
}

// Write appends each record as a single line.
func (s *JSONLSink) Write(recs []record.Record) error {
	for _, rec := range recs {
		if err := s.enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}

// Close flushes and closes the underlying file.
func (s *JSONLSink) Close() error {
	return s.f.Close()
}
