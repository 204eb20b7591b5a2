package report

import (
	"encoding/json"
	"os"

	"asteroid-sim/internal/history"
)

// FileWriter writes records to a JSONL file.
type FileWriter struct {
	file *os.File
	enc  *json.Encoder
}

// NewFileWriter creates path, truncating an existing file.
func NewFileWriter(path string) (*FileWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &FileWriter{file: f, enc: json.NewEncoder(f)}, nil
}

// Write logs a single record.
func (f *FileWriter) Write(r history.Record) error {
	return f.enc.Encode(r)
}

// WriteBatch logs multiple records.
func (f *FileWriter) WriteBatch(rows []history.Record) error {
	for _, r := range rows {
		if err := f.Write(r); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the underlying file.
func (f *FileWriter) Close() error {
	if f.file == nil {
		return nil
	}
	return f.file.Close()
}
