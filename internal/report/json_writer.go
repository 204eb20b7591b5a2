package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"asteroid-sim/internal/history"
)

// JSONWriter prints records as JSON lines.
type JSONWriter struct {
	out io.Writer
}

// NewJSONWriter creates a JSONWriter writing to out, or os.Stdout when nil.
func NewJSONWriter(out io.Writer) *JSONWriter {
	if out == nil {
		out = os.Stdout
	}
	return &JSONWriter{out: out}
}

// Write outputs a record in JSON format.
func (w *JSONWriter) Write(r history.Record) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	_, err = fmt.Fprintln(w.out, string(data))
	return err
}

// WriteBatch outputs multiple records in JSON format.
func (w *JSONWriter) WriteBatch(rows []history.Record) error {
	for _, r := range rows {
		if err := w.Write(r); err != nil {
			return err
		}
	}
	return nil
}
