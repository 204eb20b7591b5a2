// Result sinks for finished analyses
package report

import "asteroid-sim/internal/history"

// ResultWriter is an interface to support different output sinks.
type ResultWriter interface {
	Write(history.Record) error
}

// Optional: writers can also support batch mode
type batchWriter interface {
	WriteBatch([]history.Record) error
}

// WriteAll sends rows to w, using batch mode when supported.
func WriteAll(w ResultWriter, rows []history.Record) error {
	if bw, ok := w.(batchWriter); ok {
		return bw.WriteBatch(rows)
	}
	for _, r := range rows {
		if err := w.Write(r); err != nil {
			return err
		}
	}
	return nil
}
