package report

import (
	"errors"

	"asteroid-sim/internal/history"
)

// MultiWriter fans records out to several writers. Every writer is tried even
// when an earlier one fails; the failures are joined into the returned error.
type MultiWriter struct {
	writers []ResultWriter
}

// NewMultiWriter creates a new MultiWriter, skipping nil writers.
func NewMultiWriter(ws ...ResultWriter) *MultiWriter {
	mw := &MultiWriter{}
	for _, w := range ws {
		if w != nil {
			mw.writers = append(mw.writers, w)
		}
	}
	return mw
}

// Write sends a record to all writers.
func (mw *MultiWriter) Write(r history.Record) error {
	var errs []error
	for _, w := range mw.writers {
		if err := w.Write(r); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// WriteBatch sends multiple records to all writers, using batch if supported.
func (mw *MultiWriter) WriteBatch(rows []history.Record) error {
	var errs []error
	for _, w := range mw.writers {
		if err := WriteAll(w, rows); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
