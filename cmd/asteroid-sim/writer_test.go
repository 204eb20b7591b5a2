package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"asteroid-sim/internal/config"
	"asteroid-sim/internal/history"
	"asteroid-sim/internal/impact"
	"asteroid-sim/internal/report"
)

func TestNewWritersStdoutOnly(t *testing.T) {
	w, cleanup, err := newWriters(config.Default(), report.FormatJSON, "", nil)
	if err != nil {
		t.Fatalf("newWriters returned error: %v", err)
	}
	cleanup()
	if _, ok := w.(*report.JSONWriter); !ok {
		t.Fatalf("expected *report.JSONWriter, got %T", w)
	}
}

func TestNewWritersLogFileAndHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analyses.jsonl")
	w, cleanup, err := newWriters(config.Default(), report.FormatJSON, path, history.NewMemoryStore(0))
	if err != nil {
		t.Fatalf("newWriters returned error: %v", err)
	}
	defer cleanup()
	if _, ok := w.(*report.MultiWriter); !ok {
		t.Fatalf("expected *report.MultiWriter, got %T", w)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected log file to be created: %v", err)
	}
}

func TestNewWritersStoresDespiteSinkFailure(t *testing.T) {
	store := history.NewMemoryStore(0)
	path := filepath.Join(t.TempDir(), "analyses.jsonl")
	w, cleanup, err := newWriters(config.Default(), report.FormatJSON, path, store)
	if err != nil {
		t.Fatalf("newWriters returned error: %v", err)
	}
	// A closed export file makes the JSONL sink fail on every write.
	cleanup()

	in := impact.AsteroidInput{Name: "Kept", Diameter: 50, Velocity: 17, Distance: 1e6, Type: impact.TypeStony}
	res, err := impact.Analyze(in, impact.DefaultOptions())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	rec := history.NewRecord(in, res)
	if err := w.Write(rec); err == nil {
		t.Fatalf("expected the closed export to report an error")
	}
	got, err := store.Get(context.Background(), rec.ID)
	if err != nil {
		t.Fatalf("record missing from history: %v", err)
	}
	if got.Input.Name != "Kept" {
		t.Fatalf("unexpected record %+v", got)
	}
}

func TestSinkWritersGreptimeCleanup(t *testing.T) {
	cfg := config.Default()
	cfg.Greptime.Endpoint = "127.0.0.1:4001"
	cfg.Greptime.Database = "public"
	path := filepath.Join(t.TempDir(), "analyses.jsonl")
	ws, cleanup, err := sinkWriters(cfg, path)
	if err != nil {
		t.Fatalf("sinkWriters returned error: %v", err)
	}
	if len(ws) != 2 {
		t.Fatalf("expected file and greptime sinks, got %d", len(ws))
	}
	gw, ok := ws[1].(*report.GreptimeDBWriter)
	if !ok {
		t.Fatalf("expected *report.GreptimeDBWriter, got %T", ws[1])
	}
	done := make(chan struct{})
	go func() {
		cleanup()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("cleanup did not return")
	}
	// The ingester client tolerates a second close once its connection is released.
	if err := gw.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if err := ws[0].Write(history.Record{}); err == nil {
		t.Fatalf("expected the export file to be closed by cleanup")
	}
}

func TestNewWritersUnknownFormat(t *testing.T) {
	if _, _, err := newWriters(config.Default(), "xml", "", nil); err == nil {
		t.Fatalf("expected error for unknown output format")
	}
}

func TestSinkWritersBadLogPath(t *testing.T) {
	if _, _, err := sinkWriters(config.Default(), filepath.Join(t.TempDir(), "missing", "out.jsonl")); err == nil {
		t.Fatalf("expected error for unwritable log path")
	}
}

func TestOpenStore(t *testing.T) {
	cfg := config.Default()
	st, err := openStore(cfg, false)
	if err != nil || st != nil {
		t.Fatalf("expected no store without a path, got %T, %v", st, err)
	}
	st, err = openStore(cfg, true)
	if err != nil {
		t.Fatalf("openStore: %v", err)
	}
	if _, ok := st.(*history.MemoryStore); !ok {
		t.Fatalf("expected *history.MemoryStore, got %T", st)
	}
	cfg.History.Path = filepath.Join(t.TempDir(), "history.db")
	st, err = openStore(cfg, false)
	if err != nil {
		t.Fatalf("openStore: %v", err)
	}
	defer st.Close()
	if _, ok := st.(*history.SQLiteStore); !ok {
		t.Fatalf("expected *history.SQLiteStore, got %T", st)
	}
}
