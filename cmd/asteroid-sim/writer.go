package main

import (
	"errors"
	"io"
	"log"

	"asteroid-sim/internal/config"
	"asteroid-sim/internal/history"
	"asteroid-sim/internal/report"
)

var errNoHistory = errors.New("history.path is not configured (set it in the config or IMPACT_HISTORY_DB)")

// newWriters sets up the history writer, the STDOUT writer and every
// configured sink, in that order. The history write comes first so a failing
// export cannot keep an analysis out of the store; the MultiWriter still
// tries the remaining writers after a failure.
// It returns the writer and a cleanup function to close any resources.
func newWriters(cfg *config.Config, output, logFile string, store history.Store) (report.ResultWriter, func(), error) {
	stdout, err := report.NewStdoutWriter(output)
	if err != nil {
		return nil, nil, err
	}
	sinks, cleanup, err := sinkWriters(cfg, logFile)
	if err != nil {
		return nil, nil, err
	}
	var ws []report.ResultWriter
	if store != nil {
		ws = append(ws, report.NewHistoryWriter(store))
	}
	if len(ws) == 0 && len(sinks) == 0 {
		return stdout, cleanup, nil
	}
	ws = append(ws, stdout)
	return report.NewMultiWriter(append(ws, sinks...)...), cleanup, nil
}

// sinkWriters returns the non-interactive sinks: the JSONL export and GreptimeDB.
// The cleanup function closes every sink that was opened.
func sinkWriters(cfg *config.Config, logFile string) ([]report.ResultWriter, func(), error) {
	var (
		ws      []report.ResultWriter
		closers []io.Closer
	)
	cleanup := func() {
		for _, c := range closers {
			if err := c.Close(); err != nil {
				log.Printf("[Main] closing sink: %v", err)
			}
		}
	}

	if logFile != "" {
		fw, err := report.NewFileWriter(logFile)
		if err != nil {
			return nil, nil, err
		}
		ws = append(ws, fw)
		closers = append(closers, fw)
	}

	if cfg.Greptime.Endpoint != "" {
		gw, err := report.NewGreptimeDBWriter(cfg.Greptime.Endpoint, cfg.Greptime.Database, cfg.Greptime.Table)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		log.Printf("[Main] Writing analyses to GreptimeDB at %s", cfg.Greptime.Endpoint)
		ws = append(ws, gw)
		closers = append(closers, gw)
	}
	return ws, cleanup, nil
}

// openStore opens the SQLite history when configured. With ephemeral set, a
// bounded in-memory store is returned instead of nil when no path is set.
func openStore(cfg *config.Config, ephemeral bool) (history.Store, error) {
	if cfg.History.Path != "" {
		st, err := history.NewSQLiteStore(cfg.History.Path)
		if err != nil {
			return nil, err
		}
		return st, nil
	}
	if ephemeral {
		return history.NewMemoryStore(cfg.History.Limit), nil
	}
	return nil, nil
}
