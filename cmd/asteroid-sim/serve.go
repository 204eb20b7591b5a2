package main

import (
	"errors"
	"net/http"

	"github.com/spf13/cobra"

	"asteroid-sim/internal/api"
	"asteroid-sim/internal/metrics"
	"asteroid-sim/internal/report"
)

var (
	serveAddr    string
	serveLogFile string
	serveEngine  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP analysis API",
	Long:  "serve exposes analysis, history and Prometheus metrics over HTTP until interrupted.",
	RunE: func(cmd *cobra.Command, args []string) error {
		collector := metrics.NewCollector()
		eng, err := newEngine(cfg, serveEngine, collector)
		if err != nil {
			return err
		}
		store, err := openStore(cfg, true)
		if err != nil {
			return err
		}
		defer store.Close()

		sinks, cleanup, err := sinkWriters(cfg, serveLogFile)
		if err != nil {
			return err
		}
		defer cleanup()
		var sink report.ResultWriter
		if len(sinks) > 0 {
			sink = report.NewMultiWriter(sinks...)
		}

		addr := cfg.Server.Addr
		if serveAddr != "" {
			addr = serveAddr
		}
		srv := api.NewServer(api.Options{
			Engine:       eng,
			Store:        store,
			Metrics:      collector,
			Sink:         sink,
			Logger:       logger,
			HistoryLimit: cfg.History.Limit,
		})
		if err := srv.Run(cmd.Context(), addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		logger.Info("server stopped")
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (defaults to server.addr)")
	serveCmd.Flags().StringVar(&serveLogFile, "log-file", "", "Path to export results (JSONL)")
	serveCmd.Flags().StringVar(&serveEngine, "engine", "", "Override the configured engine (local or remote)")
}
