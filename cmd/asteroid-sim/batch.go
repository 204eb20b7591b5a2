package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"asteroid-sim/internal/history"
	"asteroid-sim/internal/scenario"
)

var (
	batchInput   string
	batchPreset  string
	batchOutput  string
	batchLogFile string
	batchEngine  string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Analyse every asteroid in a scenario file",
	Long:  "batch runs each asteroid of a YAML scenario (or a built-in preset) through the engine in order.",
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := loadScenario(batchInput, batchPreset)
		if err != nil {
			return err
		}
		if unknown := sc.UnknownTypes(); len(unknown) > 0 {
			logger.Warn("entries with unrecognized types use the default density", "asteroids", unknown)
		}

		eng, err := newEngine(cfg, batchEngine, nil)
		if err != nil {
			return err
		}
		store, err := openStore(cfg, false)
		if err != nil {
			return err
		}
		if store != nil {
			defer store.Close()
		}
		writer, cleanup, err := newWriters(cfg, batchOutput, batchLogFile, store)
		if err != nil {
			return err
		}
		defer cleanup()

		log := logger.With("scenario", sc.Name)
		failed := 0
		for i, in := range sc.Inputs() {
			if err := cmd.Context().Err(); err != nil {
				return err
			}
			res, err := eng.Analyze(cmd.Context(), in)
			if err != nil {
				failed++
				log.Error("analysis failed", "index", i, "asteroid", in.Name, "error", err)
				continue
			}
			if err := writer.Write(history.NewRecord(in, res)); err != nil {
				failed++
				log.Error("writing result failed", "index", i, "asteroid", in.Name, "error", err)
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d analyses failed", failed, len(sc.Asteroids))
		}
		return nil
	},
}

func loadScenario(path, preset string) (*scenario.Scenario, error) {
	switch {
	case path != "" && preset != "":
		return nil, fmt.Errorf("--input and --preset are mutually exclusive")
	case path != "":
		return scenario.Load(path)
	case preset != "":
		presets := scenario.BuiltIn()
		sc, ok := presets[preset]
		if !ok {
			names := make([]string, 0, len(presets))
			for n := range presets {
				names = append(names, n)
			}
			sort.Strings(names)
			return nil, fmt.Errorf("unknown preset %q (available: %s)", preset, strings.Join(names, ", "))
		}
		return &sc, nil
	default:
		return nil, fmt.Errorf("either --input or --preset is required")
	}
}

func init() {
	f := batchCmd.Flags()
	f.StringVar(&batchInput, "input", "", "Path to scenario YAML")
	f.StringVar(&batchPreset, "preset", "", "Built-in scenario (historical, flyby, materials)")
	f.StringVar(&batchOutput, "output", "auto", "Output format: auto, text or json")
	f.StringVar(&batchLogFile, "log-file", "", "Path to export results (JSONL)")
	f.StringVar(&batchEngine, "engine", "", "Override the configured engine (local or remote)")
}
