package main

import (
	"github.com/spf13/cobra"

	"asteroid-sim/internal/history"
	"asteroid-sim/internal/impact"
)

var (
	anName     string
	anDiameter float64
	anVelocity float64
	anDistance float64
	anType     string
	anOutput   string
	anLogFile  string
	anEngine   string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyse a single asteroid",
	Long:  "analyze computes impact probability, kinetic energy, crater size and composition for one asteroid.",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine(cfg, anEngine, nil)
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
		writer, cleanup, err := newWriters(cfg, anOutput, anLogFile, store)
		if err != nil {
			return err
		}
		defer cleanup()

		in := impact.AsteroidInput{
			Name:     anName,
			Diameter: anDiameter,
			Velocity: anVelocity,
			Distance: anDistance,
			Type:     impact.AsteroidType(anType),
		}
		if !in.Type.Known() {
			logger.Warn("unrecognized asteroid type, using default density", "type", anType)
		}
		res, err := eng.Analyze(cmd.Context(), in)
		if err != nil {
			return err
		}
		return writer.Write(history.NewRecord(in, res))
	},
}

func init() {
	f := analyzeCmd.Flags()
	f.StringVar(&anName, "name", "", "Asteroid name")
	f.Float64Var(&anDiameter, "diameter", 0, "Diameter in metres")
	f.Float64Var(&anVelocity, "velocity", 0, "Velocity in km/s")
	f.Float64Var(&anDistance, "distance", 0, "Closest approach distance in km")
	f.StringVar(&anType, "type", string(impact.TypeStony), "Asteroid type (Stony, Metallic, Icy, Carbonaceous)")
	f.StringVar(&anOutput, "output", "auto", "Output format: auto, text or json")
	f.StringVar(&anLogFile, "log-file", "", "Path to export results (JSONL)")
	f.StringVar(&anEngine, "engine", "", "Override the configured engine (local or remote)")
	analyzeCmd.MarkFlagRequired("diameter")
	analyzeCmd.MarkFlagRequired("velocity")
	analyzeCmd.MarkFlagRequired("distance")
}
