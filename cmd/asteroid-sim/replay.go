package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"asteroid-sim/internal/report"
)

var (
	replayInput  string
	replaySpeed  float64
	replayOutput string
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay an exported analysis log",
	Long:  "replay re-displays records from a JSONL export, paced by their original timestamps.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if replayInput == "" {
			return fmt.Errorf("input file required")
		}
		writer, err := report.NewStdoutWriter(replayOutput)
		if err != nil {
			return err
		}
		return report.ReplayLogFile(cmd.Context(), replayInput, writer, replaySpeed)
	},
}

func init() {
	replayCmd.Flags().StringVar(&replayInput, "input", "", "Path to JSONL export")
	replayCmd.Flags().Float64Var(&replaySpeed, "speed", 0, "Playback speed multiplier (0 replays without delay)")
	replayCmd.Flags().StringVar(&replayOutput, "output", "auto", "Output format: auto, text or json")
	replayCmd.MarkFlagRequired("input")
}
