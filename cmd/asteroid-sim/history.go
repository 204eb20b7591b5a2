package main

import (
	"github.com/spf13/cobra"

	"asteroid-sim/internal/report"
)

var (
	histLimit  int
	histID     string
	histOutput string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past analyses",
	Long:  "history lists stored analyses newest first, or shows one by ID.",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cfg, false)
		if err != nil {
			return err
		}
		if store == nil {
			return errNoHistory
		}
		defer store.Close()

		writer, err := report.NewStdoutWriter(histOutput)
		if err != nil {
			return err
		}
		if histID != "" {
			rec, err := store.Get(cmd.Context(), histID)
			if err != nil {
				return err
			}
			return writer.Write(rec)
		}

		limit := histLimit
		if !cmd.Flags().Changed("limit") {
			limit = cfg.History.Limit
		}
		recs, err := store.List(cmd.Context(), limit)
		if err != nil {
			return err
		}
		if len(recs) == 0 {
			logger.Info("no analyses recorded yet")
			return nil
		}
		return report.WriteAll(writer, recs)
	},
}

func init() {
	historyCmd.Flags().IntVar(&histLimit, "limit", 0, "Maximum records to list (0 for all)")
	historyCmd.Flags().StringVar(&histID, "id", "", "Show a single record")
	historyCmd.Flags().StringVar(&histOutput, "output", "auto", "Output format: auto, text or json")
}
