package main

import (
	"github.com/spf13/cobra"

	"asteroid-sim/internal/dashboard"
)

var dashboardOut string

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Render Grafana dashboards",
	Long:  "dashboard writes Grafana dashboards for the GreptimeDB analyses table and the Prometheus metrics. Datasource UIDs are read from GREPTIMEDB_DATASOURCE_UID and PROMETHEUS_DATASOURCE_UID.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := dashboard.Render(dashboardOut, dashboard.Params{Table: cfg.Greptime.Table}); err != nil {
			return err
		}
		logger.Info("dashboards rendered", "dir", dashboardOut)
		return nil
	},
}

func init() {
	dashboardCmd.Flags().StringVar(&dashboardOut, "out", "build", "Output directory")
}
