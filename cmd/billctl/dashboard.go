package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmynk/billtracker/internal/cli"
	"github.com/mmynk/billtracker/internal/config"
	"github.com/mmynk/billtracker/internal/service"
)

var flagHorizon int

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"summary"},
	Short:   "Monthly totals, paid progress and upcoming bills",
	Args:    cobra.NoArgs,
	RunE:    runDashboard,
}

func init() {
	dashboardCmd.Flags().IntVar(&flagHorizon, "horizon", 0, "Days ahead to look for upcoming bills (default from config)")
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	return withService(func(svc *service.BillService, _ *config.Config) error {
		summary, err := svc.Dashboard(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println()
		fmt.Println(cli.RenderTitle(fmt.Sprintf("BILLS  %s", svc.Today().Format("January 2006"))))
		fmt.Println()
		fmt.Print(cli.RenderSummary(summary))
		return nil
	}, service.WithHorizon(flagHorizon))
}
