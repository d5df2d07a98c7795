package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmynk/billtracker/internal/cli"
	"github.com/mmynk/billtracker/internal/config"
	"github.com/mmynk/billtracker/internal/models"
	"github.com/mmynk/billtracker/internal/service"
)

var (
	flagCategory string
	flagSortDue  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List bills with their due status",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVarP(&flagCategory, "category", "c", "", "Only show bills of this category")
	listCmd.Flags().BoolVar(&flagSortDue, "sort-due", false, "Sort by days until due instead of newest first")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	return withService(func(svc *service.BillService, _ *config.Config) error {
		views, err := svc.Views(cmd.Context(), service.ListOptions{
			Category:  models.Category(flagCategory),
			SortByDue: flagSortDue,
		})
		if err != nil {
			return err
		}
		if len(views) == 0 {
			fmt.Println("\n  No bills found.")
			return nil
		}

		fmt.Println()
		fmt.Print(cli.RenderBills(fmt.Sprintf("Bills (%d)", len(views)), views))
		return nil
	})
}
