package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmynk/billtracker/internal/config"
	"github.com/mmynk/billtracker/internal/service"
)

var payCmd = &cobra.Command{
	Use:   "pay <id>",
	Short: "Mark a bill as paid this month",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return runSetPaid(cmd, args[0], true) },
}

var unpayCmd = &cobra.Command{
	Use:   "unpay <id>",
	Short: "Mark a bill as unpaid and clear its payment date",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return runSetPaid(cmd, args[0], false) },
}

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a bill",
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

func init() {
	rootCmd.AddCommand(payCmd, unpayCmd, deleteCmd)
}

func runSetPaid(cmd *cobra.Command, id string, isPaid bool) error {
	return withService(func(svc *service.BillService, cfg *config.Config) error {
		lastPaid, err := svc.SetPaid(cmd.Context(), id, isPaid)
		if err != nil {
			return err
		}
		if lastPaid != nil {
			fmt.Printf("  Bill marked as paid on %s\n", lastPaid.In(cfg.Location()).Format("2006-01-02 15:04"))
			return nil
		}
		fmt.Println("  Bill marked as unpaid")
		return nil
	})
}

func runDelete(cmd *cobra.Command, args []string) error {
	return withService(func(svc *service.BillService, _ *config.Config) error {
		if err := svc.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("  Bill deleted successfully")
		return nil
	})
}
