package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mmynk/billtracker/internal/config"
	"github.com/mmynk/billtracker/internal/models"
	"github.com/mmynk/billtracker/internal/service"
)

var addInput struct {
	name     string
	category string
	amount   string
	due      int
	method   string
	paid     bool
	notes    string
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a bill",
	Args:  cobra.NoArgs,
	RunE:  runAdd,
}

func init() {
	f := addCmd.Flags()
	f.StringVar(&addInput.name, "name", "", "Display name")
	f.StringVar(&addInput.category, "category", "", "Category: water, electricity, household, credit-card, phone, internet")
	f.StringVar(&addInput.amount, "amount", "", "Monthly amount, e.g. 45.50")
	f.IntVar(&addInput.due, "due", 0, "Day of month the bill is due (1-31)")
	f.StringVar(&addInput.method, "method", string(models.PaymentBankTransfer), "Payment method")
	f.BoolVar(&addInput.paid, "paid", false, "Mark as already paid this month")
	f.StringVar(&addInput.notes, "notes", "", "Free-form notes")
	_ = addCmd.MarkFlagRequired("name")
	_ = addCmd.MarkFlagRequired("category")
	_ = addCmd.MarkFlagRequired("amount")
	_ = addCmd.MarkFlagRequired("due")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, _ []string) error {
	amount, err := decimal.NewFromString(addInput.amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", addInput.amount, err)
	}

	in := models.BillInput{
		Name:          addInput.name,
		Category:      models.Category(addInput.category),
		MonthlyAmount: amount,
		DueDate:       addInput.due,
		PaymentMethod: models.PaymentMethod(addInput.method),
		IsPaid:        addInput.paid,
		Notes:         addInput.notes,
	}

	return withService(func(svc *service.BillService, _ *config.Config) error {
		bill, err := svc.Create(cmd.Context(), in)
		if err != nil {
			return err
		}
		fmt.Printf("  Added %s (%s)\n", bill.Name, bill.ID)
		return nil
	})
}
