package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmynk/billtracker/internal/cli"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Show bill categories and payment methods",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println()
		fmt.Print(cli.RenderCategories())
		fmt.Println()
		fmt.Print(cli.RenderPaymentMethods())
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
