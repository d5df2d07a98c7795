package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmynk/billtracker/internal/config"
	"github.com/mmynk/billtracker/internal/export"
	"github.com/mmynk/billtracker/internal/models"
	"github.com/mmynk/billtracker/internal/service"
)

var (
	flagFormat         string
	flagOut            string
	flagExportCategory string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export bills to CSV or XLSX",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagFormat, "format", "f", "csv", "Output format: csv or xlsx")
	exportCmd.Flags().StringVarP(&flagOut, "out", "o", "", "Output file (default bills_<date>.<format>, - for stdout)")
	exportCmd.Flags().StringVarP(&flagExportCategory, "category", "c", "", "Only export bills of this category")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	format, err := export.ParseFormat(flagFormat)
	if err != nil {
		return err
	}

	return withService(func(svc *service.BillService, _ *config.Config) error {
		bills, err := svc.List(cmd.Context(), service.ListOptions{
			Category:  models.Category(flagExportCategory),
			SortByDue: true,
		})
		if err != nil {
			return err
		}
		today := svc.Today()

		if flagOut == "-" {
			return export.Write(os.Stdout, format, bills, today)
		}

		path := flagOut
		if path == "" {
			path = format.FileName(today)
		}
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		if err := export.Write(f, format, bills, today); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "  Exported %d bills to %s\n", len(bills), path)
		return nil
	})
}
