// Package export writes bill listings as CSV or XLSX spreadsheets.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/mmynk/billtracker/internal/calculator"
	"github.com/mmynk/billtracker/internal/models"
)

// Format is an export file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

const sheetName = "Bills"

// Headers are the column titles of every export.
var Headers = []string{"Name", "Category", "Amount", "Due Day", "Payment Method", "Status", "Last Paid", "Notes"}

// ParseFormat accepts "csv" or "xlsx", case-insensitively. Empty means CSV.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", s)
	}
}

// ContentType is the MIME type of files in format f.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// FileName is the suggested download name for an export taken on day.
func (f Format) FileName(day time.Time) string {
	return fmt.Sprintf("bills_%s.%s", day.Format("20060102"), f)
}

// Write exports bills in format f.
func Write(w io.Writer, f Format, bills []models.Bill, today time.Time) error {
	switch f {
	case FormatXLSX:
		return WriteXLSX(w, bills, today)
	case FormatCSV:
		return WriteCSV(w, bills, today)
	default:
		return fmt.Errorf("unsupported export format %q", f)
	}
}

// record renders one bill as export cells.
func record(b models.Bill, today time.Time) []string {
	lastPaid := ""
	if b.LastPaidDate != nil {
		lastPaid = b.LastPaidDate.In(today.Location()).Format("2006-01-02")
	}
	return []string{
		b.Name,
		b.Category.Label(),
		b.MonthlyAmount.StringFixed(2),
		calculator.FormatDueDay(b.DueDate),
		b.PaymentMethod.Label(),
		calculator.StatusLabel(b, today),
		lastPaid,
		b.Notes,
	}
}

// WriteCSV writes a header row and one row per bill.
func WriteCSV(w io.Writer, bills []models.Bill, today time.Time) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Headers); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, b := range bills {
		if err := cw.Write(record(b, today)); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes a single-sheet workbook. Amounts are numeric cells.
func WriteXLSX(w io.Writer, bills []models.Bill, today time.Time) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &Headers); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, b := range bills {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		cells := record(b, today)
		row := make([]interface{}, len(cells))
		for j, c := range cells {
			row[j] = c
		}
		row[2] = b.MonthlyAmount.Round(2).InexactFloat64()
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	widths := []float64{24, 14, 12, 10, 16, 20, 12, 30}
	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
