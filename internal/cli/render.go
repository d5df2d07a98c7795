// Package cli provides rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmynk/billtracker/internal/calculator"
	"github.com/mmynk/billtracker/internal/models"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
	ColorRed       = lipgloss.Color("#D14D41")
	ColorYellow    = lipgloss.Color("#D0A215")
	ColorBlue      = lipgloss.Color("#4385BE")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

var statusColors = map[calculator.Status]lipgloss.Color{
	calculator.StatusPaid:    ColorGreen,
	calculator.StatusOverdue: ColorRed,
	calculator.StatusUrgent:  ColorOrange,
	calculator.StatusWarning: ColorYellow,
	calculator.StatusNormal:  ColorBlue,
}

// StatusStyle returns the style used for a bill status.
func StatusStyle(s calculator.Status) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(statusColors[s])
}

// Table represents a bordered text table for CLI output.
// Cells may already carry styling; widths are measured on visible text.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	// RightAlign marks columns to right-align, typically amounts.
	RightAlign map[int]bool
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

func pad(cell string, width int, right bool) string {
	gap := width - lipgloss.Width(cell)
	if gap <= 0 {
		return cell
	}
	if right {
		return strings.Repeat(" ", gap) + cell
	}
	return cell + strings.Repeat(" ", gap)
}

func ruleLine(widths []int, left, mid, right string) string {
	var b strings.Builder
	b.WriteString(dimStyle.Render(left))
	for i, w := range widths {
		b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
		if i < len(widths)-1 {
			b.WriteString(dimStyle.Render(mid))
		}
	}
	b.WriteString(dimStyle.Render(right))
	b.WriteString("\n")
	return b.String()
}

// RenderTable renders a bordered table with headers and rows.
// A row holding the single cell "---" renders as a separator.
func RenderTable(t Table) string {
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	b.WriteString(ruleLine(widths, "╭", "┬", "╮"))

	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(headerStyle.Render(" " + pad(h, widths[i], false) + " "))
			b.WriteString(dimStyle.Render("│"))
		}
		b.WriteString("\n")
		b.WriteString(ruleLine(widths, "├", "┼", "┤"))
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			b.WriteString(ruleLine(widths, "├", "┼", "┤"))
			continue
		}

		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(" " + valueStyle.Render(pad(cell, widths[i], t.RightAlign[i])) + " ")
			b.WriteString(dimStyle.Render("│"))
		}
		b.WriteString("\n")
	}

	b.WriteString(ruleLine(widths, "╰", "┴", "╯"))
	return b.String()
}

// RenderProgressBar renders a simple text progress bar.
func RenderProgressBar(current, total int, width int) string {
	if total <= 0 {
		return ""
	}

	pct := float64(current) / float64(total)
	if pct > 1 {
		pct = 1
	}
	filled := int(pct * float64(width))

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %d/%d", mutedStyle.Render(bar), current, total)
}

// RenderBills renders bills with their status, colored per status.
func RenderBills(title string, views []calculator.BillView) string {
	rows := make([][]string, 0, len(views))
	for _, v := range views {
		rows = append(rows, []string{
			v.ID[:min(8, len(v.ID))],
			v.Name,
			v.Category.Info().Icon + " " + v.Category.Label(),
			calculator.FormatCurrency(v.MonthlyAmount),
			v.DueDayLabel,
			v.PaymentMethod.Label(),
			StatusStyle(v.Status).Render(v.StatusLabel),
		})
	}

	return RenderTable(Table{
		Title:      title,
		Headers:    []string{"ID", "Name", "Category", "Amount", "Due", "Method", "Status"},
		Rows:       rows,
		RightAlign: map[int]bool{3: true},
	})
}

// RenderSummary renders the dashboard figures and the upcoming bills.
func RenderSummary(s calculator.Summary) string {
	var b strings.Builder

	rows := [][]string{
		{"Total monthly", calculator.FormatCurrency(s.TotalMonthly)},
		{"Paid", calculator.FormatCurrency(s.PaidAmount)},
		{"Remaining", calculator.FormatCurrency(s.RemainingAmount)},
		{"---"},
		{"Bills", fmt.Sprintf("%d (%d paid, %d unpaid)", s.TotalBills, s.PaidBills, s.UnpaidBills)},
	}
	b.WriteString(RenderTable(Table{
		Title:      "This Month",
		Rows:       rows,
		RightAlign: map[int]bool{1: true},
	}))
	b.WriteString("\n  ")
	b.WriteString(RenderProgressBar(s.PaidBills, s.TotalBills, 30))
	b.WriteString(fmt.Sprintf(" %.0f%% paid\n\n", s.PaidPercentage))

	counts := make([]string, 0, len(s.ByStatus))
	for _, st := range calculator.Statuses() {
		counts = append(counts, StatusStyle(st).Render(fmt.Sprintf("%s %d", st, s.ByStatus[st])))
	}
	b.WriteString("  " + strings.Join(counts, mutedStyle.Render("  ·  ")) + "\n\n")

	title := fmt.Sprintf("Upcoming (next %d days)", s.HorizonDays)
	if len(s.Upcoming) == 0 {
		b.WriteString("  " + headerStyle.Render(title) + "\n")
		b.WriteString("  " + mutedStyle.Render("Nothing due.") + "\n")
		return b.String()
	}
	b.WriteString(RenderBills(title, s.Upcoming))
	return b.String()
}

// RenderCategories renders the category metadata table.
func RenderCategories() string {
	cats := models.Categories()
	rows := make([][]string, len(cats))
	for i, c := range cats {
		info := c.Info()
		rows[i] = []string{string(c), info.Icon, info.Label}
	}
	return RenderTable(Table{
		Title:   "Categories",
		Headers: []string{"Value", "Icon", "Label"},
		Rows:    rows,
	})
}

// RenderPaymentMethods renders the payment method table.
func RenderPaymentMethods() string {
	methods := models.PaymentMethods()
	rows := make([][]string, len(methods))
	for i, m := range methods {
		rows[i] = []string{string(m), m.Label()}
	}
	return RenderTable(Table{
		Title:   "Payment Methods",
		Headers: []string{"Value", "Label"},
		Rows:    rows,
	})
}
