package calculator

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// OrdinalSuffix returns the English ordinal suffix for day: "st", "nd", "rd"
// or "th". 11, 12 and 13 always take "th".
func OrdinalSuffix(day int) string {
	if day%100 >= 11 && day%100 <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// FormatDueDay renders a due day as an ordinal, e.g. 22 -> "22nd".
func FormatDueDay(day int) string {
	return strconv.Itoa(day) + OrdinalSuffix(day)
}

// FormatCurrency formats amount as US dollars, e.g. 1234.5 -> "$1,234.50".
func FormatCurrency(amount decimal.Decimal) string {
	s := amount.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if amount.IsNegative() {
		b.WriteString("-")
	}
	b.WriteString("$")

	lead := len(whole) % 3
	if lead > 0 {
		b.WriteString(whole[:lead])
	}
	for i := lead; i < len(whole); i += 3 {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(whole[i : i+3])
	}
	b.WriteString(".")
	b.WriteString(frac)
	return b.String()
}
