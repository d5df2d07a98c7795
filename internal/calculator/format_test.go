package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestOrdinalSuffix(t *testing.T) {
	tests := map[int]string{
		1: "st", 2: "nd", 3: "rd", 4: "th", 9: "th", 10: "th",
		11: "th", 12: "th", 13: "th", 14: "th",
		21: "st", 22: "nd", 23: "rd", 24: "th",
		30: "th", 31: "st",
	}
	for day, want := range tests {
		if got := OrdinalSuffix(day); got != want {
			t.Errorf("OrdinalSuffix(%d) = %q, want %q", day, got, want)
		}
	}
}

func TestFormatDueDay(t *testing.T) {
	for day, want := range map[int]string{1: "1st", 12: "12th", 23: "23rd", 31: "31st"} {
		if got := FormatDueDay(day); got != want {
			t.Errorf("FormatDueDay(%d) = %q, want %q", day, got, want)
		}
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"5", "$5.00"},
		{"42.1", "$42.10"},
		{"999.999", "$1,000.00"},
		{"1234.5", "$1,234.50"},
		{"1234567.89", "$1,234,567.89"},
		{"-80.25", "-$80.25"},
	}
	for _, tt := range tests {
		if got := FormatCurrency(decimal.RequireFromString(tt.in)); got != tt.want {
			t.Errorf("FormatCurrency(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
