package models

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	MinDueDay = 1
	MaxDueDay = 31
)

// MaxMonthlyAmount is the largest amount a DECIMAL(10,2) column holds.
var MaxMonthlyAmount = decimal.RequireFromString("99999999.99")

// ValidationError lists every field of a BillInput that failed validation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %s", k, e.Fields[k])
	}
	return "invalid bill: " + strings.Join(parts, "; ")
}

// Validate checks the client-supplied fields of a bill.
// It returns nil or a *ValidationError.
func (in BillInput) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(in.Name) == "" {
		fields["name"] = "must not be empty"
	}
	if !in.Category.Valid() {
		fields["category"] = fmt.Sprintf("unknown category %q", in.Category)
	}
	switch {
	case in.MonthlyAmount.IsNegative():
		fields["monthlyAmount"] = "must not be negative"
	case in.MonthlyAmount.Round(2).GreaterThan(MaxMonthlyAmount):
		fields["monthlyAmount"] = "must not exceed " + MaxMonthlyAmount.StringFixed(2)
	}
	if in.DueDate < MinDueDay || in.DueDate > MaxDueDay {
		fields["dueDate"] = fmt.Sprintf("must be between %d and %d", MinDueDay, MaxDueDay)
	}
	if !in.PaymentMethod.Valid() {
		fields["paymentMethod"] = fmt.Sprintf("unknown payment method %q", in.PaymentMethod)
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
