package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill represents a recurring monthly bill.
// The paid flag only describes the current month; there is no payment history
// beyond LastPaidDate.
type Bill struct {
	// ID is the unique identifier for the bill (UUID format).
	// Assigned by the store on creation and never changed.
	ID string `json:"id"`

	// Name is the display name (e.g., "City Water", "Visa").
	Name string `json:"name"`

	// Category groups bills for filtering and display.
	Category Category `json:"category"`

	// MonthlyAmount is the amount due every month, two decimal places.
	MonthlyAmount decimal.Decimal `json:"monthlyAmount"`

	// DueDate is the day of month (1-31) the bill is due.
	// It is not checked against the length of any particular month.
	DueDate int `json:"dueDate"`

	// PaymentMethod is how the bill is usually paid.
	PaymentMethod PaymentMethod `json:"paymentMethod"`

	// IsPaid reports whether this month's payment has been made.
	IsPaid bool `json:"isPaid"`

	// LastPaidDate is when the bill was last marked paid, nil if never.
	LastPaidDate *time.Time `json:"lastPaidDate,omitempty"`

	// Notes is optional free text.
	Notes string `json:"notes,omitempty"`

	// CreatedAt is fixed when the bill is created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is maintained by the store and not exposed to clients.
	UpdatedAt time.Time `json:"-"`
}

// BillInput carries the client-editable fields of a Bill.
// It is the request body of both create and full update.
type BillInput struct {
	Name          string          `json:"name"`
	Category      Category        `json:"category"`
	MonthlyAmount decimal.Decimal `json:"monthlyAmount"`
	DueDate       int             `json:"dueDate"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	IsPaid        bool            `json:"isPaid"`
	Notes         string          `json:"notes"`
}

// Apply copies the input's fields onto b. Identity, timestamps and
// LastPaidDate are left alone.
func (in BillInput) Apply(b *Bill) {
	b.Name = in.Name
	b.Category = in.Category
	b.MonthlyAmount = in.MonthlyAmount.Round(2)
	b.DueDate = in.DueDate
	b.PaymentMethod = in.PaymentMethod
	b.IsPaid = in.IsPaid
	b.Notes = in.Notes
}
