package calculator

import (
	"fmt"
	"time"

	"github.com/mmynk/billtracker/internal/models"
)

// Status is the display classification of a bill.
type Status string

const (
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
	StatusUrgent  Status = "urgent"
	StatusWarning Status = "warning"
	StatusNormal  Status = "normal"
)

// Thresholds, inclusive, in days until due.
const (
	UrgentWithinDays  = 3
	WarningWithinDays = 7
)

// Statuses returns every status, most to least pressing after paid.
func Statuses() []Status {
	return []Status{StatusPaid, StatusOverdue, StatusUrgent, StatusWarning, StatusNormal}
}

// Classify maps the paid flag and days until due to a Status.
// Paid wins over everything; overdue is strictly negative.
func Classify(isPaid bool, daysUntilDue int) Status {
	switch {
	case isPaid:
		return StatusPaid
	case daysUntilDue < 0:
		return StatusOverdue
	case daysUntilDue <= UrgentWithinDays:
		return StatusUrgent
	case daysUntilDue <= WarningWithinDays:
		return StatusWarning
	default:
		return StatusNormal
	}
}

// StatusOf classifies bill as of today.
func StatusOf(bill models.Bill, today time.Time) Status {
	return Classify(bill.IsPaid, DaysUntilDue(bill.DueDate, today))
}

// Label is the short status text shown next to a bill.
func Label(isPaid bool, daysUntilDue int) string {
	switch {
	case isPaid:
		return "Paid"
	case daysUntilDue < 0:
		return fmt.Sprintf("Overdue by %d days", -daysUntilDue)
	case daysUntilDue == 0:
		return "Due today"
	default:
		return fmt.Sprintf("Due in %d days", daysUntilDue)
	}
}

// StatusLabel returns the status text for bill as of today.
func StatusLabel(bill models.Bill, today time.Time) string {
	return Label(bill.IsPaid, DaysUntilDue(bill.DueDate, today))
}

// BillView is a bill together with its derived display fields.
type BillView struct {
	models.Bill
	DaysUntilDue int    `json:"daysUntilDue"`
	Status       Status `json:"status"`
	StatusLabel  string `json:"statusLabel"`
	DueDayLabel  string `json:"dueDayLabel"`
}

// View computes the display fields of bill as of today.
func View(bill models.Bill, today time.Time) BillView {
	days := DaysUntilDue(bill.DueDate, today)
	return BillView{
		Bill:         bill,
		DaysUntilDue: days,
		Status:       Classify(bill.IsPaid, days),
		StatusLabel:  Label(bill.IsPaid, days),
		DueDayLabel:  FormatDueDay(bill.DueDate),
	}
}

// Views maps View over bills, preserving order.
func Views(bills []models.Bill, today time.Time) []BillView {
	views := make([]BillView, len(bills))
	for i, b := range bills {
		views[i] = View(b, today)
	}
	return views
}
