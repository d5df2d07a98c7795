package calculator

import (
	"testing"
	"time"

	"github.com/mmynk/billtracker/internal/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		isPaid bool
		days   int
		want   Status
	}{
		{true, -10, StatusPaid},
		{true, 0, StatusPaid},
		{true, 30, StatusPaid},
		{false, -1, StatusOverdue},
		{false, -30, StatusOverdue},
		{false, 0, StatusUrgent},
		{false, 3, StatusUrgent},
		{false, 4, StatusWarning},
		{false, 7, StatusWarning},
		{false, 8, StatusNormal},
		{false, 31, StatusNormal},
	}

	for _, tt := range tests {
		if got := Classify(tt.isPaid, tt.days); got != tt.want {
			t.Errorf("Classify(%v, %d) = %s, want %s", tt.isPaid, tt.days, got, tt.want)
		}
	}
}

func TestClassify_ExhaustiveAndExclusive(t *testing.T) {
	known := make(map[Status]bool)
	for _, s := range Statuses() {
		known[s] = true
	}

	for _, paid := range []bool{true, false} {
		for days := -40; days <= 40; days++ {
			got := Classify(paid, days)
			if !known[got] {
				t.Fatalf("Classify(%v, %d) = %q, not a known status", paid, days, got)
			}

			// Exactly one predicate holds for each input.
			matches := 0
			if paid {
				matches++
			}
			if !paid && days < 0 {
				matches++
			}
			if !paid && days >= 0 && days <= 3 {
				matches++
			}
			if !paid && days >= 4 && days <= 7 {
				matches++
			}
			if !paid && days > 7 {
				matches++
			}
			if matches != 1 {
				t.Fatalf("(%v, %d) matched %d predicates", paid, days, matches)
			}
		}
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		isPaid bool
		days   int
		want   string
	}{
		{true, -5, "Paid"},
		{true, 0, "Paid"},
		{false, -1, "Overdue by 1 days"},
		{false, -12, "Overdue by 12 days"},
		{false, 0, "Due today"},
		{false, 1, "Due in 1 days"},
		{false, 9, "Due in 9 days"},
	}

	for _, tt := range tests {
		if got := Label(tt.isPaid, tt.days); got != tt.want {
			t.Errorf("Label(%v, %d) = %q, want %q", tt.isPaid, tt.days, got, tt.want)
		}
	}
}

func TestStatusLifecycleAcrossTheMonth(t *testing.T) {
	bill := models.Bill{ID: "water", DueDate: 15}

	tests := []struct {
		today     time.Time
		wantDays  int
		want      Status
		wantLabel string
	}{
		{date(2026, time.October, 10), 5, StatusWarning, "Due in 5 days"},
		{date(2026, time.October, 13), 2, StatusUrgent, "Due in 2 days"},
		{date(2026, time.October, 15), 0, StatusUrgent, "Due today"},
		{date(2026, time.October, 16), 30, StatusNormal, "Due in 30 days"},
	}

	for _, tt := range tests {
		t.Run(tt.today.Format("Jan 2"), func(t *testing.T) {
			if got := DaysUntilDue(bill.DueDate, tt.today); got != tt.wantDays {
				t.Errorf("DaysUntilDue = %d, want %d", got, tt.wantDays)
			}
			if got := StatusOf(bill, tt.today); got != tt.want {
				t.Errorf("StatusOf = %s, want %s", got, tt.want)
			}
			if got := StatusLabel(bill, tt.today); got != tt.wantLabel {
				t.Errorf("StatusLabel = %q, want %q", got, tt.wantLabel)
			}
		})
	}

	paid := bill
	paid.IsPaid = true
	if got := StatusOf(paid, date(2026, time.October, 14)); got != StatusPaid {
		t.Errorf("paid bill StatusOf = %s, want paid", got)
	}
}

func TestView(t *testing.T) {
	bill := models.Bill{ID: "phone", Name: "Phone", DueDate: 22}
	v := View(bill, date(2026, time.October, 16))

	if v.ID != "phone" {
		t.Errorf("embedded bill not carried: %+v", v.Bill)
	}
	if v.DaysUntilDue != 6 || v.Status != StatusWarning || v.StatusLabel != "Due in 6 days" {
		t.Errorf("View = %+v", v)
	}
	if v.DueDayLabel != "22nd" {
		t.Errorf("DueDayLabel = %q, want 22nd", v.DueDayLabel)
	}

	views := Views([]models.Bill{bill, {ID: "x", DueDate: 16}}, date(2026, time.October, 16))
	if len(views) != 2 || views[1].Status != StatusUrgent {
		t.Errorf("Views = %+v", views)
	}
}
