package calculator

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/billtracker/internal/models"
)

// DefaultHorizonDays is how far ahead the dashboard looks for upcoming bills.
const DefaultHorizonDays = 7

// TotalMonthlyAmount sums MonthlyAmount over bills, paid or not.
func TotalMonthlyAmount(bills []models.Bill) decimal.Decimal {
	total := decimal.Zero
	for _, b := range bills {
		total = total.Add(b.MonthlyAmount)
	}
	return total
}

// Summary is the dashboard aggregate over a set of bills.
type Summary struct {
	TotalBills      int             `json:"totalBills"`
	PaidBills       int             `json:"paidBills"`
	UnpaidBills     int             `json:"unpaidBills"`
	PaidPercentage  float64         `json:"paidPercentage"`
	TotalMonthly    decimal.Decimal `json:"totalMonthly"`
	PaidAmount      decimal.Decimal `json:"paidAmount"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	HorizonDays     int             `json:"horizonDays"`
	UpcomingCount   int             `json:"upcomingCount"`
	Upcoming        []BillView      `json:"upcoming"`
	ByStatus        map[Status]int  `json:"byStatus"`
}

// Summarize computes the dashboard figures as of today. Upcoming bills are
// sorted by due date.
func Summarize(bills []models.Bill, today time.Time, horizonDays int) Summary {
	s := Summary{
		TotalBills:      len(bills),
		TotalMonthly:    TotalMonthlyAmount(bills),
		PaidAmount:      decimal.Zero,
		RemainingAmount: decimal.Zero,
		HorizonDays:     horizonDays,
		ByStatus:        make(map[Status]int, len(Statuses())),
	}
	for _, st := range Statuses() {
		s.ByStatus[st] = 0
	}

	for _, b := range bills {
		if b.IsPaid {
			s.PaidBills++
			s.PaidAmount = s.PaidAmount.Add(b.MonthlyAmount)
		} else {
			s.RemainingAmount = s.RemainingAmount.Add(b.MonthlyAmount)
		}
		s.ByStatus[StatusOf(b, today)]++
	}
	s.UnpaidBills = s.TotalBills - s.PaidBills

	if s.TotalBills > 0 {
		s.PaidPercentage = float64(s.PaidBills) / float64(s.TotalBills) * 100
	}

	upcoming := SortByDueDate(UpcomingBills(bills, today, horizonDays), today)
	s.UpcomingCount = len(upcoming)
	s.Upcoming = Views(upcoming, today)

	return s
}
