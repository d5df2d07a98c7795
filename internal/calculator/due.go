// Package calculator holds the pure date and status functions shared by the
// API, the dashboard and the CLI. Nothing here touches storage or the clock:
// every function takes the reference "today" explicitly.
package calculator

import (
	"sort"
	"time"

	"github.com/mmynk/billtracker/internal/models"
)

const day = 24 * time.Hour

// DaysUntilDue returns the number of calendar days from today to the next
// occurrence of dueDay.
//
// If dueDay is today or later this month the target is in the current month,
// otherwise it rolls into next month (and next year after December). A due day
// past the end of the target month overflows into the following month, the
// same way time.Date normalizes it.
//
// Only the civil date of today matters. Both ends are placed on UTC midnights
// so a daylight saving change never yields a 23 or 25 hour day.
func DaysUntilDue(dueDay int, today time.Time) int {
	year, month, current := today.Date()

	if dueDay < current {
		month++
	}

	start := time.Date(year, today.Month(), current, 0, 0, 0, 0, time.UTC)
	target := time.Date(year, month, dueDay, 0, 0, 0, 0, time.UTC)

	diff := target.Sub(start)
	days := int(diff / day)
	if diff%day > 0 {
		days++
	}
	return days
}

// SortByDueDate returns a copy of bills ordered by ascending days until due.
// Bills due on the same day keep their input order.
func SortByDueDate(bills []models.Bill, today time.Time) []models.Bill {
	sorted := make([]models.Bill, len(bills))
	copy(sorted, bills)

	days := make(map[int]int, len(sorted))
	for _, b := range sorted {
		if _, ok := days[b.DueDate]; !ok {
			days[b.DueDate] = DaysUntilDue(b.DueDate, today)
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return days[sorted[i].DueDate] < days[sorted[j].DueDate]
	})
	return sorted
}

// UpcomingBills returns the unpaid bills due within horizonDays of today.
// Bills already past due count as upcoming.
func UpcomingBills(bills []models.Bill, today time.Time, horizonDays int) []models.Bill {
	upcoming := []models.Bill{}
	for _, b := range bills {
		if b.IsPaid {
			continue
		}
		if DaysUntilDue(b.DueDate, today) <= horizonDays {
			upcoming = append(upcoming, b)
		}
	}
	return upcoming
}

// FilterByCategory returns the bills in category c. An empty c matches all.
func FilterByCategory(bills []models.Bill, c models.Category) []models.Bill {
	if c == "" {
		return bills
	}
	filtered := []models.Bill{}
	for _, b := range bills {
		if b.Category == c {
			filtered = append(filtered, b)
		}
	}
	return filtered
}
