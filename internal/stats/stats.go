// Package stats derives dashboard figures from the raw entity lists. All
// functions are pure: no state, no I/O, safe to call on every request.
package stats

import (
	"strings"
	"time"

	"go-resto-manager/internal/models"
)

const dateLayout = "2006-01-02"

// Today renders the canonical yyyy-MM-dd day used across all records.
func Today(now time.Time) string {
	return now.Format(dateLayout)
}

// ComputeDashboard rolls orders, expenses and debts up into the six
// dashboard figures. "Today" means string equality on the record's date;
// debt totals are all-time, not just today's.
func ComputeDashboard(orders []models.Order, expenses []models.Expense, debts []models.Debt, now time.Time) models.DashboardStats {
	today := Today(now)

	var s models.DashboardStats
	var paidToday float64

	for _, o := range orders {
		if o.Date != today {
			continue
		}
		s.TotalSalesToday += o.TotalPrice
		if o.IsPaid {
			paidToday += o.TotalPrice
		}
	}
	for _, e := range expenses {
		if e.Date == today {
			s.TotalExpensesToday += e.Amount
		}
	}
	for _, d := range debts {
		s.TotalDebts += d.TotalDebt
		s.UnpaidDebts += d.Remaining
	}

	s.NetProfit = s.TotalSalesToday - s.TotalExpensesToday
	s.AvailableCash = paidToday - s.TotalExpensesToday
	return s
}

// WeeklyBucket is one day's summed sales for the weekly chart.
type WeeklyBucket struct {
	Name  string  `json:"name"`
	Sales float64 `json:"sales"`
}

var dayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// WeeklySales buckets this week's order totals by weekday, Sunday first.
// Orders outside the current Sunday-to-Saturday week are left out entirely,
// never wrapped into a bucket.
func WeeklySales(orders []models.Order, now time.Time) []WeeklyBucket {
	buckets := make([]WeeklyBucket, 7)
	for i, name := range dayNames {
		buckets[i] = WeeklyBucket{Name: name}
	}

	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := day.AddDate(0, 0, -int(day.Weekday()))
	weekEnd := weekStart.AddDate(0, 0, 6)

	for _, o := range orders {
		d, err := time.ParseInLocation(dateLayout, o.Date, now.Location())
		if err != nil {
			continue
		}
		if d.Before(weekStart) || d.After(weekEnd) {
			continue
		}
		buckets[int(d.Weekday())].Sales += o.TotalPrice
	}
	return buckets
}

// BreakdownEntry is one expense category's total.
type BreakdownEntry struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// ExpenseBreakdown sums expenses per category, labeled for humans
// ("food_supplies" becomes "Food supplies"). Entries keep the order in
// which their category was first seen.
func ExpenseBreakdown(expenses []models.Expense) []BreakdownEntry {
	index := make(map[string]int)
	var out []BreakdownEntry

	for _, e := range expenses {
		label := humanize(string(e.Type))
		i, ok := index[label]
		if !ok {
			i = len(out)
			index[label] = i
			out = append(out, BreakdownEntry{Name: label})
		}
		out[i].Value += e.Amount
	}
	return out
}

func humanize(category string) string {
	label := strings.ReplaceAll(category, "_", " ")
	if label == "" {
		return label
	}
	return strings.ToUpper(label[:1]) + label[1:]
}

// LowStock returns the menu items at or below the threshold. The boundary
// is inclusive: an item with exactly threshold units counts as low.
func LowStock(items []models.MenuItem, threshold int) []models.MenuItem {
	var out []models.MenuItem
	for _, item := range items {
		if item.AvailableQty <= threshold {
			out = append(out, item)
		}
	}
	return out
}

// Dated is any record carrying a yyyy-MM-dd calendar day.
type Dated interface {
	EntryDate() string
}

// FilterByDateRange keeps the records dated within [start, end], inclusive
// of both whole days. Records with unparseable dates are dropped.
func FilterByDateRange[T Dated](items []T, start, end time.Time) []T {
	from := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	to := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 0, end.Location())

	var out []T
	for _, item := range items {
		d, err := time.ParseInLocation(dateLayout, item.EntryDate(), start.Location())
		if err != nil {
			continue
		}
		if d.Before(from) || d.After(to) {
			continue
		}
		out = append(out, item)
	}
	return out
}
