package stats

import (
	"reflect"
	"testing"
	"time"

	"go-resto-manager/internal/models"
)

var now = time.Date(2026, 8, 26, 14, 30, 0, 0, time.UTC) // a Wednesday

func day(offset int) string {
	return now.AddDate(0, 0, offset).Format("2006-01-02")
}

func TestComputeDashboard(t *testing.T) {
	orders := []models.Order{
		{Date: day(0), TotalPrice: 100, IsPaid: true},
		{Date: day(0), TotalPrice: 50, IsPaid: false},
		{Date: day(-1), TotalPrice: 1000, IsPaid: true},
	}
	expenses := []models.Expense{
		{Date: day(0), Type: models.ExpenseFoodSupplies, Amount: 30},
	}

	s := ComputeDashboard(orders, expenses, nil, now)

	if s.TotalSalesToday != 150 {
		t.Errorf("TotalSalesToday = %v, want 150", s.TotalSalesToday)
	}
	if s.TotalExpensesToday != 30 {
		t.Errorf("TotalExpensesToday = %v, want 30", s.TotalExpensesToday)
	}
	if s.NetProfit != 120 {
		t.Errorf("NetProfit = %v, want 120", s.NetProfit)
	}
	if s.AvailableCash != 70 {
		t.Errorf("AvailableCash = %v, want 70", s.AvailableCash)
	}
}

func TestComputeDashboardDebts(t *testing.T) {
	debts := []models.Debt{
		{CustomerName: "Ahmed Hassan", TotalDebt: 66000, Paid: 0, Remaining: 66000},
		{CustomerName: "Sarah Wilson", TotalDebt: 45000, Paid: 20000, Remaining: 25000},
	}

	s := ComputeDashboard(nil, nil, debts, now)

	if s.TotalDebts != 111000 {
		t.Errorf("TotalDebts = %v, want 111000", s.TotalDebts)
	}
	if s.UnpaidDebts != 91000 {
		t.Errorf("UnpaidDebts = %v, want 91000", s.UnpaidDebts)
	}
}

func TestComputeDashboardIdempotent(t *testing.T) {
	orders := []models.Order{{Date: day(0), TotalPrice: 42, IsPaid: true}}
	expenses := []models.Expense{{Date: day(0), Type: models.ExpenseGas, Amount: 7}}
	debts := []models.Debt{{TotalDebt: 10, Remaining: 4}}

	first := ComputeDashboard(orders, expenses, debts, now)
	second := ComputeDashboard(orders, expenses, debts, now)

	if first != second {
		t.Errorf("repeated call diverged: %+v vs %+v", first, second)
	}
}

func TestWeeklySales(t *testing.T) {
	orders := []models.Order{
		{Date: day(0), TotalPrice: 100},  // Wednesday
		{Date: day(0), TotalPrice: 40},   // same day, summed
		{Date: day(-3), TotalPrice: 60},  // Sunday, start of week
		{Date: day(3), TotalPrice: 25},   // Saturday, end of week
		{Date: day(-4), TotalPrice: 999}, // previous week, excluded
		{Date: day(4), TotalPrice: 999},  // next week, excluded
		{Date: "garbage", TotalPrice: 999},
	}

	buckets := WeeklySales(orders, now)

	if len(buckets) != 7 {
		t.Fatalf("got %d buckets, want 7", len(buckets))
	}
	want := map[string]float64{
		"Sun": 60, "Mon": 0, "Tue": 0, "Wed": 140, "Thu": 0, "Fri": 0, "Sat": 25,
	}
	for i, b := range buckets {
		if b.Name != dayNames[i] {
			t.Errorf("bucket %d name = %q, want %q", i, b.Name, dayNames[i])
		}
		if b.Sales != want[b.Name] {
			t.Errorf("%s sales = %v, want %v", b.Name, b.Sales, want[b.Name])
		}
	}
}

func TestExpenseBreakdown(t *testing.T) {
	expenses := []models.Expense{
		{Type: models.ExpenseFoodSupplies, Amount: 50},
		{Type: models.ExpenseFoodSupplies, Amount: 20},
		{Type: models.ExpenseDrinks, Amount: 10},
	}

	got := ExpenseBreakdown(expenses)

	want := []BreakdownEntry{
		{Name: "Food supplies", Value: 70},
		{Name: "Drinks", Value: 10},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExpenseBreakdown() = %+v, want %+v", got, want)
	}
}

func TestLowStockBoundary(t *testing.T) {
	items := []models.MenuItem{
		{Name: "Beans (Foul)", AvailableQty: 8},
		{Name: "Chapati", AvailableQty: 10},
		{Name: "Soda", AvailableQty: 11},
	}

	low := LowStock(items, 10)

	if len(low) != 2 {
		t.Fatalf("got %d low-stock items, want 2", len(low))
	}
	for _, item := range low {
		if item.AvailableQty > 10 {
			t.Errorf("%s with qty %d should not be low stock", item.Name, item.AvailableQty)
		}
	}
}

func TestFilterByDateRange(t *testing.T) {
	notes := []models.Note{
		{Description: "before", Date: day(-5)},
		{Description: "start", Date: day(-2)},
		{Description: "middle", Date: day(-1)},
		{Description: "end", Date: day(0)},
		{Description: "after", Date: day(1)},
	}

	got := FilterByDateRange(notes, now.AddDate(0, 0, -2), now)

	if len(got) != 3 {
		t.Fatalf("got %d notes, want 3", len(got))
	}
	for _, n := range got {
		if n.Description == "before" || n.Description == "after" {
			t.Errorf("note %q should have been filtered out", n.Description)
		}
	}
}
