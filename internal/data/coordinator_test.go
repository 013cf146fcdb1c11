package data

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go-resto-manager/internal/models"
	"go-resto-manager/internal/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecords[T any] struct {
	items     []T
	keyOf     func(T) string
	withKey   func(T, string) T
	listErr   error
	createErr error
	updateErr error
	deleteErr error

	created []T
	patches map[string][]map[string]any
	deleted []string
	seq     int
}

func (f *fakeRecords[T]) List(ctx context.Context) ([]T, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]T(nil), f.items...), nil
}

func (f *fakeRecords[T]) Create(ctx context.Context, item T) (T, error) {
	if f.createErr != nil {
		var zero T
		return zero, f.createErr
	}
	f.seq++
	if f.keyOf(item) == "" {
		item = f.withKey(item, fmt.Sprintf("key_%d", f.seq))
	}
	f.items = append(f.items, item)
	f.created = append(f.created, item)
	return item, nil
}

func (f *fakeRecords[T]) Update(ctx context.Context, key string, patch map[string]any) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if f.patches == nil {
		f.patches = make(map[string][]map[string]any)
	}
	f.patches[key] = append(f.patches[key], patch)
	return nil
}

func (f *fakeRecords[T]) Delete(ctx context.Context, key string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, key)
	return nil
}

type fixture struct {
	menu     *fakeRecords[models.MenuItem]
	orders   *fakeRecords[models.Order]
	expenses *fakeRecords[models.Expense]
	debts    *fakeRecords[models.Debt]
	notes    *fakeRecords[models.Note]
	coord    *Coordinator
	now      time.Time
}

func newFixture() *fixture {
	f := &fixture{
		menu: &fakeRecords[models.MenuItem]{
			keyOf:   func(m models.MenuItem) string { return m.Key },
			withKey: func(m models.MenuItem, k string) models.MenuItem { m.Key = k; return m },
		},
		orders: &fakeRecords[models.Order]{
			keyOf:   func(o models.Order) string { return o.Key },
			withKey: func(o models.Order, k string) models.Order { o.Key = k; return o },
		},
		expenses: &fakeRecords[models.Expense]{
			keyOf:   func(e models.Expense) string { return e.Key },
			withKey: func(e models.Expense, k string) models.Expense { e.Key = k; return e },
		},
		debts: &fakeRecords[models.Debt]{
			keyOf:   func(d models.Debt) string { return d.Key },
			withKey: func(d models.Debt, k string) models.Debt { d.Key = k; return d },
		},
		notes: &fakeRecords[models.Note]{
			keyOf:   func(n models.Note) string { return n.Key },
			withKey: func(n models.Note, k string) models.Note { n.Key = k; return n },
		},
		now: time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC),
	}
	f.coord = New(Stores{
		Menu:     f.menu,
		Orders:   f.orders,
		Expenses: f.expenses,
		Debts:    f.debts,
		Notes:    f.notes,
	})
	f.coord.now = func() time.Time { return f.now }
	return f
}

func (f *fixture) today() string { return stats.Today(f.now) }

func TestAddOrderUnpaidCreatesDebt(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.coord.AddOrder(ctx, models.Order{
		Date:         f.today(),
		CustomerName: "Ahmed Hassan",
		TotalPrice:   66000,
		IsPaid:       false,
	})
	require.NoError(t, err)

	require.Len(t, f.debts.created, 1)
	debt := f.debts.created[0]
	assert.Equal(t, "Ahmed Hassan", debt.CustomerName)
	assert.Equal(t, 66000.0, debt.TotalDebt)
	assert.Equal(t, 66000.0, debt.Remaining)
	assert.Equal(t, 0.0, debt.Paid)
	assert.Equal(t, f.today(), debt.LastUpdated)

	require.Len(t, f.coord.Debts(), 1)
}

func TestAddOrderUnpaidAccruesExistingDebt(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.coord.debts = []models.Debt{
		{Key: "debt_1", CustomerName: "Ahmed Hassan", TotalDebt: 66000, Paid: 0, Remaining: 66000, LastUpdated: "2026-08-20"},
	}

	_, err := f.coord.AddOrder(ctx, models.Order{
		Date:         f.today(),
		CustomerName: "Ahmed Hassan",
		TotalPrice:   14000,
		IsPaid:       false,
	})
	require.NoError(t, err)

	assert.Empty(t, f.debts.created, "no new debt for an exact name match")
	require.Len(t, f.debts.patches["debt_1"], 1)
	patch := f.debts.patches["debt_1"][0]
	assert.Equal(t, 80000.0, patch["total_debt"])
	assert.Equal(t, 80000.0, patch["remaining"])
	assert.Equal(t, f.today(), patch["last_updated"])

	debts := f.coord.Debts()
	require.Len(t, debts, 1)
	assert.Equal(t, 80000.0, debts[0].Remaining)
}

func TestAddOrderNameVariantCreatesDuplicateDebt(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.coord.debts = []models.Debt{
		{Key: "debt_1", CustomerName: "Ahmed Hassan", TotalDebt: 66000, Remaining: 66000},
	}

	// Different spelling does not merge; a second ledger appears.
	_, err := f.coord.AddOrder(ctx, models.Order{
		Date:         f.today(),
		CustomerName: "ahmed hassan",
		TotalPrice:   5000,
		IsPaid:       false,
	})
	require.NoError(t, err)

	assert.Len(t, f.debts.created, 1)
	assert.Len(t, f.coord.Debts(), 2)
}

func TestAddOrderPaidTouchesNoDebt(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.coord.debts = []models.Debt{
		{Key: "debt_1", CustomerName: "John Doe", TotalDebt: 1000, Remaining: 1000},
	}

	_, err := f.coord.AddOrder(ctx, models.Order{
		Date:         f.today(),
		CustomerName: "John Doe",
		TotalPrice:   40000,
		IsPaid:       true,
	})
	require.NoError(t, err)

	assert.Empty(t, f.debts.created)
	assert.Empty(t, f.debts.patches)
}

func TestAddOrderDrawsDownStock(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.coord.menu = []models.MenuItem{
		{Key: "menu_1", Name: "Chicken Curry", AvailableQty: 25},
		{Key: "menu_2", Name: "Beef Stew", AvailableQty: 2},
	}

	_, err := f.coord.AddOrder(ctx, models.Order{
		Date:         f.today(),
		CustomerName: "Jane Smith",
		IsPaid:       true,
		Items: []models.OrderItem{
			{MenuItemKey: "menu_1", Name: "Chicken Curry", Quantity: 2},
			{MenuItemKey: "menu_2", Name: "Beef Stew", Quantity: 5},
			{MenuItemKey: "menu_gone", Name: "Removed Dish", Quantity: 1},
		},
	})
	require.NoError(t, err)

	require.Len(t, f.menu.patches["menu_1"], 1)
	assert.Equal(t, 23, f.menu.patches["menu_1"][0]["available_qty"])
	require.Len(t, f.menu.patches["menu_2"], 1)
	assert.Equal(t, -3, f.menu.patches["menu_2"][0]["available_qty"], "stock may go negative")
	assert.NotContains(t, f.menu.patches, "menu_gone", "unknown menu key is skipped")

	menu := f.coord.Menu()
	assert.Equal(t, 23, menu[0].AvailableQty)
	assert.Equal(t, -3, menu[1].AvailableQty)
}

func TestSettlementDebtFailureStillDrawsDownStock(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.coord.menu = []models.MenuItem{{Key: "menu_1", Name: "Chapati", AvailableQty: 50}}
	f.debts.createErr = errors.New("store down")

	_, err := f.coord.AddOrder(ctx, models.Order{
		Date:         f.today(),
		CustomerName: "Peter Brown",
		TotalPrice:   4000,
		IsPaid:       false,
		Items:        []models.OrderItem{{MenuItemKey: "menu_1", Name: "Chapati", Quantity: 2}},
	})
	require.NoError(t, err, "order creation succeeded; settlement is best effort")

	assert.Empty(t, f.coord.Debts())
	require.Len(t, f.menu.patches["menu_1"], 1)
	assert.Equal(t, 48, f.menu.patches["menu_1"][0]["available_qty"])
}

func TestAddOrderStoreFailureLeavesStateUntouched(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.orders.createErr = errors.New("store down")

	_, err := f.coord.AddOrder(ctx, models.Order{Date: f.today(), TotalPrice: 100})
	require.Error(t, err)
	assert.Empty(t, f.coord.Orders())
}

func TestRefreshKeepsSeededDataForEmptyCollections(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.coord.SeedDemo()
	seededMenu := f.coord.Menu()
	require.NotEmpty(t, seededMenu)

	// Store has orders but nothing else.
	f.orders.items = []models.Order{{Key: "o1", Date: f.today(), TotalPrice: 500, IsPaid: true}}

	require.NoError(t, f.coord.Refresh(ctx))

	assert.Equal(t, seededMenu, f.coord.Menu(), "empty fetch keeps demo menu")
	orders := f.coord.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, "o1", orders[0].Key)
}

func TestRefreshAbortsWhollyOnFailure(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.menu.items = []models.MenuItem{{Key: "m1", Name: "Coffee"}}
	f.debts.listErr = errors.New("store unreachable")

	err := f.coord.Refresh(ctx)
	require.Error(t, err)
	assert.Empty(t, f.coord.Menu(), "partial results are not applied")
}

func TestStatsRecomputedAfterMutations(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.coord.AddOrder(ctx, models.Order{Date: f.today(), TotalPrice: 150, IsPaid: true})
	require.NoError(t, err)
	assert.Equal(t, 150.0, f.coord.Stats().TotalSalesToday)

	_, err = f.coord.AddExpense(ctx, models.Expense{Date: f.today(), Type: models.ExpenseDrinks, Amount: 30})
	require.NoError(t, err)
	s := f.coord.Stats()
	assert.Equal(t, 30.0, s.TotalExpensesToday)
	assert.Equal(t, 120.0, s.NetProfit)
	assert.Equal(t, 120.0, s.AvailableCash)

	expenses := f.coord.Expenses()
	require.Len(t, expenses, 1)
	require.NoError(t, f.coord.DeleteExpense(ctx, expenses[0].Key))
	assert.Equal(t, 0.0, f.coord.Stats().TotalExpensesToday)
}

func TestUpdateReplacesByKey(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	created, err := f.coord.AddMenuItem(ctx, models.MenuItem{Name: "Soda", Price: 3000, AvailableQty: 60, Category: "Beverages"})
	require.NoError(t, err)
	require.NotEmpty(t, created.Key)

	updated := created
	updated.Price = 3500
	require.NoError(t, f.coord.UpdateMenuItem(ctx, created.Key, updated))

	menu := f.coord.Menu()
	require.Len(t, menu, 1)
	assert.Equal(t, 3500.0, menu[0].Price)
	assert.Equal(t, created.Key, menu[0].Key)

	require.NoError(t, f.coord.DeleteMenuItem(ctx, created.Key))
	assert.Empty(t, f.coord.Menu())
	assert.Equal(t, []string{created.Key}, f.menu.deleted)
}
