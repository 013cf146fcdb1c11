// Package data owns the in-memory mirror of every entity collection. The
// record store stays the system of record; the coordinator applies a
// mutation to memory only after the store has confirmed it, and recomputes
// the dashboard figures synchronously after every committed change, so the
// stats can never be stale relative to the lists.
package data

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"go-resto-manager/internal/models"
	"go-resto-manager/internal/stats"
	"go-resto-manager/internal/store"

	"golang.org/x/sync/errgroup"
)

// Records is the slice of the record store a coordinator needs for one
// collection. store.Collection satisfies it; tests plug in fakes.
type Records[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, key string, patch map[string]any) error
	Delete(ctx context.Context, key string) error
}

// Stores bundles the per-collection store access the coordinator uses.
type Stores struct {
	Menu     Records[models.MenuItem]
	Orders   Records[models.Order]
	Expenses Records[models.Expense]
	Debts    Records[models.Debt]
	Notes    Records[models.Note]
}

// FromStore adapts the real record store client.
func FromStore(s *store.Store) Stores {
	return Stores{
		Menu:     s.Menu,
		Orders:   s.Orders,
		Expenses: s.Expenses,
		Debts:    s.Debts,
		Notes:    s.Notes,
	}
}

// Coordinator is the single logical writer over the in-memory lists. The
// mutex stands in for the one UI thread the original browser app had.
type Coordinator struct {
	stores Stores
	now    func() time.Time

	mu       sync.RWMutex
	menu     []models.MenuItem
	orders   []models.Order
	expenses []models.Expense
	debts    []models.Debt
	notes    []models.Note
	stats    models.DashboardStats
}

func New(stores Stores) *Coordinator {
	return &Coordinator{
		stores: stores,
		now:    time.Now,
	}
}

// Refresh re-fetches all five collections in parallel. Any failure aborts
// the whole refresh and nothing is applied, so memory never holds a mix of
// old and new collections. A collection the store reports as genuinely
// empty keeps its current in-memory copy (which may be demo data); only
// non-empty fetches replace state.
func (c *Coordinator) Refresh(ctx context.Context) error {
	var (
		menu     []models.MenuItem
		orders   []models.Order
		expenses []models.Expense
		debts    []models.Debt
		notes    []models.Note
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { menu, err = c.stores.Menu.List(ctx); return })
	g.Go(func() (err error) { orders, err = c.stores.Orders.List(ctx); return })
	g.Go(func() (err error) { expenses, err = c.stores.Expenses.List(ctx); return })
	g.Go(func() (err error) { debts, err = c.stores.Debts.List(ctx); return })
	g.Go(func() (err error) { notes, err = c.stores.Notes.List(ctx); return })
	if err := g.Wait(); err != nil {
		log.Println("refresh aborted:", err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if len(menu) > 0 {
		c.menu = menu
	}
	if len(orders) > 0 {
		c.orders = orders
	}
	if len(expenses) > 0 {
		c.expenses = expenses
	}
	if len(debts) > 0 {
		c.debts = debts
	}
	if len(notes) > 0 {
		c.notes = notes
	}
	c.recompute()
	return nil
}

// recompute must be called with c.mu held.
func (c *Coordinator) recompute() {
	c.stats = stats.ComputeDashboard(c.orders, c.expenses, c.debts, c.now())
}

// Stats returns the figures derived from the latest committed lists.
func (c *Coordinator) Stats() models.DashboardStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

func (c *Coordinator) Menu() []models.MenuItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.MenuItem(nil), c.menu...)
}

func (c *Coordinator) Orders() []models.Order {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Order(nil), c.orders...)
}

func (c *Coordinator) Expenses() []models.Expense {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Expense(nil), c.expenses...)
}

func (c *Coordinator) Debts() []models.Debt {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Debt(nil), c.debts...)
}

func (c *Coordinator) Notes() []models.Note {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Note(nil), c.notes...)
}

// --- Menu mutations ---

func (c *Coordinator) AddMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	created, err := c.stores.Menu.Create(ctx, item)
	if err != nil {
		return models.MenuItem{}, err
	}
	c.mu.Lock()
	c.menu = append(c.menu, created)
	c.mu.Unlock()
	return created, nil
}

func (c *Coordinator) UpdateMenuItem(ctx context.Context, key string, item models.MenuItem) error {
	if err := c.stores.Menu.Update(ctx, key, patchOf(item)); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.menu {
		if c.menu[i].Key == key {
			item.Key = key
			c.menu[i] = item
			break
		}
	}
	return nil
}

func (c *Coordinator) DeleteMenuItem(ctx context.Context, key string) error {
	if err := c.stores.Menu.Delete(ctx, key); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.menu = removeByKey(c.menu, key, func(m models.MenuItem) string { return m.Key })
	return nil
}

// --- Order mutations ---

// AddOrder persists and registers the order, then runs settlement: debt
// accrual for unpaid orders and per-line stock draw-down. Settlement is
// best effort; a failed step is logged and later steps still run.
func (c *Coordinator) AddOrder(ctx context.Context, order models.Order) (models.Order, error) {
	created, err := c.stores.Orders.Create(ctx, order)
	if err != nil {
		return models.Order{}, err
	}
	c.mu.Lock()
	c.orders = append(c.orders, created)
	c.mu.Unlock()

	c.settle(ctx, created)

	c.mu.Lock()
	c.recompute()
	c.mu.Unlock()
	return created, nil
}

func (c *Coordinator) UpdateOrder(ctx context.Context, key string, order models.Order) error {
	if err := c.stores.Orders.Update(ctx, key, patchOf(order)); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.orders {
		if c.orders[i].Key == key {
			order.Key = key
			c.orders[i] = order
			break
		}
	}
	c.recompute()
	return nil
}

func (c *Coordinator) DeleteOrder(ctx context.Context, key string) error {
	if err := c.stores.Orders.Delete(ctx, key); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.orders = removeByKey(c.orders, key, func(o models.Order) string { return o.Key })
	c.recompute()
	return nil
}

// --- Expense mutations ---

func (c *Coordinator) AddExpense(ctx context.Context, expense models.Expense) (models.Expense, error) {
	created, err := c.stores.Expenses.Create(ctx, expense)
	if err != nil {
		return models.Expense{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expenses = append(c.expenses, created)
	c.recompute()
	return created, nil
}

func (c *Coordinator) UpdateExpense(ctx context.Context, key string, expense models.Expense) error {
	if err := c.stores.Expenses.Update(ctx, key, patchOf(expense)); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.expenses {
		if c.expenses[i].Key == key {
			expense.Key = key
			c.expenses[i] = expense
			break
		}
	}
	c.recompute()
	return nil
}

func (c *Coordinator) DeleteExpense(ctx context.Context, key string) error {
	if err := c.stores.Expenses.Delete(ctx, key); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expenses = removeByKey(c.expenses, key, func(e models.Expense) string { return e.Key })
	c.recompute()
	return nil
}

// --- Debt mutations ---

func (c *Coordinator) AddDebt(ctx context.Context, debt models.Debt) (models.Debt, error) {
	created, err := c.stores.Debts.Create(ctx, debt)
	if err != nil {
		return models.Debt{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.debts = append(c.debts, created)
	c.recompute()
	return created, nil
}

func (c *Coordinator) UpdateDebt(ctx context.Context, key string, debt models.Debt) error {
	if err := c.stores.Debts.Update(ctx, key, patchOf(debt)); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.debts {
		if c.debts[i].Key == key {
			debt.Key = key
			c.debts[i] = debt
			break
		}
	}
	c.recompute()
	return nil
}

func (c *Coordinator) DeleteDebt(ctx context.Context, key string) error {
	if err := c.stores.Debts.Delete(ctx, key); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.debts = removeByKey(c.debts, key, func(d models.Debt) string { return d.Key })
	c.recompute()
	return nil
}

// --- Note mutations ---

func (c *Coordinator) AddNote(ctx context.Context, note models.Note) (models.Note, error) {
	created, err := c.stores.Notes.Create(ctx, note)
	if err != nil {
		return models.Note{}, err
	}
	c.mu.Lock()
	c.notes = append(c.notes, created)
	c.mu.Unlock()
	return created, nil
}

func (c *Coordinator) UpdateNote(ctx context.Context, key string, note models.Note) error {
	if err := c.stores.Notes.Update(ctx, key, patchOf(note)); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.notes {
		if c.notes[i].Key == key {
			note.Key = key
			c.notes[i] = note
			break
		}
	}
	return nil
}

func (c *Coordinator) DeleteNote(ctx context.Context, key string) error {
	if err := c.stores.Notes.Delete(ctx, key); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notes = removeByKey(c.notes, key, func(n models.Note) string { return n.Key })
	return nil
}

// patchOf turns an entity into the partial-update field set the store
// expects, leaving the key out since it lives in the URL.
func patchOf(v any) map[string]any {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var patch map[string]any
	if err := json.Unmarshal(raw, &patch); err != nil {
		return nil
	}
	delete(patch, "key")
	return patch
}

func removeByKey[T any](items []T, key string, keyOf func(T) string) []T {
	out := items[:0]
	for _, item := range items {
		if keyOf(item) != key {
			out = append(out, item)
		}
	}
	return out
}
