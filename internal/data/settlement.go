package data

import (
	"context"
	"log"

	"go-resto-manager/internal/models"
)

// settle applies the side effects of a newly recorded order: debt accrual
// when the order is unpaid, then a stock draw-down per line item. Steps are
// not transactional; each one is persisted independently and a failure
// leaves the earlier steps in place with no compensation.
func (c *Coordinator) settle(ctx context.Context, order models.Order) {
	if !order.IsPaid {
		c.accrueDebt(ctx, order)
	}
	c.drawDownStock(ctx, order)
}

// accrueDebt adds the order total to the customer's debt ledger. Matching
// is exact on customer name, first match wins; a spelling variant creates a
// separate ledger rather than merging into an existing one.
func (c *Coordinator) accrueDebt(ctx context.Context, order models.Order) {
	c.mu.RLock()
	var existing *models.Debt
	for i := range c.debts {
		if c.debts[i].CustomerName == order.CustomerName {
			d := c.debts[i]
			existing = &d
			break
		}
	}
	c.mu.RUnlock()

	if existing != nil && existing.Key != "" {
		updated := *existing
		updated.TotalDebt += order.TotalPrice
		updated.Remaining += order.TotalPrice
		updated.LastUpdated = order.Date

		patch := map[string]any{
			"total_debt":   updated.TotalDebt,
			"remaining":    updated.Remaining,
			"last_updated": updated.LastUpdated,
		}
		if err := c.stores.Debts.Update(ctx, existing.Key, patch); err != nil {
			log.Printf("settlement: debt update for %q failed: %v", order.CustomerName, err)
			return
		}

		c.mu.Lock()
		for i := range c.debts {
			if c.debts[i].Key == existing.Key {
				c.debts[i] = updated
				break
			}
		}
		c.mu.Unlock()
		return
	}

	debt := models.Debt{
		CustomerName: order.CustomerName,
		TotalDebt:    order.TotalPrice,
		Paid:         0,
		Remaining:    order.TotalPrice,
		LastUpdated:  order.Date,
	}
	created, err := c.stores.Debts.Create(ctx, debt)
	if err != nil {
		log.Printf("settlement: debt create for %q failed: %v", order.CustomerName, err)
		return
	}
	c.mu.Lock()
	c.debts = append(c.debts, created)
	c.mu.Unlock()
}

// drawDownStock decrements each ordered menu item's available quantity.
// Decrements are sequential and independent: an unknown menu key is
// skipped, a store failure on one line is logged and the next line still
// runs. Quantities are allowed to go negative.
func (c *Coordinator) drawDownStock(ctx context.Context, order models.Order) {
	for _, line := range order.Items {
		c.mu.RLock()
		idx := -1
		for i := range c.menu {
			if c.menu[i].Key == line.MenuItemKey {
				idx = i
				break
			}
		}
		var newQty int
		if idx >= 0 {
			newQty = c.menu[idx].AvailableQty - line.Quantity
		}
		c.mu.RUnlock()

		if idx < 0 {
			continue
		}

		if err := c.stores.Menu.Update(ctx, line.MenuItemKey, map[string]any{"available_qty": newQty}); err != nil {
			log.Printf("settlement: stock update for %q failed: %v", line.Name, err)
			continue
		}

		c.mu.Lock()
		for i := range c.menu {
			if c.menu[i].Key == line.MenuItemKey {
				c.menu[i].AvailableQty = newQty
				break
			}
		}
		c.mu.Unlock()
	}
}
