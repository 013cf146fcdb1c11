package handlers

import (
	"net/http"

	"go-resto-manager/internal/models"
	"go-resto-manager/internal/stats"

	"github.com/gin-gonic/gin"
)

// --- GET: List all orders ---
func (api *API) GetOrders(c *gin.Context) {
	c.JSON(http.StatusOK, api.Coord.Orders())
}

// --- POST: Record a new order ---
// Settlement runs after the order is persisted: an unpaid order accrues
// onto the customer's debt ledger and every line draws down stock.
func (api *API) AddOrder(c *gin.Context) {
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if order.Date == "" {
		order.Date = stats.Today(api.now())
	}

	created, err := api.Coord.AddOrder(c.Request.Context(), order)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// --- PUT: Update an order ---
// Editing an order does not re-run settlement; stock and debts were
// adjusted when it was first recorded.
func (api *API) UpdateOrder(c *gin.Context) {
	key := c.Param("key")

	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if err := api.Coord.UpdateOrder(c.Request.Context(), key, order); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order updated successfully"})
}

// --- DELETE: Remove an order ---
func (api *API) DeleteOrder(c *gin.Context) {
	if err := api.Coord.DeleteOrder(c.Request.Context(), c.Param("key")); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}
