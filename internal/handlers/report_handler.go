package handlers

import (
	"net/http"
	"strconv"
	"time"

	"go-resto-manager/internal/stats"

	"github.com/gin-gonic/gin"
)

// --- GET: /api/dashboard ---
// The six headline figures, always consistent with the latest committed
// entity lists.
func (api *API) GetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, api.Coord.Stats())
}

// --- GET: /api/reports/weekly-sales ---
func (api *API) GetWeeklySales(c *gin.Context) {
	c.JSON(http.StatusOK, stats.WeeklySales(api.Coord.Orders(), api.now()))
}

// --- GET: /api/reports/expense-breakdown ---
func (api *API) GetExpenseBreakdown(c *gin.Context) {
	c.JSON(http.StatusOK, stats.ExpenseBreakdown(api.Coord.Expenses()))
}

// --- GET: /api/reports/low-stock ---
func (api *API) GetLowStock(c *gin.Context) {
	threshold := api.LowStockThreshold
	if raw := c.Query("threshold"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid threshold"})
			return
		}
		threshold = parsed
	}
	c.JSON(http.StatusOK, gin.H{
		"threshold": threshold,
		"items":     stats.LowStock(api.Coord.Menu(), threshold),
	})
}

// --- GET: /api/reports/range?collection=orders&start=...&end=... ---
// Both dates are whole days, inclusive.
func (api *API) GetDateRange(c *gin.Context) {
	start, err := time.Parse("2006-01-02", c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start must be yyyy-MM-dd"})
		return
	}
	end, err := time.Parse("2006-01-02", c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end must be yyyy-MM-dd"})
		return
	}

	switch c.DefaultQuery("collection", "orders") {
	case "orders":
		c.JSON(http.StatusOK, stats.FilterByDateRange(api.Coord.Orders(), start, end))
	case "expenses":
		c.JSON(http.StatusOK, stats.FilterByDateRange(api.Coord.Expenses(), start, end))
	case "notes":
		c.JSON(http.StatusOK, stats.FilterByDateRange(api.Coord.Notes(), start, end))
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "collection must be orders, expenses or notes"})
	}
}
