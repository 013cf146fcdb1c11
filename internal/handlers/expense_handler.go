package handlers

import (
	"net/http"

	"go-resto-manager/internal/models"
	"go-resto-manager/internal/stats"

	"github.com/gin-gonic/gin"
)

// --- GET: List all expenses ---
func (api *API) GetExpenses(c *gin.Context) {
	c.JSON(http.StatusOK, api.Coord.Expenses())
}

// --- POST: Record an expense ---
func (api *API) AddExpense(c *gin.Context) {
	var expense models.Expense
	if err := c.ShouldBindJSON(&expense); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if expense.Date == "" {
		expense.Date = stats.Today(api.now())
	}

	created, err := api.Coord.AddExpense(c.Request.Context(), expense)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// --- PUT: Update an expense ---
func (api *API) UpdateExpense(c *gin.Context) {
	key := c.Param("key")

	var expense models.Expense
	if err := c.ShouldBindJSON(&expense); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if err := api.Coord.UpdateExpense(c.Request.Context(), key, expense); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expense updated successfully"})
}

// --- DELETE: Remove an expense ---
func (api *API) DeleteExpense(c *gin.Context) {
	if err := api.Coord.DeleteExpense(c.Request.Context(), c.Param("key")); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}
