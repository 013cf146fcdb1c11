package handlers

import (
	"net/http"

	"go-resto-manager/internal/models"

	"github.com/gin-gonic/gin"
)

// --- GET: List all customer debts ---
func (api *API) GetDebts(c *gin.Context) {
	c.JSON(http.StatusOK, api.Coord.Debts())
}

// --- POST: Open a debt ledger manually ---
// Most ledgers are opened by settlement when an unpaid order comes in;
// this covers debts carried over from before the system.
func (api *API) AddDebt(c *gin.Context) {
	var debt models.Debt
	if err := c.ShouldBindJSON(&debt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	created, err := api.Coord.AddDebt(c.Request.Context(), debt)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// --- PUT: Update a debt (e.g. record a repayment) ---
// The caller is responsible for keeping remaining = total_debt - paid;
// the store does not enforce it.
func (api *API) UpdateDebt(c *gin.Context) {
	key := c.Param("key")

	var debt models.Debt
	if err := c.ShouldBindJSON(&debt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if err := api.Coord.UpdateDebt(c.Request.Context(), key, debt); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Debt updated successfully"})
}

// --- DELETE: Clear a debt ledger ---
func (api *API) DeleteDebt(c *gin.Context) {
	if err := api.Coord.DeleteDebt(c.Request.Context(), c.Param("key")); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Debt deleted successfully"})
}
