package handlers

import (
	"net/http"

	"go-resto-manager/internal/models"

	"github.com/gin-gonic/gin"
)

// --- GET: List the menu with current stock ---
func (api *API) GetMenu(c *gin.Context) {
	c.JSON(http.StatusOK, api.Coord.Menu())
}

// --- POST: Add a new menu item ---
func (api *API) AddMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	created, err := api.Coord.AddMenuItem(c.Request.Context(), item)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// --- PUT: Update price, stock or category ---
func (api *API) UpdateMenuItem(c *gin.Context) {
	key := c.Param("key")

	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if err := api.Coord.UpdateMenuItem(c.Request.Context(), key, item); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated successfully"})
}

// --- DELETE: Remove a menu item ---
// Orders referencing the item keep their denormalized name and price;
// nothing cascades.
func (api *API) DeleteMenuItem(c *gin.Context) {
	if err := api.Coord.DeleteMenuItem(c.Request.Context(), c.Param("key")); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted successfully"})
}
