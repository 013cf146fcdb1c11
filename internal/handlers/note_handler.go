package handlers

import (
	"net/http"

	"go-resto-manager/internal/models"
	"go-resto-manager/internal/stats"

	"github.com/gin-gonic/gin"
)

// --- GET: List operational notes ---
func (api *API) GetNotes(c *gin.Context) {
	c.JSON(http.StatusOK, api.Coord.Notes())
}

// --- POST: Record a note ---
func (api *API) AddNote(c *gin.Context) {
	var note models.Note
	if err := c.ShouldBindJSON(&note); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if note.Date == "" {
		note.Date = stats.Today(api.now())
	}

	created, err := api.Coord.AddNote(c.Request.Context(), note)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// --- PUT: Update a note ---
func (api *API) UpdateNote(c *gin.Context) {
	key := c.Param("key")

	var note models.Note
	if err := c.ShouldBindJSON(&note); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if err := api.Coord.UpdateNote(c.Request.Context(), key, note); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Note updated successfully"})
}

// --- DELETE: Remove a note ---
func (api *API) DeleteNote(c *gin.Context) {
	if err := api.Coord.DeleteNote(c.Request.Context(), c.Param("key")); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Note deleted successfully"})
}
