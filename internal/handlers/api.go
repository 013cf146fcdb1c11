// Package handlers exposes the dashboard over REST. Handlers stay thin:
// bind, call the coordinator or a service, translate the error.
package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"go-resto-manager/internal/ai"
	"go-resto-manager/internal/auth"
	"go-resto-manager/internal/data"
	"go-resto-manager/internal/models"
	"go-resto-manager/internal/store"

	"github.com/gin-gonic/gin"
)

// AILogReader lists archived AI suggestions.
type AILogReader interface {
	List(ctx context.Context) ([]models.AILog, error)
}

// API bundles everything the route handlers need.
type API struct {
	Coord             *data.Coordinator
	Advisor           *ai.Advisor
	Auth              *auth.Service
	Tokens            *auth.JWT
	AILogs            AILogReader
	LowStockThreshold int
	Now               func() time.Time
}

func (api *API) now() time.Time {
	if api.Now != nil {
		return api.Now()
	}
	return time.Now()
}

// storeError maps record-store failures onto HTTP. The store being down
// is a gateway problem, not bad input, and the client should know the
// difference instead of seeing empty data.
func storeError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}
	log.Println("record store error:", err)
	c.JSON(http.StatusBadGateway, gin.H{"error": "Record store unavailable"})
}

// Refresh re-pulls all collections from the record store.
func (api *API) Refresh(c *gin.Context) {
	if err := api.Coord.Refresh(c.Request.Context()); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Data refreshed"})
}
