package handlers

import (
	"net/http"

	"go-resto-manager/internal/ai"
	"go-resto-manager/internal/stats"

	"github.com/gin-gonic/gin"
)

// The advisor never fails outward: a provider error becomes a fixed
// advisory string, so these handlers always answer 200 with a suggestion.

// --- POST: /api/ai/market ---
func (api *API) AskMarketAnalysis(c *gin.Context) {
	suggestion := api.Advisor.AnalyzeMarket(c.Request.Context(),
		api.Coord.Orders(), api.Coord.Menu(), api.Coord.Expenses())
	c.JSON(http.StatusOK, gin.H{"suggestion": suggestion})
}

// --- POST: /api/ai/finances ---
func (api *API) AskFinancialAnalysis(c *gin.Context) {
	suggestion := api.Advisor.AnalyzeFinances(c.Request.Context(),
		api.Coord.Orders(), api.Coord.Expenses(), api.Coord.Debts())
	c.JSON(http.StatusOK, gin.H{"suggestion": suggestion})
}

// --- POST: /api/ai/investments ---
func (api *API) AskInvestmentSuggestions(c *gin.Context) {
	suggestion := api.Advisor.SuggestInvestments(c.Request.Context(),
		api.Coord.Stats().AvailableCash, api.Coord.Orders(), api.Coord.Menu())
	c.JSON(http.StatusOK, gin.H{"suggestion": suggestion})
}

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// --- POST: /api/ai/chat ---
func (api *API) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	dash := api.Coord.Stats()
	reply := api.Advisor.Chat(c.Request.Context(), req.Message, ai.ChatContext{
		TotalSalesToday:    dash.TotalSalesToday,
		TotalExpensesToday: dash.TotalExpensesToday,
		NetProfit:          dash.NetProfit,
		AvailableCash:      dash.AvailableCash,
		TotalDebts:         dash.TotalDebts,
		UnpaidDebts:        dash.UnpaidDebts,
	})
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// --- POST: /api/ai/weekly-summary ---
// Reviews the last seven days, both dates inclusive.
func (api *API) AskWeeklySummary(c *gin.Context) {
	now := api.now()
	weekAgo := now.AddDate(0, 0, -6)

	suggestion := api.Advisor.WeeklySummary(c.Request.Context(),
		stats.FilterByDateRange(api.Coord.Orders(), weekAgo, now),
		stats.FilterByDateRange(api.Coord.Expenses(), weekAgo, now),
		stats.FilterByDateRange(api.Coord.Notes(), weekAgo, now))
	c.JSON(http.StatusOK, gin.H{"suggestion": suggestion})
}

// --- POST: /api/ai/low-stock ---
func (api *API) AskLowStockAnalysis(c *gin.Context) {
	low := stats.LowStock(api.Coord.Menu(), api.LowStockThreshold)
	suggestion := api.Advisor.AnalyzeLowStock(c.Request.Context(), low)
	c.JSON(http.StatusOK, gin.H{"suggestion": suggestion})
}

// --- GET: /api/ai/logs ---
func (api *API) GetAILogs(c *gin.Context) {
	logs, err := api.AILogs.List(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}
