package main

import (
	"context"
	"log"
	"time"

	"go-resto-manager/internal/ai"
	"go-resto-manager/internal/auth"
	"go-resto-manager/internal/config"
	"go-resto-manager/internal/data"
	"go-resto-manager/internal/handlers"
	"go-resto-manager/internal/middleware"
	"go-resto-manager/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	client := store.NewClient(cfg.Store.BaseURL, cfg.Store.ProjectKey)
	records := store.New(client)

	coord := data.New(data.FromStore(records))
	if cfg.Server.SeedDemoData {
		coord.SeedDemo()
		log.Println("Demo data seeded (non-empty store collections replace it on refresh)")
	}

	if client.Configured() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := coord.Refresh(ctx); err != nil {
			log.Println("⚠️ Initial refresh failed, serving seeded data:", err)
		} else {
			log.Println("✅ Collections loaded from record store")
		}
		cancel()
	} else {
		log.Println("⚠️ Record store not configured; running on demo data only")
	}

	advisor := ai.NewAdvisor(buildProvider(cfg), records.AILogs)

	tokens := auth.NewJWT(cfg.Auth.JWTSecret)
	api := &handlers.API{
		Coord:             coord,
		Advisor:           advisor,
		Auth:              auth.NewService(records.Users),
		Tokens:            tokens,
		AILogs:            records.AILogs,
		LowStockThreshold: cfg.Server.LowStockThreshold,
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.Server.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "online"}) })
	r.POST("/login", api.Login)

	if cfg.Server.AllowRegistration {
		r.POST("/register", api.Register)
		log.Println("⚠️ WARNING: Registration route is OPEN. Disable this in production!")
	} else {
		log.Println("🔒 Registration route is safely DISABLED.")
	}

	// --- PROTECTED ROUTES ---
	protected := r.Group("/api")
	protected.Use(middleware.AuthRequired(tokens))
	{
		protected.GET("/dashboard", api.GetDashboard)
		protected.POST("/refresh", api.Refresh)

		protected.GET("/menu", api.GetMenu)
		protected.POST("/menu", api.AddMenuItem)
		protected.PUT("/menu/:key", api.UpdateMenuItem)
		protected.DELETE("/menu/:key", api.DeleteMenuItem)

		protected.GET("/orders", api.GetOrders)
		protected.POST("/orders", api.AddOrder)
		protected.PUT("/orders/:key", api.UpdateOrder)
		protected.DELETE("/orders/:key", api.DeleteOrder)

		protected.GET("/expenses", api.GetExpenses)
		protected.POST("/expenses", api.AddExpense)
		protected.PUT("/expenses/:key", api.UpdateExpense)
		protected.DELETE("/expenses/:key", api.DeleteExpense)

		protected.GET("/debts", api.GetDebts)
		protected.POST("/debts", api.AddDebt)
		protected.PUT("/debts/:key", api.UpdateDebt)
		protected.DELETE("/debts/:key", api.DeleteDebt)

		protected.GET("/notes", api.GetNotes)
		protected.POST("/notes", api.AddNote)
		protected.PUT("/notes/:key", api.UpdateNote)
		protected.DELETE("/notes/:key", api.DeleteNote)

		// ADMIN ONLY
		admin := protected.Group("/")
		admin.Use(middleware.RequireRole("admin"))
		{
			admin.GET("/reports/weekly-sales", api.GetWeeklySales)
			admin.GET("/reports/expense-breakdown", api.GetExpenseBreakdown)
			admin.GET("/reports/low-stock", api.GetLowStock)
			admin.GET("/reports/range", api.GetDateRange)

			admin.POST("/ai/market", api.AskMarketAnalysis)
			admin.POST("/ai/finances", api.AskFinancialAnalysis)
			admin.POST("/ai/investments", api.AskInvestmentSuggestions)
			admin.POST("/ai/chat", api.Chat)
			admin.POST("/ai/weekly-summary", api.AskWeeklySummary)
			admin.POST("/ai/low-stock", api.AskLowStockAnalysis)
			admin.GET("/ai/logs", api.GetAILogs)
		}
	}

	log.Println("🚀 Server starting on " + cfg.Server.BaseURL)
	if err := r.Run(cfg.Server.Addr); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}

// buildProvider picks the model backend from config. A misconfigured
// provider does not stop the server; the advisor degrades to its fixed
// unavailability message.
func buildProvider(cfg *config.Config) ai.Provider {
	var (
		provider ai.Provider
		err      error
	)
	switch cfg.AI.Provider {
	case "gemini":
		provider, err = ai.NewGeminiProvider(cfg.AI.GeminiKey, cfg.AI.Model)
	default:
		provider, err = ai.NewOpenAIProvider(cfg.AI.OpenAIKey, cfg.AI.OpenAIBase, cfg.AI.Model)
	}
	if err != nil {
		log.Println("⚠️ AI provider unavailable:", err)
		return ai.Unavailable{}
	}
	provider.SetMaxTokens(cfg.AI.MaxTokens)
	provider.SetTemperature(cfg.AI.Temperature)
	return provider
}
