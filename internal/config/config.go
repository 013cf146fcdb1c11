package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	Store  StoreConfig
	AI     AIConfig
	Auth   AuthConfig
}

type ServerConfig struct {
	Addr              string
	BaseURL           string
	AllowedOrigin     string
	AllowRegistration bool
	LowStockThreshold int
	SeedDemoData      bool
}

type StoreConfig struct {
	BaseURL    string
	ProjectKey string
}

type AIConfig struct {
	Provider    string // 'openai' or 'gemini'
	Model       string
	OpenAIKey   string
	OpenAIBase  string
	GeminiKey   string
	Temperature float64
	MaxTokens   int
}

type AuthConfig struct {
	JWTSecret string
}

// Load reads configuration from the environment. A .env file is honored
// when present so the app stays portable across machines.
func Load() *Config {
	_ = godotenv.Load()

	threshold, _ := strconv.Atoi(getEnv("LOW_STOCK_THRESHOLD", "10"))
	maxTokens, _ := strconv.Atoi(getEnv("AI_MAX_TOKENS", "1000"))
	temperature, _ := strconv.ParseFloat(getEnv("AI_TEMPERATURE", "0.7"), 64)

	return &Config{
		Server: ServerConfig{
			Addr:              getEnv("LISTEN_ADDR", ":8080"),
			BaseURL:           getEnv("BASE_URL", "http://localhost:8080"),
			AllowedOrigin:     getEnv("ALLOWED_ORIGIN", "http://localhost:5173"),
			AllowRegistration: os.Getenv("ALLOW_REGISTRATION") == "true",
			LowStockThreshold: threshold,
			SeedDemoData:      getEnv("SEED_DEMO_DATA", "true") == "true",
		},
		Store: StoreConfig{
			BaseURL:    getEnv("STORE_BASE_URL", ""),
			ProjectKey: getEnv("STORE_PROJECT_KEY", ""),
		},
		AI: AIConfig{
			Provider:    getEnv("AI_PROVIDER", "openai"),
			Model:       getEnv("AI_MODEL", "gpt-4o-mini"),
			OpenAIKey:   getEnv("OPENAI_API_KEY", ""),
			OpenAIBase:  getEnv("OPENAI_BASE_URL", ""),
			GeminiKey:   getEnv("GEMINI_API_KEY", ""),
			Temperature: temperature,
			MaxTokens:   maxTokens,
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", "change_me_in_production"),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
