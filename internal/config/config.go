package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Keys     APIKeys
	Ai       AIConfig
	Catalog  CatalogConfig
	Search   SearchConfig
	Bot      BotConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
}

type APIKeys struct {
	GoogleGemini string
}

type AIConfig struct {
	LLMProvider       string // "gemini" or "ollama"
	LLMModel          string
	GeminiBaseURL     string
	OllamaBaseURL     string
	GenerationTimeout time.Duration
}

// CatalogConfig controls the document half of the context.
type CatalogConfig struct {
	Path         string
	ChunkSize    int
	ChunkOverlap int
	TopChunks    int
}

// SearchConfig holds the price heuristics of the product search.
type SearchConfig struct {
	SinglePriceBand float64
	StrictWiden     float64
	LooseWiden      float64
}

type BotConfig struct {
	Channel          string // "console" or "websocket"
	PollInterval     time.Duration
	QueryModeTimeout time.Duration
	SessionStore     string // "memory" or "redis"
	MenuAPIURL       string
	MenuFile         string
	InboundPerMinute int
	InboundBurst     int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/bot.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", ""),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "catalogo_db"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "123"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GEMINI_API_KEY", ""),
		},
		Ai: AIConfig{
			LLMProvider:       getEnv("LLM_PROVIDER", "gemini"),
			LLMModel:          getEnv("LLM_MODEL", "gemini-2.0-flash"),
			GeminiBaseURL:     getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			GenerationTimeout: getEnvAsSeconds("GENERATION_TIMEOUT_SECONDS", 30),
		},
		Catalog: CatalogConfig{
			Path:         getEnv("CATALOG_PATH", "./catalogo_.pdf"),
			ChunkSize:    getEnvAsInt("CHUNK_SIZE", 250),
			ChunkOverlap: getEnvAsInt("CHUNK_OVERLAP", 80),
			TopChunks:    getEnvAsInt("TOP_CHUNKS", 5),
		},
		Search: SearchConfig{
			SinglePriceBand: getEnvAsFloat("SEARCH_SINGLE_PRICE_BAND", 0.10),
			StrictWiden:     getEnvAsFloat("SEARCH_STRICT_WIDEN", 0.05),
			LooseWiden:      getEnvAsFloat("SEARCH_LOOSE_WIDEN", 0.15),
		},
		Bot: BotConfig{
			Channel:          getEnv("BOT_CHANNEL", "console"),
			PollInterval:     getEnvAsSeconds("POLL_INTERVAL_SECONDS", 2),
			QueryModeTimeout: getEnvAsSeconds("QUERY_MODE_TIMEOUT_SECONDS", 120),
			SessionStore:     getEnv("SESSION_STORE", "memory"),
			MenuAPIURL:       getEnv("MENU_API_URL", "http://localhost:5001/api/chat"),
			MenuFile:         getEnv("MENU_FILE", "menu.yaml"),
			InboundPerMinute: getEnvAsInt("INBOUND_RATE_PER_MINUTE", 30),
			InboundBurst:     getEnvAsInt("INBOUND_RATE_BURST", 5),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsSeconds(key string, fallback int) time.Duration {
	return time.Duration(getEnvAsInt(key, fallback)) * time.Second
}
