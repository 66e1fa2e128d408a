package common

import (
	"os"
	"strconv"
	"time"

	"github.com/hansaki/quizforge/constants"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	LLM      LLMConfig
	Import   ImportConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	DialTimeout     time.Duration
}

// LLMConfig holds oracle/caption/embedding service configuration
type LLMConfig struct {
	BaseURL     string
	APIKey      string
	Model       string
	VisionModel string
	EmbedModel  string
	Temperature float32
	Timeout     time.Duration
	RateLimit   float64 // requests/sec across all call kinds; 0 = unlimited
}

// ImportConfig holds pipeline tuning knobs
type ImportConfig struct {
	ChunkSize           int
	Concurrency         int
	OracleTimeout       time.Duration
	LayoutTimeout       time.Duration
	UseLayoutAnalysis   bool
	CachePath           string
	StorageRoot         string
	SimilarityThreshold float64
	LinkTopK            int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:             getEnv("DB_URL", ""),
			MaxConns:        getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:        getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:     getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
		},
		LLM: LLMConfig{
			BaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			Model:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			VisionModel: getEnv("OPENAI_VISION_MODEL", "gpt-4o-mini"),
			EmbedModel:  getEnv("OPENAI_EMBED_MODEL", "text-embedding-3-small"),
			Temperature: getEnvAsFloat32("OPENAI_TEMPERATURE", 0.0),
			Timeout:     getEnvAsDuration("OPENAI_TIMEOUT", constants.DefaultOracleTimeout),
			RateLimit:   getEnvAsFloat64("OPENAI_RATE_LIMIT", constants.DefaultOracleRateLimit),
		},
		Import: ImportConfig{
			ChunkSize:           getEnvAsInt("IMPORT_CHUNK_SIZE", constants.DefaultChunkSize),
			Concurrency:         getEnvAsInt("IMPORT_CONCURRENCY", constants.DefaultOracleConcurrency),
			OracleTimeout:       getEnvAsDuration("IMPORT_ORACLE_TIMEOUT", constants.DefaultOracleTimeout),
			LayoutTimeout:       getEnvAsDuration("IMPORT_LAYOUT_TIMEOUT", constants.DefaultLayoutTimeout),
			UseLayoutAnalysis:   getEnvAsBool("IMPORT_USE_LAYOUT", true),
			CachePath:           getEnv("EXTRACTION_CACHE_PATH", "./cache/extractions.db"),
			StorageRoot:         getEnv("STORAGE_ROOT", "./uploads"),
			SimilarityThreshold: getEnvAsFloat64("LINK_SIMILARITY_THRESHOLD", constants.DefaultSimilarityThreshold),
			LinkTopK:            getEnvAsInt("LINK_TOP_K", constants.DefaultLinkTopK),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.LLM.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "OPENAI_API_KEY is required", ErrInvalidInput)
	}
	if c.Import.ChunkSize <= 0 {
		return NewAppError("CONFIG_ERROR", "IMPORT_CHUNK_SIZE must be positive", ErrInvalidInput)
	}
	if c.Import.Concurrency <= 0 {
		return NewAppError("CONFIG_ERROR", "IMPORT_CONCURRENCY must be positive", ErrInvalidInput)
	}
	return nil
}
