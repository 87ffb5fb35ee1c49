package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config captures all runtime configuration derived from environment variables.
type Config struct {
	Port             string
	AuthToken        string
	DBURL            string
	BoardURL         string
	BoardAPIKey      string
	BoardID          string
	BoardTimeoutSecs int
	ReadTimeoutSecs  int
	WriteTimeoutSecs int
	IdleTimeoutSecs  int
	DBMaxConns       int
	DBMinConns       int
	DBMaxIdleSecs    int
	DBMaxLifeSecs    int
	DBConnTimeout    int
	DBStatementCache int
}

// Load reads configuration from the environment, applying defaults and
// validation. A .env file in the working directory is honored when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:             getEnv("PORT", "8080"),
		AuthToken:        os.Getenv("AUTH_TOKEN"),
		DBURL:            os.Getenv("DB_URL"),
		BoardURL:         getEnv("BOARD_API_URL", "https://api.monday.com/v2"),
		BoardAPIKey:      os.Getenv("BOARD_API_KEY"),
		BoardID:          getEnv("BOARD_ID", "9242892489"),
		BoardTimeoutSecs: getEnvInt("BOARD_TIMEOUT_SECS", 10),
		ReadTimeoutSecs:  getEnvInt("SERVER_READ_TIMEOUT", 15),
		WriteTimeoutSecs: getEnvInt("SERVER_WRITE_TIMEOUT", 15),
		IdleTimeoutSecs:  getEnvInt("SERVER_IDLE_TIMEOUT", 60),
		DBMaxConns:       getEnvInt("DB_MAX_CONNS", 20),
		DBMinConns:       getEnvInt("DB_MIN_CONNS", 2),
		DBMaxIdleSecs:    getEnvInt("DB_MAX_CONN_IDLE_SECS", 300),
		DBMaxLifeSecs:    getEnvInt("DB_MAX_CONN_LIFETIME_SECS", 3600),
		DBConnTimeout:    getEnvInt("DB_CONN_TIMEOUT_SECS", 10),
		DBStatementCache: getEnvInt("DB_STATEMENT_CACHE_CAPACITY", 256),
	}

	if cfg.AuthToken == "" {
		return Config{}, fmt.Errorf("AUTH_TOKEN is required")
	}
	if cfg.DBURL == "" {
		return Config{}, fmt.Errorf("DB_URL is required")
	}
	if cfg.BoardAPIKey == "" {
		return Config{}, fmt.Errorf("BOARD_API_KEY is required")
	}
	if cfg.BoardTimeoutSecs <= 0 {
		return Config{}, fmt.Errorf("BOARD_TIMEOUT_SECS must be positive")
	}
	if cfg.DBMaxConns <= 0 {
		return Config{}, fmt.Errorf("DB_MAX_CONNS must be positive")
	}
	if cfg.DBMinConns < 0 {
		return Config{}, fmt.Errorf("DB_MIN_CONNS must be non-negative")
	}
	if cfg.DBMinConns > cfg.DBMaxConns {
		return Config{}, fmt.Errorf("DB_MIN_CONNS cannot exceed DB_MAX_CONNS")
	}
	if cfg.DBStatementCache < 0 {
		return Config{}, fmt.Errorf("DB_STATEMENT_CACHE_CAPACITY must be non-negative")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}
