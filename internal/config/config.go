package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken        string
	OwnerID         int64
	RequiredChannel string
	MaxFileSizeMB   int64
	DownloadTimeout time.Duration
	Database        DatabaseConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:        os.Getenv("BOT_TOKEN"),
		RequiredChannel: os.Getenv("REQUIRED_CHANNEL"),
		MaxFileSizeMB:   2048,
		DownloadTimeout: 30 * time.Minute,
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "savebot"),
			User:     getEnv("DB_USER", "savebot"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	ownerRaw := os.Getenv("OWNER_ID")
	if ownerRaw == "" {
		return nil, fmt.Errorf("OWNER_ID is required")
	}
	ownerID, err := strconv.ParseInt(ownerRaw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("OWNER_ID must be an integer: %w", err)
	}
	cfg.OwnerID = ownerID
	if cfg.RequiredChannel == "" {
		return nil, fmt.Errorf("REQUIRED_CHANNEL is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	if raw := os.Getenv("MAX_FILE_SIZE_MB"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || limit <= 0 {
			return nil, fmt.Errorf("MAX_FILE_SIZE_MB must be a positive integer")
		}
		cfg.MaxFileSizeMB = limit
	}
	if raw := os.Getenv("DOWNLOAD_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil || timeout <= 0 {
			return nil, fmt.Errorf("DOWNLOAD_TIMEOUT must be a positive duration")
		}
		cfg.DownloadTimeout = timeout
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
