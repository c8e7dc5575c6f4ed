package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	HTTPAddr     string
	AMQPURL      string
	DB           DBConfig
	CatalogFile  string
	MaxBatchSize int
	MaxPageSize  int
	LogLevel     log.Level
	Workers      int
	QueueSize    int
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Load reads the configuration from the environment. Variables found in
// envFile are applied first without overriding the real environment; a
// missing envFile is not an error.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	level, err := log.ParseLevel(getEnvString("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		HTTPAddr: getEnvString("HTTP_ADDR", ":8000"),
		AMQPURL:  getEnvString("AMQP_URL", ""),
		DB: DBConfig{
			Host:     getEnvString("DB_HOST", "localhost"),
			Port:     getEnvString("DB_PORT", "5432"),
			User:     getEnvString("DB_USER", "emailregistry"),
			Password: getEnvString("DB_PASSWORD", ""),
			Name:     getEnvString("DB_NAME", "emailregistry"),
		},
		CatalogFile:  getEnvString("CATALOG_FILE", ""),
		MaxBatchSize: getEnvInt("MAX_BATCH_SIZE", 5000),
		MaxPageSize:  getEnvInt("MAX_PAGE_SIZE", 100),
		LogLevel:     level,
		Workers:      getEnvInt("WORKERS", 4),
		QueueSize:    getEnvInt("QUEUE_SIZE", 100),
	}

	return cfg, nil
}

func getEnvString(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return parsed
		}
	}
	return fallback
}
