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
	Catalog  CatalogConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Path string
}

type CatalogConfig struct {
	// TTL is how long a snapshot is considered fresh.
	TTL time.Duration
	// StaleWait bounds how long a caller holding a usable stale snapshot
	// waits for an in-flight refresh before serving the stale one.
	StaleWait time.Duration
	// SourceEncoding names the character encoding of the legacy table
	// export. "windows-1251" or "utf-8".
	SourceEncoding string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "app.db"),
		},
		Catalog: CatalogConfig{
			TTL:            time.Duration(getEnvAsInt("CATALOG_TTL_SECONDS", 300)) * time.Second,
			StaleWait:      time.Duration(getEnvAsInt("CATALOG_STALE_WAIT_MS", 2000)) * time.Millisecond,
			SourceEncoding: getEnv("CATALOG_SOURCE_ENCODING", "windows-1251"),
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
