package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string

	// KVStoreType selects the history backend: memory, file, redis or
	// postgres.
	KVStoreType   string
	DataDir       string
	RedisAddr     string
	RedisPassword string
	KVNamespace   string
	DatabaseURL   string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	for _, path := range []string{".env", "cmd/.env"} {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err != nil {
				log.Printf("config: load %s: %v", path, err)
			}
		}
	}

	env := normalizeEnv(getEnv("ENV", "dev"))
	storeType := normalizeStoreType(getEnv("KV_STORE", "memory"))
	dbURL := os.Getenv("DATABASE_URL")

	if storeType == "postgres" && dbURL == "" {
		log.Printf("DATABASE_URL is required when KV_STORE=postgres")
	}

	return Config{
		Port:            getEnv("PORT", "8080"),
		Env:             env,
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		KVStoreType:     storeType,
		DataDir:         getEnv("DATA_DIR", "./data"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		KVNamespace:     getEnv("KV_NAMESPACE", "prep"),
		DatabaseURL:     dbURL,
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "file":
		return "file"
	case "redis":
		return "redis"
	case "postgres", "pg":
		return "postgres"
	default:
		return "memory"
	}
}
