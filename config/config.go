package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port  string
	DBUrl string
	// Job service
	JobServiceURL string
	// Keycloak (identity provider)
	KeycloakURL             string
	KeycloakRealm           string
	KeycloakServiceUsername string
	KeycloakServicePassword string
	KeycloakClientID        string
	// Object storage (MinIO / S3-compatible)
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3Region          string
	S3Bucket          string
	// Redis (rate limiting)
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitGlobalThreshold int
}

func LoadConfig() (*Config, error) {
	// Only effective locally; ignored in production when no .env exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:  getEnv("PORT", "8080"),
		DBUrl: getEnv("DATABASE_URL", ""),
		// Trailing slashes stripped to prevent double slashes in built URLs
		JobServiceURL:           strings.TrimRight(getEnv("JOB_SERVICE_URL", ""), "/"),
		KeycloakURL:             strings.TrimRight(getEnv("KEYCLOAK_URL", ""), "/"),
		KeycloakRealm:           getEnv("KEYCLOAK_REALM", "season-link"),
		KeycloakServiceUsername: getEnv("KEYCLOAK_SERVICE_ACCOUNT_USERNAME", ""),
		KeycloakServicePassword: getEnv("KEYCLOAK_SERVICE_ACCOUNT_PASSWORD", ""),
		KeycloakClientID:        getEnv("KEYCLOAK_CLIENT_ID", ""),

		S3Endpoint:        getEnv("S3_ENDPOINT", ""),
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3Region:          getEnv("S3_REGION", "eu-central-1"),
		S3Bucket:          getEnv("S3_BUCKET", "cv"),

		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
