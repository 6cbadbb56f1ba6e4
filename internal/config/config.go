package config

import (
	"os"
	"time"
)

type Config struct {
	Port        string
	Environment string

	DatabaseURL string
	RedisURL    string

	// StorageDriver selects the comment store: "postgres" or "memory".
	StorageDriver string

	JWTSecret string

	CORSOrigins string

	ResendAPIKey    string
	FromEmail       string
	ModerationEmail string
	SiteName        string

	BannedWordsFile string
	CommentCacheTTL time.Duration
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		DatabaseURL: getEnv("DATABASE_URL", ""),
		RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379"),

		StorageDriver: getEnv("STORAGE_DRIVER", "postgres"),

		JWTSecret: getEnv("JWT_SECRET", ""),

		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:5173"),

		ResendAPIKey:    getEnv("RESEND_API_KEY", ""),
		FromEmail:       getEnv("FROM_EMAIL", "noreply@example.com"),
		ModerationEmail: getEnv("MODERATION_EMAIL", ""),
		SiteName:        getEnv("SITE_NAME", "Yorum Servisi"),

		BannedWordsFile: getEnv("BANNED_WORDS_FILE", ""),
		CommentCacheTTL: getDurationEnv("COMMENT_CACHE_TTL", 5*time.Minute),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}
