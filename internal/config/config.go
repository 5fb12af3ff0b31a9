package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port string

	// Auth configuration
	JWTSecret string

	// AI response simulation: delay bounds in milliseconds and the per-IP
	// rate limit on the ai-response endpoint
	AIMinDelayMS    int
	AIMaxDelayMS    int
	AIRatePerMinute int
	AIRateBurst     int

	// Feedback notification configuration
	NotifyEmail string
	FromEmail   string
}

// Load loads configuration from a .env file (if present) and the environment.
func Load() (*Config, error) {
	// Optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "3000"),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		AIMinDelayMS:    getEnvAsInt("AI_MIN_DELAY_MS", 1000),
		AIMaxDelayMS:    getEnvAsInt("AI_MAX_DELAY_MS", 3000),
		AIRatePerMinute: getEnvAsInt("AI_RATE_PER_MINUTE", 30),
		AIRateBurst:     getEnvAsInt("AI_RATE_BURST", 5),
		NotifyEmail:     getEnv("NOTIFY_EMAIL", "workfree613@gmail.com"),
		FromEmail:       getEnv("FROM_EMAIL", "noreply@pocketlawyer.app"),
	}

	if cfg.AIMaxDelayMS < cfg.AIMinDelayMS {
		cfg.AIMaxDelayMS = cfg.AIMinDelayMS
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
