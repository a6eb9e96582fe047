package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port           string
	DBPath         string
	WeatherAPIKey  string
	WeatherBaseURL string
	WeatherTimeout time.Duration
	RateLimit      int           // max requests per window, per IP
	RateWindow     time.Duration // rate limit window
	AllowedOrigins []string
}

// Load reads configuration from the environment, with a best-effort
// .env file on top
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/weatherly.db"
	}

	origins := []string{"http://localhost:8080", "http://localhost:5173"}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		origins = splitCSV(v)
	}

	return &Config{
		Port:           port,
		DBPath:         dbPath,
		WeatherAPIKey:  os.Getenv("OPENWEATHER_API_KEY"),
		WeatherBaseURL: os.Getenv("WEATHER_BASE_URL"),
		WeatherTimeout: durationEnv("WEATHER_TIMEOUT", 10*time.Second),
		RateLimit:      intEnv("RATE_LIMIT", 60),
		RateWindow:     durationEnv("RATE_WINDOW", time.Minute),
		AllowedOrigins: origins,
	}
}

func intEnv(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		log.Printf("Warning: invalid %s=%q, using %d", key, value, fallback)
		return fallback
	}
	return parsed
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil || parsed <= 0 {
		log.Printf("Warning: invalid %s=%q, using %v", key, value, fallback)
		return fallback
	}
	return parsed
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
