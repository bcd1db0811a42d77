package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	ServerPort    string
	AllowedOrigin string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// Feed retention & quota
	VisibilityWindow time.Duration
	QuotaWindow      time.Duration
	DailyPostLimit   int

	// Club picks
	PicksMin      int
	PicksMax      int
	PicksPoolSize int

	// Background jobs
	SweepInterval time.Duration
	PicksInterval time.Duration

	// Upstream catalogs
	SpotifyClientID     string
	SpotifyClientSecret string
	NLAPIKey            string
	GooglePlacesKey     string
}

func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	config := &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "*"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "commune"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       0,

		VisibilityWindow: getEnvDuration("VISIBILITY_WINDOW", 7*24*time.Hour),
		QuotaWindow:      getEnvDuration("QUOTA_WINDOW", 24*time.Hour),
		DailyPostLimit:   getEnvInt("DAILY_POST_LIMIT", 5),

		PicksMin:      getEnvInt("PICKS_MIN", 2),
		PicksMax:      getEnvInt("PICKS_MAX", 3),
		PicksPoolSize: getEnvInt("PICKS_POOL_SIZE", 20),

		SweepInterval: getEnvDuration("SWEEP_INTERVAL", time.Hour),
		PicksInterval: getEnvDuration("PICKS_INTERVAL", time.Hour),

		SpotifyClientID:     getEnv("SPOTIFY_CLIENT_ID", ""),
		SpotifyClientSecret: getEnv("SPOTIFY_CLIENT_SECRET", ""),
		NLAPIKey:            getEnv("NL_API_KEY", ""),
		GooglePlacesKey:     getEnv("GOOGLE_PLACES_KEY", ""),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
