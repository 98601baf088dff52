package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port    string
	BaseURL string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Enabled  bool
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

const (
	FetchPolicyStrict     = "strict"
	FetchPolicyBestEffort = "best_effort"
)

type AnalyticsConfig struct {
	CriticalThreshold float64
	FetchConcurrency  int
	// FetchPolicy is FetchPolicyStrict or FetchPolicyBestEffort.
	FetchPolicy string
	CacheTTL    time.Duration
	Timezone    string
}

type Config struct {
	Server    ServerConfig
	DB        DatabaseConfig
	Redis     RedisConfig
	Auth      AuthConfig
	Analytics AnalyticsConfig
	Env       string
}

func LoadConfig() *Config {
	if err := godotenv.Load(".env"); err != nil {
		slog.Warn(".env file not found, using environment variables")
	}

	fetchPolicy := getEnv("ANALYTICS_FETCH_POLICY", FetchPolicyBestEffort)
	if fetchPolicy != FetchPolicyStrict && fetchPolicy != FetchPolicyBestEffort {
		slog.Warn("unknown fetch policy, using best_effort", slog.String("value", fetchPolicy))
		fetchPolicy = FetchPolicyBestEffort
	}

	return &Config{
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			BaseURL: getEnv("BASE_URL", "http://localhost:8080"),
		},
		DB: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "dinero"),
			Password: getEnv("DB_PASS", "test"),
			DBName:   getEnv("DB_NAME", "snippets"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			Enabled:  getEnvBool("REDIS_ENABLED", false),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", "change-me"),
			TokenTTL:  getEnvDuration("TOKEN_TTL", 72*time.Hour),
		},
		Analytics: AnalyticsConfig{
			CriticalThreshold: getEnvFloat("ANALYTICS_CRITICAL_THRESHOLD", 5),
			FetchConcurrency:  getEnvInt("ANALYTICS_FETCH_CONCURRENCY", 8),
			FetchPolicy:       fetchPolicy,
			CacheTTL:          getEnvDuration("ANALYTICS_CACHE_TTL", 5*time.Minute),
			Timezone:          getEnv("APP_TIMEZONE", "UTC"),
		},
		Env: getEnv("ENV", "prod"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("invalid integer in env, using default", slog.String("key", key), slog.Int("default", defaultValue))
		return defaultValue
	}
	return parsed
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		slog.Warn("invalid number in env, using default", slog.String("key", key), slog.Float64("default", defaultValue))
		return defaultValue
	}
	return parsed
}

func getEnvBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		slog.Warn("invalid duration in env, using default", slog.String("key", key), slog.Duration("default", defaultValue))
		return defaultValue
	}
	return parsed
}
