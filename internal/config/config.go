package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"

	EventBusChannel = "channel"
	EventBusNats    = "nats"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	Sessions  SessionConfig
	Events    EventConfig
	Telemetry TelemetryConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	AuditLogFilePath   string
	CorsAllowedOrigins string
}

func (c AppConfig) IsProduction() bool {
	return c.Environment == "production"
}

type DatabaseConfig struct {
	Connection  string
	AutoMigrate bool
}

type AuthConfig struct {
	JwtSecret  string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type SessionConfig struct {
	Store    string // "memory" or "redis"
	RedisURL string
}

type EventConfig struct {
	Bus     string // "channel" or "nats"
	NatsURL string
	Durable string
}

type TelemetryConfig struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
	Metrics     bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			AuditLogFilePath:   getEnv("AUDIT_LOG_FILE_PATH", "logs/audit.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Connection:  getEnv("DB_CONNECTION_STRING", ""),
			AutoMigrate: getEnvAsBool("DB_AUTO_MIGRATE", false),
		},
		Auth: AuthConfig{
			JwtSecret:  getEnv("JWT_SECRET", ""),
			AccessTTL:  time.Duration(getEnvAsInt("JWT_ACCESS_TTL_MINUTES", 15)) * time.Minute,
			RefreshTTL: time.Duration(getEnvAsInt("JWT_REFRESH_TTL_HOURS", 24*7)) * time.Hour,
		},
		Sessions: SessionConfig{
			Store:    getEnv("SESSION_STORE", SessionStoreMemory),
			RedisURL: getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Events: EventConfig{
			Bus:     getEnv("EVENT_BUS", EventBusChannel),
			NatsURL: getEnv("NATS_URL", "nats://localhost:4222"),
			Durable: getEnv("NATS_DURABLE", "catalog-audit"),
		},
		Telemetry: TelemetryConfig{
			Enabled:     getEnvAsBool("OTEL_ENABLED", false),
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "catalog-backend"),
			Metrics:     getEnvAsBool("METRICS_ENABLED", true),
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

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
