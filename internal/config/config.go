package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the full application configuration, resolved from environment
// variables (optionally seeded from .env by the caller).
type Config struct {
	Server       ServerConfig
	Database     DatabaseConfig
	Kafka        KafkaConfig
	Mail         MailConfig
	Insights     InsightsConfig
	Security     SecurityConfig
	Logging      LoggingConfig
	Metrics      MetricsConfig
	Reservations ReservationsConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// DSN renders the Postgres connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type KafkaConfig struct {
	Brokers []string
	GroupID string
	Topics  []string
}

type MailConfig struct {
	BaseURL string
	Timeout time.Duration
}

type InsightsConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type SecurityConfig struct {
	JWTSecret    string
	JWTPublicKey string
}

type LoggingConfig struct {
	Directory string
	Level     string
	Format    string
}

type MetricsConfig struct {
	Prefix string
}

type ReservationsConfig struct {
	SlotCapacity int
}

// Load resolves the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			Name:            getEnv("DB_NAME", "mesaya"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Kafka: KafkaConfig{
			Brokers: splitList(firstEnv("KAFKA_BROKERS", "KAFKA_BROKER")),
			GroupID: getEnv("KAFKA_GROUP_ID", "mesaya-api"),
			Topics:  splitList(getEnv("KAFKA_TOPICS", "reservations.created,reservations.updated,reservations.cancelled,reservations.completed,reservations.rescheduled")),
		},
		Mail: MailConfig{
			BaseURL: getEnv("MAIL_SERVICE_URL", ""),
			Timeout: getEnvAsDuration("MAIL_TIMEOUT", 10*time.Second),
		},
		Insights: InsightsConfig{
			BaseURL: getEnv("INSIGHTS_SERVICE_URL", ""),
			APIKey:  getEnv("INSIGHTS_API_KEY", ""),
			Timeout: getEnvAsDuration("INSIGHTS_TIMEOUT", 10*time.Second),
		},
		Security: SecurityConfig{
			JWTSecret:    getEnv("JWT_SECRET", ""),
			JWTPublicKey: getEnv("JWT_PUBLIC_KEY", ""),
		},
		Logging: LoggingConfig{
			Directory: getEnv("LOG_DIR", "./logs"),
			Level:     getEnv("LOG_LEVEL", "info"),
			Format:    getEnv("LOG_FORMAT", "text"),
		},
		Metrics: MetricsConfig{
			Prefix: getEnv("METRICS_PREFIX", "mesaya"),
		},
		Reservations: ReservationsConfig{
			SlotCapacity: getEnvAsInt("RESERVATION_SLOT_CAPACITY", 5),
		},
	}

	if cfg.Security.JWTSecret == "" && cfg.Security.JWTPublicKey == "" {
		return nil, fmt.Errorf("security config: JWT_SECRET or JWT_PUBLIC_KEY must be set")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return value
		}
	}
	return ""
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
