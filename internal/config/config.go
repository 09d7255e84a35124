package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// DatabaseConfig holds MySQL connection settings.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	// InstanceConnectionName selects the Cloud SQL unix socket
	// (/cloudsql/<name>) instead of Host:Port when set.
	InstanceConnectionName string
	MaxOpenConns           int
	MaxIdleConns           int
	ConnMaxLifetimeSec     int
	AutoMigrate            bool
}

// RedisConfig holds settings for the business read cache.
// The cache is disabled when Addr is empty.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTLSec   int
}

// AMQPConfig holds settings for domain event publishing.
// Publishing is disabled when URL is empty.
type AMQPConfig struct {
	URL      string
	Exchange string
}

// AuthConfig holds bearer token verification settings.
// Verification is disabled when Secret is empty.
type AuthConfig struct {
	Secret   string
	Issuer   string
	Audience string
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level  string
	Format string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables, optionally layered over a
// config file named by CONFIG_FILE. Real environment variables take precedence.
type AppConfig struct {
	Port          string
	PublicBaseURL string
	Database      DatabaseConfig
	Redis         RedisConfig
	AMQP          AMQPConfig
	Auth          AuthConfig
	Log           LogConfig
}

var defaults = map[string]any{
	"PORT":                     "8000",
	"DB_PORT":                  "3306",
	"DB_MAX_OPEN_CONNS":        10,
	"DB_MAX_IDLE_CONNS":        5,
	"DB_CONN_MAX_LIFETIME_SEC": 300,
	"DB_AUTO_MIGRATE":          true,
	"REDIS_DB":                 0,
	"CACHE_TTL_SEC":            60,
	"AMQP_EXCHANGE":            "bizreview.events",
	"LOG_LEVEL":                "info",
	"LOG_FORMAT":               "json",
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
func Load() (*AppConfig, error) {
	v := viper.New()
	for k, def := range defaults {
		v.SetDefault(k, def)
	}
	v.AutomaticEnv()

	if file := strings.TrimSpace(v.GetString("CONFIG_FILE")); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", file, err)
		}
	}

	return &AppConfig{
		Port:          getString(v, "PORT"),
		PublicBaseURL: strings.TrimRight(getString(v, "PUBLIC_BASE_URL"), "/"),
		Database: DatabaseConfig{
			Host:                   getString(v, "DB_HOST"),
			Port:                   getString(v, "DB_PORT"),
			User:                   getString(v, "DB_USER"),
			Password:               getString(v, "DB_PASSWORD"),
			Name:                   getString(v, "DB_NAME"),
			InstanceConnectionName: getString(v, "INSTANCE_CONNECTION_NAME"),
			MaxOpenConns:           getInt(v, "DB_MAX_OPEN_CONNS"),
			MaxIdleConns:           getInt(v, "DB_MAX_IDLE_CONNS"),
			ConnMaxLifetimeSec:     getInt(v, "DB_CONN_MAX_LIFETIME_SEC"),
			AutoMigrate:            getBool(v, "DB_AUTO_MIGRATE"),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR"),
			Password: getString(v, "REDIS_PASSWORD"),
			DB:       getInt(v, "REDIS_DB"),
			TTLSec:   getInt(v, "CACHE_TTL_SEC"),
		},
		AMQP: AMQPConfig{
			URL:      getString(v, "AMQP_URL"),
			Exchange: getString(v, "AMQP_EXCHANGE"),
		},
		Auth: AuthConfig{
			Secret:   getString(v, "AUTH_JWT_SECRET"),
			Issuer:   getString(v, "AUTH_JWT_ISSUER"),
			Audience: getString(v, "AUTH_JWT_AUDIENCE"),
		},
		Log: LogConfig{
			Level:  getString(v, "LOG_LEVEL"),
			Format: getString(v, "LOG_FORMAT"),
		},
	}, nil
}

func getString(v *viper.Viper, key string) string {
	return strings.TrimSpace(v.GetString(key))
}

// getInt falls back to the registered default when the value does not parse.
func getInt(v *viper.Viper, key string) int {
	raw := getString(v, key)
	if i, err := strconv.Atoi(raw); err == nil {
		return i
	}
	if def, ok := defaults[key].(int); ok {
		return def
	}
	return 0
}

func getBool(v *viper.Viper, key string) bool {
	raw := getString(v, key)
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	def, _ := defaults[key].(bool)
	return def
}
