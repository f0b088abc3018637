package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the whole application configuration.
// Populated from environment variables, with defaults suited for local development.
type Config struct {
	App   AppConfig
	Redis RedisConfig
	Kafka KafkaConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	LogLevel    string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
	// TTL for cached product responses, in seconds
	ProductTTL int
}

type KafkaConfig struct {
	Brokers           []string
	Topic             string
	Partitions        int
	ReplicationFactor int
	// Upper bound on the time to report success or failure of an async send
	DeliveryTimeout int // seconds
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Product API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
		Redis: RedisConfig{
			Host:       getEnv("REDIS_HOST", "localhost:6379"),
			Password:   getEnv("REDIS_PASSWORD", ""),
			DB:         getEnvInt("REDIS_DB", 0),
			ProductTTL: getEnvInt("REDIS_PRODUCT_TTL", 300),
		},
		Kafka: KafkaConfig{
			Brokers:           []string{getEnv("KAFKA_BROKER", "localhost:9092")},
			Topic:             getEnv("KAFKA_TOPIC", "productCreated"),
			Partitions:        getEnvInt("KAFKA_PARTITIONS", 1),
			ReplicationFactor: getEnvInt("KAFKA_REPLICATION_FACTOR", 1),
			DeliveryTimeout:   getEnvInt("KAFKA_DELIVERY_TIMEOUT", 180),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks production-critical settings.
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if os.Getenv("DB_PASSWORD") == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
		if os.Getenv("KAFKA_BROKER") == "" {
			return fmt.Errorf("KAFKA_BROKER must be set in production")
		}
	}

	if c.Kafka.Topic == "" {
		return fmt.Errorf("KAFKA_TOPIC must not be empty")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
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
