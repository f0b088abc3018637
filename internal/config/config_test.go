package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "productCreated", cfg.Kafka.Topic)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 300, cfg.Redis.ProductTTL)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("KAFKA_TOPIC", "productEvents")
	t.Setenv("KAFKA_PARTITIONS", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "productEvents", cfg.Kafka.Topic)
	assert.Equal(t, 3, cfg.Kafka.Partitions)
}

func TestLoadRejectsUnparseableInt(t *testing.T) {
	t.Setenv("KAFKA_PARTITIONS", "many")

	cfg, err := Load()
	require.NoError(t, err)

	// falls back to the default instead of failing startup
	assert.Equal(t, 1, cfg.Kafka.Partitions)
}

func TestValidateProductionRequiresSecrets(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDatabaseConfigDefaults(t *testing.T) {
	dbCfg, err := LoadDatabaseConfig()
	require.NoError(t, err)

	assert.Equal(t, "localhost", dbCfg.Host)
	assert.Equal(t, 5432, dbCfg.Port)
	assert.Equal(t, int32(25), dbCfg.MaxConns)
	assert.Equal(t, 5, dbCfg.MaxRetries)
}

func TestLoadDatabaseConfigRejectsBadDuration(t *testing.T) {
	t.Setenv("DB_CONNECT_TIMEOUT", "soon")

	_, err := LoadDatabaseConfig()
	assert.Error(t, err)
}
