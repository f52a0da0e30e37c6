package configs_test

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"order-store/internal/configs"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := configs.LoadConfig()
	require.NoError(t, err)

	require.Equal(t, ":8081", cfg.HTTPAddr)
	require.Equal(t, 60*time.Second, cfg.CacheTTL)
	require.Equal(t, 16, cfg.CacheShards)
	require.Equal(t, "@every 15m", cfg.CacheCleanupSchedule)
	require.Equal(t, "up", cfg.Migration)
	require.True(t, cfg.MigrateOnStart)
	require.Equal(t, 200*time.Millisecond, cfg.KafkaBaseBackoff)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", " k1:9092, ,k2:9092 ")
	t.Setenv("CACHE_TTL", "2m")
	t.Setenv("DB_DEBUG", "true")
	t.Setenv("PUBLISH_COUNT", "3")

	cfg, err := configs.LoadConfig()
	require.NoError(t, err)

	require.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokersSlice())
	require.Equal(t, 2*time.Minute, cfg.CacheTTL)
	require.True(t, cfg.DBDebug)
	require.Equal(t, 3, cfg.PublishCount)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("CACHE_SHARDS", "-1")
	_, err := configs.LoadConfig()
	require.Error(t, err)

	t.Setenv("CACHE_SHARDS", "8")
	t.Setenv("KAFKA_MAX_RETRIES", "many")
	_, err = configs.LoadConfig()
	require.Error(t, err)
}

func TestConfig_Postgres(t *testing.T) {
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_PORT", "6432")

	cfg, err := configs.LoadConfig()
	require.NoError(t, err)

	pc := cfg.Postgres()
	require.Equal(t, "host=db port=6432 user=postgres password=postgres dbname=orders sslmode=disable", pc.DSN())
	require.Equal(t, 25, pc.MaxOpenConns)

	t.Setenv("DATABASE_URL", "postgres://u:p@h:1/d?sslmode=disable")
	cfg, err = configs.LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "postgres://u:p@h:1/d?sslmode=disable", cfg.Postgres().DSN())
}

func TestConfig_SetupLogging(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)
	defer logrus.SetFormatter(&logrus.TextFormatter{})

	cfg := configs.Config{LogLevel: "debug", LogFormat: "json"}
	require.NoError(t, cfg.SetupLogging())
	require.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	require.Error(t, configs.Config{LogLevel: "loud"}.SetupLogging())
	require.Error(t, configs.Config{LogLevel: "info", LogFormat: "xml"}.SetupLogging())
}
