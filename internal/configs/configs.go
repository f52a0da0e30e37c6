package configs

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"

	"order-store/internal/repository/postgres"
)

type Config struct {
	KafkaBrokers         string        `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	KafkaTopic           string        `env:"KAFKA_TOPIC" envDefault:"orders"`
	KafkaGroupID         string        `env:"KAFKA_GROUP_ID" envDefault:"order-svc"`
	KafkaDLQTopic        string        `env:"KAFKA_DLQ_TOPIC" envDefault:"orders-dlq"`
	KafkaMaxRetries      int           `env:"KAFKA_MAX_RETRIES" envDefault:"5"`
	KafkaBaseBackoff     time.Duration `env:"KAFKA_BASE_BACKOFF" envDefault:"200ms"`
	KafkaTopicPartitions int           `env:"KAFKA_TOPIC_PARTITIONS" envDefault:"1"`

	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8081"`

	CacheTTL             time.Duration `env:"CACHE_TTL" envDefault:"60s"`
	CacheShards          int           `env:"CACHE_SHARDS" envDefault:"16"`
	CacheCleanupSchedule string        `env:"CACHE_CLEANUP_SCHEDULE" envDefault:"@every 15m"`
	CacheWarmLimit       int           `env:"CACHE_WARM_LIMIT" envDefault:"100"`

	JsonStaticModelPath string        `env:"JSON_STATIC_MODEL_PATH" envDefault:""`
	PublishCount        int           `env:"PUBLISH_COUNT" envDefault:"10"`
	PublishDelay        time.Duration `env:"PUBLISH_DELAY" envDefault:"1s"`
	PublishSeed         uint64        `env:"PUBLISH_SEED" envDefault:"0"`

	MigrateOnStart bool   `env:"MIGRATE_ON_START" envDefault:"true"`
	Migration      string `env:"MIGRATION" envDefault:"up"`

	DatabaseURL       string        `env:"DATABASE_URL" envDefault:""`
	PostgresHost      string        `env:"POSTGRES_HOST" envDefault:"localhost"`
	PostgresPort      string        `env:"POSTGRES_PORT" envDefault:"5432"`
	PostgresUser      string        `env:"POSTGRES_USER" envDefault:"postgres"`
	PostgresPass      string        `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	PostgresDB        string        `env:"POSTGRES_DB" envDefault:"orders"`
	PostgresSSLMode   string        `env:"POSTGRES_SSLMODE" envDefault:"disable"`
	DBMaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	DBMaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"25"`
	DBConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	DBDebug           bool          `env:"DB_DEBUG" envDefault:"false"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

func LoadConfig() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("config parse: %w", err)
	}
	if c.CacheShards < 0 {
		return Config{}, fmt.Errorf("config parse: CACHE_SHARDS must not be negative, got %d", c.CacheShards)
	}
	if c.CacheTTL < 0 {
		return Config{}, fmt.Errorf("config parse: CACHE_TTL must not be negative, got %s", c.CacheTTL)
	}
	return c, nil
}

func (c Config) KafkaBrokersSlice() []string {
	parts := strings.Split(c.KafkaBrokers, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Postgres returns connection settings. DATABASE_URL, when set, wins over
// the individual POSTGRES_* variables.
func (c Config) Postgres() postgres.Config {
	return postgres.Config{
		URL:             c.DatabaseURL,
		Host:            c.PostgresHost,
		Port:            c.PostgresPort,
		Username:        c.PostgresUser,
		Password:        c.PostgresPass,
		DbName:          c.PostgresDB,
		SslMode:         c.PostgresSSLMode,
		MaxOpenConns:    c.DBMaxOpenConns,
		MaxIdleConns:    c.DBMaxIdleConns,
		ConnMaxLifetime: c.DBConnMaxLifetime,
		Debug:           c.DBDebug,
	}
}
