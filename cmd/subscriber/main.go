package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"order-store/internal/configs"
	httpdelivery "order-store/internal/delivery/http"
	"order-store/internal/delivery/kafka"
	"order-store/internal/jobs"
	"order-store/internal/migrate"
	"order-store/internal/repository"
	"order-store/internal/repository/cache"
	"order-store/internal/repository/postgres"
	"order-store/internal/service"
)

// @title order store
// @version 1.0
// @description Stores order aggregates (order, delivery, payment, items) received from Kafka or the HTTP API in postgres, and serves them through a read-through cache.

// @host localhost:8081
// @basePath /

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debugf("no .env loaded: %s", err)
	}
	cfg, err := configs.LoadConfig()
	if err != nil {
		logrus.Fatalf("config load: %s", err)
	}
	if err := cfg.SetupLogging(); err != nil {
		logrus.Fatalf("logging setup: %s", err)
	}
	logrus.Print("config parsed")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := postgres.ConnectDB(cfg.Postgres())
	if err != nil {
		logrus.Fatalf("postgres connect: %s", err)
	}
	defer func() {
		if derr := db.Close(); derr != nil {
			logrus.Errorf("db close: %v", derr)
		}
	}()
	logrus.Print("connected to postgres")

	if cfg.MigrateOnStart {
		if err := migrateUp(ctx, db); err != nil {
			logrus.Fatalf("migrate: %s", err)
		}
	}

	repo := repository.NewRepository(db, newKV(cfg))
	svc := service.NewService(repo)

	n, err := svc.WarmCache(ctx, cfg.CacheWarmLimit)
	if err != nil {
		logrus.Fatalf("warm cache: %s", err)
	}
	logrus.WithFields(logrus.Fields{"orders": n, "cached": svc.Len()}).Print("cache warmed from db")

	janitor := jobs.NewCacheJanitor(svc, cfg.CacheCleanupSchedule)
	if err := janitor.Start(); err != nil {
		logrus.Fatalf("cache janitor: %s", err)
	}

	brokers := cfg.KafkaBrokersSlice()
	if len(brokers) > 0 {
		if err := kafka.EnsureTopic(ctx, brokers[0], kafka.TopicConfig(cfg.KafkaTopic, cfg.KafkaTopicPartitions)); err != nil {
			logrus.WithError(err).Warn("ensure kafka topic")
		}
	}

	consumer := kafka.NewConsumer(kafka.Config{
		Brokers:     brokers,
		GroupID:     cfg.KafkaGroupID,
		Topic:       cfg.KafkaTopic,
		DLQ:         cfg.KafkaDLQTopic,
		MaxRetries:  cfg.KafkaMaxRetries,
		BaseBackoff: cfg.KafkaBaseBackoff,
	}, svc)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := consumer.Subscribe(ctx); err != nil {
			logrus.Errorf("consumer stopped: %v", err)
			cancel()
		}
	}()
	logrus.Print("kafka subscription started")

	h := httpdelivery.NewHandler(svc)
	srv := new(httpdelivery.Server)

	go func() {
		if err := srv.Run(cfg.HTTPAddr, h.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Errorf("http run: %v", err)
			cancel()
		}
	}()
	logrus.Printf("http server started on %s", cfg.HTTPAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	select {
	case <-quit:
		logrus.Print("shutdown signal received")
	case <-ctx.Done():
		logrus.Print("context canceled, shutting down")
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("http shutdown: %s", err)
	}

	cancel()
	wg.Wait()
	if err := consumer.Close(); err != nil {
		logrus.Errorf("consumer close: %s", err)
	}
	janitor.Stop()

	logrus.Print("service stopped")
}

func migrateUp(ctx context.Context, db *gorm.DB) error {
	m, err := migrate.New(db)
	if err != nil {
		return err
	}
	n, err := m.Up(ctx)
	if err != nil {
		return err
	}
	logrus.WithField("applied", n).Print("schema up to date")
	return nil
}

func newKV(cfg configs.Config) cache.KV {
	if cfg.CacheShards > 1 {
		return cache.NewShardedCache(cache.WithShards(cfg.CacheShards), cache.WithShardTTL(cfg.CacheTTL))
	}
	return cache.NewCache(cache.WithTTL(cfg.CacheTTL))
}
