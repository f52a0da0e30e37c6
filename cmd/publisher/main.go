package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"order-store/internal/configs"
	"order-store/internal/delivery/kafka"
	"order-store/internal/fixtures"
	"order-store/internal/models"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debugf("no .env loaded: %s", err)
	}

	cfg, err := configs.LoadConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %s", err)
	}
	if err := cfg.SetupLogging(); err != nil {
		logrus.Fatalf("logging setup: %s", err)
	}
	logrus.Print("config loaded")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	brokers := cfg.KafkaBrokersSlice()
	if len(brokers) == 0 {
		logrus.Fatal("KAFKA_BROKERS is empty")
	}
	if err := kafka.EnsureTopic(ctx, brokers[0], kafka.TopicConfig(cfg.KafkaTopic, cfg.KafkaTopicPartitions)); err != nil {
		logrus.Fatalf("ensure topic %s: %s", cfg.KafkaTopic, err)
	}

	pub := kafka.NewPublisher(brokers, cfg.KafkaTopic)
	defer func() {
		if cerr := pub.Close(); cerr != nil {
			logrus.Errorf("publisher close: %v", cerr)
		}
	}()
	logrus.Print("connected to kafka")

	if cfg.JsonStaticModelPath != "" {
		if err := publishFile(ctx, pub, cfg.JsonStaticModelPath); err != nil {
			logrus.Fatalf("publish %s: %s", cfg.JsonStaticModelPath, err)
		}
		logrus.Print("successfully published static order JSON to kafka")
	}

	seed := cfg.PublishSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	f := gofakeit.New(seed)

	for i := 0; i < cfg.PublishCount; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				logrus.Print("interrupted")
				return
			case <-time.After(cfg.PublishDelay):
			}
		}

		o := fixtures.Order(f)
		body, err := json.Marshal(o)
		if err != nil {
			logrus.Fatalf("marshal order: %s", err)
		}
		if err := pub.Publish(ctx, o.OrderUID, body); err != nil {
			logrus.Fatalf("publish failed: %s", err)
		}
		logrus.WithFields(logrus.Fields{"uid": o.OrderUID, "n": i + 1}).Info("fake order published")
	}
}

func publishFile(ctx context.Context, pub *kafka.Publisher, path string) error {
	body, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var head models.Order
	if err := json.Unmarshal(body, &head); err != nil {
		return err
	}
	return pub.Publish(ctx, head.OrderUID, body)
}
