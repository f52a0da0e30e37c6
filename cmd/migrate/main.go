package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"order-store/internal/configs"
	"order-store/internal/migrate"
	"order-store/internal/repository/postgres"
)

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

	dir, err := migrate.ParseDirection(cfg.Migration)
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.ConnectDB(cfg.Postgres())
	if err != nil {
		logrus.Fatalf("postgres connect: %s", err)
	}
	defer db.Close()

	m, err := migrate.New(db)
	if err != nil {
		logrus.Fatalf("migrator: %s", err)
	}
	ledger, err := m.Run(ctx, dir)
	if err != nil {
		logrus.Fatalf("migrate %s: %s", dir, err)
	}

	for _, a := range ledger {
		logrus.WithFields(logrus.Fields{
			"version":    a.Version,
			"name":       a.Name,
			"applied_at": a.AppliedAt.Format("2006-01-02 15:04:05"),
		}).Info("applied")
	}
	logrus.WithField("direction", dir).Infof("%d migrations applied", len(ledger))
}
