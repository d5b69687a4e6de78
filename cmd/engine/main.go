package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"rompefaja/internal/config"
	"rompefaja/internal/infrastructure/kafka"
	"rompefaja/internal/infrastructure/logger"
	"rompefaja/internal/infrastructure/mysql"
	"rompefaja/internal/metrics"
	"rompefaja/internal/order"
	"rompefaja/internal/order/feed"
	"rompefaja/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	metrics.Init()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	feedClient, err := kafka.NewClient(cfg.Feed)
	if err != nil {
		zapLogger.Fatal("connecting to change feed", zap.Error(err))
	}
	source := feed.NewKafkaSource(feedClient)
	defer source.Close()

	engine := order.NewModule(db, source, cfg, zapLogger)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	if err := engine.Service.Refresh(ctx); err != nil {
		zapLogger.Warn("initial load failed, continuing with empty store", zap.Error(err))
	}

	if err := engine.Listener.Subscribe(ctx); err != nil {
		zapLogger.Fatal("subscribing to change feed", zap.Error(err))
	}

	router := server.NewRouter(engine.Controller, zapLogger)
	srv := server.New(cfg.Server, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	engine.Listener.Unsubscribe()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("engine stopped gracefully")
}
