package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"sebet/internal/auth"
	"sebet/internal/category"
	"sebet/internal/config"
	"sebet/internal/infrastructure/logger"
	"sebet/internal/infrastructure/mongodb"
	"sebet/internal/infrastructure/redisdb"
	"sebet/internal/metrics"
	"sebet/internal/notify"
	"sebet/internal/order"
	"sebet/internal/product"
	"sebet/internal/server"
	"sebet/internal/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, disconnect, err := mongodb.NewConnection(cfg.Mongo)
	if err != nil {
		zapLogger.Fatal("connecting to mongodb", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := disconnect(ctx); err != nil {
			zapLogger.Error("disconnecting mongodb", zap.Error(err))
		}
	}()
	zapLogger.Info("mongodb connected", zap.String("database", cfg.Mongo.Database))

	var dedupe notify.DedupeStore
	redisClient, err := redisdb.NewClient(cfg.Redis)
	if err != nil {
		zapLogger.Warn("redis unavailable, notification dedupe disabled", zap.Error(err))
	} else {
		defer redisClient.Close()
		dedupe = notify.NewRedisDedupeStore(redisClient)
		zapLogger.Info("redis connected", zap.String("addr", cfg.Redis.Addr))
	}

	dispatcher := notify.NewDispatcher(cfg.Telegram, &http.Client{}, dedupe, zapLogger)

	userCtrl, userUC := user.NewModule(db, zapLogger)
	orderCtrl := order.NewModule(db, dispatcher, zapLogger)
	productCtrl := product.NewModule(db, zapLogger)
	categoryCtrl := category.NewModule(db, zapLogger)

	verifier := auth.NewVerifier(cfg.Auth.Secret, cfg.Auth.Issuer)
	authMiddleware := auth.Middleware(verifier, userUC, zapLogger)

	registry := prometheus.NewRegistry()
	serverMetrics := metrics.NewServerMetrics(registry)

	router := server.NewRouter(cfg, server.Controllers{
		Orders:     orderCtrl,
		Products:   productCtrl,
		Categories: categoryCtrl,
		Users:      userCtrl,
	}, authMiddleware, serverMetrics, metrics.Handler(registry), zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
