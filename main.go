package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"slas-calculator/internal/config"
	"slas-calculator/internal/handler"
	"slas-calculator/internal/logging"
	"slas-calculator/internal/metrics"
	"slas-calculator/internal/pricing"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg := config.FromEnv()
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	h := handler.New(pricing.NewEngine(pricing.WithLogger(logger)), metrics.New(), logger, cfg.StaticDir)
	srv := &fasthttp.Server{
		Handler: h.Router(),
		Name:    "slas-pricing",
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("pricing service starting", zap.String("addr", cfg.Addr))
		return srv.ListenAndServe(cfg.Addr)
	})
	g.Go(func() error {
		<-ctx.Done()
		return srv.Shutdown()
	})

	if err := g.Wait(); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
	logger.Info("pricing service stopped")
}
