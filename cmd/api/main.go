package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/foxypassword/foxypassword-go/internal/config"
	"github.com/foxypassword/foxypassword-go/internal/crypto"
	"github.com/foxypassword/foxypassword-go/internal/handler"
	"github.com/foxypassword/foxypassword-go/internal/middleware"
	"github.com/foxypassword/foxypassword-go/internal/service"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(cfg.LogLevel)

	gen, err := crypto.NewGenerator(cfg.Policy())
	if err != nil {
		slog.Error("invalid length policy", "error", err)
		os.Exit(1)
	}

	genService := service.NewGeneratorService(gen, cfg.DefaultLength, cfg.MaxCount)
	genHandler := handler.NewGeneratorHandler(genService)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	limiter := middleware.NewIPRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go limiter.RunCleanup(ctx)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler.NewRouter(genHandler, limiter),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", srv.Addr, "env", cfg.Env,
			"min_length", cfg.MinLength, "max_length", cfg.MaxLength)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
