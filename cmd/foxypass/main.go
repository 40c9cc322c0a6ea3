package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/foxypassword/foxypassword-go/internal/cli"
	"github.com/foxypassword/foxypassword-go/internal/config"
	"github.com/foxypassword/foxypassword-go/internal/crypto"
	"github.com/foxypassword/foxypassword-go/internal/service"
	"github.com/joho/godotenv"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))
	if envErr != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	gen, err := crypto.NewGenerator(cfg.Policy())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	svc := service.NewGeneratorService(gen, cfg.DefaultLength, cfg.MaxCount)
	os.Exit(cli.Execute(os.Args[1:], svc, os.Stdout, os.Stderr))
}
