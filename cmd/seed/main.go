package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/Radmir1876/Zadaniedek1/app/config"
	"github.com/Radmir1876/Zadaniedek1/app/database"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}
	slog.SetDefault(config.SetupLogger(cfg.Log))

	if err := run(context.Background(), cfg.Database); err != nil {
		slog.Error("seeding failed", "error", err)
		os.Exit(1)
	}
	slog.Info("seeding complete")
}

func run(ctx context.Context, cfg config.DatabaseConfig) error {
	db, closeDB, err := database.New(cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	if err := database.Migrate(db); err != nil {
		return err
	}
	return database.Seed(ctx, db)
}
