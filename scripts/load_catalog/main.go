package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"foodgram-backend/internal/config"
	"foodgram-backend/internal/database"
	"foodgram-backend/internal/logger"

	"github.com/urfave/cli/v3"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	log := logger.New()

	app := &cli.Command{
		Name:  "load_catalog",
		Usage: "Load measurement units, ingredients and tags into the database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "data-dir",
				Aliases: []string{"d"},
				Usage:   "Directory containing ingredients.json|yaml and tags.yaml",
				Value:   "scripts/data",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Parse and validate the files without writing to the database",
			},
			&cli.IntFlag{
				Name:  "connect-attempts",
				Usage: "How many times to try reaching the database before giving up",
				Value: 60,
			},
		},
		Action: run,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.WithError(err).Fatal("Catalog load failed")
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	log := logger.New()

	catalog, err := readCatalog(cmd.String("data-dir"))
	if err != nil {
		return err
	}
	log.WithFields(map[string]interface{}{
		"ingredients": len(catalog.Ingredients),
		"tags":        len(catalog.Tags),
	}).Info("Catalog files parsed")

	if cmd.Bool("dry-run") {
		log.Info("Dry run, nothing written")
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Wait for a dockerized Postgres to accept connections
	db, err := connectWithRetry(cfg, int(cmd.Int("connect-attempts")), time.Second)
	if err != nil {
		return err
	}

	stats, err := seedCatalog(ctx, db, catalog)
	if err != nil {
		return err
	}

	log.WithFields(map[string]interface{}{
		"units_created":       stats.UnitsCreated,
		"ingredients_created": stats.IngredientsCreated,
		"ingredients_skipped": stats.IngredientsSkipped,
		"tags_created":        stats.TagsCreated,
		"tags_skipped":        stats.TagsSkipped,
	}).Info("Catalog loaded")
	return nil
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(cfg *config.Config, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		Driver:   cfg.DatabaseDriver,
		LogLevel: gormlogger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(cfg.DatabaseURL, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			logger.New().WithError(err).Warnf("Database not ready (%d/%d)", attempt, maxAttempts)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}
