package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"pc-build-tracker-backend/internal/config"
	"pc-build-tracker-backend/internal/database"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	dataDir := flag.String("dir", "scripts/data", "directory with catalog YAML files")
	flag.Parse()

	log.Println("Loading component catalog from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Postgres may still be starting when run from docker compose
	db, err := connectWithRetry(cfg, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	total, err := loadCatalogDir(db, *dataDir)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	log.Printf("Catalog loaded, %d new components", total)
}

func connectWithRetry(cfg *config.Config, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		Driver:   cfg.DatabaseDriver,
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(cfg.DatabaseURL, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadCatalogDir(db *gorm.DB, dataDir string) (int, error) {
	total := 0

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !(strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")) {
			return nil
		}

		catalog, err := database.LoadCatalog(path)
		if err != nil {
			return err
		}
		inserted, err := database.SeedCatalog(db, catalog)
		if err != nil {
			return fmt.Errorf("seed %s: %w", path, err)
		}
		log.Printf("%s: %d of %d entries inserted", path, inserted, len(catalog.Components))
		total += inserted
		return nil
	})

	return total, err
}
