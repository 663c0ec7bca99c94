package database

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"pc-build-tracker-backend/internal/database/models"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// CatalogFile is the YAML layout of a global component catalog
type CatalogFile struct {
	Components []CatalogEntry `yaml:"components"`
}

// CatalogEntry is one global component definition
type CatalogEntry struct {
	Name     string            `yaml:"name"`
	Category string            `yaml:"category"`
	Brand    string            `yaml:"brand"`
	Model    string            `yaml:"model"`
	Specs    map[string]string `yaml:"specs,omitempty"`
}

// LoadCatalog reads and parses a catalog file
func LoadCatalog(path string) (*CatalogFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return ParseCatalog(raw)
}

// ParseCatalog parses catalog YAML and validates each entry
func ParseCatalog(raw []byte) (*CatalogFile, error) {
	var catalog CatalogFile
	if err := yaml.Unmarshal(raw, &catalog); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	for i, entry := range catalog.Components {
		if strings.TrimSpace(entry.Name) == "" || strings.TrimSpace(entry.Brand) == "" || strings.TrimSpace(entry.Model) == "" {
			return nil, fmt.Errorf("catalog entry %d: name, brand and model are required", i)
		}
		if !models.ComponentCategory(entry.Category).IsValid() {
			return nil, fmt.Errorf("catalog entry %d: unknown category %q", i, entry.Category)
		}
	}
	return &catalog, nil
}

// SeedCatalog inserts global catalog entries that do not exist yet.
// Entries are matched on category, brand and model, so seeding is idempotent.
// It returns the number of inserted components.
func SeedCatalog(db *gorm.DB, catalog *CatalogFile) (int, error) {
	inserted := 0
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, entry := range catalog.Components {
			var existing models.Component
			err := tx.Where("owner_id IS NULL AND category = ? AND brand = ? AND model = ?",
				entry.Category, entry.Brand, entry.Model).First(&existing).Error
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("lookup catalog entry %s %s: %w", entry.Brand, entry.Model, err)
			}

			component := &models.Component{
				Name:     entry.Name,
				Category: models.ComponentCategory(entry.Category),
				Brand:    entry.Brand,
				Model:    entry.Model,
				Specs:    models.Specs(entry.Specs),
			}
			if err := tx.Create(component).Error; err != nil {
				return fmt.Errorf("insert catalog entry %s %s: %w", entry.Brand, entry.Model, err)
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	logrus.WithField("inserted", inserted).Info("Catalog seeding completed")
	return inserted, nil
}
