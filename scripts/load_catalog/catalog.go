package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"foodgram-backend/internal/database/models"
	"foodgram-backend/internal/repository"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// IngredientData is one catalog ingredient as it appears in the data files
type IngredientData struct {
	Name            string `json:"name" yaml:"name"`
	MeasurementUnit string `json:"measurement_unit" yaml:"measurement_unit"`
}

// TagData is one tag as it appears in tags.yaml
type TagData struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
	Slug  string `yaml:"slug"`
}

// Catalog holds everything read from a data directory
type Catalog struct {
	Ingredients []IngredientData
	Tags        []TagData
}

// LoadStats counts what a load run created and what already existed
type LoadStats struct {
	UnitsCreated       int
	IngredientsCreated int
	IngredientsSkipped int
	TagsCreated        int
	TagsSkipped        int
}

// readCatalog reads ingredients (ingredients.json, else ingredients.yaml) and
// tags.yaml from dataDir. A missing file yields an empty section.
func readCatalog(dataDir string) (*Catalog, error) {
	ingredients, err := readIngredients(dataDir)
	if err != nil {
		return nil, err
	}
	tags, err := readTags(dataDir)
	if err != nil {
		return nil, err
	}
	catalog := &Catalog{Ingredients: ingredients, Tags: tags}
	if err := catalog.normalize(); err != nil {
		return nil, err
	}
	return catalog, nil
}

func readIngredients(dataDir string) ([]IngredientData, error) {
	var ingredients []IngredientData

	data, err := os.ReadFile(filepath.Join(dataDir, "ingredients.json"))
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &ingredients); err != nil {
			return nil, fmt.Errorf("failed to parse ingredients.json: %w", err)
		}
		return ingredients, nil
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("failed to read ingredients.json: %w", err)
	}

	data, err = os.ReadFile(filepath.Join(dataDir, "ingredients.yaml"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read ingredients.yaml: %w", err)
	}
	if err := yaml.Unmarshal(data, &ingredients); err != nil {
		return nil, fmt.Errorf("failed to parse ingredients.yaml: %w", err)
	}
	return ingredients, nil
}

func readTags(dataDir string) ([]TagData, error) {
	data, err := os.ReadFile(filepath.Join(dataDir, "tags.yaml"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read tags.yaml: %w", err)
	}
	var tags []TagData
	if err := yaml.Unmarshal(data, &tags); err != nil {
		return nil, fmt.Errorf("failed to parse tags.yaml: %w", err)
	}
	return tags, nil
}

// normalize trims every field and rejects entries with a blank field
func (c *Catalog) normalize() error {
	for i := range c.Ingredients {
		item := &c.Ingredients[i]
		item.Name = strings.TrimSpace(item.Name)
		item.MeasurementUnit = strings.TrimSpace(item.MeasurementUnit)
		if item.Name == "" || item.MeasurementUnit == "" {
			return fmt.Errorf("ingredient #%d: name and measurement_unit are required", i+1)
		}
	}
	for i := range c.Tags {
		tag := &c.Tags[i]
		tag.Name = strings.TrimSpace(tag.Name)
		tag.Color = strings.TrimSpace(tag.Color)
		tag.Slug = strings.TrimSpace(tag.Slug)
		if tag.Name == "" || tag.Color == "" || tag.Slug == "" {
			return fmt.Errorf("tag #%d: name, color and slug are required", i+1)
		}
	}
	return nil
}

// seedCatalog upserts the catalog in one transaction. Units are shared by
// name, ingredients are keyed on (name, unit) and tags on slug, so running it
// twice creates nothing the second time.
func seedCatalog(ctx context.Context, db *gorm.DB, catalog *Catalog) (LoadStats, error) {
	var stats LoadStats

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		units := repository.NewMeasurementUnitRepository(tx)
		ingredients := repository.NewIngredientRepository(tx)
		tags := repository.NewTagRepository(tx)

		unitIDs := make(map[string]uint)
		for _, item := range catalog.Ingredients {
			unitID, ok := unitIDs[item.MeasurementUnit]
			if !ok {
				unit, created, err := units.GetOrCreate(ctx, item.MeasurementUnit)
				if err != nil {
					return fmt.Errorf("failed to store unit %q: %w", item.MeasurementUnit, err)
				}
				if created {
					stats.UnitsCreated++
				}
				unitID = unit.ID
				unitIDs[item.MeasurementUnit] = unitID
			}

			_, created, err := ingredients.GetOrCreate(ctx, item.Name, unitID)
			if err != nil {
				return fmt.Errorf("failed to store ingredient %q: %w", item.Name, err)
			}
			if created {
				stats.IngredientsCreated++
			} else {
				stats.IngredientsSkipped++
			}
		}

		for _, item := range catalog.Tags {
			tag := &models.Tag{Name: item.Name, Color: item.Color, Slug: item.Slug}
			created, err := tags.GetOrCreate(ctx, tag)
			if err != nil {
				return fmt.Errorf("failed to store tag %q: %w", item.Slug, err)
			}
			if created {
				stats.TagsCreated++
			} else {
				stats.TagsSkipped++
			}
		}
		return nil
	})
	if err != nil {
		return LoadStats{}, err
	}
	return stats, nil
}
