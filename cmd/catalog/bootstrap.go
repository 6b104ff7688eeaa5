package main

import (
	"errors"
	"fmt"

	"github.com/mytheresa/product-categories/app/catalog"
	"github.com/mytheresa/product-categories/config"
	"github.com/mytheresa/product-categories/logger"
	"github.com/mytheresa/product-categories/models"
)

// loadCatalog stores the fixtures in the configured database, reads them
// back and joins them once.
func loadCatalog(cfg *config.Config, log *logger.Logger) (*catalog.Catalog, error) {
	fixtures := models.DefaultFixtures()
	path := cfg.Fixtures
	if fixturesPath != "" {
		path = fixturesPath
	}
	if path != "" {
		f, err := models.LoadFixtures(path)
		if err != nil {
			return nil, err
		}
		fixtures = f
		log.Debug().Str("path", path).Msg("fixtures read from file")
	}

	db, err := models.OpenDB(cfg.DB.Driver, cfg.DB.URL)
	if err != nil {
		return nil, err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	repo := models.NewCatalogRepository(db)
	if err := repo.Migrate(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	if err := repo.Seed(fixtures); err != nil {
		if !errors.Is(err, models.ErrAlreadySeeded) {
			return nil, fmt.Errorf("seed: %w", err)
		}
		log.Warn().Msg("catalog already seeded, using stored rows")
	}

	stored, err := repo.LoadFixtures()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	log.Info().
		Str("driver", cfg.DB.Driver).
		Int("users", len(stored.Users)).
		Int("categories", len(stored.Categories)).
		Int("products", len(stored.Products)).
		Msg("catalog loaded")

	return catalog.NewCatalog(stored), nil
}
