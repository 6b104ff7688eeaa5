package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/mytheresa/product-categories/config"
	"github.com/mytheresa/product-categories/logger"
	"github.com/mytheresa/product-categories/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const unsortedFixtures = `
users:
  - {id: 2, name: Anna, sex: f}
  - {id: 1, name: Roma, sex: m}
  - {id: 1, name: Shadow, sex: m}
categories:
  - {id: 4, title: Electronics, icon: "💻", ownerId: 1}
  - {id: 1, title: Grocery, icon: "🍞", ownerId: 2}
products:
  - {id: 3, name: Zeta, categoryId: 1}
  - {id: 1, name: Alpha, categoryId: 4}
  - {id: 2, name: Mid, categoryId: 1}
`

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		DB: config.DBConfig{
			Driver: models.DriverSQLite,
			URL:    "file:" + t.Name() + "?mode=memory&cache=shared",
		},
	}
}

func TestLoadCatalog_KeepsFixtureOrder(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(unsortedFixtures), 0o600))
	cfg := testConfig(t)
	cfg.Fixtures = path

	// Act
	c, err := loadCatalog(cfg, logger.Nop())

	// Assert
	require.NoError(t, err)
	var products, users, categories []string
	for _, p := range c.Products() {
		products = append(products, p.Name)
	}
	for _, u := range c.Users() {
		users = append(users, u.Name)
	}
	for _, cat := range c.Categories() {
		categories = append(categories, cat.Title)
	}
	assert.Equal(t, []string{"Zeta", "Alpha", "Mid"}, products)
	assert.Equal(t, []string{"Anna", "Roma"}, users)
	assert.Equal(t, []string{"Electronics", "Grocery"}, categories)
	assert.Equal(t, "Roma", c.Products()[1].User.Name)
}

func TestLoadCatalog_AlreadySeeded(t *testing.T) {
	var logs bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "warn", Out: &logs})
	cfg := testConfig(t)

	db, err := models.OpenDB(cfg.DB.Driver, cfg.DB.URL)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()
	repo := models.NewCatalogRepository(db)
	require.NoError(t, repo.Migrate())
	require.NoError(t, repo.Seed(models.Fixtures{
		Products: []models.Product{{ID: 1, Name: "Stored", CategoryID: 1}},
	}))

	c, err := loadCatalog(cfg, log)

	require.NoError(t, err)
	require.Len(t, c.Products(), 1)
	assert.Equal(t, "Stored", c.Products()[0].Name)
	assert.Contains(t, logs.String(), "catalog already seeded")
}
