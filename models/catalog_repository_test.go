package models

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *CatalogRepository {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := OpenDB(DriverSQLite, fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	repo := NewCatalogRepository(db)
	require.NoError(t, repo.Migrate())
	return repo
}

func TestCatalogRepository_SeedAndLoad(t *testing.T) {
	// Arrange
	repo := newTestRepo(t)
	fixtures := DefaultFixtures()

	// Act
	err := repo.Seed(fixtures)
	require.NoError(t, err)
	loaded, err := repo.LoadFixtures()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, fixtures.Users, withoutPositions(loaded).Users)
	assert.Equal(t, fixtures.Categories, withoutPositions(loaded).Categories)
	assert.Equal(t, fixtures.Products, withoutPositions(loaded).Products)
	for i, p := range loaded.Products {
		assert.Equal(t, i, p.Position)
	}
}

// withoutPositions clears the storage-only Position column so loaded rows can
// be compared with fixtures.
func withoutPositions(f Fixtures) Fixtures {
	out := Fixtures{
		Users:      append([]User(nil), f.Users...),
		Categories: append([]Category(nil), f.Categories...),
		Products:   append([]Product(nil), f.Products...),
	}
	for i := range out.Users {
		out.Users[i].Position = 0
	}
	for i := range out.Categories {
		out.Categories[i].Position = 0
	}
	for i := range out.Products {
		out.Products[i].Position = 0
	}
	return out
}

func TestCatalogRepository_LoadKeepsFixtureOrder(t *testing.T) {
	// Arrange
	repo := newTestRepo(t)
	fixtures := Fixtures{
		Users: []User{
			{ID: 2, Name: "Anna", Sex: SexFemale},
			{ID: 1, Name: "Roma", Sex: SexMale},
		},
		Categories: []Category{
			{ID: 5, Title: "Clothes", Icon: "👚", OwnerID: 1},
			{ID: 1, Title: "Grocery", Icon: "🍞", OwnerID: 2},
		},
		Products: []Product{
			{ID: 3, Name: "Zeta", CategoryID: 1},
			{ID: 1, Name: "Alpha", CategoryID: 5},
			{ID: 2, Name: "Mid", CategoryID: 1},
		},
	}

	// Act
	require.NoError(t, repo.Seed(fixtures))
	loaded, err := repo.LoadFixtures()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, fixtures, withoutPositions(loaded))
}

func TestCatalogRepository_SeedSkipsDuplicateIDs(t *testing.T) {
	// Arrange
	repo := newTestRepo(t)
	fixtures := Fixtures{
		Users: []User{
			{ID: 1, Name: "First", Sex: SexFemale},
			{ID: 1, Name: "Second", Sex: SexMale},
		},
		Categories: []Category{
			{ID: 1, Title: "Tools", Icon: "🔨", OwnerID: 1},
			{ID: 1, Title: "Toys", Icon: "🧸", OwnerID: 1},
		},
		Products: []Product{
			{ID: 7, Name: "Hammer", CategoryID: 1},
			{ID: 8, Name: "Saw", CategoryID: 1},
			{ID: 7, Name: "Ball", CategoryID: 1},
		},
	}

	// Act
	err := repo.Seed(fixtures)
	require.NoError(t, err)
	loaded, err := repo.LoadFixtures()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []User{{ID: 1, Name: "First", Sex: SexFemale}}, withoutPositions(loaded).Users)
	assert.Equal(t, []Category{{ID: 1, Title: "Tools", Icon: "🔨", OwnerID: 1}}, withoutPositions(loaded).Categories)
	assert.Equal(t, []Product{
		{ID: 7, Name: "Hammer", CategoryID: 1},
		{ID: 8, Name: "Saw", CategoryID: 1, Position: 1},
	}, loaded.Products)
}

func TestCatalogRepository_SeedTwice(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, repo.Seed(DefaultFixtures()))

	err := repo.Seed(DefaultFixtures())

	assert.ErrorIs(t, err, ErrAlreadySeeded)
}

func TestCatalogRepository_SeedKeepsDanglingKeys(t *testing.T) {
	repo := newTestRepo(t)
	fixtures := Fixtures{
		Users:      []User{{ID: 1, Name: "Max", Sex: SexMale}},
		Categories: []Category{{ID: 1, Title: "Fruits", Icon: "🍎", OwnerID: 1}},
		Products: []Product{
			{ID: 1, Name: "Apple", CategoryID: 1},
			{ID: 2, Name: "Banana", CategoryID: 99},
		},
	}
	require.NoError(t, repo.Seed(fixtures))

	products, err := repo.GetAllProducts()

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, uint(99), products[1].CategoryID)
	assert.Nil(t, products[1].Category)
}

func TestCatalogRepository_SeedDoesNotMutateInput(t *testing.T) {
	repo := newTestRepo(t)
	fixtures := DefaultFixtures()
	before := DefaultFixtures()

	require.NoError(t, repo.Seed(fixtures))

	assert.Equal(t, before, fixtures)
}

func TestOpenDB_UnknownDriver(t *testing.T) {
	db, err := OpenDB("oracle", "dsn")

	assert.Nil(t, db)
	assert.ErrorIs(t, err, ErrUnknownDriver)
}
