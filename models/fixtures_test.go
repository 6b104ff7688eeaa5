package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixturesYAML = `
users:
  - id: 1
    name: Max
    sex: m
categories:
  - id: 1
    title: Fruits
    icon: "🍎"
    ownerId: 1
products:
  - id: 1
    name: Apple
    categoryId: 1
  - id: 2
    name: Banana
    categoryId: 99
`

func TestLoadFixtures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixturesYAML), 0o600))

	f, err := LoadFixtures(path)

	require.NoError(t, err)
	assert.Equal(t, []User{{ID: 1, Name: "Max", Sex: SexMale}}, f.Users)
	assert.Equal(t, []Category{{ID: 1, Title: "Fruits", Icon: "🍎", OwnerID: 1}}, f.Categories)
	assert.Equal(t, []Product{
		{ID: 1, Name: "Apple", CategoryID: 1},
		{ID: 2, Name: "Banana", CategoryID: 99},
	}, f.Products)
}

func TestLoadFixtures_Errors(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("users: [: nope"), 0o600))

	testCases := []struct {
		name string
		path string
	}{
		{name: "Missing file", path: filepath.Join(dir, "missing.yaml")},
		{name: "Invalid YAML", path: broken},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadFixtures(tc.path)

			assert.Error(t, err)
			assert.Contains(t, err.Error(), tc.path)
		})
	}
}

func TestDefaultFixtures_KeysResolve(t *testing.T) {
	f := DefaultFixtures()

	users := map[uint]bool{}
	for _, u := range f.Users {
		users[u.ID] = true
	}
	categories := map[uint]bool{}
	for _, c := range f.Categories {
		categories[c.ID] = true
		assert.True(t, users[c.OwnerID], "category %q owner should exist", c.Title)
	}
	for _, p := range f.Products {
		assert.True(t, categories[p.CategoryID], "product %q category should exist", p.Name)
	}
}
