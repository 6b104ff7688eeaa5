package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Fixtures holds the raw, unjoined catalog collections.
type Fixtures struct {
	Users      []User     `yaml:"users"`
	Categories []Category `yaml:"categories"`
	Products   []Product  `yaml:"products"`
}

// DefaultFixtures returns the built-in catalog data set.
func DefaultFixtures() Fixtures {
	return Fixtures{
		Users: []User{
			{ID: 1, Name: "Roma", Sex: SexMale},
			{ID: 2, Name: "Anna", Sex: SexFemale},
			{ID: 3, Name: "Max", Sex: SexMale},
			{ID: 4, Name: "John", Sex: SexMale},
		},
		Categories: []Category{
			{ID: 1, Title: "Grocery", Icon: "🍞", OwnerID: 2},
			{ID: 2, Title: "Drinks", Icon: "🍺", OwnerID: 1},
			{ID: 3, Title: "Fruits", Icon: "🍏", OwnerID: 2},
			{ID: 4, Title: "Electronics", Icon: "💻", OwnerID: 1},
			{ID: 5, Title: "Clothes", Icon: "👚", OwnerID: 3},
		},
		Products: []Product{
			{ID: 1, Name: "Milk", CategoryID: 2},
			{ID: 2, Name: "Bread", CategoryID: 1},
			{ID: 3, Name: "Eggs", CategoryID: 1},
			{ID: 4, Name: "Jacket", CategoryID: 5},
			{ID: 5, Name: "Sugar", CategoryID: 1},
			{ID: 6, Name: "Apple", CategoryID: 3},
			{ID: 7, Name: "Laptop", CategoryID: 4},
			{ID: 8, Name: "Cap", CategoryID: 5},
			{ID: 9, Name: "Mango", CategoryID: 3},
		},
	}
}

// LoadFixtures reads a YAML fixture file with top-level keys
// users, categories and products.
func LoadFixtures(path string) (Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixtures{}, fmt.Errorf("read fixtures %s: %w", path, err)
	}

	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Fixtures{}, fmt.Errorf("parse fixtures %s: %w", path, err)
	}
	return f, nil
}
