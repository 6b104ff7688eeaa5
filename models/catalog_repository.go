package models

import (
	"errors"

	"gorm.io/gorm"
)

type CatalogRepository struct {
	db *gorm.DB
}

var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrAlreadySeeded is returned by Seed when the catalog already has rows.
	ErrAlreadySeeded = errors.New("catalog already seeded")
)

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{
		db: db,
	}
}

func (r *CatalogRepository) Migrate() error {
	return r.db.AutoMigrate(&User{}, &Category{}, &Product{})
}

// Seed inserts copies of the fixtures in a single transaction. Each row keeps
// its fixture index in Position, and rows repeating an earlier ID are skipped.
// Foreign keys are not enforced: products may point at missing categories and
// categories at missing users.
func (r *CatalogRepository) Seed(f Fixtures) error {
	users := make([]User, 0, len(f.Users))
	for _, u := range uniqueByID(f.Users, func(u User) uint { return u.ID }) {
		u.Position = len(users)
		users = append(users, u)
	}
	categories := make([]Category, 0, len(f.Categories))
	for _, c := range uniqueByID(f.Categories, func(c Category) uint { return c.ID }) {
		c.Position = len(categories)
		c.User = nil
		categories = append(categories, c)
	}
	products := make([]Product, 0, len(f.Products))
	for _, p := range uniqueByID(f.Products, func(p Product) uint { return p.ID }) {
		p.Position = len(products)
		p.Category, p.User = nil, nil
		products = append(products, p)
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Product{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadySeeded
		}

		if len(users) > 0 {
			if err := tx.Create(&users).Error; err != nil {
				return err
			}
		}
		if len(categories) > 0 {
			if err := tx.Create(&categories).Error; err != nil {
				return err
			}
		}
		if len(products) > 0 {
			if err := tx.Create(&products).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Rows come back in fixture order.

func (r *CatalogRepository) GetAllUsers() ([]User, error) {
	var users []User
	if err := r.db.Order("position, id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *CatalogRepository) GetAllCategories() ([]Category, error) {
	var categories []Category
	if err := r.db.Order("position, id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CatalogRepository) GetAllProducts() ([]Product, error) {
	var products []Product
	if err := r.db.Order("position, id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// LoadFixtures reads all three collections back from the database.
func (r *CatalogRepository) LoadFixtures() (Fixtures, error) {
	users, err := r.GetAllUsers()
	if err != nil {
		return Fixtures{}, err
	}
	categories, err := r.GetAllCategories()
	if err != nil {
		return Fixtures{}, err
	}
	products, err := r.GetAllProducts()
	if err != nil {
		return Fixtures{}, err
	}
	return Fixtures{Users: users, Categories: categories, Products: products}, nil
}

// uniqueByID keeps the first row for every ID, in input order.
func uniqueByID[T any](rows []T, id func(T) uint) []T {
	seen := make(map[uint]bool, len(rows))
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		if seen[id(row)] {
			continue
		}
		seen[id(row)] = true
		out = append(out, row)
	}
	return out
}
