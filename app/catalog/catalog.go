package catalog

import (
	"github.com/mytheresa/product-categories/models"
)

// Catalog is the joined, read-only product list together with the users and
// categories the filter bars are built from. It is built once and safe for
// concurrent readers.
type Catalog struct {
	users      []models.User
	categories []models.Category
	products   []models.Product
	byID       map[uint]int
}

func NewCatalog(f models.Fixtures) *Catalog {
	products := BuildProducts(f.Users, f.Categories, f.Products)

	byID := make(map[uint]int, len(products))
	for i, p := range products {
		if _, ok := byID[p.ID]; !ok {
			byID[p.ID] = i
		}
	}

	return &Catalog{
		users:      append([]models.User(nil), f.Users...),
		categories: append([]models.Category(nil), f.Categories...),
		products:   products,
		byID:       byID,
	}
}

func (c *Catalog) Users() []models.User {
	return c.users
}

func (c *Catalog) Categories() []models.Category {
	return c.categories
}

func (c *Catalog) Products() []models.Product {
	return c.products
}

func (c *Catalog) ProductByID(id uint) (*models.Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, models.ErrProductNotFound
	}
	p := c.products[i]
	return &p, nil
}
