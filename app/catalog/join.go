package catalog

import (
	"github.com/mytheresa/product-categories/models"
)

// BuildProducts joins every product with its category and the category's
// owner. Lookups take the first row with a matching ID, and output order
// follows products. A dangling CategoryID leaves both
// Category and User nil; a dangling OwnerID leaves only User nil.
func BuildProducts(users []models.User, categories []models.Category, products []models.Product) []models.Product {
	usersByID := make(map[uint]*models.User, len(users))
	for i := range users {
		u := users[i]
		if _, ok := usersByID[u.ID]; !ok {
			usersByID[u.ID] = &u
		}
	}

	categoriesByID := make(map[uint]*models.Category, len(categories))
	for i := range categories {
		c := categories[i]
		if _, ok := categoriesByID[c.ID]; ok {
			continue
		}
		c.User = usersByID[c.OwnerID]
		categoriesByID[c.ID] = &c
	}

	joined := make([]models.Product, len(products))
	for i, p := range products {
		p.Category = categoriesByID[p.CategoryID]
		p.User = nil
		if p.Category != nil {
			p.User = p.Category.User
		}
		joined[i] = p
	}
	return joined
}
