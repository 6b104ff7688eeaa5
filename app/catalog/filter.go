package catalog

import (
	"strings"

	"github.com/mytheresa/product-categories/models"
)

// VisibleProducts applies the owner, search and category filters, in that
// order, to the full product list. The input slice is not modified.
func VisibleProducts(products []models.Product, s ViewState) []models.Product {
	visible := products

	if s.SelectedUserID != nil {
		userID := *s.SelectedUserID
		visible = filter(visible, func(p models.Product) bool {
			return p.User != nil && p.User.ID == userID
		})
	}

	if s.Query != "" {
		// Unicode simple case mapping; locale-specific rules such as Turkish
		// dotted I are not applied.
		query := strings.ToLower(s.Query)
		visible = filter(visible, func(p models.Product) bool {
			return strings.Contains(strings.ToLower(p.Name), query)
		})
	}

	if s.SelectedCategoryTitle != "" {
		title := s.SelectedCategoryTitle
		visible = filter(visible, func(p models.Product) bool {
			return p.Category != nil && p.Category.Title == title
		})
	}

	return append([]models.Product{}, visible...)
}

func filter(products []models.Product, keep func(models.Product) bool) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
