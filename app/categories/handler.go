package categories

import (
	"net/http"

	"github.com/mytheresa/product-categories/app/api"
	"github.com/mytheresa/product-categories/models"
)

type Owner struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type CategoryResponse struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
	Owner *Owner `json:"owner"`
}

type CategoryProvider interface {
	Users() []models.User
	Categories() []models.Category
}

type CategoryHandler struct {
	repo CategoryProvider
}

func NewCategoryHandler(r CategoryProvider) *CategoryHandler {
	return &CategoryHandler{repo: r}
}

// HandleGetAll lists every category with its owner, or a null owner when
// OwnerID matches no user.
func (h *CategoryHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	owners := make(map[uint]models.User)
	for _, u := range h.repo.Users() {
		if _, ok := owners[u.ID]; !ok {
			owners[u.ID] = u
		}
	}

	categories := h.repo.Categories()
	response := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		response[i] = CategoryResponse{
			ID:    c.ID,
			Title: c.Title,
			Icon:  c.Icon,
		}
		if u, ok := owners[c.OwnerID]; ok {
			response[i].Owner = &Owner{ID: u.ID, Name: u.Name}
		}
	}

	api.OKResponse(w, response)
}
