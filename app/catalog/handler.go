package catalog

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/mytheresa/product-categories/app/api"
	"github.com/mytheresa/product-categories/models"
)

type Response struct {
	Total    int       `json:"total"`
	Products []Product `json:"products"`
}

type Category struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
}

type User struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Sex  string `json:"sex"`
}

type Product struct {
	ID       uint      `json:"id"`
	Name     string    `json:"name"`
	Category *Category `json:"category"`
	User     *User     `json:"user"`
}

type ProductProvider interface {
	Source
	ProductByID(id uint) (*models.Product, error)
}

type CatalogHandler struct {
	repo     ProductProvider
	basePath string
}

func NewCatalogHandler(r ProductProvider, basePath string) *CatalogHandler {
	if basePath == "" {
		basePath = "/"
	}
	return &CatalogHandler{
		repo:     r,
		basePath: basePath,
	}
}

// HandlePage renders the HTML catalog for the state in the query string.
func (h *CatalogHandler) HandlePage(w http.ResponseWriter, r *http.Request) {
	state := ParseViewState(r.URL.Query())
	page := BuildPage(h.repo, state, h.basePath)

	var buf bytes.Buffer
	if err := RenderPage(&buf, page); err != nil {
		http.Error(w, "failed to render catalog", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// HandleGet lists the visible products as JSON, using the same query
// parameters as the HTML page.
func (h *CatalogHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	state := ParseViewState(r.URL.Query())
	visible := VisibleProducts(h.repo.Products(), state)

	products := make([]Product, len(visible))
	for i, p := range visible {
		products[i] = toProductResponse(p)
	}

	api.OKResponse(w, Response{
		Total:    len(products),
		Products: products,
	})
}

func (h *CatalogHandler) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 0)
	if err != nil {
		api.ErrorResponseJSON(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	product, err := h.repo.ProductByID(uint(id))
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			api.ErrorResponseJSON(w, http.StatusNotFound, "Product not found")
			return
		}
		api.ErrorResponseJSON(w, http.StatusInternalServerError, "Failed to retrieve product")
		return
	}

	api.OKResponse(w, toProductResponse(*product))
}

func toProductResponse(p models.Product) Product {
	out := Product{
		ID:   p.ID,
		Name: p.Name,
	}
	if p.Category != nil {
		out.Category = &Category{
			ID:    p.Category.ID,
			Title: p.Category.Title,
			Icon:  p.Category.Icon,
		}
	}
	if p.User != nil {
		out.User = &User{
			ID:   p.User.ID,
			Name: p.User.Name,
			Sex:  p.User.Sex,
		}
	}
	return out
}
