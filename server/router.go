package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mytheresa/product-categories/app/api"
	"github.com/mytheresa/product-categories/app/catalog"
	"github.com/mytheresa/product-categories/app/categories"
	"github.com/mytheresa/product-categories/app/users"
	"github.com/mytheresa/product-categories/logger"
)

// NewRouter wires the HTML page and the JSON API over one catalog.
func NewRouter(c *catalog.Catalog, log *logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(logger.RequestLogger(log))
	r.Use(middleware.Recoverer)

	catalogHandler := catalog.NewCatalogHandler(c, "/")
	categoryHandler := categories.NewCategoryHandler(c)
	userHandler := users.NewUserHandler(c)

	r.Get("/", catalogHandler.HandlePage)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		api.OKResponse(w, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", catalogHandler.HandleGet)
		r.Get("/products/{id}", catalogHandler.HandleGetProduct)
		r.Get("/categories", categoryHandler.HandleGetAll)
		r.Get("/users", userHandler.HandleGetAll)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		api.ErrorResponseJSON(w, http.StatusNotFound, "Not found")
	})

	return r
}
