package http

import (
	"net/http"
	"strconv"

	"github.com/fjod/go_pos/internal/catalog"
	"github.com/fjod/go_pos/internal/domain"
	"github.com/go-chi/chi/v5"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(c *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: c}
}

type ProductDTO struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Category string  `json:"category"`
}

type ProductGroupDTO struct {
	Digit    string       `json:"digit"`
	Products []ProductDTO `json:"products"`
}

// Get returns the full inventory grouped by leading id digit, the way the
// register displays it.
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	groups := h.catalog.GroupByLeadingDigit()

	result := make([]ProductGroupDTO, 0, len(groups))
	for _, g := range groups {
		result = append(result, ProductGroupDTO{
			Digit:    g.Digit,
			Products: toProductDTOs(g.Products),
		})
	}
	respondJSON(w, http.StatusOK, result)
}

// GetByID returns a single product by exact id.
func (h *CatalogHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product id must be a positive integer")
		return
	}

	p, err := h.catalog.Find(id)
	if err != nil {
		handleEngineError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toProductDTO(p))
}

// Search matches products by name or category, case-insensitively. An empty
// result is a normal 200 response.
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	respondJSON(w, http.StatusOK, toProductDTOs(h.catalog.Search(query)))
}

func toProductDTO(p *domain.Product) ProductDTO {
	return ProductDTO{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Stock:    p.Stock,
		Category: p.Category,
	}
}

func toProductDTOs(products []*domain.Product) []ProductDTO {
	result := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		result = append(result, toProductDTO(p))
	}
	return result
}
