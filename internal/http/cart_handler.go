package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/fjod/go_pos/internal/auth"
	"github.com/fjod/go_pos/internal/cart"
	"github.com/fjod/go_pos/internal/catalog"
	"github.com/fjod/go_pos/internal/checkout"
	"github.com/fjod/go_pos/internal/domain"
	"github.com/fjod/go_pos/internal/session"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	cart       *cart.Cart
	catalog    *catalog.Catalog
	controller *checkout.Controller
	gate       auth.Gate
	sessions   session.Store
	registerID string
}

func NewCartHandler(c *cart.Cart, cat *catalog.Catalog, ctrl *checkout.Controller,
	gate auth.Gate, sessions session.Store, registerID string) *CartHandler {
	return &CartHandler{
		cart:       c,
		catalog:    cat,
		controller: ctrl,
		gate:       gate,
		sessions:   sessions,
		registerID: registerID,
	}
}

type AddItemRequestDTO struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type CartLineDTO struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

type CartResponseDTO struct {
	Items    []CartLineDTO `json:"items"`
	Subtotal float64       `json:"subtotal"`
	Tax      float64       `json:"tax"`
	Discount float64       `json:"discount"`
	Total    float64       `json:"total"`
}

// Get returns the cart with pricing recomputed from live state.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.cartResponse())
}

// AddItem reserves stock for the in-progress transaction. Line mutations are
// only legal while the checkout is OPEN.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.principal(w, r); !ok {
		return
	}
	if !h.requireOpen(w) {
		return
	}

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be positive")
		return
	}

	p, err := h.catalog.Find(req.ProductID)
	if err != nil {
		handleEngineError(w, err)
		return
	}

	if err := h.cart.AddLine(r.Context(), p, req.Quantity); err != nil {
		handleEngineError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, h.cartResponse())
}

// RemoveItem returns reserved stock to the catalog. Removal outside checkout
// is a privileged operation.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.principal(w, r)
	if !ok {
		return
	}
	if !h.gate.IsPrivileged(principal) {
		respondError(w, http.StatusForbidden, "unauthorized", "admin privileges required to remove items")
		return
	}
	if !h.requireOpen(w) {
		return
	}

	productID, err := strconv.ParseInt(chi.URLParam(r, "product_id"), 10, 64)
	if err != nil || productID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product id must be a positive integer")
		return
	}
	quantity, err := strconv.Atoi(r.URL.Query().Get("quantity"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be an integer")
		return
	}

	if err := h.cart.RemoveLine(r.Context(), productID, quantity); err != nil {
		handleEngineError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, h.cartResponse())
}

func (h *CartHandler) principal(w http.ResponseWriter, r *http.Request) (domain.Principal, bool) {
	s, err := h.sessions.Get(r.Context(), h.registerID)
	if err != nil {
		handleEngineError(w, err)
		return domain.Principal{}, false
	}
	return s.Principal(), true
}

func (h *CartHandler) requireOpen(w http.ResponseWriter) bool {
	if status := h.controller.Status(); status != domain.CheckoutStatusOpen {
		respondError(w, http.StatusConflict, "illegal_transition",
			"cart mutation only allowed while checkout is OPEN, current status is "+status.String())
		return false
	}
	return true
}

func (h *CartHandler) cartResponse() CartResponseDTO {
	lines := h.cart.Lines()
	quote := h.controller.Quote()

	items := make([]CartLineDTO, 0, len(lines))
	for _, line := range lines {
		items = append(items, CartLineDTO{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.Product.Price,
			LineTotal: float64(line.Quantity) * line.Product.Price,
		})
	}
	return CartResponseDTO{
		Items:    items,
		Subtotal: quote.Subtotal,
		Tax:      quote.Tax,
		Discount: quote.Discount,
		Total:    quote.Total,
	}
}
