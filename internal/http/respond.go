package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/fjod/go_pos/internal/cart"
	"github.com/fjod/go_pos/internal/catalog"
	"github.com/fjod/go_pos/internal/checkout"
	"github.com/fjod/go_pos/internal/session"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// handleEngineError converts the engine's error taxonomy to HTTP statuses.
// Everything here is recoverable; nothing maps to a 5xx except the unknown
// fallthrough.
func handleEngineError(w http.ResponseWriter, err error) {
	var httpStatus int
	var code string

	switch {
	case errors.Is(err, cart.ErrInvalidQuantity):
		httpStatus = http.StatusBadRequest
		code = "invalid_quantity"
	case errors.Is(err, cart.ErrInsufficientStock):
		httpStatus = http.StatusConflict
		code = "insufficient_stock"
	case errors.Is(err, cart.ErrItemNotFound):
		httpStatus = http.StatusNotFound
		code = "item_not_found"
	case errors.Is(err, cart.ErrExcessiveRemoval):
		httpStatus = http.StatusConflict
		code = "excessive_removal"
	case errors.Is(err, catalog.ErrProductNotFound):
		httpStatus = http.StatusNotFound
		code = "product_not_found"
	case errors.Is(err, checkout.ErrEmptyCart):
		httpStatus = http.StatusConflict
		code = "empty_cart"
	case errors.Is(err, checkout.ErrInvalidAmount):
		httpStatus = http.StatusBadRequest
		code = "invalid_amount"
	case errors.Is(err, checkout.ErrUnauthorized):
		httpStatus = http.StatusForbidden
		code = "unauthorized"
	case errors.Is(err, checkout.ErrNotConfirmed):
		httpStatus = http.StatusConflict
		code = "not_confirmed"
	case errors.Is(err, checkout.ErrIllegalTransition):
		httpStatus = http.StatusConflict
		code = "illegal_transition"
	case errors.Is(err, session.ErrSessionNotFound):
		httpStatus = http.StatusUnauthorized
		code = "no_session"
	default:
		httpStatus = http.StatusInternalServerError
		code = "internal_error"
	}

	respondError(w, httpStatus, code, err.Error())
}
