package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fjod/go_pos/internal/checkout"
	"github.com/fjod/go_pos/internal/domain"
	"github.com/fjod/go_pos/internal/session"
)

type CheckoutHandler struct {
	controller *checkout.Controller
	sessions   session.Store
	registerID string
}

func NewCheckoutHandler(ctrl *checkout.Controller, sessions session.Store, registerID string) *CheckoutHandler {
	return &CheckoutHandler{
		controller: ctrl,
		sessions:   sessions,
		registerID: registerID,
	}
}

type TenderRequestDTO struct {
	Amount *float64 `json:"amount"`
}

type ShortfallResponseDTO struct {
	Error    string  `json:"error"`
	Code     string  `json:"code"`
	Due      float64 `json:"due"`
	Tendered float64 `json:"tendered"`
	Needed   float64 `json:"needed"`
}

type RemoveDuringShortfallRequestDTO struct {
	ProductID int64                 `json:"product_id"`
	Quantity  int                   `json:"quantity"`
	Override  *PutSessionRequestDTO `json:"override,omitempty"`
}

type CancelRequestDTO struct {
	Confirmed bool `json:"confirmed"`
}

type StatusResponseDTO struct {
	Status string `json:"status"`
}

// Quote reports the live total and checkout status; never cached.
func (h *CheckoutHandler) Quote(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": h.controller.Status().String(),
		"quote":  h.controller.Quote(),
	})
}

// Begin moves the register into AWAITING_PAYMENT.
func (h *CheckoutHandler) Begin(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.principal(w, r); !ok {
		return
	}
	if err := h.controller.Begin(); err != nil {
		handleEngineError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": h.controller.Status().String(),
		"quote":  h.controller.Quote(),
	})
}

// Tender reconciles a payment. A covering amount commits the sale and returns
// the receipt payload; a short amount answers 402 with the amount still
// needed so the operator can retry, remove items, or cancel.
func (h *CheckoutHandler) Tender(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.principal(w, r)
	if !ok {
		return
	}
	h.controller.SetOperator(principal)

	var req TenderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Amount == nil {
		// Malformed payment input is recoverable: the operator re-enters it.
		respondError(w, http.StatusBadRequest, "invalid_amount", "payment amount must be a number")
		return
	}

	outcome, err := h.controller.Tender(r.Context(), *req.Amount)
	if err != nil {
		var shortfall *checkout.ShortfallError
		if errors.As(err, &shortfall) {
			respondJSON(w, http.StatusPaymentRequired, ShortfallResponseDTO{
				Error:    shortfall.Error(),
				Code:     "shortfall",
				Due:      shortfall.Due,
				Tendered: shortfall.Tendered,
				Needed:   shortfall.Needed(),
			})
			return
		}
		handleEngineError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, outcome)
}

// RemoveItem is the shortfall removal branch. A cashier may supply an
// override principal (a re-authenticated admin) authorizing this single
// removal; the register's operator stays logged in as before.
func (h *CheckoutHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.principal(w, r)
	if !ok {
		return
	}

	var req RemoveDuringShortfallRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Override != nil {
		principal = domain.Principal{
			Username: req.Override.Username,
			Role:     domain.Role(req.Override.Role),
		}
	}

	quote, err := h.controller.RemoveDuringShortfall(r.Context(), req.ProductID, req.Quantity, principal)
	if err != nil {
		handleEngineError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": h.controller.Status().String(),
		"quote":  quote,
	})
}

// Cancel reverses the transaction after explicit confirmation.
func (h *CheckoutHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.principal(w, r); !ok {
		return
	}

	var req CancelRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if err := h.controller.Cancel(r.Context(), req.Confirmed); err != nil {
		handleEngineError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, StatusResponseDTO{Status: h.controller.Status().String()})
}

// Reset opens the next transaction once the previous one resolved.
func (h *CheckoutHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.principal(w, r); !ok {
		return
	}
	if err := h.controller.Reset(); err != nil {
		handleEngineError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, StatusResponseDTO{Status: h.controller.Status().String()})
}

func (h *CheckoutHandler) principal(w http.ResponseWriter, r *http.Request) (domain.Principal, bool) {
	s, err := h.sessions.Get(r.Context(), h.registerID)
	if err != nil {
		handleEngineError(w, err)
		return domain.Principal{}, false
	}
	return s.Principal(), true
}
