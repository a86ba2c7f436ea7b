package events

import (
	"context"

	"github.com/fjod/go_pos/internal/domain"
)

// LowStockAlert fires when a cart mutation leaves a product at or below the
// low stock threshold. Consumed by the display layer and back office; never
// part of engine state.
type LowStockAlert struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Remaining int    `json:"remaining"`
}

// Publisher delivers engine events to whatever the deployment wires up
// (kafka for the back office, plain logs for a standalone register).
type Publisher interface {
	PublishLowStock(ctx context.Context, alert LowStockAlert) error
	PublishSaleCompleted(ctx context.Context, outcome *domain.PaymentOutcome) error
}
