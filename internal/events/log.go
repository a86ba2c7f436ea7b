package events

import (
	"context"
	"log"

	"github.com/fjod/go_pos/internal/domain"
)

// LogPublisher is the fallback sink for a register running without a broker:
// events go to the process log and nowhere else.
type LogPublisher struct{}

func NewLogPublisher() LogPublisher {
	return LogPublisher{}
}

func (LogPublisher) PublishLowStock(_ context.Context, alert LowStockAlert) error {
	log.Printf("low stock alert: %s (id=%d) only has %d left", alert.Name, alert.ProductID, alert.Remaining)
	return nil
}

func (LogPublisher) PublishSaleCompleted(_ context.Context, outcome *domain.PaymentOutcome) error {
	log.Printf("sale completed: order_id=%s cashier=%s total=%.2f change=%.2f",
		outcome.OrderID, outcome.Cashier, outcome.Total, outcome.Change)
	return nil
}
