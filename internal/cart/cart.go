package cart

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/fjod/go_pos/internal/domain"
	"github.com/fjod/go_pos/internal/events"
)

// LowStockThreshold is the remaining-stock level at or below which a
// mutation emits a low stock alert.
const LowStockThreshold = 5

// Line is one cart entry. It references the catalog's product instance
// directly; the cart never copies product data, so price or stock changes are
// visible to both views immediately.
type Line struct {
	Product  *domain.Product
	Quantity int
}

// Cart is the working set of the in-progress transaction. Adding a line
// reserves stock by decrementing the shared product counter in the same
// critical section that updates the line, so no reader can observe one
// without the other. Exactly one cart exists per register.
type Cart struct {
	mu     sync.Mutex
	lines  []*Line
	alerts events.Publisher
}

func New(alerts events.Publisher) *Cart {
	return &Cart{alerts: alerts}
}

// AddLine reserves quantity units of the product for this transaction.
// The stock decrement and the line update happen atomically; on any failure
// neither is applied. The availability check counts only unreserved stock:
// units already held by this cart's line never count against a new request.
func (c *Cart) AddLine(ctx context.Context, p *domain.Product, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity > p.Stock {
		return fmt.Errorf("%w for %s: only %d available", ErrInsufficientStock, p.Name, p.Stock)
	}

	if line := c.findLine(p.ID); line != nil {
		line.Quantity += quantity
	} else {
		c.lines = append(c.lines, &Line{Product: p, Quantity: quantity})
	}
	p.Stock -= quantity

	c.checkLowStock(ctx, p)
	return nil
}

// RemoveLine returns quantity units from the cart line back to product stock.
// Removing more than the line holds is a hard rejection with no partial
// removal. A line reaching zero is deleted, keeping insertion order for the
// remaining lines.
func (c *Cart) RemoveLine(ctx context.Context, productID int64, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	line := c.findLine(productID)
	if line == nil {
		return fmt.Errorf("%w: %d", ErrItemNotFound, productID)
	}
	if quantity > line.Quantity {
		return fmt.Errorf("%w: only %d %s(s) in cart, no changes made",
			ErrExcessiveRemoval, line.Quantity, line.Product.Name)
	}

	line.Product.Stock += quantity
	line.Quantity -= quantity
	if line.Quantity == 0 {
		c.deleteLine(productID)
	}

	c.checkLowStock(ctx, line.Product)
	return nil
}

// Clear empties the cart without touching stock. Used after a committed sale,
// where the reservations become permanent, or to initialize a transaction.
// Cancellation must go through ReleaseAll instead.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// ReleaseAll returns every reserved unit to product stock and empties the
// cart, for transaction cancellation. Restocking raises stock, so no low
// stock alerts fire here.
func (c *Cart) ReleaseAll(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, line := range c.lines {
		line.Product.Stock += line.Quantity
	}
	c.lines = nil
}

// Subtotal prices the cart at each product's current unit price; a price
// change mid-transaction is reflected immediately.
func (c *Cart) Subtotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var subtotal float64
	for _, line := range c.lines {
		subtotal += float64(line.Quantity) * line.Product.Price
	}
	return subtotal
}

// Lines returns the cart contents in insertion order. The slice is a copy;
// the line values are snapshots safe for display.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make([]Line, 0, len(c.lines))
	for _, line := range c.lines {
		result = append(result, *line)
	}
	return result
}

func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}

// findLine must be called with the mutex held.
func (c *Cart) findLine(productID int64) *Line {
	for _, line := range c.lines {
		if line.Product.ID == productID {
			return line
		}
	}
	return nil
}

// deleteLine must be called with the mutex held.
func (c *Cart) deleteLine(productID int64) {
	for i, line := range c.lines {
		if line.Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// checkLowStock must be called with the mutex held. Publish failures are
// logged and swallowed; alerting never blocks a sale.
func (c *Cart) checkLowStock(ctx context.Context, p *domain.Product) {
	if p.Stock > LowStockThreshold {
		return
	}
	alert := events.LowStockAlert{ProductID: p.ID, Name: p.Name, Remaining: p.Stock}
	if err := c.alerts.PublishLowStock(ctx, alert); err != nil {
		log.Printf("failed to publish low stock alert for product %d: %v", p.ID, err)
	}
}
