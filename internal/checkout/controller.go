package checkout

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/fjod/go_pos/internal/auth"
	"github.com/fjod/go_pos/internal/cart"
	"github.com/fjod/go_pos/internal/domain"
	"github.com/fjod/go_pos/internal/events"
	"github.com/fjod/go_pos/internal/pricing"
	"github.com/google/uuid"
)

// Controller drives one register's checkout state machine:
//
//	OPEN -> AWAITING_PAYMENT -> COMMITTED | CANCELLED
//
// AWAITING_PAYMENT may fall back to OPEN (failed or cart-emptying removal in
// the shortfall branch) any number of times before resolving. The controller
// never caches a total: every quote is recomputed from live cart state.
type Controller struct {
	mu       sync.Mutex
	cart     *cart.Cart
	policy   pricing.Policy
	gate     auth.Gate
	events   events.Publisher
	status   domain.CheckoutStatus
	operator domain.Principal
}

func NewController(c *cart.Cart, policy pricing.Policy, gate auth.Gate, publisher events.Publisher) *Controller {
	return &Controller{
		cart:   c,
		policy: policy,
		gate:   gate,
		events: publisher,
		status: domain.CheckoutStatusOpen,
	}
}

// SetOperator records the principal running the register; it is stamped onto
// committed outcomes for receipt attribution.
func (c *Controller) SetOperator(p domain.Principal) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.operator = p
}

func (c *Controller) Operator() domain.Principal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.operator
}

func (c *Controller) Status() domain.CheckoutStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Quote prices the current cart. Valid in any state; always recomputed.
func (c *Controller) Quote() pricing.Quote {
	return pricing.QuoteFrom(c.policy, c.cart.Subtotal())
}

// Begin moves the transaction to AWAITING_PAYMENT. An empty cart rejects the
// checkout before any state change.
func (c *Controller) Begin() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !domain.CanTransitionTo(c.status, domain.CheckoutStatusAwaitingPayment) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, c.status, domain.CheckoutStatusAwaitingPayment)
	}
	if c.cart.IsEmpty() {
		return ErrEmptyCart
	}

	c.status = domain.CheckoutStatusAwaitingPayment
	return nil
}

// Tender reconciles a cash payment against the live total. Covering payments
// commit the sale: the stock decrements applied at add time become permanent
// and the cart is cleared without touching stock again. A short payment
// returns a ShortfallError and leaves everything unchanged.
func (c *Controller) Tender(ctx context.Context, amount float64) (*domain.PaymentOutcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status != domain.CheckoutStatusAwaitingPayment {
		return nil, fmt.Errorf("%w: tender in %s", ErrIllegalTransition, c.status)
	}
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, ErrInvalidAmount
	}

	quote := pricing.QuoteFrom(c.policy, c.cart.Subtotal())
	if amount < quote.Total {
		return nil, &ShortfallError{Due: quote.Total, Tendered: amount}
	}

	outcome := &domain.PaymentOutcome{
		OrderID:     newOrderID(),
		Cashier:     c.operator.Username,
		Items:       saleItems(c.cart.Lines()),
		Subtotal:    quote.Subtotal,
		Tax:         quote.Tax,
		Discount:    quote.Discount,
		Total:       quote.Total,
		Tendered:    amount,
		Change:      amount - quote.Total,
		CompletedAt: time.Now(),
	}

	c.cart.Clear()
	c.status = domain.CheckoutStatusCommitted

	if err := c.events.PublishSaleCompleted(ctx, outcome); err != nil {
		log.Printf("failed to publish sale %s: %v", outcome.OrderID, err)
	}
	return outcome, nil
}

// RemoveDuringShortfall handles the remove-items branch of an underfunded
// checkout. The principal must be privileged; a cashier may hand over a
// re-authenticated admin principal to authorize exactly this one call, which
// leaves the stored operator untouched. A successful removal reprices the
// cart and stays in AWAITING_PAYMENT; a removal the cart rejects aborts the
// attempt back to OPEN, as does a removal that empties the cart.
func (c *Controller) RemoveDuringShortfall(ctx context.Context, productID int64, quantity int, principal domain.Principal) (pricing.Quote, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status != domain.CheckoutStatusAwaitingPayment {
		return pricing.Quote{}, fmt.Errorf("%w: remove items in %s", ErrIllegalTransition, c.status)
	}
	if !c.gate.IsPrivileged(principal) {
		return pricing.Quote{}, ErrUnauthorized
	}

	if err := c.cart.RemoveLine(ctx, productID, quantity); err != nil {
		c.status = domain.CheckoutStatusOpen
		return pricing.Quote{}, fmt.Errorf("checkout aborted: %w", err)
	}

	if c.cart.IsEmpty() {
		c.status = domain.CheckoutStatusOpen
	}
	return pricing.QuoteFrom(c.policy, c.cart.Subtotal()), nil
}

// Cancel reverses the transaction: every reserved unit goes back to product
// stock and the cart is emptied. Requires explicit confirmation; an
// unconfirmed cancel changes nothing.
func (c *Controller) Cancel(ctx context.Context, confirmed bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !domain.CanTransitionTo(c.status, domain.CheckoutStatusCancelled) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, c.status, domain.CheckoutStatusCancelled)
	}
	if !confirmed {
		return ErrNotConfirmed
	}

	c.cart.ReleaseAll(ctx)
	c.status = domain.CheckoutStatusCancelled
	return nil
}

// Reset opens the next transaction after a terminal one. The cart is already
// structurally empty at every terminal state; Clear here only reasserts that.
func (c *Controller) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.status.IsTerminal() {
		return fmt.Errorf("%w: reset in %s", ErrIllegalTransition, c.status)
	}

	c.cart.Clear()
	c.status = domain.CheckoutStatusOpen
	return nil
}

func saleItems(lines []cart.Line) []domain.SaleItem {
	items := make([]domain.SaleItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, domain.SaleItem{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.Product.Price,
			LineTotal: float64(line.Quantity) * line.Product.Price,
		})
	}
	return items
}

// newOrderID builds the receipt order id: timestamp plus a short uuid tail.
func newOrderID() string {
	tail := strings.ReplaceAll(uuid.NewString(), "-", "")[:5]
	return time.Now().Format("20060102150405") + "_" + tail
}
