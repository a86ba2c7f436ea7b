package cart

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/fjod/go_pos/internal/domain"
	"github.com/fjod/go_pos/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu       sync.Mutex
	lowStock []events.LowStockAlert
	sales    []*domain.PaymentOutcome
	err      error
}

func (r *recordingPublisher) PublishLowStock(_ context.Context, alert events.LowStockAlert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.lowStock = append(r.lowStock, alert)
	return nil
}

func (r *recordingPublisher) PublishSaleCompleted(_ context.Context, outcome *domain.PaymentOutcome) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.sales = append(r.sales, outcome)
	return nil
}

func (r *recordingPublisher) alerts() []events.LowStockAlert {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]events.LowStockAlert(nil), r.lowStock...)
}

func setupCart(t *testing.T) (*Cart, *recordingPublisher) {
	t.Helper()
	publisher := &recordingPublisher{}
	return New(publisher), publisher
}

func rice() *domain.Product {
	return &domain.Product{ID: 101, Name: "Rice (5lb)", Price: 480.00, Stock: 25, Category: "Groceries"}
}

func TestCart_AddLine_ReservesStock(t *testing.T) {
	c, _ := setupCart(t)
	p := rice()
	ctx := context.Background()

	require.NoError(t, c.AddLine(ctx, p, 10))

	assert.Equal(t, 15, p.Stock)
	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 10, lines[0].Quantity)
}

func TestCart_AddLine_InvalidQuantity(t *testing.T) {
	c, _ := setupCart(t)
	p := rice()
	ctx := context.Background()

	assert.ErrorIs(t, c.AddLine(ctx, p, 0), ErrInvalidQuantity)
	assert.ErrorIs(t, c.AddLine(ctx, p, -3), ErrInvalidQuantity)

	// No partial mutation on failure
	assert.Equal(t, 25, p.Stock)
	assert.True(t, c.IsEmpty())
}

func TestCart_AddLine_InsufficientStock_NewLine(t *testing.T) {
	c, _ := setupCart(t)
	p := rice()
	ctx := context.Background()

	err := c.AddLine(ctx, p, 26)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 25, p.Stock)
	assert.True(t, c.IsEmpty())
}

func TestCart_AddLine_ExistingLine_ChecksUnreservedStockOnly(t *testing.T) {
	c, _ := setupCart(t)
	p := rice()
	ctx := context.Background()

	require.NoError(t, c.AddLine(ctx, p, 20)) // 5 left unreserved

	// The 20 already reserved must not count against the new request:
	// exactly 5 more is fine, 6 is not.
	err := c.AddLine(ctx, p, 6)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 5, p.Stock)

	require.NoError(t, c.AddLine(ctx, p, 5))
	assert.Equal(t, 0, p.Stock)
	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 25, lines[0].Quantity)
}

func TestCart_AddLine_MergesIntoOneLine(t *testing.T) {
	c, _ := setupCart(t)
	p := rice()
	ctx := context.Background()

	require.NoError(t, c.AddLine(ctx, p, 3))
	require.NoError(t, c.AddLine(ctx, p, 4))

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 7, lines[0].Quantity)
	assert.Equal(t, 18, p.Stock)
}

func TestCart_RemoveLine_RestoresStock(t *testing.T) {
	c, _ := setupCart(t)
	p := rice()
	ctx := context.Background()

	require.NoError(t, c.AddLine(ctx, p, 10))
	require.NoError(t, c.RemoveLine(ctx, p.ID, 4))

	assert.Equal(t, 19, p.Stock)
	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 6, lines[0].Quantity)
}

func TestCart_RemoveLine_ZeroQuantityLineIsDeleted(t *testing.T) {
	c, _ := setupCart(t)
	p := rice()
	ctx := context.Background()

	require.NoError(t, c.AddLine(ctx, p, 10))
	require.NoError(t, c.RemoveLine(ctx, p.ID, 10))

	assert.True(t, c.IsEmpty())
	assert.Empty(t, c.Lines())
	assert.Equal(t, 25, p.Stock)
}

func TestCart_RemoveLine_ItemNotFound(t *testing.T) {
	c, _ := setupCart(t)
	ctx := context.Background()

	err := c.RemoveLine(ctx, 999, 1)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestCart_RemoveLine_ExcessiveRemoval_NoChangesMade(t *testing.T) {
	c, _ := setupCart(t)
	p := rice()
	ctx := context.Background()

	require.NoError(t, c.AddLine(ctx, p, 10))

	err := c.RemoveLine(ctx, p.ID, 11)
	assert.ErrorIs(t, err, ErrExcessiveRemoval)

	// Hard rejection: no partial removal at all
	assert.Equal(t, 15, p.Stock)
	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 10, lines[0].Quantity)
}

func TestCart_RemoveLine_InvalidQuantity(t *testing.T) {
	c, _ := setupCart(t)
	p := rice()
	ctx := context.Background()

	require.NoError(t, c.AddLine(ctx, p, 10))
	assert.ErrorIs(t, c.RemoveLine(ctx, p.ID, 0), ErrInvalidQuantity)
	assert.ErrorIs(t, c.RemoveLine(ctx, p.ID, -2), ErrInvalidQuantity)
	assert.Equal(t, 15, p.Stock)
}

func TestCart_AddRemoveRoundTrip(t *testing.T) {
	c, _ := setupCart(t)
	p := rice()
	ctx := context.Background()

	require.NoError(t, c.AddLine(ctx, p, 7))
	require.NoError(t, c.RemoveLine(ctx, p.ID, 7))

	assert.Equal(t, 25, p.Stock)
	assert.True(t, c.IsEmpty())
}

func TestCart_StockConservation(t *testing.T) {
	c, _ := setupCart(t)
	p := rice()
	ctx := context.Background()
	initial := p.Stock

	invariant := func() {
		held := 0
		for _, line := range c.Lines() {
			if line.Product.ID == p.ID {
				held = line.Quantity
			}
		}
		assert.Equal(t, initial, p.Stock+held)
	}

	require.NoError(t, c.AddLine(ctx, p, 5))
	invariant()
	require.NoError(t, c.AddLine(ctx, p, 10))
	invariant()
	require.NoError(t, c.RemoveLine(ctx, p.ID, 3))
	invariant()
	require.NoError(t, c.AddLine(ctx, p, 8))
	invariant()
	require.NoError(t, c.RemoveLine(ctx, p.ID, 20))
	invariant()
}

func TestCart_Subtotal_UsesCurrentPrice(t *testing.T) {
	c, _ := setupCart(t)
	p := rice()
	ctx := context.Background()

	require.NoError(t, c.AddLine(ctx, p, 2))
	assert.InDelta(t, 960.00, c.Subtotal(), 0.0001)

	// A mid-transaction price change is reflected immediately.
	p.Price = 500.00
	assert.InDelta(t, 1000.00, c.Subtotal(), 0.0001)
}

func TestCart_Subtotal_MultipleLines(t *testing.T) {
	c, _ := setupCart(t)
	ctx := context.Background()
	p1 := rice()
	p2 := &domain.Product{ID: 103, Name: "Bread", Price: 600.00, Stock: 30, Category: "Groceries"}

	require.NoError(t, c.AddLine(ctx, p1, 2))
	require.NoError(t, c.AddLine(ctx, p2, 3))

	assert.InDelta(t, 2*480.00+3*600.00, c.Subtotal(), 0.0001)

	// Insertion order is preserved for display.
	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, int64(101), lines[0].Product.ID)
	assert.Equal(t, int64(103), lines[1].Product.ID)
}

func TestCart_Clear_DoesNotTouchStock(t *testing.T) {
	c, _ := setupCart(t)
	p := rice()
	ctx := context.Background()

	require.NoError(t, c.AddLine(ctx, p, 10))
	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Equal(t, 15, p.Stock) // reservations stay applied
}

func TestCart_ReleaseAll_RestocksAndClears(t *testing.T) {
	c, publisher := setupCart(t)
	ctx := context.Background()
	p1 := rice()
	p2 := &domain.Product{ID: 103, Name: "Bread", Price: 600.00, Stock: 30, Category: "Groceries"}

	require.NoError(t, c.AddLine(ctx, p1, 10))
	require.NoError(t, c.AddLine(ctx, p2, 5))
	alertsBefore := len(publisher.alerts())

	c.ReleaseAll(ctx)

	assert.True(t, c.IsEmpty())
	assert.Equal(t, 25, p1.Stock)
	assert.Equal(t, 30, p2.Stock)
	assert.Len(t, publisher.alerts(), alertsBefore) // restocking never alerts
}

func TestCart_LowStockAlert_FiresAtThreshold(t *testing.T) {
	c, publisher := setupCart(t)
	p := rice()
	ctx := context.Background()

	require.NoError(t, c.AddLine(ctx, p, 19)) // stock 6, above threshold
	assert.Empty(t, publisher.alerts())

	require.NoError(t, c.AddLine(ctx, p, 1)) // stock 5, at threshold
	alerts := publisher.alerts()
	require.Len(t, alerts, 1)
	assert.Equal(t, int64(101), alerts[0].ProductID)
	assert.Equal(t, "Rice (5lb)", alerts[0].Name)
	assert.Equal(t, 5, alerts[0].Remaining)
}

func TestCart_LowStockAlert_PublishFailureDoesNotFailMutation(t *testing.T) {
	publisher := &recordingPublisher{err: errors.New("broker down")}
	c := New(publisher)
	p := rice()
	ctx := context.Background()

	require.NoError(t, c.AddLine(ctx, p, 25))
	assert.Equal(t, 0, p.Stock)
}

// Full register scenario: stock 25, add 20 leaves 5 and alerts; a further 10
// is rejected with 5 available; removing 20 restores 25 and empties the cart.
func TestCart_ReservationScenario(t *testing.T) {
	c, publisher := setupCart(t)
	p := rice()
	ctx := context.Background()

	require.NoError(t, c.AddLine(ctx, p, 20))
	assert.Equal(t, 5, p.Stock)
	require.Len(t, publisher.alerts(), 1)

	err := c.AddLine(ctx, p, 10)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 5, p.Stock)

	require.NoError(t, c.RemoveLine(ctx, p.ID, 20))
	assert.Equal(t, 25, p.Stock)
	assert.True(t, c.IsEmpty())
}
