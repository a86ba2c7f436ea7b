package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandard_BelowThreshold_NoDiscount(t *testing.T) {
	policy := NewStandard(0.10)

	quote := QuoteFrom(policy, 4999.99)

	assert.Equal(t, 0.0, quote.Discount)
	assert.InDelta(t, 499.999, quote.Tax, 0.0001)
	assert.InDelta(t, 5499.989, quote.Total, 0.0001)
}

func TestStandard_AtThreshold_DiscountApplies(t *testing.T) {
	policy := NewStandard(0.10)

	quote := QuoteFrom(policy, 5000.00)

	assert.InDelta(t, 250.00, quote.Discount, 0.0001)
	assert.InDelta(t, 500.00, quote.Tax, 0.0001)
	assert.InDelta(t, 5250.00, quote.Total, 0.0001)
}

func TestStandard_AboveThreshold(t *testing.T) {
	policy := NewStandard(0.10)

	quote := QuoteFrom(policy, 6000.00)

	assert.InDelta(t, 600.00, quote.Tax, 0.0001)
	assert.InDelta(t, 300.00, quote.Discount, 0.0001)
	assert.InDelta(t, 6300.00, quote.Total, 0.0001)
}

func TestStandard_ZeroSubtotal(t *testing.T) {
	policy := NewStandard(0.10)

	quote := QuoteFrom(policy, 0)

	assert.Equal(t, 0.0, quote.Subtotal)
	assert.Equal(t, 0.0, quote.Tax)
	assert.Equal(t, 0.0, quote.Discount)
	assert.Equal(t, 0.0, quote.Total)
}

func TestStandard_ZeroTaxRate(t *testing.T) {
	policy := NewStandard(0)

	quote := QuoteFrom(policy, 6000.00)

	assert.Equal(t, 0.0, quote.Tax)
	assert.InDelta(t, 5700.00, quote.Total, 0.0001)
}

// fixedDiscount substitutes the policy without touching cart or controller
// code, proving the strategy seam.
type fixedDiscount struct{ amount float64 }

func (f fixedDiscount) Tax(float64) float64      { return 0 }
func (f fixedDiscount) Discount(float64) float64 { return f.amount }

func TestQuoteFrom_PolicySubstitution(t *testing.T) {
	quote := QuoteFrom(fixedDiscount{amount: 100}, 1000)

	assert.Equal(t, 100.0, quote.Discount)
	assert.Equal(t, 900.0, quote.Total)
}
