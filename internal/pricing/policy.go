package pricing

const (
	// DiscountThreshold is the minimum subtotal before the flat discount kicks in.
	DiscountThreshold = 5000.00

	// DiscountRate is the flat rate applied at or above the threshold.
	DiscountRate = 0.05
)

// Policy computes the price adjustments for a subtotal. All implementations
// must be pure and deterministic; the cart and controller only ever depend on
// this interface so a store can swap the policy without touching either.
type Policy interface {
	Tax(subtotal float64) float64
	Discount(subtotal float64) float64
}

// Standard is the default policy: a configured tax fraction plus a 5%
// discount once the subtotal reaches 5000.
type Standard struct {
	TaxRate float64
}

func NewStandard(taxRate float64) Standard {
	return Standard{TaxRate: taxRate}
}

func (p Standard) Tax(subtotal float64) float64 {
	return subtotal * p.TaxRate
}

func (p Standard) Discount(subtotal float64) float64 {
	if subtotal >= DiscountThreshold {
		return subtotal * DiscountRate
	}
	return 0
}

// Total combines the three price components.
func Total(subtotal, tax, discount float64) float64 {
	return subtotal + tax - discount
}

// Quote is one fully priced view of a cart.
type Quote struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

// QuoteFrom prices a subtotal in the fixed subtotal, tax, discount, total
// order so every display site agrees on the numbers.
func QuoteFrom(p Policy, subtotal float64) Quote {
	tax := p.Tax(subtotal)
	discount := p.Discount(subtotal)
	return Quote{
		Subtotal: subtotal,
		Tax:      tax,
		Discount: discount,
		Total:    Total(subtotal, tax, discount),
	}
}
