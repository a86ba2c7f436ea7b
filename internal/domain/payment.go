package domain

import "time"

// SaleItem is one purchased line frozen at commit time, kept for receipt
// emission only.
type SaleItem struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

// PaymentOutcome records one committed checkout. It is ephemeral: nothing
// persists it, it exists so the presentation layer can print a receipt.
type PaymentOutcome struct {
	OrderID     string     `json:"order_id"`
	Cashier     string     `json:"cashier"`
	Items       []SaleItem `json:"items"`
	Subtotal    float64    `json:"subtotal"`
	Tax         float64    `json:"tax"`
	Discount    float64    `json:"discount"`
	Total       float64    `json:"total"`
	Tendered    float64    `json:"tendered"`
	Change      float64    `json:"change"`
	CompletedAt time.Time  `json:"completed_at"`
}
