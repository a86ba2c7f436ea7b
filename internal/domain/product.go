package domain

// Product is a catalog entry. The catalog owns the only instance of each
// product for the process lifetime; the cart mutates Stock through a shared
// pointer so inventory and cart views always agree.
type Product struct {
	ID       int64
	Name     string
	Price    float64
	Stock    int
	Category string
}
