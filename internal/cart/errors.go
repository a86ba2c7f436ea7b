package cart

import "errors"

// Common errors returned by cart mutations. Every failure leaves both the
// cart and product stock untouched.
var (
	ErrInvalidQuantity   = errors.New("quantity must be a positive integer")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrItemNotFound      = errors.New("item not found in cart")
	ErrExcessiveRemoval  = errors.New("removal exceeds quantity held in cart")
)
