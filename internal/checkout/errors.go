package checkout

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCart         = errors.New("cart is empty, nothing to checkout")
	ErrInvalidAmount     = errors.New("payment amount must be a non-negative number")
	ErrUnauthorized      = errors.New("admin privileges required to remove items during checkout")
	ErrNotConfirmed      = errors.New("cancellation not confirmed, no changes made")
	ErrIllegalTransition = errors.New("illegal transition of checkout status")
)

// ShortfallError reports a tendered amount below the total due. It is
// recoverable: the operator may retry with more funds, remove items, or
// cancel; checkout stays in AWAITING_PAYMENT.
type ShortfallError struct {
	Due      float64
	Tendered float64
}

func (e *ShortfallError) Error() string {
	return fmt.Sprintf("insufficient payment: %.2f more needed", e.Needed())
}

// Needed is the remaining amount required to cover the total.
func (e *ShortfallError) Needed() float64 {
	return e.Due - e.Tendered
}
