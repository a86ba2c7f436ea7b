package domain

type CheckoutStatus string

const (
	CheckoutStatusOpen            CheckoutStatus = "OPEN"
	CheckoutStatusAwaitingPayment CheckoutStatus = "AWAITING_PAYMENT"
	CheckoutStatusCommitted       CheckoutStatus = "COMMITTED"
	CheckoutStatusCancelled       CheckoutStatus = "CANCELLED"
)

func (s CheckoutStatus) IsTerminal() bool {
	return s == CheckoutStatusCommitted || s == CheckoutStatusCancelled
}

// String representation (for logging)
func (s CheckoutStatus) String() string {
	return string(s)
}

// CanTransitionTo reports whether the checkout state machine allows moving
// from one status to another. AWAITING_PAYMENT may loop back to OPEN any
// number of times (shortfall removal branch) before resolving.
func CanTransitionTo(from, to CheckoutStatus) bool {
	switch from {
	case CheckoutStatusOpen:
		return to == CheckoutStatusAwaitingPayment || to == CheckoutStatusCancelled
	case CheckoutStatusAwaitingPayment:
		return to == CheckoutStatusOpen ||
			to == CheckoutStatusCommitted ||
			to == CheckoutStatusCancelled
	default:
		return false
	}
}
