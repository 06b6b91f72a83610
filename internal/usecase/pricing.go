package usecase

// Default shipping nudge parameters, in the store's base currency unit
const (
	DefaultFreeShippingThreshold = 2000.0
	DefaultNudgeWindow           = 250.0
)

// PricingAdvisor computes the distance of a cart total to the
// free-shipping threshold, used to decide whether to surface a nudge.
type PricingAdvisor struct {
	threshold float64
	window    float64
}

// NewPricingAdvisor creates a pricing advisor; non-positive arguments fall
// back to the defaults.
func NewPricingAdvisor(threshold, window float64) *PricingAdvisor {
	if threshold <= 0 {
		threshold = DefaultFreeShippingThreshold
	}
	if window <= 0 {
		window = DefaultNudgeWindow
	}
	return &PricingAdvisor{threshold: threshold, window: window}
}

// AmountUntilFreeShipping returns how much more the cart needs to qualify
// for free shipping, never negative.
func (a *PricingAdvisor) AmountUntilFreeShipping(total float64) float64 {
	remaining := a.threshold - total
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IsCloseToThreshold reports whether the cart is within the nudge window
// of free shipping but not yet past it.
func (a *PricingAdvisor) IsCloseToThreshold(total float64) bool {
	remaining := a.AmountUntilFreeShipping(total)
	return remaining > 0 && remaining <= a.window
}
