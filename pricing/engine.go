package pricing

// Engine defines the checkout pricing operations an embedding application depends on.
type Engine interface {
	// FinalPrice returns the amount due after the coupon and points discounts.
	FinalPrice(originalPrice, couponValue, pointsValue float64) float64
	// PointsNeeded returns how many loyalty points cover the given amount.
	PointsNeeded(amount float64) int64
}

var _ Engine = (*Calculator)(nil)
