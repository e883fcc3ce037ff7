package pricing

import (
	"math"

	"github.com/shopspring/decimal"
)

// DefaultPointsRate is the number of loyalty points worth one unit of currency.
const DefaultPointsRate int64 = 100

// Calculator computes checkout prices and points conversions. It is immutable
// after New and safe for concurrent use.
type Calculator struct {
	pointsRate int64
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithPointsRate overrides the points-to-currency rate. Non-positive values are ignored.
func WithPointsRate(rate int64) Option {
	return func(c *Calculator) {
		if rate > 0 {
			c.pointsRate = rate
		}
	}
}

// New returns a Calculator using DefaultPointsRate unless overridden.
func New(opts ...Option) *Calculator {
	c := &Calculator{pointsRate: DefaultPointsRate}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PointsRate returns the configured points per currency unit.
func (c *Calculator) PointsRate() int64 {
	return c.pointsRate
}

// FinalPrice subtracts the coupon and the points-derived discount from the
// original price. The result is not clamped, so it may be negative.
func (c *Calculator) FinalPrice(originalPrice, couponValue, pointsValue float64) float64 {
	return originalPrice - couponValue - pointsValue
}

// PointsNeeded converts amount into points, truncating toward zero.
func (c *Calculator) PointsNeeded(amount float64) int64 {
	return int64(math.Trunc(amount * float64(c.pointsRate)))
}

// FinalPriceDecimal is the fixed-point form of FinalPrice.
func (c *Calculator) FinalPriceDecimal(originalPrice, couponValue, pointsValue decimal.Decimal) decimal.Decimal {
	return originalPrice.Sub(couponValue).Sub(pointsValue)
}

// PointsNeededDecimal is the fixed-point form of PointsNeeded. Amounts such as
// 0.29 convert exactly instead of losing a point to binary rounding.
func (c *Calculator) PointsNeededDecimal(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(c.pointsRate)).Truncate(0).IntPart()
}

// Quote is a priced checkout breakdown.
type Quote struct {
	OriginalPrice float64
	CouponValue   float64
	PointsValue   float64
	PointsUsed    int64
	FinalPrice    float64
}

// Quote prices a checkout and reports how many points the points discount represents.
func (c *Calculator) Quote(originalPrice, couponValue, pointsValue float64) Quote {
	return Quote{
		OriginalPrice: originalPrice,
		CouponValue:   couponValue,
		PointsValue:   pointsValue,
		PointsUsed:    c.PointsNeeded(pointsValue),
		FinalPrice:    c.FinalPrice(originalPrice, couponValue, pointsValue),
	}
}
