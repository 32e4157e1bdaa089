// Package rewards computes loyalty points earned on paid deposits.
package rewards

// PointsFor awards one point per whole currency unit paid. Fractions do not
// round up and non-positive amounts earn nothing.
func PointsFor(amount float64) int {
	if amount <= 0 {
		return 0
	}
	return int(amount)
}
