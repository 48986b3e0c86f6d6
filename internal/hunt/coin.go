package hunt

import (
	"github.com/shopspring/decimal"

	"coinhunt.klederson.com/internal/geo"
)

// Coin represents one placed treasure item. Coins are immutable once in
// the pool; the only mutation is removal on collection.
type Coin struct {
	ID       string
	Position geo.Point
	Value    decimal.Decimal
}

// Locked reports whether the coin's value exceeds the given find limit.
// Derived on demand, never stored.
func (c Coin) Locked(findLimit decimal.Decimal) bool {
	return c.Value.GreaterThan(findLimit)
}

// DisplayValue returns the coin value formatted for display.
func (c Coin) DisplayValue() string {
	return "$" + c.Value.StringFixed(2)
}
