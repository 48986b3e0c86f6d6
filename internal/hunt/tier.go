package hunt

import "github.com/shopspring/decimal"

// Tier is a named bracket of find-limit values. Tiers are ordered by
// ascending monetary threshold; the top tier has no upper bound.
type Tier int

const (
	TierCopper Tier = iota
	TierBronze
	TierSilver
	TierGold
	TierPlatinum
	TierDiamond
)

var tierLimits = [...]int64{1, 5, 10, 25, 50, 100}

var tierNames = [...]string{"Copper", "Bronze", "Silver", "Gold", "Platinum", "Diamond"}

func (t Tier) String() string {
	if t < TierCopper || t > TierDiamond {
		return "Unknown"
	}
	return tierNames[t]
}

// TierFor maps a find limit to its tier: the lowest tier whose threshold
// covers the limit. Limits above the Platinum threshold are Diamond.
func TierFor(findLimit decimal.Decimal) Tier {
	for t := TierCopper; t < TierDiamond; t++ {
		if findLimit.LessThanOrEqual(decimal.NewFromInt(tierLimits[t])) {
			return t
		}
	}
	return TierDiamond
}

// LimitFor returns the monetary threshold keyed to a tier.
func LimitFor(t Tier) decimal.Decimal {
	if t < TierCopper || t > TierDiamond {
		t = TierCopper
	}
	return decimal.NewFromInt(tierLimits[t])
}

// NameFor returns the display label for a tier.
func NameFor(t Tier) string {
	return t.String()
}

// IsCollectible reports whether a coin of the given value may be
// collected under the given find limit. The boundary is inclusive:
// a value exactly equal to the limit is collectible.
func IsCollectible(coinValue, findLimit decimal.Decimal) bool {
	return coinValue.LessThanOrEqual(findLimit)
}
