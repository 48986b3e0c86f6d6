package hunt

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestTierFor(t *testing.T) {
	tests := []struct {
		limit string
		want  Tier
	}{
		{"0.50", TierCopper},
		{"1.00", TierCopper},
		{"1.01", TierBronze},
		{"5.00", TierBronze},
		{"10.00", TierSilver},
		{"25.00", TierGold},
		{"50.00", TierPlatinum},
		{"100.00", TierDiamond},
		{"250.00", TierDiamond}, // top tier has no upper bound
	}
	for _, tt := range tests {
		got := TierFor(decimal.RequireFromString(tt.limit))
		if got != tt.want {
			t.Errorf("TierFor(%s) = %v, want %v", tt.limit, got, tt.want)
		}
	}
}

func TestTierLookupsAreTotal(t *testing.T) {
	seenNames := map[string]bool{}
	seenLimits := map[string]bool{}
	for tier := TierCopper; tier <= TierDiamond; tier++ {
		name := NameFor(tier)
		if name == "" || name == "Unknown" {
			t.Errorf("tier %d has no name", tier)
		}
		if seenNames[name] {
			t.Errorf("duplicate tier name %q", name)
		}
		seenNames[name] = true

		limit := LimitFor(tier).String()
		if seenLimits[limit] {
			t.Errorf("duplicate tier limit %s", limit)
		}
		seenLimits[limit] = true
	}
}

func TestTierLimitsAscend(t *testing.T) {
	for tier := TierBronze; tier <= TierDiamond; tier++ {
		if !LimitFor(tier).GreaterThan(LimitFor(tier - 1)) {
			t.Errorf("limit for %v not greater than %v", tier, tier-1)
		}
	}
}

func TestIsCollectibleBoundaryInclusive(t *testing.T) {
	limit := decimal.RequireFromString("10.00")
	tests := []struct {
		value string
		want  bool
	}{
		{"9.99", true},
		{"10.00", true}, // equality at the boundary is collectible
		{"10.01", false},
		{"0.00", true},
	}
	for _, tt := range tests {
		got := IsCollectible(decimal.RequireFromString(tt.value), limit)
		if got != tt.want {
			t.Errorf("IsCollectible(%s, 10.00) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
