package hunt

import (
	"testing"

	"github.com/shopspring/decimal"

	"coinhunt.klederson.com/internal/geo"
)

func newTestSession(t *testing.T, limit string, coins ...Coin) *Session {
	t.Helper()
	s, err := NewSession(testConfig(), decimal.RequireFromString(limit), nil)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	s.Start(coins)
	return s
}

func TestSessionCollectCreditsWallet(t *testing.T) {
	s := newTestSession(t, "10.00", coinEast("c1", 3, "4.75"))

	if err := s.Update(geo.Point{}, nil); err != nil {
		t.Fatal(err)
	}
	res := s.AttemptCollect()
	if !res.Collected {
		t.Fatalf("denied: %v", res.Reason)
	}
	if !s.Wallet().Balance().Equal(decimal.RequireFromString("4.75")) {
		t.Errorf("balance = %s, want 4.75", s.Wallet().Balance())
	}
	if s.Wallet().CollectedCount() != 1 {
		t.Errorf("collected count = %d, want 1", s.Wallet().CollectedCount())
	}
}

func TestSessionDenialLeavesWalletUntouched(t *testing.T) {
	s := newTestSession(t, "1.00", coinEast("pricey", 3, "50.00"))

	if err := s.Update(geo.Point{}, nil); err != nil {
		t.Fatal(err)
	}
	res := s.AttemptCollect()
	if res.Collected || res.Reason != ReasonLocked {
		t.Fatalf("result = %+v, want Locked denial", res)
	}
	if !s.Wallet().Balance().IsZero() {
		t.Errorf("balance = %s, want 0", s.Wallet().Balance())
	}
}

func TestSessionFindLimitDropRelocksMidApproach(t *testing.T) {
	s := newTestSession(t, "25.00", coinEast("c1", 3, "20.00"))

	if err := s.Update(geo.Point{}, nil); err != nil {
		t.Fatal(err)
	}
	if s.Engine().IsLocked() {
		t.Fatal("coin should be unlocked at limit 25.00")
	}

	// The economy collaborator lowers the limit while the coin is zoned
	// Collectible; the gate must hold at collect time.
	s.SetFindLimit(decimal.RequireFromString("10.00"))
	res := s.AttemptCollect()
	if res.Collected || res.Reason != ReasonLocked {
		t.Fatalf("result = %+v, want Locked denial after limit drop", res)
	}
}

func TestSessionTier(t *testing.T) {
	s := newTestSession(t, "25.00")
	if got := s.Tier(); got != TierGold {
		t.Errorf("tier = %v, want Gold", got)
	}
	s.SetFindLimit(decimal.RequireFromString("0.50"))
	if got := s.Tier(); got != TierCopper {
		t.Errorf("tier = %v, want Copper", got)
	}
}

func TestSessionAwardedCoinIsTargeted(t *testing.T) {
	s := newTestSession(t, "10.00")

	if err := s.Update(geo.Point{}, nil); err != nil {
		t.Fatal(err)
	}
	if s.Engine().HasTarget() {
		t.Fatal("empty session should have no target")
	}

	s.Award(coinEast("minted", 15, "2.00"))
	if err := s.Update(geo.Point{}, nil); err != nil {
		t.Fatal(err)
	}
	c, ok := s.Engine().CurrentTarget()
	if !ok || c.ID != "minted" {
		t.Errorf("target after award = %v %v, want minted coin", c, ok)
	}
}

func TestSessionEndClearsPool(t *testing.T) {
	s := newTestSession(t, "10.00", coinEast("c1", 3, "1.00"))
	if err := s.Update(geo.Point{}, nil); err != nil {
		t.Fatal(err)
	}

	s.End()
	if s.Pool().Count() != 0 {
		t.Error("pool not cleared")
	}
	// Ticking after End is a safe idle state.
	if err := s.Update(geo.Point{}, nil); err != nil {
		t.Fatal(err)
	}
	if s.Engine().HasTarget() {
		t.Error("engine should return to idle after session end")
	}
}
