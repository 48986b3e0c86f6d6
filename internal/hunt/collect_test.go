package hunt

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCollectDeniedWhenNotTargeted(t *testing.T) {
	eng, _, _ := newTestEngine(t)
	res := eng.AttemptCollect(decimal.RequireFromString("10.00"))
	if res.Collected {
		t.Fatal("collected with no target")
	}
	if res.Reason != ReasonNotTargeted {
		t.Errorf("reason = %v, want NotTargeted", res.Reason)
	}
}

func TestCollectDeniedOutOfRange(t *testing.T) {
	eng, _, _ := newTestEngine(t, coinEast("c1", 20, "1.00"))
	tick(t, eng, 0, "10.00")
	if z := eng.CurrentZone(); z != ZoneNear {
		t.Fatalf("zone = %v, want Near", z)
	}

	res := eng.AttemptCollect(decimal.RequireFromString("10.00"))
	if res.Collected {
		t.Fatal("collected outside the collection zone")
	}
	if res.Reason != ReasonOutOfRange {
		t.Errorf("reason = %v, want OutOfRange", res.Reason)
	}
}

func TestCollectDeniedLockedRegardlessOfZone(t *testing.T) {
	eng, pool, _ := newTestEngine(t, coinEast("pricey", 3, "50.00"))
	tick(t, eng, 0, "10.00")
	if z := eng.CurrentZone(); z != ZoneCollectible {
		t.Fatalf("zone = %v, want Collectible", z)
	}

	res := eng.AttemptCollect(decimal.RequireFromString("10.00"))
	if res.Collected {
		t.Fatal("collected a coin above the find limit")
	}
	if res.Reason != ReasonLocked {
		t.Errorf("reason = %v, want Locked", res.Reason)
	}
	if pool.Count() != 1 {
		t.Error("locked denial must not remove the coin")
	}
}

func TestCollectBoundaryLimitIsCollectible(t *testing.T) {
	eng, _, _ := newTestEngine(t, coinEast("c1", 3, "10.00"))
	tick(t, eng, 0, "10.00")

	res := eng.AttemptCollect(decimal.RequireFromString("10.00"))
	if !res.Collected {
		t.Fatalf("value equal to limit denied: %v", res.Reason)
	}
	if !res.CreditedValue.Equal(decimal.RequireFromString("10.00")) {
		t.Errorf("credited %s, want 10.00", res.CreditedValue)
	}
}

func TestCollectRemovesCoinAndEmits(t *testing.T) {
	eng, pool, rec := newTestEngine(t, coinEast("c1", 3, "2.50"))
	tick(t, eng, 0, "10.00")

	res := eng.AttemptCollect(decimal.RequireFromString("10.00"))
	if !res.Collected {
		t.Fatalf("denied: %v", res.Reason)
	}
	if res.Coin.ID != "c1" {
		t.Errorf("collected coin = %q, want c1", res.Coin.ID)
	}
	if pool.Count() != 0 {
		t.Error("coin not removed from pool")
	}
	if eng.HasTarget() {
		t.Error("target should clear after collection")
	}

	n := rec.count(func(e Event) bool {
		tc, ok := e.(TargetCollected)
		return ok && tc.Coin.ID == "c1" && tc.CreditedValue.Equal(decimal.RequireFromString("2.50"))
	})
	if n != 1 {
		t.Errorf("target-collected fired %d times, want 1", n)
	}

	// A second attempt with nothing targeted is a plain denial.
	res = eng.AttemptCollect(decimal.RequireFromString("10.00"))
	if res.Collected || res.Reason != ReasonNotTargeted {
		t.Errorf("repeat attempt = %+v, want NotTargeted denial", res)
	}
}

func TestCollectAlreadyCollectedWhenPoolRaceLost(t *testing.T) {
	eng, pool, _ := newTestEngine(t, coinEast("c1", 3, "1.00"))
	tick(t, eng, 0, "10.00")

	// Another collector empties the pool between the tick and the
	// player's collect press.
	if !pool.Remove("c1") {
		t.Fatal("setup remove failed")
	}

	res := eng.AttemptCollect(decimal.RequireFromString("10.00"))
	if res.Collected {
		t.Fatal("collected a coin that was already gone")
	}
	if res.Reason != ReasonAlreadyCollected {
		t.Errorf("reason = %v, want AlreadyCollected", res.Reason)
	}
	if eng.HasTarget() {
		t.Error("stale target should clear after a lost race")
	}
}

func TestConcurrentCollectorsCreditExactlyOnce(t *testing.T) {
	eng, pool, _ := newTestEngine(t, coinEast("prize", 3, "7.25"))
	tick(t, eng, 0, "10.00")
	limit := decimal.RequireFromString("10.00")

	// Half the callers go through the engine, half race the pool
	// directly (an external awarding subsystem). Pool removal is the
	// single point of truth, so total credit is the coin value exactly
	// once no matter who wins.
	const callers = 16
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		total = decimal.Zero
		wins  int
	)
	credit := func(v decimal.Decimal) {
		mu.Lock()
		defer mu.Unlock()
		total = total.Add(v)
		wins++
	}
	for i := 0; i < callers; i++ {
		wg.Add(1)
		viaEngine := i%2 == 0
		go func() {
			defer wg.Done()
			if viaEngine {
				if res := eng.AttemptCollect(limit); res.Collected {
					credit(res.CreditedValue)
				}
			} else {
				if pool.Remove("prize") {
					credit(decimal.RequireFromString("7.25"))
				}
			}
		}()
	}
	wg.Wait()

	if wins != 1 {
		t.Errorf("winners = %d, want exactly 1", wins)
	}
	if !total.Equal(decimal.RequireFromString("7.25")) {
		t.Errorf("total credited = %s, want 7.25", total)
	}
}
