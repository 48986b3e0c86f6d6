package hunt

import (
	"sort"
	"sync"

	"coinhunt.klederson.com/internal/geo"
)

// CoinPool is a thread-safe store for the session's coins. The session
// collaborator populates and clears it; the engine reads from it and the
// collection path conditionally removes from it.
type CoinPool struct {
	mu    sync.RWMutex
	coins map[string]Coin
}

// NewCoinPool creates a new empty CoinPool.
func NewCoinPool() *CoinPool {
	return &CoinPool{
		coins: make(map[string]Coin),
	}
}

// Populate replaces the pool contents with the given coins.
func (p *CoinPool) Populate(coins []Coin) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.coins = make(map[string]Coin, len(coins))
	for _, c := range coins {
		p.coins[c.ID] = c
	}
}

// Add inserts or replaces a single coin.
func (p *CoinPool) Add(c Coin) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.coins[c.ID] = c
}

// Clear empties the pool.
func (p *CoinPool) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.coins = make(map[string]Coin)
}

// Get returns the coin with the given id, if present.
func (p *CoinPool) Get(id string) (Coin, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	c, ok := p.coins[id]
	return c, ok
}

// Remove deletes the coin with the given id. Exactly one caller observes
// true for a given id; concurrent and repeated calls observe false.
func (p *CoinPool) Remove(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.coins[id]; !ok {
		return false
	}
	delete(p.coins, id)
	return true
}

// Nearest returns the closest coin within maxRadius meters of pos.
// Exact distance ties break toward the lower id.
func (p *CoinPool) Nearest(pos geo.Point, maxRadius float64) (Coin, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var best Coin
	bestDist := maxRadius
	found := false
	for _, c := range p.coins {
		d := geo.DistanceMeters(pos, c.Position)
		if d > maxRadius {
			continue
		}
		if !found || d < bestDist || (d == bestDist && c.ID < best.ID) {
			best = c
			bestDist = d
			found = true
		}
	}
	return best, found
}

// RangedCoin pairs a coin with its geometry relative to a viewer.
type RangedCoin struct {
	Coin
	Distance float64 // meters
	Bearing  float64 // degrees, 0=north clockwise
}

// Ranged returns a copy of all coins with distance and bearing from pos,
// sorted closest first (lower id on ties).
func (p *CoinPool) Ranged(pos geo.Point) []RangedCoin {
	p.mu.RLock()
	defer p.mu.RUnlock()

	result := make([]RangedCoin, 0, len(p.coins))
	for _, c := range p.coins {
		result = append(result, RangedCoin{
			Coin:     c,
			Distance: geo.DistanceMeters(pos, c.Position),
			Bearing:  geo.BearingDegrees(pos, c.Position),
		})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Distance != result[j].Distance {
			return result[i].Distance < result[j].Distance
		}
		return result[i].ID < result[j].ID
	})
	return result
}

// Count returns the number of coins remaining in the pool.
func (p *CoinPool) Count() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.coins)
}
