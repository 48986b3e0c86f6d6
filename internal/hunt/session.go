package hunt

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"

	"coinhunt.klederson.com/internal/geo"
)

// Session owns one hunt: the coin pool, the proximity engine, and the
// wallet. Collaborators receive references from here instead of reaching
// a global.
type Session struct {
	pool   *CoinPool
	engine *Engine
	wallet *Wallet

	mu        sync.RWMutex
	findLimit decimal.Decimal
}

// NewSession wires a pool, engine, and wallet together. findLimit is the
// player's starting collection limit, owned by the economy collaborator
// and updatable via SetFindLimit.
func NewSession(cfg Config, findLimit decimal.Decimal, log *slog.Logger) (*Session, error) {
	pool := NewCoinPool()
	engine, err := NewEngine(cfg, pool, findLimit, log)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	return &Session{
		pool:      pool,
		engine:    engine,
		wallet:    NewWallet(),
		findLimit: findLimit,
	}, nil
}

// Pool returns the session's coin pool (session-start populate hook).
func (s *Session) Pool() *CoinPool { return s.pool }

// Engine returns the session's proximity engine.
func (s *Session) Engine() *Engine { return s.engine }

// Wallet returns the session's wallet.
func (s *Session) Wallet() *Wallet { return s.wallet }

// Start populates the pool with the session's coins.
func (s *Session) Start(coins []Coin) {
	s.pool.Populate(coins)
}

// Award deposits a newly minted coin mid-session. The engine picks it
// up through normal reselection on the next tick.
func (s *Session) Award(c Coin) {
	s.pool.Add(c)
}

// End clears the pool. The engine self-heals to idle on its next tick;
// simply ceasing to tick is also safe.
func (s *Session) End() {
	s.pool.Clear()
}

// SetFindLimit updates the player's collection limit.
func (s *Session) SetFindLimit(v decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.findLimit = v
}

// FindLimit returns the current collection limit.
func (s *Session) FindLimit() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findLimit
}

// Tier returns the tier bracket for the current find limit.
func (s *Session) Tier() Tier {
	return TierFor(s.FindLimit())
}

// Update feeds one sensor tick to the engine using the current limit.
func (s *Session) Update(pos geo.Point, heading *float64) error {
	return s.engine.Update(pos, heading, s.FindLimit())
}

// AttemptCollect runs a collection transaction against the engine and
// credits the wallet on success.
func (s *Session) AttemptCollect() CollectionResult {
	res := s.engine.AttemptCollect(s.FindLimit())
	if res.Collected {
		s.wallet.Credit(res.CreditedValue)
	}
	return res
}
