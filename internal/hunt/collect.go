package hunt

import "github.com/shopspring/decimal"

// DenyReason explains why a collection attempt was refused. Denials are
// outcomes surfaced to the player, not faults.
type DenyReason int

const (
	ReasonNotTargeted DenyReason = iota
	ReasonOutOfRange
	ReasonLocked
	ReasonAlreadyCollected
)

func (r DenyReason) String() string {
	switch r {
	case ReasonNotTargeted:
		return "no coin targeted"
	case ReasonOutOfRange:
		return "out of collection range"
	case ReasonLocked:
		return "coin above find limit"
	case ReasonAlreadyCollected:
		return "coin already collected"
	default:
		return "denied"
	}
}

// CollectionResult is the tagged outcome of a collection attempt.
// Coin and CreditedValue are only meaningful when Collected is true.
type CollectionResult struct {
	Collected     bool
	Coin          Coin
	CreditedValue decimal.Decimal
	Reason        DenyReason
}

func collected(c Coin) CollectionResult {
	return CollectionResult{Collected: true, Coin: c, CreditedValue: c.Value}
}

func denied(r DenyReason) CollectionResult {
	return CollectionResult{Reason: r}
}

// AttemptCollect tries to collect the current target. The gate order is
// targeting, zone, tier lock, then pool removal. Removal is the single
// point of truth: it happens before any credit, and exactly one caller
// can win it for a given coin, so a coin is credited at most once even
// under concurrent attempts.
func (e *Engine) AttemptCollect(findLimit decimal.Decimal) CollectionResult {
	e.mu.Lock()
	if e.target == nil {
		e.mu.Unlock()
		return denied(ReasonNotTargeted)
	}
	if e.zone != ZoneCollectible {
		e.mu.Unlock()
		return denied(ReasonOutOfRange)
	}
	if e.target.Locked(findLimit) {
		e.mu.Unlock()
		return denied(ReasonLocked)
	}

	coin := *e.target
	if !e.pool.Remove(coin.ID) {
		// A concurrent collector won the race; the next tick reselects.
		e.resetTrackingLocked()
		listeners := e.cloneListenersLocked()
		e.mu.Unlock()
		emit(listeners, []Event{TargetCleared{}})
		return denied(ReasonAlreadyCollected)
	}

	e.resetTrackingLocked()
	listeners := e.cloneListenersLocked()
	e.mu.Unlock()

	emit(listeners, []Event{TargetCollected{Coin: coin, CreditedValue: coin.Value}})
	return collected(coin)
}
