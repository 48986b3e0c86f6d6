package hunt

import "github.com/shopspring/decimal"

// Event is a notification emitted by the engine. Consumers type-switch
// on the concrete event structs.
type Event interface {
	huntEvent()
}

// TargetSet fires when the engine starts tracking a coin.
type TargetSet struct {
	Coin   Coin
	Locked bool
}

// TargetCleared fires when the engine stops tracking with no replacement
// in range.
type TargetCleared struct{}

// TargetCollected fires when a collection transaction succeeds.
type TargetCollected struct {
	Coin          Coin
	CreditedValue decimal.Decimal
}

// ZoneChanged fires when the classified proximity zone changes.
type ZoneChanged struct {
	Old Zone
	New Zone
}

// DistanceUpdated fires on every tick while tracking. Bearing is the
// absolute bearing to the target; Relative is only meaningful when
// HasRelative is set (a compass heading was available this tick).
type DistanceUpdated struct {
	Meters      float64
	Bearing     float64
	Relative    float64
	HasRelative bool
}

// EnteredCollectionRange fires when the target enters the innermost zone.
type EnteredCollectionRange struct {
	Coin Coin
}

// ExitedCollectionRange fires when the target leaves the innermost zone.
type ExitedCollectionRange struct {
	Coin Coin
}

// LockStateChanged fires when the target's tier lock flips. It does not
// fire on every tick, only on change.
type LockStateChanged struct {
	Locked bool
}

func (TargetSet) huntEvent()              {}
func (TargetCleared) huntEvent()          {}
func (TargetCollected) huntEvent()        {}
func (ZoneChanged) huntEvent()            {}
func (DistanceUpdated) huntEvent()        {}
func (EnteredCollectionRange) huntEvent() {}
func (ExitedCollectionRange) huntEvent()  {}
func (LockStateChanged) huntEvent()       {}

// Listener receives engine notifications. Callbacks run synchronously on
// the goroutine that triggered them and must not block.
type Listener interface {
	HandleHuntEvent(Event)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(Event)

func (f ListenerFunc) HandleHuntEvent(e Event) { f(e) }
