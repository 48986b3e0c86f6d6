package hunt

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"sync"

	"github.com/shopspring/decimal"

	"coinhunt.klederson.com/internal/geo"
)

// ErrInputRejected is returned when a tick carries malformed input. The
// tick is skipped and the engine state is untouched.
var ErrInputRejected = errors.New("hunt: tick input rejected")

// ErrUnknownCoin is returned when pinning an id absent from the pool.
var ErrUnknownCoin = errors.New("hunt: unknown coin")

// Zone classifies the player-to-target relationship by distance.
type Zone int

const (
	ZoneOutOfRange Zone = iota
	ZoneNear
	ZoneCollectible
)

func (z Zone) String() string {
	switch z {
	case ZoneNear:
		return "Near"
	case ZoneCollectible:
		return "Collectible"
	default:
		return "Out of Range"
	}
}

// Engine tracks the single coin the player is currently pursuing. Each
// Update tick re-evaluates target selection, computes distance and
// bearing, classifies the proximity zone with hysteresis, and recomputes
// the tier lock. Ticks are expected from one driving goroutine; the
// collection path may run concurrently from another.
type Engine struct {
	cfg  Config
	pool *CoinPool
	log  *slog.Logger

	mu      sync.Mutex
	subs    []subscriber
	nextSub Subscription

	target   *Coin
	pinned   bool
	zone     Zone
	distance float64
	bearing  float64
	locked   bool

	lastPos   geo.Point
	hasPos    bool
	lastLimit decimal.Decimal
}

// NewEngine creates an engine reading from the given pool. findLimit
// seeds the tier-lock computation so a Pin before the first Update sees
// the real limit; every Update refreshes it. A nil logger discards log
// output.
func NewEngine(cfg Config, pool *CoinPool, findLimit decimal.Decimal, log *slog.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}
	if pool == nil {
		return nil, errors.New("engine requires a coin pool")
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{cfg: cfg, pool: pool, log: log, lastLimit: findLimit}, nil
}

// Subscription identifies a listener registration for RemoveListener.
// Listeners are matched by token rather than by value so func-backed
// listeners like ListenerFunc can be unsubscribed.
type Subscription uint64

type subscriber struct {
	id Subscription
	l  Listener
}

// AddListener subscribes a listener to engine notifications and returns
// the token that removes it.
func (e *Engine) AddListener(l Listener) Subscription {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.nextSub++
	e.subs = append(e.subs, subscriber{id: e.nextSub, l: l})
	return e.nextSub
}

// RemoveListener unsubscribes by token. Unknown tokens are a no-op.
func (e *Engine) RemoveListener(s Subscription) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, sub := range e.subs {
		if sub.id == s {
			e.subs = append(e.subs[:i], e.subs[i+1:]...)
			return
		}
	}
}

// Update advances the state machine by one sensor tick. heading is nil
// when no compass reading is available this tick; zone classification is
// unaffected, only the relative bearing in DistanceUpdated degrades.
// Malformed input returns ErrInputRejected with prior state fully
// preserved.
func (e *Engine) Update(pos geo.Point, heading *float64, findLimit decimal.Decimal) error {
	if !pos.Valid() {
		e.log.Warn("tick rejected: invalid position", "lat", pos.Lat, "lon", pos.Lon)
		return fmt.Errorf("position (%v, %v): %w", pos.Lat, pos.Lon, ErrInputRejected)
	}
	if heading != nil && (math.IsNaN(*heading) || math.IsInf(*heading, 0)) {
		e.log.Warn("tick rejected: invalid heading", "heading", *heading)
		return fmt.Errorf("heading %v: %w", *heading, ErrInputRejected)
	}

	e.mu.Lock()
	var events []Event
	wasTracking := e.target != nil

	// Target loss: the tracked coin can vanish from the pool between
	// ticks (concurrent collection or an external removal). Detect it
	// here instead of computing geometry against a dangling reference.
	if e.target != nil {
		if _, ok := e.pool.Get(e.target.ID); !ok {
			e.log.Warn("tracked coin vanished from pool", "coin", e.target.ID)
			e.resetTrackingLocked()
		}
	}

	// Auto-selected targets are dropped once the player walks beyond the
	// tracking radius; pinned targets stay until unpinned or removed.
	if e.target != nil && !e.pinned {
		if geo.DistanceMeters(pos, e.target.Position) > e.cfg.TrackingRadius+e.cfg.Hysteresis {
			e.resetTrackingLocked()
		}
	}

	if e.target == nil {
		if c, ok := e.pool.Nearest(pos, e.cfg.TrackingRadius); ok {
			events = append(events, e.setTargetLocked(c, false, findLimit))
		} else if wasTracking {
			events = append(events, TargetCleared{})
		}
	}

	if e.target != nil {
		events = append(events, e.trackTickLocked(pos, heading, findLimit)...)
	}

	e.lastPos = pos
	e.hasPos = true
	e.lastLimit = findLimit
	listeners := e.cloneListenersLocked()
	e.mu.Unlock()

	emit(listeners, events)
	return nil
}

// Pin explicitly targets a coin, e.g. after the player taps it on the
// map. The pinned coin stays targeted until unpinned, collected, or
// removed, even outside the tracking radius.
func (e *Engine) Pin(id string) error {
	coin, ok := e.pool.Get(id)
	if !ok {
		return fmt.Errorf("pin %q: %w", id, ErrUnknownCoin)
	}

	e.mu.Lock()
	if e.target != nil && e.target.ID == id {
		e.pinned = true
		e.mu.Unlock()
		return nil
	}
	var events []Event
	events = append(events, e.setTargetLocked(coin, true, e.lastLimit))
	if e.hasPos {
		events = append(events, e.trackTickLocked(e.lastPos, nil, e.lastLimit)...)
	}
	listeners := e.cloneListenersLocked()
	e.mu.Unlock()

	emit(listeners, events)
	return nil
}

// Unpin releases an explicit pin. The coin remains the current target
// until normal reselection replaces it.
func (e *Engine) Unpin() {
	e.mu.Lock()
	e.pinned = false
	e.mu.Unlock()
}

// HasTarget reports whether a coin is currently tracked.
func (e *Engine) HasTarget() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.target != nil
}

// CurrentTarget returns the tracked coin, if any.
func (e *Engine) CurrentTarget() (Coin, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.target == nil {
		return Coin{}, false
	}
	return *e.target, true
}

// CurrentZone returns the classified zone. ZoneOutOfRange when idle.
func (e *Engine) CurrentZone() Zone {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.zone
}

// CurrentDistance returns the distance to the target in meters.
func (e *Engine) CurrentDistance() (float64, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.target == nil {
		return 0, false
	}
	return e.distance, true
}

// CurrentBearing returns the absolute bearing to the target in degrees.
func (e *Engine) CurrentBearing() (float64, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.target == nil {
		return 0, false
	}
	return e.bearing, true
}

// IsLocked reports whether the current target is above the find limit.
func (e *Engine) IsLocked() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.target != nil && e.locked
}

// setTargetLocked installs a new target with a fresh zone. Caller holds mu.
func (e *Engine) setTargetLocked(c Coin, pinned bool, findLimit decimal.Decimal) Event {
	e.target = &c
	e.pinned = pinned
	e.zone = ZoneOutOfRange
	e.distance = 0
	e.bearing = 0
	e.locked = c.Locked(findLimit)
	return TargetSet{Coin: c, Locked: e.locked}
}

// resetTrackingLocked drops the current target. Caller holds mu.
func (e *Engine) resetTrackingLocked() {
	e.target = nil
	e.pinned = false
	e.zone = ZoneOutOfRange
	e.distance = 0
	e.bearing = 0
	e.locked = false
}

// trackTickLocked computes geometry, zone, and lock state for the
// current target, returning the notifications to emit. Caller holds mu
// and guarantees a target is set.
func (e *Engine) trackTickLocked(pos geo.Point, heading *float64, findLimit decimal.Decimal) []Event {
	var events []Event

	d := geo.DistanceMeters(pos, e.target.Position)
	b := geo.BearingDegrees(pos, e.target.Position)
	e.distance = d
	e.bearing = b

	du := DistanceUpdated{Meters: d, Bearing: b}
	if heading != nil {
		du.Relative = geo.RelativeBearing(b, geo.NormalizeDegrees(*heading))
		du.HasRelative = true
	}
	events = append(events, du)

	old := e.zone
	next := classifyZone(old, d, e.cfg)
	if next != old {
		e.zone = next
		events = append(events, ZoneChanged{Old: old, New: next})
		if next == ZoneCollectible {
			events = append(events, EnteredCollectionRange{Coin: *e.target})
		} else if old == ZoneCollectible {
			events = append(events, ExitedCollectionRange{Coin: *e.target})
		}
	}

	locked := e.target.Locked(findLimit)
	if locked != e.locked {
		e.locked = locked
		events = append(events, LockStateChanged{Locked: locked})
	}
	return events
}

// classifyZone applies the hysteresis rule: crossing into a tighter zone
// uses the raw threshold, leaving it requires threshold + margin. This
// keeps GPS jitter at a boundary from flapping the zone.
func classifyZone(prev Zone, d float64, cfg Config) Zone {
	switch prev {
	case ZoneCollectible:
		if d <= cfg.CollectDistance+cfg.Hysteresis {
			return ZoneCollectible
		}
		if d <= cfg.NearDistance+cfg.Hysteresis {
			return ZoneNear
		}
		return ZoneOutOfRange
	case ZoneNear:
		if d <= cfg.CollectDistance {
			return ZoneCollectible
		}
		if d <= cfg.NearDistance+cfg.Hysteresis {
			return ZoneNear
		}
		return ZoneOutOfRange
	default:
		if d <= cfg.CollectDistance {
			return ZoneCollectible
		}
		if d <= cfg.NearDistance {
			return ZoneNear
		}
		return ZoneOutOfRange
	}
}

func (e *Engine) cloneListenersLocked() []Listener {
	if len(e.subs) == 0 {
		return nil
	}
	out := make([]Listener, len(e.subs))
	for i, sub := range e.subs {
		out[i] = sub.l
	}
	return out
}

// emit delivers events outside the engine lock so listeners may call
// back into the query surface.
func emit(listeners []Listener, events []Event) {
	for _, ev := range events {
		for _, l := range listeners {
			l.HandleHuntEvent(ev)
		}
	}
}
