package sim

import (
	"context"
	"math"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"coinhunt.klederson.com/internal/config"
	"coinhunt.klederson.com/internal/geo"
	"coinhunt.klederson.com/internal/hunt"
)

// PositionMsg is one simulated GPS/compass sample pushed into the app.
// Heading is nil when the compass "drops out".
type PositionMsg struct {
	Position geo.Point
	Heading  *float64
}

// Walker simulates the phone of a player wandering a coin field: a
// random walk with GPS jitter and occasional compass loss, emitted at a
// fixed cadence through the Bubble Tea program.
type Walker struct {
	program *tea.Program
	rng     *rand.Rand

	pos     geo.Point
	heading float64
	cancel  context.CancelFunc
}

// NewWalker creates a walker starting at the given point. The same seed
// reproduces the same stroll.
func NewWalker(start geo.Point, seed int64) *Walker {
	rng := rand.New(rand.NewSource(seed))
	return &Walker{
		rng:     rng,
		pos:     start,
		heading: rng.Float64() * 360,
	}
}

// Start begins emitting samples. Must be called before p.Run().
func (w *Walker) Start(p *tea.Program) {
	w.program = p
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	go w.loop(ctx)
}

// Stop halts the walker.
func (w *Walker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
}

func (w *Walker) loop(ctx context.Context) {
	ticker := time.NewTicker(config.WalkTickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.step(config.WalkTickInterval.Seconds())
		}
	}
}

func (w *Walker) step(dt float64) {
	// Meander: small heading drift with the occasional sharp turn.
	w.heading = geo.NormalizeDegrees(w.heading + w.rng.NormFloat64()*12)
	if w.rng.Float64() < 0.03 {
		w.heading = w.rng.Float64() * 360
	}

	speed := config.WalkSpeedMPS * (0.7 + w.rng.Float64()*0.6)
	w.pos = offset(w.pos, speed*dt, w.heading)

	// The reported fix carries jitter; the true position does not.
	jitterDir := w.rng.Float64() * 360
	reported := offset(w.pos, math.Abs(w.rng.NormFloat64())*config.GPSJitterMeters, jitterDir)

	msg := PositionMsg{Position: reported}
	if w.rng.Float64() >= 0.05 { // 5% compass dropout
		h := geo.NormalizeDegrees(w.heading + w.rng.NormFloat64()*5)
		msg.Heading = &h
	}
	if w.program != nil {
		w.program.Send(msg)
	}
}

// offset moves a point the given meters along a bearing.
func offset(p geo.Point, meters, bearingDeg float64) geo.Point {
	const earthRadius = 6371008.8
	b := bearingDeg * math.Pi / 180
	dLat := meters * math.Cos(b) / earthRadius * 180 / math.Pi
	dLon := meters * math.Sin(b) / (earthRadius * math.Cos(p.Lat*math.Pi/180)) * 180 / math.Pi
	return geo.Point{Lat: p.Lat + dLat, Lon: p.Lon + dLon}
}

// Demo coin values, spread so every tier has something to chase.
var coinValues = []string{
	"0.25", "0.50", "1.00", "2.00", "2.50", "5.00",
	"7.50", "10.00", "20.00", "25.00", "50.00", "100.00", "250.00",
}

// SeedCoins scatters a demo coin field around a center point, from just
// outside collect range up to 1.5x the radar range.
func SeedCoins(center geo.Point, seed int64) []hunt.Coin {
	rng := rand.New(rand.NewSource(seed))
	count := config.DemoCoinMin + rng.Intn(config.DemoCoinMax-config.DemoCoinMin+1)

	coins := make([]hunt.Coin, 0, count)
	for i := 0; i < count; i++ {
		dist := 8 + rng.Float64()*(config.MaxRange*1.5-8)
		bearing := rng.Float64() * 360
		value := coinValues[rng.Intn(len(coinValues))]
		coins = append(coins, hunt.Coin{
			ID:       uuid.NewString(),
			Position: offset(center, dist, bearing),
			Value:    decimal.RequireFromString(value),
		})
	}
	return coins
}
