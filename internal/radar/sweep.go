package radar

import (
	"math"
	"time"
)

// Sweep animates the rotating scan line. It advances by wall-clock delta
// so the rotation speed is independent of the frame rate.
type Sweep struct {
	angle float64 // radians [0, 2pi)
	rpm   float64
	trail float64 // trailing glow, radians
	last  time.Time
}

// NewSweep creates a sweep rotating at rpm with a glow trail of trailDeg.
func NewSweep(rpm, trailDeg float64) *Sweep {
	return &Sweep{
		rpm:   rpm,
		trail: trailDeg * math.Pi / 180,
		last:  time.Now(),
	}
}

// Update advances the sweep by the time elapsed since the last call.
func (s *Sweep) Update() {
	now := time.Now()
	dt := now.Sub(s.last).Seconds()
	s.last = now
	s.angle = math.Mod(s.angle+dt*s.rpm/60*2*math.Pi, 2*math.Pi)
}

// Intensity returns the glow [0,1] for a cell angle: 1 at the sweep head
// falling linearly to 0 at the end of the trail.
func (s *Sweep) Intensity(cellAngle float64) float64 {
	diff := math.Mod(s.angle-cellAngle, 2*math.Pi)
	if diff < 0 {
		diff += 2 * math.Pi
	}
	if diff > s.trail {
		return 0
	}
	return 1 - diff/s.trail
}
