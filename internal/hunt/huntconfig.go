package hunt

import (
	"fmt"

	"coinhunt.klederson.com/internal/config"
)

// Config holds the proximity thresholds. All distances are meters.
// These are load-bearing for the zone-flap behavior, so they are named
// fields rather than tunable magic numbers.
type Config struct {
	TrackingRadius  float64 // Coins beyond this are never targeted
	NearDistance    float64 // Outer zone boundary
	CollectDistance float64 // Innermost zone boundary
	Hysteresis      float64 // Extra distance required to leave a tighter zone
}

// DefaultConfig returns the stock thresholds.
func DefaultConfig() Config {
	return Config{
		TrackingRadius:  config.TrackingRadius,
		NearDistance:    config.NearDistance,
		CollectDistance: config.CollectDistance,
		Hysteresis:      config.Hysteresis,
	}
}

// Validate checks the thresholds are usable: positive distances, ordered
// collect < near <= tracking, non-negative hysteresis.
func (c Config) Validate() error {
	if c.CollectDistance <= 0 {
		return fmt.Errorf("collect distance must be positive, got %v", c.CollectDistance)
	}
	if c.NearDistance <= c.CollectDistance {
		return fmt.Errorf("near distance %v must exceed collect distance %v", c.NearDistance, c.CollectDistance)
	}
	if c.TrackingRadius < c.NearDistance {
		return fmt.Errorf("tracking radius %v must be at least near distance %v", c.TrackingRadius, c.NearDistance)
	}
	if c.Hysteresis < 0 {
		return fmt.Errorf("hysteresis must be non-negative, got %v", c.Hysteresis)
	}
	return nil
}
