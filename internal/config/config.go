package config

import "time"

const (
	// Proximity defaults (meters)
	TrackingRadius  = 250.0 // Coins beyond this are ignored for targeting
	NearDistance    = 50.0  // Outer zone boundary
	CollectDistance = 5.0   // Collection zone boundary
	Hysteresis      = 1.0   // Margin before leaving a tighter zone

	// Radar display
	MaxRange      = 100.0 // Maximum radar range in meters
	AspectRatio   = 0.5   // Terminal char aspect correction (chars are ~2:1 tall)
	RingCount     = 4     // Number of concentric rings
	SweepSpeedRPM = 30    // Sweep rotations per minute (1 rotation per 2 seconds)
	SweepTrailDeg = 60.0  // Sweep trail angle in degrees
	TargetFPS     = 30    // Target frames per second

	// Demo walker
	WalkTickInterval = 200 * time.Millisecond // Simulated GPS cadence
	WalkSpeedMPS     = 1.4                    // Average walking speed, meters/second
	GPSJitterMeters  = 1.2                    // Gaussian position noise per tick
	DemoCoinMin      = 10                     // Minimum seeded coins
	DemoCoinMax      = 16                     // Maximum seeded coins

	// App
	AppName    = "COIN-HUNT"
	AppVersion = "1.0"
)
