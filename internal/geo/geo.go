package geo

import (
	"fmt"
	"math"
)

// Mean Earth radius in meters (IUGG).
const earthRadiusMeters = 6371008.8

// Point is a geographic coordinate in degrees (WGS-84).
type Point struct {
	Lat float64
	Lon float64
}

// Valid reports whether the point holds finite coordinates within range.
func (p Point) Valid() bool {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lon) || math.IsInf(p.Lat, 0) || math.IsInf(p.Lon, 0) {
		return false
	}
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// DistanceMeters computes the great-circle (haversine) distance between
// two points. Identical points return exactly 0.
func DistanceMeters(a, b Point) float64 {
	if a == b {
		return 0
	}

	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon
	if h > 1 {
		h = 1
	}
	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(h))
}

// BearingDegrees computes the initial bearing from one point to another.
// Returns degrees in [0, 360), where 0=north, increasing clockwise.
// Identical points return 0 (degenerate case, not an error).
func BearingDegrees(from, to Point) float64 {
	if from == to {
		return 0
	}

	lat1 := from.Lat * math.Pi / 180
	lat2 := to.Lat * math.Pi / 180
	dLon := (to.Lon - from.Lon) * math.Pi / 180

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)
	deg := math.Atan2(y, x) * 180 / math.Pi
	return NormalizeDegrees(deg)
}

// RelativeBearing returns the signed turn angle from deviceHeading toward
// targetBearing, in [-180, 180). Wraps correctly across 0/360: a target
// at 350 with heading 10 yields -20, not +340.
func RelativeBearing(targetBearing, deviceHeading float64) float64 {
	d := math.Mod(targetBearing-deviceHeading, 360)
	if d < -180 {
		d += 360
	} else if d >= 180 {
		d -= 360
	}
	return d
}

// NormalizeDegrees wraps an angle to [0, 360).
func NormalizeDegrees(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// 16-point compass rose, clockwise from north.
var cardinalLabels = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// CardinalDirection maps a bearing to a 16-point compass label using
// midpoint rounding. Sector boundaries are inclusive on the lower edge,
// so 11.25 is already NNE.
func CardinalDirection(bearing float64) string {
	b := NormalizeDegrees(bearing)
	idx := int(b/22.5+0.5) % 16
	return cardinalLabels[idx]
}

// FormatDistance renders a distance for display: whole meters below 1 km,
// kilometers with one decimal above.
func FormatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%.0f m", meters)
	}
	return fmt.Sprintf("%.1f km", meters/1000)
}
