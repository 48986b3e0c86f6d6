package radar

import (
	"math"

	"coinhunt.klederson.com/internal/config"
)

// cellPolar returns a grid cell's distance (in cells) and angle (radians,
// 0=north clockwise) from the radar center, corrected for terminal
// character aspect.
func cellPolar(col, row, centerX, centerY int) (dist, angle float64) {
	dx := float64(col - centerX)
	dy := float64(row-centerY) / config.AspectRatio
	dist = math.Sqrt(dx*dx + dy*dy)
	angle = math.Atan2(dx, -dy)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return dist, angle
}

// plotCell maps a real-world range and bearing onto a grid cell.
// Anything past maxRange clamps to the outer edge.
func plotCell(meters, bearingDeg, maxRange, radius float64, centerX, centerY int) (col, row int) {
	r := radius
	if meters < maxRange {
		r = meters / maxRange * radius
	}
	b := bearingDeg * math.Pi / 180
	col = centerX + int(math.Round(r*math.Sin(b)))
	row = centerY - int(math.Round(r*math.Cos(b)*config.AspectRatio))
	return col, row
}

// ringGlyph picks the ring character for a given angle so circles read
// as curves in cell art.
func ringGlyph(angle float64) rune {
	for angle < 0 {
		angle += 2 * math.Pi
	}
	sector := int(math.Round(angle/(math.Pi/4))) % 8
	switch sector {
	case 0, 4:
		return '-'
	case 2, 6:
		return '|'
	case 1, 5:
		return '/'
	default:
		return '\\'
	}
}
