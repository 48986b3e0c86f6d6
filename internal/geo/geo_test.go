package geo

import (
	"math"
	"testing"
)

func TestDistanceZeroForIdenticalPoints(t *testing.T) {
	points := []Point{
		{0, 0},
		{45.0, -120.5},
		{-89.9, 179.9},
		{51.5074, -0.1278},
	}
	for _, p := range points {
		if d := DistanceMeters(p, p); d != 0 {
			t.Errorf("DistanceMeters(%v, %v) = %v, want exactly 0", p, p, d)
		}
	}
}

func TestDistanceSymmetry(t *testing.T) {
	a := Point{Lat: 40.7128, Lon: -74.0060}
	b := Point{Lat: 51.5074, Lon: -0.1278}
	ab := DistanceMeters(a, b)
	ba := DistanceMeters(b, a)
	if ab != ba {
		t.Errorf("distance not symmetric: a->b=%v b->a=%v", ab, ba)
	}
}

func TestDistanceShortRange(t *testing.T) {
	// 0.00005 degrees of longitude at the equator is ~5.57 m.
	a := Point{Lat: 0, Lon: 0}
	b := Point{Lat: 0, Lon: 0.00005}
	d := DistanceMeters(a, b)
	if d < 5.4 || d > 5.7 {
		t.Errorf("equatorial 0.00005deg = %v m, want ~5.56", d)
	}
}

func TestDistanceKnownPair(t *testing.T) {
	// Paris -> London is roughly 344 km great-circle.
	paris := Point{Lat: 48.8566, Lon: 2.3522}
	london := Point{Lat: 51.5074, Lon: -0.1278}
	d := DistanceMeters(paris, london)
	if d < 340_000 || d > 348_000 {
		t.Errorf("Paris-London = %v m, want ~344 km", d)
	}
}

func TestBearingCardinalPoints(t *testing.T) {
	origin := Point{Lat: 0, Lon: 0}
	tests := []struct {
		name string
		to   Point
		want float64
	}{
		{"North", Point{Lat: 1, Lon: 0}, 0},
		{"East", Point{Lat: 0, Lon: 1}, 90},
		{"South", Point{Lat: -1, Lon: 0}, 180},
		{"West", Point{Lat: 0, Lon: -1}, 270},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BearingDegrees(origin, tt.to)
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("bearing to %v = %v, want %v", tt.to, got, tt.want)
			}
		})
	}
}

func TestBearingIdenticalPointsIsZero(t *testing.T) {
	p := Point{Lat: 12.34, Lon: 56.78}
	if b := BearingDegrees(p, p); b != 0 {
		t.Errorf("bearing for identical points = %v, want 0", b)
	}
}

func TestRelativeBearingWrap(t *testing.T) {
	tests := []struct {
		target, heading, want float64
	}{
		{350, 10, -20},
		{359, 1, -2},
		{10, 350, 20},
		{0, 180, -180},
		{180, 0, -180}, // exactly opposite maps to the low edge of [-180,180)
		{90, 45, 45},
		{45, 90, -45},
		{0, 0, 0},
	}
	for _, tt := range tests {
		got := RelativeBearing(tt.target, tt.heading)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("RelativeBearing(%v, %v) = %v, want %v", tt.target, tt.heading, got, tt.want)
		}
	}
}

func TestRelativeBearingRange(t *testing.T) {
	for target := 0.0; target < 360; target += 7.3 {
		for heading := 0.0; heading < 360; heading += 11.7 {
			got := RelativeBearing(target, heading)
			if got < -180 || got >= 180 {
				t.Fatalf("RelativeBearing(%v, %v) = %v outside [-180,180)", target, heading, got)
			}
		}
	}
}

func TestCardinalDirection(t *testing.T) {
	tests := []struct {
		bearing float64
		want    string
	}{
		{0, "N"},
		{11.24, "N"},
		{11.25, "NNE"}, // lower edge of sector is inclusive
		{22.5, "NNE"},
		{45, "NE"},
		{90, "E"},
		{180, "S"},
		{270, "W"},
		{348.74, "NNW"},
		{348.75, "N"},
		{359.9, "N"},
	}
	for _, tt := range tests {
		if got := CardinalDirection(tt.bearing); got != tt.want {
			t.Errorf("CardinalDirection(%v) = %q, want %q", tt.bearing, got, tt.want)
		}
	}
}

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		meters float64
		want   string
	}{
		{0, "0 m"},
		{4.4, "4 m"},
		{999, "999 m"},
		{1000, "1.0 km"},
		{1550, "1.6 km"},
		{12345, "12.3 km"},
	}
	for _, tt := range tests {
		if got := FormatDistance(tt.meters); got != tt.want {
			t.Errorf("FormatDistance(%v) = %q, want %q", tt.meters, got, tt.want)
		}
	}
}

func TestPointValid(t *testing.T) {
	valid := []Point{{0, 0}, {90, 180}, {-90, -180}, {45.5, -120.25}}
	for _, p := range valid {
		if !p.Valid() {
			t.Errorf("%v reported invalid", p)
		}
	}
	invalid := []Point{
		{math.NaN(), 0},
		{0, math.NaN()},
		{math.Inf(1), 0},
		{91, 0},
		{0, 181},
		{-90.001, 0},
	}
	for _, p := range invalid {
		if p.Valid() {
			t.Errorf("%v reported valid", p)
		}
	}
}
