package app

// DistanceRing is a circular buffer of recent target distances, feeding
// the approach sparkline in the target panel.
type DistanceRing struct {
	buf   []float64
	pos   int
	count int
}

// NewDistanceRing creates a ring with the given capacity.
func NewDistanceRing(capacity int) *DistanceRing {
	return &DistanceRing{
		buf: make([]float64, capacity),
	}
}

// Push records a distance sample.
func (r *DistanceRing) Push(meters float64) {
	r.buf[r.pos] = meters
	r.pos = (r.pos + 1) % len(r.buf)
	if r.count < len(r.buf) {
		r.count++
	}
}

// Reset drops all samples, e.g. on a target change.
func (r *DistanceRing) Reset() {
	r.pos = 0
	r.count = 0
}

// Values returns the stored samples in chronological order.
func (r *DistanceRing) Values() []float64 {
	if r.count == 0 {
		return nil
	}
	out := make([]float64, r.count)
	if r.count < len(r.buf) {
		copy(out, r.buf[:r.count])
	} else {
		n := copy(out, r.buf[r.pos:])
		copy(out[n:], r.buf[:r.pos])
	}
	return out
}
