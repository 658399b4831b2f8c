package vmath

// FastRand is a xorshift64 generator for spawn jitter and tests
// Not cryptographic; deterministic for a given seed
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float32 returns a uniform value in [0, 1)
func (r *FastRand) Float32() float32 {
	return float32(r.Next()>>40) * (1.0 / (1 << 24))
}

// Range returns a uniform value in [lo, hi)
func (r *FastRand) Range(lo, hi float32) float32 {
	return lo + r.Float32()*(hi-lo)
}

// Jitter returns a uniform value in [-extent, extent)
func (r *FastRand) Jitter(extent float32) float32 {
	return r.Range(-extent, extent)
}
