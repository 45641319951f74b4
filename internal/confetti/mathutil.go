package confetti

import "math"

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Rand is a tiny deterministic RNG (xorshift64*). The single word of
// state is the whole generator, so session blobs can carry it.
type Rand struct {
	s uint64
}

func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = 1
	}
	return &Rand{s: seed}
}

// State exposes the generator state for session snapshots.
func (r *Rand) State() uint64 { return r.s }

// SetState restores a previously snapshotted generator state.
func (r *Rand) SetState(s uint64) {
	if s == 0 {
		s = 1
	}
	r.s = s
}

func (r *Rand) NextU64() uint64 {
	x := r.s
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.s = x
	return x * 2685821657736338717
}

func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.NextU64() % uint64(n))
}

func (r *Rand) Float64() float64 {
	return float64(r.NextU64()>>11) * (1.0 / (1 << 53))
}

// NormFloat64 draws from N(0,1) using the Marsaglia polar method.
// The paired second output is discarded: keeping it would add hidden
// generator state beyond the xorshift word.
func (r *Rand) NormFloat64() float64 {
	for {
		u := 2.0*r.Float64() - 1.0
		v := 2.0*r.Float64() - 1.0
		s := u*u + v*v
		if s >= 1.0 || s == 0.0 {
			continue
		}
		return u * math.Sqrt(-2.0*math.Log(s)/s)
	}
}

// Norm draws from N(mean, stddev).
func (r *Rand) Norm(mean, stddev float64) float64 {
	return mean + stddev*r.NormFloat64()
}
