package confetti

// Particle is one live confetti piece.
type Particle struct {
	Desc Descriptor

	X, Y   float64
	VX, VY float64

	Life    float64 // elapsed age, seconds
	MaxLife float64 // assigned lifetime, seconds
}

// LifetimeFraction returns age/lifetime clamped to [0,1].
func (p *Particle) LifetimeFraction() float64 {
	if p.MaxLife <= 0 {
		return 1
	}
	return clampF(p.Life/p.MaxLife, 0, 1)
}

// ParticleSystem owns the live collection and the generator state.
// Callers must serialize Burst/Update/Snapshot against one instance.
type ParticleSystem struct {
	Max    int
	P      []Particle
	rng    *Rand
	seed   uint64
	bursts int
	ovrIdx int // circular overwrite index when full
}

func NewParticleSystem(maxParticles int, seed uint64) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	if seed == 0 {
		seed = 1
	}
	return &ParticleSystem{
		Max:  maxParticles,
		P:    make([]Particle, 0, maxParticles),
		rng:  NewRand(seed),
		seed: seed,
	}
}

// Seed returns the seed the system was created with.
func (ps *ParticleSystem) Seed() uint64 { return ps.seed }

// Bursts returns how many bursts have been fired on this system.
func (ps *ParticleSystem) Bursts() int { return ps.bursts }

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

// Burst samples count new particles at (x, y) and appends them.
func (ps *ParticleSystem) Burst(x, y float64, count int) {
	specs := BurstSpecs(ps.rng, x, y, count)
	for _, s := range specs {
		ps.add(Particle{
			Desc:    s.Desc,
			X:       s.X,
			Y:       s.Y,
			VX:      s.VX,
			VY:      s.VY,
			MaxLife: s.Lifetime,
		})
	}
	ps.bursts++
}

func (ps *ParticleSystem) add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	// Circular overwrite: the newest burst always shows up.
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}
