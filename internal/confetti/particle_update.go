package confetti

import "math"

// Update advances every particle by dt seconds and drops expired ones.
// Integration is semi-implicit Euler: forces first, then position, so
// large deltas stay stable. A negative or non-finite dt is clamped to
// zero — the demo keeps rendering rather than faulting on a bad clock.
func (ps *ParticleSystem) Update(dt float64) {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}

	for i := 0; i < len(ps.P); {
		p := &ps.P[i]

		p.Life += dt
		if p.Life >= p.MaxLife {
			ps.P[i] = ps.P[len(ps.P)-1]
			ps.P = ps.P[:len(ps.P)-1]
			continue
		}

		// Quadratic drag: a = -½·ρ·C·A·|v|·v, opposing motion.
		speed := math.Hypot(p.VX, p.VY)
		k := 0.5 * AirDensity * p.Desc.dragCoefficient() * p.Desc.dragArea() * speed

		p.VX -= k * p.VX * dt
		p.VY += (Gravity - k*p.VY) * dt

		p.X += p.VX * dt
		p.Y += p.VY * dt

		i++
	}
}
