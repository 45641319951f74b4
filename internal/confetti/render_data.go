package confetti

import "math"

// RenderParticle is the derived pose of one live particle, ready for
// any rendering layer. Width/Height are in render units, Rotation in
// degrees, Opacity in [0,1].
type RenderParticle struct {
	Kind     Kind
	Color    Color
	X, Y     float64
	Width    float64
	Height   float64
	Rotation float64
	Opacity  float64
}

// opacityFor implements the one-sided opacity ramp: below a lifetime
// fraction of 0.1 opacity is 10x the fraction, everywhere else 1.
// The asymmetry is intentional; do not mirror it at the other end.
func opacityFor(lifetimeFraction float64) float64 {
	if lifetimeFraction < 0.1 {
		return lifetimeFraction * 10
	}
	return 1
}

// pose derives the renderable state of a single particle.
// Squares spin independently of motion: angle = (speed·frac + offset)
// turns. Streamers always point along their velocity.
func (p *Particle) pose() RenderParticle {
	frac := p.LifetimeFraction()
	rp := RenderParticle{
		Kind:    p.Desc.Kind,
		Color:   p.Desc.Color,
		X:       p.X,
		Y:       p.Y,
		Opacity: opacityFor(frac),
	}
	switch p.Desc.Kind {
	case KindStreamer:
		rp.Width = float64(p.Desc.Length)
		rp.Height = StreamerHeight
		rp.Rotation = math.Atan2(p.VY, p.VX) * 180 / math.Pi
	default:
		rp.Width = SquareSize
		rp.Height = SquareSize
		rp.Rotation = (p.Desc.RotationSpeed*frac + p.Desc.RotationOffset) * 360
	}
	return rp
}

// Snapshot appends the derived pose of every live particle to buf and
// returns it. The order is stable for the duration of one frame and
// the snapshot never aliases system state.
func (ps *ParticleSystem) Snapshot(buf []RenderParticle) []RenderParticle {
	buf = buf[:0]
	for i := range ps.P {
		buf = append(buf, ps.P[i].pose())
	}
	return buf
}

// SpriteData packs the live set into the streaming sprite format:
// [x, y, w, h, r, g, b, a, rotationRad] * N.
func (ps *ParticleSystem) SpriteData(buf []float32) []float32 {
	buf = buf[:0]
	for i := range ps.P {
		rp := ps.P[i].pose()
		col := ColorRGB(rp.Color)
		buf = append(buf,
			float32(rp.X), float32(rp.Y),
			float32(rp.Width), float32(rp.Height),
			float32(col.R)/255.0, float32(col.G)/255.0, float32(col.B)/255.0,
			float32(rp.Opacity),
			float32(rp.Rotation*math.Pi/180.0),
		)
	}
	return buf
}
