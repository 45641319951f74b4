package confetti

import "math"

// Kind tags the two confetti variants.
type Kind uint8

const (
	KindSquare Kind = iota
	KindStreamer
)

func (k Kind) String() string {
	if k == KindStreamer {
		return "streamer"
	}
	return "square"
}

// Descriptor is the immutable randomized appearance of one confetti
// piece, fixed at spawn. Square fields are meaningful only for
// KindSquare, Length only for KindStreamer.
type Descriptor struct {
	Kind  Kind
	Color Color

	// Square: full turns per lifetime (signed; negative = reverse
	// spin) and a fixed phase offset in [0,1).
	RotationSpeed  float64
	RotationOffset float64

	// Streamer: integer length, floored at StreamerMinLength.
	Length int
}

// squareColors are drawn with weights 1,1,1,2 (green doubled).
var squareColors = []Color{Red, Pink, Yellow, Green, Green}

// streamerColors are drawn uniformly.
var streamerColors = []Color{Pink, Yellow, Blue}

// GenerateDescriptor samples one descriptor from the generator.
// Squares are picked 5/8 of the time, streamers 3/8. Draw order is
// fixed so a seeded run reproduces exactly.
func GenerateDescriptor(r *Rand) Descriptor {
	if r.Intn(SquareWeight+StreamerWeight) < SquareWeight {
		return Descriptor{
			Kind:           KindSquare,
			Color:          squareColors[r.Intn(len(squareColors))],
			RotationSpeed:  r.Norm(RotationSpeedMean, RotationSpeedStdDev),
			RotationOffset: r.Float64(),
		}
	}
	length := int(math.Round(math.Abs(r.Norm(StreamerLengthMean, StreamerLengthStdDev))))
	if length < StreamerMinLength {
		length = StreamerMinLength
	}
	return Descriptor{
		Kind:   KindStreamer,
		Color:  streamerColors[r.Intn(len(streamerColors))],
		Length: length,
	}
}

// dragCoefficient returns the variant's quadratic-drag coefficient.
func (d Descriptor) dragCoefficient() float64 {
	if d.Kind == KindStreamer {
		return StreamerDragCoefficient
	}
	return SquareDragCoefficient
}

// dragArea returns the variant's drag reference area.
func (d Descriptor) dragArea() float64 {
	if d.Kind == KindStreamer {
		return float64(d.Length) / StreamerAreaDivisor
	}
	return SquareDragArea
}

// SpawnSpec is a fully sampled particle ready to enter the system.
type SpawnSpec struct {
	Desc     Descriptor
	X, Y     float64
	VX, VY   float64
	Lifetime float64
}

// BurstSpecs samples count independent spawn specs at (x, y).
// Direction is N(0°, 15°) measured from straight up (screen -y),
// speed N(750, 150) px/s, lifetime N(1.5, 0.25)s truncated positive.
// Position gets no jitter. Per particle the draw order is descriptor,
// direction, speed, lifetime.
func BurstSpecs(r *Rand, x, y float64, count int) []SpawnSpec {
	specs := make([]SpawnSpec, 0, count)
	for range count {
		desc := GenerateDescriptor(r)
		angle := r.Norm(0, SpawnAngleStdDev) * math.Pi / 180.0
		speed := r.Norm(SpawnSpeedMean, SpawnSpeedStdDev)
		lifetime := r.Norm(LifetimeMean, LifetimeStdDev)
		for lifetime <= 0 {
			lifetime = r.Norm(LifetimeMean, LifetimeStdDev)
		}
		specs = append(specs, SpawnSpec{
			Desc:     desc,
			X:        x,
			Y:        y,
			VX:       speed * math.Sin(angle),
			VY:       -speed * math.Cos(angle),
			Lifetime: lifetime,
		})
	}
	return specs
}
