package confetti

// Window defaults.
const (
	WindowWidth  = 1024
	WindowHeight = 768
)

// Burst parameters.
const (
	BurstCount = 100

	SpawnSpeedMean   = 750.0 // px/s
	SpawnSpeedStdDev = 150.0
	SpawnAngleStdDev = 15.0 // degrees around straight up
	LifetimeMean     = 1.5  // seconds
	LifetimeStdDev   = 0.25
)

// Physics.
const (
	Gravity    = 980.0    // px/s², downward
	AirDensity = 0.001226 // shared quadratic-drag constant

	SquareDragCoefficient   = 1.15
	SquareDragArea          = 1.0
	StreamerDragCoefficient = 0.85
	// A streamer's drag reference area is its length divided by this.
	StreamerAreaDivisor = 10.0
)

// Descriptor distributions.
const (
	// Square is picked with probability SquareWeight/(SquareWeight+StreamerWeight).
	SquareWeight   = 5
	StreamerWeight = 3

	RotationSpeedMean   = 1.0
	RotationSpeedStdDev = 1.0

	StreamerLengthMean   = 25.0
	StreamerLengthStdDev = 10.0
	StreamerMinLength    = 10
)

// Visual sizes (render units).
const (
	SquareSize     = 10.0
	StreamerHeight = 10.0
	StrokeWidth    = 1.0
	CornerRadius   = 2.0
)

// Particles.
const (
	MaxParticles      = 15000
	MaxParticleRender = 20000
)

// Audio.
const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)
