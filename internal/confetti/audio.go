package confetti

import (
	"io"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

// SoundKind identifies the named sound effects.
type SoundKind int

const (
	SoundPop SoundKind = iota
	SoundWhistle
)

// AudioSystem manages procedural sound effects.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}
}

var globalAudio *AudioSystem

var sfxVolume float64 = 0.55

// InitAudio initializes the audio system.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// PlaySound plays a named sound effect, fire and forget. Without an
// initialized audio context it is a no-op.
func PlaySound(kind SoundKind) {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	samples := generateSound(kind)
	if len(samples) == 0 {
		return
	}
	go func() {
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat applies gentle tanh-like saturation — no harsh clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundPop:
		return genPop()
	case SoundWhistle:
		return genWhistle()
	}
	return nil
}

// genPop: champagne-cork pop — a short FM thump with a noise burst tail.
func genPop() []byte {
	n := int(0.12 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(7707)
	lp := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.008, 0.45, 0.0, 0.15)
		thump := fm(t, 180, 0.5, 2.2) * math.Exp(-p*14)
		lp = lp*0.72 + lcg(&seed)*0.28 // lowpassed fizz
		s := thump*0.7 + lp*0.25*env
		putStereoF32(buf, i, softSat(s*env))
	}
	return buf
}

// genWhistle: rising party whistle that chirps up and falls off.
func genWhistle() []byte {
	n := int(0.35 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.05, 0.25, 0.5, 0.3)
		freq := 900 + 1400*math.Pow(p, 0.7)
		s := fm(t, freq, 1.0, 0.8)*0.4 + math.Sin(2*math.Pi*freq*2*t)*0.08
		putStereoF32(buf, i, softSat(s*env))
	}
	return buf
}
