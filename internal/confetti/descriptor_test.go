package confetti

import (
	"math"
	"reflect"
	"testing"
)

func TestKindSelectionRatio(t *testing.T) {
	r := NewRand(1001)
	const n = 100000
	squares := 0
	for i := 0; i < n; i++ {
		if GenerateDescriptor(r).Kind == KindSquare {
			squares++
		}
	}
	got := float64(squares) / n
	want := float64(SquareWeight) / float64(SquareWeight+StreamerWeight) // 5/8
	if math.Abs(got-want) > 0.01 {
		t.Errorf("square fraction = %v, want %v ±0.01", got, want)
	}
}

func TestSquareColorWeights(t *testing.T) {
	r := NewRand(2002)
	counts := map[Color]int{}
	squares := 0
	for squares < 100000 {
		d := GenerateDescriptor(r)
		if d.Kind != KindSquare {
			continue
		}
		counts[d.Color]++
		squares++
	}

	wants := map[Color]float64{Red: 0.2, Pink: 0.2, Yellow: 0.2, Green: 0.4}
	for color, want := range wants {
		got := float64(counts[color]) / float64(squares)
		if math.Abs(got-want) > 0.01 {
			t.Errorf("square %v frequency = %v, want %v ±0.01", color, got, want)
		}
	}
	if counts[Blue] != 0 {
		t.Errorf("squares must never be blue, got %d", counts[Blue])
	}
}

func TestStreamerColorUniform(t *testing.T) {
	r := NewRand(3003)
	counts := map[Color]int{}
	streamers := 0
	for streamers < 100000 {
		d := GenerateDescriptor(r)
		if d.Kind != KindStreamer {
			continue
		}
		counts[d.Color]++
		streamers++
	}

	for _, color := range []Color{Pink, Yellow, Blue} {
		got := float64(counts[color]) / float64(streamers)
		if math.Abs(got-1.0/3.0) > 0.01 {
			t.Errorf("streamer %v frequency = %v, want 1/3 ±0.01", color, got)
		}
	}
	if counts[Red] != 0 || counts[Green] != 0 {
		t.Errorf("streamers must only be pink/yellow/blue, got %v", counts)
	}
}

func TestStreamerLengthFloor(t *testing.T) {
	r := NewRand(4004)
	seen := 0
	for seen < 50000 {
		d := GenerateDescriptor(r)
		if d.Kind != KindStreamer {
			continue
		}
		if d.Length < StreamerMinLength {
			t.Fatalf("streamer length %d below floor %d", d.Length, StreamerMinLength)
		}
		seen++
	}
}

func TestSquareRotationSpeedUnclamped(t *testing.T) {
	// Rotation speed is N(1,1); roughly 16% of draws land below zero.
	// Seeing none in a large sample would mean it is being clamped.
	r := NewRand(5005)
	negative := 0
	squares := 0
	for squares < 20000 {
		d := GenerateDescriptor(r)
		if d.Kind != KindSquare {
			continue
		}
		if d.RotationSpeed < 0 {
			negative++
		}
		if d.RotationOffset < 0 || d.RotationOffset >= 1 {
			t.Fatalf("rotation offset out of [0,1): %v", d.RotationOffset)
		}
		squares++
	}
	if negative == 0 {
		t.Error("expected some negative rotation speeds (reverse spin)")
	}
}

func TestBurstSpecsPositionAndCount(t *testing.T) {
	r := NewRand(6006)
	specs := BurstSpecs(r, 320, 240, BurstCount)
	if len(specs) != BurstCount {
		t.Fatalf("expected %d specs, got %d", BurstCount, len(specs))
	}
	for i, s := range specs {
		if s.X != 320 || s.Y != 240 {
			t.Errorf("spec %d spawned at (%v,%v), want exactly (320,240)", i, s.X, s.Y)
		}
		if s.Lifetime <= 0 {
			t.Errorf("spec %d lifetime %v, want > 0", i, s.Lifetime)
		}
	}
}

func TestBurstSpecsDeterministic(t *testing.T) {
	a := BurstSpecs(NewRand(7007), 10, 20, BurstCount)
	b := BurstSpecs(NewRand(7007), 10, 20, BurstCount)
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed must yield identical burst specs")
	}
}

func TestBurstSpecsFireUpward(t *testing.T) {
	// Direction is N(0°,15°) around straight up: nearly all particles
	// start with negative vy, and mean speed is near 750 px/s.
	specs := BurstSpecs(NewRand(8008), 0, 0, 10000)
	up := 0
	var speedSum float64
	for _, s := range specs {
		if s.VY < 0 {
			up++
		}
		speedSum += math.Hypot(s.VX, s.VY)
	}
	if frac := float64(up) / float64(len(specs)); frac < 0.99 {
		t.Errorf("only %v of particles start upward", frac)
	}
	mean := speedSum / float64(len(specs))
	if math.Abs(mean-SpawnSpeedMean) > 10 {
		t.Errorf("mean spawn speed = %v, want near %v", mean, SpawnSpeedMean)
	}
}

func TestDragLookup(t *testing.T) {
	tests := []struct {
		name     string
		desc     Descriptor
		wantC    float64
		wantArea float64
	}{
		{"Square", Descriptor{Kind: KindSquare}, 1.15, 1.0},
		{"Short streamer", Descriptor{Kind: KindStreamer, Length: 10}, 0.85, 1.0},
		{"Long streamer", Descriptor{Kind: KindStreamer, Length: 40}, 0.85, 4.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if c := tt.desc.dragCoefficient(); c != tt.wantC {
				t.Errorf("coefficient = %v, want %v", c, tt.wantC)
			}
			if a := tt.desc.dragArea(); a != tt.wantArea {
				t.Errorf("area = %v, want %v", a, tt.wantArea)
			}
		})
	}
}
