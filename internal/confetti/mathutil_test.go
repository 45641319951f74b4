package confetti

import (
	"math"
	"testing"
)

func TestRandDeterminism(t *testing.T) {
	a := NewRand(12345)
	b := NewRand(12345)
	for i := 0; i < 1000; i++ {
		if av, bv := a.NextU64(), b.NextU64(); av != bv {
			t.Fatalf("draw %d diverged: %d vs %d", i, av, bv)
		}
	}
}

func TestRandZeroSeed(t *testing.T) {
	r := NewRand(0)
	if r.State() == 0 {
		t.Fatal("zero seed must be remapped, xorshift sticks at 0")
	}
}

func TestRandFloat64Range(t *testing.T) {
	r := NewRand(7)
	for i := 0; i < 10000; i++ {
		v := r.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64 out of [0,1): %v", v)
		}
	}
}

func TestNormFloat64Moments(t *testing.T) {
	r := NewRand(99)
	const n = 200000
	var sum, sumSq float64
	for i := 0; i < n; i++ {
		v := r.NormFloat64()
		sum += v
		sumSq += v * v
	}
	mean := sum / n
	stddev := math.Sqrt(sumSq/n - mean*mean)
	if math.Abs(mean) > 0.02 {
		t.Errorf("expected mean near 0, got %v", mean)
	}
	if math.Abs(stddev-1) > 0.02 {
		t.Errorf("expected stddev near 1, got %v", stddev)
	}
}

func TestNormScaling(t *testing.T) {
	r := NewRand(4)
	const n = 100000
	var sum float64
	for i := 0; i < n; i++ {
		sum += r.Norm(25, 10)
	}
	mean := sum / n
	if math.Abs(mean-25) > 0.3 {
		t.Errorf("expected mean near 25, got %v", mean)
	}
}

func TestSetStateResumes(t *testing.T) {
	r := NewRand(555)
	for i := 0; i < 10; i++ {
		r.NextU64()
	}
	state := r.State()
	want := r.NextU64()

	fresh := NewRand(1)
	fresh.SetState(state)
	if got := fresh.NextU64(); got != want {
		t.Errorf("restored generator diverged: got %d, want %d", got, want)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"Below", -1, 0, 1, 0},
		{"Inside", 0.5, 0, 1, 0.5},
		{"Above", 2, 0, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampF(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("clampF(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}
