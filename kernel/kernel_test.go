package kernel

import (
	"math"
	"testing"
)

type weighter interface {
	Support() float64
	ExactAtNodes() bool
	Weight(u float64) float64
}

func TestKernelsExactAtIntegerOffsets(t *testing.T) {
	lanczos3, err := NewLanczos(3)
	if err != nil {
		t.Fatalf("NewLanczos(3) error = %v", err)
	}

	for name, k := range map[string]weighter{
		"nearest": Nearest{},
		"linear":  Linear{},
		"cubic":   Cubic{},
		"lanczos": lanczos3,
	} {
		t.Run(name, func(t *testing.T) {
			if !k.ExactAtNodes() {
				t.Fatal("kernel must report exactness at nodes")
			}
			if got := k.Weight(0); math.Abs(got-1) > 1e-14 {
				t.Fatalf("Weight(0) = %v, want 1", got)
			}
			for u := 1.0; u <= k.Support()+1; u++ {
				if got := k.Weight(u); math.Abs(got) > 1e-14 {
					t.Fatalf("Weight(%v) = %v, want 0", u, got)
				}
				if got := k.Weight(-u); math.Abs(got) > 1e-14 {
					t.Fatalf("Weight(%v) = %v, want 0", -u, got)
				}
			}
		})
	}
}

func TestKernelsVanishOutsideSupport(t *testing.T) {
	lanczos2, err := NewLanczos(2)
	if err != nil {
		t.Fatalf("NewLanczos(2) error = %v", err)
	}

	for name, k := range map[string]weighter{
		"nearest": Nearest{},
		"linear":  Linear{},
		"cubic":   Cubic{},
		"lanczos": lanczos2,
	} {
		t.Run(name, func(t *testing.T) {
			for _, u := range []float64{k.Support() + 0.01, k.Support() + 3.7, -(k.Support() + 0.5)} {
				if got := k.Weight(u); got != 0 {
					t.Fatalf("Weight(%v) = %v, want 0 outside support %v", u, got, k.Support())
				}
			}
		})
	}
}

func TestCubicMatchesCatmullRomForm(t *testing.T) {
	// For samples f(-1), f(0), f(1), f(2) the Catmull-Rom convolution at
	// offset t from node 0 weights them by Cubic.Weight(t+1), Weight(t),
	// Weight(t-1), Weight(t-2). A quadratic is reproduced exactly.
	k := Cubic{}
	f := func(x float64) float64 { return 2 + 3*x + 0.5*x*x }

	for _, frac := range []float64{0.1, 0.25, 0.5, 0.9} {
		got := f(-1)*k.Weight(frac+1) + f(0)*k.Weight(frac) +
			f(1)*k.Weight(frac-1) + f(2)*k.Weight(frac-2)
		if want := f(frac); math.Abs(got-want) > 1e-12 {
			t.Fatalf("frac=%v: got %v, want %v", frac, got, want)
		}
	}
}

func TestLanczosOrder(t *testing.T) {
	if _, err := NewLanczos(0); err != ErrInvalidOrder {
		t.Fatalf("NewLanczos(0) error = %v, want ErrInvalidOrder", err)
	}

	l5, err := NewLanczos(5)
	if err != nil {
		t.Fatalf("NewLanczos(5) error = %v", err)
	}
	if l5.Support() != 5 {
		t.Fatalf("Support() = %v, want 5", l5.Support())
	}
}

func TestNearestTieAtHalf(t *testing.T) {
	k := Nearest{}
	if got := k.Weight(0.5); got != 0.5 {
		t.Fatalf("Weight(0.5) = %v, want 0.5", got)
	}
	if got := k.Weight(-0.5); got != 0.5 {
		t.Fatalf("Weight(-0.5) = %v, want 0.5", got)
	}
}
