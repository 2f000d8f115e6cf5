package kernel

import (
	"errors"
	"math"
)

// ErrInvalidOrder indicates a Lanczos order below 1.
var ErrInvalidOrder = errors.New("kernel: lanczos order must be at least 1")

// Nearest selects the closest node (support 0.5).
type Nearest struct{}

// Support returns the kernel support radius in grid units.
func (Nearest) Support() float64 { return 0.5 }

// ExactAtNodes reports that the kernel reproduces node values exactly.
func (Nearest) ExactAtNodes() bool { return true }

// Weight evaluates the kernel at offset u from a node.
func (Nearest) Weight(u float64) float64 {
	switch au := math.Abs(u); {
	case au > 0.5:
		return 0
	case au == 0.5:
		return 0.5
	default:
		return 1
	}
}

// Linear is the triangle (tent) kernel with support 1.
type Linear struct{}

func (Linear) Support() float64 { return 1 }

func (Linear) ExactAtNodes() bool { return true }

func (Linear) Weight(u float64) float64 {
	au := math.Abs(u)
	if au >= 1 {
		return 0
	}

	return 1 - au
}

// Cubic is the 4-point Catmull-Rom cubic kernel with support 2.
type Cubic struct{}

func (Cubic) Support() float64 { return 2 }

func (Cubic) ExactAtNodes() bool { return true }

func (Cubic) Weight(u float64) float64 {
	au := math.Abs(u)
	switch {
	case au < 1:
		return 1 + au*au*(1.5*au-2.5)
	case au < 2:
		return -0.5 * (au - 1) * (au - 2) * (au - 2)
	default:
		return 0
	}
}

// Lanczos is the sinc-windowed sinc kernel of order N (support N).
type Lanczos struct {
	n float64
}

// NewLanczos creates a Lanczos kernel of order n (commonly 3 to 7).
func NewLanczos(n int) (*Lanczos, error) {
	if n < 1 {
		return nil, ErrInvalidOrder
	}

	return &Lanczos{n: float64(n)}, nil
}

func (l *Lanczos) Support() float64 { return l.n }

func (l *Lanczos) ExactAtNodes() bool { return true }

func (l *Lanczos) Weight(u float64) float64 {
	if math.Abs(u) >= l.n {
		return 0
	}

	return sinc(u) * sinc(u/l.n)
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}

	px := math.Pi * x

	return math.Sin(px) / px
}
