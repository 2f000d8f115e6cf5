package table

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-table/internal/numeric"
)

// Kernel describes a separable interpolation kernel with finite support,
// evaluated pointwise in grid units. The kernel subpackage provides standard
// implementations; any type with these methods works.
type Kernel interface {
	// Support returns the kernel support radius in grid units: Weight(u)
	// must be 0 for |u| >= Support().
	Support() float64
	// ExactAtNodes reports whether Weight is exactly 1 at offset 0 and
	// exactly 0 at every other integer offset.
	ExactAtNodes() bool
	// Weight evaluates the 1D kernel at offset u from a node.
	Weight(u float64) float64
}

// nodeTol is the fractional-offset tolerance below which a query counts as
// sitting on a grid node for exact-at-nodes kernels.
var nodeTol = 10 * (math.Nextafter(1, 2) - 1)

// kernel2d sums value(node) * Weight(dx) * Weight(dy) over every node whose
// offset from the query lies within the kernel support, clamped to the grid
// bounds. When the kernel is exact at nodes and the query coincides with a
// node along an axis, that axis collapses to the single node, skipping the
// summation and its numerical noise.
type kernel2d struct {
	grid2d
	k Kernel
}

func (s *kernel2d) interp(x, y float64, i, j int) float64 {
	dx := (x - s.xs.At(i-1)) / (s.xs.At(i) - s.xs.At(i-1))
	dy := (y - s.ys.At(j-1)) / (s.ys.At(j) - s.ys.At(j-1))

	ixMin, ixMax := s.window(i, dx, s.nx)
	if ixMin > ixMax {
		return 0
	}
	iyMin, iyMax := s.window(j, dy, s.ny)
	if iyMin > iyMax {
		return 0
	}

	wy := make([]float64, iyMax-iyMin+1)
	for n := range wy {
		wy[n] = s.k.Weight(float64(j-1) + dy - float64(iyMin+n))
	}

	row := make([]float64, len(wy))

	var sum float64
	for ix := ixMin; ix <= ixMax; ix++ {
		wx := s.k.Weight(float64(i-1) + dx - float64(ix))
		if wx == 0 {
			continue
		}

		// The y run of a row is contiguous in the row-major grid.
		vecmath.MulBlock(row, s.vals[ix*s.ny+iyMin:ix*s.ny+iyMax+1], wy)

		var rowSum float64
		for _, v := range row {
			rowSum += v
		}

		sum += wx * rowSum
	}

	return sum
}

func (s *kernel2d) grad(x, y float64, i, j int) (float64, float64, error) {
	return 0, 0, ErrGradientUnsupported
}

// window returns the inclusive node range along one axis covered by the
// kernel support around bracket index i with fractional offset frac. The
// range may come back empty (lo > hi) when the support lies entirely off
// the grid.
func (s *kernel2d) window(i int, frac float64, n int) (int, int) {
	if s.k.ExactAtNodes() && numeric.NearlyEqual(frac, 0, nodeTol) {
		return i - 1, i - 1
	}

	lo := i - 1 + int(math.Ceil(frac-s.k.Support()))
	hi := i - 1 + int(math.Floor(frac+s.k.Support()))

	if lo < 0 {
		lo = 0
	}
	if hi > n-1 {
		hi = n - 1
	}

	return lo, hi
}
