// Package grid resolves query values to bracket indices on monotonic axes.
//
// An Axis is an immutable view over a strictly increasing argument array.
// Uniformly spaced axes resolve brackets in O(1) by direct arithmetic;
// irregular axes use binary search, optionally accelerated by a per-caller
// Cursor that exploits temporal locality between consecutive queries.
package grid

import (
	"errors"
	"math"
)

var (
	// ErrTooFewNodes indicates an axis with fewer than two nodes.
	ErrTooFewNodes = errors.New("grid: axis needs at least 2 nodes")
	// ErrNotIncreasing indicates axis values that are not strictly increasing.
	ErrNotIncreasing = errors.New("grid: axis values must be strictly increasing")
)

// uniformTol is the relative tolerance used to classify an axis as
// uniformly spaced at construction time.
const uniformTol = 0.01

// Axis is an immutable view over a strictly increasing argument array.
//
// Axis borrows the backing slice for its entire lifetime and never copies
// or mutates it. All methods are safe for concurrent use; only Cursor
// objects carry mutable state.
type Axis struct {
	args    []float64
	da      float64
	uniform bool

	lowerSlop float64
	upperSlop float64
}

// NewAxis builds an Axis over args, which must hold at least two strictly
// increasing values. The slice is borrowed, not copied: it must stay alive
// and unmodified for as long as the Axis is in use.
func NewAxis(args []float64) (*Axis, error) {
	if len(args) < 2 {
		return nil, ErrTooFewNodes
	}

	for i := 1; i < len(args); i++ {
		if args[i] <= args[i-1] {
			return nil, ErrNotIncreasing
		}
	}

	n := len(args)
	ax := &Axis{args: args}
	ax.da = (args[n-1] - args[0]) / float64(n-1)

	ax.uniform = true
	for i := 1; i < n; i++ {
		if math.Abs((args[i]-args[0])/ax.da-float64(i)) > uniformTol {
			ax.uniform = false
			break
		}
	}

	ax.lowerSlop = (args[1] - args[0]) * 1e-6
	ax.upperSlop = (args[n-1] - args[n-2]) * 1e-6

	return ax, nil
}

// Len returns the number of nodes.
func (ax *Axis) Len() int {
	return len(ax.args)
}

// Min returns the first node value.
func (ax *Axis) Min() float64 {
	return ax.args[0]
}

// Max returns the last node value.
func (ax *Axis) Max() float64 {
	return ax.args[len(ax.args)-1]
}

// At returns the node value at index i.
func (ax *Axis) At(i int) float64 {
	return ax.args[i]
}

// Uniform reports whether the axis was classified as uniformly spaced
// at construction (within a 1% relative tolerance per node).
func (ax *Axis) Uniform() bool {
	return ax.uniform
}

// InDomain reports whether a lies within the axis range, extended at both
// ends by a slop of 1e-6 times the adjacent interval. The slop absorbs
// floating-point noise in queries that land essentially on an endpoint.
func (ax *Axis) InDomain(a float64) bool {
	return a >= ax.args[0]-ax.lowerSlop && a <= ax.args[len(ax.args)-1]+ax.upperSlop
}

// UpperIndex resolves a to the bracket index i in [1, Len()-1] such that
// At(i-1) <= a <= At(i). Out-of-range queries clamp to the nearest boundary
// bracket; no error is reported. UpperIndex never mutates the Axis and is
// safe for concurrent callers.
func (ax *Axis) UpperIndex(a float64) int {
	n := len(ax.args)
	if a < ax.args[0] {
		return 1
	}
	if a > ax.args[n-1] {
		return n - 1
	}

	if ax.uniform {
		return ax.uniformIndex(a)
	}

	return ax.bracket(0, n-1, a)
}

// UpperIndexCursor behaves like UpperIndex but uses c as a locality hint:
// queries adjacent to the previous bracket resolve in O(1), anything else
// falls back to a binary search on the appropriate side of the hint.
// A Cursor must not be shared across concurrent callers; use one Cursor per
// goroutine (or per batch) against the same Axis.
func (ax *Axis) UpperIndexCursor(a float64, c *Cursor) int {
	n := len(ax.args)
	if a < ax.args[0] {
		return 1
	}
	if a > ax.args[n-1] {
		return n - 1
	}

	if ax.uniform {
		return ax.uniformIndex(a)
	}

	if c.last < 1 || c.last >= n {
		c.last = 1
	}

	switch {
	case a < ax.args[c.last-1]:
		if c.last >= 2 && a >= ax.args[c.last-2] {
			c.last--
		} else {
			c.last = ax.bracket(0, c.last-1, a)
		}
	case a > ax.args[c.last]:
		if c.last+1 < n && a <= ax.args[c.last+1] {
			c.last++
		} else {
			c.last = ax.bracket(c.last, n-1, a)
		}
	}

	return c.last
}

// uniformIndex resolves the bracket by direct arithmetic, then nudges by at
// most one step in either direction to absorb rounding at bracket edges.
// Only called with a already clamped into the axis range.
func (ax *Axis) uniformIndex(a float64) int {
	n := len(ax.args)

	i := int(math.Ceil((a - ax.args[0]) / ax.da))
	if i >= n {
		i--
	}
	if i == 0 {
		i++
	}

	for a > ax.args[i] {
		i++
	}
	for a < ax.args[i-1] {
		i--
	}

	return i
}

// bracket binary-searches for the bracket index within (lo, hi], assuming
// args[lo] <= a <= args[hi].
func (ax *Axis) bracket(lo, hi int, a float64) int {
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if a < ax.args[mid] {
			hi = mid
		} else {
			lo = mid
		}
	}

	return hi
}

// Cursor caches the most recent bracket index resolved through it.
//
// The zero value is ready to use. Cursors make the locality optimization
// explicit: an Axis shared between goroutines stays safe as long as each
// goroutine brings its own Cursor (or uses the pure UpperIndex).
type Cursor struct {
	last int
}

// Reset discards the cached bracket index.
func (c *Cursor) Reset() {
	c.last = 0
}
