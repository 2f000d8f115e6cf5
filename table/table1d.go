package table

import (
	"github.com/cwbudde/algo-table/table/grid"
	"github.com/cwbudde/algo-table/table/tridiag"
)

// Table1D interpolates a tabulated function of one variable.
//
// The argument and value slices are borrowed from the caller and must stay
// alive and unmodified for the table's lifetime. A Table1D is immutable
// after construction and safe for concurrent readers.
type Table1D struct {
	mode   Mode
	ax     *grid.Axis
	vals   []float64
	y2     []float64 // natural-spline second derivatives, ModeSpline only
	interp func(a float64, i int) float64
}

// New1D builds a table over strictly increasing args and matching vals.
// ModeSpline additionally requires at least 3 nodes and computes the
// natural-spline second-derivative table once here.
func New1D(args, vals []float64, mode Mode) (*Table1D, error) {
	if len(args) != len(vals) {
		return nil, ErrLengthMismatch
	}

	ax, err := grid.NewAxis(args)
	if err != nil {
		return nil, err
	}

	t := &Table1D{mode: mode, ax: ax, vals: vals}

	switch mode {
	case ModeFloor:
		t.interp = t.floorInterp
	case ModeCeil:
		t.interp = t.ceilInterp
	case ModeNearest:
		t.interp = t.nearestInterp
	case ModeLinear:
		t.interp = t.linearInterp
	case ModeSpline:
		y2, err := tridiag.SecondDerivs(args, vals)
		if err != nil {
			return nil, err
		}
		t.y2 = y2
		t.interp = t.splineInterp
	default:
		return nil, ErrInvalidMode
	}

	return t, nil
}

// Mode returns the interpolation mode fixed at construction.
func (t *Table1D) Mode() Mode {
	return t.mode
}

// Len returns the number of nodes.
func (t *Table1D) Len() int {
	return t.ax.Len()
}

// Min returns the smallest tabulated argument.
func (t *Table1D) Min() float64 {
	return t.ax.Min()
}

// Max returns the largest tabulated argument.
func (t *Table1D) Max() float64 {
	return t.ax.Max()
}

// Lookup interpolates the function value at a. Out-of-range arguments clamp
// to the boundary bracket and extrapolate; use Eval for the zero-outside
// convention.
func (t *Table1D) Lookup(a float64) float64 {
	return t.interp(a, t.ax.UpperIndex(a))
}

// Eval interpolates the function value at a, returning 0 outside the
// tabulated domain. Arguments within a tiny slop of an endpoint count as
// in-bounds.
func (t *Table1D) Eval(a float64) float64 {
	if !t.ax.InDomain(a) {
		return 0
	}

	return t.Lookup(a)
}

// InterpMany interpolates every argument in args into the caller-allocated
// out slice. A per-call cursor accelerates runs of nearby arguments on
// irregular grids, so concurrent InterpMany calls on one table are safe.
func (t *Table1D) InterpMany(args, out []float64) error {
	if len(out) != len(args) {
		return ErrLengthMismatch
	}

	var cur grid.Cursor
	for k, a := range args {
		out[k] = t.interp(a, t.ax.UpperIndexCursor(a, &cur))
	}

	return nil
}

func (t *Table1D) linearInterp(a float64, i int) float64 {
	ax := (t.ax.At(i) - a) / (t.ax.At(i) - t.ax.At(i-1))
	bx := 1 - ax

	return t.vals[i]*bx + t.vals[i-1]*ax
}

func (t *Table1D) floorInterp(a float64, i int) float64 {
	// The bracket only guarantees args[i-1] <= a <= args[i]. A query landing
	// exactly on the upper node belongs to that node, not the lower one.
	if a == t.ax.At(i) {
		i++
	}

	return t.vals[i-1]
}

func (t *Table1D) ceilInterp(a float64, i int) float64 {
	if a == t.ax.At(i-1) {
		i--
	}

	return t.vals[i]
}

func (t *Table1D) nearestInterp(a float64, i int) float64 {
	// Equidistant ties go to the lower node.
	if a-t.ax.At(i-1) <= t.ax.At(i)-a {
		i--
	}

	return t.vals[i]
}

func (t *Table1D) splineInterp(a float64, i int) float64 {
	// Factored so the interval length divides once; bb = h-aa avoids a
	// second subtraction against the grid.
	h := t.ax.At(i) - t.ax.At(i-1)
	aa := t.ax.At(i) - a
	bb := h - aa

	return (aa*t.vals[i-1] + bb*t.vals[i] -
		aa*bb*((aa+h)*t.y2[i-1]+(bb+h)*t.y2[i])/6) / h
}
