// Package tridiag solves tridiagonal linear systems with the Thomas
// algorithm and derives the second-derivative table used by natural
// cubic spline interpolation.
package tridiag

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"
)

var (
	// ErrSizeMismatch indicates input slices of unequal length.
	ErrSizeMismatch = errors.New("tridiag: input slices have unequal lengths")
	// ErrZeroPivot indicates a system the pivot-free elimination cannot solve.
	ErrZeroPivot = errors.New("tridiag: zero pivot encountered")
	// ErrTooFewNodes indicates a spline setup with fewer than 3 nodes.
	ErrTooFewNodes = errors.New("tridiag: spline needs at least 3 nodes")
)

// Solve solves the tridiagonal system
//
//	| diag0 sup0  ..         |   | out0 |   | rhs0 |
//	| sub1  diag1 sup1 ..    |   | out1 |   | rhs1 |
//	| ..                     | * | ..   | = | ..   |
//	| ..        subN  diagN  |   | outN |   | rhsN |
//
// into out using forward elimination and back substitution (the Thomas
// algorithm). sub[0] and sup[len-1] are ignored. No pivoting is performed,
// so the system should be diagonally dominant; a zero pivot aborts with
// ErrZeroPivot. rhs and out may alias.
func Solve(sub, diag, sup, rhs, out []float64) error {
	n := len(diag)
	if len(sub) != n || len(sup) != n || len(rhs) != n || len(out) != n {
		return ErrSizeMismatch
	}
	if n == 0 {
		return nil
	}

	tmp := make([]float64, n)

	beta := diag[0]
	if beta == 0 {
		return ErrZeroPivot
	}
	out[0] = rhs[0] / beta

	for i := 1; i < n; i++ {
		tmp[i] = sup[i-1] / beta
		beta = diag[i] - sub[i]*tmp[i]
		if beta == 0 {
			return ErrZeroPivot
		}
		out[i] = (rhs[i] - sub[i]*out[i-1]) / beta
	}

	for i := n - 2; i >= 0; i-- {
		out[i] -= tmp[i+1] * out[i+1]
	}

	return nil
}

// SecondDerivs computes the per-node second derivatives of the natural
// cubic spline through (args[i], vals[i]). The boundary derivatives are
// fixed at zero. args must be strictly increasing (validated by the caller)
// and hold at least 3 nodes.
//
// For 3 nodes the single interior derivative has a closed form. For 4 or
// more nodes the interior derivatives solve a symmetric tridiagonal system
// with diagonal 2*(x[i+1]-x[i-1]), off-diagonals x[i+1]-x[i], and right-hand
// side 6 times the difference of adjacent divided differences. The matrix is
// diagonally dominant by construction, so the pivot-free solve is stable.
func SecondDerivs(args, vals []float64) ([]float64, error) {
	if len(args) != len(vals) {
		return nil, ErrSizeMismatch
	}
	n := len(args)
	if n < 3 {
		return nil, ErrTooFewNodes
	}

	y2 := make([]float64, n)

	if n == 3 {
		y2[1] = 3 * ((vals[2]-vals[1])/(args[2]-args[1]) -
			(vals[1]-vals[0])/(args[1]-args[0])) / (args[2] - args[0])
		return y2, nil
	}

	m := n - 2
	sub := make([]float64, m)
	diag := make([]float64, m)
	sup := make([]float64, m)
	rhs := make([]float64, m)

	for i := 0; i < m; i++ {
		j := i + 1
		diag[i] = 2 * (args[j+1] - args[j-1])
		rhs[i] = (vals[j+1]-vals[j])/(args[j+1]-args[j]) -
			(vals[j]-vals[j-1])/(args[j]-args[j-1])
		if i > 0 {
			sub[i] = args[j] - args[j-1]
		}
		if i < m-1 {
			sup[i] = args[j+1] - args[j]
		}
	}

	vecmath.ScaleBlock(rhs, rhs, 6)

	if err := Solve(sub, diag, sup, rhs, y2[1:n-1]); err != nil {
		return nil, err
	}

	return y2, nil
}
