package tridiag

import (
	"math"
	"testing"
)

func TestSolveValidation(t *testing.T) {
	if err := Solve(nil, []float64{1}, []float64{0}, []float64{1}, []float64{0}); err != ErrSizeMismatch {
		t.Fatalf("Solve(mismatched) error = %v, want ErrSizeMismatch", err)
	}
	if err := Solve([]float64{0}, []float64{0}, []float64{0}, []float64{1}, []float64{0}); err != ErrZeroPivot {
		t.Fatalf("Solve(singular) error = %v, want ErrZeroPivot", err)
	}
}

func TestSolveKnownSystem(t *testing.T) {
	// | 2 1 0 |       | 1 |
	// | 1 2 1 | * u = | 2 |
	// | 0 1 2 |       | 3 |
	sub := []float64{0, 1, 1}
	diag := []float64{2, 2, 2}
	sup := []float64{1, 1, 0}
	rhs := []float64{1, 2, 3}
	out := make([]float64, 3)

	if err := Solve(sub, diag, sup, rhs, out); err != nil {
		t.Fatalf("Solve() error = %v", err)
	}

	// Verify by multiplying back.
	check := []float64{
		2*out[0] + out[1],
		out[0] + 2*out[1] + out[2],
		out[1] + 2*out[2],
	}
	for i := range check {
		if math.Abs(check[i]-rhs[i]) > 1e-12 {
			t.Fatalf("row %d: M*u = %v, want %v", i, check[i], rhs[i])
		}
	}
}

func TestSecondDerivsValidation(t *testing.T) {
	if _, err := SecondDerivs([]float64{0, 1}, []float64{0, 1}); err != ErrTooFewNodes {
		t.Fatalf("SecondDerivs(2 nodes) error = %v, want ErrTooFewNodes", err)
	}
	if _, err := SecondDerivs([]float64{0, 1, 2}, []float64{0, 1}); err != ErrSizeMismatch {
		t.Fatalf("SecondDerivs(mismatch) error = %v, want ErrSizeMismatch", err)
	}
}

func TestSecondDerivsNaturalBoundary(t *testing.T) {
	args := []float64{0, 1, 2, 3, 4, 5}
	vals := make([]float64, len(args))
	for i, x := range args {
		vals[i] = math.Sin(x)
	}

	y2, err := SecondDerivs(args, vals)
	if err != nil {
		t.Fatalf("SecondDerivs() error = %v", err)
	}
	if len(y2) != len(args) {
		t.Fatalf("len(y2) = %d, want %d", len(y2), len(args))
	}
	if y2[0] != 0 || y2[len(y2)-1] != 0 {
		t.Fatalf("boundary second derivatives = %v, %v, want exactly 0", y2[0], y2[len(y2)-1])
	}
}

func TestSecondDerivsThreeNodeClosedForm(t *testing.T) {
	args := []float64{0, 1, 3}
	vals := []float64{0, 2, 1}

	y2, err := SecondDerivs(args, vals)
	if err != nil {
		t.Fatalf("SecondDerivs() error = %v", err)
	}

	want := 3 * ((vals[2]-vals[1])/(args[2]-args[1]) - (vals[1]-vals[0])/(args[1]-args[0])) / (args[2] - args[0])
	if math.Abs(y2[1]-want) > 1e-15 {
		t.Fatalf("y2[1] = %v, want %v", y2[1], want)
	}
}

func TestSecondDerivsZeroForLinearData(t *testing.T) {
	args := []float64{0, 0.5, 1.7, 2, 4, 8}
	vals := make([]float64, len(args))
	for i, x := range args {
		vals[i] = 3*x - 1
	}

	y2, err := SecondDerivs(args, vals)
	if err != nil {
		t.Fatalf("SecondDerivs() error = %v", err)
	}
	for i, v := range y2 {
		if math.Abs(v) > 1e-12 {
			t.Fatalf("y2[%d] = %v, want 0 for linear data", i, v)
		}
	}
}

func TestSecondDerivsSatisfySplineSystem(t *testing.T) {
	args := []float64{0, 1, 2.5, 3, 4.5, 6, 7}
	vals := []float64{1, -1, 2, 0, 3, 3, -2}

	y2, err := SecondDerivs(args, vals)
	if err != nil {
		t.Fatalf("SecondDerivs() error = %v", err)
	}

	// Each interior node must satisfy the defining tridiagonal row.
	for j := 1; j < len(args)-1; j++ {
		lhs := (args[j]-args[j-1])*y2[j-1] +
			2*(args[j+1]-args[j-1])*y2[j] +
			(args[j+1]-args[j])*y2[j+1]
		rhs := 6 * ((vals[j+1]-vals[j])/(args[j+1]-args[j]) -
			(vals[j]-vals[j-1])/(args[j]-args[j-1]))
		if math.Abs(lhs-rhs) > 1e-9 {
			t.Fatalf("node %d: system residual %v", j, lhs-rhs)
		}
	}
}
