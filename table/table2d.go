package table

import (
	"github.com/cwbudde/algo-table/table/grid"
)

// Table2D interpolates a tabulated function of two variables sampled on a
// rectilinear grid. Values are row-major over x: vals[ix*Ny+iy].
//
// All backing slices are borrowed from the caller and must stay alive and
// unmodified for the table's lifetime. A Table2D is immutable after
// construction and safe for concurrent readers.
type Table2D struct {
	mode  Mode
	xs    *grid.Axis
	ys    *grid.Axis
	strat strategy2d
}

// Option2D configures optional Table2D inputs.
type Option2D func(*config2d)

type config2d struct {
	dfdx    []float64
	dfdy    []float64
	d2fdxdy []float64
	kernel  Kernel
}

// WithDerivatives supplies the df/dx, df/dy and d2f/dxdy node grids required
// by ModeCubic. Each grid shares the Nx*Ny row-major shape of the value grid
// and is borrowed, not copied.
func WithDerivatives(dfdx, dfdy, d2fdxdy []float64) Option2D {
	return func(cfg *config2d) {
		cfg.dfdx = dfdx
		cfg.dfdy = dfdy
		cfg.d2fdxdy = d2fdxdy
	}
}

// WithKernel supplies the separable kernel required by ModeKernel.
func WithKernel(k Kernel) Option2D {
	return func(cfg *config2d) {
		cfg.kernel = k
	}
}

// strategy2d is the closed set of per-mode interpolation variants. The
// bracket indices i, j are resolved by the caller so batch operations can
// thread cursors through the axis lookups.
type strategy2d interface {
	interp(x, y float64, i, j int) float64
	grad(x, y float64, i, j int) (dfdx, dfdy float64, err error)
}

// New2D builds a table over strictly increasing xargs (length Nx) and yargs
// (length Ny) with a row-major value grid of length Nx*Ny. ModeCubic
// requires WithDerivatives; ModeKernel requires WithKernel.
func New2D(xargs, yargs, vals []float64, mode Mode, opts ...Option2D) (*Table2D, error) {
	xs, err := grid.NewAxis(xargs)
	if err != nil {
		return nil, err
	}

	ys, err := grid.NewAxis(yargs)
	if err != nil {
		return nil, err
	}

	if len(vals) != len(xargs)*len(yargs) {
		return nil, ErrGridSizeMismatch
	}

	var cfg config2d
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	g := grid2d{xs: xs, ys: ys, vals: vals, nx: len(xargs), ny: len(yargs)}
	t := &Table2D{mode: mode, xs: xs, ys: ys}

	switch mode {
	case ModeFloor:
		t.strat = &floor2d{g}
	case ModeCeil:
		t.strat = &ceil2d{g}
	case ModeNearest:
		t.strat = &nearest2d{g}
	case ModeLinear:
		t.strat = &linear2d{g}
	case ModeCubic:
		if cfg.dfdx == nil || cfg.dfdy == nil || cfg.d2fdxdy == nil {
			return nil, ErrMissingDerivatives
		}
		if len(cfg.dfdx) != len(vals) || len(cfg.dfdy) != len(vals) || len(cfg.d2fdxdy) != len(vals) {
			return nil, ErrGridSizeMismatch
		}
		t.strat = &cubic2d{grid2d: g, dfdx: cfg.dfdx, dfdy: cfg.dfdy, d2fdxdy: cfg.d2fdxdy}
	case ModeCubicConvolve:
		t.strat = &cubicConvolve2d{g}
	case ModeKernel:
		if cfg.kernel == nil {
			return nil, ErrMissingKernel
		}
		t.strat = &kernel2d{grid2d: g, k: cfg.kernel}
	default:
		return nil, ErrInvalidMode
	}

	return t, nil
}

// Mode returns the interpolation mode fixed at construction.
func (t *Table2D) Mode() Mode {
	return t.mode
}

// XMin returns the smallest tabulated x argument.
func (t *Table2D) XMin() float64 { return t.xs.Min() }

// XMax returns the largest tabulated x argument.
func (t *Table2D) XMax() float64 { return t.xs.Max() }

// YMin returns the smallest tabulated y argument.
func (t *Table2D) YMin() float64 { return t.ys.Min() }

// YMax returns the largest tabulated y argument.
func (t *Table2D) YMax() float64 { return t.ys.Max() }

// Lookup interpolates the function value at (x, y). Out-of-range arguments
// clamp to the boundary bracket; use Eval for the zero-outside convention.
func (t *Table2D) Lookup(x, y float64) float64 {
	return t.strat.interp(x, y, t.xs.UpperIndex(x), t.ys.UpperIndex(y))
}

// Eval interpolates the function value at (x, y), returning 0 when either
// coordinate falls outside its tabulated domain.
func (t *Table2D) Eval(x, y float64) float64 {
	if !t.xs.InDomain(x) || !t.ys.InDomain(y) {
		return 0
	}

	return t.Lookup(x, y)
}

// InterpMany interpolates every (xs[k], ys[k]) pair into the
// caller-allocated out slice, threading one cursor per axis through the
// batch for locality on irregular grids.
func (t *Table2D) InterpMany(xs, ys, out []float64) error {
	if len(ys) != len(xs) || len(out) != len(xs) {
		return ErrLengthMismatch
	}

	var cx, cy grid.Cursor
	for k := range xs {
		i := t.xs.UpperIndexCursor(xs[k], &cx)
		j := t.ys.UpperIndexCursor(ys[k], &cy)
		out[k] = t.strat.interp(xs[k], ys[k], i, j)
	}

	return nil
}

// Gradient returns the partial derivatives (df/dx, df/dy) at (x, y).
// Modes without a defined derivative return ErrGradientUnsupported.
func (t *Table2D) Gradient(x, y float64) (dfdx, dfdy float64, err error) {
	return t.strat.grad(x, y, t.xs.UpperIndex(x), t.ys.UpperIndex(y))
}

// GradientMany evaluates the gradient at every (xs[k], ys[k]) pair into the
// caller-allocated dfdx and dfdy slices.
func (t *Table2D) GradientMany(xs, ys, dfdx, dfdy []float64) error {
	if len(ys) != len(xs) || len(dfdx) != len(xs) || len(dfdy) != len(xs) {
		return ErrLengthMismatch
	}

	var cx, cy grid.Cursor
	for k := range xs {
		i := t.xs.UpperIndexCursor(xs[k], &cx)
		j := t.ys.UpperIndexCursor(ys[k], &cy)

		gx, gy, err := t.strat.grad(xs[k], ys[k], i, j)
		if err != nil {
			return err
		}

		dfdx[k], dfdy[k] = gx, gy
	}

	return nil
}

// grid2d bundles the axes and the row-major value grid shared by every
// strategy.
type grid2d struct {
	xs   *grid.Axis
	ys   *grid.Axis
	vals []float64
	nx   int
	ny   int
}

func (g *grid2d) at(ix, iy int) float64 {
	return g.vals[ix*g.ny+iy]
}

type floor2d struct{ grid2d }

func (s *floor2d) interp(x, y float64, i, j int) float64 {
	// The bracket only guarantees args[i-1] <= x <= args[i] (and likewise
	// for y). A query landing exactly on the upper node belongs to it.
	if x == s.xs.At(i) {
		i++
	}
	if y == s.ys.At(j) {
		j++
	}

	return s.at(i-1, j-1)
}

func (s *floor2d) grad(x, y float64, i, j int) (float64, float64, error) {
	return 0, 0, ErrGradientUnsupported
}

type ceil2d struct{ grid2d }

func (s *ceil2d) interp(x, y float64, i, j int) float64 {
	if x == s.xs.At(i-1) {
		i--
	}
	if y == s.ys.At(j-1) {
		j--
	}

	return s.at(i, j)
}

func (s *ceil2d) grad(x, y float64, i, j int) (float64, float64, error) {
	return 0, 0, ErrGradientUnsupported
}

type nearest2d struct{ grid2d }

func (s *nearest2d) interp(x, y float64, i, j int) float64 {
	// Equidistant ties go to the lower node on each axis.
	if x-s.xs.At(i-1) <= s.xs.At(i)-x {
		i--
	}
	if y-s.ys.At(j-1) <= s.ys.At(j)-y {
		j--
	}

	return s.at(i, j)
}

func (s *nearest2d) grad(x, y float64, i, j int) (float64, float64, error) {
	return 0, 0, ErrGradientUnsupported
}

type linear2d struct{ grid2d }

func (s *linear2d) interp(x, y float64, i, j int) float64 {
	ax := (s.xs.At(i) - x) / (s.xs.At(i) - s.xs.At(i-1))
	ay := (s.ys.At(j) - y) / (s.ys.At(j) - s.ys.At(j-1))
	bx := 1 - ax
	by := 1 - ay

	return s.at(i-1, j-1)*ax*ay +
		s.at(i, j-1)*bx*ay +
		s.at(i-1, j)*ax*by +
		s.at(i, j)*bx*by
}

func (s *linear2d) grad(x, y float64, i, j int) (float64, float64, error) {
	dx := s.xs.At(i) - s.xs.At(i-1)
	dy := s.ys.At(j) - s.ys.At(j-1)

	f00 := s.at(i-1, j-1)
	f01 := s.at(i-1, j)
	f10 := s.at(i, j-1)
	f11 := s.at(i, j)

	ax := (s.xs.At(i) - x) / dx
	bx := 1 - ax
	ay := (s.ys.At(j) - y) / dy
	by := 1 - ay

	dfdx := ((f10-f00)*ay + (f11-f01)*by) / dx
	dfdy := ((f01-f00)*ax + (f11-f10)*bx) / dy

	return dfdx, dfdy, nil
}

// hermite evaluates the cubic with value v0, v1 and derivative d0, d1 at the
// ends of the unit interval, at fraction u.
func hermite(u, v0, v1, d0, d1 float64) float64 {
	a := 2*(v0-v1) + d0 + d1
	b := 3*(v1-v0) - 2*d0 - d1

	return v0 + u*(d0+u*(b+u*a))
}

// hermiteGrad is the derivative of hermite with respect to u.
func hermiteGrad(u, v0, v1, d0, d1 float64) float64 {
	a := 2*(v0-v1) + d0 + d1
	b := 3*(v1-v0) - 2*d0 - d1

	return d0 + u*(2*b+u*3*a)
}

// cubic2d performs two-stage bicubic Hermite interpolation from supplied
// per-node derivative grids: first along x at both bracketing y nodes, then
// along y. Node derivatives scale by the local interval to map onto the
// unit-interval Hermite form.
type cubic2d struct {
	grid2d
	dfdx    []float64
	dfdy    []float64
	d2fdxdy []float64
}

func (s *cubic2d) interp(x, y float64, i, j int) float64 {
	dxg := s.xs.At(i) - s.xs.At(i-1)
	dyg := s.ys.At(j) - s.ys.At(j-1)
	dx := (x - s.xs.At(i-1)) / dxg
	dy := (y - s.ys.At(j-1)) / dyg

	lo := (i-1)*s.ny + j - 1
	hi := i*s.ny + j - 1

	val0 := hermite(dx, s.vals[lo], s.vals[hi], s.dfdx[lo]*dxg, s.dfdx[hi]*dxg)
	val1 := hermite(dx, s.vals[lo+1], s.vals[hi+1], s.dfdx[lo+1]*dxg, s.dfdx[hi+1]*dxg)
	der0 := hermite(dx, s.dfdy[lo], s.dfdy[hi], s.d2fdxdy[lo]*dxg, s.d2fdxdy[hi]*dxg)
	der1 := hermite(dx, s.dfdy[lo+1], s.dfdy[hi+1], s.d2fdxdy[lo+1]*dxg, s.d2fdxdy[hi+1]*dxg)

	return hermite(dy, val0, val1, der0*dyg, der1*dyg)
}

func (s *cubic2d) grad(x, y float64, i, j int) (float64, float64, error) {
	dxg := s.xs.At(i) - s.xs.At(i-1)
	dyg := s.ys.At(j) - s.ys.At(j-1)
	dx := (x - s.xs.At(i-1)) / dxg
	dy := (y - s.ys.At(j-1)) / dyg

	lo := (i-1)*s.ny + j - 1
	hi := i*s.ny + j - 1

	// d/dx along x at both y nodes, then interpolate along y.
	val0 := hermiteGrad(dx, s.vals[lo], s.vals[hi], s.dfdx[lo]*dxg, s.dfdx[hi]*dxg)
	val1 := hermiteGrad(dx, s.vals[lo+1], s.vals[hi+1], s.dfdx[lo+1]*dxg, s.dfdx[hi+1]*dxg)
	der0 := hermiteGrad(dx, s.dfdy[lo], s.dfdy[hi], s.d2fdxdy[lo]*dxg, s.d2fdxdy[hi]*dxg)
	der1 := hermiteGrad(dx, s.dfdy[lo+1], s.dfdy[hi+1], s.d2fdxdy[lo+1]*dxg, s.d2fdxdy[hi+1]*dxg)
	dfdx := hermite(dy, val0, val1, der0*dyg, der1*dyg) / dxg

	// d/dy along y at both x nodes, then interpolate along x.
	val0 = hermiteGrad(dy, s.vals[lo], s.vals[lo+1], s.dfdy[lo]*dyg, s.dfdy[lo+1]*dyg)
	val1 = hermiteGrad(dy, s.vals[hi], s.vals[hi+1], s.dfdy[hi]*dyg, s.dfdy[hi+1]*dyg)
	der0 = hermiteGrad(dy, s.dfdx[lo], s.dfdx[lo+1], s.d2fdxdy[lo]*dyg, s.d2fdxdy[lo+1]*dyg)
	der1 = hermiteGrad(dy, s.dfdx[hi], s.dfdx[hi+1], s.d2fdxdy[hi]*dyg, s.d2fdxdy[hi+1]*dyg)
	dfdy := hermite(dx, val0, val1, der0*dxg, der1*dxg) / dyg

	return dfdx, dfdy, nil
}

// catmullRom evaluates the 4-point cubic convolution kernel at fraction u
// between f0 and f1.
func catmullRom(u, fm1, f0, f1, f2 float64) float64 {
	a := -fm1 + 3*(f0-f1) + f2
	b := 2*fm1 - 5*f0 + 4*f1 - f2
	c := f1 - fm1

	return 0.5 * (2*f0 + u*(c+u*(b+u*a)))
}

// catmullRomGrad is the derivative of catmullRom with respect to u.
func catmullRomGrad(u, fm1, f0, f1, f2 float64) float64 {
	a := -fm1 + 3*(f0-f1) + f2
	b := 2*fm1 - 5*f0 + 4*f1 - f2
	c := f1 - fm1

	return 0.5 * (c + u*(2*b+u*3*a))
}

// cubicConvolve2d applies the separable 4x4 Catmull-Rom stencil over nodes
// i-2..i+1 and j-2..j+1. Queries need two nodes of margin on every side;
// the margin is not guarded and is the caller's responsibility.
type cubicConvolve2d struct{ grid2d }

func (s *cubicConvolve2d) interp(x, y float64, i, j int) float64 {
	dx := (x - s.xs.At(i-1)) / (s.xs.At(i) - s.xs.At(i-1))
	dy := (y - s.ys.At(j-1)) / (s.ys.At(j) - s.ys.At(j-1))

	valm1 := catmullRom(dx, s.at(i-2, j-2), s.at(i-1, j-2), s.at(i, j-2), s.at(i+1, j-2))
	val0 := catmullRom(dx, s.at(i-2, j-1), s.at(i-1, j-1), s.at(i, j-1), s.at(i+1, j-1))
	val1 := catmullRom(dx, s.at(i-2, j), s.at(i-1, j), s.at(i, j), s.at(i+1, j))
	val2 := catmullRom(dx, s.at(i-2, j+1), s.at(i-1, j+1), s.at(i, j+1), s.at(i+1, j+1))

	return catmullRom(dy, valm1, val0, val1, val2)
}

func (s *cubicConvolve2d) grad(x, y float64, i, j int) (float64, float64, error) {
	dxg := s.xs.At(i) - s.xs.At(i-1)
	dyg := s.ys.At(j) - s.ys.At(j-1)
	dx := (x - s.xs.At(i-1)) / dxg
	dy := (y - s.ys.At(j-1)) / dyg

	valm1 := catmullRomGrad(dx, s.at(i-2, j-2), s.at(i-1, j-2), s.at(i, j-2), s.at(i+1, j-2))
	val0 := catmullRomGrad(dx, s.at(i-2, j-1), s.at(i-1, j-1), s.at(i, j-1), s.at(i+1, j-1))
	val1 := catmullRomGrad(dx, s.at(i-2, j), s.at(i-1, j), s.at(i, j), s.at(i+1, j))
	val2 := catmullRomGrad(dx, s.at(i-2, j+1), s.at(i-1, j+1), s.at(i, j+1), s.at(i+1, j+1))
	dfdx := catmullRom(dy, valm1, val0, val1, val2) / dxg

	valm1 = catmullRomGrad(dy, s.at(i-2, j-2), s.at(i-2, j-1), s.at(i-2, j), s.at(i-2, j+1))
	val0 = catmullRomGrad(dy, s.at(i-1, j-2), s.at(i-1, j-1), s.at(i-1, j), s.at(i-1, j+1))
	val1 = catmullRomGrad(dy, s.at(i, j-2), s.at(i, j-1), s.at(i, j), s.at(i, j+1))
	val2 = catmullRomGrad(dy, s.at(i+1, j-2), s.at(i+1, j-1), s.at(i+1, j), s.at(i+1, j+1))
	dfdy := catmullRom(dx, valm1, val0, val1, val2) / dyg

	return dfdx, dfdy, nil
}
