package table

import "errors"

var (
	// ErrInvalidMode indicates an interpolation mode the table type does not
	// recognize or support.
	ErrInvalidMode = errors.New("table: invalid interpolation mode")
	// ErrLengthMismatch indicates input slices of inconsistent length.
	ErrLengthMismatch = errors.New("table: slice lengths do not match")
	// ErrGridSizeMismatch indicates a value grid whose size is not Nx*Ny.
	ErrGridSizeMismatch = errors.New("table: grid size does not match axes")
	// ErrMissingDerivatives indicates ModeCubic without derivative grids.
	ErrMissingDerivatives = errors.New("table: cubic mode requires derivative grids")
	// ErrMissingKernel indicates ModeKernel without a kernel.
	ErrMissingKernel = errors.New("table: kernel mode requires a kernel")
	// ErrGradientUnsupported indicates a gradient request against a mode
	// with no defined derivative.
	ErrGradientUnsupported = errors.New("table: gradient not defined for this interpolation mode")
)

// Mode selects the interpolation formula, fixed at construction time.
type Mode int

const (
	// ModeFloor returns the value at the lower bracketing node.
	ModeFloor Mode = iota
	// ModeCeil returns the value at the upper bracketing node.
	ModeCeil
	// ModeNearest returns the value at the closer bracketing node.
	ModeNearest
	// ModeLinear interpolates linearly (bilinearly in 2D).
	ModeLinear
	// ModeSpline evaluates a natural cubic spline (1D only).
	ModeSpline
	// ModeCubic performs bicubic Hermite interpolation from supplied
	// derivative grids (2D only).
	ModeCubic
	// ModeCubicConvolve applies a separable 4x4 Catmull-Rom stencil
	// (2D only).
	ModeCubicConvolve
	// ModeKernel sums a caller-supplied separable kernel over the grid
	// (2D only).
	ModeKernel
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeFloor:
		return "floor"
	case ModeCeil:
		return "ceil"
	case ModeNearest:
		return "nearest"
	case ModeLinear:
		return "linear"
	case ModeSpline:
		return "spline"
	case ModeCubic:
		return "cubic"
	case ModeCubicConvolve:
		return "cubicConvolve"
	case ModeKernel:
		return "kernel"
	default:
		return "invalid"
	}
}
