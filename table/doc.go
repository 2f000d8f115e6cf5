// Package table interpolates tabulated one- and two-dimensional functions.
//
// A Table1D or Table2D is built once from caller-owned argument and value
// arrays plus an interpolation [Mode], then answers scalar or batched
// lookups. Backing slices are borrowed, never copied: they must stay alive
// and unmodified for the table's lifetime.
//
// 1D modes: ModeFloor, ModeCeil, ModeNearest, ModeLinear, ModeSpline.
// 2D modes: ModeFloor, ModeCeil, ModeNearest, ModeLinear (bilinear),
// ModeCubic (bicubic Hermite, needs derivative grids), ModeCubicConvolve
// (4x4 Catmull-Rom stencil), ModeKernel (caller-supplied separable kernel).
//
// Raw Lookup clamps out-of-range queries to the boundary bracket; Eval
// instead returns 0 outside the tabulated domain. Gradient is defined for
// ModeLinear, ModeCubic and ModeCubicConvolve only; other modes return
// ErrGradientUnsupported.
//
// Tables are immutable after construction and safe for concurrent readers.
// Batched calls exploit query locality through per-call cursors, so no
// state is shared between goroutines.
package table
