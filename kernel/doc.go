// Package kernel provides separable interpolation kernels for kernel-mode
// 2D table lookup.
//
// Available kernels, from cheapest to highest quality:
//
//   - [Nearest]:  1-point box kernel (support 0.5)
//   - [Linear]:   2-point triangle kernel (support 1)
//   - [Cubic]:    4-point Catmull-Rom cubic (support 2)
//   - [Lanczos]:  2n-point sinc-windowed sinc (support n)
//
// All kernels are exact at grid nodes. Each implements the Kernel interface
// consumed by the table package.
package kernel
