package table_test

import (
	"fmt"

	"github.com/cwbudde/algo-table/kernel"
	"github.com/cwbudde/algo-table/table"
)

func ExampleNew1D() {
	tab, _ := table.New1D(
		[]float64{0, 1, 2, 3},
		[]float64{0, 1, 4, 9},
		table.ModeLinear,
	)
	fmt.Printf("f(1.5)=%.2f f(-1)=%.2f\n", tab.Lookup(1.5), tab.Eval(-1))
	// Output:
	// f(1.5)=2.50 f(-1)=0.00
}

func ExampleNew2D() {
	tab, _ := table.New2D(
		[]float64{0, 1},
		[]float64{0, 1},
		[]float64{0, 1, 1, 2},
		table.ModeLinear,
	)
	v := tab.Lookup(0.5, 0.5)
	dfdx, dfdy, _ := tab.Gradient(0.5, 0.5)
	fmt.Printf("f=%.2f df/dx=%.2f df/dy=%.2f\n", v, dfdx, dfdy)
	// Output:
	// f=1.00 df/dx=1.00 df/dy=1.00
}

func ExampleWithKernel() {
	xargs := []float64{0, 1, 2, 3, 4, 5}
	vals := make([]float64, 36)
	for ix := 0; ix < 6; ix++ {
		for iy := 0; iy < 6; iy++ {
			vals[ix*6+iy] = float64(ix + iy)
		}
	}

	lanczos3, _ := kernel.NewLanczos(3)
	tab, _ := table.New2D(xargs, xargs, vals, table.ModeKernel, table.WithKernel(lanczos3))
	fmt.Printf("f(2,3)=%.2f\n", tab.Lookup(2, 3))
	// Output:
	// f(2,3)=5.00
}

func ExampleBuilder() {
	b := table.NewBuilder(table.ModeSpline)
	for x := 0.0; x <= 4; x++ {
		b.AddEntry(x, x*x)
	}

	tab, _ := b.Finalize()
	fmt.Printf("nodes=%d f(2)=%.1f\n", tab.Len(), tab.Lookup(2))
	// Output:
	// nodes=5 f(2)=4.0
}
