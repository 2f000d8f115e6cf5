package table

// Builder accumulates (x, f) samples one at a time and finalizes them into
// a Table1D. Unlike New1D, which borrows caller-owned slices, Finalize hands
// the table its own copy of the accumulated storage, so finished tables are
// self-contained and the builder may keep growing.
type Builder struct {
	mode Mode
	args []float64
	vals []float64
}

// NewBuilder creates a builder producing a table with the given mode.
func NewBuilder(mode Mode) *Builder {
	return &Builder{mode: mode}
}

// AddEntry appends one sample. Entries must arrive in strictly increasing x
// order; Finalize reports a violation.
func (b *Builder) AddEntry(x, f float64) {
	b.args = append(b.args, x)
	b.vals = append(b.vals, f)
}

// Len returns the number of accumulated samples.
func (b *Builder) Len() int {
	return len(b.args)
}

// Finalize builds a table over a copy of the accumulated samples.
func (b *Builder) Finalize() (*Table1D, error) {
	args := make([]float64, len(b.args))
	vals := make([]float64, len(b.vals))
	copy(args, b.args)
	copy(vals, b.vals)

	return New1D(args, vals, b.mode)
}
