package fftypes

// Complex is the type constraint for complex element types supported by
// the transforms and multiply routines. The constraint is exact (no ~):
// the generic helpers dispatch on the concrete type.
type Complex interface {
	complex64 | complex128
}

// Float is the type constraint for real element types accepted by the
// real-valued convenience wrappers.
type Float interface {
	float32 | float64
}
