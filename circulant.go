package circulant

// MultiplyDirect computes y = C·x by direct summation, where C is the
// circulant matrix generated by c. The matrix is never materialized; each
// output element is the dot product of one conceptual row with x:
//
//	y[i] = Σ_j c[(i-j) mod n] · x[j]
//
// This is the O(n²) reference path. Use Multiply or a Plan for large n.
func MultiplyDirect[T Complex](c, x []T) ([]T, error) {
	if err := validatePair(c, x); err != nil {
		return nil, err
	}

	y := make([]T, len(c))
	multiplyDirect(y, c, x)

	return y, nil
}

// MultiplyDirectTo is MultiplyDirect writing into a pre-allocated dst of
// length len(c). dst must not alias c or x.
func MultiplyDirectTo[T Complex](dst, c, x []T) error {
	if dst == nil {
		return ErrNilSlice
	}

	if err := validatePair(c, x); err != nil {
		return err
	}

	if len(dst) != len(c) {
		return ErrLengthMismatch
	}

	multiplyDirect(dst, c, x)

	return nil
}

func multiplyDirect[T Complex](dst, c, x []T) {
	n := len(c)

	for i := range dst {
		var sum T

		for j := 0; j < n; j++ {
			k := i - j
			if k < 0 {
				k += n
			}
			sum += c[k] * x[j]
		}

		dst[i] = sum
	}
}

// Multiply computes y = C·x via the convolution theorem: the forward DFTs
// of c and x are multiplied elementwise and transformed back, for a total
// cost of O(n log n). The result matches MultiplyDirect up to floating-point
// rounding; see the package documentation for the tolerance the tests use.
//
// For repeated products against the same generating vector, build a Plan
// once instead.
func Multiply[T Complex](c, x []T) ([]T, error) {
	if err := validatePair(c, x); err != nil {
		return nil, err
	}

	p, err := NewPlan(c)
	if err != nil {
		return nil, err
	}

	y := make([]T, len(c))
	if err := p.Multiply(y, x); err != nil {
		return nil, err
	}

	return y, nil
}

// MultiplyTo is Multiply writing into a pre-allocated dst of length len(c).
// dst may alias x but not c.
func MultiplyTo[T Complex](dst, c, x []T) error {
	if dst == nil {
		return ErrNilSlice
	}

	if err := validatePair(c, x); err != nil {
		return err
	}

	if len(dst) != len(c) {
		return ErrLengthMismatch
	}

	p, err := NewPlan(c)
	if err != nil {
		return err
	}

	return p.Multiply(dst, x)
}

// validatePair checks the common preconditions shared by both multiply
// paths: non-nil inputs, positive length, and matching lengths.
func validatePair[T any](c, x []T) error {
	if c == nil || x == nil {
		return ErrNilSlice
	}

	if len(c) == 0 || len(x) == 0 {
		return ErrInvalidLength
	}

	if len(c) != len(x) {
		return ErrLengthMismatch
	}

	return nil
}
