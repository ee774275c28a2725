package circulant

// MultiplyFloat64 multiplies a real vector by the circulant matrix generated
// by a real vector. The computation runs in the complex domain; for real
// inputs the imaginary residue of the result is on the order of the
// floating-point rounding error and is discarded.
func MultiplyFloat64(c, x []float64) ([]float64, error) {
	if err := validatePair(c, x); err != nil {
		return nil, err
	}

	y, err := Multiply(liftComplex(c), liftComplex(x))
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(y))
	for i, v := range y {
		out[i] = real(v)
	}

	return out, nil
}

// MultiplyDirectFloat64 is the O(n²) reference path for real vectors.
// It stays entirely in real arithmetic.
func MultiplyDirectFloat64(c, x []float64) ([]float64, error) {
	if err := validatePair(c, x); err != nil {
		return nil, err
	}

	n := len(c)
	y := make([]float64, n)

	for i := range y {
		var sum float64

		for j := 0; j < n; j++ {
			k := i - j
			if k < 0 {
				k += n
			}
			sum += c[k] * x[j]
		}

		y[i] = sum
	}

	return y, nil
}

func liftComplex(v []float64) []complex128 {
	out := make([]complex128, len(v))
	for i, f := range v {
		out[i] = complex(f, 0)
	}

	return out
}
