package circulant

import (
	"math/cmplx"
	"math/rand"
	"testing"
)

// Shared test helper functions used across multiple test files

func assertApproxComplex128Tolf(t *testing.T, got, want complex128, tol float64, format string, args ...any) {
	t.Helper()

	if cmplx.Abs(got-want) > tol {
		t.Fatalf(format+": got %v want %v (diff=%v)", append(args, got, want, cmplx.Abs(got-want))...)
	}
}

func randomComplex128(n int, seed int64) []complex128 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]complex128, n)

	for i := range out {
		out[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
	}

	return out
}

func randomFloat64(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)

	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}

	return out
}

// tolFor scales the equivalence tolerance with n: the output magnitude grows
// like n for unit inputs and the transform pair accumulates rounding error
// with size. Loose enough to be deterministic, tight enough to catch
// algorithmic mistakes.
func tolFor(n int) float64 {
	return 1e-11 * float64(n+1)
}
