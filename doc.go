// Package circulant implements multiplication of a vector by a circulant
// matrix.
//
// A circulant matrix C of size n×n is fully determined by its generating
// vector c: C[i][j] = c[(i-j) mod n]. Multiplying C by a vector x is the
// circular convolution of c and x, and by the convolution theorem that
// equals an elementwise product in the frequency domain:
//
//	y = C·x = InverseDFT(DFT(c) ∘ DFT(x))
//
// Multiply exploits this to run in O(n log n) without ever materializing
// the n×n matrix. MultiplyDirect evaluates the O(n²) summation and serves
// as the reference path for equivalence testing; the two paths agree only
// up to floating-point rounding, not bit-for-bit, since they accumulate
// error in different orders.
//
// For repeated products against the same matrix, create a Plan once and
// reuse it:
//
//	p, err := circulant.NewPlan(c)
//	if err != nil {
//	    // handle invalid generating vector
//	}
//	for _, x := range inputs {
//	    err = p.Multiply(y, x)
//	    // ...
//	}
//
// Arbitrary lengths are supported; non-power-of-two sizes run through
// Bluestein's chirp-z transform internally, which changes the constant
// factor but not correctness.
package circulant
