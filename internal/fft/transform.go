package fft

import (
	"errors"
	"math"

	m "github.com/cwbudde/algo-circulant/internal/math"
)

// ErrInvalidLength is returned when a transform length is not positive.
var ErrInvalidLength = errors.New("fft: invalid transform length")

// Transform holds the precomputed tables for length-n forward and inverse
// discrete Fourier transforms. Power-of-two lengths run the radix-2
// decimation-in-time path directly; all other lengths go through Bluestein's
// chirp-z algorithm on a padded power-of-two transform.
//
// All tables are read-only after construction; Forward and Inverse allocate
// any per-call work buffers, so a Transform is safe for concurrent use.
type Transform[T Complex] struct {
	n       int
	twiddle []T
	bitrev  []int

	// Bluestein tables, nil when n is a power of two.
	chirp  []T
	filter []T
	padded int
}

// NewTransform precomputes transform tables for sequences of length n.
func NewTransform[T Complex](n int) (*Transform[T], error) {
	if n < 1 {
		return nil, ErrInvalidLength
	}

	if m.IsPowerOf2(n) {
		return &Transform[T]{
			n:       n,
			twiddle: ComputeTwiddleFactors[T](n),
			bitrev:  m.ComputeBitReversalIndices(n),
		}, nil
	}

	// Bluestein: linear convolution of the chirp-weighted input with the
	// conjugate chirp needs at least 2n-1 points before wraparound.
	padded := m.NextPowerOf2(2*n - 1)
	twiddle := ComputeTwiddleFactors[T](padded)
	bitrev := m.ComputeBitReversalIndices(padded)
	chirp := computeChirpSequence[T](n)

	filter := make([]T, padded)
	filter[0] = Conj(chirp[0])
	for k := 1; k < n; k++ {
		w := Conj(chirp[k])
		filter[k] = w
		filter[padded-k] = w
	}
	forwardPow2(filter, filter, twiddle, bitrev)

	return &Transform[T]{
		n:       n,
		twiddle: twiddle,
		bitrev:  bitrev,
		chirp:   chirp,
		filter:  filter,
		padded:  padded,
	}, nil
}

// computeChirpSequence returns the Bluestein chirp w[k] = exp(-iπk²/n).
// The exponent is reduced modulo 2n before conversion to float to keep the
// angle accurate for large k.
func computeChirpSequence[T Complex](n int) []T {
	chirp := make([]T, n)
	for k := 0; k < n; k++ {
		sq := (int64(k) * int64(k)) % int64(2*n)
		angle := -math.Pi * float64(sq) / float64(n)
		chirp[k] = complexFromFloat64[T](math.Cos(angle), math.Sin(angle))
	}

	return chirp
}

// Len returns the transform length n.
func (t *Transform[T]) Len() int {
	return t.n
}

// Forward computes the unnormalized forward DFT of src into dst.
// Both slices must have length n. dst and src may alias.
func (t *Transform[T]) Forward(dst, src []T) {
	if t.chirp == nil {
		forwardPow2(dst, src, t.twiddle, t.bitrev)
		return
	}

	work := make([]T, t.padded)
	for k := range src {
		work[k] = src[k] * t.chirp[k]
	}

	forwardPow2(work, work, t.twiddle, t.bitrev)
	for k := range work {
		work[k] *= t.filter[k]
	}
	inversePow2InPlace(work, t.twiddle, t.bitrev)

	for k := range dst {
		dst[k] = t.chirp[k] * work[k]
	}
}

// Inverse computes the inverse DFT of src into dst, scaled by 1/n so that a
// Forward followed by an Inverse reproduces the input. Both slices must have
// length n. dst and src may alias.
func (t *Transform[T]) Inverse(dst, src []T) {
	for k := range src {
		dst[k] = Conj(src[k])
	}

	t.Forward(dst, dst)

	scale := complexFromFloat64[T](1.0/float64(t.n), 0)
	for k := range dst {
		dst[k] = Conj(dst[k]) * scale
	}
}
