package circulant

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-circulant/internal/fft"
)

// Plan precomputes the frequency-domain representation of a circulant
// matrix for repeated multiplication against many input vectors. Creating
// a Plan costs one forward transform; each Multiply afterwards costs one
// forward transform, one elementwise product, and one inverse transform.
//
// A Plan is not safe for concurrent use: Multiply reuses an internal
// scratch buffer. Use MultiplyBatch for parallel work, or one Plan per
// goroutine.
type Plan[T Complex] struct {
	n         int
	transform *fft.Transform[T]
	eigen     []T
	scratch   []T
}

// NewPlan validates the generating vector c and precomputes its DFT.
//
// The DFT of c holds the eigenvalues of the circulant matrix (the DFT
// matrix diagonalizes every circulant), which is exactly the factor the
// fast multiply needs in the frequency domain.
func NewPlan[T Complex](c []T) (*Plan[T], error) {
	if c == nil {
		return nil, ErrNilSlice
	}

	if len(c) == 0 {
		return nil, ErrInvalidLength
	}

	n := len(c)

	transform, err := fft.NewTransform[T](n)
	if err != nil {
		return nil, ErrInvalidLength
	}

	eigen := make([]T, n)
	transform.Forward(eigen, c)

	return &Plan[T]{
		n:         n,
		transform: transform,
		eigen:     eigen,
		scratch:   make([]T, n),
	}, nil
}

// Len returns the matrix dimension n.
func (p *Plan[T]) Len() int {
	return p.n
}

// Eigenvalues returns a copy of the DFT of the generating vector, i.e. the
// eigenvalues of the circulant matrix ordered by frequency index.
func (p *Plan[T]) Eigenvalues() []T {
	out := make([]T, p.n)
	copy(out, p.eigen)

	return out
}

// Multiply computes dst = C·x. Both slices must have length Len().
// dst may alias x.
func (p *Plan[T]) Multiply(dst, x []T) error {
	if dst == nil || x == nil {
		return ErrNilSlice
	}

	if len(dst) != p.n || len(x) != p.n {
		return ErrLengthMismatch
	}

	p.multiply(dst, x, p.scratch)

	return nil
}

// multiply runs the frequency-domain product using the provided scratch
// buffer, which must have length n. The underlying transform tables are
// read-only, so distinct scratch buffers make concurrent calls safe.
func (p *Plan[T]) multiply(dst, x, scratch []T) {
	p.transform.Forward(scratch, x)

	for k := range scratch {
		scratch[k] *= p.eigen[k]
	}

	p.transform.Inverse(dst, scratch)
}

// MultiplyBatch computes dst[i] = C·xs[i] for every input vector, spreading
// the work across up to GOMAXPROCS goroutines. Every vector in xs and dst
// must have length Len(); dst[i] may alias xs[i]. The batch is all-or-
// nothing: validation happens before any output is written.
func (p *Plan[T]) MultiplyBatch(dst, xs [][]T) error {
	if dst == nil || xs == nil {
		return ErrNilSlice
	}

	if len(dst) != len(xs) {
		return ErrLengthMismatch
	}

	for i := range xs {
		if xs[i] == nil || dst[i] == nil {
			return ErrNilSlice
		}

		if len(xs[i]) != p.n || len(dst[i]) != p.n {
			return ErrLengthMismatch
		}
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range xs {
		i := i
		g.Go(func() error {
			scratch := make([]T, p.n)
			p.multiply(dst[i], xs[i], scratch)

			return nil
		})
	}

	return g.Wait()
}
