package fft

// bitReverseCopy writes src permuted by the bit-reversal indices into dst.
// dst and src may be the same slice; in that case the permutation is applied
// with pairwise swaps.
func bitReverseCopy[T Complex](dst, src []T, bitrev []int) {
	if len(dst) == 0 {
		return
	}

	if &dst[0] == &src[0] {
		for i, j := range bitrev {
			if j > i {
				dst[i], dst[j] = dst[j], dst[i]
			}
		}

		return
	}

	for i, j := range bitrev {
		dst[i] = src[j]
	}
}

// butterflies runs the iterative radix-2 decimation-in-time stages over data,
// which must already be in bit-reversed order. len(data) must be a power of
// two and twiddle must hold the length-n forward twiddle factors.
func butterflies[T Complex](data, twiddle []T) {
	n := len(data)

	for size := 2; size <= n; size <<= 1 {
		half := size >> 1
		step := n / size

		for start := 0; start < n; start += size {
			for k := 0; k < half; k++ {
				w := twiddle[k*step]
				a := data[start+k]
				b := w * data[start+k+half]
				data[start+k] = a + b
				data[start+k+half] = a - b
			}
		}
	}
}

// forwardPow2 computes an unnormalized forward FFT of src into dst.
// len(src) must be a power of two. dst and src may alias.
func forwardPow2[T Complex](dst, src, twiddle []T, bitrev []int) {
	bitReverseCopy(dst, src, bitrev)
	butterflies(dst, twiddle)
}

// inversePow2InPlace computes the inverse FFT of data in place, scaled by
// 1/n, using the conjugation identity IFFT(x) = conj(FFT(conj(x)))/n.
func inversePow2InPlace[T Complex](data, twiddle []T, bitrev []int) {
	for i := range data {
		data[i] = Conj(data[i])
	}

	forwardPow2(data, data, twiddle, bitrev)

	scale := complexFromFloat64[T](1.0/float64(len(data)), 0)
	for i := range data {
		data[i] = Conj(data[i]) * scale
	}
}
