package math

import (
	"testing"
)

func TestReverseBits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		x      int
		nbits  int
		expect int
	}{
		{"zero value", 0, 3, 0},
		{"zero nbits", 6, 0, 0},

		{"1 bit: 0", 0, 1, 0},
		{"1 bit: 1", 1, 1, 1},

		{"2 bits: 0b01", 0b01, 2, 0b10},
		{"2 bits: 0b10", 0b10, 2, 0b01},
		{"2 bits: 0b11", 0b11, 2, 0b11},

		{"3 bits: 0b001", 0b001, 3, 0b100},
		{"3 bits: 0b110 (docstring example)", 0b110, 3, 0b011},
		{"3 bits: 0b111", 0b111, 3, 0b111},

		{"4 bits: 0b0011", 0b0011, 4, 0b1100},
		{"8 bits: 0x12", 0x12, 8, 0x48},
		{"10 bits: 0x123", 0x123, 10, 0x312},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ReverseBits(tt.x, tt.nbits)
			if got != tt.expect {
				t.Errorf("ReverseBits(%#b, %d) = %#b, want %#b", tt.x, tt.nbits, got, tt.expect)
			}
		})
	}
}

func TestReverseBitsSymmetry(t *testing.T) {
	t.Parallel()

	// Reversing twice returns the original value.
	for nbits := 1; nbits <= 12; nbits++ {
		limit := 1 << nbits
		for x := 0; x < limit; x++ {
			if got := ReverseBits(ReverseBits(x, nbits), nbits); got != x {
				t.Fatalf("ReverseBits(ReverseBits(%d, %d), %d) = %d, want %d", x, nbits, nbits, got, x)
			}
		}
	}
}

func TestComputeBitReversalIndices(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n      int
		expect []int
	}{
		{1, []int{0}},
		{2, []int{0, 1}},
		{4, []int{0, 2, 1, 3}},
		{8, []int{0, 4, 2, 6, 1, 5, 3, 7}},
	}

	for _, tt := range tests {
		got := ComputeBitReversalIndices(tt.n)
		if len(got) != len(tt.expect) {
			t.Fatalf("ComputeBitReversalIndices(%d) length = %d, want %d", tt.n, len(got), len(tt.expect))
		}

		for i := range got {
			if got[i] != tt.expect[i] {
				t.Errorf("ComputeBitReversalIndices(%d)[%d] = %d, want %d", tt.n, i, got[i], tt.expect[i])
			}
		}
	}

	if got := ComputeBitReversalIndices(0); got != nil {
		t.Errorf("ComputeBitReversalIndices(0) = %v, want nil", got)
	}
}

func TestIsPowerOf2(t *testing.T) {
	t.Parallel()

	yes := []int{1, 2, 4, 8, 1024, 1 << 20}
	no := []int{0, -1, -4, 3, 5, 6, 12, 100, 1023}

	for _, n := range yes {
		if !IsPowerOf2(n) {
			t.Errorf("IsPowerOf2(%d) = false, want true", n)
		}
	}

	for _, n := range no {
		if IsPowerOf2(n) {
			t.Errorf("IsPowerOf2(%d) = true, want false", n)
		}
	}
}

func TestNextPowerOf2(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n      int
		expect int
	}{
		{-5, 1},
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{4, 4},
		{5, 8},
		{1000, 1024},
		{1024, 1024},
		{1025, 2048},
	}

	for _, tt := range tests {
		if got := NextPowerOf2(tt.n); got != tt.expect {
			t.Errorf("NextPowerOf2(%d) = %d, want %d", tt.n, got, tt.expect)
		}
	}
}
