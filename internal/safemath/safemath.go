package safemath

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Wide is a 128-bit unsigned accumulator. Every supported operand fits in
// Lo, so sums and differences of two operands never lose a carry.
type Wide struct {
	Hi, Lo uint64
}

// Widen promotes v into the accumulator.
func Widen[T constraints.Unsigned](v T) Wide {
	return Wide{Lo: uint64(v)}
}

// Radix returns MAX+1 for T, which is 2^64 for 64-bit types.
func Radix[T constraints.Unsigned]() Wide {
	return Widen(^T(0)).Add(Wide{Lo: 1})
}

func (w Wide) Add(v Wide) Wide {
	lo, carry := bits.Add64(w.Lo, v.Lo, 0)
	hi, _ := bits.Add64(w.Hi, v.Hi, carry)
	return Wide{Hi: hi, Lo: lo}
}

// Sub returns w - v. The caller guarantees w >= v.
func (w Wide) Sub(v Wide) Wide {
	lo, borrow := bits.Sub64(w.Lo, v.Lo, 0)
	hi, _ := bits.Sub64(w.Hi, v.Hi, borrow)
	return Wide{Hi: hi, Lo: lo}
}

// Rem returns w mod m. Panics if m is zero.
func (w Wide) Rem(m uint64) uint64 {
	return bits.Rem64(w.Hi, w.Lo, m)
}

// Truncate reduces w modulo the radix of T.
func Truncate[T constraints.Unsigned](w Wide) T {
	return T(w.Lo)
}
