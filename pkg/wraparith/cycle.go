package wraparith

import (
	"golang.org/x/exp/constraints"

	"github.com/eigerco/rotary/internal/safemath"
)

// CycleAdd returns (a + b) mod base, a value in [0, base-1].
// Neither operand has to be below base. With base 60, CycleAdd(53, 10, 60) is 3.
// Panics if base is zero.
func CycleAdd[T constraints.Unsigned](a, b, base T) T {
	mustNonZero(base, ErrZeroModulus, "cycle add")

	sum := safemath.Widen(a % base).Add(safemath.Widen(b % base))
	return T(sum.Rem(uint64(base)))
}

// CycleSub returns (a - b) mod base, a value in [0, base-1].
// With base 24, CycleSub(3, 4, 24) is 23. Panics if base is zero.
func CycleSub[T constraints.Unsigned](a, b, base T) T {
	mustNonZero(base, ErrZeroModulus, "cycle sub")

	x, y := a%base, b%base
	if x >= y {
		return x - y
	}
	return base - (y - x)
}
