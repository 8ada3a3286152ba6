package wraparith

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Max returns the largest value representable by T.
func Max[T constraints.Unsigned]() T {
	return ^T(0)
}

// Width returns the bit width of T.
func Width[T constraints.Unsigned]() int {
	return bits.Len64(uint64(Max[T]()))
}
