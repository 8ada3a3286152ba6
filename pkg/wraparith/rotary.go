package wraparith

import (
	"golang.org/x/exp/constraints"

	"github.com/eigerco/rotary/internal/safemath"
)

// RotaryAdd returns (a + b) mod (MAX+1). With uint8, RotaryAdd(255, 4) is 3.
func RotaryAdd[T constraints.Unsigned](a, b T) T {
	sum := safemath.Widen(a).Add(safemath.Widen(b))
	return safemath.Truncate[T](sum)
}

// RotarySub returns (a - b) mod (MAX+1), restarting from MAX when the result
// would be negative. With uint8, RotarySub(3, 4) is 255.
func RotarySub[T constraints.Unsigned](a, b T) T {
	if a >= b {
		return a - b
	}
	diff := safemath.Widen(b).Sub(safemath.Widen(a))
	return safemath.Truncate[T](safemath.Radix[T]().Sub(diff))
}
