package wraparith

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// SeriesAdd adds b to a position in the series 1..limit, wrapping back to 1
// past limit. With limit 7, SeriesAdd(6, 2, 7) is 1.
//
// a must already be in [1, limit]. Other values still give a result in
// [1, limit] but not a meaningful one; normalise with SeriesMod first.
// Panics if limit is zero.
func SeriesAdd[T constraints.Unsigned](a, b, limit T) T {
	mustNonZero(limit, ErrZeroLimit, "series add")
	return CycleAdd(a-1, b, limit) + 1
}

// SeriesSub subtracts b from a position in the series 1..limit, wrapping
// back to limit below 1. With limit 7, SeriesSub(2, 6, 7) is 3.
// The precondition on a is the same as for SeriesAdd. Panics if limit is zero.
func SeriesSub[T constraints.Unsigned](a, b, limit T) T {
	mustNonZero(limit, ErrZeroLimit, "series sub")
	return CycleSub(a-1, b, limit) + 1
}

// SeriesMod normalises a into [1, limit]. Unlike a % limit, multiples of
// limit map to limit itself: SeriesMod(7, 7) and SeriesMod(0, 7) are both 7.
// Panics if limit is zero.
func SeriesMod[T constraints.Unsigned](a, limit T) T {
	mustNonZero(limit, ErrZeroLimit, "series mod")

	if r := a % limit; r != 0 {
		return r
	}
	return limit
}

// ValidateSeries checks the precondition of SeriesAdd and SeriesSub.
func ValidateSeries[T constraints.Unsigned](a, limit T) error {
	if limit == 0 {
		return ErrZeroLimit
	}
	if a == 0 || a > limit {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrOutsideSeries, a, limit)
	}
	return nil
}
