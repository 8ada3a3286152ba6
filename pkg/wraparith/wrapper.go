package wraparith

import (
	"golang.org/x/exp/constraints"
)

// Wrapper is a pair of add/sub operations closed over a fixed range.
type Wrapper[T constraints.Unsigned] interface {
	Add(a, b T) T
	Sub(a, b T) T
	// Contains reports whether v is inside the range results fall in.
	Contains(v T) bool
}

var (
	_ Wrapper[uint8] = Rotary[uint8]{}
	_ Wrapper[uint8] = Cycle[uint8]{}
	_ Wrapper[uint8] = Series[uint8]{}
)

// Rotary wraps across the full range of T.
type Rotary[T constraints.Unsigned] struct{}

func (Rotary[T]) Add(a, b T) T { return RotaryAdd(a, b) }
func (Rotary[T]) Sub(a, b T) T { return RotarySub(a, b) }
func (Rotary[T]) Contains(v T) bool { return true }

// Cycle wraps within [0, base-1].
// The zero value has base 0 and panics on use.
type Cycle[T constraints.Unsigned] struct {
	base T
}

// NewCycle returns a Cycle with the given base, or ErrZeroModulus.
func NewCycle[T constraints.Unsigned](base T) (Cycle[T], error) {
	if base == 0 {
		return Cycle[T]{}, ErrZeroModulus
	}
	return Cycle[T]{base: base}, nil
}

func (c Cycle[T]) Base() T { return c.base }
func (c Cycle[T]) Add(a, b T) T { return CycleAdd(a, b, c.base) }
func (c Cycle[T]) Sub(a, b T) T { return CycleSub(a, b, c.base) }
func (c Cycle[T]) Contains(v T) bool { return v < c.base }

// Series wraps within [1, limit].
// The zero value has limit 0 and panics on use.
type Series[T constraints.Unsigned] struct {
	limit T
}

// NewSeries returns a Series with the given limit, or ErrZeroLimit.
func NewSeries[T constraints.Unsigned](limit T) (Series[T], error) {
	if limit == 0 {
		return Series[T]{}, ErrZeroLimit
	}
	return Series[T]{limit: limit}, nil
}

func (s Series[T]) Limit() T { return s.limit }
func (s Series[T]) Add(a, b T) T { return SeriesAdd(a, b, s.limit) }
func (s Series[T]) Sub(a, b T) T { return SeriesSub(a, b, s.limit) }
func (s Series[T]) Mod(a T) T { return SeriesMod(a, s.limit) }
func (s Series[T]) Contains(v T) bool { return v >= 1 && v <= s.limit }
