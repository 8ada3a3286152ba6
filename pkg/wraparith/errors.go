package wraparith

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/eigerco/rotary/pkg/log"
)

var (
	// ErrZeroModulus is returned, or panicked with, when a cycle base is zero.
	ErrZeroModulus = errors.New("cycle base must be at least 1")

	// ErrZeroLimit is returned, or panicked with, when a series limit is zero.
	ErrZeroLimit = errors.New("series limit must be at least 1")

	// ErrOutsideSeries is returned by ValidateSeries when a value is not in
	// [1, limit].
	ErrOutsideSeries = errors.New("value outside series")
)

// mustNonZero panics when a modulus or limit is zero. Modulo by zero is
// undefined and a silently wrong result would propagate to callers.
func mustNonZero[T constraints.Unsigned](v T, sentinel error, op string) {
	if v != 0 {
		return
	}
	err := fmt.Errorf("%w: %s", sentinel, op)
	log.Arith.Error().Err(err).Str("op", op).Msg("contract violation")
	panic(err)
}
