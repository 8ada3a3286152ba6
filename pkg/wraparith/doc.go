// Package wraparith implements wrap-around arithmetic over unsigned integers.
//
// Rotary operations wrap across the whole range of the type, [0, MAX].
// Cycle operations wrap within [0, base-1] for a caller supplied base, e.g.
// 60 for seconds in a minute. Series operations wrap within [1, limit], the
// one-based numbering used for weekdays or days of the month.
//
// Every operation is a single generic definition over the unsigned integer
// types. Intermediate sums are formed in a 128-bit accumulator so nothing
// overflows before the final reduction, 64-bit types included.
//
// A zero base or limit is a programming error: the free functions log it on
// log.Arith and panic with an error wrapping ErrZeroModulus or ErrZeroLimit.
// Use NewCycle and NewSeries to get those as ordinary errors instead.
package wraparith
