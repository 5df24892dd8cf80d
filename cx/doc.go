// Package cx provides checked helpers over Go's builtin complex128 scalar.
//
// What & why:
//
//	complex128 arithmetic is total: dividing by zero or building a polar
//	form with a zero radius silently yields NaN/Inf values that poison every
//	downstream matrix operation. cx adds the small set of fail-loud entry
//	points the rest of the kit relies on, so domain violations surface as
//	sentinel errors at the first possible moment instead of as NaN rows in a
//	density matrix three steps later.
//
// The total operations (Conj, Modulus, Phase) are thin, documented
// pass-throughs kept here so call sites read uniformly.
//
// Errors:
//
//   - ErrZeroDivisor — division by the zero scalar.
//   - ErrZeroRadius  — polar construction with radius r ≤ 0.
//
// Complexity: every function is O(1).
package cx
