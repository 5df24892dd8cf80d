// Package evolve builds unitary time-evolution operators U = exp(-i·H·Δt/ħ)
// from Hermitian generators and applies them to states.
//
// Four interchangeable strategies, selectable by matrix size and desired
// numerical stability:
//
//   - Closed2x2 — exact closed form for 2×2 generators via the
//     trace/discriminant decomposition. Cheapest and exact; the workhorse
//     for spin-½ cells.
//   - Taylor — truncated series Σ Xᵏ/k!. Simple and adequate for small
//     ‖X‖ = ‖H‖·Δt/ħ; error grows fast past that.
//   - Pade — diagonal Padé approximant with scaling and squaring. The
//     stable general-purpose choice; a singular denominator (Δt far too
//     large for the order) surfaces as ErrNumerical.
//   - Eigen — exact for any Hermitian H via eigendecomposition:
//     U = V·diag(exp(-iλΔt/ħ))·V†. The right tool for joint systems of
//     entangled pairs (4×4 and up).
//
// Every strategy is a pure function from (generator, Δt) to U; nothing is
// cached or mutated. Apply results with Step (state vector, renormalized to
// absorb residual drift from the approximation order) or StepDensity
// (ρ' = U·ρ·U†, re-Hermitized).
//
// Approximation quality: with the default orders and scaling, ‖U·U†-I‖∞
// stays below 1e-8 for the Δt magnitudes the simulations use; the unitarity
// tests pin 1e-6 as the hard ceiling.
//
// Unitarity of the result requires a Hermitian generator. The series
// strategies do not verify Hermiticity (they exponentiate whatever they are
// given); Eigen does, by construction.
package evolve
