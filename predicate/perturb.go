// SPDX-License-Identifier: MIT
//
// File: perturb.go
// Role: the tie-break applied when an exact determinant is genuinely zero
//       (true coplanarity / true cosphericity, not rounding error) — a
//       pragmatic, numerically-evaluated stand-in for full Simulation of
//       Simplicity. The classical technique (Edelsbrunner & Mücke) expands
//       the determinant symbolically as a polynomial in an indeterminate
//       epsilon per point and takes the sign of its lowest-order nonzero
//       term. Here the same idea is evaluated numerically: each point gets
//       a distinct, tiny, index-ranked offset, and the perturbed
//       determinant is evaluated exactly (via bigdet.go) at a sequence of
//       shrinking concrete epsilons. Because math/big.Float arithmetic
//       introduces no rounding error of its own, any perturbation small
//       enough relative to the input coordinates reproduces the same sign
//       the symbolic lowest-order term would — and trying several shrinking
//       epsilons guards against the vanishing-probability case where one
//       particular epsilon value happens to sit on a root of the
//       (otherwise generic) perturbed polynomial.
package predicate

// perturbEpsilons are tried in order; the first one that breaks the tie
// wins. Each is far smaller than the last so that, for any input whose
// coordinates are ordinary float64 values, at most one of them could ever
// coincide with an actual root of the configuration's perturbed polynomial.
var perturbEpsilons = []float64{1e-12, 1e-17, 1e-22, 1e-27}

// rank4 returns, for each of four distinct ids, its 0..3 position when the
// four are sorted ascending — the priority order the perturbation is keyed
// on, so that the same four points always perturb identically regardless
// of call order.
func rank4(ia, ib, ic, id uint32) [4]int {
	ids := [4]uint32{ia, ib, ic, id}
	var rank [4]int
	for i := range ids {
		r := 0
		for j := range ids {
			if ids[j] < ids[i] || (ids[j] == ids[i] && j < i) {
				r++
			}
		}
		rank[i] = r
	}
	return rank
}

// tieBreakSign is the totality-of-last-resort fallback used when every
// tried epsilon still leaves the determinant at zero. The offsets move
// points along z only, so four points whose xy projections are collinear
// (for example, all on one plane parallel to the z-axis) stay coplanar
// under every epsilon and always end here. The sign it returns has no
// geometric meaning — it exists only so the predicates never return zero.
func tieBreakSign(ids [4]uint32) int {
	sum := uint64(ids[0]) + uint64(ids[1]) + uint64(ids[2]) + uint64(ids[3])
	if sum%2 == 0 {
		return 1
	}
	return -1
}
