// SPDX-License-Identifier: MIT
//
// File: insphere.go
// Role: InSphere3D — whether e lies inside, on, or outside the
//       circumsphere of the positively-oriented tetrahedron (a, b, c, d).
//       Uses the standard paraboloid-lifting reduction (subtract the fifth
//       row from the other four) to turn the usual 5x5 determinant into a
//       4x4 one, matching the same cofactor-expansion machinery Orient3D
//       uses.

package predicate

import (
	"math/big"

	"gonum.org/v1/gonum/spatial/r3"
)

// InSphere3D returns:
//
//	+1 if e lies strictly inside the circumsphere of (a, b, c, d)
//	-1 if e lies strictly outside
//
// and never 0 — a genuinely cospherical configuration is broken by a
// deterministic perturbation keyed on the five vertex ids, which must be
// pairwise distinct. (a, b, c, d) must already be a positively-oriented
// tetrahedron (Orient3D(ia,ib,ic,id,a,b,c,d) > 0); callers that don't know
// the orientation should canonicalize it first.
func InSphere3D(ia, ib, ic, id, ie uint32, a, b, c, d, e r3.Vec) int {
	rows := inSphereRows(a, b, c, d, e)
	// Under Orient3D's sign convention the lifted determinant of a
	// positively-oriented tetrahedron is negative for interior points, so
	// its sign is flipped to report +1 for inside.
	if s := det4Sign(rows); s != 0 {
		return -s
	}
	return -inSpherePerturbed(ia, ib, ic, id, ie, a, b, c, d, e)
}

func inSphereRows(a, b, c, d, e r3.Vec) [4][4]*big.Float {
	lift := func(p r3.Vec) *big.Float {
		return bfAdd(bfAdd(bfMul(bf(p.X), bf(p.X)), bfMul(bf(p.Y), bf(p.Y))), bfMul(bf(p.Z), bf(p.Z)))
	}
	row := func(p r3.Vec) [4]*big.Float {
		return [4]*big.Float{
			bfSub(bf(p.X), bf(e.X)),
			bfSub(bf(p.Y), bf(e.Y)),
			bfSub(bf(p.Z), bf(e.Z)),
			bfSub(lift(p), lift(e)),
		}
	}
	return [4][4]*big.Float{row(a), row(b), row(c), row(d)}
}

func inSpherePerturbed(ia, ib, ic, id, ie uint32, a, b, c, d, e r3.Vec) int {
	ranks := rank5(ia, ib, ic, id, ie)
	pts := [5]r3.Vec{a, b, c, d, e}
	for _, eps := range perturbEpsilons {
		perturbed := pts
		for i := range perturbed {
			scale := eps
			for k := 0; k < ranks[i]; k++ {
				scale *= eps
			}
			perturbed[i].Z += scale
		}
		rows := inSphereRows(perturbed[0], perturbed[1], perturbed[2], perturbed[3], perturbed[4])
		if s := det4Sign(rows); s != 0 {
			return s
		}
	}
	sum := uint64(ia) + uint64(ib) + uint64(ic) + uint64(id) + uint64(ie)
	if sum%2 == 0 {
		return 1
	}
	return -1
}

// rank5 is rank4's five-point sibling.
func rank5(ia, ib, ic, id, ie uint32) [5]int {
	ids := [5]uint32{ia, ib, ic, id, ie}
	var rank [5]int
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
