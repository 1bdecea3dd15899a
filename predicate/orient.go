// SPDX-License-Identifier: MIT
//
// File: orient.go
// Role: Orient3D — the sign of the determinant testing which side of the
//       oriented plane through (a, b, c) the point d falls on.

package predicate

import (
	"math/big"

	"gonum.org/v1/gonum/spatial/r3"
)

// Orient3D returns:
//
//	+1 if d lies on the positive side of the oriented plane through a, b, c
//	-1 if d lies on the negative side
//
// and never 0: a genuinely coplanar configuration is broken by a
// deterministic perturbation keyed on the four vertex ids (ia, ib, ic, id),
// which must be pairwise distinct.
//
// Sign convention: positive means (a, b, c, d) is a positively-oriented
// tetrahedron (matches the tet orientation convention used by mesh.ComboMesh3).
func Orient3D(ia, ib, ic, id uint32, a, b, c, d r3.Vec) int {
	rows := orient3DRows(a, b, c, d)
	if s := det3Sign(rows); s != 0 {
		return s
	}
	return orient3DPerturbed(ia, ib, ic, id, a, b, c, d)
}

func orient3DRows(a, b, c, d r3.Vec) [3][3]*big.Float {
	return [3][3]*big.Float{
		{bfSub(bf(b.X), bf(a.X)), bfSub(bf(b.Y), bf(a.Y)), bfSub(bf(b.Z), bf(a.Z))},
		{bfSub(bf(c.X), bf(a.X)), bfSub(bf(c.Y), bf(a.Y)), bfSub(bf(c.Z), bf(a.Z))},
		{bfSub(bf(d.X), bf(a.X)), bfSub(bf(d.Y), bf(a.Y)), bfSub(bf(d.Z), bf(a.Z))},
	}
}

func orient3DPerturbed(ia, ib, ic, id uint32, a, b, c, d r3.Vec) int {
	ranks := rank4(ia, ib, ic, id)
	pts := [4]r3.Vec{a, b, c, d}
	for _, eps := range perturbEpsilons {
		perturbed := pts
		for i := range perturbed {
			scale := eps
			for k := 0; k < ranks[i]; k++ {
				scale *= eps
			}
			perturbed[i].Z += scale
		}
		rows := orient3DRows(perturbed[0], perturbed[1], perturbed[2], perturbed[3])
		if s := det3Sign(rows); s != 0 {
			return s
		}
	}
	return tieBreakSign([4]uint32{ia, ib, ic, id})
}
