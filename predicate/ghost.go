// SPDX-License-Identifier: MIT
//
// File: ghost.go
// Role: ghost-vertex-aware wrappers over Orient3D/InSphere3D. The ghost
//       vertex stands in for "infinity" at the convex hull boundary so the
//       Delaunay builder never has to special-case hull faces; any
//       orientation or in-sphere test naming it reduces to a plain test on
//       the remaining finite points. This is the standard ghost-tetrahedron
//       treatment of Bowyer-Watson's hull boundary (Shewchuk, "Lecture
//       Notes on Delaunay Mesh Generation", §3.4): a ghost simplex's
//       in-sphere test collapses to an orientation test on its one finite
//       face, worked out here from first principles.

package predicate

import "gonum.org/v1/gonum/spatial/r3"

// GhostID is the reserved vertex id the builder assigns to the point at
// infinity. It must never collide with a real mesh vertex id.
const GhostID uint32 = ^uint32(0)

// IsGhost reports whether id is the ghost vertex.
func IsGhost(id uint32) bool { return id == GhostID }

// OrientWithGhost is Orient3D, generalized so that any one of a, b, c, d
// may be the ghost vertex. A ghost tetrahedron is positively oriented by
// definition once its three finite vertices and the ghost are arranged so
// the ghost is last and the finite vertices keep their relative order —
// the form in which delaunay.Tetrahedralize adds its initial ghost tets.
// With the ghost in any other slot, the result is the sign of the
// permutation that moves it last, for walker moves that may present any
// rotation.
func OrientWithGhost(ia, ib, ic, id uint32, a, b, c, d r3.Vec) int {
	ids := [4]uint32{ia, ib, ic, id}
	ghostSlot := ghostSlotOf(ids[:])
	if ghostSlot < 0 {
		return Orient3D(ia, ib, ic, id, a, b, c, d)
	}
	return canonicalGhostParity(ghostSlot, 4)
}

// InSphereWithGhost is InSphere3D, generalized so that the tetrahedron
// (a, b, c, d) may be a ghost tet (exactly one of its four vertices is the
// ghost), or the query point e may itself be the ghost.
//
// Rule:
//   - If e is the ghost, it is never inside a finite tet's circumsphere,
//     and for a ghost tet the case is handled by the tet-is-ghost branch
//     below (this function checks the tet first).
//   - If the tet (a, b, c, d) is a ghost tet, the test collapses to an
//     ordinary Orient3D of its three finite vertices against e, adjusted
//     by the parity of how those three vertices are ordered relative to
//     the ghost's canonical "ghost last" position.
func InSphereWithGhost(ia, ib, ic, id, ie uint32, a, b, c, d, e r3.Vec) int {
	tetIDs := [4]uint32{ia, ib, ic, id}
	tetPts := [4]r3.Vec{a, b, c, d}
	ghostSlot := ghostSlotOf(tetIDs[:])
	if ghostSlot < 0 {
		if IsGhost(ie) {
			return -1
		}
		return InSphere3D(ia, ib, ic, id, ie, a, b, c, d, e)
	}
	others := otherSlots(ghostSlot, 4)
	fids := [3]uint32{tetIDs[others[0]], tetIDs[others[1]], tetIDs[others[2]]}
	fpts := [3]r3.Vec{tetPts[others[0]], tetPts[others[1]], tetPts[others[2]]}
	parity := permParitySign([4]int{others[0], others[1], others[2], ghostSlot})
	o := Orient3D(fids[0], fids[1], fids[2], ie, fpts[0], fpts[1], fpts[2], e)
	return parity * o
}

func ghostSlotOf(ids []uint32) int {
	for i, id := range ids {
		if IsGhost(id) {
			return i
		}
	}
	return -1
}

func otherSlots(skip, n int) []int {
	out := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		if i != skip {
			out = append(out, i)
		}
	}
	return out
}

// canonicalGhostParity returns the sign of the permutation that rearranges
// a length-n tuple so the element at position skip moves to the end and
// the rest keep their relative order — the convention that makes a ghost
// tuple's canonical form "positively oriented" by definition.
func canonicalGhostParity(skip, n int) int {
	perm := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if i != skip {
			perm = append(perm, i)
		}
	}
	perm = append(perm, skip)
	inv := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if perm[i] > perm[j] {
				inv++
			}
		}
	}
	if inv%2 == 0 {
		return 1
	}
	return -1
}

// permParitySign is canonicalGhostParity's fixed-size-array counterpart,
// used where the permutation is already materialized as a [4]int.
func permParitySign(p [4]int) int {
	inv := 0
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			if p[i] > p[j] {
				inv++
			}
		}
	}
	if inv%2 == 0 {
		return 1
	}
	return -1
}
