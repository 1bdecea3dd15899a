// SPDX-License-Identifier: MIT

package mesh

// EdgeKey identifies one directed edge slot: EdgeKey{a, b} is the edge
// running a→b. Unlike triangles and tetrahedra, edges are not canonicalized
// to a single representative — a→b and b→a are independent store entries
// (each other's twin) in the directed-edge data model this package uses.
type EdgeKey [2]VertexID

// TriKey identifies one oriented triangle's canonical representative: among
// the three cyclic rotations of an oriented vertex triple, the
// lexicographically smallest is the key. The opposite-oriented twin
// triangle (same three vertices, reversed winding) canonicalizes to a
// different TriKey.
type TriKey [3]VertexID

// TetKey identifies one oriented tetrahedron's canonical representative:
// among the twelve even permutations of an oriented vertex quadruple (the
// permutations that preserve its orientation), the lexicographically
// smallest is the key. The opposite-oriented twin tetrahedron canonicalizes
// to a different TetKey.
type TetKey [4]VertexID

// canonTri returns the canonical key for the oriented triangle (a, b, c).
func canonTri(a, b, c VertexID) TriKey {
	rots := [3]TriKey{
		{a, b, c},
		{b, c, a},
		{c, a, b},
	}
	best := rots[0]
	for _, r := range rots[1:] {
		if lessTri(r, best) {
			best = r
		}
	}
	return best
}

// twinTri returns the canonical key of the opposite-oriented triangle
// sharing the same three vertices as k.
func twinTri(k TriKey) TriKey {
	return canonTri(k[0], k[2], k[1])
}

func lessTri(a, b TriKey) bool {
	for i := 0; i < 3; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// tetEvenPerms lists, as index permutations into a 4-tuple, the twelve
// orientation-preserving (even) permutations of four elements — the
// alternating group A4. Computed once at init via a generic permutation
// generator rather than hand-transcribed, to avoid a 12-row table that is
// easy to get subtly wrong.
var tetEvenPerms [][4]int

func init() {
	base := [4]int{0, 1, 2, 3}
	permute(base, 0, func(p [4]int) {
		if parityEven(p) {
			cp := p
			tetEvenPerms = append(tetEvenPerms, cp)
		}
	})
}

// permute calls fn once per permutation of arr, varying indices [k:].
func permute(arr [4]int, k int, fn func([4]int)) {
	if k == len(arr) {
		fn(arr)
		return
	}
	for i := k; i < len(arr); i++ {
		arr[k], arr[i] = arr[i], arr[k]
		permute(arr, k+1, fn)
		arr[k], arr[i] = arr[i], arr[k]
	}
}

// parityEven reports whether perm is an even permutation of {0,1,2,3} by
// counting inversions.
func parityEven(perm [4]int) bool {
	inversions := 0
	for i := 0; i < len(perm); i++ {
		for j := i + 1; j < len(perm); j++ {
			if perm[i] > perm[j] {
				inversions++
			}
		}
	}
	return inversions%2 == 0
}

// CanonTetKey returns the canonical key for the oriented tetrahedron
// (a, b, c, d) — the same representative canonTet computes for internal
// use. Exported for callers outside this package (the Delaunay builder's
// cavity BFS) that discover the same solid tetrahedron via different
// oriented 4-tuples while walking face-to-face across the mesh and need a
// stable identity to dedupe against, without reaching into the
// canonical-key machinery itself.
func CanonTetKey(a, b, c, d VertexID) TetKey { return canonTet(a, b, c, d) }

// canonTet returns the canonical key for the oriented tetrahedron
// (a, b, c, d).
func canonTet(a, b, c, d VertexID) TetKey {
	v := [4]VertexID{a, b, c, d}
	var best TetKey
	first := true
	for _, p := range tetEvenPerms {
		cand := TetKey{v[p[0]], v[p[1]], v[p[2]], v[p[3]]}
		if first || lessTet(cand, best) {
			best = cand
			first = false
		}
	}
	return best
}

// twinTet returns the canonical key of the opposite-oriented tetrahedron
// spanning the same four vertices as k.
func twinTet(k TetKey) TetKey {
	return canonTet(k[1], k[0], k[2], k[3])
}

func lessTet(a, b TetKey) bool {
	for i := 0; i < 4; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// distinct4 reports whether a, b, c, d are pairwise different.
func distinct4(a, b, c, d VertexID) bool {
	return a != b && a != c && a != d && b != c && b != d && c != d
}

// distinct3 reports whether a, b, c are pairwise different.
func distinct3(a, b, c VertexID) bool {
	return a != b && a != c && b != c
}
