// SPDX-License-Identifier: MIT
//
// File: cavity.go
// Role: ghost-aware predicate wrappers, tet-adjacency via twin-face
//       lookup, and the cavity/boundary BFS steps of Bowyer-Watson: a plain
//       queue-slice-plus-visited-set walk over tet adjacency, admitting a
//       neighbor into the frontier only when the in-sphere test passes.

package delaunay

import (
	"github.com/gomesh3d/combomesh/mesh"
	"github.com/gomesh3d/combomesh/predicate"
)

// tetInSphereGhost reports whether p lies strictly inside the (ghost-aware)
// circumsphere of the tetrahedron key: if key contains the ghost vertex,
// the test collapses to an orientation test on the opposite finite face;
// otherwise it's the ordinary in-sphere test.
func tetInSphereGhost[V, E, F, T any](m *mesh.ComboMesh3[V, E, F, T], key mesh.TetKey, p, ghost mesh.VertexID) bool {
	pa, _ := m.Position(key[0])
	pb, _ := m.Position(key[1])
	pc, _ := m.Position(key[2])
	pd, _ := m.Position(key[3])
	pp, _ := m.Position(p)
	return predicate.InSphereWithGhost(
		uint32(key[0]), uint32(key[1]), uint32(key[2]), uint32(key[3]), uint32(p),
		pa, pb, pc, pd, pp,
	) > 0
}

// adjacentTets returns the canonical keys of the tetrahedra sharing a face
// with key, one slot per face of key (mesh.TetFaceTriples order), omitting
// faces that are a mesh boundary (no tet on the other side). A face's
// neighbor is found by crossing to the twin-oriented triple and reading
// whichever vertex (if any — at most one, since the output mesh is
// MWB-flagged) completes a tet on that side.
func adjacentTets[V, E, F, T any](m *mesh.ComboMesh3[V, E, F, T], key mesh.TetKey) []mesh.TetKey {
	var out []mesh.TetKey
	for _, f := range mesh.TetFaceTriples(key[0], key[1], key[2], key[3]) {
		for _, e := range m.TriTets(f[0], f[2], f[1]) {
			out = append(out, mesh.CanonTetKey(f[0], f[2], f[1], e))
		}
	}
	return out
}

// locateSeedTet performs a plain BFS (no admission filter) over tet
// adjacency starting from near's incident tets, stopping at the first tet
// whose ghost-aware circumsphere contains p. near should already be the
// mesh vertex nearest p, per nearestVertex.
func locateSeedTet[V, E, F, T any](m *mesh.ComboMesh3[V, E, F, T], near, p, ghost mesh.VertexID) (mesh.TetKey, bool) {
	start := m.VertexTets(near)
	visited := make(map[mesh.TetKey]struct{}, len(start))
	queue := append([]mesh.TetKey(nil), start...)
	for _, t := range queue {
		visited[t] = struct{}{}
	}
	for len(queue) > 0 {
		t := queue[0]
		queue = queue[1:]
		if tetInSphereGhost(m, t, p, ghost) {
			return t, true
		}
		for _, nb := range adjacentTets(m, t) {
			if _, seen := visited[nb]; seen {
				continue
			}
			visited[nb] = struct{}{}
			queue = append(queue, nb)
		}
	}
	return mesh.TetKey{}, false
}

// cavityTets runs a BFS from seed over tet adjacency, admitting a neighbor
// into the cavity (and the search frontier) only if its ghost-aware
// in-sphere test against p holds. seed itself is assumed to already pass
// that test (locateSeedTet guarantees this). Because predicates are exact
// and perturbed, the admitted set is guaranteed star-shaped around p.
func cavityTets[V, E, F, T any](m *mesh.ComboMesh3[V, E, F, T], seed mesh.TetKey, p, ghost mesh.VertexID) []mesh.TetKey {
	visited := map[mesh.TetKey]struct{}{seed: {}}
	queue := []mesh.TetKey{seed}
	out := []mesh.TetKey{seed}
	for len(queue) > 0 {
		t := queue[0]
		queue = queue[1:]
		for _, nb := range adjacentTets(m, t) {
			if _, seen := visited[nb]; seen {
				continue
			}
			visited[nb] = struct{}{}
			if tetInSphereGhost(m, nb, p, ghost) {
				out = append(out, nb)
				queue = append(queue, nb)
			}
		}
	}
	return out
}

// boundaryFaces collects every oriented face triple of a cavity tet whose
// twin (the orientation a neighbor on the other side would use) is not
// itself a face of some cavity tet — the boundary of the cavity, each
// triple already oriented outward the way the retriangulation step needs
// to build (face[0], face[1], face[2], p).
func boundaryFaces[V, E, F, T any](m *mesh.ComboMesh3[V, E, F, T], cavity []mesh.TetKey) [][3]mesh.VertexID {
	present := make(map[[3]mesh.VertexID]struct{}, len(cavity)*4)
	faces := make([][3]mesh.VertexID, 0, len(cavity)*4)
	for _, t := range cavity {
		for _, f := range mesh.TetFaceTriples(t[0], t[1], t[2], t[3]) {
			present[f] = struct{}{}
			faces = append(faces, f)
		}
	}
	var boundary [][3]mesh.VertexID
	for _, f := range faces {
		twin := [3]mesh.VertexID{f[0], f[2], f[1]}
		if _, ok := present[twin]; !ok {
			boundary = append(boundary, f)
		}
	}
	return boundary
}
