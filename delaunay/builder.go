// SPDX-License-Identifier: MIT
//
// File: builder.go
// Role: Tetrahedralize — the Bowyer-Watson incremental insertion loop
//       entry point: seed tet plus ghost fan, then for each remaining
//       point locate/cavity/boundary/retriangulate, then drop the ghost.
//       Relies on exact ghost-aware predicates to guarantee a star-shaped
//       cavity at every step (Bowyer-Watson with ghost tetrahedra, per
//       Shewchuk, "Lecture Notes on Delaunay Mesh Generation", §3.4).

package delaunay

import (
	"github.com/gomesh3d/combomesh/mesh"
)

// Tetrahedralize computes the 3D Delaunay tetrahedralization of verts'
// positions via incremental Bowyer-Watson insertion with ghost
// tetrahedra, returning a fresh MWB-flagged mesh.ComboMesh3 whose
// tetrahedra satisfy the empty-circumsphere property and whose boundary
// (mesh.ComboMesh3.HullFaces) is the convex hull of the input points.
//
// The output mesh's vertices carry the same ids and payloads as verts,
// added in ascending id order; this requires verts' ids to form a dense
// 0..n-1 range (true of any ComboMesh0 built by a single sequence of
// AddVertex/ExtendVertices calls with no removals — Tetrahedralize panics
// if that precondition is violated, since a mismatched id would silently
// corrupt every subsequent query).
//
// Fewer than four vertices yields a tet-free mesh rather than an error,
// since a tetrahedron needs at least four points to begin with.
func Tetrahedralize[V, E, F, T any](verts *mesh.ComboMesh0[V], defaults mesh.ComboDefaults[V, E, F, T], opts ...Option) (*mesh.ComboMesh3[V, E, F, T], error) {
	cfg := newConfig(opts...)

	out := mesh.NewComboMesh3[V, E, F, T](defaults, mesh.WithMWB())
	ids := verts.Vertices()
	for _, id := range ids {
		val, pos, _ := verts.Vertex(id)
		if got := out.AddVertex(pos, val); got != id {
			panic("delaunay: input vertex ids are not a dense 0..n-1 range")
		}
	}
	if len(ids) < 4 {
		return out, nil
	}

	order := append([]mesh.VertexID(nil), ids...)
	if cfg.rng != nil {
		cfg.rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	}

	var zeroV V
	ghost := out.AddGhostVertex(mesh.Position{}, zeroV)

	v0, v1, v2, v3 := order[0], order[1], order[2], order[3]
	rest := order[4:]
	if !orientedPositive(out, v0, v1, v2, v3) {
		v2, v3 = v3, v2
	}

	var zeroT T
	if _, _, err := out.AddTet(v0, v1, v2, v3, zeroT); err != nil {
		return nil, err
	}
	for _, tri := range mesh.TetFaceTriples(v0, v1, v2, v3) {
		if _, _, err := out.AddTet(tri[0], tri[2], tri[1], ghost, zeroT); err != nil {
			return nil, err
		}
	}

	anchor := v0
	for _, p := range rest {
		pPos, _ := out.Position(p)
		near := nearestVertex(out, anchor, pPos)

		seed, found := locateSeedTet(out, near, p, ghost)
		if !found {
			// Defensive: exact ghost-aware predicates guarantee the new
			// point lies in some tet's circumsphere (every point is
			// inside the ghost-bounded hull until its own insertion), so
			// this only fires on an incidence-engine invariant break.
			return nil, ErrDegenerateInput
		}
		cavity := cavityTets(out, seed, p, ghost)
		boundary := boundaryFaces(out, cavity)

		for _, k := range cavity {
			out.RemoveTet(k[0], k[1], k[2], k[3])
		}
		for _, f := range boundary {
			if _, _, err := out.AddTet(f[0], f[1], f[2], p, zeroT); err != nil {
				return nil, err
			}
		}
	}

	out.RemoveVertex(ghost)
	return out, nil
}
