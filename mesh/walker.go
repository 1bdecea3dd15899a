// SPDX-License-Identifier: MIT
//
// File: walker.go
// Role: TriWalker and TetWalker — positional cursors over a mesh's
//       oriented triangles and tetrahedra. Moves within one simplex are
//       constant-time; ring moves (NextOpp, PrevOpp, NextTri, PrevTri) scan
//       the ring and are O(k) in its size. A walker is a plain value
//       (no mesh pointer embedded): it becomes dangling the moment the mesh
//       it was obtained from is mutated, and every move takes the mesh it
//       should be read against as an explicit argument so that misuse
//       (walking a stale mesh) is visible at the call site rather than
//       hidden behind an embedded pointer.

package mesh

// TriWalker is a cursor positioned on the oriented triangle (A, B, C): the
// "current" directed edge is A→B, and C is its opposite vertex.
type TriWalker struct {
	A, B, C VertexID
}

// Tri returns the triangle this walker is positioned on as an (a, b, c)
// triple (not canonicalized — callers that need the canonical key should
// pass it through canonTri-equivalent queries like HasTriExact).
func (w TriWalker) Tri() (VertexID, VertexID, VertexID) { return w.A, w.B, w.C }

// WalkTri returns a TriWalker positioned on the oriented triangle (a, b, c),
// or false if it does not exist.
func (m *ComboMesh2[V, E, F]) WalkTri(a, b, c VertexID) (TriWalker, bool) {
	if _, ok := m.HasTriExact(a, b, c); !ok {
		return TriWalker{}, false
	}
	return TriWalker{A: a, B: b, C: c}, true
}

// NextEdge rotates the cursor forward within the same triangle: the new
// current edge is B→C.
func (w TriWalker) NextEdge() TriWalker { return TriWalker{A: w.B, B: w.C, C: w.A} }

// PrevEdge rotates the cursor backward within the same triangle: the new
// current edge is C→A.
func (w TriWalker) PrevEdge() TriWalker { return TriWalker{A: w.C, B: w.A, C: w.B} }

// Twin flips the cursor to the opposite-oriented representation of the same
// three vertices: (a, b, c) → (a, c, b).
func (w TriWalker) Twin() TriWalker { return TriWalker{A: w.A, B: w.C, C: w.B} }

// NextOpp steps to the next triangle in the ring of triangles sharing the
// current directed edge A→B. The ring wraps around, so a triangle alone on
// A→B steps to itself; reports false only if A→B does not exist or does
// not carry the walker's triangle.
func (m *ComboMesh2[V, E, F]) NextOpp(w TriWalker) (TriWalker, bool) {
	rec, ok := m.edges[EdgeKey{w.A, w.B}]
	if !ok {
		return TriWalker{}, false
	}
	c, ok := rec.triOpp.next(w.C)
	if !ok {
		return TriWalker{}, false
	}
	return TriWalker{A: w.A, B: w.B, C: c}, true
}

// PrevOpp steps to the previous triangle in the ring sharing A→B.
func (m *ComboMesh2[V, E, F]) PrevOpp(w TriWalker) (TriWalker, bool) {
	rec, ok := m.edges[EdgeKey{w.A, w.B}]
	if !ok {
		return TriWalker{}, false
	}
	c, ok := rec.triOpp.prev(w.C)
	if !ok {
		return TriWalker{}, false
	}
	return TriWalker{A: w.A, B: w.B, C: c}, true
}

// OnTwinEdge crosses from directed edge A→B to its twin B→A, landing on the
// first triangle in that edge's ring. Reports false if B→A does not exist
// or carries no triangle.
func (m *ComboMesh2[V, E, F]) OnTwinEdge(w TriWalker) (TriWalker, bool) {
	rec, ok := m.edges[EdgeKey{w.B, w.A}]
	if !ok {
		return TriWalker{}, false
	}
	c, ok := rec.triOpp.first()
	if !ok {
		return TriWalker{}, false
	}
	return TriWalker{A: w.B, B: w.A, C: c}, true
}

// TetWalker is a cursor positioned on the oriented tetrahedron whose
// current face is (A, B, C) with opposite vertex D — i.e. the walker
// represents the oriented 4-tuple (A, B, C, D).
type TetWalker struct {
	A, B, C, D VertexID
}

// Tet returns the tetrahedron this walker is positioned on.
func (w TetWalker) Tet() (VertexID, VertexID, VertexID, VertexID) {
	return w.A, w.B, w.C, w.D
}

// WalkTet returns a TetWalker positioned on the oriented tetrahedron
// (a, b, c, d), or false if it does not exist.
func (m *ComboMesh3[V, E, F, T]) WalkTet(a, b, c, d VertexID) (TetWalker, bool) {
	if _, ok := m.HasTetExact(a, b, c, d); !ok {
		return TetWalker{}, false
	}
	return TetWalker{A: a, B: b, C: c, D: d}, true
}

// NextEdge rotates the cursor's current face forward, keeping D fixed:
// (a, b, c, d) → (b, c, a, d). Tet() is unchanged.
func (w TetWalker) NextEdge() TetWalker {
	return TetWalker{A: w.B, B: w.C, C: w.A, D: w.D}
}

// PrevEdge rotates the cursor's current face backward, keeping D fixed:
// (a, b, c, d) → (c, a, b, d). Tet() is unchanged.
func (w TetWalker) PrevEdge() TetWalker {
	return TetWalker{A: w.C, B: w.A, C: w.B, D: w.D}
}

// FlipTri rotates to the other face of the same tetrahedron that shares the
// current edge A→B: (a, b, c, d) → (a, d, b, c). Tet() is unchanged (this
// is an even permutation of the same oriented solid).
func (w TetWalker) FlipTri() TetWalker {
	return TetWalker{A: w.A, B: w.D, C: w.B, D: w.C}
}

// Twin flips the cursor to the opposite-oriented tetrahedron spanning the
// same four vertices: (a, b, c, d) → (b, a, c, d).
func (w TetWalker) Twin() TetWalker {
	return TetWalker{A: w.B, B: w.A, C: w.C, D: w.D}
}

// NextTri steps to the next tetrahedron in the ring sharing the current
// face (A, B, C). The ring wraps around, so a tetrahedron alone on that
// face (always the case in an MWB mesh) steps to itself; reports false only
// if the face does not exist or does not carry the walker's tetrahedron.
func (m *ComboMesh3[V, E, F, T]) NextTri(w TetWalker) (TetWalker, bool) {
	rec, ok := m.tris[canonTri(w.A, w.B, w.C)]
	if !ok {
		return TetWalker{}, false
	}
	d, ok := rec.tetOpp.next(w.D)
	if !ok {
		return TetWalker{}, false
	}
	return TetWalker{A: w.A, B: w.B, C: w.C, D: d}, true
}

// PrevTri steps to the previous tetrahedron in the ring sharing face
// (A, B, C).
func (m *ComboMesh3[V, E, F, T]) PrevTri(w TetWalker) (TetWalker, bool) {
	rec, ok := m.tris[canonTri(w.A, w.B, w.C)]
	if !ok {
		return TetWalker{}, false
	}
	d, ok := rec.tetOpp.prev(w.D)
	if !ok {
		return TetWalker{}, false
	}
	return TetWalker{A: w.A, B: w.B, C: w.C, D: d}, true
}

// OnTwinTri crosses the current face (A, B, C) into the tetrahedron on its
// other side — the one built on the opposite-oriented face (A, C, B).
// Reports false if that face is a mesh boundary (no tetrahedron opposite).
func (m *ComboMesh3[V, E, F, T]) OnTwinTri(w TetWalker) (TetWalker, bool) {
	rec, ok := m.tris[canonTri(w.A, w.C, w.B)]
	if !ok {
		return TetWalker{}, false
	}
	d, ok := rec.tetOpp.first()
	if !ok {
		return TetWalker{}, false
	}
	return TetWalker{A: w.A, B: w.C, C: w.B, D: d}, true
}
