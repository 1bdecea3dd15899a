// SPDX-License-Identifier: MIT
//
// File: mesh3.go
// Role: ComboMesh3 — adds oriented tetrahedra on top of ComboMesh2. AddTet,
//       RemoveTet (with cascade from RemoveTri/RemoveEdge/RemoveVertex), the
//       MWB variant (at most one tetrahedron per oriented face), ToComboMesh2,
//       and HullFaces.

package mesh

import "sort"

type tetRec[T any] struct {
	payload T
}

// ComboMesh3 adds oriented tetrahedra to ComboMesh2.
type ComboMesh3[V, E, F, T any] struct {
	*ComboMesh2[V, E, F]
	defaultT func() T
	tets     map[TetKey]*tetRec[T]
}

// NewComboMesh3 constructs an empty ComboMesh3.
func NewComboMesh3[V, E, F, T any](defaults ComboDefaults[V, E, F, T], opts ...ComboOption) *ComboMesh3[V, E, F, T] {
	m := &ComboMesh3[V, E, F, T]{
		tets: make(map[TetKey]*tetRec[T]),
	}
	m.ComboMesh2 = NewComboMesh2[V, E, F](ComboDefaults[V, E, F, any]{Vertex: defaults.Vertex, Edge: defaults.Edge, Tri: defaults.Tri}, opts...)
	m.defaultT = defaults.Tet
	return m
}

func (m *ComboMesh3[V, E, F, T]) defaultTetValue() T {
	if m.defaultT != nil {
		return m.defaultT()
	}
	var zero T
	return zero
}

// TetFaceTriples returns the four oriented face vertex-triples of the
// oriented tetrahedron (a, b, c, d), in the same order as the opposite
// vertex it's paired against: index i's triple is opposite the i-th vertex
// of (a, b, c, d). Exported so callers outside this package (the Delaunay
// builder's cavity search) can enumerate a tet's faces and look up each
// face's neighbor via TriTets on the reversed (twin) triple, without
// needing access to the canonical-key machinery directly.
func TetFaceTriples(a, b, c, d VertexID) [4][3]VertexID {
	return [4][3]VertexID{
		{b, d, c}, // opposite a
		{a, c, d}, // opposite b
		{a, d, b}, // opposite c
		{a, b, c}, // opposite d
	}
}

// faces returns the four canonical face keys of oriented tet (a, b, c, d),
// matching the derived face table: F3=(a,b,c)/d, F2=(a,d,b)/c, F1=(a,c,d)/b,
// F0=(b,d,c)/a.
func faces(a, b, c, d VertexID) [4]TriKey {
	return [4]TriKey{
		canonTri(b, d, c), // F0, opposite a
		canonTri(a, c, d), // F1, opposite b
		canonTri(a, d, b), // F2, opposite c
		canonTri(a, b, c), // F3, opposite d
	}
}

// AddTet inserts the oriented tetrahedron (a, b, c, d). Each of its four
// oriented faces is created if missing (with the default triangle payload,
// which recursively ensures the edges beneath it). If the mesh is
// MWB-flagged and any face already carries a different tetrahedron, AddTet
// fails with ErrMWBViolation.
func (m *ComboMesh3[V, E, F, T]) AddTet(a, b, c, d VertexID, value T) (T, bool, error) {
	var zero T
	if !distinct4(a, b, c, d) {
		return zero, false, ErrRepeatedVertex
	}
	key := canonTet(a, b, c, d)
	fs := faces(a, b, c, d)
	if m.cfg.mwb {
		for _, f := range fs {
			if rec, ok := m.tris[f]; ok && rec.tetOpp.len() > 0 {
				if _, already := m.tets[key]; !already {
					return zero, false, ErrMWBViolation
				}
			}
		}
	}
	if rec, ok := m.tets[key]; ok {
		prev := rec.payload
		rec.payload = value
		return prev, true, nil
	}
	opp := [4]VertexID{a, b, c, d} // opposite vertex for face i is opp[i]
	for i, f := range fs {
		m.ensureTri(f)
		m.tris[f].tetOpp.add(opp[i])
	}
	m.tets[key] = &tetRec[T]{payload: value}
	return zero, false, nil
}

// ReplaceTet inserts (a, b, c, d), first removing whichever tetrahedron (if
// any) currently occupies one of its four oriented faces — the MWB
// cascade-replace rule.
func (m *ComboMesh3[V, E, F, T]) ReplaceTet(a, b, c, d VertexID, value T) error {
	key := canonTet(a, b, c, d)
	for _, f := range faces(a, b, c, d) {
		if rec, ok := m.tris[f]; ok {
			if opp, has := rec.tetOpp.first(); has {
				k := canonTet(f[0], f[1], f[2], opp)
				if k != key {
					m.RemoveTet(k[0], k[1], k[2], k[3])
				}
			}
		}
	}
	_, _, err := m.AddTet(a, b, c, d, value)
	return err
}

// ExtendTets inserts each oriented tetrahedron in keys, in order, via
// AddTet, pairing it with the corresponding entry of values (or the
// default tet payload if values is shorter). In an MWB mesh this performs
// the plain Add (not the cascade-Replace) semantics per key — use
// ReplaceTet directly for cascade-replace insertion. Stops and returns the
// first error encountered, leaving every tetrahedron inserted before it in
// place.
func (m *ComboMesh3[V, E, F, T]) ExtendTets(keys []TetKey, values []T) error {
	for i, k := range keys {
		v := m.defaultTetValue()
		if i < len(values) {
			v = values[i]
		}
		if _, _, err := m.AddTet(k[0], k[1], k[2], k[3], v); err != nil {
			return err
		}
	}
	return nil
}

// TriTetCount returns the number of tetrahedra incident to the oriented
// triangle (a, b, c) (at most one in an MWB mesh), and whether that
// triangle exists at all.
func (m *ComboMesh3[V, E, F, T]) TriTetCount(a, b, c VertexID) (int, bool) {
	rec, ok := m.tris[canonTri(a, b, c)]
	if !ok {
		return 0, false
	}
	return rec.tetOpp.len(), true
}

func (m *ComboMesh3[V, E, F, T]) ensureTri(key TriKey) {
	if _, ok := m.tris[key]; ok {
		return
	}
	a, b, c := key[0], key[1], key[2]
	m.ensureDirectedEdge(a, b)
	m.ensureDirectedEdge(b, c)
	m.ensureDirectedEdge(c, a)
	m.tris[key] = &triRec[F]{payload: m.defaultTriValue(), tetOpp: newOrderedSet[VertexID]()}
	m.edges[EdgeKey{a, b}].triOpp.add(c)
	m.edges[EdgeKey{b, c}].triOpp.add(a)
	m.edges[EdgeKey{c, a}].triOpp.add(b)
}

// HasTetExact reports whether the oriented tetrahedron (a, b, c, d) exists.
func (m *ComboMesh3[V, E, F, T]) HasTetExact(a, b, c, d VertexID) (T, bool) {
	rec, ok := m.tets[canonTet(a, b, c, d)]
	if !ok {
		var zero T
		return zero, false
	}
	return rec.payload, true
}

// removeTetRecord deletes the bare tetrahedron.
func (m *ComboMesh3[V, E, F, T]) removeTetRecord(a, b, c, d VertexID) (T, bool) {
	var zero T
	key := canonTet(a, b, c, d)
	rec, ok := m.tets[key]
	if !ok {
		return zero, false
	}
	delete(m.tets, key)
	opp := [4]VertexID{key[0], key[1], key[2], key[3]}
	for i, f := range faces(opp[0], opp[1], opp[2], opp[3]) {
		if tri, ok := m.tris[f]; ok {
			tri.tetOpp.remove(opp[i])
		}
	}
	return rec.payload, true
}

// RemoveTet deletes the oriented tetrahedron (a, b, c, d). This is the top
// of the cascade chain: nothing depends on a tetrahedron.
func (m *ComboMesh3[V, E, F, T]) RemoveTet(a, b, c, d VertexID) (T, bool) {
	return m.removeTetRecord(a, b, c, d)
}

// RemoveTri deletes the oriented triangle (a, b, c) along with any
// tetrahedra incident to it.
func (m *ComboMesh3[V, E, F, T]) RemoveTri(a, b, c VertexID) (F, bool) {
	key := canonTri(a, b, c)
	if rec, ok := m.tris[key]; ok {
		opps := append([]VertexID(nil), rec.tetOpp.list()...)
		for _, d := range opps {
			m.RemoveTet(key[0], key[1], key[2], d)
		}
	}
	return m.removeTriRecord(a, b, c)
}

// RemoveEdge deletes the directed edge a→b, cascading through any
// triangles (and transitively tetrahedra) incident to it.
func (m *ComboMesh3[V, E, F, T]) RemoveEdge(a, b VertexID) (E, bool) {
	if rec, ok := m.edges[EdgeKey{a, b}]; ok {
		opps := append([]VertexID(nil), rec.triOpp.list()...)
		for _, c := range opps {
			m.RemoveTri(a, b, c)
		}
	}
	return m.removeEdgeRecord(a, b)
}

// RemoveVertex removes v along with every edge, triangle, and tetrahedron
// touching it.
func (m *ComboMesh3[V, E, F, T]) RemoveVertex(v VertexID) bool {
	rec, ok := m.vertices[v]
	if !ok {
		return false
	}
	out := append([]VertexID(nil), rec.edgesOut.list()...)
	in := append([]VertexID(nil), rec.edgesIn.list()...)
	for _, b := range out {
		m.RemoveEdge(v, b)
	}
	for _, a := range in {
		m.RemoveEdge(a, v)
	}
	return m.removeVertexRecord(v)
}

// NumTets returns the number of live oriented tetrahedra.
func (m *ComboMesh3[V, E, F, T]) NumTets() int { return len(m.tets) }

// TriTets returns the opposite vertices of every tetrahedron incident to
// the oriented triangle (a, b, c) (at most one in an MWB mesh).
func (m *ComboMesh3[V, E, F, T]) TriTets(a, b, c VertexID) []VertexID {
	rec, ok := m.tris[canonTri(a, b, c)]
	if !ok {
		return nil
	}
	return append([]VertexID(nil), rec.tetOpp.list()...)
}

// EdgeTets returns the canonical keys of every tetrahedron incident to the
// directed edge a→b.
func (m *ComboMesh3[V, E, F, T]) EdgeTets(a, b VertexID) []TetKey {
	seen := make(map[TetKey]struct{})
	var out []TetKey
	cs, ok := m.EdgeTris(a, b)
	if !ok {
		return nil
	}
	for _, c := range cs {
		for _, d := range m.TriTets(a, b, c) {
			k := canonTet(a, b, c, d)
			if _, dup := seen[k]; !dup {
				seen[k] = struct{}{}
				out = append(out, k)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return lessTet(out[i], out[j]) })
	return out
}

// VertexTets returns the canonical keys of every tetrahedron incident to v.
func (m *ComboMesh3[V, E, F, T]) VertexTets(v VertexID) []TetKey {
	seen := make(map[TetKey]struct{})
	var out []TetKey
	for _, tri := range m.VertexTris(v) {
		for _, d := range m.TriTets(tri[0], tri[1], tri[2]) {
			k := canonTet(tri[0], tri[1], tri[2], d)
			if _, dup := seen[k]; !dup {
				seen[k] = struct{}{}
				out = append(out, k)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return lessTet(out[i], out[j]) })
	return out
}

// Tets returns all live tetrahedron keys, sorted for deterministic
// iteration.
func (m *ComboMesh3[V, E, F, T]) Tets() []TetKey {
	out := make([]TetKey, 0, len(m.tets))
	for k := range m.tets {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return lessTet(out[i], out[j]) })
	return out
}

// HullFaces returns the canonical keys of every triangle that bounds
// exactly one tetrahedron while its opposite-oriented twin bounds none —
// the boundary of the solid region, i.e. the convex hull faces of a
// Delaunay tetrahedralization.
func (m *ComboMesh3[V, E, F, T]) HullFaces() []TriKey {
	var out []TriKey
	for k, rec := range m.tris {
		if rec.tetOpp.len() != 1 {
			continue
		}
		if tw, ok := m.tris[twinTri(k)]; ok && tw.tetOpp.len() > 0 {
			continue
		}
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return lessTet4(out[i], out[j]) })
	return out
}

// ToComboMesh2 drops every tetrahedron, returning a copy of the underlying
// 2-complex; the source mesh is not changed.
func (m *ComboMesh3[V, E, F, T]) ToComboMesh2() *ComboMesh2[V, E, F] {
	cp := m.ComboMesh2.Clone()
	for _, k := range cp.Tris() {
		cp.tris[k].tetOpp = newOrderedSet[VertexID]()
	}
	return cp
}

// Clone returns a deep, unaliased copy of m.
func (m *ComboMesh3[V, E, F, T]) Clone() *ComboMesh3[V, E, F, T] {
	cp := &ComboMesh3[V, E, F, T]{
		ComboMesh2: m.ComboMesh2.Clone(),
		defaultT:   m.defaultT,
		tets:       make(map[TetKey]*tetRec[T], len(m.tets)),
	}
	for k, rec := range m.tets {
		cp.tets[k] = &tetRec[T]{payload: rec.payload}
	}
	return cp
}

// Clear resets the mesh to empty, preserving configuration.
func (m *ComboMesh3[V, E, F, T]) Clear() {
	m.ComboMesh2.Clear()
	m.tets = make(map[TetKey]*tetRec[T])
}
