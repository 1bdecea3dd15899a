// SPDX-License-Identifier: MIT
//
// File: mesh2.go
// Role: ComboMesh2 — adds oriented triangles on top of ComboMesh1. AddTri,
//       RemoveTri (with cascade from RemoveEdge/RemoveVertex), and the MWB
//       variant (at most one triangle per directed edge). TriWalker lives
//       in walker.go.

package mesh

import "sort"

// triRec holds a triangle's payload plus the ring of tetrahedra incident to
// it, represented as the set of opposite vertices d such that the oriented
// tetrahedron (a, b, c, d) exists, where (a, b, c) is this triangle's own
// canonical orientation.
type triRec[F any] struct {
	payload F
	tetOpp  *orderedSet[VertexID]
}

// ComboMesh2 adds oriented triangles to ComboMesh1.
type ComboMesh2[V, E, F any] struct {
	*ComboMesh1[V, E]
	defaultF func() F
	tris     map[TriKey]*triRec[F]
}

// NewComboMesh2 constructs an empty ComboMesh2.
func NewComboMesh2[V, E, F any](defaults ComboDefaults[V, E, F, any], opts ...ComboOption) *ComboMesh2[V, E, F] {
	m := &ComboMesh2[V, E, F]{
		tris: make(map[TriKey]*triRec[F]),
	}
	m.ComboMesh1 = NewComboMesh1[V, E](ComboDefaults[V, E, any, any]{Vertex: defaults.Vertex, Edge: defaults.Edge}, opts...)
	m.defaultF = defaults.Tri
	return m
}

func (m *ComboMesh2[V, E, F]) defaultTriValue() F {
	if m.defaultF != nil {
		return m.defaultF()
	}
	var zero F
	return zero
}

// AddTri inserts the oriented triangle (a, b, c). Each of its three
// directed edges is created if missing (with the default edge payload).
// If the mesh is MWB-flagged and any directed edge already carries a
// different triangle, AddTri fails with ErrMWBViolation — use ReplaceTri to
// perform the MWB cascade-replace instead.
func (m *ComboMesh2[V, E, F]) AddTri(a, b, c VertexID, value F) (F, bool, error) {
	var zero F
	if !distinct3(a, b, c) {
		return zero, false, ErrRepeatedVertex
	}
	key := canonTri(a, b, c)
	if m.cfg.mwb {
		for _, edge := range [][2]VertexID{{a, b}, {b, c}, {c, a}} {
			if rec, ok := m.edges[EdgeKey(edge)]; ok && rec.triOpp.len() > 0 {
				if _, already := m.HasTriExact(key[0], key[1], key[2]); !already {
					return zero, false, ErrMWBViolation
				}
			}
		}
	}
	if rec, ok := m.tris[key]; ok {
		prev := rec.payload
		rec.payload = value
		return prev, true, nil
	}
	m.ensureDirectedEdge(a, b)
	m.ensureDirectedEdge(b, c)
	m.ensureDirectedEdge(c, a)
	m.tris[key] = &triRec[F]{payload: value, tetOpp: newOrderedSet[VertexID]()}
	m.edges[EdgeKey{a, b}].triOpp.add(c)
	m.edges[EdgeKey{b, c}].triOpp.add(a)
	m.edges[EdgeKey{c, a}].triOpp.add(b)
	return zero, false, nil
}

// ReplaceTri inserts (a, b, c), first removing whichever triangle (if any)
// currently occupies one of its three directed edges — the MWB
// cascade-replace rule.
func (m *ComboMesh2[V, E, F]) ReplaceTri(a, b, c VertexID, value F) error {
	for _, edge := range [][2]VertexID{{a, b}, {b, c}, {c, a}} {
		if rec, ok := m.edges[EdgeKey(edge)]; ok {
			if opp, has := rec.triOpp.first(); has {
				k := canonTri(edge[0], edge[1], opp)
				if k != canonTri(a, b, c) {
					m.RemoveTri(k[0], k[1], k[2])
				}
			}
		}
	}
	_, _, err := m.AddTri(a, b, c, value)
	return err
}

func (m *ComboMesh2[V, E, F]) ensureDirectedEdge(a, b VertexID) {
	if !m.HasEdge(a, b) {
		m.edges[EdgeKey{a, b}] = &edgeRec[E]{payload: m.defaultEdgeValue(), triOpp: newOrderedSet[VertexID]()}
		m.vertices[a].edgesOut.add(b)
		m.vertices[b].edgesIn.add(a)
	}
}

// ExtendTris inserts each oriented triangle in keys, in order, via AddTri,
// pairing it with the corresponding entry of values (or the default
// triangle payload if values is shorter). Stops and returns the first
// error encountered, leaving every triangle inserted before it in place.
func (m *ComboMesh2[V, E, F]) ExtendTris(keys []TriKey, values []F) error {
	for i, k := range keys {
		v := m.defaultTriValue()
		if i < len(values) {
			v = values[i]
		}
		if _, _, err := m.AddTri(k[0], k[1], k[2], v); err != nil {
			return err
		}
	}
	return nil
}

// EdgeTriCount returns the number of triangles incident to the directed
// edge a→b (at most one in an MWB mesh), and whether a→b exists at all.
func (m *ComboMesh2[V, E, F]) EdgeTriCount(a, b VertexID) (int, bool) {
	rec, ok := m.edges[EdgeKey{a, b}]
	if !ok {
		return 0, false
	}
	return rec.triOpp.len(), true
}

// HasTriExact reports whether the oriented triangle (a, b, c) exists,
// returning its payload.
func (m *ComboMesh2[V, E, F]) HasTriExact(a, b, c VertexID) (F, bool) {
	rec, ok := m.tris[canonTri(a, b, c)]
	if !ok {
		var zero F
		return zero, false
	}
	return rec.payload, true
}

// removeTriRecord deletes the bare triangle. Callers must have already
// cascaded away any incident tetrahedra.
func (m *ComboMesh2[V, E, F]) removeTriRecord(a, b, c VertexID) (F, bool) {
	var zero F
	key := canonTri(a, b, c)
	rec, ok := m.tris[key]
	if !ok {
		return zero, false
	}
	delete(m.tris, key)
	ka, kb, kc := key[0], key[1], key[2]
	if e, ok := m.edges[EdgeKey{ka, kb}]; ok {
		e.triOpp.remove(kc)
	}
	if e, ok := m.edges[EdgeKey{kb, kc}]; ok {
		e.triOpp.remove(ka)
	}
	if e, ok := m.edges[EdgeKey{kc, ka}]; ok {
		e.triOpp.remove(kb)
	}
	return rec.payload, true
}

// RemoveTri deletes the oriented triangle (a, b, c). There is nothing above
// triangles to cascade into at this level; ComboMesh3 overrides this.
func (m *ComboMesh2[V, E, F]) RemoveTri(a, b, c VertexID) (F, bool) {
	return m.removeTriRecord(a, b, c)
}

// RemoveEdge deletes the directed edge a→b along with any triangle incident
// to it (cascade). There are no tetrahedra at this level; ComboMesh3
// overrides this to cascade into them as well.
func (m *ComboMesh2[V, E, F]) RemoveEdge(a, b VertexID) (E, bool) {
	if rec, ok := m.edges[EdgeKey{a, b}]; ok {
		// A directed edge may carry several triangles in the non-MWB case;
		// snapshot them all before mutating so the cascade doesn't range
		// over a ring while unsplicing it.
		opps := append([]VertexID(nil), rec.triOpp.list()...)
		for _, c := range opps {
			m.RemoveTri(a, b, c)
		}
	}
	return m.removeEdgeRecord(a, b)
}

// RemoveVertex removes v along with every edge and triangle touching it.
func (m *ComboMesh2[V, E, F]) RemoveVertex(v VertexID) bool {
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

// NumTris returns the number of live oriented triangles.
func (m *ComboMesh2[V, E, F]) NumTris() int { return len(m.tris) }

// EdgeTris returns the third vertices of every oriented triangle incident
// to the directed edge a→b, in ring order.
func (m *ComboMesh2[V, E, F]) EdgeTris(a, b VertexID) ([]VertexID, bool) {
	rec, ok := m.edges[EdgeKey{a, b}]
	if !ok {
		return nil, false
	}
	return append([]VertexID(nil), rec.triOpp.list()...), true
}

// VertexTris returns the canonical keys of every triangle incident to v.
func (m *ComboMesh2[V, E, F]) VertexTris(v VertexID) []TriKey {
	seen := make(map[TriKey]struct{})
	var out []TriKey
	rec, ok := m.vertices[v]
	if !ok {
		return nil
	}
	for _, b := range rec.edgesOut.list() {
		if e, ok := m.edges[EdgeKey{v, b}]; ok {
			for _, c := range e.triOpp.list() {
				k := canonTri(v, b, c)
				if _, dup := seen[k]; !dup {
					seen[k] = struct{}{}
					out = append(out, k)
				}
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return lessTet4(out[i], out[j]) })
	return out
}

func lessTet4(a, b TriKey) bool {
	for i := 0; i < 3; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// Tris returns all live triangle keys, sorted for deterministic iteration.
func (m *ComboMesh2[V, E, F]) Tris() []TriKey {
	out := make([]TriKey, 0, len(m.tris))
	for k := range m.tris {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return lessTet4(out[i], out[j]) })
	return out
}

// Clone returns a deep, unaliased copy of m.
func (m *ComboMesh2[V, E, F]) Clone() *ComboMesh2[V, E, F] {
	cp := &ComboMesh2[V, E, F]{
		ComboMesh1: m.ComboMesh1.Clone(),
		defaultF:   m.defaultF,
		tris:       make(map[TriKey]*triRec[F], len(m.tris)),
	}
	for k, rec := range m.tris {
		nr := &triRec[F]{payload: rec.payload, tetOpp: newOrderedSet[VertexID]()}
		for _, d := range rec.tetOpp.list() {
			nr.tetOpp.add(d)
		}
		cp.tris[k] = nr
	}
	return cp
}

// Clear resets the mesh to empty, preserving configuration.
func (m *ComboMesh2[V, E, F]) Clear() {
	m.ComboMesh1.Clear()
	m.tris = make(map[TriKey]*triRec[F])
}
