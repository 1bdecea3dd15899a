// SPDX-License-Identifier: MIT
//
// File: locate.go
// Role: the "Locate" step of Bowyer-Watson — greedy nearest-vertex walk
//       across the edge graph, plus the Orient3D wrapper used to fix the
//       seed tet's orientation. The greedy walk followed by a BFS fallback
//       (the BFS half lives in cavity.go's locateSeedTet) is the standard
//       point-location strategy for incremental Delaunay insertion
//       (Shewchuk, "Lecture Notes on Delaunay Mesh Generation", §3.4).

package delaunay

import (
	"github.com/gomesh3d/combomesh/mesh"
	"github.com/gomesh3d/combomesh/predicate"
)

func distSq(a, b mesh.Position) float64 {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return dx*dx + dy*dy + dz*dz
}

// neighbors returns the distinct vertices reachable from v by one directed
// edge in either direction — the adjacency nearestVertex walks across. The
// ghost vertex is never returned: it carries no real position, so it must
// never be mistaken for a genuine local minimum of distance to target.
func neighbors[V, E, F, T any](m *mesh.ComboMesh3[V, E, F, T], v mesh.VertexID) []mesh.VertexID {
	out, _ := m.VertexEdgesOut(v)
	in, _ := m.VertexEdgesIn(v)
	seen := make(map[mesh.VertexID]struct{}, len(out)+len(in))
	res := make([]mesh.VertexID, 0, len(out)+len(in))
	for _, group := range [2][]mesh.VertexID{out, in} {
		for _, id := range group {
			if id == mesh.GhostVertexID {
				continue
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			res = append(res, id)
		}
	}
	return res
}

// nearestVertex greedily walks from start across the edge graph toward the
// vertex minimizing squared distance to target: at each step it moves to
// whichever neighbor of the current vertex is closest to target, stopping
// once no neighbor improves on the current vertex.
func nearestVertex[V, E, F, T any](m *mesh.ComboMesh3[V, E, F, T], start mesh.VertexID, target mesh.Position) mesh.VertexID {
	cur := start
	curPos, _ := m.Position(cur)
	curDist := distSq(curPos, target)
	for {
		best := cur
		bestDist := curDist
		for _, nb := range neighbors(m, cur) {
			pos, ok := m.Position(nb)
			if !ok {
				continue
			}
			if d := distSq(pos, target); d < bestDist {
				best, bestDist = nb, d
			}
		}
		if best == cur {
			return cur
		}
		cur, curDist = best, bestDist
	}
}

// orientedPositive reports whether the oriented tetrahedron (a, b, c, d)
// is positively oriented, per the vertices' stored positions.
func orientedPositive[V, E, F, T any](m *mesh.ComboMesh3[V, E, F, T], a, b, c, d mesh.VertexID) bool {
	pa, _ := m.Position(a)
	pb, _ := m.Position(b)
	pc, _ := m.Position(c)
	pd, _ := m.Position(d)
	return predicate.Orient3D(uint32(a), uint32(b), uint32(c), uint32(d), pa, pb, pc, pd) > 0
}
