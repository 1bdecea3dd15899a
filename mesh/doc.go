// SPDX-License-Identifier: MIT
//
// Package mesh implements a combinatorial 3D simplicial complex: vertices,
// directed edges, oriented triangles, and oriented tetrahedra, linked by an
// incidence structure that supports O(1)-amortized local queries and
// positional walkers (TriWalker, TetWalker) whose moves within a simplex are
// constant-time and whose ring moves are O(k) in the ring's size.
//
// There are four concrete levels, one per simplex dimension actually stored:
// ComboMesh0 (vertices only), ComboMesh1 (+edges), ComboMesh2 (+triangles),
// ComboMesh3 (+tetrahedra). Each level embeds the one below it directly —
// there is no capability-interface pyramid, matching the "one concrete
// record per variant" design adopted for this rewrite.
//
// Concurrency: none. A mesh is a single-owner, single-threaded value.
// Mutating it invalidates any Walker positioned on it; callers that need to
// fan a mesh out must Clone it first. This is a deliberate departure from
// the mutex-guarded style used elsewhere in this codebase's ancestry, not
// an oversight: a lock would mask misuse of a dangling walker instead of
// surfacing it.
package mesh
