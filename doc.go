// Package combomesh implements a combinatorial 3D mesh library: oriented
// simplicial 3-complexes (vertices, directed edges, oriented triangles,
// oriented tetrahedra) linked by an incidence engine, plus a 3D Delaunay
// tetrahedralizer built on top of it.
//
// The module is organized into three packages:
//
//	mesh/      — IdAllocator, the four simplex stores (folded into one
//	             ComboMeshN record per level), ring-based incidence queries,
//	             and the TriWalker/TetWalker positional cursors.
//	predicate/ — Orient3D/InSphere3D: exact, symbolically-perturbed
//	             sign-of-determinant tests that never report a degenerate
//	             tie, plus their ghost-vertex-aware variants.
//	delaunay/  — Tetrahedralize: incremental Bowyer-Watson insertion with
//	             ghost tetrahedra encoding the convex hull boundary.
//
// A typical caller builds a vertex-only mesh.ComboMesh0, calls
// delaunay.Tetrahedralize on it, and queries the resulting MWB-flagged
// mesh.ComboMesh3 for its tetrahedra, hull faces, or incidence rings.
package combomesh
