// SPDX-License-Identifier: MIT
//
// Package delaunay implements incremental 3D Delaunay tetrahedralization
// (Bowyer-Watson) over a mesh.ComboMesh0, producing a MWB-flagged
// mesh.ComboMesh3 whose tetrahedra satisfy the empty-circumsphere property.
//
// The algorithm keeps a ghost vertex (mesh.GhostVertexID) bounding every
// convex-hull face with a "ghost tetrahedron", so hull growth during
// incremental insertion is handled by the same cavity/retriangulate
// machinery as interior insertion — no special-cased hull-maintenance path
// (Shewchuk, "Lecture Notes on Delaunay Mesh Generation", §3.4).
package delaunay
