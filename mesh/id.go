// SPDX-License-Identifier: MIT

package mesh

import "math"

// VertexID uniquely identifies a vertex within a mesh. IDs are dense,
// monotonically increasing starting at zero, and never recycled: removing a
// vertex does not free its ID for reuse by a later AddVertex.
type VertexID uint32

// noVertex is the largest VertexID, reserved as a sentinel; it backs
// GhostVertexID, the ghost-aware Delaunay builder's point at infinity.
const noVertex VertexID = math.MaxUint32

// idAllocator hands out VertexIDs in strictly increasing order.
//
// It carries no mutex. combomesh meshes are single-owner, single-threaded
// structures by design (see the package doc), so the allocator is not safe
// for concurrent use on purpose, not by oversight.
type idAllocator struct {
	next VertexID
}

// alloc reserves and returns the next VertexID.
func (a *idAllocator) alloc() VertexID {
	id := a.next
	a.next++
	return id
}

// count reports how many ids have been allocated so far (including ones
// whose vertex has since been removed).
func (a *idAllocator) count() int { return int(a.next) }
