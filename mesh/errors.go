// SPDX-License-Identifier: MIT

package mesh

import "errors"

// Sentinel errors for mesh operations. Callers should compare with
// errors.Is rather than the package-level variables directly, the same
// convention this module's ancestor core package uses for its own sentinels.
var (
	// ErrRepeatedVertex indicates a triangle or tetrahedron was given a
	// repeated vertex id, which can never form a valid simplex.
	ErrRepeatedVertex = errors.New("mesh: repeated vertex in simplex")

	// ErrVertexNotFound indicates a referenced vertex does not exist.
	ErrVertexNotFound = errors.New("mesh: vertex not found")

	// ErrMWBViolation indicates an insertion would violate the
	// manifold-with-boundary cap (more than one triangle per directed edge,
	// or more than one tetrahedron per oriented face) and the caller used a
	// direct Add that does not perform the MWB cascade-replace.
	ErrMWBViolation = errors.New("mesh: manifold-with-boundary cap violated")
)
