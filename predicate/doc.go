// SPDX-License-Identifier: MIT
//
// Package predicate implements the two orientation predicates the Delaunay
// builder depends on: Orient3D (which side of a plane a point falls on) and
// InSphere3D (whether a point lies inside, on, or outside the circumsphere
// of a tetrahedron).
//
// Both predicates evaluate the governing determinant with math/big.Float at
// extended precision rather than plain float64, so that rounding error
// never flips a sign near zero. When the exact determinant is truly zero —
// a genuinely degenerate configuration, not a rounding artifact — both
// predicates fall back to a small perturbation scheme (see perturb.go) so
// that a caller never has to special-case a "don't know" answer: after
// perturbation, every call returns a definite -1 or +1 for the four/five
// input points a predicate actually cares about distinguishing — never 0.
package predicate
