// SPDX-License-Identifier: MIT

package delaunay

import (
	"errors"
	"math/rand/v2"
)

// ErrDegenerateInput is returned if the locate step's BFS exhausts the
// mesh without finding a tet whose ghost-aware circumsphere contains the
// point being inserted. Exact, perturbed predicates guarantee this never
// happens for a correctly-maintained incidence structure — every point not
// yet inserted lies inside the ghost-bounded hull — so this is a last-resort
// invariant check, not a normal control-flow outcome.
var ErrDegenerateInput = errors.New("delaunay: locate step found no containing tetrahedron")

type config struct {
	rng *rand.Rand
}

// Option configures Tetrahedralize.
type Option func(*config)

// WithSeed fixes the insertion-order shuffle's PCG seed, for reproducible
// runs. Without it, Tetrahedralize inserts points in their given vertex-id
// order, which is deterministic but can pathologically slow the cavity
// search for already-sorted coordinate input; WithSeed lets callers opt into
// a randomized order instead.
func WithSeed(seed1, seed2 uint64) Option {
	return func(cfg *config) {
		cfg.rng = rand.New(rand.NewPCG(seed1, seed2))
	}
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
