// SPDX-License-Identifier: MIT

package delaunay

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gomesh3d/combomesh/mesh"
	"github.com/gomesh3d/combomesh/predicate"
)

func newVertexMesh() *mesh.ComboMesh0[int] {
	return mesh.NewComboMesh0[int](mesh.ComboDefaults[int, any, any, any]{})
}

func defaults() mesh.ComboDefaults[int, int, int, int] {
	return mesh.ComboDefaults[int, int, int, int]{}
}

func TestTetrahedralizeFewerThanFourVertices(t *testing.T) {
	for n := 0; n <= 3; n++ {
		v := newVertexMesh()
		for i := 0; i < n; i++ {
			v.AddVertex(mesh.Position{X: float64(i)}, i)
		}
		out, err := Tetrahedralize(v, defaults())
		require.NoError(t, err)
		require.Equal(t, n, out.NumVertices())
		require.Equal(t, 0, out.NumTets())
	}
}

func TestTetrahedralizeFourPoints(t *testing.T) {
	v := newVertexMesh()
	ids := v.ExtendVertices([]mesh.Position{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1},
	}, nil)

	out, err := Tetrahedralize(v, defaults())
	require.NoError(t, err)
	require.Equal(t, 1, out.NumTets())

	tets := out.Tets()
	require.Len(t, tets, 1)
	require.ElementsMatch(t, ids, tets[0][:])
}

func TestTetrahedralizeSixPoints(t *testing.T) {
	v := newVertexMesh()
	ids := v.ExtendVertices([]mesh.Position{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1},
		{X: 1.5, Y: 1.5, Z: 1.0}, {X: 0.5, Y: 0.5, Z: 0.5},
	}, nil)
	center := ids[5]

	out, err := Tetrahedralize(v, defaults())
	require.NoError(t, err)
	require.Equal(t, 6, out.NumTets())

	for _, k := range out.Tets() {
		require.Contains(t, k[:], center)
	}
	assertEmptyCircumsphere(t, out, ids)
}

func TestTetrahedralizeHullCoversBoundary(t *testing.T) {
	v := newVertexMesh()
	v.ExtendVertices([]mesh.Position{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1},
		{X: 1.5, Y: 1.5, Z: 1.0}, {X: 0.5, Y: 0.5, Z: 0.5},
	}, nil)

	out, err := Tetrahedralize(v, defaults())
	require.NoError(t, err)

	hull := out.HullFaces()
	require.NotEmpty(t, hull)
	for _, f := range hull {
		require.Len(t, out.TriTets(f[0], f[1], f[2]), 1)
	}
}

func TestTetrahedralizeRandomPointsSatisfyEmptyCircumsphere(t *testing.T) {
	v := newVertexMesh()
	rng := rand.New(rand.NewPCG(1, 2))
	var ids []mesh.VertexID
	for i := 0; i < 60; i++ {
		pos := mesh.Position{
			X: rng.Float64()*20 - 10,
			Y: rng.Float64()*20 - 10,
			Z: rng.Float64()*20 - 10,
		}
		ids = append(ids, v.AddVertex(pos, i))
	}

	out, err := Tetrahedralize(v, defaults(), WithSeed(7, 11))
	require.NoError(t, err)
	require.NotEqual(t, 0, out.NumTets())
	assertEmptyCircumsphere(t, out, ids)
}

func TestTetrahedralizePermutationInvariant(t *testing.T) {
	positions := []mesh.Position{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1},
		{X: 1.5, Y: 1.5, Z: 1.0}, {X: 0.5, Y: 0.5, Z: 0.5}, {X: -1, Y: -1, Z: -1},
	}

	v1 := newVertexMesh()
	v1.ExtendVertices(positions, nil)
	out1, err := Tetrahedralize(v1, defaults())
	require.NoError(t, err)

	v2 := newVertexMesh()
	v2.ExtendVertices(positions, nil)
	out2, err := Tetrahedralize(v2, defaults(), WithSeed(42, 99))
	require.NoError(t, err)

	require.Equal(t, out1.NumTets(), out2.NumTets())
	assertEmptyCircumsphere(t, out1, out1.Vertices())
	assertEmptyCircumsphere(t, out2, out2.Vertices())
}

// assertEmptyCircumsphere checks the Delaunay correctness property: for
// every solid tet T and every vertex p not in T, InSphere3D(T, p) is
// strictly false.
func assertEmptyCircumsphere(t *testing.T, out *mesh.ComboMesh3[int, int, int, int], ids []mesh.VertexID) {
	t.Helper()
	for _, k := range out.Tets() {
		member := map[mesh.VertexID]struct{}{k[0]: {}, k[1]: {}, k[2]: {}, k[3]: {}}
		pa, _ := out.Position(k[0])
		pb, _ := out.Position(k[1])
		pc, _ := out.Position(k[2])
		pd, _ := out.Position(k[3])
		for _, p := range ids {
			if _, in := member[p]; in {
				continue
			}
			pp, ok := out.Position(p)
			if !ok {
				continue
			}
			s := predicate.InSphere3D(uint32(k[0]), uint32(k[1]), uint32(k[2]), uint32(k[3]), uint32(p), pa, pb, pc, pd, pp)
			require.Equal(t, -1, s, "vertex %d inside circumsphere of tet %v", p, k)
		}
	}
}
