// SPDX-License-Identifier: MIT

package mesh

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func newTestMesh3() *ComboMesh3[int, int, int, int] {
	return NewComboMesh3[int, int, int, int](ComboDefaults[int, int, int, int]{})
}

func TestAddTetCascadesEdgesAndTris(t *testing.T) {
	m := newTestMesh3()
	v := m.ExtendVertices([]Position{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1},
	}, nil)
	a, b, c, d := v[0], v[1], v[2], v[3]

	_, replaced, err := m.AddTet(a, b, c, d, 1)
	require.NoError(t, err)
	require.False(t, replaced)

	require.Equal(t, 1, m.NumTets())
	require.Equal(t, 4, m.NumTris())
	require.Equal(t, 12, m.NumEdges(), "each of 4 faces contributes 3 distinct directed edges")

	_, ok := m.HasTetExact(a, b, c, d)
	require.True(t, ok)
}

func TestRemoveVertexCascadesToTet(t *testing.T) {
	m := newTestMesh3()
	v := m.ExtendVertices([]Position{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1},
	}, nil)
	a, b, c, d := v[0], v[1], v[2], v[3]
	_, _, err := m.AddTet(a, b, c, d, 1)
	require.NoError(t, err)

	require.True(t, m.RemoveVertex(a))
	require.Equal(t, 0, m.NumTets())
	require.False(t, m.HasVertex(a))

	_, stillThere := m.HasTetExact(a, b, c, d)
	require.False(t, stillThere)
}

func TestMWBRejectsSecondTetOnSameFace(t *testing.T) {
	m := NewComboMesh3[int, int, int, int](ComboDefaults[int, int, int, int]{}, WithMWB())
	v := m.ExtendVertices([]Position{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1}, {X: -1, Y: -1, Z: -1},
	}, nil)
	a, b, c, d, e := v[0], v[1], v[2], v[3], v[4]

	_, _, err := m.AddTet(a, b, c, d, 1)
	require.NoError(t, err)

	// (a, b, d, e) shares the oriented face (a, b, d)? it doesn't — construct
	// a tet sharing the exact oriented face (a, b, c) with a different fourth
	// vertex to trigger the cap.
	_, _, err = m.AddTet(a, b, c, e, 2)
	require.ErrorIs(t, err, ErrMWBViolation)

	require.NoError(t, m.ReplaceTet(a, b, c, e, 2))
	_, stillThere := m.HasTetExact(a, b, c, d)
	require.False(t, stillThere, "ReplaceTet evicted the prior occupant of face (a,b,c)")
}

func TestHullFacesOfSingleTet(t *testing.T) {
	m := newTestMesh3()
	v := m.ExtendVertices([]Position{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1},
	}, nil)
	a, b, c, d := v[0], v[1], v[2], v[3]
	_, _, err := m.AddTet(a, b, c, d, 1)
	require.NoError(t, err)

	require.Len(t, m.HullFaces(), 4, "a lone tet's every face is on the hull")
}

func TestToComboMesh2DropsTets(t *testing.T) {
	m := newTestMesh3()
	v := m.ExtendVertices([]Position{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1},
	}, nil)
	a, b, c, d := v[0], v[1], v[2], v[3]
	_, _, err := m.AddTet(a, b, c, d, 1)
	require.NoError(t, err)

	m2 := m.ToComboMesh2()
	require.Equal(t, 4, m2.NumTris())
	require.Equal(t, 1, m.NumTets(), "converting does not mutate the source mesh")
}

func TestExtendTetsInsertsInOrderAndStopsOnFirstError(t *testing.T) {
	m := newTestMesh3()
	v := m.ExtendVertices([]Position{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1}, {X: 2, Y: 2, Z: 2},
	}, nil)
	a, b, c, d, e := v[0], v[1], v[2], v[3], v[4]

	err := m.ExtendTets([]TetKey{{a, b, c, d}, {a, a, b, c}, {a, b, c, e}}, []int{10, 20})
	require.ErrorIs(t, err, ErrRepeatedVertex)
	require.Equal(t, 1, m.NumTets(), "the valid tet before the bad key stays; nothing after it is attempted")

	payload, ok := m.HasTetExact(a, b, c, d)
	require.True(t, ok)
	require.Equal(t, 10, payload)
}

func TestTriTetCount(t *testing.T) {
	m := newTestMesh3()
	v := m.ExtendVertices([]Position{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1},
	}, nil)
	a, b, c, d := v[0], v[1], v[2], v[3]

	_, ok := m.TriTetCount(a, b, c)
	require.False(t, ok, "face doesn't exist yet")

	_, _, err := m.AddTet(a, b, c, d, 1)
	require.NoError(t, err)

	n, ok := m.TriTetCount(a, b, c)
	require.True(t, ok)
	require.Equal(t, 1, n)
}

func TestClonePreservesIndependence(t *testing.T) {
	m := newTestMesh3()
	v := m.ExtendVertices([]Position{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}}, nil)
	cp := m.Clone()
	cp.AddVertex(r3.Vec{X: 9, Y: 9, Z: 9}, 0)
	require.Equal(t, 2, m.NumVertices())
	require.Equal(t, 3, cp.NumVertices())
	_ = v
}
