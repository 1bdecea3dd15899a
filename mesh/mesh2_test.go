// SPDX-License-Identifier: MIT

package mesh

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestMesh2() *ComboMesh2[int, int, int] {
	return NewComboMesh2[int, int, int](ComboDefaults[int, int, int, any]{})
}

func TestAddTriCascadesEdges(t *testing.T) {
	m := newTestMesh2()
	v := m.ExtendVertices([]Position{{X: 0}, {X: 1}, {X: 2}}, nil)
	a, b, c := v[0], v[1], v[2]

	_, replaced, err := m.AddTri(a, b, c, 5)
	require.NoError(t, err)
	require.False(t, replaced)
	require.Equal(t, 3, m.NumEdges())

	_, ok := m.HasTriExact(a, b, c)
	require.True(t, ok)
}

func TestExtendTrisStopsOnFirstError(t *testing.T) {
	m := newTestMesh2()
	v := m.ExtendVertices([]Position{{X: 0}, {X: 1}, {X: 2}, {X: 3}}, nil)
	a, b, c, d := v[0], v[1], v[2], v[3]

	err := m.ExtendTris([]TriKey{{a, b, c}, {a, a, b}, {b, c, d}}, []int{1, 2})
	require.ErrorIs(t, err, ErrRepeatedVertex)

	_, ok := m.HasTriExact(a, b, c)
	require.True(t, ok)
	_, ok = m.HasTriExact(b, c, d)
	require.False(t, ok, "nothing after the bad key is attempted")
}

func TestEdgeTriCount(t *testing.T) {
	m := newTestMesh2()
	v := m.ExtendVertices([]Position{{X: 0}, {X: 1}, {X: 2}}, nil)
	a, b, c := v[0], v[1], v[2]

	_, ok := m.EdgeTriCount(a, b)
	require.False(t, ok, "edge doesn't exist yet")

	_, _, err := m.AddTri(a, b, c, 1)
	require.NoError(t, err)

	n, ok := m.EdgeTriCount(a, b)
	require.True(t, ok)
	require.Equal(t, 1, n)
}

func TestMWBRejectsSecondTriOnSameEdge(t *testing.T) {
	m := NewComboMesh2[int, int, int](ComboDefaults[int, int, int, any]{}, WithMWB())
	v := m.ExtendVertices([]Position{{X: 0}, {X: 1}, {X: 2}, {X: 3}}, nil)
	a, b, c, d := v[0], v[1], v[2], v[3]

	_, _, err := m.AddTri(a, b, c, 1)
	require.NoError(t, err)

	_, _, err = m.AddTri(a, b, d, 2)
	require.ErrorIs(t, err, ErrMWBViolation)

	require.NoError(t, m.ReplaceTri(a, b, d, 2))
	_, stillThere := m.HasTriExact(a, b, c)
	require.False(t, stillThere)
}

func TestWithoutMWBAllowsMultipleTrisPerEdge(t *testing.T) {
	m := NewComboMesh2[int, int, int](ComboDefaults[int, int, int, any]{}, WithoutMWB())
	v := m.ExtendVertices([]Position{{X: 0}, {X: 1}, {X: 2}, {X: 3}}, nil)
	a, b, c, d := v[0], v[1], v[2], v[3]

	_, _, err := m.AddTri(a, b, c, 1)
	require.NoError(t, err)
	_, _, err = m.AddTri(a, b, d, 2)
	require.NoError(t, err)

	n, ok := m.EdgeTriCount(a, b)
	require.True(t, ok)
	require.Equal(t, 2, n)
}
