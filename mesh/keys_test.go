// SPDX-License-Identifier: MIT

package mesh

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonTriRotationInvariant(t *testing.T) {
	a, b, c := VertexID(3), VertexID(1), VertexID(2)
	k1 := canonTri(a, b, c)
	k2 := canonTri(b, c, a)
	k3 := canonTri(c, a, b)
	require.Equal(t, k1, k2)
	require.Equal(t, k1, k3)
	require.Equal(t, VertexID(1), k1[0], "canonical form starts at the smallest id")
}

func TestCanonTriTwinDiffers(t *testing.T) {
	k := canonTri(1, 2, 3)
	twin := twinTri(k)
	require.NotEqual(t, k, twin)
	require.Equal(t, k, twinTri(twin), "twin is an involution")
}

func TestCanonTetPermutationInvariant(t *testing.T) {
	a, b, c, d := VertexID(4), VertexID(1), VertexID(3), VertexID(2)
	k := canonTet(a, b, c, d)
	// apply every even permutation and confirm it canonicalizes identically
	for _, p := range tetEvenPerms {
		v := [4]VertexID{a, b, c, d}
		got := canonTet(v[p[0]], v[p[1]], v[p[2]], v[p[3]])
		require.Equal(t, k, got)
	}
}

func TestCanonTetTwinDiffers(t *testing.T) {
	k := canonTet(1, 2, 3, 4)
	twin := twinTet(k)
	require.NotEqual(t, k, twin)
	require.Equal(t, k, twinTet(twin), "twin is an involution")
}

func TestTetEvenPermsHasTwelve(t *testing.T) {
	require.Len(t, tetEvenPerms, 12)
}
