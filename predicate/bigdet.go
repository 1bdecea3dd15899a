// SPDX-License-Identifier: MIT
//
// File: bigdet.go
// Role: exact-enough determinant evaluation via math/big.Float at extended
//       precision. No library in this module's dependency pack implements
//       adaptive exact geometric predicates (the closest relative, s2,
//       implements exact predicates only for its own unit-sphere domain);
//       math/big is the standard library's tool for arbitrary-precision
//       arithmetic and is used here for exactly that reason. See DESIGN.md.

package predicate

import "math/big"

// bigPrec is generous enough to make cancellation error unobservable for
// IEEE-754 double inputs through a 4x4 determinant of squared coordinates:
// each float64 mantissa is 53 bits, a lifted coordinate (sum of three
// squares) needs at most ~108 bits, and a 4x4 Laplace expansion sums 24
// products of four such terms — comfortably inside 1024 bits of headroom.
const bigPrec = 1024

func bf(f float64) *big.Float {
	return new(big.Float).SetPrec(bigPrec).SetFloat64(f)
}

func bfSub(a, b *big.Float) *big.Float { return new(big.Float).SetPrec(bigPrec).Sub(a, b) }
func bfAdd(a, b *big.Float) *big.Float { return new(big.Float).SetPrec(bigPrec).Add(a, b) }
func bfMul(a, b *big.Float) *big.Float { return new(big.Float).SetPrec(bigPrec).Mul(a, b) }

// det3Sign returns the sign of the 3x3 determinant of m, expanded by cofactors
// along the first row (exact, given enough precision headroom).
func det3Sign(m [3][3]*big.Float) int {
	t1 := bfSub(bfMul(m[1][1], m[2][2]), bfMul(m[1][2], m[2][1]))
	t2 := bfSub(bfMul(m[1][0], m[2][2]), bfMul(m[1][2], m[2][0]))
	t3 := bfSub(bfMul(m[1][0], m[2][1]), bfMul(m[1][1], m[2][0]))
	det := bfSub(bfAdd(bfMul(m[0][0], t1), bfMul(m[0][2], t3)), bfMul(m[0][1], t2))
	return det.Sign()
}

// det4Sign returns the sign of the 4x4 determinant of m, expanded by cofactors
// along the first row in terms of det3Sign on the 3x3 minors.
func det4Sign(m [4][4]*big.Float) int {
	minor := func(skipCol int) [3][3]*big.Float {
		var out [3][3]*big.Float
		for r := 1; r < 4; r++ {
			c := 0
			for cc := 0; cc < 4; cc++ {
				if cc == skipCol {
					continue
				}
				out[r-1][c] = m[r][cc]
				c++
			}
		}
		return out
	}
	// Sum_j (-1)^j * m[0][j] * det3(minor(j)), but we need the actual signed
	// value, not just per-term signs, so compute with big.Float directly.
	acc := new(big.Float).SetPrec(bigPrec)
	for j := 0; j < 4; j++ {
		d := det3Value(minor(j))
		term := bfMul(m[0][j], d)
		if j%2 == 1 {
			term = new(big.Float).SetPrec(bigPrec).Neg(term)
		}
		acc = bfAdd(acc, term)
	}
	return acc.Sign()
}

// det3Value is det3Sign's sibling that returns the signed value instead of
// just its sign, needed as a building block for det4Sign's cofactor sum.
func det3Value(m [3][3]*big.Float) *big.Float {
	t1 := bfSub(bfMul(m[1][1], m[2][2]), bfMul(m[1][2], m[2][1]))
	t2 := bfSub(bfMul(m[1][0], m[2][2]), bfMul(m[1][2], m[2][0]))
	t3 := bfSub(bfMul(m[1][0], m[2][1]), bfMul(m[1][1], m[2][0]))
	return bfSub(bfAdd(bfMul(m[0][0], t1), bfMul(m[0][2], t3)), bfMul(m[0][1], t2))
}
