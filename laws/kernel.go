// SPDX-License-Identifier: MIT

package laws

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/microsim/matrix"
	"github.com/katalvlaran/microsim/vector"
)

func inverseIdentity(rng *rand.Rand, eps float64) error {
	a, err := matrix.Random(rng, 2, 2, -9, 10)
	if err != nil {
		return err
	}
	inv, err := matrix.Inverse2(a, matrix.WithSingularEpsilon(eps))
	if err != nil {
		return err
	}
	if inv.Singular {
		return nil
	}
	prod, err := matrix.Mul(a, inv.Inverse)
	if err != nil {
		return err
	}
	id, err := matrix.NewIdentity(2)
	if err != nil {
		return err
	}
	ok, err := matrix.AllClose(prod, id, 0, identityTol)
	if err != nil {
		return err
	}
	if !ok {
		return violation("A·A⁻¹ ≠ I for A=%v", a)
	}

	return nil
}

func detMultiplicative(rng *rand.Rand, _ float64) error {
	a, err := matrix.Random(rng, 2, 2, -9, 10)
	if err != nil {
		return err
	}
	b, err := matrix.Random(rng, 2, 2, -9, 10)
	if err != nil {
		return err
	}
	ab, err := matrix.Mul(a, b)
	if err != nil {
		return err
	}
	da, _ := matrix.Det2(a)
	db, _ := matrix.Det2(b)
	dab, err := matrix.Det2(ab)
	if err != nil {
		return err
	}
	if !closeRel(dab, da*db, detRelTol) {
		return violation("det(AB)=%v, det(A)·det(B)=%v", dab, da*db)
	}

	return nil
}

func detRowOps(rng *rand.Rand, _ float64) error {
	n := 2 + rng.IntN(3)
	a, err := matrix.Random(rng, n, n, -5, 6)
	if err != nil {
		return err
	}
	d, err := matrix.Det(a)
	if err != nil {
		return err
	}
	i := rng.IntN(n)
	j := (i + 1 + rng.IntN(n-1)) % n
	k := float64(rng.IntN(7) - 3)

	swapped, err := matrix.SwapRows(a, i, j)
	if err != nil {
		return err
	}
	scaled, err := matrix.ScaleRow(a, i, k)
	if err != nil {
		return err
	}
	added, err := matrix.AddRowMultiple(a, i, j, k)
	if err != nil {
		return err
	}
	for _, c := range []struct {
		name string
		m    *matrix.Dense
		want float64
	}{
		{"swap", swapped, -d},
		{"scale", scaled, k * d},
		{"add", added, d},
	} {
		got, err := matrix.Det(c.m)
		if err != nil {
			return err
		}
		if !closeRel(got, c.want, detRelTol) {
			return violation("%s rows %d,%d k=%v: det=%v, want %v", c.name, i, j, k, got, c.want)
		}
	}

	return nil
}

func transposeInvolution(rng *rand.Rand, _ float64) error {
	a, err := matrix.Random(rng, 1+rng.IntN(6), 1+rng.IntN(6), -100, 100)
	if err != nil {
		return err
	}
	t, err := matrix.Transpose(a)
	if err != nil {
		return err
	}
	tt, err := matrix.Transpose(t)
	if err != nil {
		return err
	}
	if !matrix.Equal(tt, a) {
		return violation("(Aᵀ)ᵀ ≠ A for A=%v", a)
	}

	return nil
}

func cosineExtremes(rng *rand.Rand, _ float64) error {
	u := make([]float64, 1+rng.IntN(8))
	for i := range u {
		u[i] = rng.NormFloat64() * 10
	}
	if n, err := vector.Norm(u); err != nil || n == 0 {
		return err
	}
	neg, err := vector.Scale(u, -1)
	if err != nil {
		return err
	}
	self, err := vector.CosineSimilarity(u, u)
	if err != nil {
		return err
	}
	opp, err := vector.CosineSimilarity(u, neg)
	if err != nil {
		return err
	}
	if !closeRel(self, 1, cosineTol) || !closeRel(opp, -1, cosineTol) {
		return violation("cos(u,u)=%v cos(u,-u)=%v for u=%v", self, opp, u)
	}

	return nil
}

// det3Agrees checks Sarrus and the pivoted elimination used for larger
// sizes against gonum's LU determinant.
func det3Agrees(rng *rand.Rand, _ float64) error {
	a, err := matrix.Random(rng, 3, 3, -9, 10)
	if err != nil {
		return err
	}
	d3, err := matrix.Det3(a)
	if err != nil {
		return err
	}
	g, err := matrix.ToGonum(a)
	if err != nil {
		return err
	}
	if want := mat.Det(g); !closeRel(d3, want, detRelTol) {
		return violation("Det3=%v gonum=%v for A=%v", d3, want, a)
	}

	n := 4 + rng.IntN(3)
	b, err := matrix.Random(rng, n, n, -9, 10)
	if err != nil {
		return err
	}
	d, err := matrix.Det(b)
	if err != nil {
		return err
	}
	if g, err = matrix.ToGonum(b); err != nil {
		return err
	}
	rows, err := matrix.ToRows(b)
	if err != nil {
		return err
	}
	// Elimination error scales with the pivots, not with det itself.
	if want := mat.Det(g); !closeRel(d, want, detRelTol*hadamardBound(rows)) {
		return violation("Det=%v gonum=%v for %dx%d A=%v", d, want, n, n, b)
	}

	return nil
}

// hadamardBound is the product of row norms, an upper bound on |det|.
func hadamardBound(rows [][]float64) float64 {
	bound := 1.0
	for _, r := range rows {
		bound *= math.Max(1, floats.Norm(r, 2))
	}
	return bound
}

func inverseAgrees(rng *rand.Rand, eps float64) error {
	a, err := matrix.Random(rng, 2, 2, -9, 10)
	if err != nil {
		return err
	}
	inv2, err := matrix.Inverse2(a, matrix.WithSingularEpsilon(eps))
	if err != nil {
		return err
	}
	if inv2.Singular {
		return nil
	}
	inv, err := matrix.Inverse(a)
	if err != nil {
		return err
	}
	ok, err := matrix.AllClose(inv, inv2.Inverse, identityTol, identityTol)
	if err != nil {
		return err
	}
	if !ok {
		return violation("Inverse=%v Inverse2=%v for A=%v", inv, inv2.Inverse, a)
	}

	return nil
}
