// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/microsim/matrix"
)

// sinks keep results alive.
var (
	sinkM *matrix.Dense
	sinkF float64
	sinkI matrix.Inversion
)

func benchRandom(b *testing.B, seed uint64, r, c int) *matrix.Dense {
	b.Helper()
	m, err := matrix.Random(rand.New(rand.NewPCG(seed, seed)), r, c, -5, 6)
	if err != nil {
		b.Fatal(err)
	}
	return m
}

// The closed forms against the LU path they shortcut.
func BenchmarkDeterminant(b *testing.B) {
	m2 := benchRandom(b, 1, 2, 2)
	m3 := benchRandom(b, 2, 3, 3)
	m10 := benchRandom(b, 3, 10, 10)
	cases := []struct {
		name string
		fn   func() (float64, error)
	}{
		{"Det2", func() (float64, error) { return matrix.Det2(m2) }},
		{"Det/n=2", func() (float64, error) { return matrix.Det(m2) }},
		{"Det3", func() (float64, error) { return matrix.Det3(m3) }},
		{"Det/n=3", func() (float64, error) { return matrix.Det(m3) }},
		{"Det/n=10", func() (float64, error) { return matrix.Det(m10) }},
	}
	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := tc.fn()
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}

func BenchmarkInverse2(b *testing.B) {
	m, err := matrix.RandomInvertible2(rand.New(rand.NewPCG(9, 9)), -5, 6, matrix.DefaultMinAbsDet)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		inv, err := matrix.Inverse2(m)
		if err != nil {
			b.Fatal(err)
		}
		sinkI = inv
	}
}

// BenchmarkLowRankProduct covers the LoRA sizes the lora visualization offers.
func BenchmarkLowRankProduct(b *testing.B) {
	for _, d := range []int{16, 32, 64} {
		for _, r := range []int{1, 4, 16} {
			b.Run(fmt.Sprintf("d=%d/r=%d", d, r), func(b *testing.B) {
				B := benchRandom(b, uint64(d), d, r)
				A := benchRandom(b, uint64(r), r, d)
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					dw, err := matrix.LowRankProduct(B, A)
					if err != nil {
						b.Fatal(err)
					}
					sinkM = dw
				}
			})
		}
	}
}
