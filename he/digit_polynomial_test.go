package he_test

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zeebo/blake3"

	"github.com/benmxavier/HElib/he"
	"github.com/benmxavier/HElib/utils/bignum"
	"github.com/benmxavier/HElib/utils/sampling"
)

func TestDigitPolynomialCongruence(t *testing.T) {

	prng, err := sampling.NewKeyedPRNG([]byte{'d', 'i', 'g', 'i', 't'})
	require.NoError(t, err)

	bound := bignum.Pow(2, 32)

	for _, p := range []uint64{2, 3, 5, 7, 13} {
		for _, e := range []int{2, 3, 4} {

			t.Run(fmt.Sprintf("p=%d/e=%d", p, e), func(t *testing.T) {

				pol := he.BuildDigitPolynomial(p, e)
				require.NotNil(t, pol)

				// f(z0 + p^t*z1) = z0 (mod p^(t+1)) for every centered
				// representative z0 and every t < e. The argument must agree
				// with z0 modulo p, so the perturbation is a multiple of p^t
				// for t >= 1 and of p itself for t = 0.
				for j := uint64(0); j < p; j++ {

					z0 := big.NewInt(int64(j) - int64(p/2))

					for tt := 0; tt < e; tt++ {

						step := bignum.Pow(p, tt)
						if tt == 0 {
							step = bignum.NewInt(p)
						}
						pt1 := bignum.Pow(p, tt+1)

						for k := 0; k < 8; k++ {

							z1 := bignum.RandInt(prng, bound)
							if k&1 == 1 {
								z1.Neg(z1)
							}

							z := new(big.Int).Add(z0, z1.Mul(z1, step))

							got := pol.EvaluateMod(z, pt1)
							want := new(big.Int).Mod(z0, pt1)
							require.Equal(t, 0, got.Cmp(want), "z0=%s t=%d z=%s", z0, tt, z)
						}
					}
				}
			})
		}
	}
}

func TestDigitPolynomialDegree(t *testing.T) {

	for _, p := range []uint64{2, 3, 5, 7, 11, 13} {
		for _, e := range []int{2, 3} {
			pol := he.BuildDigitPolynomial(p, e)
			require.NotNil(t, pol)
			require.Equal(t, int(p), pol.Degree())
			require.Equal(t, 0, pol.Coeffs[p].Cmp(big.NewInt(1)))
		}
	}
}

func TestDigitPolynomialNoOp(t *testing.T) {
	require.Nil(t, he.BuildDigitPolynomial(0, 3))
	require.Nil(t, he.BuildDigitPolynomial(1, 3))
	require.Nil(t, he.BuildDigitPolynomial(5, 0))
	require.Nil(t, he.BuildDigitPolynomial(5, 1))
}

func TestDigitPolynomialDeterminism(t *testing.T) {

	for _, p := range []uint64{2, 5, 13} {

		pol0 := he.BuildDigitPolynomial(p, 3)
		pol1 := he.BuildDigitPolynomial(p, 3)

		require.True(t, pol0.Equal(pol1))

		// bit-identical coefficient sequences
		require.Equal(t,
			blake3.Sum256([]byte(pol0.String())),
			blake3.Sum256([]byte(pol1.String())))
	}
}
