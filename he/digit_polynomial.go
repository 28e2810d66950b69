package he

import (
	"fmt"
	"math/big"

	"github.com/benmxavier/HElib/utils/bignum"
)

// BuildDigitPolynomial returns the degree-p polynomial f(x) = x^p + g(x) such that
// for every integer z = z0 + p^t*z1, with z0 one of the p centered representatives
// in [-p/2, p-1-p/2] and t < e, f(z) = z0 (mod p^(t+1)). Homomorphically evaluating
// f therefore mimics raising to the p-th power while pinning the lowest base-p
// digit at every intermediate precision, which is the operation digit extraction
// repeats.
//
// The correction g is obtained by interpolating g(z0) = z0 - z0^p (mod p^e) over
// the p centered representatives, with the interpolation carried out digit layer
// by digit layer (see bignum.InterpolateMod) so that the congruence holds for
// every t < e and not only at the top precision. The interpolation inputs are
// folded into balanced representatives to keep the coefficient growth small.
//
// The returned polynomial has degree exactly p with leading coefficient 1. It is
// deterministic in (p, e) and immutable, and can be cached and shared across
// extractions with the same scheme parameters.
//
// BuildDigitPolynomial returns nil when p < 2 or e <= 1: a single-digit plaintext
// space needs no correction polynomial.
func BuildDigitPolynomial(p uint64, e int) (pol *bignum.IntPolynomial) {

	if p < 2 || e <= 1 {
		return nil
	}

	n := int(p)
	pe := bignum.Pow(p, e)
	pBig := bignum.NewInt(p)
	bottom := bignum.NewInt(p / 2)

	// g(z) = z - z^p (mod p^e) on the centered representatives of Z/pZ.
	x := make([]*big.Int, n)
	y := make([]*big.Int, n)
	for j := 0; j < n; j++ {
		z := new(big.Int).Sub(bignum.NewInt(j), bottom)
		zp := new(big.Int).Exp(new(big.Int).Mod(z, pe), pBig, pe)
		x[j] = z
		y[j] = bignum.CenterMod(new(big.Int).Sub(z, zp), pe)
	}

	g, err := bignum.InterpolateMod(x, y, p, e)
	if err != nil {
		// The nodes are the p distinct residues modulo p, so interpolation
		// cannot fail on valid inputs.
		panic(fmt.Errorf("BuildDigitPolynomial: %w", err))
	}

	// Interpolating p points must yield degree <= p-1. Anything else is a defect
	// in the interpolation, not a recoverable condition.
	if g.Degree() >= n {
		panic(fmt.Errorf("BuildDigitPolynomial: correction polynomial has degree %d >= %d", g.Degree(), n))
	}

	coeffs := make([]*big.Int, n+1)
	for i := range coeffs {
		coeffs[i] = new(big.Int)
		if i < len(g.Coeffs) {
			coeffs[i].Set(g.Coeffs[i])
		}
	}
	coeffs[n].SetUint64(1)

	return &bignum.IntPolynomial{Coeffs: coeffs}
}
