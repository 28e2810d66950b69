package bignum

import (
	"fmt"
	"math/big"
)

// InterpolateMod returns an integer polynomial f of degree at most len(x)-1 with
// coefficients in [0, p^e) such that f(x[i]) = y[i] (mod p^e) for all i. The points
// x[i] must be distinct modulo the prime p.
//
// The interpolation is performed p-adic digit by p-adic digit rather than with a flat
// modulus p^e: f is assembled as f_0 + p*f_1 + ... + p^(e-1)*f_(e-1), each layer f_k
// having coefficients in [0, p) and interpolating the k-th base-p digit of the running
// residuals. Truncating the sum after its first k layers therefore interpolates the
// points modulo p^k, so f is congruence-preserving at every intermediate precision
// p^k with k <= e, not only at the top one.
func InterpolateMod(x, y []*big.Int, p uint64, e int) (f *IntPolynomial, err error) {

	n := len(x)

	switch {
	case p < 2:
		return nil, fmt.Errorf("cannot InterpolateMod: p=%d must be at least 2", p)
	case e < 1:
		return nil, fmt.Errorf("cannot InterpolateMod: e=%d must be at least 1", e)
	case n == 0 || n != len(y):
		return nil, fmt.Errorf("cannot InterpolateMod: invalid number of points (%d values for %d nodes)", len(y), n)
	case uint64(n) > p:
		return nil, fmt.Errorf("cannot InterpolateMod: %d nodes cannot be distinct modulo %d", n, p)
	}

	pBig := NewInt(p)

	// Lagrange basis modulo p, computed once and reused by every layer since the
	// nodes do not change.
	basis, err := lagrangeBasisMod(x, pBig)
	if err != nil {
		return nil, fmt.Errorf("cannot InterpolateMod: %w", err)
	}

	pe := Pow(p, e)

	// Running residuals, y[i] mod p^(e-k) after k peeling steps.
	res := make([]*big.Int, n)
	for i := range y {
		res[i] = new(big.Int).Mod(y[i], pe)
	}

	coeffs := make([]*big.Int, n)
	for i := range coeffs {
		coeffs[i] = new(big.Int)
	}

	pk := NewInt(1)          // p^k
	m := new(big.Int).Set(pe) // p^(e-k)
	tmp := new(big.Int)

	for k := 0; k < e; k++ {

		// Layer k interpolates the low-order digits of the residuals modulo p.
		layer := make([]*big.Int, n)
		for i := range layer {
			layer[i] = new(big.Int)
		}
		for i := 0; i < n; i++ {
			digit := tmp.Mod(res[i], pBig)
			for j := 0; j < n; j++ {
				layer[j].Add(layer[j], new(big.Int).Mul(digit, basis[i][j]))
			}
		}
		for j := 0; j < n; j++ {
			layer[j].Mod(layer[j], pBig)
			coeffs[j].Add(coeffs[j], tmp.Mul(layer[j], pk))
		}

		if k == e-1 {
			break
		}

		// Peel the layer off the residuals: the difference is divisible by p and its
		// exact quotient is the residual modulo p^(e-k-1).
		fk := &IntPolynomial{Coeffs: layer}
		for i := 0; i < n; i++ {
			res[i].Sub(res[i], fk.EvaluateMod(x[i], m))
			res[i].Mod(res[i], m)
			res[i].Quo(res[i], pBig)
		}

		pk.Mul(pk, pBig)
		m.Quo(m, pBig)
	}

	f = &IntPolynomial{Coeffs: coeffs}
	f.normalize()

	return f, nil
}

// lagrangeBasisMod returns, for each node x[i], the coefficients modulo p of the
// Lagrange basis polynomial L_i with L_i(x[i]) = 1 and L_i(x[j]) = 0 for j != i.
func lagrangeBasisMod(x []*big.Int, p *big.Int) (basis [][]*big.Int, err error) {

	n := len(x)

	xmod := make([]*big.Int, n)
	for i := range x {
		xmod[i] = new(big.Int).Mod(x[i], p)
	}

	// N(X) = prod_i (X - x[i]) mod p.
	prod := make([]*big.Int, n+1)
	prod[0] = NewInt(1)
	for i := 1; i <= n; i++ {
		prod[i] = new(big.Int)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j > 0; j-- {
			prod[j].Sub(prod[j-1], new(big.Int).Mul(prod[j], xmod[i]))
			prod[j].Mod(prod[j], p)
		}
		prod[0].Neg(new(big.Int).Mul(prod[0], xmod[i]))
		prod[0].Mod(prod[0], p)
	}

	basis = make([][]*big.Int, n)
	tmp := new(big.Int)

	for i := 0; i < n; i++ {

		// Synthetic division of N by (X - x[i]).
		q := make([]*big.Int, n)
		q[n-1] = new(big.Int).Set(prod[n])
		for j := n - 1; j > 0; j-- {
			q[j-1] = new(big.Int).Mul(q[j], xmod[i])
			q[j-1].Add(q[j-1], prod[j])
			q[j-1].Mod(q[j-1], p)
		}

		// Normalization constant 1 / prod_{j != i} (x[i] - x[j]) mod p.
		denom := NewInt(1)
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			tmp.Sub(xmod[i], xmod[j])
			denom.Mul(denom, tmp)
			denom.Mod(denom, p)
		}
		if denom.ModInverse(denom, p) == nil {
			return nil, fmt.Errorf("nodes are not distinct modulo %s", p)
		}

		basis[i] = q
		for j := range q {
			q[j].Mul(q[j], denom)
			q[j].Mod(q[j], p)
		}
	}

	return basis, nil
}
