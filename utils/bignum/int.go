// Package bignum implements exact arbitrary-precision integer arithmetic helpers,
// integer-coefficient polynomials and precision-aware modular interpolation.
package bignum

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// NewInt allocates a new *big.Int.
// Accepted types are: string, uint, uint64, int64, int, *big.Float or *big.Int.
func NewInt(x interface{}) (y *big.Int) {

	y = new(big.Int)

	if x == nil {
		return
	}

	switch x := x.(type) {
	case string:
		y.SetString(x, 0)
	case uint:
		y.SetUint64(uint64(x))
	case uint64:
		y.SetUint64(x)
	case int64:
		y.SetInt64(x)
	case int:
		y.SetInt64(int64(x))
	case *big.Float:
		x.Int(y)
	case *big.Int:
		y.Set(x)
	default:
		panic(fmt.Sprintf("cannot NewInt: accepted types are string, uint, uint64, int, int64, *big.Float, *big.Int, but is %T", x))
	}

	return
}

// RandInt generates a random Int in [0, max-1].
func RandInt(reader io.Reader, max *big.Int) (n *big.Int) {
	var err error
	if n, err = rand.Int(reader, max); err != nil {
		panic("error: crypto/rand/bigint")
	}
	return
}

// Pow returns base^exp as a new *big.Int. It panics if exp < 0.
func Pow(base uint64, exp int) (y *big.Int) {
	if exp < 0 {
		panic("cannot Pow: exp must be non-negative")
	}
	return new(big.Int).Exp(NewInt(base), NewInt(exp), nil)
}

// CenterMod returns the balanced representative of x modulo m, i.e. the unique
// integer y = x (mod m) folded into (-m/2, m/2]. It panics if m <= 0.
func CenterMod(x, m *big.Int) (y *big.Int) {
	if m.Sign() <= 0 {
		panic("cannot CenterMod: m must be positive")
	}
	y = new(big.Int).Mod(x, m) // y in [0, m)
	if new(big.Int).Lsh(y, 1).Cmp(m) > 0 {
		y.Sub(y, m)
	}
	return
}
