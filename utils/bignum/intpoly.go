package bignum

import (
	"fmt"
	"math/big"
	"math/bits"
	"strings"
)

// IntPolynomial is a polynomial with exact integer coefficients in the monomial
// basis, Coeffs[i] being the coefficient of x^i. Trailing zero coefficients are
// trimmed at construction, so Degree is always the index of the last coefficient.
type IntPolynomial struct {
	Coeffs []*big.Int
}

// NewIntPolynomial creates a new IntPolynomial from the input coefficients.
// Accepted types are []int64, []uint64 and []*big.Int. The coefficients are
// deep-copied.
func NewIntPolynomial(coeffs interface{}) (p *IntPolynomial) {

	var coefficients []*big.Int

	switch coeffs := coeffs.(type) {
	case []int64:
		coefficients = make([]*big.Int, len(coeffs))
		for i := range coeffs {
			coefficients[i] = big.NewInt(coeffs[i])
		}
	case []uint64:
		coefficients = make([]*big.Int, len(coeffs))
		for i := range coeffs {
			coefficients[i] = new(big.Int).SetUint64(coeffs[i])
		}
	case []*big.Int:
		coefficients = make([]*big.Int, len(coeffs))
		for i := range coeffs {
			coefficients[i] = new(big.Int)
			if coeffs[i] != nil {
				coefficients[i].Set(coeffs[i])
			}
		}
	default:
		panic(fmt.Sprintf("cannot NewIntPolynomial: accepted coefficient types are []int64, []uint64 or []*big.Int, but is %T", coeffs))
	}

	p = &IntPolynomial{Coeffs: coefficients}
	p.normalize()
	return
}

func (p *IntPolynomial) normalize() {
	n := len(p.Coeffs)
	for n > 1 && p.Coeffs[n-1].Sign() == 0 {
		n--
	}
	p.Coeffs = p.Coeffs[:n]
}

// Degree returns the degree of the polynomial.
func (p *IntPolynomial) Degree() int {
	return len(p.Coeffs) - 1
}

// Depth returns the number of sequential ciphertext multiplications needed to
// evaluate the polynomial through a power basis.
func (p *IntPolynomial) Depth() int {
	if d := p.Degree(); d > 1 {
		return bits.Len64(uint64(d - 1))
	}
	return 0
}

// Evaluate returns p(x) computed exactly over the integers.
func (p *IntPolynomial) Evaluate(x *big.Int) (y *big.Int) {
	y = new(big.Int)
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		y.Mul(y, x)
		y.Add(y, p.Coeffs[i])
	}
	return
}

// EvaluateMod returns p(x) mod m, in [0, m).
func (p *IntPolynomial) EvaluateMod(x, m *big.Int) (y *big.Int) {
	y = new(big.Int)
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		y.Mul(y, x)
		y.Add(y, p.Coeffs[i])
		y.Mod(y, m)
	}
	return
}

// Equal returns true if the two polynomials have identical coefficients.
func (p *IntPolynomial) Equal(other *IntPolynomial) bool {
	if len(p.Coeffs) != len(other.Coeffs) {
		return false
	}
	for i := range p.Coeffs {
		if p.Coeffs[i].Cmp(other.Coeffs[i]) != 0 {
			return false
		}
	}
	return true
}

func (p *IntPolynomial) String() string {
	terms := make([]string, len(p.Coeffs))
	for i := range p.Coeffs {
		terms[i] = p.Coeffs[i].String()
	}
	return "[" + strings.Join(terms, ", ") + "]"
}
