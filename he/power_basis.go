package he

import (
	"fmt"
	"math/bits"
)

// PowerBasis is a struct storing powers of a ciphertext, indexed by their power.
type PowerBasis[Ct Operand] struct {
	Value map[int]Ct
}

// NewPowerBasis creates a new PowerBasis initialized with the first power.
func NewPowerBasis[Ct Operand](ct Ct) *PowerBasis[Ct] {
	return &PowerBasis[Ct]{Value: map[int]Ct{1: ct}}
}

// SplitDegree returns a * b = n such that the product tree computing X^n through
// X^a * X^b has multiplicative depth ceil(log2(n)).
func SplitDegree(n int) (a, b int) {
	if n&(n-1) == 0 {
		a, b = n/2, n/2
	} else {
		// largest power of two strictly smaller than n
		a = 1 << (bits.Len64(uint64(n)) - 1)
		b = n - a
	}
	return
}

// GenPower generates the n-th power of the basis, recursively generating and
// memoizing all the intermediate powers it requires.
func (p *PowerBasis[Ct]) GenPower(n int, eval Evaluator[Ct]) (err error) {

	if n < 1 {
		return fmt.Errorf("cannot GenPower: power must be at least 1 but is %d", n)
	}

	if _, ok := p.Value[n]; ok {
		return nil
	}

	a, b := SplitDegree(n)

	if err = p.GenPower(a, eval); err != nil {
		return
	}

	if err = p.GenPower(b, eval); err != nil {
		return
	}

	if p.Value[n], err = eval.MulNew(p.Value[a], p.Value[b]); err != nil {
		return fmt.Errorf("cannot GenPower: X^%d: %w", n, err)
	}

	return
}
