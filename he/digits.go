package he

import (
	"fmt"

	"github.com/benmxavier/HElib/utils"
	"github.com/benmxavier/HElib/utils/bignum"
)

// DigitExtractor extracts the base-p digits of homomorphically encrypted integers,
// the core step of BGV-style bootstrapping. It owns a cache of digit-extraction
// polynomials keyed by precision, so it should be instantiated once per scheme
// context and reused; it is however not safe for concurrent use, as each call
// exclusively owns its working ciphertexts but the polynomial cache is shared.
type DigitExtractor[Ct Operand] struct {
	eval Evaluator[Ct]
	p    uint64
	pols map[int]*bignum.IntPolynomial
}

// NewDigitExtractor creates a new DigitExtractor from the scheme context and an
// evaluator for the target ciphertext type.
func NewDigitExtractor[Ct Operand](params ParameterProvider, eval Evaluator[Ct]) *DigitExtractor[Ct] {
	return &DigitExtractor[Ct]{
		eval: eval,
		p:    params.PlaintextPrime(),
		pols: map[int]*bignum.IntPolynomial{},
	}
}

// DigitPolynomial returns the digit-extraction polynomial for precision e,
// building and caching it on first use. It returns nil for e <= 1 or p < 2,
// mirroring BuildDigitPolynomial.
func (dex *DigitExtractor[Ct]) DigitPolynomial(e int) (pol *bignum.IntPolynomial) {
	pol, ok := dex.pols[e]
	if !ok {
		pol = BuildDigitPolynomial(dex.p, e)
		dex.pols[e] = pol
	}
	return
}

// ExtractDigits returns r ciphertexts, the j-th one holding in each slot the j-th
// lowest base-p digit of the integer encrypted in the corresponding slot of ct.
// For p = 2 the digits are the usual bits; for p > 2 they follow the balanced
// convention, each digit being the centered representative in [-p/2, p-1-p/2] of
// its residue class.
//
// ExtractDigits assumes that the slots of ct hold integers modulo p^R, i.e. that
// only the free term of each slot is populated. This obligation cannot be checked
// homomorphically: if it is violated the outputs are silently no longer valid
// encryptions of anything meaningful.
//
// A requested digit count r <= 0 or greater than the plaintext exponent R of ct
// is silently clamped to R; callers rely on this, it is not an error.
//
// With shortcut set, digit j is reduced to the mod-p plaintext space and returned
// at the highest level reachable at its round. Otherwise digit j is returned
// modulo p^(R-j), still carrying higher-precision structure relative to its own
// modulus, and all r digits are aligned to a common level.
//
// Each round replays the peeling of all previous rounds on its own working copy,
// for a total of O(r^2) applications of the p-th-power step; errors from the
// underlying arithmetic (typically level exhaustion) abort the extraction and are
// returned as is.
func (dex *DigitExtractor[Ct]) ExtractDigits(ct Ct, r int, shortcut bool) (digits []Ct, err error) {

	eval := dex.eval

	if rr := ct.PlaintextExponent(); r <= 0 || r > rr {
		r = rr
	}

	// The p-th-power-mimicking step: direct squaring and cubing for p = 2, 3,
	// evaluation of the digit-extraction polynomial otherwise. For r = 1 no
	// peeling happens and no polynomial is needed.
	var pow func(Ct) (Ct, error)
	switch {
	case dex.p == 2:
		pow = func(op Ct) (Ct, error) {
			return eval.MulNew(op, op)
		}
	case dex.p == 3:
		pow = func(op Ct) (sq Ct, err error) {
			if sq, err = eval.MulNew(op, op); err != nil {
				return
			}
			return eval.MulNew(sq, op)
		}
	case r > 1:
		pol := dex.DigitPolynomial(r)
		pow = func(op Ct) (Ct, error) {
			return EvaluatePolynomial(eval, pol, op)
		}
	}

	digits = make([]Ct, r)
	w := make([]Ct, r)

	for i := 0; i < r; i++ {

		tmp := eval.CopyNew(ct)

		// Peel off the digits found by the previous rounds: raising w[j] to its
		// p-th power pins its lowest digit one precision level deeper, and the
		// subtract-then-divide step shifts the next digit into the free term.
		for j := 0; j < i; j++ {
			if w[j], err = pow(w[j]); err != nil {
				return nil, fmt.Errorf("cannot ExtractDigits: round %d: digit %d: %w", i, j, err)
			}
			if err = eval.Sub(tmp, w[j]); err != nil {
				return nil, fmt.Errorf("cannot ExtractDigits: round %d: digit %d: %w", i, j, err)
			}
			if err = eval.DivideByP(tmp); err != nil {
				return nil, fmt.Errorf("cannot ExtractDigits: round %d: digit %d: %w", i, j, err)
			}
		}

		w[i] = tmp // needed by the next rounds

		if shortcut {
			digit := eval.CopyNew(tmp)
			if err = eval.ReducePlaintextExponent(digit, 1); err != nil {
				return nil, fmt.Errorf("cannot ExtractDigits: round %d: %w", i, err)
			}
			digits[i] = digit
		}
	}

	// Without the shortcut the working residues themselves are the outputs: the
	// repeated powering has reduced w[j] to the j-th digit modulo its full
	// plaintext space p^(R-j). Only the levels need aligning.
	if !shortcut {
		levels := make([]int, r)
		for i := range w {
			levels[i] = w[i].Level()
		}
		bottom := utils.MinSlice(levels)
		for i := range w {
			digit := eval.CopyNew(w[i])
			eval.DropLevel(digit, levels[i]-bottom)
			digits[i] = digit
		}
	}

	return digits, nil
}
