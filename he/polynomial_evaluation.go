package he

import (
	"fmt"

	"github.com/benmxavier/HElib/utils/bignum"
)

// EvaluatePolynomial homomorphically evaluates the integer polynomial pol on ct,
// consuming pol.Depth() levels. The polynomial coefficients are interpreted modulo
// the plaintext space of ct, so a polynomial built for precision p^e remains valid
// on ciphertexts with a smaller plaintext exponent.
//
// The evaluation builds only the powers reached by non-zero coefficients, each
// through a balanced product tree (see PowerBasis), and combines them with
// level-free scalar multiplications and additions.
func EvaluatePolynomial[Ct Operand](eval Evaluator[Ct], pol *bignum.IntPolynomial, ct Ct) (res Ct, err error) {

	deg := pol.Degree()

	if deg < 1 {
		return res, fmt.Errorf("cannot EvaluatePolynomial: polynomial of degree %d has no monomial to evaluate", deg)
	}

	pb := NewPowerBasis(ct)
	for i := 1; i <= deg; i++ {
		if pol.Coeffs[i].Sign() != 0 {
			if err = pb.GenPower(i, eval); err != nil {
				return res, fmt.Errorf("cannot EvaluatePolynomial: %w", err)
			}
		}
	}

	var assigned bool
	for i := deg; i >= 1; i-- {

		if pol.Coeffs[i].Sign() == 0 {
			continue
		}

		var term Ct
		if term, err = eval.MulScalarNew(pb.Value[i], pol.Coeffs[i]); err != nil {
			return res, fmt.Errorf("cannot EvaluatePolynomial: term X^%d: %w", i, err)
		}

		if !assigned {
			res, assigned = term, true
			continue
		}

		if err = eval.Add(res, term); err != nil {
			return res, fmt.Errorf("cannot EvaluatePolynomial: term X^%d: %w", i, err)
		}
	}

	if c := pol.Coeffs[0]; c.Sign() != 0 {
		if err = eval.AddScalar(res, c); err != nil {
			return res, fmt.Errorf("cannot EvaluatePolynomial: constant term: %w", err)
		}
	}

	return
}
