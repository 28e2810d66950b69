package ptxt

import (
	"fmt"
	"math/big"

	"github.com/benmxavier/HElib/he"
	"github.com/benmxavier/HElib/utils"
	"github.com/benmxavier/HElib/utils/bignum"
)

// Evaluator implements the operation surface of a BGV-style leveled evaluator on
// plaintext mirrors, with exact level and plaintext-space accounting: products
// consume one level, DivideByP consumes one level and one plaintext exponent,
// additive and scalar operations are free, and binary operations align their
// result to the smaller level and plaintext exponent of the two operands.
type Evaluator struct {
	params Parameters
}

var _ he.Evaluator[*Ciphertext] = (*Evaluator)(nil)

// NewEvaluator creates a new Evaluator for the given parameters.
func NewEvaluator(params Parameters) *Evaluator {
	return &Evaluator{params: params}
}

// GetParameters returns the parameters of the evaluator.
func (eval Evaluator) GetParameters() Parameters {
	return eval.params
}

func (eval Evaluator) prime() *big.Int {
	return bignum.NewInt(eval.params.PlaintextPrime())
}

func (eval Evaluator) modulus(exponent int) *big.Int {
	return bignum.Pow(eval.params.PlaintextPrime(), exponent)
}

func (eval Evaluator) checkBinary(op0, op1 *Ciphertext) error {
	if op0 == nil || op1 == nil {
		return fmt.Errorf("operands cannot be nil")
	}
	if op0.Slots() != op1.Slots() {
		return fmt.Errorf("operands have mismatched slot counts (%d and %d)", op0.Slots(), op1.Slots())
	}
	return nil
}

// CopyNew returns a deep copy of op.
func (eval Evaluator) CopyNew(op *Ciphertext) *Ciphertext {
	return op.CopyNew()
}

// Add computes op0 += op1, aligning op0 to the smaller level and plaintext
// exponent of the two operands.
func (eval Evaluator) Add(op0, op1 *Ciphertext) (err error) {
	return eval.addSub(op0, op1, false)
}

// Sub computes op0 -= op1, aligning op0 to the smaller level and plaintext
// exponent of the two operands.
func (eval Evaluator) Sub(op0, op1 *Ciphertext) (err error) {
	return eval.addSub(op0, op1, true)
}

func (eval Evaluator) addSub(op0, op1 *Ciphertext, sub bool) (err error) {

	if err = eval.checkBinary(op0, op1); err != nil {
		return fmt.Errorf("cannot AddSub: %w", err)
	}

	op0.level = utils.Min(op0.level, op1.level)
	op0.exponent = utils.Min(op0.exponent, op1.exponent)

	m := eval.modulus(op0.exponent)
	for i := range op0.Value {
		if sub {
			op0.Value[i].Sub(op0.Value[i], op1.Value[i])
		} else {
			op0.Value[i].Add(op0.Value[i], op1.Value[i])
		}
		op0.Value[i].Mod(op0.Value[i], m)
	}

	return
}

// AddScalar computes op += scalar in the plaintext space of op.
func (eval Evaluator) AddScalar(op *Ciphertext, scalar *big.Int) (err error) {

	m := eval.modulus(op.exponent)
	for i := range op.Value {
		op.Value[i].Add(op.Value[i], scalar)
		op.Value[i].Mod(op.Value[i], m)
	}

	return
}

// MulNew returns the slot-wise product of op0 and op1 one level below the
// smaller of their two levels, mirroring a relinearized multiplication followed
// by a rescale. It returns an error if either operand is already at level 0.
func (eval Evaluator) MulNew(op0, op1 *Ciphertext) (opOut *Ciphertext, err error) {

	if err = eval.checkBinary(op0, op1); err != nil {
		return nil, fmt.Errorf("cannot MulNew: %w", err)
	}

	level := utils.Min(op0.level, op1.level)
	if level < 1 {
		return nil, fmt.Errorf("cannot MulNew: operands at level 0 cannot be rescaled")
	}

	opOut = op0.CopyNew()
	opOut.level = level - 1
	opOut.exponent = utils.Min(op0.exponent, op1.exponent)

	m := eval.modulus(opOut.exponent)
	for i := range opOut.Value {
		opOut.Value[i].Mul(opOut.Value[i], op1.Value[i])
		opOut.Value[i].Mod(opOut.Value[i], m)
	}

	return
}

// MulScalarNew returns op * scalar at the level of op.
func (eval Evaluator) MulScalarNew(op *Ciphertext, scalar *big.Int) (opOut *Ciphertext, err error) {

	opOut = op.CopyNew()

	m := eval.modulus(opOut.exponent)
	for i := range opOut.Value {
		opOut.Value[i].Mul(opOut.Value[i], scalar)
		opOut.Value[i].Mod(opOut.Value[i], m)
	}

	return
}

// DivideByP divides every slot by the plaintext prime p, consuming one level and
// shrinking the plaintext space from p^R to p^(R-1). Slots that are not divisible
// by p produce garbage, not an error: whether the division is meaningful is a
// property of the encrypted values, which the scheme cannot inspect.
func (eval Evaluator) DivideByP(op *Ciphertext) (err error) {

	if op.level < 1 {
		return fmt.Errorf("cannot DivideByP: no level left")
	}

	if op.exponent < 2 {
		return fmt.Errorf("cannot DivideByP: plaintext space p^%d cannot shrink further", op.exponent)
	}

	p := eval.prime()
	for i := range op.Value {
		op.Value[i].Quo(op.Value[i], p)
	}

	op.level--
	op.exponent--

	return
}

// ReducePlaintextExponent reduces the plaintext space of op from p^R to p^e,
// e <= R, without consuming a level.
func (eval Evaluator) ReducePlaintextExponent(op *Ciphertext, e int) (err error) {

	if e < 1 || e > op.exponent {
		return fmt.Errorf("cannot ReducePlaintextExponent: e=%d not in [1, %d]", e, op.exponent)
	}

	m := eval.modulus(e)
	for i := range op.Value {
		op.Value[i].Mod(op.Value[i], m)
	}

	op.exponent = e

	return
}

// DropLevel lowers the level of op by levels without changing the plaintext.
// It panics if the result would be negative.
func (eval Evaluator) DropLevel(op *Ciphertext, levels int) {
	if levels < 0 || levels > op.level {
		panic(fmt.Sprintf("cannot DropLevel: dropping %d levels from level %d", levels, op.level))
	}
	op.level -= levels
}
