package ptxt

import (
	"math/big"
)

// Ciphertext is a plaintext stand-in for a leveled ciphertext: a vector of slot
// residues in [0, p^exponent) together with the level and plaintext-exponent
// metadata that the real scheme would carry. The metadata is only mutated by the
// Evaluator, which keeps the accounting consistent with the slot values.
type Ciphertext struct {
	Value    []*big.Int
	level    int
	exponent int
}

// NewCiphertext returns an all-zero ciphertext at the given level, with the
// plaintext space p^R of fresh operands.
func NewCiphertext(params Parameters, level int) (ct *Ciphertext) {
	ct = &Ciphertext{
		Value:    make([]*big.Int, params.Slots()),
		level:    level,
		exponent: params.PlaintextExponent(),
	}
	for i := range ct.Value {
		ct.Value[i] = new(big.Int)
	}
	return
}

// Level returns the remaining modulus-chain budget of the ciphertext.
func (ct *Ciphertext) Level() int {
	return ct.level
}

// PlaintextExponent returns the exponent R of the plaintext space p^R of the
// ciphertext, i.e. its effective digit count.
func (ct *Ciphertext) PlaintextExponent() int {
	return ct.exponent
}

// Slots returns the number of slots of the ciphertext.
func (ct *Ciphertext) Slots() int {
	return len(ct.Value)
}

// CopyNew returns a deep copy of the ciphertext.
func (ct *Ciphertext) CopyNew() (copy *Ciphertext) {
	copy = &Ciphertext{
		Value:    make([]*big.Int, len(ct.Value)),
		level:    ct.level,
		exponent: ct.exponent,
	}
	for i := range ct.Value {
		copy.Value[i] = new(big.Int).Set(ct.Value[i])
	}
	return
}
