package ptxt

import (
	"fmt"
	"math/big"

	"github.com/benmxavier/HElib/utils/bignum"
)

// Encoder encodes integer slot values on Ciphertexts and decodes them back.
type Encoder struct {
	params Parameters
}

// NewEncoder creates a new Encoder for the given parameters.
func NewEncoder(params Parameters) *Encoder {
	return &Encoder{params: params}
}

// Encode sets the slots of ct to values, reduced modulo the plaintext space of
// ct. If fewer values than slots are given the remaining slots are set to zero.
func (ecd Encoder) Encode(values []uint64, ct *Ciphertext) (err error) {

	if len(values) > ct.Slots() {
		return fmt.Errorf("cannot Encode: %d values for %d slots", len(values), ct.Slots())
	}

	m := bignum.Pow(ecd.params.PlaintextPrime(), ct.PlaintextExponent())

	for i := range ct.Value {
		if i < len(values) {
			ct.Value[i].SetUint64(values[i])
			ct.Value[i].Mod(ct.Value[i], m)
		} else {
			ct.Value[i].SetUint64(0)
		}
	}

	return
}

// Decode writes the slot residues of ct, in [0, p^R) for the plaintext exponent
// R of ct, on values.
func (ecd Encoder) Decode(ct *Ciphertext, values []uint64) (err error) {

	if len(values) > ct.Slots() {
		return fmt.Errorf("cannot Decode: %d values for %d slots", len(values), ct.Slots())
	}

	m := bignum.Pow(ecd.params.PlaintextPrime(), ct.PlaintextExponent())
	if m.BitLen() > 64 {
		return fmt.Errorf("cannot Decode: plaintext modulus %s does not fit in a uint64", m)
	}

	tmp := new(big.Int)
	for i := range values {
		values[i] = tmp.Mod(ct.Value[i], m).Uint64()
	}

	return
}
