// Package ptxt implements a plaintext mirror of a BGV-style leveled ciphertext:
// a vector of integer slots modulo p^R together with exact level and
// plaintext-space accounting, exposing the same operation surface as an encrypted
// evaluator but computing on clear values.
//
// It serves as the reference backend for the circuits of the he package: circuit
// semantics, level consumption and plaintext-space transitions can be developed
// and tested against it exactly, without keys, noise or encryption. It is not an
// encryption scheme and offers no confidentiality.
package ptxt

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/google/go-cmp/cmp"

	"github.com/benmxavier/HElib/utils/bignum"
)

// ParametersLiteral is a literal representation of reference-backend parameters.
//
// P is the plaintext prime, R the exponent of the plaintext space p^R of fresh
// operands, Levels the length of the modulus chain (fresh operands sit at level
// Levels-1) and Slots the number of plaintext slots.
type ParametersLiteral struct {
	P      uint64 `json:"p"`
	R      int    `json:"r"`
	Levels int    `json:"levels"`
	Slots  int    `json:"slots"`
}

// Parameters is an immutable, validated set of reference-backend parameters.
type Parameters struct {
	p      uint64
	r      int
	levels int
	slots  int
}

// NewParametersFromLiteral instantiates Parameters from a ParametersLiteral,
// validating them.
func NewParametersFromLiteral(lit ParametersLiteral) (params Parameters, err error) {

	switch {
	case lit.P < 2 || !new(big.Int).SetUint64(lit.P).ProbablyPrime(0):
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: P=%d is not prime", lit.P)
	case lit.R < 1:
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: R=%d must be at least 1", lit.R)
	case lit.Levels < 1:
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: Levels=%d must be at least 1", lit.Levels)
	case lit.Slots < 1:
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: Slots=%d must be at least 1", lit.Slots)
	}

	return Parameters{p: lit.P, r: lit.R, levels: lit.Levels, slots: lit.Slots}, nil
}

// ParametersLiteral returns the literal representation of the parameters.
func (p Parameters) ParametersLiteral() ParametersLiteral {
	return ParametersLiteral{P: p.p, R: p.r, Levels: p.levels, Slots: p.slots}
}

// PlaintextPrime returns the plaintext prime p.
func (p Parameters) PlaintextPrime() uint64 {
	return p.p
}

// PlaintextExponent returns the exponent R of the plaintext space p^R of fresh
// operands, which bounds the number of extractable digits.
func (p Parameters) PlaintextExponent() int {
	return p.r
}

// PlaintextModulus returns p^R.
func (p Parameters) PlaintextModulus() *big.Int {
	return bignum.Pow(p.p, p.r)
}

// MaxLevel returns the level of fresh operands.
func (p Parameters) MaxLevel() int {
	return p.levels - 1
}

// Slots returns the number of plaintext slots.
func (p Parameters) Slots() int {
	return p.slots
}

// Equal returns true if the two sets of parameters are identical.
func (p Parameters) Equal(other *Parameters) bool {
	return cmp.Equal(p.ParametersLiteral(), other.ParametersLiteral())
}

func (p Parameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ParametersLiteral())
}

func (p *Parameters) UnmarshalJSON(data []byte) (err error) {
	var lit ParametersLiteral
	if err = json.Unmarshal(data, &lit); err != nil {
		return
	}
	*p, err = NewParametersFromLiteral(lit)
	return
}

func (p Parameters) String() string {
	return fmt.Sprintf("P=%d/R=%d/Levels=%d/Slots=%d", p.p, p.r, p.levels, p.slots)
}
