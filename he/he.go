// Package he implements scheme-agnostic homomorphic circuits for BGV-style leveled
// Homomorphic Encryption schemes, the central one being p-adic digit extraction as
// used by bootstrapping. The circuits are written against a minimal evaluator
// interface, so that any ciphertext type exposing the required operations can be
// plugged in; the ptxt package provides a plaintext reference implementation.
package he

import (
	"math/big"
)

// Operand is the read-only surface that a ciphertext must expose to the circuits
// of this package. Level reports the remaining modulus-chain budget and
// PlaintextExponent the exponent R of the plaintext space p^R.
type Operand interface {
	Level() int
	PlaintextExponent() int
}

// ParameterProvider gives circuits read-only access to the scheme-wide context.
// Implementations are expected to be immutable.
type ParameterProvider interface {
	// PlaintextPrime returns the prime p of the plaintext space p^R.
	PlaintextPrime() uint64
}

// Evaluator defines the homomorphic operations required by the circuits of this
// package. Operations without a New suffix mutate their first operand only.
// Binary operations must accept operands at different levels or plaintext
// exponents and align the result to the smaller of each. Resource exhaustion
// (e.g. running out of levels) must be reported through errors; the circuits
// propagate such errors unchanged and perform no recovery.
type Evaluator[Ct Operand] interface {
	// CopyNew returns a deep copy of op.
	CopyNew(op Ct) Ct
	// Add computes op0 += op1.
	Add(op0, op1 Ct) error
	// Sub computes op0 -= op1.
	Sub(op0, op1 Ct) error
	// AddScalar computes op += scalar.
	AddScalar(op Ct, scalar *big.Int) error
	// MulNew returns the relinearized product of op0 and op1, one level below
	// the smaller of their two levels.
	MulNew(op0, op1 Ct) (Ct, error)
	// MulScalarNew returns op * scalar, at the level of op.
	MulScalarNew(op Ct, scalar *big.Int) (Ct, error)
	// DivideByP divides every slot by the plaintext prime p, consuming one level
	// and shrinking the plaintext space from p^R to p^(R-1). All slots must be
	// divisible by p for the result to be meaningful; this is not checked.
	DivideByP(op Ct) error
	// ReducePlaintextExponent reduces the plaintext space of op from p^R to p^e,
	// e <= R, without consuming a level.
	ReducePlaintextExponent(op Ct, e int) error
	// DropLevel lowers the level of op by levels without changing the plaintext.
	DropLevel(op Ct, levels int)
}
