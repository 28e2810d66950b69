// Package sampling provides sources of random bytes and integers, including a
// keyed deterministic PRNG used to derive reproducible test vectors.
package sampling

import (
	"crypto/rand"

	"golang.org/x/crypto/blake2b"
)

// SystemPRNG is a PRNG backed by the operating system entropy source.
// It is safe for concurrent use.
type SystemPRNG struct{}

// NewSystemPRNG returns a PRNG reading from crypto/rand.
func NewSystemPRNG() *SystemPRNG {
	return &SystemPRNG{}
}

func (prng *SystemPRNG) Read(b []byte) (n int, err error) {
	return rand.Read(b)
}

// KeyedPRNG deterministically expands a key into an unbounded sequence of bytes
// using the blake2b XOF. Two KeyedPRNG instantiated with the same key produce the
// same stream, which makes it suitable for reproducible sampling in tests and
// examples. It must not be shared across goroutines.
type KeyedPRNG struct {
	key []byte
	xof blake2b.XOF
}

// NewKeyedPRNG creates a new KeyedPRNG from the given key. A nil key is treated
// as an empty key and yields a fixed, publicly known stream.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	if err != nil {
		return nil, err
	}
	k := make([]byte, len(key))
	copy(k, key)
	return &KeyedPRNG{key: k, xof: xof}, nil
}

func (prng *KeyedPRNG) Read(b []byte) (n int, err error) {
	return prng.xof.Read(b)
}

// Key returns a copy of the key used to seed the PRNG.
func (prng *KeyedPRNG) Key() (key []byte) {
	key = make([]byte, len(prng.key))
	copy(key, prng.key)
	return
}

// Reset rewinds the PRNG to the beginning of its stream.
func (prng *KeyedPRNG) Reset() {
	prng.xof.Reset()
}
