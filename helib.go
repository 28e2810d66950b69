/*
Package helib provides building blocks for bootstrapping BGV-style leveled homomorphic
encryption schemes in pure Go. Its core is homomorphic p-adic digit extraction: recovering,
without decryption, the successive base-p digits of integers encrypted modulo p^r.

The circuits are scheme-agnostic and live in the he package; exact number-theoretic
support (modular polynomial interpolation, big-integer helpers) lives in utils/bignum,
and the ptxt package provides a plaintext reference backend mirroring the operation
surface of a leveled ciphertext.
*/
package helib
