package rkhash

import (
	"fmt"
	"math/bits"
)

// Base is the polynomial base: the size of the byte alphabet.
const Base = 256

// DefaultModulus is a large prime. It is small enough that
// DefaultModulus*Base fits in 63 bits, so the additive step of the rolling
// hash can never wrap.
const DefaultModulus Modulus = 5003943032159437

// maxModulus bounds the modulus so that the sum of two reduced field
// elements fits in a uint64.
const maxModulus = 1 << 63

// Modulus is the prime modulus of the hash field. All field elements are
// uint64 values in [0, m); every operation re-reduces its result into that
// range before returning it.
type Modulus uint64

// ErrInvalidModulus indicates a modulus outside the supported range.
type ErrInvalidModulus struct {
	Modulus uint64
}

func (e *ErrInvalidModulus) Error() string {
	return fmt.Sprintf("invalid modulus %d: must exceed the byte alphabet size %d and be at most 2^63", e.Modulus, Base)
}

// Validate checks that m is usable as a hash field modulus. The modulus must
// exceed the byte alphabet so single bytes are distinct field elements, and
// stay at or below 2^63 so Add cannot wrap.
func (m Modulus) Validate() error {
	if m <= Base || m > maxModulus {
		return &ErrInvalidModulus{Modulus: uint64(m)}
	}
	return nil
}

// Add returns (a+b) mod m. Both operands must already be reduced into [0, m).
func (m Modulus) Add(a, b uint64) uint64 {
	s := a + b
	if s >= uint64(m) {
		s -= uint64(m)
	}
	return s
}

// Sub returns (a-b) mod m, re-adding m on underflow. The result is fully
// normalized into [0, m) and therefore safe to feed into a subsequent Mul.
func (m Modulus) Sub(a, b uint64) uint64 {
	if a >= b {
		return a - b
	}
	return a + uint64(m) - b
}

// Mul returns (a*b) mod m. The product is formed in 128 bits, so no pair of
// reduced operands can overflow before the reduction.
func (m Modulus) Mul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	// hi < m holds for reduced operands, so Div64 cannot panic.
	_, rem := bits.Div64(hi, lo, uint64(m))
	return rem
}
