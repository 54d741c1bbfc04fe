// Package register provides the fixed-width register digits are packed into.
package register

import (
	"fmt"
	"math/bits"
)

// Bits is the width of the register.
const Bits = 128

// laneMask selects a single 2-bit lane.
const laneMask = 0b11

// Uint128 represents a 128-bit unsigned integer as two 64-bit words.
type Uint128 struct {
	Hi, Lo uint64
}

// Lsh shifts x left by k bits (0<=k<128).
func (x Uint128) Lsh(k uint) Uint128 {
	if k >= 64 {
		return Uint128{Hi: x.Lo << (k - 64), Lo: 0}
	}

	return Uint128{
		Hi: x.Hi<<k | x.Lo>>(64-k),
		Lo: x.Lo << k,
	}
}

// Rsh shifts x right by k bits (0<=k<128).
func (x Uint128) Rsh(k uint) Uint128 {
	if k >= 64 {
		return Uint128{Hi: 0, Lo: x.Hi >> (k - 64)}
	}

	return Uint128{
		Hi: x.Hi >> k,
		Lo: x.Lo>>k | x.Hi<<(64-k),
	}
}

// Or returns x | y.
func (x Uint128) Or(y Uint128) Uint128 {
	return Uint128{Hi: x.Hi | y.Hi, Lo: x.Lo | y.Lo}
}

// And returns x & y.
func (x Uint128) And(y Uint128) Uint128 {
	return Uint128{Hi: x.Hi & y.Hi, Lo: x.Lo & y.Lo}
}

// IsZero reports whether every bit of x is clear.
func (x Uint128) IsZero() bool {
	return x.Hi == 0 && x.Lo == 0
}

// Len returns the minimum number of bits required to represent x.
func (x Uint128) Len() int {
	if x.Hi != 0 {
		return 64 + bits.Len64(x.Hi)
	}

	return bits.Len64(x.Lo)
}

// Lane returns the 2-bit lane i counted from the low end (0<=i<64).
func (x Uint128) Lane(i uint) uint8 {
	return uint8(x.Rsh(2*i).Lo & laneMask)
}

// Push shifts every lane up by one and stores v in the freed low lane. Only
// the low 2 bits of v are kept.
func (x Uint128) Push(v uint8) Uint128 {
	return x.Lsh(2).Or(Uint128{Lo: uint64(v & laneMask)})
}

// Pop returns the low lane and the register shifted down by one lane.
func (x Uint128) Pop() (v uint8, rest Uint128) {
	return uint8(x.Lo & laneMask), x.Rsh(2)
}

// String renders x as 32 big-endian hex digits.
func (x Uint128) String() string {
	return fmt.Sprintf("%016x%016x", x.Hi, x.Lo)
}
