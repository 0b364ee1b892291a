package rng

import "math"

// Salts XORed into a user seed before it drives a stream. One per consumer.
const (
	// SaltPerlin2D decorrelates Perlin2D permutation tables.
	SaltPerlin2D uint64 = 0xDEADBEEFCAFEBABE
	// SaltPerlin3D decorrelates Perlin3D permutation tables.
	SaltPerlin3D uint64 = 0xAABBCCDDEEFF1122
	// SaltSimplex2D decorrelates Simplex2D permutation tables.
	SaltSimplex2D uint64 = 0x123456789ABCDEF0
	// SaltFractal2D seeds the Diamond-Square displacement stream.
	SaltFractal2D uint64 = 0xCAFEBABE12345678
)

// Xorshift is a 64-bit xorshift generator (13, 7, 17).
// Zero is a fixed point of the mix: a zero state keeps returning zero.
type Xorshift struct {
	state uint64
}

// NewXorshift returns a generator whose first Next() mixes seed.
// Complexity: O(1).
func NewXorshift(seed uint64) *Xorshift {
	return &Xorshift{state: seed}
}

// Next advances the stream and returns the new 64-bit state.
// Complexity: O(1).
func (x *Xorshift) Next() uint64 {
	s := x.state
	s ^= s << 13
	s ^= s >> 7
	s ^= s << 17
	x.state = s

	return s
}

// Byte advances the stream and returns its lowest 8 bits.
func (x *Xorshift) Byte() uint8 {
	return uint8(x.Next() & 0xFF)
}

// Signed advances the stream and maps the state linearly onto [-1, 1].
func (x *Xorshift) Signed() float64 {
	return float64(x.Next())/float64(math.MaxUint64)*2 - 1
}

// State returns the current internal state without advancing.
func (x *Xorshift) State() uint64 {
	return x.state
}
