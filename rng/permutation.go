package rng

// PermutationSize is the length of a duplicated permutation table.
const PermutationSize = 512

// Permutation is an immutable lattice-hash table: entries [0,256) hold a
// shuffle of 0..255 and entries [256,512) repeat them.
type Permutation [PermutationSize]uint8

// NewPermutation builds the table for seed under the given consumer salt.
//
// Stage 1 (Prepare): identity 0..255, stream seeded with seed^salt.
// Stage 2 (Shuffle): Fisher–Yates from index 255 down to 1, j = Byte() % (i+1).
// Stage 3 (Duplicate): p[i] = p[i&255] for every i in [0,512).
//
// Never fails. Complexity: O(256).
func NewPermutation(seed, salt uint64) Permutation {
	var base [256]uint8
	for i := range base {
		base[i] = uint8(i)
	}

	x := NewXorshift(seed ^ salt)
	for i := 255; i > 0; i-- {
		j := int(x.Byte()) % (i + 1)
		base[i], base[j] = base[j], base[i]
	}

	var p Permutation
	for i := range p {
		p[i] = base[i&255]
	}

	return p
}
