// Package rng provides the seeded, deterministic bit-mixing primitives that
// every generator in lvlterrain builds on.
//
// What:
//
//   - Xorshift: a tiny 64-bit xorshift stream (shifts 13, 7, 17). The state is
//     an explicit object, never a captured closure, so table construction stays
//     side-effect free and can be tested on its own.
//   - Permutation: a 512-entry table holding a Fisher–Yates shuffle of 0..255
//     twice in a row, so lattice lookups of the form p[p[x]+y] never need a
//     modulo.
//
// Why:
//
//   - No external entropy, no wall-clock time: the same seed always yields the
//     same stream and the same table on every run.
//   - Each consumer XORs its own salt into the seed (SaltPerlin2D, SaltSimplex2D,
//     ...), so identical user seeds still give uncorrelated tables across
//     sampler types.
//
// Complexity:
//
//   - Xorshift.Next: O(1).
//   - NewPermutation: O(256) time, O(1) extra memory (the table is a value).
package rng
