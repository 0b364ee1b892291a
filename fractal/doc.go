// Package fractal generates Diamond-Square (midpoint displacement) terrain.
//
// What:
//
//   - Fractal2D builds a size×size height map, size = 2^n+1, from one seeded
//     xorshift stream: four corners, then alternating diamond and square
//     passes that halve the step and scale the displacement by roughness.
//   - After Generate the grid is retained and Fractal2D doubles as a
//     noise.Sampler through bilinear lookup on the unit square.
//
// Why:
//
//   - Diamond-Square needs no gradient tables and yields natural-looking
//     relief in O(size²).
//   - Roughness < 1 smooths the surface, > 1 roughens it; values stay near
//     [-1, 1] for roughness ≤ 1.
//
// Errors:
//
//   - ErrInvalidSize:      size < 3 or size-1 not a power of two. Checked at
//     construction, before any random number is drawn.
//   - ErrInvalidRoughness: roughness NaN, ±Inf or negative.
//   - noise.ErrUnsupportedDimension from Sample3D.
//
// Complexity:
//
//   - Generate: O(size²) time, O(size²) memory (the returned grid plus the
//     retained copy).
//   - Sample2D: O(1).
package fractal
