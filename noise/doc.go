// Package noise provides seeded gradient-noise samplers summed as fractal
// Brownian motion (fBm).
//
// 🚀 What is here?
//
//	Every sampler maps continuous coordinates to a value in ≈[-1, 1]
//	(Simplex2D overshoots to ≈±1.55):
//	  • Perlin2D  — classic lattice gradient noise on the plane
//	  • Perlin3D  — the same construction in three dimensions
//	  • Simplex2D — triangle-lattice noise with better isotropy
//	  • OpenSimplex2D / ClassicPerlin — fBm over third-party noise bases,
//	    mostly used as decorrelated warp sources
//
// ✨ Key properties:
//   - deterministic: the same Options always produce the same samples
//   - per-algorithm salts: equal seeds give uncorrelated tables across types
//   - capability errors: asking a 2D-only sampler for 3D (or vice versa)
//     returns ErrUnsupportedDimension, never a silent zero
//
// ⚙️ Usage:
//
//	opts := noise.DefaultOptions()
//	opts.Seed = 1234
//	opts.Frequency = 0.01
//
//	p, err := noise.NewPerlin2D(opts)
//	if err != nil {
//	  // ErrInvalidOctaves, ErrInvalidFrequency, ErrInvalidPersistence
//	}
//	v, _ := p.Sample2D(10.5, -3.7)
//
//	grid, err := noise.Render(p, 129) // cell (x,y) = Sample2D(x/129, y/129)
//
// Performance:
//
//   - One sample: O(octaves)
//   - Render:     O(size² · octaves)
//   - Samplers are read-only after construction and safe for concurrent use.
package noise
