// SPDX-License-Identifier: MIT

// Package heightmap: functional configuration for Normalize.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: constructors panic only on nonsensical values
//     (programmer error); Normalize itself never panics.
package heightmap

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the smallest range Normalize divides by. Grids whose
	// max-min is below it are treated as flat.
	DefaultEpsilon = 1e-9

	// DefaultContrast disables the post-rescale power curve.
	DefaultContrast = 1.0
)

// ---------- Internal panic messages ----------

const (
	panicEpsilonInvalid  = "heightmap: WithEpsilon: eps must be finite and > 0"
	panicContrastInvalid = "heightmap: WithContrast: gamma must be finite and > 0"
)

// Option mutates normalization options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps   float64 // > 0; DefaultEpsilon
	gamma float64 // > 0; DefaultContrast (1 = off)
}

// WithEpsilon sets the minimum range used by Normalize.
//
// Errors:
//   - Panics when eps is NaN, ±Inf or ≤ 0.
//
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithContrast applies v = v^gamma after rescaling into [0,1].
// gamma > 1 darkens low ground and sharpens peaks; gamma < 1 lifts lowlands.
// The curve keeps 0 and 1 fixed, so the normalized bounds survive.
//
// Errors:
//   - Panics when gamma is NaN, ±Inf or ≤ 0.
func WithContrast(gamma float64) Option {
	if math.IsNaN(gamma) || math.IsInf(gamma, 0) || gamma <= 0 {
		panic(panicContrastInvalid)
	}

	return func(o *Options) { o.gamma = gamma }
}

// gatherOptions resolves opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon, gamma: DefaultContrast}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
