// Package pipeline defines the generation request, its defaults and the
// algorithm selectors.
package pipeline

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvlterrain/erosion"
	"github.com/katalvlaran/lvlterrain/noise"
)

// Size exponent bounds; the grid edge is 2^n+1.
const (
	MinSizeExponent = 1
	MaxSizeExponent = 12
)

// WarpSeedOffset is added to the seed for the warp sampler so both fields
// differ while staying reproducible.
const WarpSeedOffset = 42

var (
	// ErrUnknownAlgorithm indicates an algorithm name outside the fixed set.
	ErrUnknownAlgorithm = errors.New("pipeline: unknown algorithm")
	// ErrUnknownWarpSource indicates an unsupported WarpSource value.
	ErrUnknownWarpSource = errors.New("pipeline: unknown warp source")
	// ErrInvalidSizeExponent indicates an exponent outside [MinSizeExponent, MaxSizeExponent].
	ErrInvalidSizeExponent = errors.New("pipeline: size exponent out of range")
	// ErrInvalidContrast indicates a NaN, infinite or negative contrast.
	ErrInvalidContrast = errors.New("pipeline: contrast must be finite and >= 0")
)

// Algorithm selects the base height generator.
type Algorithm int

const (
	// Fractal is Diamond-Square midpoint displacement.
	Fractal Algorithm = iota
	// Perlin is multi-octave 2D Perlin noise.
	Perlin
	// Simplex is multi-octave 2D simplex noise.
	Simplex
)

// String returns the persisted identifier: "fractal", "perlin" or "simplex".
func (a Algorithm) String() string {
	switch a {
	case Fractal:
		return "fractal"
	case Perlin:
		return "perlin"
	case Simplex:
		return "simplex"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm accepts "fractal", "perlin" and "simplex", case-insensitive,
// with or without a "2d" suffix.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "2d") {
	case "fractal":
		return Fractal, nil
	case "perlin":
		return Perlin, nil
	case "simplex":
		return Simplex, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownAlgorithm)
	}
}

// WarpSource selects the sampler that displaces base coordinates.
type WarpSource int

const (
	// WarpSameAsBase uses a second instance of the base algorithm seeded
	// Seed+WarpSeedOffset.
	WarpSameAsBase WarpSource = iota
	// WarpOpenSimplex uses OpenSimplex fBm seeded Seed+WarpSeedOffset.
	WarpOpenSimplex
	// WarpClassicPerlin uses go-perlin seeded Seed+WarpSeedOffset.
	WarpClassicPerlin
)

func (w WarpSource) String() string {
	switch w {
	case WarpSameAsBase:
		return "same"
	case WarpOpenSimplex:
		return "opensimplex"
	case WarpClassicPerlin:
		return "classicperlin"
	default:
		return fmt.Sprintf("WarpSource(%d)", int(w))
	}
}

// ParseWarpSource is the inverse of WarpSource.String.
func ParseWarpSource(s string) (WarpSource, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "same", "":
		return WarpSameAsBase, nil
	case "opensimplex":
		return WarpOpenSimplex, nil
	case "classicperlin":
		return WarpClassicPerlin, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownWarpSource)
	}
}

// ErosionConfig toggles thermal erosion.
type ErosionConfig struct {
	Enabled    bool
	Iterations int
	Talus      float64
}

// WarpConfig toggles domain warping.
type WarpConfig struct {
	Enabled  bool
	Strength float64
	Source   WarpSource
}

// Config is one complete generation request.
//
// Fields:
//   - SizeExponent — grid edge is 2^SizeExponent+1.
//   - Seed         — shared by base and (offset) warp generators.
//   - Algorithm    — base generator.
//   - Frequency, Persistence, Octaves — fBm parameters (Perlin, Simplex and
//     noise warp sources).
//   - Roughness    — Diamond-Square decay (Fractal).
//   - Erosion, Warp — optional stages.
//   - Contrast     — post-normalization power curve; 0 disables it.
type Config struct {
	SizeExponent int
	Seed         uint64
	Algorithm    Algorithm
	Frequency    float64
	Persistence  float64
	Octaves      int
	Roughness    float64
	Erosion      ErosionConfig
	Warp         WarpConfig
	Contrast     float64
}

// DefaultConfig returns a 129×129 fractal map, seed 2025, roughness 1 and
// light erosion; warping and contrast off.
func DefaultConfig() Config {
	return Config{
		SizeExponent: 7,
		Seed:         2025,
		Algorithm:    Fractal,
		Frequency:    1.0,
		Persistence:  0.5,
		Octaves:      4,
		Roughness:    1.0,
		Erosion:      ErosionConfig{Enabled: true, Iterations: 5, Talus: 1.0},
		Warp:         WarpConfig{Enabled: false, Strength: 0.5, Source: WarpSameAsBase},
		Contrast:     0,
	}
}

// Size returns 2^SizeExponent+1.
func (c Config) Size() int {
	return 1<<c.SizeExponent + 1
}

// NoiseOptions returns the fBm parameters for the given seed.
func (c Config) NoiseOptions(seed uint64) noise.Options {
	return noise.Options{
		Seed:        seed,
		Frequency:   c.Frequency,
		Persistence: c.Persistence,
		Octaves:     c.Octaves,
	}
}

// Validate checks the request without generating anything. Component
// validation errors are returned unchanged (wrapped), so callers can match
// e.g. noise.ErrInvalidOctaves or fractal.ErrInvalidRoughness.
func (c Config) Validate() error {
	if c.SizeExponent < MinSizeExponent || c.SizeExponent > MaxSizeExponent {
		return fmt.Errorf("size exponent %d: %w", c.SizeExponent, ErrInvalidSizeExponent)
	}
	switch c.Algorithm {
	case Fractal:
		// roughness is checked by the generator constructor
	case Perlin, Simplex:
		if err := c.NoiseOptions(c.Seed).Validate(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%v: %w", c.Algorithm, ErrUnknownAlgorithm)
	}
	if c.Warp.Enabled {
		switch c.Warp.Source {
		case WarpSameAsBase:
		case WarpOpenSimplex, WarpClassicPerlin:
			if err := c.NoiseOptions(c.Seed).Validate(); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%v: %w", c.Warp.Source, ErrUnknownWarpSource)
		}
	}
	if c.Erosion.Enabled {
		if _, err := erosion.NewThermalErosion2D(c.Erosion.Iterations, c.Erosion.Talus); err != nil {
			return err
		}
	}
	if math.IsNaN(c.Contrast) || math.IsInf(c.Contrast, 0) || c.Contrast < 0 {
		return fmt.Errorf("contrast=%v: %w", c.Contrast, ErrInvalidContrast)
	}

	return nil
}
