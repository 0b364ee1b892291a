// Package noise defines the sampler capability, its dimension flags and the
// shared fBm parameters.
package noise

import (
	"fmt"
	"math"
)

// Sampler is a scalar field that can be evaluated at continuous coordinates.
//
// Implementations that support only one dimensionality return an error
// wrapping ErrUnsupportedDimension from the other method; callers match it
// with errors.Is.
type Sampler interface {
	Sample2D(x, y float64) (float64, error)
	Sample3D(x, y, z float64) (float64, error)
}

// Dimensions is a bitmask of supported sample dimensionalities.
type Dimensions uint8

const (
	// Dim2 marks support for Sample2D.
	Dim2 Dimensions = 1 << iota
	// Dim3 marks support for Sample3D.
	Dim3
)

// Has reports whether every flag in want is set.
func (d Dimensions) Has(want Dimensions) bool { return d&want == want }

// String renders the mask as "2D", "3D", "2D|3D" or "none".
func (d Dimensions) String() string {
	switch d {
	case Dim2:
		return "2D"
	case Dim3:
		return "3D"
	case Dim2 | Dim3:
		return "2D|3D"
	case 0:
		return "none"
	default:
		return fmt.Sprintf("Dimensions(%d)", uint8(d))
	}
}

// Dimensional is implemented by samplers that advertise their capabilities.
type Dimensional interface {
	Dimensions() Dimensions
}

// Supports returns the dimensions s advertises. Samplers that do not
// implement Dimensional are assumed to support both.
func Supports(s Sampler) Dimensions {
	if s == nil {
		return 0
	}
	if d, ok := s.(Dimensional); ok {
		return d.Dimensions()
	}

	return Dim2 | Dim3
}

// Options holds the fBm parameters shared by every gradient sampler.
//
// Fields:
//   - Seed        — permutation seed (salted per algorithm).
//   - Frequency   — base spatial frequency of the first octave; doubles per octave.
//   - Persistence — per-octave amplitude multiplier.
//   - Octaves     — number of summed layers, >= 1.
type Options struct {
	Seed        uint64
	Frequency   float64
	Persistence float64
	Octaves     int
}

// DefaultOptions returns Seed 0, Frequency 1.0, Persistence 0.5, Octaves 4.
func DefaultOptions() Options {
	return Options{
		Seed:        0,
		Frequency:   1.0,
		Persistence: 0.5,
		Octaves:     4,
	}
}

// Validate checks the option ranges.
func (o Options) Validate() error {
	if o.Octaves < 1 {
		return fmt.Errorf("octaves=%d: %w", o.Octaves, ErrInvalidOctaves)
	}
	if math.IsNaN(o.Frequency) || math.IsInf(o.Frequency, 0) || o.Frequency <= 0 {
		return fmt.Errorf("frequency=%v: %w", o.Frequency, ErrInvalidFrequency)
	}
	if math.IsNaN(o.Persistence) || math.IsInf(o.Persistence, 0) || o.Persistence < 0 {
		return fmt.Errorf("persistence=%v: %w", o.Persistence, ErrInvalidPersistence)
	}

	return nil
}
