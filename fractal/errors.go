package fractal

import "errors"

var (
	// ErrInvalidSize indicates a size that is not 2^n+1 with n >= 1.
	ErrInvalidSize = errors.New("fractal: size must be 2^n+1 and >= 3")

	// ErrInvalidRoughness indicates a NaN, infinite or negative roughness.
	ErrInvalidRoughness = errors.New("fractal: roughness must be finite and >= 0")
)
