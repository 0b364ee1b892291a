package noise

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedDimension is returned when a sampler is queried in a
	// dimension it does not implement (e.g. Sample3D on Perlin2D).
	ErrUnsupportedDimension = errors.New("noise: unsupported sample dimension")

	// ErrInvalidOctaves indicates Octaves < 1.
	ErrInvalidOctaves = errors.New("noise: octaves must be >= 1")

	// ErrInvalidFrequency indicates a non-finite or non-positive frequency.
	ErrInvalidFrequency = errors.New("noise: frequency must be finite and > 0")

	// ErrInvalidPersistence indicates a non-finite or negative persistence.
	ErrInvalidPersistence = errors.New("noise: persistence must be finite and >= 0")

	// ErrNilSampler indicates a nil Sampler argument.
	ErrNilSampler = errors.New("noise: nil sampler")
)

// unsupported wraps ErrUnsupportedDimension with the sampler and method names.
func unsupported(sampler, method string) error {
	return fmt.Errorf("%s.%s: %w", sampler, method, ErrUnsupportedDimension)
}
