package render

import "errors"

var (
	// ErrInvalidBuffer indicates an RGB buffer whose length is not size*size*3.
	ErrInvalidBuffer = errors.New("render: rgb buffer does not match size")
	// ErrUnknownFormat indicates an unsupported image encoding.
	ErrUnknownFormat = errors.New("render: unknown image format")
	// ErrUnknownPalette indicates a palette name outside Palettes().
	ErrUnknownPalette = errors.New("render: unknown palette")
)
