// Package heightmap defines the square elevation grid shared by every
// generator in lvlterrain, plus the post-processing utilities consumers rely
// on: flattening, normalization, color mapping and hillshading.
//
// What:
//
//   - HeightMap: a size×size grid of float64 values addressed (row, col),
//     stored row-major in one flat slice.
//   - Flatten / FromFlat: convert to and from the row-major sequence used by
//     renderers and document stores (flat[y*size+x] == grid[y][x]).
//   - Normalize: rescale into [0,1] with an epsilon floor on the range and an
//     optional power-curve contrast applied after rescaling.
//   - HeightToRGB / ToRGB: five fixed color bands (water, sand, grass, rock,
//     snow), linearly interpolated inside each band.
//   - Hillshade / Shade: Lambertian relief shading for previews.
//
// Errors:
//
//   - ErrInvalidSize:    requested size is < 1.
//   - ErrOutOfRange:     (row, col) outside the grid.
//   - ErrNonSquare:      rows/flat input do not describe a square grid.
//   - ErrNilMap:         nil *HeightMap passed where a grid is required.
//   - ErrNotImplemented: 3D volumes (Flatten3) are not supported yet.
//
// Numeric policy:
//
//   - No value range is enforced before normalization.
//   - Normalize never divides by a range smaller than DefaultEpsilon (or the
//     value given via WithEpsilon), so constant grids map to all zeros.
package heightmap
