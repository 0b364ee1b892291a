package pipeline

import (
	"fmt"

	"github.com/katalvlaran/lvlterrain/erosion"
	"github.com/katalvlaran/lvlterrain/fractal"
	"github.com/katalvlaran/lvlterrain/heightmap"
	"github.com/katalvlaran/lvlterrain/noise"
	"github.com/katalvlaran/lvlterrain/warp"
)

// Result carries every artifact of one run.
type Result struct {
	Size   int
	Grid   *heightmap.HeightMap // normalized to [0,1]
	Flat   []float64            // row-major copy of Grid
	RGB    []byte               // Size*Size*3 bytes, see heightmap.ToRGB
	Config Config
}

// Generate runs base → warp → erosion → normalize → flatten → color.
//
// Stages:
//  1. Base: Fractal generates its grid directly; Perlin and Simplex are
//     rendered at (x/size, y/size).
//  2. Warp (optional): the base sampler is displaced by a warp sampler
//     seeded Seed+WarpSeedOffset. For Fractal with WarpSameAsBase the warp
//     sampler is a second Diamond-Square field.
//  3. Erosion (optional): thermal erosion in place.
//  4. Normalize to [0,1], then Contrast when > 0.
//  5. Flatten and map to RGB.
//
// Equal configs produce equal results.
func Generate(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("pipeline.Generate: %w", err)
	}
	size := cfg.Size()

	base, grid, err := buildBase(cfg, size)
	if err != nil {
		return nil, fmt.Errorf("pipeline.Generate: base: %w", err)
	}

	if cfg.Warp.Enabled {
		ws, err := buildWarp(cfg, size)
		if err != nil {
			return nil, fmt.Errorf("pipeline.Generate: warp: %w", err)
		}
		dw, err := warp.New(base, ws, size, cfg.Warp.Strength)
		if err != nil {
			return nil, fmt.Errorf("pipeline.Generate: warp: %w", err)
		}
		if grid, err = dw.Generate(); err != nil {
			return nil, fmt.Errorf("pipeline.Generate: warp: %w", err)
		}
	}

	if cfg.Erosion.Enabled {
		te, err := erosion.NewThermalErosion2D(cfg.Erosion.Iterations, cfg.Erosion.Talus)
		if err != nil {
			return nil, fmt.Errorf("pipeline.Generate: erosion: %w", err)
		}
		if err = te.Apply(grid); err != nil {
			return nil, fmt.Errorf("pipeline.Generate: erosion: %w", err)
		}
	}

	var opts []heightmap.Option
	if cfg.Contrast > 0 {
		opts = append(opts, heightmap.WithContrast(cfg.Contrast))
	}
	if err = heightmap.Normalize(grid, opts...); err != nil {
		return nil, fmt.Errorf("pipeline.Generate: normalize: %w", err)
	}

	flat := heightmap.Flatten(grid)

	return &Result{
		Size:   size,
		Grid:   grid,
		Flat:   flat,
		RGB:    heightmap.ToRGB(flat),
		Config: cfg,
	}, nil
}

// buildBase returns the base sampler and its unwarped grid.
func buildBase(cfg Config, size int) (noise.Sampler, *heightmap.HeightMap, error) {
	var s noise.Sampler
	switch cfg.Algorithm {
	case Fractal:
		f, err := fractal.NewFractal2D(size, cfg.Seed, cfg.Roughness)
		if err != nil {
			return nil, nil, err
		}
		// Generate retains the grid that Sample2D interpolates.
		return f, f.Generate(), nil
	case Perlin:
		p, err := noise.NewPerlin2D(cfg.NoiseOptions(cfg.Seed))
		if err != nil {
			return nil, nil, err
		}
		s = p
	case Simplex:
		p, err := noise.NewSimplex2D(cfg.NoiseOptions(cfg.Seed))
		if err != nil {
			return nil, nil, err
		}
		s = p
	default:
		return nil, nil, fmt.Errorf("%v: %w", cfg.Algorithm, ErrUnknownAlgorithm)
	}

	grid, err := noise.Render(s, size)
	if err != nil {
		return nil, nil, err
	}

	return s, grid, nil
}

// buildWarp returns the displacement sampler seeded Seed+WarpSeedOffset.
func buildWarp(cfg Config, size int) (noise.Sampler, error) {
	seed := cfg.Seed + WarpSeedOffset
	switch cfg.Warp.Source {
	case WarpOpenSimplex:
		return noise.NewOpenSimplex2D(cfg.NoiseOptions(seed))
	case WarpClassicPerlin:
		return noise.NewClassicPerlin(cfg.NoiseOptions(seed))
	case WarpSameAsBase:
	default:
		return nil, fmt.Errorf("%v: %w", cfg.Warp.Source, ErrUnknownWarpSource)
	}

	switch cfg.Algorithm {
	case Fractal:
		f, err := fractal.NewFractal2D(size, seed, cfg.Roughness)
		if err != nil {
			return nil, err
		}
		f.Generate()
		return f, nil
	case Perlin:
		return noise.NewPerlin2D(cfg.NoiseOptions(seed))
	case Simplex:
		return noise.NewSimplex2D(cfg.NoiseOptions(seed))
	default:
		return nil, fmt.Errorf("%v: %w", cfg.Algorithm, ErrUnknownAlgorithm)
	}
}
