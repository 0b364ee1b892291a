// Package lvlterrain is a toolkit for procedural terrain: seeded noise,
// midpoint displacement, domain warping, erosion and height-map rendering.
//
// 🚀 What is lvlterrain?
//
//	A deterministic, library-first generator that brings together:
//		• Noise: Perlin 2D/3D, Simplex 2D, OpenSimplex and go-perlin fBm
//		• Fractal: Diamond-Square over (2^n+1)² grids
//		• Warp: coordinates displaced by a second sampler
//		• Erosion: thermal talus relaxation
//		• Height maps: normalize, flatten, color bands, hillshade
//		• Regions: landmasses, water bodies and cheapest bridges
//		• Output: PNG/BMP/TIFF previews and a local document store
//
// ✨ Why choose lvlterrain?
//
//   - Reproducible – the same seed and parameters give the same bytes
//   - Typed errors – unsupported dimensions and bad sizes never panic
//   - Small surface – one Config, one Generate, plain value types
//
// Packages:
//
//	rng/       — xorshift stream and seeded permutation tables
//	noise/     — Sampler interface, Perlin/Simplex and library samplers
//	fractal/   — Diamond-Square generator (also a Sampler)
//	warp/      — domain warp operator
//	erosion/   — thermal erosion
//	heightmap/ — square grid type, normalization, colors, hillshade
//	regions/   — land/water components and bridges
//	pipeline/  — Config and Generate: base → warp → erosion → normalize → color
//	storage/   — TerrainDoc persistence (memory and JSON files)
//	render/    — images, palettes, overlays and encoders
//
// Commands: cmd/terragen writes images from flags, cmd/terraserve serves
// previews over HTTP.
//
//	res, err := pipeline.Generate(pipeline.DefaultConfig())
//	img, err := render.Preview(res.Grid, render.DefaultPreviewOptions())
//	err = render.Save("terrain.png", img)
package lvlterrain
