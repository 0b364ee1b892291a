package storage

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/katalvlaran/lvlterrain/heightmap"
	"github.com/katalvlaran/lvlterrain/pipeline"
)

// Dimensions2D is the only dimensionality stored today.
const Dimensions2D uint8 = 2

// MaxNameLength caps a document name in bytes. FileStore hex-encodes the
// name into its file name, which must stay under 255 bytes together with
// the seed and dimensions.
const MaxNameLength = 100

// TerrainParams records the generation parameters of a document. Stage
// parameters are nil when the stage was not used.
type TerrainParams struct {
	NoiseType    string   `json:"noise_type"`
	Frequency    float64  `json:"frequency"`
	Persistence  float64  `json:"persistence"`
	Octaves      int      `json:"octaves"`
	Roughness    *float64 `json:"roughness,omitempty"`
	ErosionIters *int     `json:"erosion_iters,omitempty"`
	TalusAngle   *float64 `json:"talus_angle,omitempty"`
	WarpStrength *float64 `json:"warp_strength,omitempty"`
	WarpSource   string   `json:"warp_source,omitempty"`
	Contrast     *float64 `json:"contrast,omitempty"`
}

// TerrainDoc is one persisted height map, row-major, normalized to [0,1].
type TerrainDoc struct {
	Name       string        `json:"name"`
	Seed       int64         `json:"seed"`
	Params     TerrainParams `json:"params"`
	HeightMap  []float64     `json:"height_map"`
	Dimensions uint8         `json:"dimensions"`
}

// key identifies a document for replacement.
type key struct {
	name       string
	seed       int64
	dimensions uint8
}

func (d *TerrainDoc) key() key {
	return key{name: d.Name, seed: d.Seed, dimensions: d.Dimensions}
}

// NewDocFromResult captures a pipeline result under name. The height map is
// copied; res is not retained.
func NewDocFromResult(name string, res *pipeline.Result) (*TerrainDoc, error) {
	if res == nil {
		return nil, fmt.Errorf("NewDocFromResult: nil result: %w", ErrInvalidDocument)
	}
	cfg := res.Config
	p := TerrainParams{
		NoiseType:   cfg.Algorithm.String(),
		Frequency:   cfg.Frequency,
		Persistence: cfg.Persistence,
		Octaves:     cfg.Octaves,
	}
	if cfg.Algorithm == pipeline.Fractal {
		p.Roughness = ptr(cfg.Roughness)
	}
	if cfg.Erosion.Enabled {
		p.ErosionIters = ptr(cfg.Erosion.Iterations)
		p.TalusAngle = ptr(cfg.Erosion.Talus)
	}
	if cfg.Warp.Enabled {
		p.WarpStrength = ptr(cfg.Warp.Strength)
		p.WarpSource = cfg.Warp.Source.String()
	}
	if cfg.Contrast > 0 {
		p.Contrast = ptr(cfg.Contrast)
	}

	doc := &TerrainDoc{
		Name:       name,
		Seed:       int64(cfg.Seed),
		Params:     p,
		HeightMap:  append([]float64(nil), res.Flat...),
		Dimensions: Dimensions2D,
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return doc, nil
}

// Validate rejects an empty or over-long name, dimensions other than 2 and
// a height map whose length is not the square of a 2^n+1 edge.
func (d *TerrainDoc) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("empty name: %w", ErrInvalidDocument)
	}
	if len(d.Name) > MaxNameLength {
		return fmt.Errorf("name length %d > %d: %w", len(d.Name), MaxNameLength, ErrInvalidDocument)
	}
	if d.Dimensions != Dimensions2D {
		return fmt.Errorf("dimensions=%d: %w", d.Dimensions, ErrInvalidDocument)
	}
	if _, ok := edge(len(d.HeightMap)); !ok {
		return fmt.Errorf("height map length %d: %w", len(d.HeightMap), ErrInvalidDocument)
	}

	return nil
}

// Size returns the grid edge length, or 0 for an invalid height map.
func (d *TerrainDoc) Size() int {
	n, _ := edge(len(d.HeightMap))
	return n
}

// Grid rebuilds the height map as a square grid.
func (d *TerrainDoc) Grid() (*heightmap.HeightMap, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return heightmap.FromFlat(d.HeightMap, d.Size())
}

// Config reconstructs the generation request, so a stored terrain can be
// regenerated. Parameters not recorded fall back to pipeline.DefaultConfig.
func (d *TerrainDoc) Config() (pipeline.Config, error) {
	if err := d.Validate(); err != nil {
		return pipeline.Config{}, err
	}
	p := d.Params
	alg, err := pipeline.ParseAlgorithm(p.NoiseType)
	if err != nil {
		return pipeline.Config{}, fmt.Errorf("TerrainDoc.Config: %w", err)
	}

	cfg := pipeline.DefaultConfig()
	cfg.SizeExponent = bits.Len(uint(d.Size()-1)) - 1
	cfg.Seed = uint64(d.Seed)
	cfg.Algorithm = alg
	cfg.Frequency = p.Frequency
	cfg.Persistence = p.Persistence
	cfg.Octaves = p.Octaves
	if p.Roughness != nil {
		cfg.Roughness = *p.Roughness
	}
	cfg.Erosion.Enabled = p.ErosionIters != nil
	if p.ErosionIters != nil {
		cfg.Erosion.Iterations = *p.ErosionIters
	}
	if p.TalusAngle != nil {
		cfg.Erosion.Talus = *p.TalusAngle
	}
	cfg.Warp.Enabled = p.WarpStrength != nil
	if p.WarpStrength != nil {
		cfg.Warp.Strength = *p.WarpStrength
		if cfg.Warp.Source, err = pipeline.ParseWarpSource(p.WarpSource); err != nil {
			return pipeline.Config{}, fmt.Errorf("TerrainDoc.Config: %w", err)
		}
	}
	cfg.Contrast = 0
	if p.Contrast != nil {
		cfg.Contrast = *p.Contrast
	}

	return cfg, nil
}

// clone returns a deep copy so stores never share slices with callers.
func (d *TerrainDoc) clone() *TerrainDoc {
	c := *d
	c.HeightMap = append([]float64(nil), d.HeightMap...)
	c.Params.Roughness = clonePtr(d.Params.Roughness)
	c.Params.ErosionIters = clonePtr(d.Params.ErosionIters)
	c.Params.TalusAngle = clonePtr(d.Params.TalusAngle)
	c.Params.WarpStrength = clonePtr(d.Params.WarpStrength)
	c.Params.Contrast = clonePtr(d.Params.Contrast)

	return &c
}

// edge returns n when length == n*n and n == 2^k+1, k >= 1.
func edge(length int) (int, bool) {
	n := int(math.Sqrt(float64(length)))
	for n*n > length {
		n--
	}
	for (n+1)*(n+1) <= length {
		n++
	}
	if n*n != length || n < 3 || bits.OnesCount(uint(n-1)) != 1 {
		return 0, false
	}

	return n, true
}

func ptr[T any](v T) *T { return &v }

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p

	return &v
}
