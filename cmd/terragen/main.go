// Command terragen generates a terrain height map and writes it as an image,
// optionally persisting it to a local document store.
//
//	terragen -alg perlin -seed 7 -freq 4 -warp -out perlin.png -scale 4 -shade
//	terragen -store ./maps -name coast -out coast.png
//	terragen -store ./maps -load coast -out coast.tiff -palette viridis
//	terragen -store ./maps -list
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/katalvlaran/lvlterrain/heightmap"
	"github.com/katalvlaran/lvlterrain/pipeline"
	"github.com/katalvlaran/lvlterrain/regions"
	"github.com/katalvlaran/lvlterrain/render"
	"github.com/katalvlaran/lvlterrain/storage"
)

var (
	def = pipeline.DefaultConfig()

	exponent    = flag.Int("exp", def.SizeExponent, "size exponent; the grid is 2^exp+1 cells wide")
	seed        = flag.Uint64("seed", def.Seed, "generator seed")
	algorithm   = flag.String("alg", def.Algorithm.String(), "base algorithm: fractal, perlin or simplex")
	frequency   = flag.Float64("freq", def.Frequency, "noise base frequency")
	persistence = flag.Float64("pers", def.Persistence, "noise amplitude decay per octave")
	octaves     = flag.Int("octaves", def.Octaves, "noise octave count")
	roughness   = flag.Float64("rough", def.Roughness, "Diamond-Square displacement decay")
	erode       = flag.Bool("erosion", def.Erosion.Enabled, "apply thermal erosion")
	iterations  = flag.Int("iters", def.Erosion.Iterations, "erosion passes")
	talus       = flag.Float64("talus", def.Erosion.Talus, "erosion talus threshold")
	warpOn      = flag.Bool("warp", def.Warp.Enabled, "apply domain warping")
	strength    = flag.Float64("strength", def.Warp.Strength, "warp strength")
	warpSource  = flag.String("warp-src", def.Warp.Source.String(), "warp sampler: same, opensimplex or classicperlin")
	contrast    = flag.Float64("contrast", def.Contrast, "power curve applied after normalization, 0 = off")

	out     = flag.String("out", "terrain.png", "output image (.png, .bmp, .tif); empty to skip")
	gray    = flag.Bool("gray", false, "grayscale output")
	shade   = flag.Bool("shade", false, "multiply colors by a hillshade")
	zScale  = flag.Float64("zscale", render.DefaultZScale, "hillshade height exaggeration")
	scale   = flag.Int("scale", 1, "integer image enlargement")
	palette = flag.String("palette", render.PaletteBands, fmt.Sprintf("color palette %v", render.Palettes()))

	seaLevel = flag.Float64("sea", regions.DefaultSeaLevel, "sea level for the region report")
	bridge   = flag.Bool("bridge", false, "draw the cheapest bridge between the two largest landmasses")

	storeDir = flag.String("store", "", "document store directory")
	name     = flag.String("name", "", "save the result under this name (requires -store)")
	load     = flag.String("load", "", "load this name instead of generating (requires -store)")
	list     = flag.Bool("list", false, "list stored names and exit (requires -store)")

	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
)

func main() {
	flag.Parse()
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		if err = pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}

	if err := run(context.Background()); err != nil {
		log.Printf("terragen: %v", err)
		pprof.StopCPUProfile()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var store storage.Store
	if *storeDir != "" {
		fs, err := storage.NewFileStore(*storeDir)
		if err != nil {
			return err
		}
		defer fs.Close()
		store = fs
	}
	if store == nil && (*name != "" || *load != "" || *list) {
		return errors.New("-name, -load and -list require -store")
	}

	if *list {
		names, err := store.ListNames(ctx)
		if err != nil {
			return err
		}
		for _, n := range names {
			fmt.Println(n)
		}
		return nil
	}

	grid, err := obtain(ctx, store)
	if err != nil {
		return err
	}

	report, path, err := analyze(grid)
	if err != nil {
		return err
	}
	log.Print(report)

	if *out == "" {
		return nil
	}
	img, err := render.Preview(grid, render.PreviewOptions{
		Palette: *palette,
		Gray:    *gray,
		Shade:   *shade,
		ZScale:  *zScale,
		Scale:   *scale,
	})
	if err != nil {
		return err
	}
	if len(path) > 0 {
		render.DrawPath(img, path, max(*scale, 1), render.DefaultPathColor, float64(max(*scale, 1))/2)
	}
	if err = render.Save(*out, img); err != nil {
		return err
	}
	log.Printf("wrote %s (%dx%d)", *out, img.Bounds().Dx(), img.Bounds().Dy())

	return nil
}

// obtain loads the named document or runs the pipeline, saving when -name is set.
func obtain(ctx context.Context, store storage.Store) (*heightmap.HeightMap, error) {
	if *load != "" {
		doc, err := store.ReadByName(ctx, *load)
		if err != nil {
			return nil, err
		}
		log.Printf("loaded %q seed=%d size=%d noise=%s", doc.Name, doc.Seed, doc.Size(), doc.Params.NoiseType)
		return doc.Grid()
	}

	cfg, err := configFromFlags()
	if err != nil {
		return nil, err
	}
	start := time.Now()
	res, err := pipeline.Generate(cfg)
	if err != nil {
		return nil, err
	}
	log.Printf("generated %s %dx%d seed=%d in %v", cfg.Algorithm, res.Size, res.Size, cfg.Seed, time.Since(start))

	if *name != "" {
		doc, err := storage.NewDocFromResult(*name, res)
		if err != nil {
			return nil, err
		}
		if err = store.Create(ctx, doc); err != nil {
			return nil, err
		}
		log.Printf("saved %q", *name)
	}

	return res.Grid, nil
}

func configFromFlags() (pipeline.Config, error) {
	alg, err := pipeline.ParseAlgorithm(*algorithm)
	if err != nil {
		return pipeline.Config{}, err
	}
	src, err := pipeline.ParseWarpSource(*warpSource)
	if err != nil {
		return pipeline.Config{}, err
	}

	return pipeline.Config{
		SizeExponent: *exponent,
		Seed:         *seed,
		Algorithm:    alg,
		Frequency:    *frequency,
		Persistence:  *persistence,
		Octaves:      *octaves,
		Roughness:    *roughness,
		Erosion:      pipeline.ErosionConfig{Enabled: *erode, Iterations: *iterations, Talus: *talus},
		Warp:         pipeline.WarpConfig{Enabled: *warpOn, Strength: *strength, Source: src},
		Contrast:     *contrast,
	}, nil
}

// analyze summarizes land and water and, with -bridge, returns the bridge
// path between the two largest landmasses in cell coordinates.
func analyze(grid *heightmap.HeightMap) (string, []image.Point, error) {
	m, err := regions.New(grid, regions.Options{SeaLevel: *seaLevel, Conn: regions.Conn4})
	if err != nil {
		return "", nil, err
	}
	lands := m.Landmasses()
	report := fmt.Sprintf("land %.1f%%, %d landmasses, %d water bodies",
		100*m.LandFraction(), len(lands), len(m.WaterBodies()))
	if !*bridge || len(lands) < 2 {
		return report, nil, nil
	}

	first, second := 0, 1
	if len(lands[second]) > len(lands[first]) {
		first, second = second, first
	}
	for i := 2; i < len(lands); i++ {
		switch {
		case len(lands[i]) > len(lands[first]):
			first, second = i, first
		case len(lands[i]) > len(lands[second]):
			second = i
		}
	}
	cells, cost, err := m.Bridge(first, second)
	if err != nil {
		return "", nil, err
	}
	path := make([]image.Point, len(cells))
	for i, idx := range cells {
		x, y := m.Coordinate(idx)
		path[i] = image.Point{X: x, Y: y}
	}

	return fmt.Sprintf("%s; bridge %d→%d fills %d cells", report, first, second, cost), path, nil
}
