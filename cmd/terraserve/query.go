package main

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/katalvlaran/lvlterrain/pipeline"
	"github.com/katalvlaran/lvlterrain/render"
)

// query reads typed parameters, keeping the first parse error.
type query struct {
	v   url.Values
	err error
}

func (q *query) str(key, def string) string {
	if s := q.v.Get(key); s != "" {
		return s
	}
	return def
}

func (q *query) integer(key string, def int) int {
	s := q.v.Get(key)
	if s == "" || q.err != nil {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		q.err = fmt.Errorf("%w: %s=%q", errBadRequest, key, s)
		return def
	}
	return n
}

func (q *query) unsigned(key string, def uint64) uint64 {
	s := q.v.Get(key)
	if s == "" || q.err != nil {
		return def
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		q.err = fmt.Errorf("%w: %s=%q", errBadRequest, key, s)
		return def
	}
	return n
}

func (q *query) number(key string, def float64) float64 {
	s := q.v.Get(key)
	if s == "" || q.err != nil {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		q.err = fmt.Errorf("%w: %s=%q", errBadRequest, key, s)
		return def
	}
	return f
}

func (q *query) boolean(key string, def bool) bool {
	s := q.v.Get(key)
	if s == "" || q.err != nil {
		return def
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		q.err = fmt.Errorf("%w: %s=%q", errBadRequest, key, s)
		return def
	}
	return b
}

// configFromQuery overlays request parameters on pipeline.DefaultConfig.
// Parameter names match the terragen flags.
func configFromQuery(v url.Values) (pipeline.Config, error) {
	def := pipeline.DefaultConfig()
	q := &query{v: v}

	alg, err := pipeline.ParseAlgorithm(q.str("alg", def.Algorithm.String()))
	if err != nil {
		return pipeline.Config{}, err
	}
	src, err := pipeline.ParseWarpSource(q.str("warp-src", def.Warp.Source.String()))
	if err != nil {
		return pipeline.Config{}, err
	}

	cfg := pipeline.Config{
		SizeExponent: q.integer("exp", def.SizeExponent),
		Seed:         q.unsigned("seed", def.Seed),
		Algorithm:    alg,
		Frequency:    q.number("freq", def.Frequency),
		Persistence:  q.number("pers", def.Persistence),
		Octaves:      q.integer("octaves", def.Octaves),
		Roughness:    q.number("rough", def.Roughness),
		Erosion: pipeline.ErosionConfig{
			Enabled:    q.boolean("erosion", def.Erosion.Enabled),
			Iterations: q.integer("iters", def.Erosion.Iterations),
			Talus:      q.number("talus", def.Erosion.Talus),
		},
		Warp: pipeline.WarpConfig{
			Enabled:  q.boolean("warp", def.Warp.Enabled),
			Strength: q.number("strength", def.Warp.Strength),
			Source:   src,
		},
		Contrast: q.number("contrast", def.Contrast),
	}
	if q.err != nil {
		return pipeline.Config{}, q.err
	}

	return cfg, nil
}

// maxScale bounds the enlargement a request may ask for.
const maxScale = 8

func previewFromQuery(v url.Values) (render.PreviewOptions, error) {
	def := render.DefaultPreviewOptions()
	q := &query{v: v}
	opts := render.PreviewOptions{
		Palette: q.str("palette", def.Palette),
		Gray:    q.boolean("gray", def.Gray),
		Shade:   q.boolean("shade", def.Shade),
		ZScale:  q.number("zscale", def.ZScale),
		Scale:   q.integer("scale", def.Scale),
	}
	if q.err != nil {
		return render.PreviewOptions{}, q.err
	}
	if opts.Scale < 1 || opts.Scale > maxScale {
		return render.PreviewOptions{}, fmt.Errorf("%w: scale must be in [1, %d]", errBadRequest, maxScale)
	}

	return opts, nil
}
