package main

import (
	"context"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlterrain/pipeline"
	"github.com/katalvlaran/lvlterrain/storage"
)

func get(t *testing.T, s *server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	return rec
}

func TestGenerateHandler(t *testing.T) {
	s := newServer(nil, 6)

	rec := get(t, s, "/terrain.png?alg=simplex&exp=4&freq=3&scale=2&shade=true")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	img, err := png.Decode(rec.Body)
	require.NoError(t, err)
	require.Equal(t, 34, img.Bounds().Dx())

	for _, target := range []string{
		"/terrain.png?exp=7",
		"/terrain.png?exp=abc",
		"/terrain.png?alg=voronoi",
		"/terrain.png?exp=3&scale=99",
		"/terrain.png?exp=3&octaves=0&alg=perlin",
		"/terrain.png?exp=3&palette=sepia",
	} {
		rec = get(t, s, target)
		require.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestStoredHandlers(t *testing.T) {
	store := storage.NewMemoryStore()
	cfg := pipeline.DefaultConfig()
	cfg.SizeExponent = 3
	res, err := pipeline.Generate(cfg)
	require.NoError(t, err)
	doc, err := storage.NewDocFromResult("isle", res)
	require.NoError(t, err)
	require.NoError(t, store.Create(context.Background(), doc))

	s := newServer(store, 6)

	rec := get(t, s, "/terrains")
	require.Equal(t, http.StatusOK, rec.Code)
	var names []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &names))
	require.Equal(t, []string{"isle"}, names)

	rec = get(t, s, "/terrains/isle.json")
	require.Equal(t, http.StatusOK, rec.Code)
	var got storage.TerrainDoc
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, res.Flat, got.HeightMap)

	rec = get(t, s, "/terrains/isle.png?gray=true")
	require.Equal(t, http.StatusOK, rec.Code)
	img, err := png.Decode(rec.Body)
	require.NoError(t, err)
	require.Equal(t, 9, img.Bounds().Dx())

	require.Equal(t, http.StatusNotFound, get(t, s, "/terrains/"+url.PathEscape("nope")+".png").Code)

	require.NoError(t, store.Close())
	require.Equal(t, http.StatusServiceUnavailable, get(t, s, "/terrains").Code)
}

func TestNoStore(t *testing.T) {
	s := newServer(nil, 6)
	require.Equal(t, http.StatusNotFound, get(t, s, "/terrains").Code)
	require.Equal(t, http.StatusNotFound, get(t, s, "/terrains/x.json").Code)
}

func TestConfigFromQueryDefaults(t *testing.T) {
	cfg, err := configFromQuery(url.Values{})
	require.NoError(t, err)
	require.Equal(t, pipeline.DefaultConfig(), cfg)

	cfg, err = configFromQuery(url.Values{"seed": {"9"}, "warp": {"1"}, "warp-src": {"opensimplex"}})
	require.NoError(t, err)
	require.Equal(t, uint64(9), cfg.Seed)
	require.True(t, cfg.Warp.Enabled)
	require.Equal(t, pipeline.WarpOpenSimplex, cfg.Warp.Source)

	_, err = configFromQuery(url.Values{"warp": {"maybe"}})
	require.ErrorIs(t, err, errBadRequest)
}
