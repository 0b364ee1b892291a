package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/lvlterrain/heightmap"
	"github.com/katalvlaran/lvlterrain/pipeline"
	"github.com/katalvlaran/lvlterrain/render"
	"github.com/katalvlaran/lvlterrain/storage"
)

// errBadRequest marks query parameters that cannot be parsed.
var errBadRequest = errors.New("bad request")

type server struct {
	store  storage.Store // nil without -store
	maxExp int
	router *mux.Router
}

func newServer(store storage.Store, maxExp int) *server {
	s := &server{store: store, maxExp: maxExp, router: mux.NewRouter()}
	s.router.HandleFunc("/terrain.png", s.generateHandler).Methods(http.MethodGet)
	s.router.HandleFunc("/terrains", s.listHandler).Methods(http.MethodGet)
	s.router.HandleFunc("/terrains/{name}.png", s.storedImageHandler).Methods(http.MethodGet)
	s.router.HandleFunc("/terrains/{name}.json", s.storedDocHandler).Methods(http.MethodGet)

	return s
}

func (s *server) generateHandler(res http.ResponseWriter, req *http.Request) {
	q := req.URL.Query()
	cfg, err := configFromQuery(q)
	if err != nil {
		s.fail(res, err)
		return
	}
	if cfg.SizeExponent > s.maxExp {
		s.fail(res, fmt.Errorf("%w: exp %d exceeds %d", errBadRequest, cfg.SizeExponent, s.maxExp))
		return
	}
	result, err := pipeline.Generate(cfg)
	if err != nil {
		s.fail(res, err)
		return
	}
	s.writeImage(res, q, result.Grid)
}

func (s *server) listHandler(res http.ResponseWriter, req *http.Request) {
	if s.store == nil {
		http.NotFound(res, req)
		return
	}
	names, err := s.store.ListNames(req.Context())
	if err != nil {
		s.fail(res, err)
		return
	}
	writeJSON(res, names)
}

func (s *server) storedDocHandler(res http.ResponseWriter, req *http.Request) {
	doc, ok := s.lookup(res, req)
	if !ok {
		return
	}
	writeJSON(res, doc)
}

func (s *server) storedImageHandler(res http.ResponseWriter, req *http.Request) {
	doc, ok := s.lookup(res, req)
	if !ok {
		return
	}
	grid, err := doc.Grid()
	if err != nil {
		s.fail(res, err)
		return
	}
	s.writeImage(res, req.URL.Query(), grid)
}

func (s *server) lookup(res http.ResponseWriter, req *http.Request) (*storage.TerrainDoc, bool) {
	if s.store == nil {
		http.NotFound(res, req)
		return nil, false
	}
	doc, err := s.store.ReadByName(req.Context(), mux.Vars(req)["name"])
	if err != nil {
		s.fail(res, err)
		return nil, false
	}

	return doc, true
}

func (s *server) writeImage(res http.ResponseWriter, q url.Values, grid *heightmap.HeightMap) {
	opts, err := previewFromQuery(q)
	if err != nil {
		s.fail(res, err)
		return
	}
	img, err := render.Preview(grid, opts)
	if err != nil {
		s.fail(res, err)
		return
	}
	var buf bytes.Buffer
	if err = render.WritePNG(&buf, img); err != nil {
		s.fail(res, err)
		return
	}
	res.Header().Set("Content-Type", "image/png")
	res.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, _ = res.Write(buf.Bytes())
}

// fail maps domain errors onto HTTP status codes.
func (s *server) fail(res http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, storage.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, storage.ErrUnavailable):
		status = http.StatusServiceUnavailable
	case errors.Is(err, storage.ErrInvalidDocument):
		status = http.StatusInternalServerError
	}
	if status >= http.StatusInternalServerError {
		log.Printf("terraserve: %v", err)
	}
	http.Error(res, err.Error(), status)
}

func writeJSON(res http.ResponseWriter, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	res.Header().Set("Content-Type", "application/json")
	res.Header().Set("Content-Length", strconv.Itoa(len(data)))
	_, _ = res.Write(data)
}
