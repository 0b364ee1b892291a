package storage

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

const fileExt = ".json"

// FileStore keeps one JSON document per key under Dir. File names encode the
// key as <hex(name)>_<seed>_<dimensions>.json, so listing never parses
// document bodies. Safe for concurrent use within one process.
type FileStore struct {
	dir    string
	mu     sync.RWMutex
	closed bool
}

var _ Store = (*FileStore)(nil)

// NewFileStore opens (creating if needed) the directory dir.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("NewFileStore: empty directory: %w", ErrUnavailable)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("NewFileStore(%s): %w: %w", dir, ErrUnavailable, err)
	}

	return &FileStore{dir: dir}, nil
}

// Dir returns the backing directory.
func (s *FileStore) Dir() string { return s.dir }

func (s *FileStore) ready(ctx context.Context) error {
	if s.closed {
		return fmt.Errorf("FileStore: %w", ErrUnavailable)
	}

	return checkContext(ctx)
}

func fileName(k key) string {
	return hex.EncodeToString([]byte(k.name)) + "_" +
		strconv.FormatInt(k.seed, 10) + "_" +
		strconv.FormatUint(uint64(k.dimensions), 10) + fileExt
}

// parseFileName is the inverse of fileName; foreign files report false.
func parseFileName(base string) (key, bool) {
	stem, ok := strings.CutSuffix(base, fileExt)
	if !ok {
		return key{}, false
	}
	parts := strings.Split(stem, "_")
	if len(parts) != 3 {
		return key{}, false
	}
	name, err := hex.DecodeString(parts[0])
	if err != nil {
		return key{}, false
	}
	seed, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return key{}, false
	}
	dims, err := strconv.ParseUint(parts[2], 10, 8)
	if err != nil {
		return key{}, false
	}

	return key{name: string(name), seed: seed, dimensions: uint8(dims)}, true
}

func (s *FileStore) keys() ([]key, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("FileStore: %w: %w", ErrUnavailable, err)
	}
	keys := make([]key, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if k, ok := parseFileName(e.Name()); ok {
			keys = append(keys, k)
		}
	}

	return keys, nil
}

func (s *FileStore) load(k key) (*TerrainDoc, error) {
	path := filepath.Join(s.dir, fileName(k))
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", path, ErrUnavailable, err)
	}
	var doc TerrainDoc
	if err = json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", path, ErrInvalidDocument, err)
	}

	return &doc, nil
}

// Create implements Store. The document is written to a temporary file in
// the same directory and renamed over any previous version.
func (s *FileStore) Create(ctx context.Context, doc *TerrainDoc) error {
	if doc == nil {
		return fmt.Errorf("FileStore.Create: nil document: %w", ErrInvalidDocument)
	}
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("FileStore.Create: %w", err)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("FileStore.Create: %w: %w", ErrInvalidDocument, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err = s.ready(ctx); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, ".terrain-*.tmp")
	if err != nil {
		return fmt.Errorf("FileStore.Create: %w: %w", ErrUnavailable, err)
	}
	tmpName := tmp.Name()
	_, err = tmp.Write(raw)
	if err == nil {
		err = tmp.Sync()
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmpName, filepath.Join(s.dir, fileName(doc.key())))
	}
	if err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("FileStore.Create: %w: %w", ErrUnavailable, err)
	}

	return nil
}

// ReadByName implements Store.
func (s *FileStore) ReadByName(ctx context.Context, name string) (*TerrainDoc, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	keys, err := s.keys()
	if err != nil {
		return nil, err
	}
	k, ok := firstByName(keys, name)
	if !ok {
		return nil, fmt.Errorf("name %q: %w", name, ErrNotFound)
	}

	return s.load(k)
}

// ReadBySeed implements Store.
func (s *FileStore) ReadBySeed(ctx context.Context, seed int64) (*TerrainDoc, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	keys, err := s.keys()
	if err != nil {
		return nil, err
	}
	k, ok := firstBySeed(keys, seed)
	if !ok {
		return nil, fmt.Errorf("seed %d: %w", seed, ErrNotFound)
	}

	return s.load(k)
}

// ListNames implements Store.
func (s *FileStore) ListNames(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	keys, err := s.keys()
	if err != nil {
		return nil, err
	}

	return distinctNames(keys), nil
}

// DeleteBySeed implements Store.
func (s *FileStore) DeleteBySeed(ctx context.Context, seed int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ready(ctx); err != nil {
		return err
	}
	keys, err := s.keys()
	if err != nil {
		return err
	}
	k, ok := firstBySeed(keys, seed)
	if !ok {
		return fmt.Errorf("seed %d: %w", seed, ErrNotFound)
	}
	if err = os.Remove(filepath.Join(s.dir, fileName(k))); err != nil {
		return fmt.Errorf("FileStore.DeleteBySeed: %w: %w", ErrUnavailable, err)
	}

	return nil
}

// Close implements Store. Files stay on disk.
func (s *FileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true

	return nil
}
