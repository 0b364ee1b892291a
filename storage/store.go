package storage

import (
	"context"
	"fmt"
	"sort"
)

// Store persists TerrainDocs. Implementations return copies; callers may
// mutate what they pass in or get back.
type Store interface {
	// Create validates doc and stores it, replacing any document with the
	// same name, seed and dimensions.
	Create(ctx context.Context, doc *TerrainDoc) error
	// ReadByName returns the 2D document named name with the lowest seed.
	ReadByName(ctx context.Context, name string) (*TerrainDoc, error)
	// ReadBySeed returns the 2D document with seed whose name sorts first.
	ReadBySeed(ctx context.Context, seed int64) (*TerrainDoc, error)
	// ListNames returns the distinct names of 2D documents, sorted.
	ListNames(ctx context.Context) ([]string, error)
	// DeleteBySeed removes the document ReadBySeed would return.
	DeleteBySeed(ctx context.Context, seed int64) error
	// Close releases the store; later calls fail with ErrUnavailable.
	Close() error
}

// checkContext reports a cancelled or expired context as ErrUnavailable.
func checkContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	return nil
}

// sortKeys orders keys by (name, seed).
func sortKeys(keys []key) {
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].name != keys[j].name {
			return keys[i].name < keys[j].name
		}
		return keys[i].seed < keys[j].seed
	})
}

// firstByName selects the lowest-seed 2D key named name.
func firstByName(keys []key, name string) (key, bool) {
	var best key
	found := false
	for _, k := range keys {
		if k.dimensions != Dimensions2D || k.name != name {
			continue
		}
		if !found || k.seed < best.seed {
			best, found = k, true
		}
	}

	return best, found
}

// firstBySeed selects the 2D key with seed whose name sorts first.
func firstBySeed(keys []key, seed int64) (key, bool) {
	var best key
	found := false
	for _, k := range keys {
		if k.dimensions != Dimensions2D || k.seed != seed {
			continue
		}
		if !found || k.name < best.name {
			best, found = k, true
		}
	}

	return best, found
}

// distinctNames returns the sorted, de-duplicated 2D names.
func distinctNames(keys []key) []string {
	sortKeys(keys)
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		if k.dimensions != Dimensions2D {
			continue
		}
		if len(names) == 0 || names[len(names)-1] != k.name {
			names = append(names, k.name)
		}
	}

	return names
}
