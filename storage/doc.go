// Package storage persists generated 2D terrains.
//
// A TerrainDoc is keyed by (Name, Seed, Dimensions). Creating a document whose
// key already exists replaces it, so a name+seed pair always refers to exactly
// one height map. Two local backends implement Store:
//
//   - MemoryStore: map-backed, safe for concurrent use.
//   - FileStore:   one JSON file per document under a directory; writes go to
//     a temporary file that is renamed into place.
//
// Every method takes a context.Context. A cancelled context or a closed store
// yields ErrUnavailable; a missing record yields ErrNotFound.
package storage
