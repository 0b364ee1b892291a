package storage_test

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlterrain/pipeline"
	"github.com/katalvlaran/lvlterrain/storage"
)

// StoreSuite runs the Store contract against one backend.
type StoreSuite struct {
	suite.Suite
	ctx      context.Context
	newStore func(t *testing.T) storage.Store
	store    storage.Store
}

func (s *StoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = s.newStore(s.T())
}

func (s *StoreSuite) TearDownTest() {
	require.NoError(s.T(), s.store.Close())
}

// doc builds a valid 3×3 document whose cells all equal fill.
func doc(name string, seed int64, fill float64) *storage.TerrainDoc {
	hm := make([]float64, 9)
	for i := range hm {
		hm[i] = fill
	}

	return &storage.TerrainDoc{
		Name:       name,
		Seed:       seed,
		Params:     storage.TerrainParams{NoiseType: "perlin", Frequency: 1, Persistence: 0.5, Octaves: 4},
		HeightMap:  hm,
		Dimensions: storage.Dimensions2D,
	}
}

// TestRoundTrip: generate 65×65 with erosion, store, read back.
func (s *StoreSuite) TestRoundTrip() {
	t := s.T()
	cfg := pipeline.DefaultConfig()
	cfg.SizeExponent = 6
	cfg.Seed = 42
	cfg.Erosion = pipeline.ErosionConfig{Enabled: true, Iterations: 3, Talus: 1.0}
	res, err := pipeline.Generate(cfg)
	require.NoError(t, err)

	d, err := storage.NewDocFromResult("roundtrip", res)
	require.NoError(t, err)
	require.NoError(t, s.store.Create(s.ctx, d))

	got, err := s.store.ReadByName(s.ctx, "roundtrip")
	require.NoError(t, err)
	require.Len(t, got.HeightMap, 65*65)
	require.Equal(t, res.Flat[len(res.Flat)/2], got.HeightMap[len(got.HeightMap)/2])
	require.Equal(t, res.Flat, got.HeightMap)
	require.Equal(t, int64(42), got.Seed)
	require.Equal(t, "fractal", got.Params.NoiseType)
	require.NotNil(t, got.Params.ErosionIters)
	require.Equal(t, 3, *got.Params.ErosionIters)
	require.Nil(t, got.Params.WarpStrength)

	back, err := got.Config()
	require.NoError(t, err)
	require.Equal(t, cfg, back)
	regen, err := pipeline.Generate(back)
	require.NoError(t, err)
	require.Equal(t, res.Flat, regen.Flat)

	grid, err := got.Grid()
	require.NoError(t, err)
	require.True(t, grid.Equal(res.Grid))
}

// TestCreateReplaces: same name+seed overwrites, different seed coexists.
func (s *StoreSuite) TestCreateReplaces() {
	t := s.T()
	require.NoError(t, s.store.Create(s.ctx, doc("hills", 1, 0.1)))
	require.NoError(t, s.store.Create(s.ctx, doc("hills", 1, 0.9)))
	require.NoError(t, s.store.Create(s.ctx, doc("hills", 2, 0.5)))

	got, err := s.store.ReadBySeed(s.ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 0.9, got.HeightMap[0])

	names, err := s.store.ListNames(s.ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"hills"}, names)

	// lowest seed wins for a shared name
	got, err = s.store.ReadByName(s.ctx, "hills")
	require.NoError(t, err)
	require.Equal(t, int64(1), got.Seed)
}

func (s *StoreSuite) TestListAndDelete() {
	t := s.T()
	names, err := s.store.ListNames(s.ctx)
	require.NoError(t, err)
	require.Empty(t, names)

	for _, d := range []*storage.TerrainDoc{doc("zeta", 7, 0), doc("alpha", 7, 0), doc("mid", 3, 0)} {
		require.NoError(t, s.store.Create(s.ctx, d))
	}
	names, err = s.store.ListNames(s.ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"alpha", "mid", "zeta"}, names)

	got, err := s.store.ReadBySeed(s.ctx, 7)
	require.NoError(t, err)
	require.Equal(t, "alpha", got.Name)

	require.NoError(t, s.store.DeleteBySeed(s.ctx, 7))
	got, err = s.store.ReadBySeed(s.ctx, 7)
	require.NoError(t, err)
	require.Equal(t, "zeta", got.Name)

	require.NoError(t, s.store.DeleteBySeed(s.ctx, 7))
	require.ErrorIs(t, s.store.DeleteBySeed(s.ctx, 7), storage.ErrNotFound)
	_, err = s.store.ReadBySeed(s.ctx, 7)
	require.ErrorIs(t, err, storage.ErrNotFound)
	_, err = s.store.ReadByName(s.ctx, "alpha")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

// TestCopies: neither the stored input nor a returned doc aliases the store.
func (s *StoreSuite) TestCopies() {
	t := s.T()
	d := doc("copy", 5, 0.25)
	require.NoError(t, s.store.Create(s.ctx, d))
	d.HeightMap[0] = 99

	got, err := s.store.ReadByName(s.ctx, "copy")
	require.NoError(t, err)
	require.Equal(t, 0.25, got.HeightMap[0])
	got.HeightMap[1] = 42

	again, err := s.store.ReadByName(s.ctx, "copy")
	require.NoError(t, err)
	require.Equal(t, 0.25, again.HeightMap[1])
}

func (s *StoreSuite) TestInvalidDocument() {
	t := s.T()
	require.ErrorIs(t, s.store.Create(s.ctx, nil), storage.ErrInvalidDocument)

	bad := doc("", 1, 0)
	require.ErrorIs(t, s.store.Create(s.ctx, bad), storage.ErrInvalidDocument)

	bad = doc("x", 1, 0)
	bad.Dimensions = 3
	require.ErrorIs(t, s.store.Create(s.ctx, bad), storage.ErrInvalidDocument)

	bad = doc("x", 1, 0)
	bad.HeightMap = bad.HeightMap[:8]
	require.ErrorIs(t, s.store.Create(s.ctx, bad), storage.ErrInvalidDocument)

	bad = doc(strings.Repeat("a", storage.MaxNameLength+1), 1, 0)
	require.ErrorIs(t, s.store.Create(s.ctx, bad), storage.ErrInvalidDocument)

	// the longest valid name with the widest seed still fits a file name
	long := doc(strings.Repeat("a", storage.MaxNameLength), math.MinInt64, 0)
	require.NoError(t, s.store.Create(s.ctx, long))
	got, err := s.store.ReadByName(s.ctx, long.Name)
	require.NoError(t, err)
	require.Equal(t, long, got)
	require.NoError(t, s.store.DeleteBySeed(s.ctx, math.MinInt64))

	names, err := s.store.ListNames(s.ctx)
	require.NoError(t, err)
	require.Empty(t, names)
}

func (s *StoreSuite) TestCancelledContext() {
	t := s.T()
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	require.ErrorIs(t, s.store.Create(ctx, doc("c", 1, 0)), storage.ErrUnavailable)
	_, err := s.store.ReadByName(ctx, "c")
	require.ErrorIs(t, err, storage.ErrUnavailable)
	require.ErrorIs(t, err, context.Canceled)
	_, err = s.store.ListNames(ctx)
	require.ErrorIs(t, err, storage.ErrUnavailable)
}

func (s *StoreSuite) TestClosed() {
	t := s.T()
	require.NoError(t, s.store.Close())
	require.ErrorIs(t, s.store.Create(s.ctx, doc("c", 1, 0)), storage.ErrUnavailable)
	_, err := s.store.ReadBySeed(s.ctx, 1)
	require.ErrorIs(t, err, storage.ErrUnavailable)
	require.ErrorIs(t, s.store.DeleteBySeed(s.ctx, 1), storage.ErrUnavailable)
}

func TestMemoryStore(t *testing.T) {
	suite.Run(t, &StoreSuite{newStore: func(*testing.T) storage.Store {
		return storage.NewMemoryStore()
	}})
}

func TestFileStore(t *testing.T) {
	suite.Run(t, &StoreSuite{newStore: func(t *testing.T) storage.Store {
		fs, err := storage.NewFileStore(t.TempDir())
		require.NoError(t, err)
		return fs
	}})
}
