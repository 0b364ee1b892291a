package regions_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlterrain/heightmap"
	"github.com/katalvlaran/lvlterrain/regions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Three islands in one sea (1 = land, 0 = water):
//
//	1 1 0 0 1
//	1 0 0 0 1
//	0 0 0 0 0
//	0 0 0 1 1
//	0 0 0 1 1
var archipelago = [][]float64{
	{1, 1, 0, 0, 1},
	{1, 0, 0, 0, 1},
	{0, 0, 0, 0, 0},
	{0, 0, 0, 1, 1},
	{0, 0, 0, 1, 1},
}

func mustMap(t *testing.T, rows [][]float64, opts regions.Options) *regions.Map {
	t.Helper()
	hm, err := heightmap.FromRows(rows)
	require.NoError(t, err)
	m, err := regions.New(hm, opts)
	require.NoError(t, err)

	return m
}

func TestDefaultOptions(t *testing.T) {
	o := regions.DefaultOptions()
	require.Equal(t, heightmap.ThresholdWater, o.SeaLevel)
	require.Equal(t, regions.Conn4, o.Conn)
}

func TestNewErrors(t *testing.T) {
	_, err := regions.New(nil, regions.DefaultOptions())
	require.ErrorIs(t, err, heightmap.ErrNilMap)

	hm, _ := heightmap.New(3)
	for _, bad := range []float64{-0.1, 1.5, math.NaN()} {
		_, err = regions.New(hm, regions.Options{SeaLevel: bad})
		require.ErrorIs(t, err, regions.ErrInvalidSeaLevel)
	}
}

// TestLandmasses checks discovery order, flood order inside each landmass and sizes.
func TestLandmasses(t *testing.T) {
	m := mustMap(t, archipelago, regions.DefaultOptions())

	require.Equal(t, [][]int{
		{0, 1, 5},
		{4, 9},
		{18, 19, 23, 24},
	}, m.Landmasses())

	water := m.WaterBodies()
	require.Len(t, water, 1)
	require.Len(t, water[0], 16)
	assert.InDelta(t, 9.0/25, m.LandFraction(), 1e-12)

	x, y := m.Coordinate(23)
	require.Equal(t, [2]int{3, 4}, [2]int{x, y})
	require.True(t, m.IsLand(23))
	require.False(t, m.IsLand(2))
	require.True(t, m.InBounds(4, 4))
	require.False(t, m.InBounds(5, 0))
}

// TestConn8JoinsDiagonals: corner-touching land is one landmass under Conn8.
func TestConn8JoinsDiagonals(t *testing.T) {
	grid := [][]float64{
		{1, 0, 1},
		{0, 1, 0},
		{1, 0, 1},
	}
	m4 := mustMap(t, grid, regions.Options{SeaLevel: 0.5, Conn: regions.Conn4})
	m8 := mustMap(t, grid, regions.Options{SeaLevel: 0.5, Conn: regions.Conn8})

	require.Len(t, m4.Landmasses(), 5)
	require.Len(t, m4.WaterBodies(), 4)
	require.Len(t, m8.Landmasses(), 1)
	require.Len(t, m8.WaterBodies(), 1)
}

// TestSeaLevelBoundary: heights equal to sea level count as land.
func TestSeaLevelBoundary(t *testing.T) {
	m := mustMap(t, [][]float64{{0.3, 0.29}, {0.31, 0}}, regions.DefaultOptions())
	require.True(t, m.IsLand(0))
	require.False(t, m.IsLand(1))
	require.Equal(t, [][]int{{0, 2}}, m.Landmasses())
	require.Equal(t, [][]int{{1, 3}}, m.WaterBodies())
}

func TestBridge(t *testing.T) {
	m := mustMap(t, archipelago, regions.DefaultOptions())

	path, cost, err := m.Bridge(0, 1)
	require.NoError(t, err)
	require.Equal(t, 2, cost)
	require.Equal(t, []int{1, 2, 3, 4}, path)

	// crossing the middle island is cheaper than going straight
	path, cost, err = m.Bridge(0, 2)
	require.NoError(t, err)
	require.Equal(t, 3, cost)
	require.True(t, m.IsLand(path[0]))
	require.True(t, m.IsLand(path[len(path)-1]))

	var filled int
	for _, idx := range path {
		if !m.IsLand(idx) {
			filled++
		}
	}
	require.Equal(t, cost, filled)

	path, cost, err = m.Bridge(2, 2)
	require.NoError(t, err)
	require.Zero(t, cost)
	require.Equal(t, []int{18}, path)
}

func TestBridgeErrors(t *testing.T) {
	m := mustMap(t, archipelago, regions.DefaultOptions())
	_, _, err := m.Bridge(0, 3)
	require.ErrorIs(t, err, regions.ErrComponentIndex)
	_, _, err = m.Bridge(-1, 0)
	require.ErrorIs(t, err, regions.ErrComponentIndex)

	ocean := mustMap(t, [][]float64{{0, 0}, {0, 0}}, regions.DefaultOptions())
	require.Empty(t, ocean.Landmasses())
	require.Zero(t, ocean.LandFraction())
	_, _, err = ocean.Bridge(0, 0)
	require.ErrorIs(t, err, regions.ErrComponentIndex)
}

// TestBridgeCauseway: every causeway step moves to a neighbouring cell under
// the map's connectivity, and diagonals make the crossing cheaper.
func TestBridgeCauseway(t *testing.T) {
	for _, tc := range []struct {
		conn    regions.Connectivity
		maxStep int
		cost    int
	}{
		{regions.Conn4, 1, 3},
		{regions.Conn8, 2, 2},
	} {
		m := mustMap(t, archipelago, regions.Options{SeaLevel: 0.5, Conn: tc.conn})
		path, cost, err := m.Bridge(0, 2)
		require.NoError(t, err)
		require.Equal(t, tc.cost, cost)
		require.Contains(t, m.Landmasses()[0], path[0])
		require.Contains(t, m.Landmasses()[2], path[len(path)-1])

		for i := 1; i < len(path); i++ {
			ax, ay := m.Coordinate(path[i-1])
			bx, by := m.Coordinate(path[i])
			dx, dy := abs(ax-bx), abs(ay-by)
			require.LessOrEqual(t, dx, 1)
			require.LessOrEqual(t, dy, 1)
			require.LessOrEqual(t, dx+dy, tc.maxStep)
			require.NotZero(t, dx+dy)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
