package regions

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlterrain/heightmap"
)

// New classifies hm against opts.SeaLevel and labels its components.
// The map is expected to be normalized into [0,1]; it is not retained.
// Complexity: O(N×d) time and O(N) memory.
func New(hm *heightmap.HeightMap, opts Options) (*Map, error) {
	if hm == nil {
		return nil, fmt.Errorf("regions.New: %w", heightmap.ErrNilMap)
	}
	if math.IsNaN(opts.SeaLevel) || opts.SeaLevel < 0 || opts.SeaLevel > 1 {
		return nil, fmt.Errorf("sea level=%v: %w", opts.SeaLevel, ErrInvalidSeaLevel)
	}

	n := hm.Size()
	land := make([]bool, n*n)
	for i, v := range heightmap.Flatten(hm) {
		land[i] = v >= opts.SeaLevel
	}

	compass := compass4
	if opts.Conn == Conn8 {
		compass = compass8
	}

	m := &Map{
		Size:     n,
		SeaLevel: opts.SeaLevel,
		Conn:     opts.Conn,
		land:     land,
		compass:  compass,
	}
	m.landmasses = m.flood(true)
	m.waterBodies = m.flood(false)

	return m, nil
}

// InBounds reports whether (x,y) lies within the grid.
// Complexity: O(1).
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Size && y >= 0 && y < m.Size
}

// IsLand reports whether the cell at row-major index idx is land.
func (m *Map) IsLand(idx int) bool {
	return m.land[idx]
}

// index maps (x,y) to a row-major index: y*Size + x.
func (m *Map) index(x, y int) int {
	return y*m.Size + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (m *Map) Coordinate(idx int) (x, y int) {
	return idx % m.Size, idx / m.Size
}

// Landmasses returns the land components in first-cell row-major order.
// Each landmass lists its cells in breadth-first order from that first cell.
// The slices are shared; callers must not modify them.
func (m *Map) Landmasses() [][]int { return m.landmasses }

// WaterBodies returns the water components, ordered like Landmasses.
func (m *Map) WaterBodies() [][]int { return m.waterBodies }

// LandFraction returns the share of cells at or above sea level.
func (m *Map) LandFraction() float64 {
	var count int
	for _, l := range m.land {
		if l {
			count++
		}
	}

	return float64(count) / float64(len(m.land))
}

// flood labels every contiguous body of land (land=true) or water
// (land=false). Bodies appear in the row-major order of their first cell, and
// each lists its cells in the order the flood reached them.
//
// Time:   O(N·d), where d = 4 or 8.
// Memory: O(N) for the claimed flags and output.
func (m *Map) flood(land bool) [][]int {
	claimed := make([]bool, len(m.land))
	var bodies [][]int
	var near []int

	for start, l := range m.land {
		if l != land || claimed[start] {
			continue
		}
		claimed[start] = true
		body := []int{start}
		for head := 0; head < len(body); head++ {
			near = m.adjacent(body[head], near[:0])
			for _, c := range near {
				if m.land[c] == land && !claimed[c] {
					claimed[c] = true
					body = append(body, c)
				}
			}
		}
		bodies = append(bodies, body)
	}

	return bodies
}

// adjacent appends the in-grid neighbours of cell to buf in compass order.
func (m *Map) adjacent(cell int, buf []int) []int {
	x, y := m.Coordinate(cell)
	for _, s := range m.compass {
		nx, ny := x+s.dx, y+s.dy
		if m.InBounds(nx, ny) {
			buf = append(buf, m.index(nx, ny))
		}
	}

	return buf
}
