// Package regions defines core types, options, and sentinel errors.
package regions

import (
	"errors"

	"github.com/katalvlaran/lvlterrain/heightmap"
)

// Sentinel errors for region analysis.
var (
	// ErrInvalidSeaLevel indicates a sea level that is NaN or outside [0,1].
	ErrInvalidSeaLevel = errors.New("regions: sea level must be within [0,1]")
	// ErrComponentIndex indicates a requested landmass index is out of range.
	ErrComponentIndex = errors.New("regions: component index out of range")
	// ErrNoPath indicates no bridge exists between two landmasses.
	ErrNoPath = errors.New("regions: no path between specified components")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// DefaultSeaLevel matches the boundary between the water and sand color bands.
const DefaultSeaLevel = heightmap.ThresholdWater

// Options contains tunable parameters for region analysis.
type Options struct {
	// SeaLevel is the minimum normalized height considered land.
	SeaLevel float64
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultOptions returns SeaLevel=DefaultSeaLevel, Conn=Conn4.
func DefaultOptions() Options {
	return Options{
		SeaLevel: DefaultSeaLevel,
		Conn:     Conn4,
	}
}

// Map is an immutable land/water view of one height map.
// Cells are addressed by row-major index y*Size+x.
type Map struct {
	Size     int
	SeaLevel float64
	Conn     Connectivity

	land        []bool
	landmasses  [][]int
	waterBodies [][]int
	compass     []step
}

// step is one move on the grid; y grows southward.
type step struct{ dx, dy int }

// Neighbour steps clockwise from north.
var (
	compass4 = []step{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	compass8 = []step{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)
