// Package erosion implements thermal (talus) erosion on height maps.
//
// Each pass moves material from every cell toward its steepest downhill
// 4-neighbor when the drop exceeds the talus angle. Transfers accumulate in a
// delta buffer and are applied after the sweep, so a pass does not depend on
// cell visiting order.
package erosion

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlterrain/heightmap"
)

// TransferRatio is the share of the excess slope moved per transfer.
const TransferRatio = 0.5

var (
	// ErrInvalidIterations indicates a negative pass count.
	ErrInvalidIterations = errors.New("erosion: iterations must be >= 0")

	// ErrInvalidTalus indicates a NaN, infinite or negative talus angle.
	ErrInvalidTalus = errors.New("erosion: talus angle must be finite and >= 0")
)

// neighbors in scan order: up, down, left, right as (dy, dx).
// The first strictly steepest drop wins ties.
var neighbors = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// ThermalErosion2D holds erosion parameters; it keeps no per-grid state.
type ThermalErosion2D struct {
	iterations int
	talus      float64
}

// NewThermalErosion2D validates iterations >= 0 and a finite talus >= 0.
func NewThermalErosion2D(iterations int, talus float64) (*ThermalErosion2D, error) {
	if iterations < 0 {
		return nil, fmt.Errorf("iterations=%d: %w", iterations, ErrInvalidIterations)
	}
	if math.IsNaN(talus) || math.IsInf(talus, 0) || talus < 0 {
		return nil, fmt.Errorf("talus=%v: %w", talus, ErrInvalidTalus)
	}

	return &ThermalErosion2D{iterations: iterations, talus: talus}, nil
}

// Iterations returns the number of passes Apply runs.
func (e *ThermalErosion2D) Iterations() int { return e.iterations }

// Talus returns the stable slope threshold.
func (e *ThermalErosion2D) Talus() float64 { return e.talus }

// Apply runs Iterations passes over hm in place.
func (e *ThermalErosion2D) Apply(hm *heightmap.HeightMap) error {
	if hm == nil {
		return fmt.Errorf("ThermalErosion2D.Apply: %w", heightmap.ErrNilMap)
	}
	delta := make([]float64, hm.Size()*hm.Size())
	for i := 0; i < e.iterations; i++ {
		e.pass(hm, delta)
	}

	return nil
}

// Pass runs one sweep over hm in place and returns the total height moved.
// A nil map moves nothing.
func (e *ThermalErosion2D) Pass(hm *heightmap.HeightMap) float64 {
	if hm == nil {
		return 0
	}

	return e.pass(hm, make([]float64, hm.Size()*hm.Size()))
}

// pass implements one sweep using delta (len size²) as scratch.
//
// Stage 1 (Reset):   zero the delta buffer.
// Stage 2 (Scan):    for each cell find the steepest in-bounds drop.
// Stage 3 (Move):    when drop > talus, transfer (drop-talus)·TransferRatio.
// Stage 4 (Commit):  add delta into the grid.
func (e *ThermalErosion2D) pass(hm *heightmap.HeightMap, delta []float64) float64 {
	n := hm.Size()
	for i := range delta {
		delta[i] = 0
	}

	var moved float64
	for y := 0; y < n; y++ {
		row := hm.Row(y)
		for x, curr := range row {
			maxDiff, target := 0.0, -1
			for _, d := range neighbors {
				ny, nx := y+d[0], x+d[1]
				if ny < 0 || ny >= n || nx < 0 || nx >= n {
					continue
				}
				if diff := curr - hm.Row(ny)[nx]; diff > maxDiff {
					maxDiff, target = diff, ny*n+nx
				}
			}
			if target >= 0 && maxDiff > e.talus {
				amount := (maxDiff - e.talus) * TransferRatio
				delta[y*n+x] -= amount
				delta[target] += amount
				moved += amount
			}
		}
	}

	for y := 0; y < n; y++ {
		row := hm.Row(y)
		for x := range row {
			row[x] += delta[y*n+x]
		}
	}

	return moved
}
