package regions_test

import (
	"fmt"

	"github.com/katalvlaran/lvlterrain/heightmap"
	"github.com/katalvlaran/lvlterrain/regions"
)

// ExampleMap_Bridge counts islands and the cost of joining the first two.
func ExampleMap_Bridge() {
	hm, _ := heightmap.FromRows([][]float64{
		{0.9, 0.1, 0.1, 0.8},
		{0.7, 0.1, 0.2, 0.6},
		{0.1, 0.1, 0.1, 0.1},
		{0.1, 0.1, 0.1, 0.5},
	})
	m, _ := regions.New(hm, regions.DefaultOptions())
	fmt.Println("islands:", len(m.Landmasses()))

	path, cost, _ := m.Bridge(0, 1)
	for _, idx := range path {
		x, y := m.Coordinate(idx)
		fmt.Printf("(%d,%d) ", x, y)
	}
	fmt.Println("cost:", cost)
	// Output:
	// islands: 3
	// (0,0) (1,0) (2,0) (3,0) cost: 2
}
