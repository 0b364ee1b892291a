// Package regions analyses a normalized height map as land and water,
// enabling coastline-level questions about generated terrain.
//
// What:
//
//   - Map classifies each cell as land (height ≥ SeaLevel) or water.
//   - Landmasses / WaterBodies list connected components (islands, lakes
//     and seas) under 4- or 8-connectivity.
//   - Bridge lays the cheapest causeway between two landmasses: the
//     fewest water cells to fill so that they touch.
//
// Why:
//
//   - Reject or re-seed maps that are all ocean or one blob of land.
//   - Count islands, place land bridges, find inland lakes.
//
// Complexity:
//
//   - New (includes both flood passes): O(N×d), Memory: O(N)
//     (N = size², d = 4 or 8 neighbors).
//   - Bridge: O(N×d), Memory: O(N).
//
// Options:
//
//   - Options.SeaLevel: land threshold in [0,1], default 0.3 (the
//     water/sand color boundary).
//   - Options.Conn: Conn4 (default) or Conn8.
//
// Errors:
//
//   - heightmap.ErrNilMap: nil input map.
//   - ErrInvalidSeaLevel:  sea level NaN or outside [0,1].
//   - ErrComponentIndex:   landmass index out of range.
//   - ErrNoPath:           no bridge exists between the landmasses.
package regions
