package regions

import "container/list"

// Bridge finds the cheapest causeway between landmass srcComp and landmass
// dstComp, both indexed as in Landmasses(). Walking over land is free and
// every water cell on the way must be filled at a cost of one. It returns the
// causeway as row-major cells, from a srcComp shore cell to the first
// dstComp cell reached, together with the number of water cells to fill.
//
// The search starts from every srcComp cell at once and always expands the
// cheapest frontier cell next: dry steps join the front of the frontier,
// wet steps the back. Asking for a bridge from a landmass to itself yields
// its first cell at cost 0.
//
// Complexity: O(N·d) time, O(N) memory.
func (m *Map) Bridge(srcComp, dstComp int) (path []int, cost int, err error) {
	n := len(m.landmasses)
	if srcComp < 0 || srcComp >= n || dstComp < 0 || dstComp >= n {
		return nil, 0, ErrComponentIndex
	}
	goal := make([]bool, len(m.land))
	for _, c := range m.landmasses[dstComp] {
		goal[c] = true
	}

	// filled[c] is the fewest water cells filled to reach c, -1 while c is
	// unreached; from[c] is the cell c was reached from.
	filled := make([]int, len(m.land))
	from := make([]int, len(m.land))
	for c := range filled {
		filled[c], from[c] = -1, -1
	}

	frontier := list.New()
	for _, c := range m.landmasses[srcComp] {
		filled[c] = 0
		frontier.PushBack(c)
	}

	landing := -1
	var near []int
	for frontier.Len() > 0 {
		here := frontier.Remove(frontier.Front()).(int)
		if goal[here] {
			landing = here
			break
		}
		near = m.adjacent(here, near[:0])
		for _, next := range near {
			fill := filled[here]
			if !m.land[next] {
				fill++
			}
			if filled[next] >= 0 && fill >= filled[next] {
				continue
			}
			filled[next], from[next] = fill, here
			if m.land[next] {
				frontier.PushFront(next)
			} else {
				frontier.PushBack(next)
			}
		}
	}
	if landing < 0 {
		return nil, 0, ErrNoPath
	}

	return trace(from, landing), filled[landing], nil
}

// trace follows from back from end to a cell with no predecessor and
// returns the walk in forward order.
func trace(from []int, end int) []int {
	steps := 0
	for c := end; c >= 0; c = from[c] {
		steps++
	}
	walk := make([]int, steps)
	for c := end; c >= 0; c = from[c] {
		steps--
		walk[steps] = c
	}

	return walk
}
