package puzzle

// DefaultMatchThreshold is the minimum connected group size that clears.
const DefaultMatchThreshold = 4

// MatchGroup is a connected set of cells that clears together.
// Cells are listed in the order the flood fill visited them.
type MatchGroup struct {
	Color Color // Color of the seed cell that started the search
	Cells []Coord
}

// Size returns the number of cells in the group.
func (m MatchGroup) Size() int {
	return len(m.Cells)
}

// FindMatches scans the grid in row-major order and returns every connected
// group of at least threshold cells. Each occupied, unvisited cell seeds a
// breadth-first search; a neighbor joins the search if its color matches the
// seed color or either side is glow. Every visited cell is marked globally,
// so each cell belongs to at most one group and undersized groups are never
// reopened by a later seed.
//
// Because a glow-seeded search accepts every color, the row-major scan order
// decides whether a mixed-color cluster touching a glow cell comes back as
// one glow-rooted group or as several same-color groups. That asymmetry is
// kept deliberately; see TestFindMatchesGlowSeedScanOrder.
func FindMatches(g *Grid, threshold int) []MatchGroup {
	if threshold < 1 {
		threshold = DefaultMatchThreshold
	}

	visited := make([]bool, g.W*g.H)
	var groups []MatchGroup

	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			seed := C(x, y)
			idx := y*g.W + x
			if visited[idx] {
				continue
			}
			cell := g.Get(seed)
			if !cell.Filled {
				continue
			}

			group := floodFill(g, seed, cell.Color, visited)
			if len(group) >= threshold {
				groups = append(groups, MatchGroup{
					Color: cell.Color,
					Cells: group,
				})
			}
		}
	}

	return groups
}

// floodFill runs a breadth-first search from seed, collecting every occupied
// cell reachable through 4-directional adjacency whose color matches the
// seed color. Visited cells are marked in the shared visited set even when
// the resulting group ends up below threshold.
func floodFill(g *Grid, seed Coord, seedColor Color, visited []bool) []Coord {
	queue := []Coord{seed}
	visited[seed.Y*g.W+seed.X] = true
	var cells []Coord

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		cells = append(cells, cur)

		for _, d := range CardinalDirs() {
			next := cur.Step(d)
			if !g.InBounds(next) {
				continue
			}
			idx := next.Y*g.W + next.X
			if visited[idx] {
				continue
			}
			neighbor := g.Get(next)
			if !neighbor.Filled || !neighbor.Color.Matches(seedColor) {
				continue
			}
			visited[idx] = true
			queue = append(queue, next)
		}
	}

	return cells
}
