package puzzle

import (
	"sort"
	"testing"
)

func sortedCoords(cells []Coord) []Coord {
	out := make([]Coord, len(cells))
	copy(out, cells)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

func coordsEqual(a, b []Coord) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFindMatchesSquare(t *testing.T) {
	g := gridFromRows(t, DefaultWidth, DefaultHeight, map[int]string{
		10: ".RR...",
		11: ".RR...",
	})

	groups := FindMatches(g, DefaultMatchThreshold)
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	if groups[0].Color != ColorRed {
		t.Errorf("group color = %v, want red", groups[0].Color)
	}

	want := []Coord{C(1, 10), C(2, 10), C(1, 11), C(2, 11)}
	if got := sortedCoords(groups[0].Cells); !coordsEqual(got, want) {
		t.Errorf("group cells = %v, want %v", got, want)
	}
}

func TestFindMatchesBelowThreshold(t *testing.T) {
	// Three connected greens with no fourth neighbor
	g := gridFromRows(t, DefaultWidth, DefaultHeight, map[int]string{
		10: "G.....",
		11: "GG....",
	})

	if groups := FindMatches(g, DefaultMatchThreshold); len(groups) != 0 {
		t.Errorf("got %d groups, want none for a group of 3", len(groups))
	}
}

func TestFindMatchesDiagonalNotConnective(t *testing.T) {
	g := gridFromRows(t, DefaultWidth, DefaultHeight, map[int]string{
		8:  "B.....",
		9:  ".B....",
		10: "B.....",
		11: ".B....",
	})

	if groups := FindMatches(g, DefaultMatchThreshold); len(groups) != 0 {
		t.Errorf("diagonal cells should never connect, got %d groups", len(groups))
	}
}

func TestFindMatchesGlowExtendsLine(t *testing.T) {
	// A glow pebble next to a 3-cell yellow line completes the group
	g := gridFromRows(t, DefaultWidth, DefaultHeight, map[int]string{
		11: "YYY*..",
	})

	groups := FindMatches(g, DefaultMatchThreshold)
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	if groups[0].Size() != 4 {
		t.Errorf("group size = %d, want 4", groups[0].Size())
	}
	if groups[0].Color != ColorYellow {
		t.Errorf("group color = %v, want yellow (row-major seed)", groups[0].Color)
	}

	want := []Coord{C(0, 11), C(1, 11), C(2, 11), C(3, 11)}
	if got := sortedCoords(groups[0].Cells); !coordsEqual(got, want) {
		t.Errorf("group cells = %v, want %v", got, want)
	}
}

func TestFindMatchesGlowSeedScanOrder(t *testing.T) {
	// When the row-major scan reaches the glow cell first, the glow-seeded
	// flood does not discriminate by color and swallows the whole connected
	// cluster of mixed colors.
	glowFirst := gridFromRows(t, DefaultWidth, DefaultHeight, map[int]string{
		10: "*RR...",
		11: "BBR...",
	})

	groups := FindMatches(glowFirst, DefaultMatchThreshold)
	if len(groups) != 1 {
		t.Fatalf("glow-seeded: got %d groups, want 1", len(groups))
	}
	if groups[0].Color != ColorGlow {
		t.Errorf("glow-seeded group color = %v, want glow", groups[0].Color)
	}
	if groups[0].Size() != 6 {
		t.Errorf("glow-seeded group size = %d, want all 6 connected cells", groups[0].Size())
	}

	// The same cluster with a red cell scanned first: the red seed absorbs
	// the glow, the blues stay blocked behind their own color boundary and
	// are too few to clear.
	redFirst := gridFromRows(t, DefaultWidth, DefaultHeight, map[int]string{
		10: "R*R...",
		11: "BBR...",
	})

	groups = FindMatches(redFirst, DefaultMatchThreshold)
	if len(groups) != 1 {
		t.Fatalf("red-seeded: got %d groups, want 1", len(groups))
	}
	if groups[0].Color != ColorRed {
		t.Errorf("red-seeded group color = %v, want red", groups[0].Color)
	}
	if groups[0].Size() != 4 {
		t.Errorf("red-seeded group size = %d, want 4 (reds plus glow)", groups[0].Size())
	}
}

func TestFindMatchesColorBlocksExpansion(t *testing.T) {
	// A differently-colored cell splits two red runs: neither side reaches
	// the threshold through it.
	g := gridFromRows(t, DefaultWidth, DefaultHeight, map[int]string{
		11: "RRBRR.",
	})

	if groups := FindMatches(g, DefaultMatchThreshold); len(groups) != 0 {
		t.Errorf("a blocking cell must not be traversed, got %d groups", len(groups))
	}
}

func TestFindMatchesEachCellInOneGroup(t *testing.T) {
	// Two separate clearable groups; every cell is reported exactly once.
	g := gridFromRows(t, DefaultWidth, DefaultHeight, map[int]string{
		10: "RR..GG",
		11: "RR..GG",
	})

	groups := FindMatches(g, DefaultMatchThreshold)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}

	seen := make(map[Coord]bool)
	for _, group := range groups {
		for _, c := range group.Cells {
			if seen[c] {
				t.Errorf("cell %v reported in more than one group", c)
			}
			seen[c] = true
		}
	}
	if len(seen) != 8 {
		t.Errorf("reported %d distinct cells, want 8", len(seen))
	}
}

func TestFindMatchesSmallGroupsStayVisited(t *testing.T) {
	// An undersized glow-seeded group must not be reopened by a later seed.
	// The glow at (0,10) floods the two blues below it (group of 3, dropped);
	// the blues are then unavailable to seed their own group.
	g := gridFromRows(t, DefaultWidth, DefaultHeight, map[int]string{
		10: "*.....",
		11: "BB....",
	})

	if groups := FindMatches(g, 3); len(groups) != 1 {
		t.Fatalf("threshold 3: want exactly one group, got %d", len(groups))
	}
	if groups := FindMatches(g, 4); len(groups) != 0 {
		t.Errorf("threshold 4: discarded cells must not reopen, got %d groups", len(groups))
	}
}
