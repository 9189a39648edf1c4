package game

import "fmt"

// DoubleBlankScore is the house-rule value of the (0,0) tile. The double
// blank would otherwise be worth nothing, which makes it a free discard.
const DoubleBlankScore = 50

// Tile is a single domino. The two ends are called A and B; the distinction
// is arbitrary for matching, but it anchors a Node's Orientation. Tiles are
// compared by pointer identity: while both (9,1) tiles of two different sets
// are in play, they are distinct objects.
type Tile struct {
	A int
	B int
}

func NewTile(a, b int) *Tile {
	return &Tile{A: a, B: b}
}

func (t *Tile) String() string {
	return fmt.Sprintf("(%d,%d)", t.A, t.B)
}

// IsDouble reports whether both ends carry the same pip count.
func (t *Tile) IsDouble() bool {
	return t.A == t.B
}

// Ends returns both pip counts.
func (t *Tile) Ends() (int, int) {
	return t.A, t.B
}

// HasEnd reports whether either end carries n pips.
func (t *Tile) HasEnd(n int) bool {
	return t.A == n || t.B == n
}

// Value is the scoring value: the pip sum, except the double blank which
// scores DoubleBlankScore.
func (t *Tile) Value() int {
	if t.A == 0 && t.B == 0 {
		return DoubleBlankScore
	}
	return t.A + t.B
}
