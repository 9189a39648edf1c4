package game

import "math/rand"

// Boneyard holds the tiles players draw from when they can't make a play.
type Boneyard struct {
	Tiles []*Tile
}

// NewBoneyard builds the full tile set for a "double-X" set of the given
// size: every pair (a, b) with 0 <= a <= b <= setSize, each exactly once.
func NewBoneyard(setSize int) *Boneyard {
	tiles := make([]*Tile, 0, (setSize+1)*(setSize+2)/2)
	for b := 0; b <= setSize; b++ {
		for a := 0; a <= b; a++ {
			tiles = append(tiles, NewTile(a, b))
		}
	}
	return &Boneyard{Tiles: tiles}
}

// Draw removes and returns one tile uniformly at random, or nil if the
// boneyard is empty.
func (b *Boneyard) Draw() *Tile {
	if len(b.Tiles) == 0 {
		return nil
	}
	i := rand.Intn(len(b.Tiles))
	tile := b.Tiles[i]
	b.Tiles = append(b.Tiles[:i], b.Tiles[i+1:]...)
	return tile
}

// Empty reports whether all tiles have been drawn.
func (b *Boneyard) Empty() bool {
	return len(b.Tiles) == 0
}
