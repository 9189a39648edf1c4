package player

import (
	"golang.org/x/exp/rand"

	"chickenfoot/game"
)

// Strategy decides which opportunity to play. Implementations may assume the
// candidate list is non-empty.
type Strategy interface {
	Name() string
	Choose(opportunities []*game.Tile) *game.Tile
}

// RandomStrategy plays a uniformly random opportunity.
type RandomStrategy struct{}

func (RandomStrategy) Name() string { return "RandomPlayer" }

func (RandomStrategy) Choose(opportunities []*game.Tile) *game.Tile {
	return opportunities[rand.Intn(len(opportunities))]
}

// MaxValueStrategy plays the highest-value opportunity. Ties go to the
// earliest candidate in the supplied order.
type MaxValueStrategy struct{}

func (MaxValueStrategy) Name() string { return "MaxValuePlayer" }

func (MaxValueStrategy) Choose(opportunities []*game.Tile) *game.Tile {
	best := opportunities[0]
	for _, tile := range opportunities[1:] {
		if tile.Value() > best.Value() {
			best = tile
		}
	}
	return best
}
