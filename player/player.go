package player

import (
	"fmt"

	"github.com/samber/lo"

	"chickenfoot/game"
)

// Player keeps track of a name and the tiles in its hand. Tile choice is
// delegated to a Strategy so the engine never cares how a player decides.
//
// Two methods take a tile out of the hand:
//   - PickTile(opportunities): choose one of the candidates (all of which
//     must be in the hand), remove it, return it.
//   - FetchTile(a, b): exact-match removal, used only for root finding.
type Player struct {
	Name     string
	Hand     []*game.Tile
	Strategy Strategy
}

func NewPlayer(name string, strategy Strategy) *Player {
	return &Player{Name: name, Strategy: strategy}
}

func (p *Player) String() string {
	return fmt.Sprintf("<%s: %s>", p.Strategy.Name(), p.Name)
}

// AddTile puts a tile into the player's hand.
func (p *Player) AddTile(tile *game.Tile) {
	p.Hand = append(p.Hand, tile)
}

// FetchTile removes and returns a hand tile with ends a and b, in either
// order. Returns nil if the player doesn't hold one.
func (p *Player) FetchTile(a, b int) *game.Tile {
	for _, tile := range p.Hand {
		if (tile.A == a && tile.B == b) || (tile.A == b && tile.B == a) {
			p.removeTile(tile)
			return tile
		}
	}
	return nil
}

// PickTile asks the strategy to choose among the opportunities, removes the
// chosen tile from the hand, and returns it. The opportunity list must be
// non-empty and drawn from the hand.
func (p *Player) PickTile(opportunities []*game.Tile) *game.Tile {
	chosen := p.Strategy.Choose(opportunities)
	p.removeTile(chosen)
	return chosen
}

func (p *Player) removeTile(tile *game.Tile) {
	if i := lo.IndexOf(p.Hand, tile); i >= 0 {
		p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
	}
}

// Score is the losing score for the hand: the sum of the remaining tiles'
// values. An empty hand scores 0.
func (p *Player) Score() int {
	return lo.SumBy(p.Hand, func(t *game.Tile) int { return t.Value() })
}
