// Package reporter defines the observer surface of the engine. The engine
// fires a notification for each lifecycle event; it never depends on whether
// anything is listening.
package reporter

import (
	"chickenfoot/game"
	"chickenfoot/player"
)

// Reporter receives engine lifecycle events. All hooks are fire-and-forget.
type Reporter interface {
	// PlayOrder fires once the order of play has been determined.
	PlayOrder(players []*player.Player)
	// Draw fires when a player draws a tile from the boneyard.
	Draw(p *player.Player, tile *game.Tile)
	// TurnStart fires at the top of every turn.
	TurnStart(p *player.Player, state game.State)
	// RootNotFound fires when no player held the required root tile and
	// everyone draws.
	RootNotFound()
	// RootFound fires when a player produces the required root tile.
	RootFound(p *player.Player, tile *game.Tile)
	// Opportunities fires with a player's legal tiles during open play.
	Opportunities(p *player.Player, tiles []*game.Tile)
	// Play fires after a tile is attached under a parent node.
	Play(p *player.Player, tile *game.Tile, parent *game.Node)
	// InitialHands fires after the starting hands are dealt.
	InitialHands(players []*player.Player)
}

// Collection fans events out to zero or more reporters.
type Collection struct {
	reporters []Reporter
}

func NewCollection(reporters []Reporter) *Collection {
	return &Collection{reporters: reporters}
}

func (c *Collection) PlayOrder(players []*player.Player) {
	for _, r := range c.reporters {
		r.PlayOrder(players)
	}
}

func (c *Collection) Draw(p *player.Player, tile *game.Tile) {
	for _, r := range c.reporters {
		r.Draw(p, tile)
	}
}

func (c *Collection) TurnStart(p *player.Player, state game.State) {
	for _, r := range c.reporters {
		r.TurnStart(p, state)
	}
}

func (c *Collection) RootNotFound() {
	for _, r := range c.reporters {
		r.RootNotFound()
	}
}

func (c *Collection) RootFound(p *player.Player, tile *game.Tile) {
	for _, r := range c.reporters {
		r.RootFound(p, tile)
	}
}

func (c *Collection) Opportunities(p *player.Player, tiles []*game.Tile) {
	for _, r := range c.reporters {
		r.Opportunities(p, tiles)
	}
}

func (c *Collection) Play(p *player.Player, tile *game.Tile, parent *game.Node) {
	for _, r := range c.reporters {
		r.Play(p, tile, parent)
	}
}

func (c *Collection) InitialHands(players []*player.Player) {
	for _, r := range c.reporters {
		r.InitialHands(players)
	}
}
