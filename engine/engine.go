// Package engine runs one round of Chicken Foot: dealing, finding the root
// double, the turn loop, and scoring. Everything is synchronous and owned by
// a single Game for the life of the round.
package engine

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"chickenfoot/game"
	"chickenfoot/player"
	"chickenfoot/reporter"
)

// Game holds the state of the round in play: the tiles on the field, in the
// boneyard, and in the players' hands. Decisions about which tile to play are
// dispatched to each player's strategy.
type Game struct {
	RequiredRoot     int
	SetSize          int
	StartingHandSize int
	Players          []*player.Player
	Boneyard         *game.Boneyard
	Root             *game.Node

	// Scores maps each player to its losing score, filled in once at the
	// end of Run.
	Scores map[*player.Player]int

	state   game.State
	chickie *game.Node
	report  *reporter.Collection
}

// NewGame sets up a round. requiredRoot is the pip count the starting double
// must carry; it must not exceed the set size, or the root-finding loop could
// never terminate.
func NewGame(requiredRoot, setSize, startingHandSize int, players []*player.Player, reporters []reporter.Reporter) (*Game, error) {
	if len(players) == 0 {
		return nil, fmt.Errorf("need at least one player")
	}
	if requiredRoot < 0 {
		return nil, fmt.Errorf("required root %d must not be negative", requiredRoot)
	}
	if requiredRoot > setSize {
		return nil, fmt.Errorf("required root %d is not in a double-%d set", requiredRoot, setSize)
	}
	return &Game{
		RequiredRoot:     requiredRoot,
		SetSize:          setSize,
		StartingHandSize: startingHandSize,
		Players:          players,
		Boneyard:         game.NewBoneyard(setSize),
		report:           reporter.NewCollection(reporters),
	}, nil
}

// Run simulates the round to completion. The returned error is one of the
// attachment contract violations; as long as plays come from the game's own
// opportunity computation it is always nil.
func (g *Game) Run() error {
	g.setupPlayerHands()

	// first turn(s): find the root tile
	for g.Root == nil {
		g.rootTileTurn()
	}
	g.state = game.StateRoot

	// player-by-player turns start now
	for turn := 0; ; turn++ {
		p := g.Players[turn%len(g.Players)]
		g.report.TurnStart(p, g.state)

		opportunities := g.opportunities(p)
		if len(opportunities) == 0 {
			// one draw per turn is allowed
			if drawn := g.Boneyard.Draw(); drawn != nil {
				p.AddTile(drawn)
				g.report.Draw(p, drawn)
				opportunities = g.opportunities(p)
			}
		}

		if len(opportunities) > 0 {
			tile := p.PickTile(opportunities)
			parent, err := g.attachParent(tile)
			if err != nil {
				return err
			}
			if err := g.handlePlay(tile, parent); err != nil {
				return err
			}
			g.report.Play(p, tile, parent)
		}

		if g.roundOver() {
			log.Debug().Msgf("round over after %d turns", turn+1)
			break
		}
	}

	g.Scores = make(map[*player.Player]int, len(g.Players))
	for _, p := range g.Players {
		g.Scores[p] = p.Score()
	}
	return nil
}

// setupPlayerHands deals every player its starting hand. An exhausted
// boneyard is tolerated silently; players just come up short.
func (g *Game) setupPlayerHands() {
	for _, p := range g.Players {
		for i := 0; i < g.StartingHandSize; i++ {
			if tile := g.Boneyard.Draw(); tile != nil {
				p.AddTile(tile)
			}
		}
	}
	g.report.InitialHands(g.Players)
}

// rootTileTurn spends one turn looking for the round's starting double. The
// turn is effectively simultaneous: either somebody produces the root tile
// and the order of play is fixed, or everybody draws.
func (g *Game) rootTileTurn() {
	for _, p := range g.Players {
		tile := p.FetchTile(g.RequiredRoot, g.RequiredRoot)
		if tile == nil {
			continue
		}
		g.report.RootFound(p, tile)

		// The finder just played the first tile, so they seat themselves at
		// the end of the order and everybody else is randomly reseated.
		rest := make([]*player.Player, 0, len(g.Players)-1)
		for _, other := range g.Players {
			if other != p {
				rest = append(rest, other)
			}
		}
		rand.Shuffle(len(rest), func(i, j int) {
			rest[i], rest[j] = rest[j], rest[i]
		})
		g.Players = append(rest, p)
		g.report.PlayOrder(g.Players)

		g.Root = game.NewRoot(tile)
		log.Debug().Msgf("root %s established by %s", tile, p)
		return
	}

	// nobody had it; all players draw
	for _, p := range g.Players {
		if tile := g.Boneyard.Draw(); tile != nil {
			p.AddTile(tile)
		}
	}
	g.report.RootNotFound()
}

// attachParent resolves which node the tile must attach under given the
// current state.
func (g *Game) attachParent(tile *game.Tile) (*game.Node, error) {
	switch g.state {
	case game.StateChickie:
		// must play to the chicken foot in progress
		return g.chickie, nil
	case game.StateRoot:
		// must attach an arm to the root
		return g.Root, nil
	default:
		return g.Root.FindAttachPosition(tile)
	}
}

// handlePlay attaches the tile and advances the state machine. The root
// completion check runs first: closing the root with a double still opens
// play rather than starting a chicken foot.
func (g *Game) handlePlay(tile *game.Tile, parent *game.Node) error {
	child, err := parent.AddChild(tile)
	if err != nil {
		return err
	}

	switch {
	case g.state == game.StateRoot && len(g.Root.Children) == 4:
		g.state = game.StateOpen
	case tile.IsDouble():
		g.state = game.StateChickie
		g.chickie = child
	case g.state == game.StateChickie && len(g.chickie.Children) == 3:
		g.state = game.StateOpen
		g.chickie = nil
	}
	return nil
}

// opportunities returns the subset of the player's hand that is legal to
// play right now.
func (g *Game) opportunities(p *player.Player) []*game.Tile {
	switch g.state {
	case game.StateChickie:
		// limited to the chicken foot in progress
		return lo.Filter(p.Hand, func(t *game.Tile, _ int) bool {
			return t.HasEnd(g.chickie.Tile.A)
		})
	case game.StateRoot:
		// leaves don't count while the root arms are being filled
		return lo.Filter(p.Hand, func(t *game.Tile, _ int) bool {
			return t.HasEnd(g.Root.Tile.A)
		})
	}

	// open play: any leaf end will do
	ends := make(map[int]bool)
	for _, leaf := range g.Root.Leaves() {
		ends[leaf.Bottom()] = true
	}
	opportunities := lo.Filter(p.Hand, func(t *game.Tile, _ int) bool {
		return ends[t.A] || ends[t.B]
	})
	g.report.Opportunities(p, opportunities)
	return opportunities
}

// roundOver reports whether the round is finished: a player has emptied
// their hand, or nobody has a play and the boneyard is dry. Hands and the
// boneyard mutate every turn, so this is recomputed from scratch each time.
func (g *Game) roundOver() bool {
	for _, p := range g.Players {
		if len(p.Hand) == 0 {
			return true
		}
	}
	for _, p := range g.Players {
		if len(g.opportunities(p)) > 0 {
			return false
		}
	}
	// a draw could still unblock someone next turn
	return g.Boneyard.Empty()
}
