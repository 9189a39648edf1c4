// Package runner repeats rounds of the game across a shared set of players,
// accumulating scores and per-round records.
package runner

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"chickenfoot/engine"
	"chickenfoot/player"
	"chickenfoot/reporter"
	"chickenfoot/runner/metrics"
)

// GameRunner runs N rounds. The players and reporters are shared across
// rounds; each round gets a fresh Game (and with it a fresh boneyard), and
// the required root pip cycles 0..setSize and wraps.
type GameRunner struct {
	Rounds           int
	SetSize          int
	StartingHandSize int
	Players          []*player.Player
	Reporters        []reporter.Reporter

	// AggregateScores is each player's running total across rounds.
	AggregateScores map[*player.Player]int
	// RoundsPlayed counts completed rounds.
	RoundsPlayed int
	// Records holds one entry per player per completed round.
	Records []metrics.RoundRecord
}

func New(rounds, setSize, startingHandSize int, players []*player.Player, reporters []reporter.Reporter) *GameRunner {
	aggregate := make(map[*player.Player]int, len(players))
	for _, p := range players {
		aggregate[p] = 0
	}
	return &GameRunner{
		Rounds:           rounds,
		SetSize:          setSize,
		StartingHandSize: startingHandSize,
		Players:          players,
		Reporters:        reporters,
		AggregateScores:  aggregate,
	}
}

// Run plays every round to completion. A round that fails aborts the run.
func (r *GameRunner) Run() error {
	for i := 0; i < r.Rounds; i++ {
		requiredRoot := i % (r.SetSize + 1)
		log.Info().Msgf("starting round %d of %d with required root %d", i+1, r.Rounds, requiredRoot)

		g, err := engine.NewGame(requiredRoot, r.SetSize, r.StartingHandSize, r.Players, r.Reporters)
		if err != nil {
			return fmt.Errorf("round %d: %w", i+1, err)
		}
		if err := g.Run(); err != nil {
			return fmt.Errorf("round %d: %w", i+1, err)
		}

		for _, p := range r.Players {
			r.AggregateScores[p] += g.Scores[p]
			r.Records = append(r.Records, metrics.RoundRecord{
				Round:        i + 1,
				RequiredRoot: requiredRoot,
				Player:       p.Name,
				Score:        g.Scores[p],
			})
		}
		r.RoundsPlayed++
	}
	return nil
}

// Totals flattens the aggregate scores into records, in player order.
func (r *GameRunner) Totals() []metrics.TotalRecord {
	totals := make([]metrics.TotalRecord, len(r.Players))
	for i, p := range r.Players {
		totals[i] = metrics.TotalRecord{
			Player: p.Name,
			Score:  r.AggregateScores[p],
			Rounds: r.RoundsPlayed,
		}
	}
	return totals
}
