package runner

import (
	"testing"

	"github.com/stretchr/testify/require"

	"chickenfoot/player"
)

func TestRunnerAggregatesAcrossRounds(t *testing.T) {
	players := []*player.Player{
		player.NewPlayer("p0", player.MaxValueStrategy{}),
		player.NewPlayer("p1", player.RandomStrategy{}),
	}
	r := New(4, 2, 2, players, nil)

	require.NoError(t, r.Run())

	require.Equal(t, 4, r.RoundsPlayed)
	require.Len(t, r.Records, 4*len(players))

	// required root cycles 0..setSize and wraps
	var roots []int
	for i := 0; i < len(r.Records); i += len(players) {
		roots = append(roots, r.Records[i].RequiredRoot)
	}
	require.Equal(t, []int{0, 1, 2, 0}, roots)

	// aggregate totals are the sum of the per-round records
	sums := map[string]int{}
	for _, record := range r.Records {
		sums[record.Player] += record.Score
	}
	for _, p := range players {
		require.Equal(t, sums[p.Name], r.AggregateScores[p])
	}
}

func TestRunnerTotals(t *testing.T) {
	players := []*player.Player{
		player.NewPlayer("p0", player.MaxValueStrategy{}),
		player.NewPlayer("p1", player.MaxValueStrategy{}),
	}
	r := New(2, 3, 3, players, nil)

	require.NoError(t, r.Run())

	totals := r.Totals()
	require.Len(t, totals, 2)
	for i, p := range players {
		require.Equal(t, p.Name, totals[i].Player)
		require.Equal(t, r.AggregateScores[p], totals[i].Score)
		require.Equal(t, 2, totals[i].Rounds)
	}
}

func TestRunnerPropagatesSetupErrors(t *testing.T) {
	r := New(1, 3, 3, nil, nil)
	require.ErrorContains(t, r.Run(), "round 1")
}
