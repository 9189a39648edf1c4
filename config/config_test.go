package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load([]string{"20"})
	require.NoError(t, err)

	require.Equal(t, 20, c.Rounds)
	require.Equal(t, 9, c.SetSize)
	require.Equal(t, 7, c.StartingHandSize)
	require.Equal(t, []string{"max", "random"}, c.Players)
	require.Empty(t, c.Reporters)
	require.Equal(t, "info", c.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	c, err := Load([]string{
		"-set-size", "6",
		"-starting-hand-size", "5",
		"-players", "random,random,max",
		"-reporters", "log",
		"-metrics-dir", "out",
		"3",
	})
	require.NoError(t, err)

	require.Equal(t, 3, c.Rounds)
	require.Equal(t, 6, c.SetSize)
	require.Equal(t, 5, c.StartingHandSize)
	require.Equal(t, []string{"random", "random", "max"}, c.Players)
	require.Equal(t, []string{"log"}, c.Reporters)
	require.Equal(t, "out", c.MetricsDir)
}

func TestLoadRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"missing rounds", []string{}, "number of rounds"},
		{"non-numeric rounds", []string{"soon"}, "must be a number"},
		{"zero rounds", []string{"0"}, "greater than 0"},
		{"negative set size", []string{"-set-size", "-2", "5"}, "invalid set size"},
		{"zero hand size", []string{"-starting-hand-size", "0", "5"}, "invalid starting hand size"},
		{"unknown strategy", []string{"-players", "psychic", "5"}, "invalid player strategy"},
		{"no players", []string{"-players", "", "5"}, "at least one player"},
		{"unknown reporter", []string{"-reporters", "smoke-signal", "5"}, "invalid reporter"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(tc.args)
			require.ErrorContains(t, err, tc.want)
		})
	}
}

func TestLoadServeNeedsNoRounds(t *testing.T) {
	c, err := Load([]string{"-serve", "-addr", ":8080"})
	require.NoError(t, err)
	require.True(t, c.Serve)
	require.Equal(t, ":8080", c.Addr)
	require.Zero(t, c.Rounds)
}
