// Package config parses and validates the command-line surface. Flags can
// also arrive via environment variables, courtesy of namsral/flag.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/namsral/flag"
	"github.com/samber/lo"

	"chickenfoot/player"
	"chickenfoot/reporter"
)

type Config struct {
	Rounds           int
	SetSize          int
	StartingHandSize int
	Players          []string
	Reporters        []string
	LogLevel         string
	MetricsDir       string
	Serve            bool
	Addr             string
}

// Load parses args (not including the program name). The number of rounds is
// the single positional argument, as in `chickenfoot -players max,random 20`.
// Every numeric option must be positive and every strategy/reporter name must
// be registered; anything else is an error and the process should not go on.
func Load(args []string) (*Config, error) {
	c := &Config{}
	var players, reporters string

	fs := flag.NewFlagSet("chickenfoot", flag.ContinueOnError)
	fs.IntVar(&c.SetSize, "set-size", 9, "domino set size, given as the \"double X\" number")
	fs.IntVar(&c.StartingHandSize, "starting-hand-size", 7, "tiles dealt to each player at the start of a round")
	fs.StringVar(&players, "players", "max,random", "comma-separated strategy names for the seated players")
	fs.StringVar(&reporters, "reporters", "", "comma-separated reporter names")
	fs.StringVar(&c.LogLevel, "log-level", "info", "log level: debug, info, or disabled")
	fs.StringVar(&c.MetricsDir, "metrics-dir", "", "directory for CSV result files; empty disables them")
	fs.BoolVar(&c.Serve, "serve", false, "serve the simulation API instead of running rounds")
	fs.StringVar(&c.Addr, "addr", ":10001", "listen address for -serve")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if c.SetSize <= 0 {
		return nil, fmt.Errorf("invalid set size: %d; must be greater than 0", c.SetSize)
	}
	if c.StartingHandSize <= 0 {
		return nil, fmt.Errorf("invalid starting hand size: %d; must be greater than 0", c.StartingHandSize)
	}

	c.Players = splitNames(players)
	if len(c.Players) == 0 {
		return nil, fmt.Errorf("at least one player strategy is required")
	}
	for _, name := range c.Players {
		if !lo.Contains(player.Known(), name) {
			return nil, fmt.Errorf("invalid player strategy %q (known: %v)", name, player.Known())
		}
	}

	c.Reporters = splitNames(reporters)
	for _, name := range c.Reporters {
		if !lo.Contains(reporter.Known(), name) {
			return nil, fmt.Errorf("invalid reporter %q (known: %v)", name, reporter.Known())
		}
	}

	if c.Serve {
		return c, nil
	}

	rest := fs.Args()
	if len(rest) != 1 {
		return nil, fmt.Errorf("requires a number of rounds to simulate")
	}
	rounds, err := parsePositiveInt(rest[0], "number of rounds")
	if err != nil {
		return nil, err
	}
	c.Rounds = rounds

	return c, nil
}

func splitNames(s string) []string {
	var names []string
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func parsePositiveInt(s, name string) (int, error) {
	num, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s; must be a number", name, s)
	}
	if num <= 0 {
		return 0, fmt.Errorf("invalid %s: %d; must be greater than 0", name, num)
	}
	return num, nil
}
