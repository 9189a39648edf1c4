package player

import (
	"fmt"
	"sort"
)

// strategies is the closed set of strategy names accepted on the command
// line. Construct-by-name goes through this table only.
var strategies = map[string]func() Strategy{
	"random": func() Strategy { return RandomStrategy{} },
	"max":    func() Strategy { return MaxValueStrategy{} },
}

// New builds a player running the named strategy. Unknown names are an
// error; Known lists the valid ones.
func New(strategy, name string) (*Player, error) {
	factory, ok := strategies[strategy]
	if !ok {
		return nil, fmt.Errorf("unknown player strategy %q (known: %v)", strategy, Known())
	}
	return NewPlayer(name, factory()), nil
}

// Known returns the registered strategy names, sorted.
func Known() []string {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
