package reporter

import (
	"fmt"
	"sort"
)

var factories = map[string]func() Reporter{
	"log": func() Reporter { return NewLogReporter() },
}

// New builds a reporter by registered name.
func New(name string) (Reporter, error) {
	factory, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown reporter %q (known: %v)", name, Known())
	}
	return factory(), nil
}

// Known returns the registered reporter names, sorted.
func Known() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
