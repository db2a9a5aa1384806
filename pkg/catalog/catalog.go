package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/aretw0/crossroads/pkg/domain"
	"github.com/aretw0/crossroads/pkg/dsl"
)

// ErrUnknownTree is returned by Get for names that are not registered.
var ErrUnknownTree = errors.New("unknown tree")

var registry = map[string]dsl.Table{
	CarName:    CarTable,
	MadLibName: MadLibTable,
}

var intros = map[string]string{
	MadLibName: MadLibIntro,
}

// Intro returns the text shown before an interactive walk of the registered
// tree called name, or "" when it has none.
func Intro(name string) string {
	return intros[name]
}

// Names lists the registered trees in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get builds the registered tree called name.
func Get(name string) (*domain.Tree, error) {
	table, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %v)", ErrUnknownTree, name, Names())
	}
	return table.Build()
}

// CarTroubleshooting returns the car troubleshooting guide.
func CarTroubleshooting() *domain.Tree {
	return CarTable.MustBuild()
}

// MadLibAdventure returns the fill-in-the-blanks adventure.
func MadLibAdventure() *domain.Tree {
	return MadLibTable.MustBuild()
}
