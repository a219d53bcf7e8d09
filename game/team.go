package game

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Team groups one colour, or two in the four player variant, under a shared
// score. Score counts opposing marbles pushed off the grid.
type Team struct {
	Colours []Colour
	Score   int
}

func (t *Team) Has(c Colour) bool {
	return slices.Contains(t.Colours, c)
}

func (t *Team) String() string {
	names := make([]string, len(t.Colours))
	for i, c := range t.Colours {
		names[i] = c.String()
	}
	return strings.Join(names, "+")
}
