package game

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

var ErrPlayerCount = errors.New("unsupported player setup")

type Placement struct {
	Coord  Coord
	Colour Colour
}

// Layout describes a variant: the colours in seating order, how they are
// grouped into teams and where their marbles start.
type Layout struct {
	Name       string
	Colours    []Colour
	Teams      [][]Colour
	Placements []Placement
}

// NewLayout picks the variant matching the number of colours (2 to 4).
func NewLayout(colours []Colour) (Layout, error) {
	for i, c := range colours {
		if !slices.Contains(Colours, c) {
			return Layout{}, fmt.Errorf("%w: colour %d is not playable", ErrPlayerCount, c)
		}
		if slices.Index(colours, c) != i {
			return Layout{}, fmt.Errorf("%w: colour %s appears twice", ErrPlayerCount, c)
		}
	}
	switch len(colours) {
	case 2:
		return TwoPlayer(colours[0], colours[1]), nil
	case 3:
		return ThreePlayer(colours[0], colours[1], colours[2]), nil
	case 4:
		return FourPlayer(colours[0], colours[1], colours[2], colours[3]), nil
	default:
		return Layout{}, fmt.Errorf("%w: %d players, expected 2 to 4", ErrPlayerCount, len(colours))
	}
}

// TwoPlayer places 14 marbles per side: c0 fills rows A and B plus the centre
// of row C, c1 mirrors it from the top.
func TwoPlayer(c0, c1 Colour) Layout {
	l := Layout{
		Name:    "two-player",
		Colours: []Colour{c0, c1},
		Teams:   [][]Colour{{c0}, {c1}},
	}
	for row := 0; row < 2; row++ {
		for i := 0; i < RowLength(row); i++ {
			l.place(row, ToCoord(row, i), c0)
			top := Dim - 1 - row
			l.place(top, ToCoord(top, i), c1)
		}
	}
	for col := 2; col <= 4; col++ {
		l.place(2, col, c0)
		l.place(Dim-3, col+2, c1)
	}
	return l
}

// ThreePlayer gives each colour the two outer lines of one 120 degree sector.
func ThreePlayer(c0, c1, c2 Colour) Layout {
	l := Layout{
		Name:    "three-player",
		Colours: []Colour{c0, c1, c2},
		Teams:   [][]Colour{{c0}, {c1}, {c2}},
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < RowLength(i); j++ {
			l.place(i, j, c0)
			l.place(Dim-1-j, Dim-1-i, c1)
			l.place(Dim-1-j, SideLength-1+i-j, c2)
		}
	}
	return l
}

// FourPlayer seats c0 bottom, c1 left, c2 top and c3 right. Opposite corners
// form a team: {c0, c2} and {c1, c3}.
func FourPlayer(c0, c1, c2, c3 Colour) Layout {
	l := Layout{
		Name:    "four-player",
		Colours: []Colour{c0, c1, c2, c3},
		Teams:   [][]Colour{{c0, c2}, {c1, c3}},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < RowLength(i)-1-2*i; j++ {
			l.place(i, j+1+i, c0)
			l.place(Dim-1-i, SideLength-1+j, c2)
			l.place(SideLength-1-j, i, c1)
			l.place(SideLength-1+j, Dim-1-i, c3)
		}
	}
	return l
}

// IsFourPlayer reports whether teammates may move each other's marbles.
func (l Layout) IsFourPlayer() bool {
	return len(l.Colours) == 4
}

func (l *Layout) place(row, col int, c Colour) {
	l.Placements = append(l.Placements, Placement{Coord: Coord{Row: row, Col: col}, Colour: c})
}
